package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"cbsync/internal/sync"
)

// SyncLogRepository guarda uma linha por execução na tabela sync_runs,
// como histórico das sincronizações.
type SyncLogRepository struct {
	DB *pgxpool.Pool
}

func (r *SyncLogRepository) Record(ctx context.Context, run sync.RunRecord) error {
	_, err := r.DB.Exec(ctx, `
		INSERT INTO sync_runs
		(id, total_assinantes, total_clientes, encontrados, atualizados, nao_encontrados, erros, dry_run, duracao_ms, executado_em)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, uuid.New(),
		run.Stats.TotalAssinantes,
		run.Stats.TotalClientes,
		run.Stats.Encontrados,
		run.Stats.Atualizados,
		run.Stats.NaoEncontrados,
		run.Stats.Erros,
		run.DryRun,
		run.Duracao.Milliseconds(),
		run.ExecutadoEm,
	)

	return err
}
