package repository

import (
	"context"
	"database/sql"
	"fmt"

	"cbsync/internal/model"
)

// ClienteRepository lê e atualiza a tabela de clientes. Os nomes físicos
// das colunas são configuráveis para funcionar contra schemas diferentes.
type ClienteRepository struct {
	DB *sql.DB

	Table           string
	ColumnNome      string
	ColumnPlano     string
	ColumnStatus    string
	ColumnTimestamp string
}

// FetchAll carrega o snapshot completo de clientes, uma vez por passada.
func (r *ClienteRepository) FetchAll(ctx context.Context) ([]model.Cliente, error) {
	query := fmt.Sprintf(`
		SELECT id, %s, COALESCE(telefone, ''), COALESCE(%s, ''), COALESCE(%s, '')
		FROM %s
	`, r.ColumnNome, r.ColumnPlano, r.ColumnStatus, r.Table)

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clientes []model.Cliente
	for rows.Next() {
		var c model.Cliente
		if err := rows.Scan(&c.ID, &c.Nome, &c.Telefone, &c.PlanoAtual, &c.StatusAssinatura); err != nil {
			continue // Pula linhas com erro de scan
		}
		clientes = append(clientes, c)
	}

	return clientes, rows.Err()
}

// Update grava plano e status de um cliente. A coluna de timestamp de
// sincronização é opcional: se o schema não tiver a coluna, refaz o
// update só com os campos principais.
func (r *ClienteRepository) Update(ctx context.Context, id, plano, status string) error {
	if r.ColumnTimestamp != "" {
		query := fmt.Sprintf(`
			UPDATE %s SET %s = $1, %s = $2, %s = now() WHERE id = $3
		`, r.Table, r.ColumnPlano, r.ColumnStatus, r.ColumnTimestamp)

		if _, err := r.DB.ExecContext(ctx, query, plano, status, id); err == nil {
			return nil
		}
	}

	query := fmt.Sprintf(`
		UPDATE %s SET %s = $1, %s = $2 WHERE id = $3
	`, r.Table, r.ColumnPlano, r.ColumnStatus)

	_, err := r.DB.ExecContext(ctx, query, plano, status, id)
	return err
}
