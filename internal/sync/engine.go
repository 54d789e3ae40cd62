package sync

import (
	"context"
	"fmt"
	"log"

	"cbsync/internal/config"
	"cbsync/internal/model"
	"cbsync/internal/observability"
)

// ClienteStore é o contrato do banco de clientes consumido pelo engine.
type ClienteStore interface {
	FetchAll(ctx context.Context) ([]model.Cliente, error)
	Update(ctx context.Context, id, plano, status string) error
}

// Stats agrega o resultado de uma passada de sincronização.
type Stats struct {
	TotalAssinantes     int
	TotalClientes       int
	Encontrados         int
	Atualizados         int
	NaoEncontrados      int
	Erros               int
	NaoEncontradosLista []string
}

type Engine struct {
	Store     ClienteStore
	Threshold float64
	DryRun    bool
}

// Reconcile percorre os assinantes extraídos uma única vez, casando
// cada um contra o snapshot de clientes e atualizando plano/status dos
// encontrados. Erro de update não aborta a passada; só a falha ao
// carregar o snapshot é fatal.
func (e *Engine) Reconcile(ctx context.Context, assinantes []model.Assinante) (*Stats, error) {
	clientes, err := e.Store.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar clientes: %w", err)
	}
	log.Printf("[Sync] %d clientes carregados do banco", len(clientes))

	threshold := e.Threshold
	if threshold <= 0 {
		threshold = config.DefaultThreshold
	}

	stats := &Stats{
		TotalAssinantes: len(assinantes),
		TotalClientes:   len(clientes),
	}

	for _, a := range assinantes {
		cliente := FindCliente(a.Nome, clientes, threshold)

		if cliente == nil {
			stats.NaoEncontrados++
			stats.NaoEncontradosLista = append(stats.NaoEncontradosLista, a.Nome)
			observability.ClientesNaoEncontrados.Inc()
			log.Printf("[Sync] ✗ Cliente não encontrado: %q", a.Nome)
			continue
		}

		stats.Encontrados++
		observability.ClientesEncontrados.Inc()
		log.Printf("[Sync] ✓ Match: %q → %q (plano=%s status=%s)",
			a.Nome, cliente.Nome, a.Plano, NormalizeStatus(a.Status))

		if e.DryRun {
			log.Println("[Sync]   → [DRY RUN] Seria atualizado")
			stats.Atualizados++
			continue
		}

		if err := e.Store.Update(ctx, cliente.ID, a.Plano, a.Status); err != nil {
			stats.Erros++
			observability.ErrosAtualizacao.Inc()
			log.Printf("[Sync]   ✗ Erro ao atualizar cliente %s: %v", cliente.ID, err)
			continue
		}

		stats.Atualizados++
		observability.ClientesAtualizados.Inc()
	}

	return stats, nil
}
