package sync

import (
	"context"
	"fmt"
	"log"
	"time"

	"cbsync/internal/extractor"
	"cbsync/internal/observability"
)

// Navigator é o colaborador que entrega o HTML do relatório já
// autenticado (login + navegação).
type Navigator interface {
	Login(ctx context.Context) error
	FetchReport(ctx context.Context) (string, error)
}

// RunRecord resume uma execução completa, para o histórico de execuções.
type RunRecord struct {
	Stats       Stats
	DryRun      bool
	Duracao     time.Duration
	ExecutadoEm time.Time
}

// RunLogger persiste o resumo de uma execução. Falha aqui não derruba a
// execução (o resumo já foi produzido).
type RunLogger interface {
	Record(ctx context.Context, run RunRecord) error
}

// Orchestrator compõe login, navegação, extração e reconciliação em uma
// execução ponta a ponta.
type Orchestrator struct {
	Panel  Navigator
	Engine *Engine
	RunLog RunLogger
}

// Run executa a sincronização completa. Qualquer falha antes da
// reconciliação (login, navegação, extração, snapshot) aborta a
// execução sem nenhuma escrita no banco.
func (o *Orchestrator) Run(ctx context.Context) (*Stats, error) {
	inicio := time.Now()

	modo := "PRODUÇÃO"
	if o.Engine.DryRun {
		modo = "DRY RUN (simulação)"
	}
	log.Printf("[Sync] Iniciando sincronização | modo: %s", modo)

	if err := o.Panel.Login(ctx); err != nil {
		return nil, fmt.Errorf("falha no login: %w", err)
	}

	html, err := o.Panel.FetchReport(ctx)
	if err != nil {
		return nil, fmt.Errorf("falha na navegação: %w", err)
	}

	assinantes, err := extractor.Extract(html)
	if err != nil {
		return nil, fmt.Errorf("falha na extração: %w", err)
	}
	observability.AssinantesExtraidos.Add(float64(len(assinantes)))
	log.Printf("[Sync] %d assinantes extraídos", len(assinantes))

	est := extractor.Statistics(assinantes)
	log.Printf("[Sync] Por status: %v | planos distintos: %d", est.PorStatus, len(est.PorPlano))

	if total, ok := extractor.TotalCount(html); ok && total != len(assinantes) {
		log.Printf("[Sync] Aviso: relatório informa %d assinantes, %d extraídos", total, len(assinantes))
	}

	stats, err := o.Engine.Reconcile(ctx, assinantes)
	if err != nil {
		return nil, err
	}

	duracao := time.Since(inicio)
	o.logResumo(stats, duracao)

	if o.RunLog != nil {
		run := RunRecord{
			Stats:       *stats,
			DryRun:      o.Engine.DryRun,
			Duracao:     duracao,
			ExecutadoEm: inicio,
		}
		if err := o.RunLog.Record(ctx, run); err != nil {
			log.Printf("[Sync] Erro ao registrar execução no histórico: %v", err)
		}
	}

	return stats, nil
}

func (o *Orchestrator) logResumo(stats *Stats, duracao time.Duration) {
	log.Println("[Sync] ============================================")
	log.Println("[Sync] RESULTADO DA SINCRONIZAÇÃO")
	log.Printf("[Sync] Total no relatório:  %d", stats.TotalAssinantes)
	log.Printf("[Sync] Total no banco:      %d", stats.TotalClientes)
	log.Printf("[Sync] Encontrados:         %d", stats.Encontrados)
	log.Printf("[Sync] Atualizados:         %d", stats.Atualizados)
	log.Printf("[Sync] Não encontrados:     %d", stats.NaoEncontrados)
	log.Printf("[Sync] Erros:               %d", stats.Erros)
	log.Printf("[Sync] Duração:             %.2fs", duracao.Seconds())

	if len(stats.NaoEncontradosLista) > 0 {
		log.Println("[Sync] Clientes não encontrados:")
		// Mostra apenas os 10 primeiros
		mostrar := stats.NaoEncontradosLista
		if len(mostrar) > 10 {
			mostrar = mostrar[:10]
		}
		for _, nome := range mostrar {
			log.Printf("[Sync]   - %s", nome)
		}
		if resto := len(stats.NaoEncontradosLista) - len(mostrar); resto > 0 {
			log.Printf("[Sync]   ... e mais %d", resto)
		}
	}
	log.Println("[Sync] ============================================")
}
