package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/redis/go-redis/v9"

	"cbsync/internal/config"
	"cbsync/internal/db"
	"cbsync/internal/observability"
	"cbsync/internal/panel"
	"cbsync/internal/repository"
	"cbsync/internal/sync"
)

// go run cmd/sync/main.go -email=user@example.com -password=secret123
// go run cmd/sync/main.go -dry-run
func main() {
	email := flag.String("email", "", "Email de login no painel (sobrepõe CASHBARBER_EMAIL)")
	password := flag.String("password", "", "Senha de login no painel (sobrepõe CASHBARBER_PASSWORD)")
	dryRun := flag.Bool("dry-run", false, "Simular sem atualizar o banco")
	threshold := flag.Float64("threshold", 0, "Limiar de similaridade do matcher (padrão 0.85)")
	menu := flag.Bool("menu", false, "Navegar pelo menu em vez da URL direta do relatório")
	flag.Parse()

	cfg := config.Load()
	if *email != "" {
		cfg.PanelEmail = *email
	}
	if *password != "" {
		cfg.PanelPassword = *password
	}
	if *threshold > 0 {
		cfg.Threshold = *threshold
	}

	if cfg.PanelEmail == "" || cfg.PanelPassword == "" {
		log.Println("Email e senha do painel devem estar configurados")
		os.Exit(1)
	}

	observability.Start(cfg.MetricsPort)

	ctx := context.Background()

	dbConn, err := db.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Não foi possível conectar ao banco de dados: %v", err)
	}
	defer dbConn.Close()

	// Sessão do painel em cache no Redis (opcional)
	var sessions *panel.SessionStore
	if cfg.RedisURL != "" {
		if opt, err := redis.ParseURL(cfg.RedisURL); err == nil {
			sessions = &panel.SessionStore{Client: redis.NewClient(opt)}
		} else {
			log.Printf("REDIS_URL inválida, seguindo sem cache de sessão: %v", err)
		}
	}

	client := panel.NewClient(cfg.PanelBaseURL, cfg.PanelEmail, cfg.PanelPassword, sessions)
	client.UseMenu = *menu

	repo := &repository.ClienteRepository{
		DB:              dbConn,
		Table:           cfg.TableName,
		ColumnNome:      cfg.ColumnNome,
		ColumnPlano:     cfg.ColumnPlano,
		ColumnStatus:    cfg.ColumnStatus,
		ColumnTimestamp: cfg.ColumnTimestamp,
	}

	engine := &sync.Engine{
		Store:     repo,
		Threshold: cfg.Threshold,
		DryRun:    *dryRun,
	}

	orch := &sync.Orchestrator{
		Panel:  client,
		Engine: engine,
	}

	// Histórico de execuções (melhor esforço)
	if pool, err := db.NewPool(ctx, cfg.DatabaseURL); err == nil {
		defer pool.Close()
		orch.RunLog = &repository.SyncLogRepository{DB: pool}
	} else {
		log.Printf("Seguindo sem histórico de execuções: %v", err)
	}

	if _, err := orch.Run(ctx); err != nil {
		log.Printf("❌ ERRO DURANTE A SINCRONIZAÇÃO: %v", err)
		os.Exit(1)
	}
}
