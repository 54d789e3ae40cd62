package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DefaultThreshold é o limiar de similaridade usado pelo matcher
// quando nenhum outro valor é informado.
const DefaultThreshold = 0.85

type Config struct {
	PanelEmail    string
	PanelPassword string
	PanelBaseURL  string

	DatabaseURL string
	RedisURL    string

	TableName       string
	ColumnNome      string
	ColumnPlano     string
	ColumnStatus    string
	ColumnTimestamp string

	Threshold   float64
	MetricsPort string
}

func Load() *Config {
	// Carrega .env da raiz do projeto
	_ = godotenv.Load("../../.env")
	// Se não encontrar, tenta no diretório atual
	_ = godotenv.Load()
	return &Config{
		PanelEmail:      os.Getenv("CASHBARBER_EMAIL"),
		PanelPassword:   os.Getenv("CASHBARBER_PASSWORD"),
		PanelBaseURL:    getEnv("CASHBARBER_BASE_URL", "https://painel.cashbarber.com.br"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		RedisURL:        os.Getenv("REDIS_URL"),
		TableName:       getEnv("TABLE_NAME", "clientes"),
		ColumnNome:      getEnv("COLUMN_NOME", "nome"),
		ColumnPlano:     getEnv("COLUMN_PLANO", "plano_atual"),
		ColumnStatus:    getEnv("COLUMN_STATUS", "status_assinatura"),
		ColumnTimestamp: getEnv("COLUMN_TIMESTAMP", "ultima_sincronizacao"),
		Threshold:       getEnvFloat("MATCH_THRESHOLD", DefaultThreshold),
		MetricsPort:     getEnv("METRICS_PORT", "9090"),
	}
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getEnvFloat(k string, d float64) float64 {
	if v := os.Getenv(k); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return d
}
