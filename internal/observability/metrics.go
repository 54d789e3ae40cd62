package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	AssinantesExtraidos = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "assinantes_extraidos_total",
			Help: "Total de assinantes extraídos do relatório",
		},
	)
	ClientesEncontrados = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "clientes_encontrados_total",
			Help: "Total de assinantes com match no banco",
		},
	)
	ClientesAtualizados = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "clientes_atualizados_total",
			Help: "Total de clientes atualizados com sucesso",
		},
	)
	ClientesNaoEncontrados = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "clientes_nao_encontrados_total",
			Help: "Total de assinantes sem match no banco",
		},
	)
	ErrosAtualizacao = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "erros_atualizacao_total",
			Help: "Total de erros ao atualizar clientes",
		},
	)
)

func Start(port string) {
	prometheus.MustRegister(
		AssinantesExtraidos,
		ClientesEncontrados,
		ClientesAtualizados,
		ClientesNaoEncontrados,
		ErrosAtualizacao,
	)
	http.Handle("/metrics", promhttp.Handler())
	go http.ListenAndServe(":"+port, nil)
}
