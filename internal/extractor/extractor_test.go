package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cbsync/internal/model"
)

const reportHTML = `
<html><body>
<table class="table-striped">
<thead><tr><th>Cliente</th><th>Plano</th><th>Status</th><th>Criado em</th></tr></thead>
<tbody>
<tr><td> João Silva </td><td>Mensal</td><td>Em dia</td><td>01/08/2026</td></tr>
<tr><td>Maria Souza</td><td>Barba e Cabelo</td><td>Pagamento recusado</td><td>15/07/2026</td></tr>
<tr><td>Pedro Almeida</td><td>Mensal</td><td>Cancelado</td><td>03/05/2026</td></tr>
<tr><td></td><td>Mensal</td><td>Em dia</td><td>10/08/2026</td></tr>
<tr><td colspan="3">Total</td><td><b>3</b></td></tr>
</tbody>
</table>
</body></html>`

func TestExtract_LinhasDaTabela(t *testing.T) {
	assinantes, err := Extract(reportHTML)
	require.NoError(t, err)

	require.Len(t, assinantes, 3)
	assert.Equal(t, model.Assinante{
		Nome:        "João Silva",
		Plano:       "Mensal",
		Status:      "Em dia",
		DataCriacao: "01/08/2026",
	}, assinantes[0], "células vêm com espaços aparados")
	assert.Equal(t, "Maria Souza", assinantes[1].Nome)
	assert.Equal(t, "Pedro Almeida", assinantes[2].Nome)
}

func TestExtract_PulaLinhaDeTotalELinhasIncompletas(t *testing.T) {
	assinantes, err := Extract(reportHTML)
	require.NoError(t, err)

	for _, a := range assinantes {
		assert.NotEmpty(t, a.Nome)
		assert.NotEqual(t, "Total", a.Nome)
	}
}

func TestExtract_SemTabelaEhErro(t *testing.T) {
	_, err := Extract("<html><body><p>relatório indisponível</p></body></html>")
	require.Error(t, err)
}

func TestTotalCount(t *testing.T) {
	total, ok := TotalCount(reportHTML)
	require.True(t, ok)
	assert.Equal(t, 3, total)
}

func TestTotalCount_SemCelulaDeTotal(t *testing.T) {
	_, ok := TotalCount(`<table class="table-striped"><tbody>
		<tr><td>João Silva</td><td>Mensal</td><td>Em dia</td><td>01/08/2026</td></tr>
	</tbody></table>`)
	assert.False(t, ok)
}

func TestStatistics(t *testing.T) {
	assinantes, err := Extract(reportHTML)
	require.NoError(t, err)

	stats := Statistics(assinantes)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, map[string]int{"Em dia": 1, "Pagamento recusado": 1, "Cancelado": 1}, stats.PorStatus)
	assert.Equal(t, map[string]int{"Mensal": 2, "Barba e Cabelo": 1}, stats.PorPlano)
}
