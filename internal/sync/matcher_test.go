package sync

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cbsync/internal/model"
)

func clientes(nomes ...string) []model.Cliente {
	cs := make([]model.Cliente, 0, len(nomes))
	for i, n := range nomes {
		cs = append(cs, model.Cliente{ID: string(rune('a' + i)), Nome: n})
	}
	return cs
}

func TestFindCliente_MatchExato(t *testing.T) {
	cs := clientes("Maria Souza", "João Silva")

	c := FindCliente("João Silva", cs, 0.85)
	require.NotNil(t, c)
	assert.Equal(t, "João Silva", c.Nome)
}

func TestFindCliente_MatchExatoIgnoraCaseEEspacos(t *testing.T) {
	cs := clientes("joão silva")

	c := FindCliente("  JOÃO Silva ", cs, 0.85)
	require.NotNil(t, c)
	assert.Equal(t, "joão silva", c.Nome)
}

func TestFindCliente_MatchExatoVencePosicao(t *testing.T) {
	// Um quase-duplicado no início da lista não pode roubar o match
	// exato que vem depois
	cs := clientes("João Silva Santos", "João Silva")

	c := FindCliente("João Silva", cs, 0.85)
	require.NotNil(t, c)
	assert.Equal(t, "João Silva", c.Nome)
}

func TestFindCliente_PrimeiroMatchExatoVence(t *testing.T) {
	cs := []model.Cliente{
		{ID: "1", Nome: "João Silva"},
		{ID: "2", Nome: "João Silva"},
	}

	c := FindCliente("João Silva", cs, 0.85)
	require.NotNil(t, c)
	assert.Equal(t, "1", c.ID)
}

func TestFindCliente_FuzzyToleraAcentoFaltando(t *testing.T) {
	cs := clientes("João Silva")

	c := FindCliente("Joao Silva", cs, 0.85)
	require.NotNil(t, c)
	assert.Equal(t, "João Silva", c.Nome)
}

func TestFindCliente_AbaixoDoThreshold(t *testing.T) {
	cs := clientes("Pedro Henrique Almeida")

	assert.Nil(t, FindCliente("Ana Clara", cs, 0.85))
}

func TestFindCliente_ThresholdMenorSoAdicionaMatches(t *testing.T) {
	cs := clientes("Joana Silveira")

	// Com o threshold padrão não casa; baixando o threshold passa a casar
	assert.Nil(t, FindCliente("Joana Silva", cs, 0.95))
	assert.NotNil(t, FindCliente("Joana Silva", cs, 0.5))
}

func TestFindCliente_EmpateFicaComOPrimeiro(t *testing.T) {
	// Ambos têm LCS 3 contra "abcd": ratio idêntico
	cs := []model.Cliente{
		{ID: "1", Nome: "abcx"},
		{ID: "2", Nome: "abxd"},
	}

	c := FindCliente("abcd", cs, 0.5)
	require.NotNil(t, c)
	assert.Equal(t, "1", c.ID)
}

func TestFindCliente_SemCandidatos(t *testing.T) {
	assert.Nil(t, FindCliente("João Silva", nil, 0.85))
}

func TestSimilarity_Simetrica(t *testing.T) {
	assert.Equal(t, Similarity("joão silva", "joao silva"), Similarity("joao silva", "joão silva"))
}

func TestSimilarity_Extremos(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("joão silva", "joão silva"))
	assert.Equal(t, 1.0, Similarity("", ""))
	assert.Equal(t, 0.0, Similarity("abc", ""))
	assert.Equal(t, 0.0, Similarity("xyz", "abc"))
}
