package sync

import (
	"strings"

	"cbsync/internal/model"
)

// FindCliente busca o cliente cujo nome melhor corresponde ao nome
// extraído do relatório.
//
// Match exato (após trim + lowercase) retorna na hora, na ordem da
// lista. Sem match exato, vale o maior ratio de similaridade, desde que
// atinja o threshold; empates ficam com o primeiro da lista.
func FindCliente(nome string, clientes []model.Cliente, threshold float64) *model.Cliente {
	busca := strings.ToLower(strings.TrimSpace(nome))

	var best *model.Cliente
	bestRatio := 0.0

	for i := range clientes {
		nomeCliente := strings.ToLower(strings.TrimSpace(clientes[i].Nome))

		if busca == nomeCliente {
			return &clientes[i]
		}

		ratio := Similarity(busca, nomeCliente)
		if ratio > bestRatio {
			bestRatio = ratio
			best = &clientes[i]
		}
	}

	if bestRatio >= threshold {
		return best
	}

	return nil
}

// Similarity calcula um ratio de similaridade em [0,1] entre duas
// strings: 2*LCS(a,b) / (len(a)+len(b)), sobre runas. Simétrica e
// determinística; strings idênticas dão 1.0.
func Similarity(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)

	if len(ra) == 0 && len(rb) == 0 {
		return 1.0
	}
	if len(ra) == 0 || len(rb) == 0 {
		return 0.0
	}

	// LCS com duas linhas da matriz
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)

	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			if ra[i-1] == rb[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}

	lcs := prev[len(rb)]
	return 2.0 * float64(lcs) / float64(len(ra)+len(rb))
}
