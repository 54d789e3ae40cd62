package extractor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"cbsync/internal/model"
)

// Extract lê a tabela de assinantes do HTML do relatório.
// Colunas esperadas: Cliente | Plano | Status | Data de criação.
func Extract(html string) ([]model.Assinante, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	tbody := doc.Find("table.table-striped tbody")
	if tbody.Length() == 0 {
		return nil, fmt.Errorf("tabela de assinantes não encontrada no HTML")
	}

	var assinantes []model.Assinante
	tbody.First().Find("tr").Each(func(_ int, row *goquery.Selection) {
		cols := row.Find("td")

		// Pula a linha de total (tem colspan)
		if cols.Length() < 4 {
			return
		}
		if _, ok := cols.First().Attr("colspan"); ok {
			return
		}

		a := model.Assinante{
			Nome:        strings.TrimSpace(cols.Eq(0).Text()),
			Plano:       strings.TrimSpace(cols.Eq(1).Text()),
			Status:      strings.TrimSpace(cols.Eq(2).Text()),
			DataCriacao: strings.TrimSpace(cols.Eq(3).Text()),
		}

		// Linhas com campo vazio são descartadas
		if a.Nome == "" || a.Plano == "" || a.Status == "" || a.DataCriacao == "" {
			return
		}

		assinantes = append(assinantes, a)
	})

	return assinantes, nil
}

// TotalCount extrai o total de assinantes da última linha da tabela.
// Retorna false quando a célula de total não existe.
func TotalCount(html string) (int, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return 0, false
	}

	rows := doc.Find("table.table-striped tbody tr")
	if rows.Length() == 0 {
		return 0, false
	}

	lastCol := rows.Last().Find("td").Last()
	text := strings.TrimSpace(lastCol.Find("b").Text())
	if text == "" {
		return 0, false
	}

	total, err := strconv.Atoi(text)
	if err != nil {
		return 0, false
	}
	return total, true
}

type Stats struct {
	Total     int
	PorStatus map[string]int
	PorPlano  map[string]int
}

// Statistics agrega os assinantes extraídos por status e por plano.
func Statistics(assinantes []model.Assinante) Stats {
	stats := Stats{
		Total:     len(assinantes),
		PorStatus: map[string]int{},
		PorPlano:  map[string]int{},
	}

	for _, a := range assinantes {
		stats.PorStatus[a.Status]++
		stats.PorPlano[a.Plano]++
	}

	return stats
}
