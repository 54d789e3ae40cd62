package sync

// Status é o vocabulário canônico de status de assinatura.
type Status string

const (
	StatusAtivo        Status = "ativo"
	StatusInadimplente Status = "inadimplente"
	StatusCancelado    Status = "cancelado"
	StatusPendente     Status = "pendente"
	StatusDesconhecido Status = "desconhecido"
)

var statusMap = map[string]Status{
	"Em dia":             StatusAtivo,
	"Pagamento recusado": StatusInadimplente,
	"Cancelado":          StatusCancelado,
	"Pendente":           StatusPendente,
}

// NormalizeStatus mapeia o status como aparece na tabela do relatório
// para o vocabulário canônico. Valores não mapeados viram "desconhecido".
func NormalizeStatus(raw string) Status {
	if s, ok := statusMap[raw]; ok {
		return s
	}
	return StatusDesconhecido
}
