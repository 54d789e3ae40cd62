package model

// Assinante representa uma linha extraída do relatório de assinantes.
type Assinante struct {
	Nome        string
	Plano       string
	Status      string
	DataCriacao string
}

// Cliente representa um cliente na tabela do banco.
type Cliente struct {
	ID               string
	Nome             string
	Telefone         string
	PlanoAtual       string
	StatusAssinatura string
}
