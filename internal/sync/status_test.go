package sync

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStatus_TabelaFixa(t *testing.T) {
	assert.Equal(t, StatusAtivo, NormalizeStatus("Em dia"))
	assert.Equal(t, StatusInadimplente, NormalizeStatus("Pagamento recusado"))
	assert.Equal(t, StatusCancelado, NormalizeStatus("Cancelado"))
	assert.Equal(t, StatusPendente, NormalizeStatus("Pendente"))
}

func TestNormalizeStatus_Desconhecido(t *testing.T) {
	assert.Equal(t, StatusDesconhecido, NormalizeStatus("Foo"))
	assert.Equal(t, StatusDesconhecido, NormalizeStatus(""))
	// Case-sensitive: só o rótulo exato da tabela é mapeado
	assert.Equal(t, StatusDesconhecido, NormalizeStatus("em dia"))
	assert.Equal(t, StatusDesconhecido, NormalizeStatus("CANCELADO"))
}
