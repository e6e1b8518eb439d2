package stockledger_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avicampo/avicola-api/internal/application/stockledger"
	"github.com/avicampo/avicola-api/internal/domain/entity"
)

func movimiento(id, tipo, referenceID string, amount int64) entity.StockLog {
	return entity.StockLog{
		ID:          id,
		FarmerID:    "f1",
		Type:        tipo,
		Amount:      decimal.NewFromInt(amount),
		ReferenceID: referenceID,
		CreatedAt:   time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	}
}

// Caso 1: una CORRECTION que apunta a un RESTOCK marca exactamente ese
// movimiento como revertido; los demás quedan intactos.
func TestBuildView_MarcaSoloElReferenciado(t *testing.T) {
	logs := []entity.StockLog{
		movimiento("l1", entity.StockLogRestock, "", 10),
		movimiento("l2", entity.StockLogRestock, "", 5),
		movimiento("l3", entity.StockLogCorrection, "l1", -10),
	}

	view := stockledger.BuildView(logs)
	require.Len(t, view, 3)

	assert.True(t, view[0].Reverted, "l1 fue apuntado por la corrección")
	assert.False(t, view[0].CanRevert, "sin doble reversa")
	assert.False(t, view[1].Reverted)
	assert.True(t, view[1].CanRevert)
	assert.False(t, view[2].Reverted)
	assert.False(t, view[2].CanRevert, "una corrección no se revierte")
}

// Caso 2: la corrección es simétrica en monto (delta opuesto); la vista no
// altera los montos, solo las marcas.
func TestBuildView_NoTocaMontos(t *testing.T) {
	logs := []entity.StockLog{
		movimiento("l1", entity.StockLogTransferOut, "", -8),
		movimiento("l2", entity.StockLogCorrection, "l1", 8),
	}

	view := stockledger.BuildView(logs)
	require.Len(t, view, 2)
	assert.True(t, view[0].Log.Amount.Neg().Equal(view[1].Log.Amount))
}

// Caso 3: las marcas se recomputan del listado completo; sin la corrección en
// la lista no hay movimiento revertido (nada se persiste en el cliente).
func TestBuildView_RecomputaPorConsulta(t *testing.T) {
	sinCorreccion := []entity.StockLog{movimiento("l1", entity.StockLogRestock, "", 10)}

	view := stockledger.BuildView(sinCorreccion)
	require.Len(t, view, 1)
	assert.False(t, view[0].Reverted)
	assert.True(t, view[0].CanRevert)
}

// Caso 4: RevertedIDs ignora correcciones sin referencia (defensa contra datos
// incompletos del colaborador).
func TestRevertedIDs_CorreccionSinReferencia(t *testing.T) {
	logs := []entity.StockLog{
		movimiento("l1", entity.StockLogCorrection, "", -3),
		movimiento("l2", entity.StockLogRestock, "", 3),
	}

	assert.Empty(t, stockledger.RevertedIDs(logs))
}
