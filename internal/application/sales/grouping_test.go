package sales_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avicampo/avicola-api/internal/application/sales"
	"github.com/avicampo/avicola-api/internal/domain/entity"
)

// venta arma un registro plano como lo entrega el colaborador.
func venta(id, farmerID, farmerName, cycleID, historyID string, birds, cumulative int) entity.SaleRecord {
	return entity.SaleRecord{
		ID:         id,
		FarmerID:   farmerID,
		FarmerName: farmerName,
		CycleID:    cycleID,
		HistoryID:  historyID,
		BirdsSold:  birds,
		SaleDate:   time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		CycleContext: entity.CycleContext{
			DOC:                 1000,
			Age:                 30,
			CumulativeBirdsSold: cumulative,
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Fusión con MAX
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: dos ventas del ciclo c1 con acumulados 50 y 80, y una del c2 con 30:
// el total de c1 es 80 (el máximo), no 130 (la suma duplicaría el corrido).
func TestGroupByFarmer_FusionaConMaxNoSuma(t *testing.T) {
	records := []entity.SaleRecord{
		venta("s1", "f1", "Ana", "c1", "", 50, 50),
		venta("s2", "f1", "Ana", "c1", "", 30, 80),
		venta("s3", "f1", "Ana", "c2", "", 30, 30),
	}

	groups := sales.GroupByFarmer(records)
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Cycles, 2)

	assert.Equal(t, 80, groups[0].Cycles[0].TotalSold, "c1 debe quedar en el máximo, no en la suma")
	assert.Equal(t, 30, groups[0].Cycles[1].TotalSold)
}

// Caso 2: un acumulado menor que el ya visto no retrocede el total del grupo.
func TestGroupByFarmer_AcumuladoMenorNoRetrocede(t *testing.T) {
	records := []entity.SaleRecord{
		venta("s1", "f1", "Ana", "c1", "", 80, 80),
		venta("s2", "f1", "Ana", "c1", "", 50, 50),
	}

	groups := sales.GroupByFarmer(records)
	require.Len(t, groups, 1)
	assert.Equal(t, 80, groups[0].Cycles[0].TotalSold)
}

// ──────────────────────────────────────────────────────────────────────────────
// Invariancia y ancla
// ──────────────────────────────────────────────────────────────────────────────

// Caso 3: barajar la entrada no altera totales ni tamaños de grupo.
func TestGroupByFarmer_InvarianteAlOrden(t *testing.T) {
	records := []entity.SaleRecord{
		venta("s1", "f1", "Ana", "c1", "", 50, 50),
		venta("s2", "f1", "Ana", "c1", "", 30, 80),
		venta("s3", "f2", "Berta", "c3", "", 20, 20),
		venta("s4", "f1", "Ana", "c2", "", 30, 30),
		venta("s5", "f2", "Berta", "", "h1", 10, 410),
	}

	base := sales.GroupByFarmer(records)
	totals := func(groups []sales.FarmerGroup) map[string]int {
		out := make(map[string]int)
		for _, fg := range groups {
			for _, cg := range fg.Cycles {
				out[fg.FarmerID+"/"+cg.Key] = cg.TotalSold
			}
		}
		return out
	}
	sizes := func(groups []sales.FarmerGroup) map[string]int {
		out := make(map[string]int)
		for _, fg := range groups {
			for _, cg := range fg.Cycles {
				out[fg.FarmerID+"/"+cg.Key] = len(cg.Sales)
			}
		}
		return out
	}

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		shuffled := make([]entity.SaleRecord, len(records))
		copy(shuffled, records)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		got := sales.GroupByFarmer(shuffled)
		assert.Equal(t, totals(base), totals(got), "los totales no dependen del orden")
		assert.Equal(t, sizes(base), sizes(got), "los tamaños no dependen del orden")
	}
}

// Caso 4: reagrupar el mismo input produce salida estructuralmente igual.
func TestGroupByFarmer_Idempotente(t *testing.T) {
	records := []entity.SaleRecord{
		venta("s1", "f1", "Ana", "c1", "", 50, 50),
		venta("s2", "f2", "Berta", "c2", "", 20, 20),
		venta("s3", "f1", "Ana", "c1", "", 30, 80),
	}

	assert.Equal(t, sales.GroupByFarmer(records), sales.GroupByFarmer(records))
}

// Caso 5: el ancla del grupo es el primer registro en el orden de entrada; el
// borrado del grupo opera sobre ese id.
func TestGroupByFarmer_AnclaEsElPrimero(t *testing.T) {
	records := []entity.SaleRecord{
		venta("s2", "f1", "Ana", "c1", "", 30, 80),
		venta("s1", "f1", "Ana", "c1", "", 50, 50),
	}

	groups := sales.GroupByFarmer(records)
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Cycles, 1)
	assert.Equal(t, "s2", groups[0].Cycles[0].Anchor().ID)
}

// Caso 6: un registro de ciclo cerrado (historyId) marca el grupo como terminado
// y un registro sin referencias cae al grupo "unknown".
func TestGroupByFarmer_ClaveDeCiclo(t *testing.T) {
	records := []entity.SaleRecord{
		venta("s1", "f1", "Ana", "", "h1", 10, 400),
		venta("s2", "f1", "Ana", "", "", 5, 5),
	}

	groups := sales.GroupByFarmer(records)
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Cycles, 2)

	assert.Equal(t, "h1", groups[0].Cycles[0].Key)
	assert.True(t, groups[0].Cycles[0].IsEnded)
	assert.Equal(t, "unknown", groups[0].Cycles[1].Key)
	assert.False(t, groups[0].Cycles[1].IsEnded)
}

// Caso 7: los granjeros salen ordenados por nombre para despliegue estable.
func TestGroupByFarmer_OrdenPorNombre(t *testing.T) {
	records := []entity.SaleRecord{
		venta("s1", "f2", "Zoila", "c1", "", 10, 10),
		venta("s2", "f1", "Ana", "c2", "", 20, 20),
	}

	groups := sales.GroupByFarmer(records)
	require.Len(t, groups, 2)
	assert.Equal(t, "Ana", groups[0].FarmerName)
	assert.Equal(t, "Zoila", groups[1].FarmerName)
}
