package production_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/avicampo/avicola-api/internal/domain/production"
)

// Caso 1: con mortalidad menor al promedio histórico el veredicto es "mejor"
// (para mortalidad, menos es mejor).
func TestCompareToHistory_MortalidadMejor(t *testing.T) {
	history := []decimal.Decimal{decimal.NewFromInt(4), decimal.NewFromInt(6)}
	cmp := production.CompareToHistory(decimal.NewFromInt(3), history, true)

	assert.Equal(t, production.VerdictBetter, cmp.Verdict)
	assert.Equal(t, "5.00", cmp.HistoricalAvg.StringFixed(2))
}

// Caso 2: para métricas donde más es mejor (EPI) la dirección se invierte.
func TestCompareToHistory_DireccionInvertida(t *testing.T) {
	history := []decimal.Decimal{decimal.NewFromInt(300)}
	cmp := production.CompareToHistory(decimal.NewFromInt(320), history, false)
	assert.Equal(t, production.VerdictBetter, cmp.Verdict)
}

// Caso 3: un historial vacío no es un error; el veredicto lo dice.
func TestCompareToHistory_SinHistorial(t *testing.T) {
	cmp := production.CompareToHistory(decimal.NewFromInt(3), nil, true)
	assert.Equal(t, production.VerdictNoHistory, cmp.Verdict)
}

// Caso 4: los ciclos históricos con doc=0 se descartan en lugar de aportar
// ceros que abaraten el promedio.
func TestHistoricalMortalityRates_DescartaDocCero(t *testing.T) {
	rates := production.HistoricalMortalityRates([]int{1000, 0, 500}, []int{50, 10, 25})

	assert.Len(t, rates, 2)
	assert.Equal(t, "5.00", rates[0].StringFixed(2))
	assert.Equal(t, "5.00", rates[1].StringFixed(2))
}
