package production

import "github.com/shopspring/decimal"

// Veredictos de la comparación contra el promedio histórico.
const (
	VerdictBetter    = "mejor"
	VerdictWorse     = "peor"
	VerdictEqual     = "igual"
	VerdictNoHistory = "sin historial"
)

// Comparison resultado de comparar una razón actual contra su promedio histórico.
type Comparison struct {
	Current       decimal.Decimal `json:"current"`
	HistoricalAvg decimal.Decimal `json:"historicalAvg"`
	Verdict       string          `json:"verdict"` // mejor | peor | igual | sin historial
}

// CompareToHistory promedia la misma razón sobre el historial suministrado y
// clasifica el valor actual. lowerIsBetter decide la dirección (FCR y mortalidad
// mejoran hacia abajo; EPI hacia arriba). Un historial vacío no es un error:
// produce VerdictNoHistory.
func CompareToHistory(current decimal.Decimal, history []decimal.Decimal, lowerIsBetter bool) Comparison {
	if len(history) == 0 {
		return Comparison{Current: current, Verdict: VerdictNoHistory}
	}

	sum := decimal.Zero
	for _, h := range history {
		sum = sum.Add(h)
	}
	avg := sum.Div(decimal.NewFromInt(int64(len(history))))

	c := Comparison{Current: current, HistoricalAvg: avg}
	switch {
	case current.Equal(avg):
		c.Verdict = VerdictEqual
	case current.LessThan(avg) == lowerIsBetter:
		c.Verdict = VerdictBetter
	default:
		c.Verdict = VerdictWorse
	}
	return c
}

// HistoricalMortalityRates deriva la tasa de mortalidad de cada ciclo histórico,
// con la misma guarda de división por cero que MortalityRatePct. Los ciclos sin
// alojamiento se descartan en vez de aportar ceros que abaraten el promedio.
func HistoricalMortalityRates(docs, mortalities []int) []decimal.Decimal {
	n := len(docs)
	if len(mortalities) < n {
		n = len(mortalities)
	}
	rates := make([]decimal.Decimal, 0, n)
	for i := 0; i < n; i++ {
		if docs[i] <= 0 {
			continue
		}
		rates = append(rates, MortalityRatePct(mortalities[i], docs[i]))
	}
	return rates
}
