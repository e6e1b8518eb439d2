package production

import "github.com/shopspring/decimal"

// RatioSentinel se muestra en lugar de una razón indefinida. Nunca se despliega
// NaN ni Infinity.
const RatioSentinel = "–"

// FormatBags formatea una cantidad en bultos con un decimal fijo.
func FormatBags(d decimal.Decimal) string {
	return d.StringFixed(1)
}

// FormatRatio formatea una razón con dos decimales fijos, o el centinela si la
// razón no está definida (denominador cero).
func FormatRatio(d decimal.Decimal, defined bool) string {
	if !defined {
		return RatioSentinel
	}
	return d.StringFixed(2)
}
