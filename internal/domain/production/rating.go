package production

import "github.com/shopspring/decimal"

// Etiquetas de clasificación FCR (solo despliegue; el FCR lo calcula el servidor).
const (
	RatingExcelente  = "Excelente"
	RatingBueno      = "Bueno"
	RatingPromedio   = "Promedio"
	RatingDeficiente = "Deficiente"
)

// Severidades del motor de sugerencias de mortalidad.
const (
	SeverityNormal   = "normal"
	SeverityWarning  = "atención"
	SeverityCritical = "crítico"
)

var (
	fcrExcelente = decimal.NewFromFloat(1.6)
	fcrBueno     = decimal.NewFromFloat(1.8)
	fcrPromedio  = decimal.NewFromFloat(2.0)

	mortalityWarningPct  = decimal.NewFromInt(2)
	mortalityCriticalPct = decimal.NewFromInt(5)
)

// FCRRating clasifica un FCR para despliegue. Los umbrales son inclusivos:
// 1.6 sigue siendo Excelente y 2.0 sigue siendo Promedio. Un FCR no positivo
// suprime la etiqueta por completo (cadena vacía).
func FCRRating(fcr decimal.Decimal) string {
	if fcr.LessThanOrEqual(decimal.Zero) {
		return ""
	}
	switch {
	case fcr.LessThanOrEqual(fcrExcelente):
		return RatingExcelente
	case fcr.LessThanOrEqual(fcrBueno):
		return RatingBueno
	case fcr.LessThanOrEqual(fcrPromedio):
		return RatingPromedio
	default:
		return RatingDeficiente
	}
}

// MortalitySeverity clasifica la tasa de mortalidad (en %) para el motor de
// sugerencias: más de 5% es crítico, entre 2% y 5% amerita atención.
func MortalitySeverity(ratePct decimal.Decimal) string {
	switch {
	case ratePct.GreaterThan(mortalityCriticalPct):
		return SeverityCritical
	case ratePct.GreaterThan(mortalityWarningPct):
		return SeverityWarning
	default:
		return SeverityNormal
	}
}
