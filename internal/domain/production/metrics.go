// Package production contiene la matemática derivada de los ciclos productivos:
// aves vivas, consumo por ave, tasa de mortalidad y clasificaciones de despliegue.
// Son funciones puras sobre datos ya consultados; toleran denominadores en cero
// sin lanzar jamás NaN/Infinity hacia la capa de presentación.
package production

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// LiveBirds aves vivas de un ciclo: doc - mortalidad - vendidas, nunca negativo.
func LiveBirds(doc, mortality, birdsSold int) int {
	live := doc - mortality - birdsSold
	if live < 0 {
		return 0
	}
	return live
}

// FeedPerBird bultos consumidos por ave viva. Cero si no quedan aves vivas.
func FeedPerBird(intake decimal.Decimal, liveBirds int) decimal.Decimal {
	if liveBirds <= 0 {
		return decimal.Zero
	}
	return intake.Div(decimal.NewFromInt(int64(liveBirds)))
}

// DailyAvgIntake consumo diario promedio del ciclo. Cero si la edad es cero.
func DailyAvgIntake(intake decimal.Decimal, age int) decimal.Decimal {
	if age <= 0 {
		return decimal.Zero
	}
	return intake.Div(decimal.NewFromInt(int64(age)))
}

// MortalityRatePct mortalidad acumulada como porcentaje del alojamiento.
// Cero si no se alojaron aves.
func MortalityRatePct(mortality, doc int) decimal.Decimal {
	if doc <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(mortality)).Div(decimal.NewFromInt(int64(doc))).Mul(hundred)
}

// SoldPercent porcentaje vendido sobre el total alojado. Cero si no hubo alojamiento.
func SoldPercent(totalSold, totalPlaced int) decimal.Decimal {
	if totalPlaced <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(totalSold)).Div(decimal.NewFromInt(int64(totalPlaced))).Mul(hundred)
}
