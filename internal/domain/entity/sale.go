package entity

import "time"

// CycleContext contexto de ciclo desnormalizado que viaja dentro de cada registro
// de venta. CumulativeBirdsSold es un total corrido por registro: al agruparse se
// combina con max, nunca con suma (sumar duplicaría el acumulado).
type CycleContext struct {
	DOC                 int `json:"doc"`
	Age                 int `json:"age"`
	CumulativeBirdsSold int `json:"cumulativeBirdsSold"`
}

// SaleRecord un registro plano de venta tal como lo entrega el colaborador:
// referencia a un ciclo vivo (CycleID) o a uno cerrado (HistoryID), más el
// contexto desnormalizado del ciclo y del granjero.
type SaleRecord struct {
	ID           string       `json:"id"`
	FarmerID     string       `json:"farmerId"`
	FarmerName   string       `json:"farmerName"`
	CycleID      string       `json:"cycleId,omitempty"`
	HistoryID    string       `json:"historyId,omitempty"`
	BirdsSold    int          `json:"birdsSold"`
	SaleDate     time.Time    `json:"saleDate"`
	CycleContext CycleContext `json:"cycleContext"`
}

// CycleKey clave de agrupación del registro: cycleId ?? historyId ?? "unknown".
func (s SaleRecord) CycleKey() string {
	switch {
	case s.CycleID != "":
		return s.CycleID
	case s.HistoryID != "":
		return s.HistoryID
	default:
		return "unknown"
	}
}
