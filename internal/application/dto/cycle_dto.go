package dto

// CycleDTO ciclo productivo con sus métricas derivadas listas para pantalla.
// Las razones indefinidas (denominador cero) llegan como el centinela "–",
// jamás como NaN o Infinity.
type CycleDTO struct {
	ID             string `json:"id"`
	FarmerID       string `json:"farmer_id"`
	BirdType       string `json:"bird_type"`
	DOC            int    `json:"doc"`
	Mortality      int    `json:"mortality"`
	BirdsSold      int    `json:"birds_sold"`
	LiveBirds      int    `json:"live_birds"`
	Age            int    `json:"age"`
	Status         string `json:"status"`
	Intake         string `json:"intake"`           // bultos, un decimal
	FeedPerBird    string `json:"feed_per_bird"`    // razón, dos decimales o "–"
	DailyAvgIntake string `json:"daily_avg_intake"` // razón, dos decimales o "–"
	MortalityPct   string `json:"mortality_pct"`    // razón, dos decimales o "–"
	Severity       string `json:"severity"`         // normal | atención | crítico
}

// CycleListResponse respuesta de GET /api/cycles.
type CycleListResponse struct {
	Cycles []CycleDTO   `json:"cycles"`
	Page   PageResponse `json:"page"`
}

// RecordMortalityRequest body de POST /api/cycles/:id/mortality.
type RecordMortalityRequest struct {
	Count int    `json:"count"`
	Note  string `json:"note,omitempty"`
}

// Validate validación del lado del cliente (rango numérico).
func (r RecordMortalityRequest) Validate() string {
	if r.Count <= 0 {
		return "la cantidad de mortalidad debe ser mayor que cero"
	}
	return ""
}

// BenchmarkDTO comparación de la mortalidad actual contra el promedio histórico.
type BenchmarkDTO struct {
	Current       string `json:"current"`
	HistoricalAvg string `json:"historical_avg"`
	Verdict       string `json:"verdict"` // mejor | peor | igual | sin historial
}

// CycleDetailResponse ciclo con su comparación histórica y etiqueta FCR.
type CycleDetailResponse struct {
	Cycle     CycleDTO     `json:"cycle"`
	FCRRating string       `json:"fcr_rating,omitempty"`
	Benchmark BenchmarkDTO `json:"benchmark"`
}
