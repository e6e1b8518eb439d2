package dto

import "time"

// OfficerPerformanceDTO desempeño de un oficial para el reporte gerencial.
type OfficerPerformanceDTO struct {
	OfficerID    string `json:"officer_id"`
	OfficerName  string `json:"officer_name"`
	Farmers      int    `json:"farmers"`
	ActiveCycles int    `json:"active_cycles"`
	TotalPlaced  int    `json:"total_placed"`
	TotalSold    int    `json:"total_sold"`
	SoldPercent  string `json:"sold_percent"`  // dos decimales o "–"
	MortalityPct string `json:"mortality_pct"` // dos decimales o "–"
	AvgFCR       string `json:"avg_fcr"`
	FCRRating    string `json:"fcr_rating,omitempty"`
	AvgEPI       string `json:"avg_epi"`
}

// PerformanceReportResponse respuesta de GET /api/reports/performance.
type PerformanceReportResponse struct {
	From     time.Time               `json:"from"`
	To       time.Time               `json:"to"`
	Officers []OfficerPerformanceDTO `json:"officers"`
}

// ExportReportRequest body de POST /api/reports/performance/export.
type ExportReportRequest struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// ExportReportResponse confirma el PDF escrito en el directorio autorizado.
type ExportReportResponse struct {
	Filename string `json:"filename"`
	Path     string `json:"path"`
}
