package entity

import "github.com/shopspring/decimal"

// OfficerPerformance desempeño agregado de un oficial de campo para el período
// consultado. El colaborador hace la agregación; aquí solo se refleja y se
// clasifica para presentación.
type OfficerPerformance struct {
	OfficerID    string          `json:"officerId"`
	OfficerName  string          `json:"officerName"`
	Farmers      int             `json:"farmers"`
	ActiveCycles int             `json:"activeCycles"`
	TotalPlaced  int             `json:"totalPlaced"`
	TotalSold    int             `json:"totalSold"`
	Mortality    int             `json:"mortality"`
	AvgFCR       decimal.Decimal `json:"avgFcr"`
	AvgEPI       decimal.Decimal `json:"avgEpi"`
}
