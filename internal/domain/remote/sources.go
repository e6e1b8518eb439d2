package remote

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/avicampo/avicola-api/internal/domain/entity"
)

// FarmerSource consultas de granjeros de un alcance (oficial o gerencial).
type FarmerSource interface {
	ListFarmers(ctx context.Context, f ListFilter) ([]entity.Farmer, string, error)
	GetFarmer(ctx context.Context, orgID, farmerID string) (*entity.Farmer, error)
}

// CycleSource consultas de ciclos productivos.
type CycleSource interface {
	ListCycles(ctx context.Context, f ListFilter) ([]entity.Cycle, string, error)
	GetCycle(ctx context.Context, orgID, cycleID string) (*entity.Cycle, error)
	ListCycleHistory(ctx context.Context, orgID, farmerID string) ([]entity.CycleHistory, error)
}

// StockSource consultas del ledger de alimento.
type StockSource interface {
	ListStockLogs(ctx context.Context, orgID, farmerID string) ([]entity.StockLog, error)
}

// SaleSource consultas de registros de venta (planos, sin agrupar).
type SaleSource interface {
	ListSales(ctx context.Context, f ListFilter) ([]entity.SaleRecord, string, error)
}

// OrderSource consultas de órdenes por tipo (feed | doc | sale).
type OrderSource interface {
	ListOrders(ctx context.Context, orderType string, f ListFilter) ([]entity.Order, string, error)
}

// ScopedSources agrupa las consultas disponibles en ambos alcances. Una pantalla
// resuelve su alcance UNA vez (según el ViewMode de la membresía) y de ahí en
// adelante el código de render es agnóstico del modo.
type ScopedSources interface {
	FarmerSource
	CycleSource
	StockSource
	SaleSource
	OrderSource
}

// DashboardResult agregado crudo de analítica gerencial tal como lo produce el
// colaborador; el caso de uso lo convierte en DTO.
type DashboardResult struct {
	Farmers        int             `json:"farmers"`
	ActiveCycles   int             `json:"activeCycles"`
	TotalPlaced    int             `json:"totalPlaced"`
	TotalSold      int             `json:"totalSold"`
	TotalMortality int             `json:"totalMortality"`
	FeedConsumed   decimal.Decimal `json:"feedConsumed"` // bultos
	AvgFCR         decimal.Decimal `json:"avgFcr"`
}

// AnalyticsSource consultas gerenciales de analítica.
type AnalyticsSource interface {
	GetDashboard(ctx context.Context, orgID string, officerID *string) (*DashboardResult, error)
}

// ReportSource consultas gerenciales de desempeño de oficiales.
type ReportSource interface {
	ListOfficerPerformance(ctx context.Context, orgID string, from, to time.Time) ([]entity.OfficerPerformance, error)
}

// MemberSource consultas gerenciales de miembros de la organización.
type MemberSource interface {
	ListMembers(ctx context.Context, f ListFilter) ([]entity.Member, string, error)
}

// ManagementSources alcance gerencial completo: todo lo de ScopedSources más los
// recursos exclusivos de gerencia.
type ManagementSources interface {
	ScopedSources
	AnalyticsSource
	ReportSource
	MemberSource
}

// SelectSources despacho discriminado por ViewMode: devuelve la única fuente que
// la pantalla debe consultar. La fuente no seleccionada jamás se invoca, para no
// emitir peticiones con forma no autorizada ni llamadas desperdiciadas.
func SelectSources(mode entity.ViewMode, officer ScopedSources, management ManagementSources) ScopedSources {
	if mode == entity.ModeManagement {
		return management
	}
	return officer
}
