package collaborator

import (
	"context"
	"time"

	"github.com/avicampo/avicola-api/internal/domain/entity"
	"github.com/avicampo/avicola-api/internal/domain/remote"
)

// scopedSources implementa remote.ScopedSources sobre un namespace concreto del
// colaborador. El mismo código sirve a los dos alcances: solo cambia el prefijo
// de operación, y con él la clave de caché.
type scopedSources struct {
	c         *Client
	namespace string
}

// NewOfficerSources fuentes del alcance oficial ("mis datos").
func NewOfficerSources(c *Client) remote.ScopedSources {
	return &scopedSources{c: c, namespace: NamespaceOfficer}
}

func (s *scopedSources) op(resource, verb string) string {
	return s.namespace + "." + resource + "." + verb
}

// ── Granjeros ─────────────────────────────────────────────────────────────────

func (s *scopedSources) ListFarmers(ctx context.Context, f remote.ListFilter) ([]entity.Farmer, string, error) {
	op := s.op("farmers", "list")
	var env listEnvelope[entity.Farmer]
	if err := s.c.query(ctx, op, f.CacheKey(op), filterParams(f), &env); err != nil {
		return nil, "", err
	}
	return env.Data, env.NextCursor, nil
}

func (s *scopedSources) GetFarmer(ctx context.Context, orgID, farmerID string) (*entity.Farmer, error) {
	op := s.op("farmers", "get")
	f := remote.ListFilter{OrgID: orgID, FarmerID: farmerID}
	var env itemEnvelope[entity.Farmer]
	if err := s.c.query(ctx, op, f.CacheKey(op), filterParams(f), &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// ── Ciclos ────────────────────────────────────────────────────────────────────

func (s *scopedSources) ListCycles(ctx context.Context, f remote.ListFilter) ([]entity.Cycle, string, error) {
	op := s.op("cycles", "list")
	var env listEnvelope[entity.Cycle]
	if err := s.c.query(ctx, op, f.CacheKey(op), filterParams(f), &env); err != nil {
		return nil, "", err
	}
	return env.Data, env.NextCursor, nil
}

func (s *scopedSources) GetCycle(ctx context.Context, orgID, cycleID string) (*entity.Cycle, error) {
	op := s.op("cycles", "get")
	params := map[string]string{"orgId": orgID, "cycleId": cycleID}
	var env itemEnvelope[entity.Cycle]
	if err := s.c.query(ctx, op, op+"|org="+orgID+"|cycle="+cycleID, params, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (s *scopedSources) ListCycleHistory(ctx context.Context, orgID, farmerID string) ([]entity.CycleHistory, error) {
	op := s.op("cycles", "history")
	f := remote.ListFilter{OrgID: orgID, FarmerID: farmerID}
	var env listEnvelope[entity.CycleHistory]
	if err := s.c.query(ctx, op, f.CacheKey(op), filterParams(f), &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// ── Ledger de alimento ────────────────────────────────────────────────────────

func (s *scopedSources) ListStockLogs(ctx context.Context, orgID, farmerID string) ([]entity.StockLog, error) {
	op := s.op("stock", "logs")
	f := remote.ListFilter{OrgID: orgID, FarmerID: farmerID}
	var env listEnvelope[entity.StockLog]
	if err := s.c.query(ctx, op, f.CacheKey(op), filterParams(f), &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// ── Ventas ────────────────────────────────────────────────────────────────────

func (s *scopedSources) ListSales(ctx context.Context, f remote.ListFilter) ([]entity.SaleRecord, string, error) {
	op := s.op("sales", "list")
	var env listEnvelope[entity.SaleRecord]
	if err := s.c.query(ctx, op, f.CacheKey(op), filterParams(f), &env); err != nil {
		return nil, "", err
	}
	return env.Data, env.NextCursor, nil
}

// ── Órdenes ───────────────────────────────────────────────────────────────────

func orderResource(orderType string) string {
	switch orderType {
	case entity.OrderDOC:
		return "docOrders"
	case entity.OrderSale:
		return "saleOrders"
	default:
		return "feedOrders"
	}
}

func (s *scopedSources) ListOrders(ctx context.Context, orderType string, f remote.ListFilter) ([]entity.Order, string, error) {
	op := s.op(orderResource(orderType), "list")
	var env listEnvelope[entity.Order]
	if err := s.c.query(ctx, op, f.CacheKey(op), filterParams(f), &env); err != nil {
		return nil, "", err
	}
	return env.Data, env.NextCursor, nil
}

// managementSources alcance gerencial: todo lo del alcance base más analítica,
// reportes y miembros.
type managementSources struct {
	scopedSources
}

// NewManagementSources fuentes del alcance gerencial.
func NewManagementSources(c *Client) remote.ManagementSources {
	return &managementSources{scopedSources{c: c, namespace: NamespaceManagement}}
}

func (s *managementSources) GetDashboard(ctx context.Context, orgID string, officerID *string) (*remote.DashboardResult, error) {
	op := s.op("analytics", "dashboard")
	f := remote.ListFilter{OrgID: orgID, OfficerID: officerID}
	var env itemEnvelope[remote.DashboardResult]
	if err := s.c.query(ctx, op, f.CacheKey(op), filterParams(f), &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (s *managementSources) ListOfficerPerformance(ctx context.Context, orgID string, from, to time.Time) ([]entity.OfficerPerformance, error) {
	op := s.op("performanceReports", "list")
	params := map[string]string{
		"orgId": orgID,
		"from":  from.Format(time.RFC3339),
		"to":    to.Format(time.RFC3339),
	}
	key := op + "|org=" + orgID + "|from=" + params["from"] + "|to=" + params["to"]
	var env listEnvelope[entity.OfficerPerformance]
	if err := s.c.query(ctx, op, key, params, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

func (s *managementSources) ListMembers(ctx context.Context, f remote.ListFilter) ([]entity.Member, string, error) {
	op := s.op("members", "list")
	var env listEnvelope[entity.Member]
	if err := s.c.query(ctx, op, f.CacheKey(op), filterParams(f), &env); err != nil {
		return nil, "", err
	}
	return env.Data, env.NextCursor, nil
}
