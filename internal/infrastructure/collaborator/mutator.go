package collaborator

import (
	"context"

	"github.com/avicampo/avicola-api/internal/domain/entity"
	"github.com/avicampo/avicola-api/internal/domain/remote"
)

// mutator implementa remote.Mutator. Las mutaciones siempre viajan bajo el
// namespace de mutaciones del colaborador; el alcance lo decide el token de
// servicio y el orgId del cuerpo, no un namespace por modo.
type mutator struct {
	c *Client
}

// NewMutator construye el mutador del colaborador.
func NewMutator(c *Client) remote.Mutator {
	return &mutator{c: c}
}

// orgBody cuerpo base de toda mutación.
type orgBody struct {
	OrgID string `json:"orgId"`
}

// ── Granjeros ─────────────────────────────────────────────────────────────────

func (m *mutator) CreateFarmer(ctx context.Context, orgID string, in remote.FarmerInput) (*entity.Farmer, error) {
	body := struct {
		orgBody
		remote.FarmerInput
	}{orgBody{orgID}, in}
	var env itemEnvelope[entity.Farmer]
	if err := m.c.mutate(ctx, "farmers.create", body, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (m *mutator) UpdateFarmer(ctx context.Context, orgID, farmerID string, in remote.FarmerInput) (*entity.Farmer, error) {
	body := struct {
		orgBody
		FarmerID string `json:"farmerId"`
		remote.FarmerInput
	}{orgBody{orgID}, farmerID, in}
	var env itemEnvelope[entity.Farmer]
	if err := m.c.mutate(ctx, "farmers.update", body, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (m *mutator) DeleteFarmer(ctx context.Context, orgID, farmerID string) error {
	body := struct {
		orgBody
		FarmerID string `json:"farmerId"`
	}{orgBody{orgID}, farmerID}
	return m.c.mutate(ctx, "farmers.delete", body, nil)
}

// ── Ledger de alimento ────────────────────────────────────────────────────────

func (m *mutator) Restock(ctx context.Context, orgID, farmerID string, in remote.RestockInput) (*entity.StockLog, error) {
	body := struct {
		orgBody
		FarmerID string `json:"farmerId"`
		remote.RestockInput
	}{orgBody{orgID}, farmerID, in}
	var env itemEnvelope[entity.StockLog]
	if err := m.c.mutate(ctx, "stock.restock", body, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (m *mutator) TransferStock(ctx context.Context, orgID string, in remote.TransferInput) error {
	body := struct {
		orgBody
		remote.TransferInput
	}{orgBody{orgID}, in}
	return m.c.mutate(ctx, "stock.transfer", body, nil)
}

func (m *mutator) RevertStockLog(ctx context.Context, orgID, farmerID, logID, note string) (*entity.StockLog, error) {
	body := struct {
		orgBody
		FarmerID string `json:"farmerId"`
		LogID    string `json:"logId"`
		Note     string `json:"note,omitempty"`
	}{orgBody{orgID}, farmerID, logID, note}
	var env itemEnvelope[entity.StockLog]
	if err := m.c.mutate(ctx, "stock.revertLog", body, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// ── Ciclos ────────────────────────────────────────────────────────────────────

func (m *mutator) RecordMortality(ctx context.Context, orgID, cycleID string, in remote.MortalityInput) error {
	body := struct {
		orgBody
		CycleID string `json:"cycleId"`
		remote.MortalityInput
	}{orgBody{orgID}, cycleID, in}
	return m.c.mutate(ctx, "cycles.recordMortality", body, nil)
}

func (m *mutator) CloseCycle(ctx context.Context, orgID, cycleID string) error {
	body := struct {
		orgBody
		CycleID string `json:"cycleId"`
	}{orgBody{orgID}, cycleID}
	return m.c.mutate(ctx, "cycles.close", body, nil)
}

// ── Ventas ────────────────────────────────────────────────────────────────────

func (m *mutator) RecordSale(ctx context.Context, orgID, cycleID string, in remote.SaleInput) (*entity.SaleRecord, error) {
	body := struct {
		orgBody
		CycleID string `json:"cycleId"`
		remote.SaleInput
	}{orgBody{orgID}, cycleID, in}
	var env itemEnvelope[entity.SaleRecord]
	if err := m.c.mutate(ctx, "sales.record", body, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (m *mutator) DeleteSale(ctx context.Context, orgID, saleID string) error {
	body := struct {
		orgBody
		SaleID string `json:"saleId"`
	}{orgBody{orgID}, saleID}
	return m.c.mutate(ctx, "sales.delete", body, nil)
}

// ── Órdenes ───────────────────────────────────────────────────────────────────

func (m *mutator) PlaceOrder(ctx context.Context, orgID, orderType string, in remote.OrderInput) (*entity.Order, error) {
	body := struct {
		orgBody
		remote.OrderInput
	}{orgBody{orgID}, in}
	var env itemEnvelope[entity.Order]
	if err := m.c.mutate(ctx, orderResource(orderType)+".place", body, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (m *mutator) ConfirmOrder(ctx context.Context, orgID, orderType, orderID string) (*entity.Order, error) {
	body := struct {
		orgBody
		OrderID string `json:"orderId"`
	}{orgBody{orgID}, orderID}
	var env itemEnvelope[entity.Order]
	if err := m.c.mutate(ctx, orderResource(orderType)+".confirm", body, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// ── Miembros ──────────────────────────────────────────────────────────────────

func (m *mutator) ApproveMember(ctx context.Context, orgID, memberID string) error {
	body := struct {
		orgBody
		MemberID string `json:"memberId"`
	}{orgBody{orgID}, memberID}
	return m.c.mutate(ctx, "members.approve", body, nil)
}

func (m *mutator) RejectMember(ctx context.Context, orgID, memberID string) error {
	body := struct {
		orgBody
		MemberID string `json:"memberId"`
	}{orgBody{orgID}, memberID}
	return m.c.mutate(ctx, "members.reject", body, nil)
}
