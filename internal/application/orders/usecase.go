// Package orders contiene los casos de uso de órdenes (alimento, pollitos y
// venta): el resumen con tres consultas concurrentes e independientes, y las
// mutaciones de creación y confirmación.
package orders

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/avicampo/avicola-api/internal/application/dto"
	"github.com/avicampo/avicola-api/internal/application/invalidate"
	"github.com/avicampo/avicola-api/internal/application/session"
	"github.com/avicampo/avicola-api/internal/domain"
	"github.com/avicampo/avicola-api/internal/domain/entity"
	"github.com/avicampo/avicola-api/internal/domain/remote"
)

// UseCase casos de uso de órdenes.
type UseCase struct {
	officer    remote.ScopedSources
	management remote.ManagementSources
	mutator    remote.OrderMutator
	inv        *invalidate.Invalidator
}

// NewUseCase construye el caso de uso.
func NewUseCase(officer remote.ScopedSources, management remote.ManagementSources, mutator remote.OrderMutator, inv *invalidate.Invalidator) *UseCase {
	return &UseCase{officer: officer, management: management, mutator: mutator, inv: inv}
}

// Overview consulta los tres tipos de orden en paralelo. Cada consulta lleva su
// propio estado de carga/error y no bloquea a las demás: una sección caída llega
// con su mensaje y las otras con sus datos.
func (uc *UseCase) Overview(ctx context.Context, m entity.Membership, req dto.PageRequest, selected *string) (*dto.OrdersOverviewResponse, error) {
	src := remote.SelectSources(m.ActiveMode, uc.officer, uc.management)
	filter := session.BuildFilter(m, req, selected)

	type sectionResult struct {
		orderType string
		orders    []entity.Order
		err       error
	}
	ch := make(chan sectionResult, 3)

	for _, orderType := range []string{entity.OrderFeed, entity.OrderDOC, entity.OrderSale} {
		go func(t string) {
			list, _, err := src.ListOrders(ctx, t, filter)
			ch <- sectionResult{orderType: t, orders: list, err: err}
		}(orderType)
	}

	out := &dto.OrdersOverviewResponse{}
	for i := 0; i < 3; i++ {
		res := <-ch
		section := buildSection(res.orders, res.err)
		switch res.orderType {
		case entity.OrderFeed:
			out.Feed = section
		case entity.OrderDOC:
			out.DOC = section
		case entity.OrderSale:
			out.Sale = section
		}
	}
	return out, nil
}

// Place crea una orden en estado DRAFT.
func (uc *UseCase) Place(ctx context.Context, m entity.Membership, orderType string, req dto.PlaceOrderRequest) (*dto.OrderDTO, error) {
	if msg := req.Validate(); msg != "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, msg)
	}
	kind, err := placeMutation(orderType)
	if err != nil {
		return nil, err
	}

	items := make([]remote.OrderItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		qty, qErr := decimal.NewFromString(it.Quantity)
		if qErr != nil || qty.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: cantidad inválida en renglón %q", domain.ErrInvalidInput, it.Description)
		}
		price, pErr := decimal.NewFromString(it.UnitPrice)
		if pErr != nil || price.IsNegative() {
			return nil, fmt.Errorf("%w: precio inválido en renglón %q", domain.ErrInvalidInput, it.Description)
		}
		items = append(items, remote.OrderItemInput{Description: it.Description, Quantity: qty, UnitPrice: price})
	}

	order, err := uc.mutator.PlaceOrder(ctx, m.OrgID, orderType, remote.OrderInput{
		FarmerID:     req.FarmerID,
		Items:        items,
		DeliveryDate: req.DeliveryDate,
	})
	if err != nil {
		return nil, err
	}
	uc.inv.OnSuccess(ctx, kind)
	out := toOrderDTO(*order)
	return &out, nil
}

// Confirm pasa la orden DRAFT → CONFIRMED. Los efectos (mover MainStock, crear
// ciclos) ocurren del lado del servidor; aquí solo se invalida y se refresca.
func (uc *UseCase) Confirm(ctx context.Context, m entity.Membership, orderType, orderID string) (*dto.OrderDTO, error) {
	kind, err := confirmMutation(orderType)
	if err != nil {
		return nil, err
	}
	order, err := uc.mutator.ConfirmOrder(ctx, m.OrgID, orderType, orderID)
	if err != nil {
		return nil, err
	}
	uc.inv.OnSuccess(ctx, kind)
	out := toOrderDTO(*order)
	return &out, nil
}

func placeMutation(orderType string) (remote.MutationKind, error) {
	switch orderType {
	case entity.OrderFeed:
		return remote.MutationPlaceFeedOrder, nil
	case entity.OrderDOC:
		return remote.MutationPlaceDOCOrder, nil
	case entity.OrderSale:
		return remote.MutationPlaceSaleOrder, nil
	default:
		return "", fmt.Errorf("%w: tipo de orden desconocido %q", domain.ErrInvalidInput, orderType)
	}
}

func confirmMutation(orderType string) (remote.MutationKind, error) {
	switch orderType {
	case entity.OrderFeed:
		return remote.MutationConfirmFeedOrder, nil
	case entity.OrderDOC:
		return remote.MutationConfirmDOCOrder, nil
	case entity.OrderSale:
		return remote.MutationConfirmSaleOrder, nil
	default:
		return "", fmt.Errorf("%w: tipo de orden desconocido %q", domain.ErrInvalidInput, orderType)
	}
}

func buildSection(ordersList []entity.Order, err error) dto.OrderSection {
	if err != nil {
		return dto.OrderSection{Orders: []dto.OrderDTO{}, Error: err.Error()}
	}
	out := make([]dto.OrderDTO, 0, len(ordersList))
	for _, o := range ordersList {
		out = append(out, toOrderDTO(o))
	}
	return dto.OrderSection{Orders: out}
}

func toOrderDTO(o entity.Order) dto.OrderDTO {
	items := make([]dto.OrderItemDTO, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemDTO{
			Description: it.Description,
			Quantity:    it.Quantity.StringFixed(1),
			UnitPrice:   it.UnitPrice.StringFixed(2),
		})
	}
	return dto.OrderDTO{
		ID:           o.ID,
		FarmerID:     o.FarmerID,
		Type:         o.Type,
		Status:       o.Status,
		Items:        items,
		OrderDate:    o.OrderDate,
		DeliveryDate: o.DeliveryDate,
	}
}
