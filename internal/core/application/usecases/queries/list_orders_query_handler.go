package queries

import (
	"context"

	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/domain/services"
)

// ListOrdersQueryHandler produces the POS order list.
type ListOrdersQueryHandler struct {
	orders OrderReader
	board  services.OrderBoard
}

func NewListOrdersQueryHandler(orders OrderReader) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{orders: orders, board: services.NewOrderBoard()}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orders.List(ctx, query.RestaurantID())
	if err != nil {
		return nil, err
	}

	orders, err = selectOrders(h.board, orders, query)
	if err != nil {
		return nil, err
	}

	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		view, viewErr := newOrderView(o)
		if viewErr != nil {
			return nil, viewErr
		}
		views = append(views, view)
	}
	return views, nil
}

// selectOrders applies the query's status filter and time sort.
func selectOrders(board services.OrderBoard, orders []*order.Order, query ListOrdersQuery) ([]*order.Order, error) {
	if status, ok := query.Status(); ok {
		filtered, err := board.Filter(orders, status)
		if err != nil {
			return nil, err
		}
		orders = filtered
	}
	if query.SortByTime() {
		orders = board.SortByTime(orders)
	}
	return orders, nil
}
