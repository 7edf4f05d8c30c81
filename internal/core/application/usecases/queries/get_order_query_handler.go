package queries

import (
	"context"
)

// GetOrderQueryHandler returns the full POS projection of one order.
type GetOrderQueryHandler struct {
	orders OrderReader
}

func NewGetOrderQueryHandler(orders OrderReader) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders}
}

// Handle returns ObjectNotFoundError when the order does not belong to the restaurant.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	o, err := h.orders.Get(ctx, query.RestaurantID(), query.OrderID())
	if err != nil {
		return OrderView{}, err
	}
	return newOrderView(o)
}
