package queries

import (
	"context"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/domain/services"
)

// KDSOrderView is one ticket on the kitchen display: the order header plus its
// active course grouped into rows.
type KDSOrderView struct {
	ID        kernel.SequenceID
	Channel   order.Channel
	Number    int
	TableID   *kernel.SequenceID
	CreatedAt time.Time
	Part      order.Course
	Status    string
	Rows      []KDSRowView
}

// KDSRowView is a grouped display row.
type KDSRowView struct {
	MenuItemID kernel.SequenceID
	Name       string
	Mods       []ModView
	Note       string
	IsReady    bool
	Quantity   int
}

// ListKDSOrdersQueryHandler produces the kitchen display. Served orders never appear.
type ListKDSOrdersQueryHandler struct {
	orders  OrderReader
	menus   MenuReader
	board   services.OrderBoard
	grouper services.KDSGrouper
}

func NewListKDSOrdersQueryHandler(orders OrderReader, menus MenuReader) ListKDSOrdersQueryHandler {
	return ListKDSOrdersQueryHandler{
		orders:  orders,
		menus:   menus,
		board:   services.NewOrderBoard(),
		grouper: services.NewKDSGrouper(),
	}
}

// Handle returns ObjectNotFoundError when an active line item references a menu item
// the restaurant no longer has.
func (h ListKDSOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]KDSOrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orders.List(ctx, query.RestaurantID())
	if err != nil {
		return nil, err
	}

	orders, err = selectOrders(h.board, h.board.Unserved(orders), query)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return []KDSOrderView{}, nil
	}

	menu, err := h.menus.Menu(ctx, query.RestaurantID())
	if err != nil {
		return nil, err
	}

	views := make([]KDSOrderView, 0, len(orders))
	for _, o := range orders {
		rows, groupErr := h.grouper.Group(o, menu)
		if groupErr != nil {
			return nil, groupErr
		}
		status, statusErr := statusOf(o)
		if statusErr != nil {
			return nil, statusErr
		}

		view := KDSOrderView{
			ID:        o.ID(),
			Channel:   o.Channel(),
			Number:    o.Number(),
			TableID:   o.TableID(),
			CreatedAt: o.CreatedAt(),
			Part:      o.Part(),
			Status:    status,
			Rows:      make([]KDSRowView, 0, len(rows)),
		}
		for _, row := range rows {
			view.Rows = append(view.Rows, KDSRowView{
				MenuItemID: row.MenuItemID,
				Name:       row.Name,
				Mods:       modViews(row.Mods),
				Note:       row.Note,
				IsReady:    row.IsReady,
				Quantity:   row.Quantity,
			})
		}
		views = append(views, view)
	}
	return views, nil
}
