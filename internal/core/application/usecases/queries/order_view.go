package queries

import (
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
)

// StatusServed is reported instead of a readiness value once an order is served.
const StatusServed = "served"

// OrderView is the POS projection of an order.
type OrderView struct {
	ID           kernel.SequenceID
	RestaurantID kernel.RestaurantID
	Channel      order.Channel
	Number       int
	TableID      *kernel.SequenceID
	CreatedAt    time.Time
	Part         order.Course
	Served       bool
	Status       string
	Total        kernel.Money
	LineItems    []LineItemView
}

// LineItemView is one line item of an OrderView.
type LineItemView struct {
	ID         kernel.SequenceID
	MenuItemID kernel.SequenceID
	Note       string
	Mods       []ModView
	IsReady    bool
	Part       order.Course
	Price      kernel.Money
}

// ModView is a modification in display form.
type ModView struct {
	Op         string
	Ingredient string
}

func newOrderView(o *order.Order) (OrderView, error) {
	status, err := statusOf(o)
	if err != nil {
		return OrderView{}, err
	}

	items := o.LineItems()
	view := OrderView{
		ID:           o.ID(),
		RestaurantID: o.RestaurantID(),
		Channel:      o.Channel(),
		Number:       o.Number(),
		TableID:      o.TableID(),
		CreatedAt:    o.CreatedAt(),
		Part:         o.Part(),
		Served:       o.IsServed(),
		Status:       status,
		Total:        o.Total(),
		LineItems:    make([]LineItemView, 0, len(items)),
	}
	for _, li := range items {
		view.LineItems = append(view.LineItems, LineItemView{
			ID:         li.ID(),
			MenuItemID: li.MenuItemID(),
			Note:       li.Note(),
			Mods:       modViews(li.Mods()),
			IsReady:    li.IsReady(),
			Part:       li.Part(),
			Price:      li.Price(),
		})
	}
	return view, nil
}

func statusOf(o *order.Order) (string, error) {
	if o.IsServed() {
		return StatusServed, nil
	}
	r, err := o.Readiness()
	if err != nil {
		return "", err
	}
	return r.String(), nil
}

func modViews(mods []order.Modification) []ModView {
	views := make([]ModView, 0, len(mods))
	for _, m := range mods {
		views = append(views, ModView{Op: string(m.Operation()), Ingredient: m.Ingredient()})
	}
	return views
}
