package http

import (
	"kitchen/internal/core/application/usecases/queries"
	"kitchen/internal/core/domain/model/kernel"
)

func int64Ptr(id *kernel.SequenceID) *int64 {
	if id == nil {
		return nil
	}
	v := id.Int64()
	return &v
}

func fromModViews(views []queries.ModView) []Modification {
	mods := make([]Modification, 0, len(views))
	for _, m := range views {
		mods = append(mods, Modification{Op: m.Op, Ingredient: m.Ingredient})
	}
	return mods
}

func fromOrderView(v queries.OrderView) Order {
	o := Order{
		Id:           v.ID.Int64(),
		RestaurantId: v.RestaurantID.String(),
		Channel:      v.Channel.String(),
		Number:       v.Number,
		TableId:      int64Ptr(v.TableID),
		CreatedAt:    v.CreatedAt,
		Part:         v.Part.Int(),
		Served:       v.Served,
		Status:       v.Status,
		TotalCents:   v.Total.Cents(),
		LineItems:    make([]LineItem, 0, len(v.LineItems)),
	}
	for _, li := range v.LineItems {
		o.LineItems = append(o.LineItems, LineItem{
			Id:         li.ID.Int64(),
			MenuItemId: li.MenuItemID.Int64(),
			Note:       li.Note,
			Mods:       fromModViews(li.Mods),
			IsReady:    li.IsReady,
			Part:       li.Part.Int(),
			PriceCents: li.Price.Cents(),
		})
	}
	return o
}

func fromKDSOrderView(v queries.KDSOrderView) KDSOrder {
	o := KDSOrder{
		Id:        v.ID.Int64(),
		Channel:   v.Channel.String(),
		Number:    v.Number,
		TableId:   int64Ptr(v.TableID),
		CreatedAt: v.CreatedAt,
		Part:      v.Part.Int(),
		Status:    v.Status,
		Rows:      make([]KDSRow, 0, len(v.Rows)),
	}
	for _, r := range v.Rows {
		o.Rows = append(o.Rows, KDSRow{
			MenuItemId: r.MenuItemID.Int64(),
			Name:       r.Name,
			Mods:       fromModViews(r.Mods),
			Note:       r.Note,
			IsReady:    r.IsReady,
			Quantity:   r.Quantity,
		})
	}
	return o
}

func fromActiveLineItemView(v queries.ActiveLineItemView) ActiveLineItem {
	return ActiveLineItem{
		LineItemId:  v.LineItemID.Int64(),
		OrderId:     v.OrderID.Int64(),
		OrderNumber: v.OrderNumber,
		Channel:     v.Channel,
		TableId:     int64Ptr(v.TableID),
		CreatedAt:   v.CreatedAt,
		MenuItemId:  v.MenuItemID.Int64(),
		Name:        v.Name,
		Note:        v.Note,
		Mods:        fromModViews(v.Mods),
		IsReady:     v.IsReady,
		Part:        v.Part,
	}
}
