// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// An order is stored as one row in "orders" plus one row per line item in "line_items";
// the order's total is denormalized onto the order row.
package orderrepo

import (
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The (restaurant_id, created_at) index serves the POS and KDS listings.
type OrderDTO struct {
	ID           int64         `gorm:"primaryKey;autoIncrement:false"`
	RestaurantID uuid.UUID     `gorm:"type:uuid;not null;index:idx_orders_restaurant_created,priority:1"`
	Channel      string        `gorm:"size:16;not null"`
	Number       int           `gorm:"not null"`
	TableID      *int64        `gorm:"index"`
	CreatedAt    time.Time     `gorm:"not null;index:idx_orders_restaurant_created,priority:2"`
	Part         int           `gorm:"not null;check:part >= 1"`
	Served       bool          `gorm:"not null"`
	TotalCents   int64         `gorm:"not null"`
	LineItems    []LineItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO is one dish of an order. RestaurantID is duplicated from the order so a
// line item can be addressed by (restaurant, id) without a join. Position keeps the
// order's line item sequence stable.
type LineItemDTO struct {
	ID           int64     `gorm:"primaryKey;autoIncrement:false"`
	OrderID      int64     `gorm:"not null;index"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;index"`
	MenuItemID   int64     `gorm:"not null"`
	Note         string    `gorm:"not null"`
	Mods         []ModDTO  `gorm:"type:text;serializer:json"`
	IsReady      bool      `gorm:"not null"`
	Part         int       `gorm:"not null;check:part >= 1"`
	PriceCents   int64     `gorm:"not null"`
	Position     int       `gorm:"not null"`
}

// TableName specifies the database table name for line items.
func (LineItemDTO) TableName() string {
	return "line_items"
}

// ModDTO is the JSON shape of one modification inside line_items.mods.
type ModDTO struct {
	Op         string `json:"op"`
	Ingredient string `json:"ingredient"`
}

// ModsFromDomain converts modifications to their stored form; never returns nil.
func ModsFromDomain(mods []order.Modification) []ModDTO {
	dtos := make([]ModDTO, 0, len(mods))
	for _, m := range mods {
		dtos = append(dtos, ModDTO{Op: string(m.Operation()), Ingredient: m.Ingredient()})
	}
	return dtos
}

// ModsToDomain rebuilds modifications, failing on entries a constructor would reject.
func ModsToDomain(dtos []ModDTO) ([]order.Modification, error) {
	mods := make([]order.Modification, 0, len(dtos))
	for _, dto := range dtos {
		m, err := order.NewModification(order.ModOperation(dto.Op), dto.Ingredient)
		if err != nil {
			return nil, err
		}
		mods = append(mods, m)
	}
	return mods, nil
}

// fromDomain converts an order aggregate to its database representation, line items included.
func fromDomain(o *order.Order) OrderDTO {
	var tableID *int64
	if id := o.TableID(); id != nil {
		raw := id.Int64()
		tableID = &raw
	}

	items := o.LineItems()
	dto := OrderDTO{
		ID:           o.ID().Int64(),
		RestaurantID: o.RestaurantID().UUID(),
		Channel:      o.Channel().String(),
		Number:       o.Number(),
		TableID:      tableID,
		CreatedAt:    o.CreatedAt(),
		Part:         o.Part().Int(),
		Served:       o.IsServed(),
		TotalCents:   o.Total().Cents(),
		LineItems:    make([]LineItemDTO, 0, len(items)),
	}
	for i, li := range items {
		dto.LineItems = append(dto.LineItems, lineItemFromDomain(o, li, i))
	}
	return dto
}

func lineItemFromDomain(o *order.Order, li *order.LineItem, position int) LineItemDTO {
	return LineItemDTO{
		ID:           li.ID().Int64(),
		OrderID:      o.ID().Int64(),
		RestaurantID: o.RestaurantID().UUID(),
		MenuItemID:   li.MenuItemID().Int64(),
		Note:         li.Note(),
		Mods:         ModsFromDomain(li.Mods()),
		IsReady:      li.IsReady(),
		Part:         li.Part().Int(),
		PriceCents:   li.Price().Cents(),
		Position:     position,
	}
}

// toDomain converts a database DTO to an order aggregate using RestoreOrder.
// LineItems must already be sorted by position.
func toDomain(dto OrderDTO) (*order.Order, error) {
	restaurantID, err := kernel.RestaurantIDFromUUID(dto.RestaurantID)
	if err != nil {
		return nil, err
	}

	var tableID *kernel.SequenceID
	if dto.TableID != nil {
		id := kernel.SequenceID(*dto.TableID)
		tableID = &id
	}

	items := make([]*order.LineItem, 0, len(dto.LineItems))
	for _, liDTO := range dto.LineItems {
		li, liErr := lineItemToDomain(liDTO)
		if liErr != nil {
			return nil, liErr
		}
		items = append(items, li)
	}

	return order.RestoreOrder(
		kernel.SequenceID(dto.ID),
		restaurantID,
		order.Channel(dto.Channel),
		dto.Number,
		tableID,
		dto.CreatedAt.UTC(),
		order.Course(dto.Part),
		dto.Served,
		kernel.Money(dto.TotalCents),
		items,
	)
}

func lineItemToDomain(dto LineItemDTO) (*order.LineItem, error) {
	mods, err := ModsToDomain(dto.Mods)
	if err != nil {
		return nil, err
	}
	return order.RestoreLineItem(
		kernel.SequenceID(dto.ID),
		kernel.SequenceID(dto.MenuItemID),
		kernel.Money(dto.PriceCents),
		dto.Note,
		mods,
		dto.IsReady,
		order.Course(dto.Part),
	)
}
