// Package restaurantrepo persists restaurants with their menu items and tables.
package restaurantrepo

import (
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
)

// RestaurantDTO represents the database structure for restaurants.
type RestaurantDTO struct {
	ID        uuid.UUID     `gorm:"type:uuid;primaryKey"`
	Name      string        `gorm:"not null"`
	MenuItems []MenuItemDTO `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
	Tables    []TableDTO    `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for restaurants.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// MenuItemDTO is one dish of a restaurant's menu.
type MenuItemDTO struct {
	ID           int64     `gorm:"primaryKey;autoIncrement:false"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name         string    `gorm:"not null"`
	Category     string    `gorm:"not null"`
	PriceCents   int64     `gorm:"not null;check:price_cents >= 0"`
}

// TableName specifies the database table name for menu items.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

// TableDTO is a physical table. OrderID points at the seated order, if any.
type TableDTO struct {
	ID           int64     `gorm:"primaryKey;autoIncrement:false"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_tables_restaurant_number,priority:1"`
	Number       int       `gorm:"not null;uniqueIndex:idx_tables_restaurant_number,priority:2"`
	OrderID      *int64    `gorm:"index"`
}

// TableName specifies the database table name for tables.
func (TableDTO) TableName() string {
	return "tables"
}

func restaurantFromDomain(r *restaurant.Restaurant) RestaurantDTO {
	return RestaurantDTO{ID: r.ID().UUID(), Name: r.Name()}
}

func restaurantToDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.RestaurantIDFromUUID(dto.ID)
	if err != nil {
		return nil, err
	}
	return restaurant.RestoreRestaurant(id, dto.Name)
}

func menuItemFromDomain(m *restaurant.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:           m.ID().Int64(),
		RestaurantID: m.RestaurantID().UUID(),
		Name:         m.Name(),
		Category:     m.Category(),
		PriceCents:   m.Price().Cents(),
	}
}

func menuItemToDomain(dto MenuItemDTO) (*restaurant.MenuItem, error) {
	restaurantID, err := kernel.RestaurantIDFromUUID(dto.RestaurantID)
	if err != nil {
		return nil, err
	}
	return restaurant.NewMenuItem(
		kernel.SequenceID(dto.ID),
		restaurantID,
		dto.Name,
		dto.Category,
		kernel.Money(dto.PriceCents),
	)
}

func tableFromDomain(t *restaurant.Table) TableDTO {
	var orderID *int64
	if id := t.OrderID(); id != nil {
		raw := id.Int64()
		orderID = &raw
	}
	return TableDTO{
		ID:           t.ID().Int64(),
		RestaurantID: t.RestaurantID().UUID(),
		Number:       t.Number(),
		OrderID:      orderID,
	}
}

func tableToDomain(dto TableDTO) (*restaurant.Table, error) {
	restaurantID, err := kernel.RestaurantIDFromUUID(dto.RestaurantID)
	if err != nil {
		return nil, err
	}

	var orderID *kernel.SequenceID
	if dto.OrderID != nil {
		id := kernel.SequenceID(*dto.OrderID)
		orderID = &id
	}
	return restaurant.RestoreTable(kernel.SequenceID(dto.ID), restaurantID, dto.Number, orderID)
}
