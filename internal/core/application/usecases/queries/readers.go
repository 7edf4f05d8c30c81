// Package queries holds the read side: order projections for the POS, KDS and FOH
// views plus menu and table listings. Handlers never write.
package queries

import (
	"context"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/domain/model/restaurant"
)

// OrderReader loads order aggregates. The GORM order repository implements it.
type OrderReader interface {
	Get(ctx context.Context, restaurantID kernel.RestaurantID, id kernel.SequenceID) (*order.Order, error)
	List(ctx context.Context, restaurantID kernel.RestaurantID) ([]*order.Order, error)
}

// MenuReader loads a restaurant's menu. The GORM restaurant repository implements it.
type MenuReader interface {
	Menu(ctx context.Context, restaurantID kernel.RestaurantID) (restaurant.Menu, error)
}
