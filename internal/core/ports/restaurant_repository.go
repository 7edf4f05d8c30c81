package ports

import (
	"context"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/restaurant"
)

// RestaurantRepository defines the persistence contract for restaurants, their
// menu items and tables.
type RestaurantRepository interface {
	Add(ctx context.Context, r *restaurant.Restaurant) error

	// Get returns errs.ObjectNotFoundError for unknown restaurants.
	Get(ctx context.Context, id kernel.RestaurantID) (*restaurant.Restaurant, error)

	AddMenuItem(ctx context.Context, item *restaurant.MenuItem) error

	// Menu returns every menu item of the restaurant indexed by id.
	Menu(ctx context.Context, restaurantID kernel.RestaurantID) (restaurant.Menu, error)

	AddTable(ctx context.Context, table *restaurant.Table) error

	// GetTable returns errs.ObjectNotFoundError when the table does not belong to the restaurant.
	GetTable(ctx context.Context, restaurantID kernel.RestaurantID, id kernel.SequenceID) (*restaurant.Table, error)

	// SaveTable stores the table's current order pointer.
	SaveTable(ctx context.Context, table *restaurant.Table) error

	// ReleaseTablesOf clears the pointer of every table seated with the given order.
	ReleaseTablesOf(ctx context.Context, restaurantID kernel.RestaurantID, orderID kernel.SequenceID) (int64, error)

	// ReleaseStaleTables clears table pointers to orders that are served or no longer exist,
	// across all restaurants.
	ReleaseStaleTables(ctx context.Context) (int64, error)
}
