package postgres

import (
	"context"

	"kitchen/internal/adapters/out/postgres/orderrepo"
	"kitchen/internal/adapters/out/postgres/pgerr"
	"kitchen/internal/adapters/out/postgres/restaurantrepo"
	"kitchen/internal/adapters/out/postgres/sequencerepo"

	"gorm.io/gorm"
)

// Models lists every persisted DTO in dependency order.
func Models() []any {
	return []any{
		&restaurantrepo.RestaurantDTO{},
		&restaurantrepo.MenuItemDTO{},
		&restaurantrepo.TableDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.LineItemDTO{},
		&sequencerepo.SequenceDTO{},
	}
}

// Migrate creates or updates the kitchen schema.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(Models()...); err != nil {
		return pgerr.Translate("migrate schema", err)
	}
	return nil
}
