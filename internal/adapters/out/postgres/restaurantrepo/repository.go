package restaurantrepo

import (
	"context"
	"errors"

	"kitchen/internal/adapters/out/postgres/pgerr"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/restaurant"
	"kitchen/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// releaseStaleSQL frees tables whose order was served or deleted.
const releaseStaleSQL = `
	UPDATE tables SET order_id = NULL
	WHERE order_id IS NOT NULL
	  AND NOT EXISTS (
	    SELECT 1 FROM orders o
	    WHERE o.id = tables.order_id AND o.served = ?
	  )`

// GormRestaurantRepository implements ports.RestaurantRepository using GORM.
type GormRestaurantRepository struct {
	db *gorm.DB
}

// NewGormRestaurantRepository creates a new GORM restaurant repository.
func NewGormRestaurantRepository(db *gorm.DB) *GormRestaurantRepository {
	return &GormRestaurantRepository{db: db}
}

// Add inserts a new restaurant.
func (r *GormRestaurantRepository) Add(ctx context.Context, aggregate *restaurant.Restaurant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := restaurantFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		return pgerr.Translate("add restaurant", err)
	}
	return nil
}

// Get retrieves a restaurant by id.
func (r *GormRestaurantRepository) Get(ctx context.Context, id kernel.RestaurantID) (*restaurant.Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RestaurantDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.UUID()).Error; err != nil {
		return nil, pgerr.NotFound("get restaurant", "restaurant", id.String(), err)
	}
	return restaurantToDomain(dto)
}

// AddMenuItem inserts a menu item. A missing restaurant surfaces as a foreign key violation.
func (r *GormRestaurantRepository) AddMenuItem(ctx context.Context, item *restaurant.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := menuItemFromDomain(item)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate("add menu item", err)
	}
	return nil
}

// Menu returns every menu item of a restaurant keyed by id.
func (r *GormRestaurantRepository) Menu(ctx context.Context, restaurantID kernel.RestaurantID) (restaurant.Menu, error) {
	if err := restaurantID.Validate(); err != nil {
		return nil, err
	}

	var dtos []MenuItemDTO
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID.UUID()).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, pgerr.Translate("load menu", err)
	}

	items := make([]*restaurant.MenuItem, 0, len(dtos))
	for _, dto := range dtos {
		item, convErr := menuItemToDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		items = append(items, item)
	}
	return restaurant.NewMenu(items), nil
}

// AddTable inserts a table. Table numbers are unique per restaurant.
func (r *GormRestaurantRepository) AddTable(ctx context.Context, table *restaurant.Table) error {
	if err := table.Validate(); err != nil {
		return err
	}

	dto := tableFromDomain(table)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate("add table", err)
	}
	return nil
}

// GetTable retrieves a table of the given restaurant.
func (r *GormRestaurantRepository) GetTable(
	ctx context.Context,
	restaurantID kernel.RestaurantID,
	id kernel.SequenceID,
) (*restaurant.Table, error) {
	if err := errors.Join(restaurantID.Validate(), id.Validate()); err != nil {
		return nil, err
	}

	var dto TableDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ? AND restaurant_id = ?", id.Int64(), restaurantID.UUID()).Error
	if err != nil {
		return nil, pgerr.NotFound("get table", "table", id.Int64(), err)
	}
	return tableToDomain(dto)
}

// SaveTable writes the table's number and order pointer.
func (r *GormRestaurantRepository) SaveTable(ctx context.Context, table *restaurant.Table) error {
	if err := table.Validate(); err != nil {
		return err
	}

	dto := tableFromDomain(table)
	result := r.db.WithContext(ctx).Model(&TableDTO{}).
		Where("id = ? AND restaurant_id = ?", dto.ID, dto.RestaurantID).
		Updates(map[string]any{"number": dto.Number, "order_id": dto.OrderID})
	if result.Error != nil {
		return pgerr.Translate("save table", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("table", dto.ID)
	}
	return nil
}

// ReleaseTablesOf clears the order pointer of every table seating orderID.
func (r *GormRestaurantRepository) ReleaseTablesOf(
	ctx context.Context,
	restaurantID kernel.RestaurantID,
	orderID kernel.SequenceID,
) (int64, error) {
	if err := errors.Join(restaurantID.Validate(), orderID.Validate()); err != nil {
		return 0, err
	}

	result := r.db.WithContext(ctx).Model(&TableDTO{}).
		Where("restaurant_id = ? AND order_id = ?", restaurantID.UUID(), orderID.Int64()).
		Update("order_id", nil)
	if result.Error != nil {
		return 0, pgerr.Translate("release tables", result.Error)
	}
	return result.RowsAffected, nil
}

// ReleaseStaleTables clears the order pointer of tables whose order is served or gone,
// across all restaurants.
func (r *GormRestaurantRepository) ReleaseStaleTables(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Exec(releaseStaleSQL, false)
	if result.Error != nil {
		return 0, pgerr.Translate("release stale tables", result.Error)
	}
	return result.RowsAffected, nil
}
