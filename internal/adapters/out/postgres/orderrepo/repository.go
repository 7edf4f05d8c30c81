package orderrepo

import (
	"context"
	"errors"

	"kitchen/internal/adapters/out/postgres/pgerr"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/ports"
	"kitchen/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const toggleReadySQL = `
	UPDATE line_items SET is_ready = NOT is_ready
	WHERE id = ? AND restaurant_id = ?
	RETURNING is_ready, order_id, part`

type toggledRow struct {
	IsReady bool
	OrderID int64
	Part    int
}

// GormOrderRepository implements ports.OrderRepository using GORM.
// Every statement is scoped by restaurant id.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add inserts a new order together with its line items.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)
	if err := db.Omit(clause.Associations).Create(&dto).Error; err != nil {
		return pgerr.Translate("add order", err)
	}
	if len(dto.LineItems) == 0 {
		return nil
	}
	if err := db.Create(&dto.LineItems).Error; err != nil {
		return pgerr.Translate("add order line items", err)
	}
	return nil
}

// Get retrieves an order and its line items in position order.
func (r *GormOrderRepository) Get(
	ctx context.Context,
	restaurantID kernel.RestaurantID,
	id kernel.SequenceID,
) (*order.Order, error) {
	if err := errors.Join(restaurantID.Validate(), id.Validate()); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.preloaded(ctx).
		First(&dto, "id = ? AND restaurant_id = ?", id.Int64(), restaurantID.UUID()).Error
	if err != nil {
		return nil, pgerr.NotFound("get order", "order", id.Int64(), err)
	}

	return toDomain(dto)
}

// List retrieves every order of a restaurant, oldest first.
func (r *GormOrderRepository) List(ctx context.Context, restaurantID kernel.RestaurantID) ([]*order.Order, error) {
	if err := restaurantID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.preloaded(ctx).
		Where("restaurant_id = ?", restaurantID.UUID()).
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, pgerr.Translate("list orders", err)
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// Save writes the full state of an existing order: header columns, the date, the total and the
// line item set. Line items missing from the aggregate are deleted, the rest upserted.
// Callers run it inside a unit of work.
func (r *GormOrderRepository) Save(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&OrderDTO{}).
		Where("id = ? AND restaurant_id = ?", dto.ID, dto.RestaurantID).
		Updates(map[string]any{
			"channel":     dto.Channel,
			"number":      dto.Number,
			"table_id":    dto.TableID,
			"part":        dto.Part,
			"created_at":  dto.CreatedAt,
			"served":      dto.Served,
			"total_cents": dto.TotalCents,
		})
	if result.Error != nil {
		return pgerr.Translate("save order", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", dto.ID)
	}

	keep := make([]int64, 0, len(dto.LineItems))
	for _, li := range dto.LineItems {
		keep = append(keep, li.ID)
	}
	stale := db.Where("order_id = ?", dto.ID)
	if len(keep) > 0 {
		stale = stale.Where("id NOT IN ?", keep)
	}
	if err := stale.Delete(&LineItemDTO{}).Error; err != nil {
		return pgerr.Translate("save order line items", err)
	}

	if len(dto.LineItems) == 0 {
		return nil
	}
	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"menu_item_id", "note", "mods", "is_ready", "part", "price_cents", "position",
		}),
	}).Create(&dto.LineItems).Error
	if err != nil {
		return pgerr.Translate("save order line items", err)
	}
	return nil
}

// Delete removes an order and its line items.
func (r *GormOrderRepository) Delete(
	ctx context.Context,
	restaurantID kernel.RestaurantID,
	id kernel.SequenceID,
) (ports.MatchResult, error) {
	if err := errors.Join(restaurantID.Validate(), id.Validate()); err != nil {
		return ports.MatchResult{}, err
	}

	db := r.db.WithContext(ctx)
	err := db.Where("order_id = ? AND restaurant_id = ?", id.Int64(), restaurantID.UUID()).
		Delete(&LineItemDTO{}).Error
	if err != nil {
		return ports.MatchResult{}, pgerr.Translate("delete order line items", err)
	}

	result := db.Where("id = ? AND restaurant_id = ?", id.Int64(), restaurantID.UUID()).Delete(&OrderDTO{})
	if result.Error != nil {
		return ports.MatchResult{}, pgerr.Translate("delete order", result.Error)
	}
	return ports.MatchResult{Matched: result.RowsAffected, Modified: result.RowsAffected}, nil
}

// AdvancePart increments the order's part in a single statement.
func (r *GormOrderRepository) AdvancePart(
	ctx context.Context,
	restaurantID kernel.RestaurantID,
	id kernel.SequenceID,
) (ports.MatchResult, error) {
	if err := errors.Join(restaurantID.Validate(), id.Validate()); err != nil {
		return ports.MatchResult{}, err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND restaurant_id = ?", id.Int64(), restaurantID.UUID()).
		UpdateColumn("part", gorm.Expr("part + ?", 1))
	if result.Error != nil {
		return ports.MatchResult{}, pgerr.Translate("advance part", result.Error)
	}
	return ports.MatchResult{Matched: result.RowsAffected, Modified: result.RowsAffected}, nil
}

// MarkServed sets served to true. An already served order matches without being modified.
func (r *GormOrderRepository) MarkServed(
	ctx context.Context,
	restaurantID kernel.RestaurantID,
	id kernel.SequenceID,
) (ports.MatchResult, error) {
	if err := errors.Join(restaurantID.Validate(), id.Validate()); err != nil {
		return ports.MatchResult{}, err
	}

	db := r.db.WithContext(ctx)
	result := db.Model(&OrderDTO{}).
		Where("id = ? AND restaurant_id = ? AND served = ?", id.Int64(), restaurantID.UUID(), false).
		UpdateColumn("served", true)
	if result.Error != nil {
		return ports.MatchResult{}, pgerr.Translate("serve order", result.Error)
	}
	if result.RowsAffected > 0 {
		return ports.MatchResult{Matched: result.RowsAffected, Modified: result.RowsAffected}, nil
	}

	var count int64
	err := db.Model(&OrderDTO{}).
		Where("id = ? AND restaurant_id = ?", id.Int64(), restaurantID.UUID()).
		Count(&count).Error
	if err != nil {
		return ports.MatchResult{}, pgerr.Translate("serve order", err)
	}
	return ports.MatchResult{Matched: count}, nil
}

// ToggleLineItemReady flips is_ready of one line item in a single statement,
// so concurrent toggles never lose an update.
func (r *GormOrderRepository) ToggleLineItemReady(
	ctx context.Context,
	restaurantID kernel.RestaurantID,
	lineItemID kernel.SequenceID,
) (ports.ToggledLineItem, error) {
	if err := errors.Join(restaurantID.Validate(), lineItemID.Validate()); err != nil {
		return ports.ToggledLineItem{}, err
	}

	var row toggledRow
	result := r.db.WithContext(ctx).Raw(toggleReadySQL, lineItemID.Int64(), restaurantID.UUID()).Scan(&row)
	if result.Error != nil {
		return ports.ToggledLineItem{}, pgerr.Translate("toggle line item", result.Error)
	}
	if result.RowsAffected == 0 {
		return ports.ToggledLineItem{}, errs.NewObjectNotFoundError("line item", lineItemID.Int64())
	}

	return ports.ToggledLineItem{
		OrderID:    kernel.SequenceID(row.OrderID),
		LineItemID: lineItemID,
		Part:       order.Course(row.Part),
		Previous:   !row.IsReady,
	}, nil
}

// AddLineItems inserts items that were already added to the aggregate and stores the new total.
func (r *GormOrderRepository) AddLineItems(ctx context.Context, aggregate *order.Order, items []*order.LineItem) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}

	positions := make(map[kernel.SequenceID]int, len(aggregate.LineItems()))
	for i, li := range aggregate.LineItems() {
		positions[li.ID()] = i
	}

	dtos := make([]LineItemDTO, 0, len(items))
	for _, li := range items {
		if err := li.Validate(); err != nil {
			return err
		}
		position, ok := positions[li.ID()]
		if !ok {
			return errs.NewObjectNotFoundError("line item", li.ID().Int64())
		}
		dtos = append(dtos, lineItemFromDomain(aggregate, li, position))
	}

	db := r.db.WithContext(ctx)
	if err := db.Create(&dtos).Error; err != nil {
		return pgerr.Translate("add line items", err)
	}
	return r.saveTotal(db, aggregate)
}

// RemoveLineItem deletes one line item that was already removed from the aggregate
// and stores the new total.
func (r *GormOrderRepository) RemoveLineItem(
	ctx context.Context,
	aggregate *order.Order,
	lineItemID kernel.SequenceID,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	result := db.Where("id = ? AND order_id = ? AND restaurant_id = ?",
		lineItemID.Int64(), aggregate.ID().Int64(), aggregate.RestaurantID().UUID()).
		Delete(&LineItemDTO{})
	if result.Error != nil {
		return pgerr.Translate("remove line item", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("line item", lineItemID.Int64())
	}
	return r.saveTotal(db, aggregate)
}

func (r *GormOrderRepository) saveTotal(db *gorm.DB, aggregate *order.Order) error {
	result := db.Model(&OrderDTO{}).
		Where("id = ? AND restaurant_id = ?", aggregate.ID().Int64(), aggregate.RestaurantID().UUID()).
		UpdateColumn("total_cents", aggregate.Total().Cents())
	if result.Error != nil {
		return pgerr.Translate("save order total", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().Int64())
	}
	return nil
}

func (r *GormOrderRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("LineItems", func(db *gorm.DB) *gorm.DB {
		return db.Order("position, id")
	})
}
