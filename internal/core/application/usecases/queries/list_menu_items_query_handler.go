package queries

import (
	"context"

	"kitchen/internal/adapters/out/postgres/pgerr"
	"kitchen/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// ListMenuItemsQueryHandler lists menu items grouped by category, then by name.
type ListMenuItemsQueryHandler struct {
	db *gorm.DB
}

func NewListMenuItemsQueryHandler(db *gorm.DB) ListMenuItemsQueryHandler {
	return ListMenuItemsQueryHandler{db: db}
}

func (h ListMenuItemsQueryHandler) Handle(ctx context.Context, query ListMenuItemsQuery) ([]MenuItemView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := `
		SELECT id, name, category, price_cents
		FROM menu_items
		WHERE restaurant_id = ?`
	args := []any{query.RestaurantID().UUID()}
	if category := query.Category(); category != "" {
		stmt += ` AND category = ?`
		args = append(args, category)
	}
	stmt += `
		ORDER BY category, name, id`

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, pgerr.Translate("list menu items", err)
	}
	defer rows.Close()

	items := make([]MenuItemView, 0)
	for rows.Next() {
		var (
			item      MenuItemView
			id, price int64
		)
		if err = rows.Scan(&id, &item.Name, &item.Category, &price); err != nil {
			return nil, pgerr.Translate("list menu items", err)
		}
		item.ID = kernel.SequenceID(id)
		item.Price = kernel.Money(price)
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, pgerr.Translate("list menu items", err)
	}
	return items, nil
}
