package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"kitchen/internal/adapters/out/postgres/pgerr"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"

	"gorm.io/gorm"
)

// ListActiveLineItemsQueryHandler flattens the active course of every unserved order
// into one list, oldest order first, line items in submission order.
type ListActiveLineItemsQueryHandler struct {
	db *gorm.DB
}

func NewListActiveLineItemsQueryHandler(db *gorm.DB) ListActiveLineItemsQueryHandler {
	return ListActiveLineItemsQueryHandler{db: db}
}

func (h ListActiveLineItemsQueryHandler) Handle(
	ctx context.Context,
	query ListActiveLineItemsQuery,
) ([]ActiveLineItemView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := `
		SELECT
			li.id,
			li.order_id,
			o.number,
			o.channel,
			o.table_id,
			o.created_at,
			li.menu_item_id,
			mi.name,
			li.note,
			li.mods,
			li.is_ready,
			li.part
		FROM line_items li
		JOIN orders o ON o.id = li.order_id
		LEFT JOIN menu_items mi ON mi.id = li.menu_item_id
		WHERE li.restaurant_id = ?
		  AND o.served = ?
		  AND li.part = o.part`
	args := []any{query.RestaurantID().UUID(), false}
	if ready, ok := query.Ready(); ok {
		stmt += `
		  AND li.is_ready = ?`
		args = append(args, ready)
	}
	stmt += `
		ORDER BY o.created_at, o.id, li.position, li.id`

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, pgerr.Translate("list active line items", err)
	}
	defer rows.Close()

	items := make([]ActiveLineItemView, 0)
	for rows.Next() {
		var (
			item                        ActiveLineItemView
			lineItemID, orderID, menuID int64
			tableID                     *int64
			name                        sql.NullString
			mods                        string
			createdAt                   time.Time
		)
		err = rows.Scan(
			&lineItemID,
			&orderID,
			&item.OrderNumber,
			&item.Channel,
			&tableID,
			&createdAt,
			&menuID,
			&name,
			&item.Note,
			&mods,
			&item.IsReady,
			&item.Part,
		)
		if err != nil {
			return nil, pgerr.Translate("list active line items", err)
		}

		item.LineItemID = kernel.SequenceID(lineItemID)
		item.OrderID = kernel.SequenceID(orderID)
		item.MenuItemID = kernel.SequenceID(menuID)
		item.CreatedAt = createdAt.UTC()
		if tableID != nil {
			id := kernel.SequenceID(*tableID)
			item.TableID = &id
		}
		if !name.Valid {
			return nil, errs.NewObjectNotFoundError("menu item", menuID)
		}
		item.Name = name.String

		if item.Mods, err = decodeMods(mods); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, pgerr.Translate("list active line items", err)
	}
	return items, nil
}

func decodeMods(raw string) ([]ModView, error) {
	var stored []struct {
		Op         string `json:"op"`
		Ingredient string `json:"ingredient"`
	}
	if raw != "" {
		if err := json.Unmarshal([]byte(raw), &stored); err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("mods", err)
		}
	}

	mods := make([]ModView, 0, len(stored))
	for _, m := range stored {
		mods = append(mods, ModView{Op: m.Op, Ingredient: m.Ingredient})
	}
	return mods, nil
}
