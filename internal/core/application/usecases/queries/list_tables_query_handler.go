package queries

import (
	"context"

	"kitchen/internal/adapters/out/postgres/pgerr"
	"kitchen/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// ListTablesQueryHandler lists tables by number.
type ListTablesQueryHandler struct {
	db *gorm.DB
}

func NewListTablesQueryHandler(db *gorm.DB) ListTablesQueryHandler {
	return ListTablesQueryHandler{db: db}
}

func (h ListTablesQueryHandler) Handle(ctx context.Context, query ListTablesQuery) ([]TableView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, number, order_id
		FROM tables
		WHERE restaurant_id = ?
		ORDER BY number
	`, query.RestaurantID().UUID()).Rows()
	if err != nil {
		return nil, pgerr.Translate("list tables", err)
	}
	defer rows.Close()

	tables := make([]TableView, 0)
	for rows.Next() {
		var (
			table   TableView
			id      int64
			orderID *int64
		)
		if err = rows.Scan(&id, &table.Number, &orderID); err != nil {
			return nil, pgerr.Translate("list tables", err)
		}
		table.ID = kernel.SequenceID(id)
		if orderID != nil {
			seated := kernel.SequenceID(*orderID)
			table.OrderID = &seated
		}
		tables = append(tables, table)
	}

	if err = rows.Err(); err != nil {
		return nil, pgerr.Translate("list tables", err)
	}
	return tables, nil
}
