package services

import (
	"strconv"
	"strings"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/domain/model/restaurant"
)

// KDSRow is one line on the kitchen display: identical dishes of the active course
// collapsed into a single row with a quantity.
type KDSRow struct {
	MenuItemID kernel.SequenceID
	Name       string
	Mods       order.Modifications
	Note       string
	IsReady    bool
	Quantity   int
}

// KDSGrouper groups the active-course line items of an order for the kitchen display.
//
// Two line items fall into the same row when they share the menu item, the
// modification sequence, the note and the readiness flag. Modification lists are
// compared in order, so [add cheese, remove onion] and [remove onion, add cheese]
// produce two rows. Rows appear in the order their first item was submitted.
//
// Example usage:
//
//	grouper := services.NewKDSGrouper()
//	rows, err := grouper.Group(o, restaurant.NewMenu(items))
//	if err != nil {
//	    // a line item references a dish that is no longer on the menu
//	}
type KDSGrouper struct{}

// NewKDSGrouper creates a new KDSGrouper instance.
func NewKDSGrouper() KDSGrouper {
	return KDSGrouper{}
}

// Group folds the order's active course into rows.
//
// Returns:
//   - []KDSRow: rows in first-occurrence order; quantities sum to the number of active items
//   - error: the order is invalid or a line item's menu item is missing from menu
func (g KDSGrouper) Group(o *order.Order, menu restaurant.Menu) ([]KDSRow, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	var rows []KDSRow
	index := make(map[string]int)
	for _, li := range o.ActiveLineItems() {
		key := rowKey(li)
		if i, ok := index[key]; ok {
			rows[i].Quantity++
			continue
		}

		item, err := menu.Lookup(li.MenuItemID())
		if err != nil {
			return nil, err
		}

		index[key] = len(rows)
		rows = append(rows, KDSRow{
			MenuItemID: li.MenuItemID(),
			Name:       item.Name(),
			Mods:       li.Mods(),
			Note:       li.Note(),
			IsReady:    li.IsReady(),
			Quantity:   1,
		})
	}
	return rows, nil
}

// rowKey encodes the grouping key; quoting keeps notes and ingredients from
// colliding with the separators.
func rowKey(li *order.LineItem) string {
	var b strings.Builder
	b.WriteString(li.MenuItemID().String())
	b.WriteByte('|')
	b.WriteString(strconv.FormatBool(li.IsReady()))
	b.WriteByte('|')
	b.WriteString(strconv.Quote(li.Note()))
	for _, m := range li.Mods() {
		b.WriteByte('|')
		b.WriteString(string(m.Operation()))
		b.WriteByte(':')
		b.WriteString(strconv.Quote(m.Ingredient()))
	}
	return b.String()
}
