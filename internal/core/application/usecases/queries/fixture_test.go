package queries_test

import (
	"context"
	"testing"
	"time"

	"kitchen/internal/adapters/out/postgres/orderrepo"
	"kitchen/internal/adapters/out/postgres/restaurantrepo"
	"kitchen/internal/adapters/out/postgres/storetest"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/domain/model/restaurant"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const (
	burger kernel.SequenceID = 1
	fries  kernel.SequenceID = 2
	cola   kernel.SequenceID = 3
)

type fixture struct {
	db           *gorm.DB
	orders       *orderrepo.GormOrderRepository
	restaurants  *restaurantrepo.GormRestaurantRepository
	restaurantID kernel.RestaurantID
	base         time.Time
}

type line struct {
	id    kernel.SequenceID
	menu  kernel.SequenceID
	note  string
	mods  []order.Modification
	ready bool
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	db := storetest.OpenSQLite(t)

	f := &fixture{
		db:          db,
		orders:      orderrepo.NewGormOrderRepository(db),
		restaurants: restaurantrepo.NewGormRestaurantRepository(db),
		base:        time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	r, err := restaurant.NewRestaurant("Luigi's")
	require.NoError(t, err)
	require.NoError(t, f.restaurants.Add(ctx, r))
	f.restaurantID = r.ID()

	for _, m := range []struct {
		id       kernel.SequenceID
		name     string
		category string
		price    kernel.Money
	}{
		{burger, "Burger", "mains", 1200},
		{fries, "Fries", "sides", 400},
		{cola, "Cola", "drinks", 300},
	} {
		item, itemErr := restaurant.NewMenuItem(m.id, f.restaurantID, m.name, m.category, m.price)
		require.NoError(t, itemErr)
		require.NoError(t, f.restaurants.AddMenuItem(ctx, item))
	}
	return f
}

// addOrder stores an order created offset after the fixture's base time.
func (f *fixture) addOrder(t *testing.T, id kernel.SequenceID, offset time.Duration, lines ...line) *order.Order {
	t.Helper()

	o, err := order.NewOrder(id, f.restaurantID, order.DineIn, int(id), nil, f.base.Add(offset))
	require.NoError(t, err)
	for _, l := range lines {
		_, err = o.AddLineItem(l.id, l.menu, 100, l.note, l.mods)
		require.NoError(t, err)
		if l.ready {
			_, err = o.ToggleLineItemReady(l.id)
			require.NoError(t, err)
		}
	}
	require.NoError(t, f.orders.Add(context.Background(), o))
	return o
}

func (f *fixture) serve(t *testing.T, id kernel.SequenceID) {
	t.Helper()
	_, err := f.orders.MarkServed(context.Background(), f.restaurantID, id)
	require.NoError(t, err)
}

func (f *fixture) advance(t *testing.T, id kernel.SequenceID) {
	t.Helper()
	_, err := f.orders.AdvancePart(context.Background(), f.restaurantID, id)
	require.NoError(t, err)
}

func mod(t *testing.T, op order.ModOperation, ingredient string) order.Modification {
	t.Helper()
	m, err := order.NewModification(op, ingredient)
	require.NoError(t, err)
	return m
}
