package commands_test

import (
	"context"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/domain/model/restaurant"
	"kitchen/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(
	ctx context.Context,
	restaurantID kernel.RestaurantID,
	id kernel.SequenceID,
) (*order.Order, error) {
	args := m.Called(ctx, restaurantID, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context, restaurantID kernel.RestaurantID) ([]*order.Order, error) {
	args := m.Called(ctx, restaurantID)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) Save(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(
	ctx context.Context,
	restaurantID kernel.RestaurantID,
	id kernel.SequenceID,
) (ports.MatchResult, error) {
	args := m.Called(ctx, restaurantID, id)
	return args.Get(0).(ports.MatchResult), args.Error(1)
}

func (m *MockOrderRepository) AdvancePart(
	ctx context.Context,
	restaurantID kernel.RestaurantID,
	id kernel.SequenceID,
) (ports.MatchResult, error) {
	args := m.Called(ctx, restaurantID, id)
	return args.Get(0).(ports.MatchResult), args.Error(1)
}

func (m *MockOrderRepository) MarkServed(
	ctx context.Context,
	restaurantID kernel.RestaurantID,
	id kernel.SequenceID,
) (ports.MatchResult, error) {
	args := m.Called(ctx, restaurantID, id)
	return args.Get(0).(ports.MatchResult), args.Error(1)
}

func (m *MockOrderRepository) ToggleLineItemReady(
	ctx context.Context,
	restaurantID kernel.RestaurantID,
	lineItemID kernel.SequenceID,
) (ports.ToggledLineItem, error) {
	args := m.Called(ctx, restaurantID, lineItemID)
	return args.Get(0).(ports.ToggledLineItem), args.Error(1)
}

func (m *MockOrderRepository) AddLineItems(ctx context.Context, o *order.Order, items []*order.LineItem) error {
	args := m.Called(ctx, o, items)
	return args.Error(0)
}

func (m *MockOrderRepository) RemoveLineItem(ctx context.Context, o *order.Order, id kernel.SequenceID) error {
	args := m.Called(ctx, o, id)
	return args.Error(0)
}

type MockRestaurantRepository struct{ mock.Mock }

func (m *MockRestaurantRepository) Add(ctx context.Context, r *restaurant.Restaurant) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRestaurantRepository) Get(ctx context.Context, id kernel.RestaurantID) (*restaurant.Restaurant, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*restaurant.Restaurant)
	return r, args.Error(1)
}

func (m *MockRestaurantRepository) AddMenuItem(ctx context.Context, item *restaurant.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockRestaurantRepository) Menu(ctx context.Context, restaurantID kernel.RestaurantID) (restaurant.Menu, error) {
	args := m.Called(ctx, restaurantID)
	menu, _ := args.Get(0).(restaurant.Menu)
	return menu, args.Error(1)
}

func (m *MockRestaurantRepository) AddTable(ctx context.Context, table *restaurant.Table) error {
	args := m.Called(ctx, table)
	return args.Error(0)
}

func (m *MockRestaurantRepository) GetTable(
	ctx context.Context,
	restaurantID kernel.RestaurantID,
	id kernel.SequenceID,
) (*restaurant.Table, error) {
	args := m.Called(ctx, restaurantID, id)
	t, _ := args.Get(0).(*restaurant.Table)
	return t, args.Error(1)
}

func (m *MockRestaurantRepository) SaveTable(ctx context.Context, table *restaurant.Table) error {
	args := m.Called(ctx, table)
	return args.Error(0)
}

func (m *MockRestaurantRepository) ReleaseTablesOf(
	ctx context.Context,
	restaurantID kernel.RestaurantID,
	orderID kernel.SequenceID,
) (int64, error) {
	args := m.Called(ctx, restaurantID, orderID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRestaurantRepository) ReleaseStaleTables(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) RestaurantRepository() ports.RestaurantRepository {
	args := m.Called()
	return args.Get(0).(ports.RestaurantRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockRestaurantUoWFactory struct{ mock.Mock }

func (m *MockRestaurantUoWFactory) Create() commands.RestaurantUoW {
	args := m.Called()
	return args.Get(0).(commands.RestaurantUoW)
}

type MockAllocator struct{ mock.Mock }

func (m *MockAllocator) Next(ctx context.Context, counter string) (kernel.SequenceID, error) {
	args := m.Called(ctx, counter)
	return args.Get(0).(kernel.SequenceID), args.Error(1)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) Publish(ctx context.Context, events ...order.Event) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

func (m *MockPublisher) Close() error {
	return m.Called().Error(0)
}

// eventOfType matches a single-event Publish call of the given type.
func eventOfType(t order.EventType) any {
	return mock.MatchedBy(func(events []order.Event) bool {
		return len(events) == 1 && events[0].Type == t
	})
}
