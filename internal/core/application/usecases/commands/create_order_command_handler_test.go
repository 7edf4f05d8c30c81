package commands_test

import (
	"errors"
	"testing"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/domain/model/restaurant"
	"kitchen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	restaurant *restaurant.Restaurant
	menu       restaurant.Menu
	table      *restaurant.Table
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	r, err := restaurant.NewRestaurant("Diner")
	require.NoError(t, err)
	burger, err := restaurant.NewMenuItem(1, r.ID(), "Burger", "mains", 1200)
	require.NoError(t, err)
	fries, err := restaurant.NewMenuItem(2, r.ID(), "Fries", "sides", 400)
	require.NoError(t, err)
	table, err := restaurant.NewTable(3, r.ID(), 7)
	require.NoError(t, err)
	return fixture{
		restaurant: r,
		menu:       restaurant.NewMenu([]*restaurant.MenuItem{burger, fries}),
		table:      table,
	}
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	f := newFixture(t)
	tableID := f.table.ID()
	cmd, err := commands.NewCreateOrderCommand(f.restaurant.ID(), order.DineIn, 12, &tableID, []commands.LineItemInput{
		{MenuItemID: 1, Note: "medium"},
		{MenuItemID: 2},
	})
	require.NoError(t, err)

	allocator := new(MockAllocator)
	allocator.On("Next", ctx, "order").Return(kernel.SequenceID(10), nil).Once()
	allocator.On("Next", ctx, "line-item").Return(kernel.SequenceID(21), nil).Once()
	allocator.On("Next", ctx, "line-item").Return(kernel.SequenceID(22), nil).Once()

	orders := new(MockOrderRepository)
	restaurants := new(MockRestaurantRepository)
	uow := new(MockUoW)
	uow.On("OrderRepository").Return(orders)
	uow.On("RestaurantRepository").Return(restaurants)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		restaurants.On("Get", ctx, f.restaurant.ID()).Return(f.restaurant, nil).Once(),
		restaurants.On("Menu", ctx, f.restaurant.ID()).Return(f.menu, nil).Once(),
		orders.On("Add", ctx, mock.MatchedBy(func(o *order.Order) bool {
			items := o.LineItems()
			return o.ID() == 10 &&
				o.Total() == 1600 &&
				o.Part() == order.FirstCourse &&
				len(items) == 2 &&
				items[0].ID() == 21 && items[0].Price() == 1200 && items[0].Note() == "medium" &&
				items[1].ID() == 22 && items[1].Price() == 400
		})).Return(nil).Once(),
		restaurants.On("GetTable", ctx, f.restaurant.ID(), tableID).Return(f.table, nil).Once(),
		restaurants.On("SaveTable", ctx, mock.MatchedBy(func(tbl *restaurant.Table) bool {
			return tbl.OrderID() != nil && *tbl.OrderID() == 10
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	publisher := new(MockPublisher)
	publisher.On("Publish", mock.Anything, eventOfType(order.EventOrderCreated)).Return(nil).Once()

	h := commands.NewCreateOrderCommandHandler(factory, allocator, publisher)
	id, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, kernel.SequenceID(10), id)
	allocator.AssertExpectations(t)
	orders.AssertExpectations(t)
	restaurants.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_UnknownMenuItem(t *testing.T) {
	ctx := t.Context()
	f := newFixture(t)
	cmd, err := commands.NewCreateOrderCommand(f.restaurant.ID(), order.Takeout, 1, nil,
		[]commands.LineItemInput{{MenuItemID: 99}})
	require.NoError(t, err)

	allocator := new(MockAllocator)
	allocator.On("Next", ctx, "order").Return(kernel.SequenceID(10), nil).Once()
	allocator.On("Next", ctx, "line-item").Return(kernel.SequenceID(21), nil).Once()

	restaurants := new(MockRestaurantRepository)
	restaurants.On("Get", ctx, f.restaurant.ID()).Return(f.restaurant, nil).Once()
	restaurants.On("Menu", ctx, f.restaurant.ID()).Return(f.menu, nil).Once()
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RestaurantRepository").Return(restaurants)
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	publisher := new(MockPublisher)

	h := commands.NewCreateOrderCommandHandler(factory, allocator, publisher)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_UnknownRestaurant(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewRestaurantID()
	cmd, err := commands.NewCreateOrderCommand(restaurantID, order.Takeout, 1, nil,
		[]commands.LineItemInput{{MenuItemID: 1}})
	require.NoError(t, err)

	allocator := new(MockAllocator)
	allocator.On("Next", ctx, mock.Anything).Return(kernel.SequenceID(1), nil)
	restaurants := new(MockRestaurantRepository)
	restaurants.On("Get", ctx, restaurantID).
		Return(nil, errs.NewObjectNotFoundError("restaurant", restaurantID.String())).Once()
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RestaurantRepository").Return(restaurants)
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, allocator, new(MockPublisher))
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCreateOrderCommandHandler_Handle_AllocatorError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewRestaurantID(), order.Takeout, 1, nil,
		[]commands.LineItemInput{{MenuItemID: 1}})
	require.NoError(t, err)

	unavailable := errs.NewStoreUnavailableError("next sequence", errors.New("connection refused"))
	allocator := new(MockAllocator)
	allocator.On("Next", ctx, "order").Return(kernel.SequenceID(0), unavailable).Once()
	factory := new(MockUoWFactory)

	h := commands.NewCreateOrderCommandHandler(factory, allocator, new(MockPublisher))
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrStoreUnavailable)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_PublishFailureIsNotAnError(t *testing.T) {
	ctx := t.Context()
	f := newFixture(t)
	cmd, err := commands.NewCreateOrderCommand(f.restaurant.ID(), order.Takeout, 1, nil,
		[]commands.LineItemInput{{MenuItemID: 2}})
	require.NoError(t, err)

	allocator := new(MockAllocator)
	allocator.On("Next", ctx, "order").Return(kernel.SequenceID(10), nil).Once()
	allocator.On("Next", ctx, "line-item").Return(kernel.SequenceID(21), nil).Once()
	orders := new(MockOrderRepository)
	orders.On("Add", ctx, mock.Anything).Return(nil).Once()
	restaurants := new(MockRestaurantRepository)
	restaurants.On("Get", ctx, f.restaurant.ID()).Return(f.restaurant, nil).Once()
	restaurants.On("Menu", ctx, f.restaurant.ID()).Return(f.menu, nil).Once()
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orders)
	uow.On("RestaurantRepository").Return(restaurants)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	publisher := new(MockPublisher)
	publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	h := commands.NewCreateOrderCommandHandler(factory, allocator, publisher)
	id, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, kernel.SequenceID(10), id)
	publisher.AssertExpectations(t)
}
