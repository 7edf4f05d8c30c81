package orderrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"kitchen/internal/adapters/out/postgres/orderrepo"
	"kitchen/internal/adapters/out/postgres/storetest"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/ports"
	"kitchen/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// OrderRepositoryTestSuite runs the same cases against SQLite and, when a container
// provider is available, PostgreSQL.
type OrderRepositoryTestSuite struct {
	suite.Suite
	open         func(t *testing.T) *gorm.DB
	postgres     bool
	db           *gorm.DB
	repository   *orderrepo.GormOrderRepository
	restaurantID kernel.RestaurantID
	createdAt    time.Time
}

func TestOrderRepository_SQLite(t *testing.T) {
	suite.Run(t, &OrderRepositoryTestSuite{
		open: func(t *testing.T) *gorm.DB { return storetest.OpenSQLite(t) },
	})
}

func TestOrderRepository_Postgres(t *testing.T) {
	pg := storetest.StartPostgres(t)
	defer pg.Terminate(t)

	suite.Run(t, &OrderRepositoryTestSuite{
		postgres: true,
		open: func(t *testing.T) *gorm.DB {
			pg.Truncate(t)
			return pg.DB
		},
	})
}

func (suite *OrderRepositoryTestSuite) SetupTest() {
	suite.db = suite.open(suite.T())
	suite.repository = orderrepo.NewGormOrderRepository(suite.db)
	suite.restaurantID = kernel.NewRestaurantID()
	suite.createdAt = time.Date(2026, 3, 14, 18, 30, 0, 0, time.UTC)
}

func (suite *OrderRepositoryTestSuite) TestAdd_ThenGet_RoundTripsEveryField() {
	ctx := context.Background()
	table := kernel.SequenceID(3)
	o := suite.newOrder(10, &table, suite.createdAt)
	suite.addLineItem(o, 21, 1, 1200, "well done", suite.mod(order.ModRemove, "onion"), suite.mod(order.ModAllergy, "nuts"))
	suite.addLineItem(o, 22, 2, 400, "")

	suite.Require().NoError(suite.repository.Add(ctx, o))

	got, err := suite.repository.Get(ctx, suite.restaurantID, 10)
	suite.Require().NoError(err)

	suite.Equal(kernel.SequenceID(10), got.ID())
	suite.True(got.RestaurantID().IsEqual(suite.restaurantID))
	suite.Equal(order.DineIn, got.Channel())
	suite.Equal(4, got.Number())
	suite.Require().NotNil(got.TableID())
	suite.Equal(table, *got.TableID())
	suite.True(suite.createdAt.Equal(got.CreatedAt()), "created at %s", got.CreatedAt())
	suite.Equal(order.FirstCourse, got.Part())
	suite.False(got.IsServed())
	suite.Equal(kernel.Money(1600), got.Total())

	items := got.LineItems()
	suite.Require().Len(items, 2)
	suite.Equal(kernel.SequenceID(21), items[0].ID())
	suite.Equal("well done", items[0].Note())
	suite.Equal(kernel.Money(1200), items[0].Price())
	suite.Require().Len(items[0].Mods(), 2)
	suite.Equal("remove onion", items[0].Mods()[0].String())
	suite.Equal("allergy nuts", items[0].Mods()[1].String())
	suite.Equal(kernel.SequenceID(22), items[1].ID())
	suite.Empty(items[1].Mods())
}

func (suite *OrderRepositoryTestSuite) TestAdd_DuplicateID_Fails() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newOrder(10, nil, suite.createdAt)))

	err := suite.repository.Add(ctx, suite.newOrder(10, nil, suite.createdAt))
	suite.Require().Error(err)
	if suite.postgres {
		suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
	}
}

func (suite *OrderRepositoryTestSuite) TestGet_IsScopedByRestaurant() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newOrder(10, nil, suite.createdAt)))

	_, err := suite.repository.Get(ctx, kernel.NewRestaurantID(), 10)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	_, err = suite.repository.Get(ctx, suite.restaurantID, 11)
	var notFound *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFound)
	suite.Equal("order", notFound.ParamName)
}

func (suite *OrderRepositoryTestSuite) TestList_OldestFirst() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newOrder(12, nil, suite.createdAt.Add(time.Minute))))
	suite.Require().NoError(suite.repository.Add(ctx, suite.newOrder(11, nil, suite.createdAt)))

	other := suite.restaurantID
	suite.restaurantID = kernel.NewRestaurantID()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newOrder(13, nil, suite.createdAt)))
	suite.restaurantID = other

	orders, err := suite.repository.List(ctx, suite.restaurantID)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 2)
	suite.Equal(kernel.SequenceID(11), orders[0].ID())
	suite.Equal(kernel.SequenceID(12), orders[1].ID())
}

func (suite *OrderRepositoryTestSuite) TestSave_ReplacesHeaderAndLineItems() {
	ctx := context.Background()
	o := suite.newOrder(10, nil, suite.createdAt)
	suite.addLineItem(o, 21, 1, 1200, "")
	suite.addLineItem(o, 22, 2, 400, "")
	suite.Require().NoError(suite.repository.Add(ctx, o))

	table := kernel.SequenceID(5)
	changed, err := o.Apply(order.Patch{
		Channel: order.Takeout,
		Number:  9,
		TableID: &table,
		Part:    2,
		Served:  false,
		LineItems: []order.PatchLineItem{
			{ID: 22, MenuItemID: 2, Price: 400, Note: "extra crispy", Ready: true},
			{ID: 23, MenuItemID: 3, Price: 900, Mods: []order.Modification{suite.mod(order.ModAdd, "cheese")}},
		},
	})
	suite.Require().NoError(err)
	suite.Require().True(changed)

	suite.Require().NoError(suite.repository.Save(ctx, o))

	got, err := suite.repository.Get(ctx, suite.restaurantID, 10)
	suite.Require().NoError(err)
	suite.Equal(order.Takeout, got.Channel())
	suite.Equal(9, got.Number())
	suite.Equal(table, *got.TableID())
	suite.Equal(order.Course(2), got.Part())
	suite.Equal(kernel.Money(1300), got.Total())

	items := got.LineItems()
	suite.Require().Len(items, 2)
	suite.Equal(kernel.SequenceID(22), items[0].ID())
	suite.Equal("extra crispy", items[0].Note())
	suite.True(items[0].IsReady())
	suite.Equal(order.FirstCourse, items[0].Part())
	suite.Equal(kernel.SequenceID(23), items[1].ID())
	suite.Equal(order.Course(2), items[1].Part())
	suite.Equal("add cheese", items[1].Mods()[0].String())

	var stale int64
	suite.Require().NoError(suite.db.Model(&orderrepo.LineItemDTO{}).Where("id = ?", 21).Count(&stale).Error)
	suite.Zero(stale)
}

func (suite *OrderRepositoryTestSuite) TestSave_ReplacesCreationDate() {
	ctx := context.Background()
	o := suite.newOrder(10, nil, suite.createdAt)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	earlier := suite.createdAt.Add(-90 * time.Minute)
	changed, err := o.Apply(order.Patch{Channel: order.DineIn, Number: 4, Part: 1, CreatedAt: &earlier})
	suite.Require().NoError(err)
	suite.Require().True(changed)
	suite.Require().NoError(suite.repository.Save(ctx, o))

	got, err := suite.repository.Get(ctx, suite.restaurantID, 10)
	suite.Require().NoError(err)
	suite.True(earlier.Equal(got.CreatedAt()), "created at %s", got.CreatedAt())
}

func (suite *OrderRepositoryTestSuite) TestSave_EmptyLineItemsClearsThem() {
	ctx := context.Background()
	o := suite.newOrder(10, nil, suite.createdAt)
	suite.addLineItem(o, 21, 1, 1200, "")
	suite.Require().NoError(suite.repository.Add(ctx, o))

	_, err := o.Apply(order.Patch{Channel: order.DineIn, Number: 4, Part: 1})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Save(ctx, o))

	got, err := suite.repository.Get(ctx, suite.restaurantID, 10)
	suite.Require().NoError(err)
	suite.Empty(got.LineItems())
	suite.Equal(kernel.Money(0), got.Total())
}

func (suite *OrderRepositoryTestSuite) TestSave_MissingOrder_ReturnsNotFound() {
	err := suite.repository.Save(context.Background(), suite.newOrder(99, nil, suite.createdAt))
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryTestSuite) TestDelete() {
	ctx := context.Background()
	o := suite.newOrder(10, nil, suite.createdAt)
	suite.addLineItem(o, 21, 1, 1200, "")
	suite.Require().NoError(suite.repository.Add(ctx, o))

	result, err := suite.repository.Delete(ctx, kernel.NewRestaurantID(), 10)
	suite.Require().NoError(err)
	suite.Equal(ports.MatchResult{}, result)

	result, err = suite.repository.Delete(ctx, suite.restaurantID, 10)
	suite.Require().NoError(err)
	suite.Equal(ports.MatchResult{Matched: 1, Modified: 1}, result)

	var items int64
	suite.Require().NoError(suite.db.Model(&orderrepo.LineItemDTO{}).Count(&items).Error)
	suite.Zero(items)

	result, err = suite.repository.Delete(ctx, suite.restaurantID, 10)
	suite.Require().NoError(err)
	suite.Equal(ports.MatchResult{}, result)
}

func (suite *OrderRepositoryTestSuite) TestAdvancePart() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newOrder(10, nil, suite.createdAt)))

	for range 2 {
		result, err := suite.repository.AdvancePart(ctx, suite.restaurantID, 10)
		suite.Require().NoError(err)
		suite.Equal(ports.MatchResult{Matched: 1, Modified: 1}, result)
	}

	got, err := suite.repository.Get(ctx, suite.restaurantID, 10)
	suite.Require().NoError(err)
	suite.Equal(order.Course(3), got.Part())

	result, err := suite.repository.AdvancePart(ctx, suite.restaurantID, 77)
	suite.Require().NoError(err)
	suite.Equal(ports.MatchResult{}, result)
}

func (suite *OrderRepositoryTestSuite) TestMarkServed_SecondCallIsNoOp() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newOrder(10, nil, suite.createdAt)))

	result, err := suite.repository.MarkServed(ctx, suite.restaurantID, 10)
	suite.Require().NoError(err)
	suite.Equal(ports.MatchResult{Matched: 1, Modified: 1}, result)

	result, err = suite.repository.MarkServed(ctx, suite.restaurantID, 10)
	suite.Require().NoError(err)
	suite.Equal(ports.MatchResult{Matched: 1}, result)

	result, err = suite.repository.MarkServed(ctx, suite.restaurantID, 11)
	suite.Require().NoError(err)
	suite.Equal(ports.MatchResult{}, result)

	got, err := suite.repository.Get(ctx, suite.restaurantID, 10)
	suite.Require().NoError(err)
	suite.True(got.IsServed())
}

func (suite *OrderRepositoryTestSuite) TestToggleLineItemReady_FlipsAndReportsPrevious() {
	ctx := context.Background()
	o := suite.newOrder(10, nil, suite.createdAt)
	suite.addLineItem(o, 21, 1, 1200, "")
	suite.Require().NoError(suite.repository.Add(ctx, o))

	toggled, err := suite.repository.ToggleLineItemReady(ctx, suite.restaurantID, 21)
	suite.Require().NoError(err)
	suite.Equal(ports.ToggledLineItem{
		OrderID:    10,
		LineItemID: 21,
		Part:       order.FirstCourse,
		Previous:   false,
	}, toggled)

	toggled, err = suite.repository.ToggleLineItemReady(ctx, suite.restaurantID, 21)
	suite.Require().NoError(err)
	suite.True(toggled.Previous)

	got, err := suite.repository.Get(ctx, suite.restaurantID, 10)
	suite.Require().NoError(err)
	suite.False(got.LineItems()[0].IsReady())
}

func (suite *OrderRepositoryTestSuite) TestToggleLineItemReady_ConcurrentTogglesAreNotLost() {
	ctx := context.Background()
	o := suite.newOrder(10, nil, suite.createdAt)
	suite.addLineItem(o, 21, 1, 1200, "")
	suite.Require().NoError(suite.repository.Add(ctx, o))

	const toggles = 40
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		failures []error
		wasReady int
	)
	for range toggles {
		wg.Add(1)
		go func() {
			defer wg.Done()
			toggled, err := suite.repository.ToggleLineItemReady(ctx, suite.restaurantID, 21)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failures = append(failures, err)
				return
			}
			if toggled.Previous {
				wasReady++
			}
		}()
	}
	wg.Wait()

	suite.Require().Empty(failures)
	suite.Equal(toggles/2, wasReady)

	got, err := suite.repository.Get(ctx, suite.restaurantID, 10)
	suite.Require().NoError(err)
	suite.False(got.LineItems()[0].IsReady())
}

func (suite *OrderRepositoryTestSuite) TestToggleLineItemReady_UnknownOrForeign_ReturnsNotFound() {
	ctx := context.Background()
	o := suite.newOrder(10, nil, suite.createdAt)
	suite.addLineItem(o, 21, 1, 1200, "")
	suite.Require().NoError(suite.repository.Add(ctx, o))

	_, err := suite.repository.ToggleLineItemReady(ctx, suite.restaurantID, 22)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	_, err = suite.repository.ToggleLineItemReady(ctx, kernel.NewRestaurantID(), 21)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryTestSuite) TestAddAndRemoveLineItems_KeepTotalInSync() {
	ctx := context.Background()
	o := suite.newOrder(10, nil, suite.createdAt)
	suite.addLineItem(o, 21, 1, 1200, "")
	suite.Require().NoError(suite.repository.Add(ctx, o))

	o.Advance()
	li := suite.addLineItem(o, 22, 2, 400, "no salt")
	suite.Require().NoError(suite.repository.AddLineItems(ctx, o, []*order.LineItem{li}))

	got, err := suite.repository.Get(ctx, suite.restaurantID, 10)
	suite.Require().NoError(err)
	suite.Equal(kernel.Money(1600), got.Total())
	suite.Require().Len(got.LineItems(), 2)
	suite.Equal(order.Course(2), got.LineItems()[1].Part())

	suite.Require().NoError(o.RemoveLineItem(21))
	suite.Require().NoError(suite.repository.RemoveLineItem(ctx, o, 21))

	got, err = suite.repository.Get(ctx, suite.restaurantID, 10)
	suite.Require().NoError(err)
	suite.Equal(kernel.Money(400), got.Total())
	suite.Require().Len(got.LineItems(), 1)
	suite.Equal(kernel.SequenceID(22), got.LineItems()[0].ID())

	err = suite.repository.RemoveLineItem(ctx, o, 21)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryTestSuite) TestAddLineItems_DeletedOrder_ReturnsNotFound() {
	if !suite.postgres {
		suite.T().Skip("foreign key violations are classified by the PostgreSQL driver only")
	}
	ctx := context.Background()
	o := suite.newOrder(10, nil, suite.createdAt)
	li := suite.addLineItem(o, 21, 1, 1200, "")

	err := suite.repository.AddLineItems(ctx, o, []*order.LineItem{li})
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryTestSuite) newOrder(id kernel.SequenceID, table *kernel.SequenceID, at time.Time) *order.Order {
	o, err := order.NewOrder(id, suite.restaurantID, order.DineIn, 4, table, at)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryTestSuite) addLineItem(
	o *order.Order,
	id, menuItemID kernel.SequenceID,
	price kernel.Money,
	note string,
	mods ...order.Modification,
) *order.LineItem {
	li, err := o.AddLineItem(id, menuItemID, price, note, mods)
	suite.Require().NoError(err)
	return li
}

func (suite *OrderRepositoryTestSuite) mod(op order.ModOperation, ingredient string) order.Modification {
	m, err := order.NewModification(op, ingredient)
	suite.Require().NoError(err)
	return m
}
