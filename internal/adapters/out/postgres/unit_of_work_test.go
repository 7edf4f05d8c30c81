package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "kitchen/internal/adapters/out/postgres"
	"kitchen/internal/adapters/out/postgres/storetest"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/domain/model/restaurant"
	"kitchen/internal/core/ports"
	"kitchen/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UnitOfWorkTestSuite exercises transaction boundaries against SQLite and PostgreSQL.
type UnitOfWorkTestSuite struct {
	suite.Suite
	open         func(t *testing.T) *gorm.DB
	factory      ports.UnitOfWorkFactory
	restaurantID kernel.RestaurantID
}

func TestUnitOfWork_SQLite(t *testing.T) {
	suite.Run(t, &UnitOfWorkTestSuite{
		open: func(t *testing.T) *gorm.DB { return storetest.OpenSQLite(t) },
	})
}

func TestUnitOfWork_Postgres(t *testing.T) {
	pg := storetest.StartPostgres(t)
	defer pg.Terminate(t)

	suite.Run(t, &UnitOfWorkTestSuite{
		open: func(t *testing.T) *gorm.DB {
			pg.Truncate(t)
			return pg.DB
		},
	})
}

func (suite *UnitOfWorkTestSuite) SetupTest() {
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(suite.open(suite.T()))
	suite.restaurantID = kernel.NewRestaurantID()
}

func (suite *UnitOfWorkTestSuite) TestCommit_PersistsAcrossRepositories() {
	ctx := context.Background()
	r, err := restaurant.RestoreRestaurant(suite.restaurantID, "Luigi's")
	suite.Require().NoError(err)
	table, err := restaurant.NewTable(3, suite.restaurantID, 7)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.RestaurantRepository().Add(ctx, r))
	suite.Require().NoError(uow.RestaurantRepository().AddTable(ctx, table))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, suite.newOrder(10)))
	table.Seat(10)
	suite.Require().NoError(uow.RestaurantRepository().SaveTable(ctx, table))
	suite.Require().NoError(uow.Commit(ctx))

	check := suite.factory.Create()
	_, err = check.OrderRepository().Get(ctx, suite.restaurantID, 10)
	suite.Require().NoError(err)
	got, err := check.RestaurantRepository().GetTable(ctx, suite.restaurantID, 3)
	suite.Require().NoError(err)
	suite.Equal(kernel.SequenceID(10), *got.OrderID())
}

func (suite *UnitOfWorkTestSuite) TestRollback_DiscardsChanges() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, suite.newOrder(10)))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err := suite.factory.Create().OrderRepository().Get(ctx, suite.restaurantID, 10)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkTestSuite) TestDeferredRollbackAfterCommit_IsHarmless() {
	ctx := context.Background()

	err := func() error {
		uow := suite.factory.Create()
		if err := uow.Begin(ctx); err != nil {
			return err
		}
		defer func() {
			_ = uow.Rollback(ctx)
		}()
		if err := uow.OrderRepository().Add(ctx, suite.newOrder(10)); err != nil {
			return err
		}
		return uow.Commit(ctx)
	}()
	suite.Require().NoError(err)

	_, err = suite.factory.Create().OrderRepository().Get(ctx, suite.restaurantID, 10)
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkTestSuite) TestBeginTwice_KeepsOneTransaction() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, suite.newOrder(10)))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err := suite.factory.Create().OrderRepository().Get(ctx, suite.restaurantID, 10)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkTestSuite) TestCommitOrRollbackWithoutBegin_Fails() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkTestSuite) TestRepositoriesWithoutBegin_WriteImmediately() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.OrderRepository().Add(ctx, suite.newOrder(10)))
	result, err := uow.OrderRepository().AdvancePart(ctx, suite.restaurantID, 10)
	suite.Require().NoError(err)
	suite.Equal(ports.MatchResult{Matched: 1, Modified: 1}, result)

	got, err := suite.factory.Create().OrderRepository().Get(ctx, suite.restaurantID, 10)
	suite.Require().NoError(err)
	suite.Equal(order.Course(2), got.Part())
}

func (suite *UnitOfWorkTestSuite) newOrder(id kernel.SequenceID) *order.Order {
	o, err := order.NewOrder(id, suite.restaurantID, order.Takeout, 1, nil, time.Now().UTC().Truncate(time.Microsecond))
	suite.Require().NoError(err)
	return o
}
