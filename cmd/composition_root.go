package cmd

import (
	"context"
	"log/slog"

	httpin "kitchen/internal/adapters/in/http"
	"kitchen/internal/adapters/in/http/openapi"
	"kitchen/internal/adapters/out/postgres"
	"kitchen/internal/adapters/out/postgres/orderrepo"
	"kitchen/internal/adapters/out/postgres/restaurantrepo"
	"kitchen/internal/adapters/out/postgres/sequencerepo"
	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/application/usecases/queries"
	"kitchen/internal/core/ports"
	"kitchen/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	allocator  ports.SequenceAllocator
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, publisher ports.EventPublisher, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		allocator:  sequencerepo.NewGormSequenceAllocator(gormDB),
		publisher:  publisher,
		logger:     logger,
	}
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoW() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) restaurantUoW() commands.RestaurantUoWFactory {
	return FuncRestaurantUoWFactory(func() commands.RestaurantUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateRestaurantCommandHandler() commands.CreateRestaurantCommandHandler {
	return commands.NewCreateRestaurantCommandHandler(c.restaurantUoW())
}

func (c *CompositionRoot) CreateAddMenuItemCommandHandler() commands.AddMenuItemCommandHandler {
	return commands.NewAddMenuItemCommandHandler(c.restaurantUoW(), c.allocator)
}

func (c *CompositionRoot) CreateAddTableCommandHandler() commands.AddTableCommandHandler {
	return commands.NewAddTableCommandHandler(c.restaurantUoW(), c.allocator)
}

func (c *CompositionRoot) CreateReleaseTablesCommandHandler() commands.ReleaseTablesCommandHandler {
	return commands.NewReleaseTablesCommandHandler(c.restaurantUoW())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.uow(), c.allocator, c.publisher)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.uow(), c.allocator, c.publisher)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.uow(), c.publisher)
}

func (c *CompositionRoot) CreateServeOrderCommandHandler() commands.ServeOrderCommandHandler {
	return commands.NewServeOrderCommandHandler(c.orderUoW(), c.publisher)
}

func (c *CompositionRoot) CreateAdvanceCourseCommandHandler() commands.AdvanceCourseCommandHandler {
	return commands.NewAdvanceCourseCommandHandler(c.orderUoW(), c.publisher)
}

func (c *CompositionRoot) CreateAddLineItemsCommandHandler() commands.AddLineItemsCommandHandler {
	return commands.NewAddLineItemsCommandHandler(c.uow(), c.allocator, c.publisher)
}

func (c *CompositionRoot) CreateRemoveLineItemCommandHandler() commands.RemoveLineItemCommandHandler {
	return commands.NewRemoveLineItemCommandHandler(c.orderUoW(), c.publisher)
}

func (c *CompositionRoot) CreateToggleLineItemReadyCommandHandler() commands.ToggleLineItemReadyCommandHandler {
	return commands.NewToggleLineItemReadyCommandHandler(c.orderUoW(), c.publisher)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(orderrepo.NewGormOrderRepository(c.gormDB))
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(orderrepo.NewGormOrderRepository(c.gormDB))
}

func (c *CompositionRoot) CreateListKDSOrdersQueryHandler() queries.ListKDSOrdersQueryHandler {
	return queries.NewListKDSOrdersQueryHandler(
		orderrepo.NewGormOrderRepository(c.gormDB),
		restaurantrepo.NewGormRestaurantRepository(c.gormDB),
	)
}

func (c *CompositionRoot) CreateListActiveLineItemsQueryHandler() queries.ListActiveLineItemsQueryHandler {
	return queries.NewListActiveLineItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListMenuItemsQueryHandler() queries.ListMenuItemsQueryHandler {
	return queries.NewListMenuItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListTablesQueryHandler() queries.ListTablesQueryHandler {
	return queries.NewListTablesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateRestaurant:    c.CreateCreateRestaurantCommandHandler(),
		AddMenuItem:         c.CreateAddMenuItemCommandHandler(),
		AddTable:            c.CreateAddTableCommandHandler(),
		CreateOrder:         c.CreateCreateOrderCommandHandler(),
		UpdateOrder:         c.CreateUpdateOrderCommandHandler(),
		DeleteOrder:         c.CreateDeleteOrderCommandHandler(),
		ServeOrder:          c.CreateServeOrderCommandHandler(),
		AdvanceCourse:       c.CreateAdvanceCourseCommandHandler(),
		AddLineItems:        c.CreateAddLineItemsCommandHandler(),
		RemoveLineItem:      c.CreateRemoveLineItemCommandHandler(),
		ToggleLineItemReady: c.CreateToggleLineItemReadyCommandHandler(),
		GetOrder:            c.CreateGetOrderQueryHandler(),
		ListOrders:          c.CreateListOrdersQueryHandler(),
		ListKDSOrders:       c.CreateListKDSOrdersQueryHandler(),
		ListActiveLineItems: c.CreateListActiveLineItemsQueryHandler(),
		ListMenuItems:       c.CreateListMenuItemsQueryHandler(),
		ListTables:          c.CreateListTablesQueryHandler(),
	})
}

// CreateEcho assembles the HTTP stack: middleware, error rendering, API routes
// (behind the bearer guard when a JWT secret is configured) and API docs.
func (c *CompositionRoot) CreateEcho(ctx context.Context) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = httpin.ErrorHandler(c.logger)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		HandleError: true,
		LogValuesFunc: func(ec echo.Context, v middleware.RequestLoggerValues) error {
			c.logger.LogAttrs(ec.Request().Context(), slog.LevelInfo, "HTTP request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			)
			return nil
		},
	}))

	var guards []echo.MiddlewareFunc
	if c.cfg.JWTSecret != "" {
		guards = append(guards, httpin.BearerAuth([]byte(c.cfg.JWTSecret)))
	} else {
		c.logger.WarnContext(ctx, "JWT_SECRET is empty, the API is served without authentication")
	}
	c.CreateHTTPServer().Register(e, guards...)

	doc, err := openapi.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err = httpin.RegisterDocs(e, doc); err != nil {
		return nil, err
	}
	return e, nil
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	releaser := c.CreateReleaseTablesCommandHandler()
	return jobs.NewJobManager(&releaser, c.cfg.TableReleaseSchedule, c.logger)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncRestaurantUoWFactory func() commands.RestaurantUoW

func (f FuncRestaurantUoWFactory) Create() commands.RestaurantUoW {
	return f()
}
