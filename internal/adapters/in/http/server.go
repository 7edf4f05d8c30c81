package http

import (
	"errors"
	"net/http"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/application/usecases/queries"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/ports"
	"kitchen/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Handlers groups the use cases the HTTP surface dispatches to.
type Handlers struct {
	// Command handlers
	CreateRestaurant    commands.CreateRestaurantCommandHandler
	AddMenuItem         commands.AddMenuItemCommandHandler
	AddTable            commands.AddTableCommandHandler
	CreateOrder         commands.CreateOrderCommandHandler
	UpdateOrder         commands.UpdateOrderCommandHandler
	DeleteOrder         commands.DeleteOrderCommandHandler
	ServeOrder          commands.ServeOrderCommandHandler
	AdvanceCourse       commands.AdvanceCourseCommandHandler
	AddLineItems        commands.AddLineItemsCommandHandler
	RemoveLineItem      commands.RemoveLineItemCommandHandler
	ToggleLineItemReady commands.ToggleLineItemReadyCommandHandler

	// Query handlers
	GetOrder            queries.GetOrderQueryHandler
	ListOrders          queries.ListOrdersQueryHandler
	ListKDSOrders       queries.ListKDSOrdersQueryHandler
	ListActiveLineItems queries.ListActiveLineItemsQueryHandler
	ListMenuItems       queries.ListMenuItemsQueryHandler
	ListTables          queries.ListTablesQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
// Every handler returns errors unrendered; ErrorHandler turns them into responses.
type Server struct {
	h Handlers
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{h: handlers}
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// CreateRestaurant handles POST /api/restaurants.
func (s *Server) CreateRestaurant(ctx echo.Context) error {
	var body NewRestaurant
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(err)
	}

	cmd, err := commands.NewCreateRestaurantCommand(body.Name)
	if err != nil {
		return err
	}
	id, err := s.h.CreateRestaurant.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, RestaurantCreated{Id: id.String()})
}

// AddMenuItem handles POST /api/:restaurantId/menu-items.
func (s *Server) AddMenuItem(ctx echo.Context) error {
	restaurantID, err := restaurantParam(ctx)
	if err != nil {
		return err
	}
	var body NewMenuItem
	if err = ctx.Bind(&body); err != nil {
		return invalidBody(err)
	}

	cmd, err := commands.NewAddMenuItemCommand(restaurantID, body.Name, body.Category, body.PriceCents)
	if err != nil {
		return err
	}
	id, err := s.h.AddMenuItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, Created{Id: id.Int64()})
}

// ListMenuItems handles GET /api/:restaurantId/menu-items.
func (s *Server) ListMenuItems(ctx echo.Context) error {
	restaurantID, err := restaurantParam(ctx)
	if err != nil {
		return err
	}
	var category *string
	if err = queryParam(ctx, "category", &category); err != nil {
		return err
	}
	filter := ""
	if category != nil {
		filter = *category
	}

	query, err := queries.NewListMenuItemsQuery(restaurantID, filter)
	if err != nil {
		return err
	}
	items, err := s.h.ListMenuItems.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]MenuItem, len(items))
	for i, item := range items {
		response[i] = MenuItem{
			Id:         item.ID.Int64(),
			Name:       item.Name,
			Category:   item.Category,
			PriceCents: item.Price.Cents(),
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// AddTable handles POST /api/:restaurantId/tables.
func (s *Server) AddTable(ctx echo.Context) error {
	restaurantID, err := restaurantParam(ctx)
	if err != nil {
		return err
	}
	var body NewTable
	if err = ctx.Bind(&body); err != nil {
		return invalidBody(err)
	}

	cmd, err := commands.NewAddTableCommand(restaurantID, body.Number)
	if err != nil {
		return err
	}
	id, err := s.h.AddTable.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, Created{Id: id.Int64()})
}

// ListTables handles GET /api/:restaurantId/tables.
func (s *Server) ListTables(ctx echo.Context) error {
	restaurantID, err := restaurantParam(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewListTablesQuery(restaurantID)
	if err != nil {
		return err
	}
	tables, err := s.h.ListTables.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]Table, len(tables))
	for i, table := range tables {
		response[i] = Table{Id: table.ID.Int64(), Number: table.Number, OrderId: int64Ptr(table.OrderID)}
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/:restaurantId/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	restaurantID, err := restaurantParam(ctx)
	if err != nil {
		return err
	}
	var body NewOrder
	if err = ctx.Bind(&body); err != nil {
		return invalidBody(err)
	}

	channel, err := order.ParseChannel(body.Channel)
	if err != nil {
		return err
	}
	tableID, err := optionalSequenceID("tableId", body.TableId)
	if err != nil {
		return err
	}
	lines, err := toLineItemInputs(body.LineItems)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateOrderCommand(restaurantID, channel, body.Number, tableID, lines)
	if err != nil {
		return err
	}
	id, err := s.h.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, Created{Id: id.Int64()})
}

// GetOrder handles GET /api/:restaurantId/orders/:orderId.
func (s *Server) GetOrder(ctx echo.Context) error {
	restaurantID, err := restaurantParam(ctx)
	if err != nil {
		return err
	}
	orderID, err := sequenceParam(ctx, "orderId")
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderQuery(restaurantID, orderID)
	if err != nil {
		return err
	}
	view, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, fromOrderView(view))
}

// ListOrders handles GET /api/:restaurantId/orders.
//
// status=pending|ready keeps unserved orders of that readiness, sort=time orders
// them oldest first and forKDS=true returns kitchen display tickets instead of
// POS orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	restaurantID, err := restaurantParam(ctx)
	if err != nil {
		return err
	}
	var params ListOrdersParams
	if err = errors.Join(
		queryParam(ctx, "status", &params.Status),
		queryParam(ctx, "sort", &params.Sort),
		queryParam(ctx, "forKDS", &params.ForKDS),
	); err != nil {
		return err
	}

	var status *order.Readiness
	if params.Status != nil {
		r, parseErr := order.ParseReadiness(*params.Status)
		if parseErr != nil {
			return parseErr
		}
		status = &r
	}
	sortByTime := false
	if params.Sort != nil {
		if *params.Sort != "time" {
			return errs.NewValueIsInvalidError("sort")
		}
		sortByTime = true
	}

	query, err := queries.NewListOrdersQuery(restaurantID, status, sortByTime)
	if err != nil {
		return err
	}

	if params.ForKDS != nil && *params.ForKDS {
		tickets, kdsErr := s.h.ListKDSOrders.Handle(ctx.Request().Context(), query)
		if kdsErr != nil {
			return kdsErr
		}
		response := make([]KDSOrder, len(tickets))
		for i, ticket := range tickets {
			response[i] = fromKDSOrderView(ticket)
		}
		return ctx.JSON(http.StatusOK, response)
	}

	orders, err := s.h.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = fromOrderView(o)
	}
	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrder handles PUT /api/:restaurantId/orders/:orderId.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	restaurantID, err := restaurantParam(ctx)
	if err != nil {
		return err
	}
	orderID, err := sequenceParam(ctx, "orderId")
	if err != nil {
		return err
	}
	var body OrderPatch
	if err = ctx.Bind(&body); err != nil {
		return invalidBody(err)
	}

	channel, err := order.ParseChannel(body.Channel)
	if err != nil {
		return err
	}
	tableID, err := optionalSequenceID("tableId", body.TableId)
	if err != nil {
		return err
	}
	lines, err := toPatchLineItemInputs(body.LineItems)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateOrderCommand(
		restaurantID, orderID, channel, body.Number, tableID, order.Course(body.Part), body.Served, body.Date, lines,
	)
	if err != nil {
		return err
	}
	result, err := s.h.UpdateOrder.Handle(ctx.Request().Context(), cmd)
	return matched(ctx, result, err)
}

// DeleteOrder handles DELETE /api/:restaurantId/orders/:orderId.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	target, err := orderTarget(ctx)
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteOrderCommand(target.restaurantID, target.orderID)
	if err != nil {
		return err
	}
	result, err := s.h.DeleteOrder.Handle(ctx.Request().Context(), cmd)
	return matched(ctx, result, err)
}

// ServeOrder handles POST /api/:restaurantId/orders/:orderId/serve.
func (s *Server) ServeOrder(ctx echo.Context) error {
	target, err := orderTarget(ctx)
	if err != nil {
		return err
	}
	cmd, err := commands.NewServeOrderCommand(target.restaurantID, target.orderID)
	if err != nil {
		return err
	}
	result, err := s.h.ServeOrder.Handle(ctx.Request().Context(), cmd)
	return matched(ctx, result, err)
}

// AdvanceCourse handles POST /api/:restaurantId/orders/:orderId/advance.
func (s *Server) AdvanceCourse(ctx echo.Context) error {
	target, err := orderTarget(ctx)
	if err != nil {
		return err
	}
	cmd, err := commands.NewAdvanceCourseCommand(target.restaurantID, target.orderID)
	if err != nil {
		return err
	}
	result, err := s.h.AdvanceCourse.Handle(ctx.Request().Context(), cmd)
	return matched(ctx, result, err)
}

// AddLineItems handles POST /api/:restaurantId/orders/:orderId/line-items.
func (s *Server) AddLineItems(ctx echo.Context) error {
	target, err := orderTarget(ctx)
	if err != nil {
		return err
	}
	var body NewLineItems
	if err = ctx.Bind(&body); err != nil {
		return invalidBody(err)
	}
	lines, err := toLineItemInputs(body.LineItems)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAddLineItemsCommand(target.restaurantID, target.orderID, lines)
	if err != nil {
		return err
	}
	ids, err := s.h.AddLineItems.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	response := CreatedLineItems{Ids: make([]int64, len(ids))}
	for i, id := range ids {
		response.Ids[i] = id.Int64()
	}
	return ctx.JSON(http.StatusCreated, response)
}

// RemoveLineItem handles DELETE /api/:restaurantId/orders/:orderId/line-items/:lineItemId.
func (s *Server) RemoveLineItem(ctx echo.Context) error {
	target, err := orderTarget(ctx)
	if err != nil {
		return err
	}
	lineItemID, err := sequenceParam(ctx, "lineItemId")
	if err != nil {
		return err
	}

	cmd, err := commands.NewRemoveLineItemCommand(target.restaurantID, target.orderID, lineItemID)
	if err != nil {
		return err
	}
	if err = s.h.RemoveLineItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ListActiveLineItems handles GET /api/:restaurantId/line-items, the front-of-house list.
func (s *Server) ListActiveLineItems(ctx echo.Context) error {
	restaurantID, err := restaurantParam(ctx)
	if err != nil {
		return err
	}
	var status *string
	if err = queryParam(ctx, "status", &status); err != nil {
		return err
	}

	var ready *bool
	if status != nil {
		v, parseErr := queries.ParseLineItemStatus(*status)
		if parseErr != nil {
			return parseErr
		}
		ready = &v
	}

	query, err := queries.NewListActiveLineItemsQuery(restaurantID, ready)
	if err != nil {
		return err
	}
	items, err := s.h.ListActiveLineItems.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]ActiveLineItem, len(items))
	for i, item := range items {
		response[i] = fromActiveLineItemView(item)
	}
	return ctx.JSON(http.StatusOK, response)
}

// ToggleLineItemReady handles POST /api/:restaurantId/line-items/:lineItemId/toggle.
func (s *Server) ToggleLineItemReady(ctx echo.Context) error {
	restaurantID, err := restaurantParam(ctx)
	if err != nil {
		return err
	}
	lineItemID, err := sequenceParam(ctx, "lineItemId")
	if err != nil {
		return err
	}

	cmd, err := commands.NewToggleLineItemReadyCommand(restaurantID, lineItemID)
	if err != nil {
		return err
	}
	previous, err := s.h.ToggleLineItemReady.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, Toggled{LineItemId: lineItemID.Int64(), Previous: previous, IsReady: !previous})
}

// matched renders a targeted write. A write that matched but changed nothing is
// still a success for the caller.
func matched(ctx echo.Context, result ports.MatchResult, err error) error {
	if err != nil && !errors.Is(err, errs.ErrNoOp) {
		return err
	}
	return ctx.JSON(http.StatusOK, MatchResult{Matched: result.Matched, Modified: result.Modified})
}
