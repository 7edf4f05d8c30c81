package http

import (
	"net/http"

	"kitchen/internal/adapters/in/http/openapi"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Register mounts the health probe and every API route. The API group runs
// behind the given middlewares, typically BearerAuth.
func (s *Server) Register(e *echo.Echo, middlewares ...echo.MiddlewareFunc) {
	e.GET("/health", s.Health)

	api := e.Group("/api", middlewares...)
	api.POST("/restaurants", s.CreateRestaurant)

	api.GET("/:restaurantId/menu-items", s.ListMenuItems)
	api.POST("/:restaurantId/menu-items", s.AddMenuItem)
	api.GET("/:restaurantId/tables", s.ListTables)
	api.POST("/:restaurantId/tables", s.AddTable)

	api.GET("/:restaurantId/orders", s.ListOrders)
	api.POST("/:restaurantId/orders", s.CreateOrder)
	api.GET("/:restaurantId/orders/:orderId", s.GetOrder)
	api.PUT("/:restaurantId/orders/:orderId", s.UpdateOrder)
	api.DELETE("/:restaurantId/orders/:orderId", s.DeleteOrder)
	api.POST("/:restaurantId/orders/:orderId/serve", s.ServeOrder)
	api.POST("/:restaurantId/orders/:orderId/advance", s.AdvanceCourse)
	api.POST("/:restaurantId/orders/:orderId/line-items", s.AddLineItems)
	api.DELETE("/:restaurantId/orders/:orderId/line-items/:lineItemId", s.RemoveLineItem)

	api.GET("/:restaurantId/line-items", s.ListActiveLineItems)
	api.POST("/:restaurantId/line-items/:lineItemId/toggle", s.ToggleLineItemReady)
}

// RegisterDocs serves doc at /openapi.json and Swagger UI under /swagger/.
func RegisterDocs(e *echo.Echo, doc *openapi3.T) error {
	data, err := openapi.JSON(doc)
	if err != nil {
		return err
	}
	if err = openapi.Register(doc); err != nil {
		return err
	}

	e.GET("/openapi.json", func(ctx echo.Context) error {
		return ctx.Blob(http.StatusOK, echo.MIMEApplicationJSON, data)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return nil
}
