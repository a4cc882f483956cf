// Package http exposes the ordering API over echo. Responses use the
// {success, data|message} envelope the front ends expect.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ericks0nmartinez/burger/internal/core/application/usecases/commands"
	"github.com/ericks0nmartinez/burger/internal/core/application/usecases/queries"
	"github.com/ericks0nmartinez/burger/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
}

// Handlers bundles the command and query handlers the server dispatches to.
type Handlers struct {
	CreateOrder           commands.CreateOrderCommandHandler
	TransitionOrderStatus commands.TransitionOrderStatusCommandHandler
	MarkOrderPaid         commands.MarkOrderPaidCommandHandler
	UpdateOrder           commands.UpdateOrderCommandHandler
	DeleteOrder           commands.DeleteOrderCommandHandler
	CreateProduct         commands.CreateProductCommandHandler
	UpdateProduct         commands.UpdateProductCommandHandler
	DeleteProduct         commands.DeleteProductCommandHandler
	UpdateSettings        commands.UpdateSettingsCommandHandler

	GetAllOrders          queries.GetAllOrdersQueryHandler
	GetOrder              queries.GetOrderQueryHandler
	GetDeliveryOrders     queries.GetDeliveryOrdersQueryHandler
	GetCashRegisterReport queries.GetCashRegisterReportQueryHandler
	GetProducts           queries.GetProductsQueryHandler
	GetProduct            queries.GetProductQueryHandler
	GetSettings           queries.GetSettingsQueryHandler
}

// NewServer creates the HTTP server.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes mounts the API on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	orders := api.Group("/orders")
	orders.POST("", s.CreateOrder)
	orders.GET("", s.GetOrders)
	orders.GET("/delivery", s.GetDeliveryOrders)
	orders.GET("/:id", s.GetOrder)
	orders.PUT("/:id", s.UpdateOrder)
	orders.PATCH("/:id/status", s.TransitionOrderStatus)
	orders.PATCH("/:id/payment", s.MarkOrderPaid)
	orders.DELETE("/:id", s.DeleteOrder)

	api.GET("/cash-register", s.GetCashRegisterReport)

	config := api.Group("/config")
	config.GET("", s.GetSettings)
	config.POST("", s.UpdateSettings)
	config.PATCH("", s.UpdateSettings)

	burgers := api.Group("/products/burgers")
	burgers.POST("", s.CreateProduct)
	burgers.GET("", s.GetProducts)
	burgers.GET("/:id", s.GetProduct)
	burgers.PUT("/:id", s.UpdateProduct)
	burgers.DELETE("/:id", s.DeleteProduct)

	e.GET("/health", s.Health)
}

// Health reports service liveness.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// envelope is the response wrapper used by every API endpoint.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func respond(ctx echo.Context, status int, data any) error {
	return ctx.JSON(status, envelope{Success: true, Data: data})
}

func respondMessage(ctx echo.Context, status int, message string) error {
	return ctx.JSON(status, envelope{Success: true, Message: message})
}

func fail(ctx echo.Context, status int, message string) error {
	return ctx.JSON(status, envelope{Success: false, Message: message})
}

// respondError maps application errors to HTTP statuses: missing objects to
// 404, validation failures to 400, everything else to 500.
func respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return fail(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return fail(ctx, http.StatusBadRequest, err.Error())
	default:
		return fail(ctx, http.StatusInternalServerError, "internal server error")
	}
}

// pathID parses the :id route parameter.
func pathID(ctx echo.Context) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.NewValueIsInvalidError("id")
	}
	return id, nil
}
