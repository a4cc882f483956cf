package http

import (
	"net/http"
	"time"

	"github.com/ericks0nmartinez/burger/internal/core/application/usecases/commands"
	"github.com/ericks0nmartinez/burger/internal/core/application/usecases/queries"
	"github.com/ericks0nmartinez/burger/internal/core/domain/model/order"
	"github.com/ericks0nmartinez/burger/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// orderRequest is the JSON body for creating and updating orders.
type orderRequest struct {
	Name          string        `json:"name"`
	Phone         string        `json:"phone"`
	Items         []itemRequest `json:"items"`
	Address       string        `json:"address"`
	Delivery      bool          `json:"delivery"`
	PickupTime    string        `json:"pickupTime"`
	TableNumber   int           `json:"tableNumber"`
	PaymentMethod string        `json:"paymentMethod"`
	Notes         string        `json:"notes"`
	Total         float64       `json:"total"`
	DeliveryFee   float64       `json:"deliveryFee"`
}

type itemRequest struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

func (r orderRequest) toDetails() order.Details {
	items := make([]order.Item, len(r.Items))
	for i, item := range r.Items {
		items[i] = order.Item{Name: item.Name, Quantity: item.Quantity, Price: item.Price}
	}

	return order.Details{
		CustomerName:  r.Name,
		Phone:         r.Phone,
		Items:         items,
		Address:       r.Address,
		Delivery:      r.Delivery,
		PickupTime:    r.PickupTime,
		TableNumber:   r.TableNumber,
		PaymentMethod: r.PaymentMethod,
		Notes:         r.Notes,
		Total:         r.Total,
		DeliveryFee:   r.DeliveryFee,
	}
}

// CreateOrder handles POST /api/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req orderRequest
	if err := ctx.Bind(&req); err != nil {
		return fail(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewCreateOrderCommand(req.toDetails())
	if err != nil {
		return respondError(ctx, err)
	}

	id, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusCreated, map[string]int64{"id": id})
}

// GetOrders handles GET /api/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.handlers.GetAllOrders.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, orders)
}

// GetOrder handles GET /api/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, resp)
}

// GetDeliveryOrders handles GET /api/orders/delivery.
func (s *Server) GetDeliveryOrders(ctx echo.Context) error {
	orders, err := s.handlers.GetDeliveryOrders.Handle(
		ctx.Request().Context(), queries.NewGetDeliveryOrdersQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, orders)
}

// UpdateOrder handles PUT /api/orders/:id.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req orderRequest
	if err = ctx.Bind(&req); err != nil {
		return fail(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewUpdateOrderCommand(id, req.toDetails())
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.UpdateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondMessage(ctx, http.StatusOK, "order updated")
}

// TransitionOrderStatus handles PATCH /api/orders/:id/status.
func (s *Server) TransitionOrderStatus(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req struct {
		Status string `json:"status"`
	}
	if err = ctx.Bind(&req); err != nil {
		return fail(ctx, http.StatusBadRequest, "invalid request body")
	}

	newStatus, err := order.ParseStatus(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewTransitionOrderStatusCommand(id, newStatus)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.TransitionOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondMessage(ctx, http.StatusOK, "status updated")
}

// MarkOrderPaid handles PATCH /api/orders/:id/payment.
func (s *Server) MarkOrderPaid(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewMarkOrderPaidCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.MarkOrderPaid.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondMessage(ctx, http.StatusOK, "payment confirmed")
}

// DeleteOrder handles DELETE /api/orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondMessage(ctx, http.StatusOK, "order deleted")
}

// GetCashRegisterReport handles GET /api/cash-register. Without from/to query
// parameters the report covers the current day.
func (s *Server) GetCashRegisterReport(ctx echo.Context) error {
	fromParam := ctx.QueryParam("from")
	toParam := ctx.QueryParam("to")

	query := queries.NewGetCashRegisterReportQuery()
	if fromParam != "" || toParam != "" {
		from, err := time.Parse(time.RFC3339, fromParam)
		if err != nil {
			return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("from", err))
		}

		to, err := time.Parse(time.RFC3339, toParam)
		if err != nil {
			return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("to", err))
		}

		query, err = queries.NewGetCashRegisterReportQueryForRange(from, to)
		if err != nil {
			return respondError(ctx, err)
		}
	}

	report, err := s.handlers.GetCashRegisterReport.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, report)
}
