package http

import (
	"net/http"

	"github.com/ericks0nmartinez/burger/internal/core/application/usecases/commands"
	"github.com/ericks0nmartinez/burger/internal/core/application/usecases/queries"
	"github.com/ericks0nmartinez/burger/internal/core/domain/model/product"

	"github.com/labstack/echo/v4"
)

// productRequest is the JSON body for creating and updating catalog products.
type productRequest struct {
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	Image  string  `json:"image"`
	Status string  `json:"status"`
}

// CreateProduct handles POST /api/products/burgers.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var req productRequest
	if err := ctx.Bind(&req); err != nil {
		return fail(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewCreateProductCommand(req.Name, req.Price, req.Image)
	if err != nil {
		return respondError(ctx, err)
	}

	id, err := s.handlers.CreateProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusCreated, map[string]int64{"id": id})
}

// GetProducts handles GET /api/products/burgers. The active query parameter
// limits the result to the customer-facing menu.
func (s *Server) GetProducts(ctx echo.Context) error {
	query := queries.NewGetProductsQuery()
	if ctx.QueryParam("active") == "true" {
		query = queries.NewActiveProductsQuery()
	}

	products, err := s.handlers.GetProducts.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, products)
}

// GetProduct handles GET /api/products/burgers/:id.
func (s *Server) GetProduct(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetProductQuery(id)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.handlers.GetProduct.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, resp)
}

// UpdateProduct handles PUT /api/products/burgers/:id.
func (s *Server) UpdateProduct(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req productRequest
	if err = ctx.Bind(&req); err != nil {
		return fail(ctx, http.StatusBadRequest, "invalid request body")
	}

	availability, err := product.ParseAvailability(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateProductCommand(id, req.Name, req.Price, req.Image, availability)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.UpdateProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondMessage(ctx, http.StatusOK, "product updated")
}

// DeleteProduct handles DELETE /api/products/burgers/:id.
func (s *Server) DeleteProduct(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteProductCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.DeleteProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondMessage(ctx, http.StatusOK, "product deleted")
}
