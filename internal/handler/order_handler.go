package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"elective/internal/model"
	"elective/internal/repository"
)

// OrderHandler handles the /orders resource.
type OrderHandler struct {
	repo repository.OrderRepository
	log  zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(repo repository.OrderRepository, log zerolog.Logger) *OrderHandler {
	return &OrderHandler{repo: repo, log: log}
}

// CreateOrderRequest lists the fields required to insert an order. Dates are
// ISO-8601 strings ("2006-01-02").
type CreateOrderRequest struct {
	CustomerID  int        `json:"customer_id" validate:"required"`
	OrderStatus string     `json:"order_status" validate:"required"`
	OrderDate   model.Date `json:"order_date" validate:"required"`
	StartDate   model.Date `json:"start_date" validate:"required"`
	EndDate     model.Date `json:"end_date" validate:"required"`
}

// UpdateOrderRequest carries the full column set for an overwrite update.
type UpdateOrderRequest struct {
	CustomerID  *int        `json:"customer_id"`
	OrderStatus *string     `json:"order_status"`
	OrderDate   *model.Date `json:"order_date"`
	StartDate   *model.Date `json:"start_date"`
	EndDate     *model.Date `json:"end_date"`
}

func (r UpdateOrderRequest) columns() map[string]interface{} {
	return map[string]interface{}{
		"customer_id":  r.CustomerID,
		"order_status": r.OrderStatus,
		"order_date":   r.OrderDate,
		"start_date":   r.StartDate,
		"end_date":     r.EndDate,
	}
}

// List godoc
// @Summary List all orders
// @Tags orders
// @Produce json
// @Success 200 {array} model.Order
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	rows, err := h.repo.List(c.Request().Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list orders")
		return errorJSON(c, http.StatusInternalServerError, "Failed to fetch orders")
	}
	if len(rows) == 0 {
		return errorJSON(c, http.StatusNotFound, "No orders found")
	}
	return c.JSON(http.StatusOK, rows)
}

// Create godoc
// @Summary Add an order
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateOrderRequest true "Order fields"
// @Success 201 {object} errors.MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Missing required fields")
	}

	order := model.Order{
		CustomerID:  &req.CustomerID,
		OrderStatus: &req.OrderStatus,
		OrderDate:   &req.OrderDate,
		StartDate:   &req.StartDate,
		EndDate:     &req.EndDate,
	}
	if err := h.repo.Create(c.Request().Context(), &order); err != nil {
		h.log.Error().Err(err).Msg("create order")
		return errorJSON(c, http.StatusInternalServerError, "Failed to add order")
	}
	return messageJSON(c, http.StatusCreated, "Order added successfully")
}

// Update godoc
// @Summary Update an order by id
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Param request body UpdateOrderRequest true "Order fields"
// @Success 200 {object} errors.MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /orders/{id} [put]
func (h *OrderHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c)
	}
	var req UpdateOrderRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}

	rows, err := h.repo.Update(c.Request().Context(), id, req.columns())
	if err != nil || rows == 0 {
		if err != nil {
			h.log.Error().Err(err).Uint("id", id).Msg("update order")
		}
		return errorJSON(c, http.StatusInternalServerError, "Failed to update order")
	}
	return messageJSON(c, http.StatusOK, "Order updated successfully")
}

// Delete godoc
// @Summary Delete an order by id
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 200 {object} errors.MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /orders/{id} [delete]
func (h *OrderHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c)
	}

	rows, err := h.repo.Delete(c.Request().Context(), id)
	if err != nil || rows == 0 {
		if err != nil {
			h.log.Error().Err(err).Uint("id", id).Msg("delete order")
		}
		return errorJSON(c, http.StatusInternalServerError, "Failed to delete order")
	}
	return messageJSON(c, http.StatusOK, "Order deleted successfully")
}
