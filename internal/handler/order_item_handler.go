package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"elective/internal/model"
	"elective/internal/repository"
)

// OrderItemHandler handles the /order_items resource.
type OrderItemHandler struct {
	repo repository.OrderItemRepository
	log  zerolog.Logger
}

// NewOrderItemHandler creates a new order item handler.
func NewOrderItemHandler(repo repository.OrderItemRepository, log zerolog.Logger) *OrderItemHandler {
	return &OrderItemHandler{repo: repo, log: log}
}

// CreateOrderItemRequest lists the fields required to insert an order item.
type CreateOrderItemRequest struct {
	OrderID              int             `json:"order_id" validate:"required"`
	ServiceID            int             `json:"service_id" validate:"required"`
	OrderQuantity        int             `json:"order_quantity" validate:"required"`
	MonthlyPaymentAmount decimal.Decimal `json:"monthly_payment_amount" validate:"required"`
	MonthlyPaymentDate   model.Date      `json:"monthly_payment_date" validate:"required"`
}

// UpdateOrderItemRequest carries the full column set for an overwrite update.
type UpdateOrderItemRequest struct {
	OrderID              *int             `json:"order_id"`
	ServiceID            *int             `json:"service_id"`
	OrderQuantity        *int             `json:"order_quantity"`
	MonthlyPaymentAmount *decimal.Decimal `json:"monthly_payment_amount"`
	MonthlyPaymentDate   *model.Date      `json:"monthly_payment_date"`
}

func (r UpdateOrderItemRequest) columns() map[string]interface{} {
	return map[string]interface{}{
		"order_id":               r.OrderID,
		"service_id":             r.ServiceID,
		"order_quantity":         r.OrderQuantity,
		"monthly_payment_amount": r.MonthlyPaymentAmount,
		"monthly_payment_date":   r.MonthlyPaymentDate,
	}
}

// List godoc
// @Summary List all order items
// @Tags order_items
// @Produce json
// @Success 200 {array} model.OrderItem
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /order_items [get]
func (h *OrderItemHandler) List(c echo.Context) error {
	rows, err := h.repo.List(c.Request().Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list order items")
		return errorJSON(c, http.StatusInternalServerError, "Failed to fetch order items")
	}
	if len(rows) == 0 {
		return errorJSON(c, http.StatusNotFound, "No order items found")
	}
	return c.JSON(http.StatusOK, rows)
}

// Create godoc
// @Summary Add an order item
// @Tags order_items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateOrderItemRequest true "Order item fields"
// @Success 201 {object} errors.MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /order_items [post]
func (h *OrderItemHandler) Create(c echo.Context) error {
	var req CreateOrderItemRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Missing required fields")
	}

	item := model.OrderItem{
		OrderID:              &req.OrderID,
		ServiceID:            &req.ServiceID,
		OrderQuantity:        &req.OrderQuantity,
		MonthlyPaymentAmount: &req.MonthlyPaymentAmount,
		MonthlyPaymentDate:   &req.MonthlyPaymentDate,
	}
	if err := h.repo.Create(c.Request().Context(), &item); err != nil {
		h.log.Error().Err(err).Msg("create order item")
		return errorJSON(c, http.StatusInternalServerError, "Failed to add order item")
	}
	return messageJSON(c, http.StatusCreated, "Order item added successfully")
}

// Update godoc
// @Summary Update an order item by id
// @Tags order_items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order Item ID"
// @Param request body UpdateOrderItemRequest true "Order item fields"
// @Success 200 {object} errors.MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /order_items/{id} [put]
func (h *OrderItemHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c)
	}
	var req UpdateOrderItemRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}

	rows, err := h.repo.Update(c.Request().Context(), id, req.columns())
	if err != nil || rows == 0 {
		if err != nil {
			h.log.Error().Err(err).Uint("id", id).Msg("update order item")
		}
		return errorJSON(c, http.StatusInternalServerError, "Failed to update order item")
	}
	return messageJSON(c, http.StatusOK, "Order item updated successfully")
}

// Delete godoc
// @Summary Delete an order item by id
// @Tags order_items
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order Item ID"
// @Success 200 {object} errors.MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /order_items/{id} [delete]
func (h *OrderItemHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c)
	}

	rows, err := h.repo.Delete(c.Request().Context(), id)
	if err != nil || rows == 0 {
		if err != nil {
			h.log.Error().Err(err).Uint("id", id).Msg("delete order item")
		}
		return errorJSON(c, http.StatusInternalServerError, "Failed to delete order item")
	}
	return messageJSON(c, http.StatusOK, "Order item deleted successfully")
}
