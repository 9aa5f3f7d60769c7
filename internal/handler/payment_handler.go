package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"elective/internal/model"
	"elective/internal/repository"
)

// PaymentHandler handles the /payments resource.
type PaymentHandler struct {
	repo repository.PaymentRepository
	log  zerolog.Logger
}

// NewPaymentHandler creates a new payment handler.
func NewPaymentHandler(repo repository.PaymentRepository, log zerolog.Logger) *PaymentHandler {
	return &PaymentHandler{repo: repo, log: log}
}

// CreatePaymentRequest lists the fields required to insert a payment.
type CreatePaymentRequest struct {
	OrderID              int             `json:"order_id" validate:"required"`
	PaymentDate          model.Date      `json:"payment_date" validate:"required"`
	PaymentAmount        decimal.Decimal `json:"payment_amount" validate:"required"`
	PaymentMethod        string          `json:"payment_method" validate:"required"`
	TransactionReference string          `json:"transaction_reference" validate:"required"`
}

// UpdatePaymentRequest carries the full column set for an overwrite update.
type UpdatePaymentRequest struct {
	OrderID              *int             `json:"order_id"`
	PaymentDate          *model.Date      `json:"payment_date"`
	PaymentAmount        *decimal.Decimal `json:"payment_amount"`
	PaymentMethod        *string          `json:"payment_method"`
	TransactionReference *string          `json:"transaction_reference"`
}

func (r UpdatePaymentRequest) columns() map[string]interface{} {
	return map[string]interface{}{
		"order_id":              r.OrderID,
		"payment_date":          r.PaymentDate,
		"payment_amount":        r.PaymentAmount,
		"payment_method":        r.PaymentMethod,
		"transaction_reference": r.TransactionReference,
	}
}

// List godoc
// @Summary List all payments
// @Tags payments
// @Produce json
// @Success 200 {array} model.Payment
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /payments [get]
func (h *PaymentHandler) List(c echo.Context) error {
	rows, err := h.repo.List(c.Request().Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list payments")
		return errorJSON(c, http.StatusInternalServerError, "Failed to fetch payments")
	}
	if len(rows) == 0 {
		return errorJSON(c, http.StatusNotFound, "No payments found")
	}
	return c.JSON(http.StatusOK, rows)
}

// Create godoc
// @Summary Add a payment
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreatePaymentRequest true "Payment fields"
// @Success 201 {object} errors.MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /payments [post]
func (h *PaymentHandler) Create(c echo.Context) error {
	var req CreatePaymentRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Missing required fields")
	}

	payment := model.Payment{
		OrderID:              &req.OrderID,
		PaymentDate:          &req.PaymentDate,
		PaymentAmount:        &req.PaymentAmount,
		PaymentMethod:        &req.PaymentMethod,
		TransactionReference: &req.TransactionReference,
	}
	if err := h.repo.Create(c.Request().Context(), &payment); err != nil {
		h.log.Error().Err(err).Msg("create payment")
		return errorJSON(c, http.StatusInternalServerError, "Failed to add payment")
	}
	return messageJSON(c, http.StatusCreated, "Payment added successfully")
}

// Update godoc
// @Summary Update a payment by id
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Payment ID"
// @Param request body UpdatePaymentRequest true "Payment fields"
// @Success 200 {object} errors.MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /payments/{id} [put]
func (h *PaymentHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c)
	}
	var req UpdatePaymentRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}

	rows, err := h.repo.Update(c.Request().Context(), id, req.columns())
	if err != nil || rows == 0 {
		if err != nil {
			h.log.Error().Err(err).Uint("id", id).Msg("update payment")
		}
		return errorJSON(c, http.StatusInternalServerError, "Failed to update payment")
	}
	return messageJSON(c, http.StatusOK, "Payment updated successfully")
}

// Delete godoc
// @Summary Delete a payment by id
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Payment ID"
// @Success 200 {object} errors.MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /payments/{id} [delete]
func (h *PaymentHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c)
	}

	rows, err := h.repo.Delete(c.Request().Context(), id)
	if err != nil || rows == 0 {
		if err != nil {
			h.log.Error().Err(err).Uint("id", id).Msg("delete payment")
		}
		return errorJSON(c, http.StatusInternalServerError, "Failed to delete payment")
	}
	return messageJSON(c, http.StatusOK, "Payment deleted successfully")
}
