package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"elective/internal/model"
	"elective/internal/repository"
)

// CustomerHandler handles the /customers resource.
type CustomerHandler struct {
	repo repository.CustomerRepository
	log  zerolog.Logger
}

// NewCustomerHandler creates a new customer handler.
func NewCustomerHandler(repo repository.CustomerRepository, log zerolog.Logger) *CustomerHandler {
	return &CustomerHandler{repo: repo, log: log}
}

// CreateCustomerRequest lists the fields required to insert a customer.
type CreateCustomerRequest struct {
	AddressID     int    `json:"address_id" validate:"required"`
	CustomerName  string `json:"customer_name" validate:"required"`
	CustomerPhone string `json:"customer_phone" validate:"required"`
	CustomerEmail string `json:"customer_email" validate:"required"`
}

// UpdateCustomerRequest carries the full column set for an overwrite update.
type UpdateCustomerRequest struct {
	AddressID     *int    `json:"address_id"`
	CustomerName  *string `json:"customer_name"`
	CustomerPhone *string `json:"customer_phone"`
	CustomerEmail *string `json:"customer_email"`
}

func (r UpdateCustomerRequest) columns() map[string]interface{} {
	return map[string]interface{}{
		"address_id":     r.AddressID,
		"customer_name":  r.CustomerName,
		"customer_phone": r.CustomerPhone,
		"customer_email": r.CustomerEmail,
	}
}

// List godoc
// @Summary List all customers
// @Tags customers
// @Produce json
// @Success 200 {array} model.Customer
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /customers [get]
func (h *CustomerHandler) List(c echo.Context) error {
	rows, err := h.repo.List(c.Request().Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list customers")
		return errorJSON(c, http.StatusInternalServerError, "Failed to fetch customers")
	}
	if len(rows) == 0 {
		return errorJSON(c, http.StatusNotFound, "No customers found")
	}
	return c.JSON(http.StatusOK, rows)
}

// Create godoc
// @Summary Add a customer
// @Tags customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateCustomerRequest true "Customer fields"
// @Success 201 {object} errors.MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /customers [post]
func (h *CustomerHandler) Create(c echo.Context) error {
	var req CreateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Missing required fields")
	}

	customer := model.Customer{
		AddressID:     &req.AddressID,
		CustomerName:  &req.CustomerName,
		CustomerPhone: &req.CustomerPhone,
		CustomerEmail: &req.CustomerEmail,
	}
	if err := h.repo.Create(c.Request().Context(), &customer); err != nil {
		h.log.Error().Err(err).Msg("create customer")
		return errorJSON(c, http.StatusInternalServerError, "Failed to add customer")
	}
	return messageJSON(c, http.StatusCreated, "Customer added successfully")
}

// Update godoc
// @Summary Update a customer by id
// @Tags customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Customer ID"
// @Param request body UpdateCustomerRequest true "Customer fields"
// @Success 200 {object} errors.MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /customers/{id} [put]
func (h *CustomerHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c)
	}
	var req UpdateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}

	rows, err := h.repo.Update(c.Request().Context(), id, req.columns())
	if err != nil || rows == 0 {
		if err != nil {
			h.log.Error().Err(err).Uint("id", id).Msg("update customer")
		}
		return errorJSON(c, http.StatusInternalServerError, "Failed to update customer")
	}
	return messageJSON(c, http.StatusOK, "Customer updated successfully")
}

// Delete godoc
// @Summary Delete a customer by id
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Customer ID"
// @Success 200 {object} errors.MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /customers/{id} [delete]
func (h *CustomerHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c)
	}

	rows, err := h.repo.Delete(c.Request().Context(), id)
	if err != nil || rows == 0 {
		if err != nil {
			h.log.Error().Err(err).Uint("id", id).Msg("delete customer")
		}
		return errorJSON(c, http.StatusInternalServerError, "Failed to delete customer")
	}
	return messageJSON(c, http.StatusOK, "Customer deleted successfully")
}
