package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"elective/internal/model"
	"elective/internal/repository"
)

// ServiceHandler handles the /services resource.
type ServiceHandler struct {
	repo repository.ServiceRepository
	log  zerolog.Logger
}

// NewServiceHandler creates a new service handler.
func NewServiceHandler(repo repository.ServiceRepository, log zerolog.Logger) *ServiceHandler {
	return &ServiceHandler{repo: repo, log: log}
}

// CreateServiceRequest lists the fields required to insert a service.
type CreateServiceRequest struct {
	ServiceName    string          `json:"service_name" validate:"required"`
	PricePerPeriod decimal.Decimal `json:"price_per_period" validate:"required"`
}

// UpdateServiceRequest carries the full column set for an overwrite update.
type UpdateServiceRequest struct {
	ServiceName    *string          `json:"service_name"`
	PricePerPeriod *decimal.Decimal `json:"price_per_period"`
}

func (r UpdateServiceRequest) columns() map[string]interface{} {
	return map[string]interface{}{
		"service_name":     r.ServiceName,
		"price_per_period": r.PricePerPeriod,
	}
}

// List godoc
// @Summary List all services
// @Tags services
// @Produce json
// @Success 200 {array} model.Service
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /services [get]
func (h *ServiceHandler) List(c echo.Context) error {
	rows, err := h.repo.List(c.Request().Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list services")
		return errorJSON(c, http.StatusInternalServerError, "Failed to fetch services")
	}
	if len(rows) == 0 {
		return errorJSON(c, http.StatusNotFound, "No services found")
	}
	return c.JSON(http.StatusOK, rows)
}

// Create godoc
// @Summary Add a service
// @Tags services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateServiceRequest true "Service fields"
// @Success 201 {object} errors.MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /services [post]
func (h *ServiceHandler) Create(c echo.Context) error {
	var req CreateServiceRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Missing required fields")
	}

	svc := model.Service{
		ServiceName:    &req.ServiceName,
		PricePerPeriod: &req.PricePerPeriod,
	}
	if err := h.repo.Create(c.Request().Context(), &svc); err != nil {
		h.log.Error().Err(err).Msg("create service")
		return errorJSON(c, http.StatusInternalServerError, "Failed to add service")
	}
	return messageJSON(c, http.StatusCreated, "Service added successfully")
}

// Update godoc
// @Summary Update a service by id
// @Tags services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Service ID"
// @Param request body UpdateServiceRequest true "Service fields"
// @Success 200 {object} errors.MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /services/{id} [put]
func (h *ServiceHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c)
	}
	var req UpdateServiceRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}

	rows, err := h.repo.Update(c.Request().Context(), id, req.columns())
	if err != nil || rows == 0 {
		if err != nil {
			h.log.Error().Err(err).Uint("id", id).Msg("update service")
		}
		return errorJSON(c, http.StatusInternalServerError, "Failed to update service")
	}
	return messageJSON(c, http.StatusOK, "Service updated successfully")
}

// Delete godoc
// @Summary Delete a service by id
// @Tags services
// @Produce json
// @Security BearerAuth
// @Param id path int true "Service ID"
// @Success 200 {object} errors.MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /services/{id} [delete]
func (h *ServiceHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c)
	}

	rows, err := h.repo.Delete(c.Request().Context(), id)
	if err != nil || rows == 0 {
		if err != nil {
			h.log.Error().Err(err).Uint("id", id).Msg("delete service")
		}
		return errorJSON(c, http.StatusInternalServerError, "Failed to delete service")
	}
	return messageJSON(c, http.StatusOK, "Service deleted successfully")
}
