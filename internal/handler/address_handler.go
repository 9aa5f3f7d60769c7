package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"elective/internal/model"
	"elective/internal/repository"
)

// AddressHandler handles the /addresses resource.
type AddressHandler struct {
	repo repository.AddressRepository
	log  zerolog.Logger
}

// NewAddressHandler creates a new address handler.
func NewAddressHandler(repo repository.AddressRepository, log zerolog.Logger) *AddressHandler {
	return &AddressHandler{repo: repo, log: log}
}

// CreateAddressRequest lists the fields required to insert an address.
type CreateAddressRequest struct {
	NumberBuilding      string `json:"number_building" validate:"required"`
	Street              string `json:"street" validate:"required"`
	City                string `json:"city" validate:"required"`
	ZipPostcode         string `json:"zip_postcode" validate:"required"`
	StateProvinceCounty string `json:"state_province_county" validate:"required"`
	Country             string `json:"country" validate:"required"`
}

// UpdateAddressRequest carries the full column set for an overwrite update.
// Omitted fields reset their columns to NULL.
type UpdateAddressRequest struct {
	NumberBuilding      *string `json:"number_building"`
	Street              *string `json:"street"`
	City                *string `json:"city"`
	ZipPostcode         *string `json:"zip_postcode"`
	StateProvinceCounty *string `json:"state_province_county"`
	Country             *string `json:"country"`
}

func (r UpdateAddressRequest) columns() map[string]interface{} {
	return map[string]interface{}{
		"number_building":       r.NumberBuilding,
		"street":                r.Street,
		"city":                  r.City,
		"zip_postcode":          r.ZipPostcode,
		"state_province_county": r.StateProvinceCounty,
		"country":               r.Country,
	}
}

// List godoc
// @Summary List all addresses
// @Tags addresses
// @Produce json
// @Success 200 {array} model.Address
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /addresses [get]
func (h *AddressHandler) List(c echo.Context) error {
	rows, err := h.repo.List(c.Request().Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list addresses")
		return errorJSON(c, http.StatusInternalServerError, "Failed to fetch addresses")
	}
	if len(rows) == 0 {
		return errorJSON(c, http.StatusNotFound, "No addresses found")
	}
	return c.JSON(http.StatusOK, rows)
}

// Create godoc
// @Summary Add an address
// @Tags addresses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateAddressRequest true "Address fields"
// @Success 201 {object} errors.MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /addresses [post]
func (h *AddressHandler) Create(c echo.Context) error {
	var req CreateAddressRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Missing required fields")
	}

	address := model.Address{
		NumberBuilding:      &req.NumberBuilding,
		Street:              &req.Street,
		City:                &req.City,
		ZipPostcode:         &req.ZipPostcode,
		StateProvinceCounty: &req.StateProvinceCounty,
		Country:             &req.Country,
	}
	if err := h.repo.Create(c.Request().Context(), &address); err != nil {
		h.log.Error().Err(err).Msg("create address")
		return errorJSON(c, http.StatusInternalServerError, "Failed to add address")
	}
	return messageJSON(c, http.StatusCreated, "Address added successfully")
}

// Update godoc
// @Summary Update an address by id
// @Tags addresses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Address ID"
// @Param request body UpdateAddressRequest true "Address fields"
// @Success 200 {object} errors.MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /addresses/{id} [put]
func (h *AddressHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c)
	}
	var req UpdateAddressRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}

	rows, err := h.repo.Update(c.Request().Context(), id, req.columns())
	if err != nil || rows == 0 {
		if err != nil {
			h.log.Error().Err(err).Uint("id", id).Msg("update address")
		}
		return errorJSON(c, http.StatusInternalServerError, "Failed to update address")
	}
	return messageJSON(c, http.StatusOK, "Address updated successfully")
}

// Delete godoc
// @Summary Delete an address by id
// @Tags addresses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Address ID"
// @Success 200 {object} errors.MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /addresses/{id} [delete]
func (h *AddressHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c)
	}

	rows, err := h.repo.Delete(c.Request().Context(), id)
	if err != nil || rows == 0 {
		if err != nil {
			h.log.Error().Err(err).Uint("id", id).Msg("delete address")
		}
		return errorJSON(c, http.StatusInternalServerError, "Failed to delete address")
	}
	return messageJSON(c, http.StatusOK, "Address deleted successfully")
}
