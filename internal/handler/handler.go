// Package handler parses and validates incoming payloads, invokes the
// repositories, and maps results and failures to HTTP status codes and
// JSON bodies. All failures render as {"error": "<message>"}.
package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "elective/internal/errors"
)

func messageJSON(c echo.Context, code int, msg string) error {
	return c.JSON(code, apperrors.MessageResponse{Message: msg})
}

func errorJSON(c echo.Context, code int, msg string) error {
	return c.JSON(code, apperrors.ErrorResponse{Error: msg})
}

// parseID extracts the numeric identity key from the route path.
func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func invalidID(c echo.Context) error {
	return errorJSON(c, http.StatusBadRequest, "Invalid id")
}
