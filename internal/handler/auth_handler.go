package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	apperrors "elective/internal/errors"
	"elective/internal/service"
)

// AuthHandler handles registration and login endpoints.
type AuthHandler struct {
	authService service.AuthService
	log         zerolog.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, log: log}
}

// RegisterRequest represents a user registration request. Role defaults to
// "admin" when omitted.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse carries the issued bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}

// Register godoc
// @Summary Register a new user account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} errors.MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}

	if err := h.authService.Register(req.Username, req.Password, req.Role); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrMissingFields):
			return errorJSON(c, http.StatusBadRequest, "Username and password are required")
		case errors.Is(err, apperrors.ErrUserAlreadyExists):
			return errorJSON(c, http.StatusBadRequest, "User already exists")
		default:
			h.log.Error().Err(err).Str("username", req.Username).Msg("registration failed")
			return errorJSON(c, http.StatusInternalServerError, "Failed to register user")
		}
	}

	return messageJSON(c, http.StatusCreated, "User registered successfully")
}

// Login godoc
// @Summary Authenticate and obtain a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} TokenResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}

	token, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			return errorJSON(c, http.StatusUnauthorized, "Invalid credentials")
		}
		h.log.Error().Err(err).Str("username", req.Username).Msg("login failed")
		return errorJSON(c, http.StatusInternalServerError, "Failed to login")
	}

	return c.JSON(http.StatusOK, TokenResponse{Token: token})
}
