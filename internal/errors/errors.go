// Package errors defines the sentinel errors shared between the auth service
// and its handlers, and the JSON response envelopes used across the API.
package errors

import "errors"

var (
	// ErrMissingFields is returned when a registration request omits username or password.
	ErrMissingFields = errors.New("username and password are required")
	// ErrUserAlreadyExists is returned when registering a username that is taken.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrInvalidCredentials is returned when username or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ErrorResponse is the JSON body every failure returns.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the JSON body successful mutations return.
type MessageResponse struct {
	Message string `json:"message"`
}
