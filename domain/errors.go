package domain

import (
	"errors"
	"net/http"
)

// Sentinel errors carry the client-facing message; StatusCode maps identity
// to an HTTP status so controllers never match on strings.
var (
	ErrPlayerNotFound    = errors.New("Player not found")
	ErrVehicleNotFound   = errors.New("Vehicle not found")
	ErrGarageNotFound    = errors.New("Garage not found")
	ErrDuplicatePlayer   = errors.New("Username or email already taken")
	ErrInvalidCreds      = errors.New("Invalid credentials")
	ErrMissingToken      = errors.New("Missing authorization token")
	ErrInvalidToken      = errors.New("Invalid or expired token")
	ErrInvalidRefresh    = errors.New("Invalid refresh token")
	ErrVehicleAccess     = errors.New("Unauthorized access to player vehicles")
	ErrGarageAccess      = errors.New("Unauthorized access to player garages")
	ErrPlayerAccess      = errors.New("Unauthorized access to player data")
	ErrInsufficientFunds = errors.New("Insufficient funds")
	ErrValidation        = errors.New("Validation failed")
)

// StatusCode classifies err into the response status set
// {400, 401, 403, 404, 409, 500}.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrBadCoords),
		errors.Is(err, ErrInsufficientFunds):
		return http.StatusBadRequest
	case errors.Is(err, ErrMissingToken), errors.Is(err, ErrInvalidToken),
		errors.Is(err, ErrInvalidCreds), errors.Is(err, ErrInvalidRefresh):
		return http.StatusUnauthorized
	case errors.Is(err, ErrVehicleAccess), errors.Is(err, ErrGarageAccess),
		errors.Is(err, ErrPlayerAccess):
		return http.StatusForbidden
	case errors.Is(err, ErrPlayerNotFound), errors.Is(err, ErrVehicleNotFound),
		errors.Is(err, ErrGarageNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicatePlayer):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
