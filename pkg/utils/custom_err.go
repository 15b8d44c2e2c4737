package utils

import "errors"

var (
	ErrInvalidDestinations = errors.New("at least one destination is required")
	ErrInvalidDateRange    = errors.New("end date must not be before start date")
	ErrMissingDate         = errors.New("start date and end date are required")
	ErrPlanNotFound        = errors.New("plan not found")
	ErrInvalidID           = errors.New("invalid id")
	ErrForbidden           = errors.New("forbidden")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidTargetType   = errors.New("invalid target type")

	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already exists")

	ErrDatabaseError = errors.New("database error")
)
