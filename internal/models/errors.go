package models

import "errors"

// Domain-level errors. Repositories wrap these with context; handlers test
// them with errors.Is to map storage failures onto HTTP status codes.
var (
	ErrProductNotFound = errors.New("product not found")
	ErrUserNotFound    = errors.New("user not found")
)
