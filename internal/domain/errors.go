package domain

import "errors"

var (
	// ErrInvalidInput signals malformed input at the public search boundary.
	ErrInvalidInput = errors.New("invalid input")
	// ErrProductNotFound signals a missing product or detail record.
	ErrProductNotFound = errors.New("product not found")
	// ErrCatalogUnavailable signals that no catalog snapshot has been loaded.
	ErrCatalogUnavailable = errors.New("catalog unavailable")
)
