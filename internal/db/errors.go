package db

import "errors"

// Sentinel errors for database operations.
var (
	ErrKeyNotFound = errors.New("db: key not found")
	// ErrUnsupported is returned when the server lacks a command, such as
	// JSON.GET on a server without the JSON module.
	ErrUnsupported = errors.New("db: command not supported")
)

// Op constants map to Valkey/Redis command names for error context.
const (
	OpGet     = "GET"
	OpSet     = "SET"
	OpJSONGet = "JSON.GET"
	OpJSONSet = "JSON.SET"
)

// Error wraps an underlying error with the operation name for diagnostics.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }
