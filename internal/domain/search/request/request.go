package request

import (
	"fmt"
	"unicode/utf8"

	"github.com/kailas-cloud/vidriera/internal/domain"
)

// Search parameter limits.
const (
	// MaxQueryLength is the maximum allowed search query length in bytes.
	MaxQueryLength = 4096
	DefaultLimit   = 4
)

// Request is a validated search query.
type Request struct {
	query string
	limit int
}

// New validates search parameters. A blank query is valid and means
// "browse the catalog". A zero limit is valid and yields no items.
func New(query string, limit int) (Request, error) {
	if !utf8.ValidString(query) {
		return Request{}, fmt.Errorf("query is not valid utf-8: %w", domain.ErrInvalidInput)
	}
	if len(query) > MaxQueryLength {
		return Request{}, fmt.Errorf("query too long (max %d bytes): %w", MaxQueryLength, domain.ErrInvalidInput)
	}
	if limit < 0 {
		return Request{}, fmt.Errorf("limit must not be negative: %w", domain.ErrInvalidInput)
	}
	return Request{query: query, limit: limit}, nil
}

// WithDefaultLimit validates a query that carries no explicit limit.
func WithDefaultLimit(query string) (Request, error) {
	return New(query, DefaultLimit)
}

// Query returns the raw search text.
func (r *Request) Query() string { return r.query }

// Limit returns the maximum number of items to return.
func (r *Request) Limit() int { return r.limit }
