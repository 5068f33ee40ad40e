// Package category tests products against category path prefixes and maps
// query keywords to category paths.
package category

import (
	"github.com/kailas-cloud/vidriera/internal/domain/normalize"
	"github.com/kailas-cloud/vidriera/internal/domain/product"
	"github.com/kailas-cloud/vidriera/internal/domain/text"
)

// MatchesPrefix reports whether the product's normalized category path starts
// with prefix. Comparison is exact per element after normalization; an empty
// prefix always matches.
func MatchesPrefix(p *product.Product, prefix []string) bool {
	if len(prefix) == 0 {
		return true
	}
	return HasPrefix(text.CategoryPath(p), prefix)
}

// HasPrefix reports whether the normalized path starts with prefix.
func HasPrefix(path, prefix []string) bool {
	if len(path) < len(prefix) {
		return false
	}
	for i, want := range prefix {
		if path[i] != normalize.Text(want) {
			return false
		}
	}
	return true
}
