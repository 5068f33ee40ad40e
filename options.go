package vidriera

import (
	"errors"
	"time"
)

// Option configures an Engine.
type Option func(*engineConfig)

type engineConfig struct {
	products   []Product
	path       string
	detailPath string
	addrs      []string
	password   string
	key        string
	watch      bool
	debounce   time.Duration
	maxLimit   int
}

// WithProducts serves a fixed in-memory catalog.
func WithProducts(products []Product) Option {
	return func(c *engineConfig) {
		if products == nil {
			products = []Product{}
		}
		c.products = products
	}
}

// WithCatalogFile reads the catalog from a JSON file: a bare array or an
// object with a "results" array.
func WithCatalogFile(path string) Option {
	return func(c *engineConfig) {
		c.path = path
	}
}

// WithDetailFile sets the detail store read alongside the catalog file.
func WithDetailFile(path string) Option {
	return func(c *engineConfig) {
		c.detailPath = path
	}
}

// WithRedis reads the catalog document stored under key. Valkey works too.
func WithRedis(key string, addrs ...string) Option {
	return func(c *engineConfig) {
		c.key = key
		c.addrs = addrs
	}
}

// WithPassword sets the database password.
func WithPassword(password string) Option {
	return func(c *engineConfig) {
		c.password = password
	}
}

// WithWatch reloads the catalog file when it changes on disk.
func WithWatch(debounce time.Duration) Option {
	return func(c *engineConfig) {
		c.watch = true
		c.debounce = debounce
	}
}

// WithMaxLimit caps the number of items a search may return.
func WithMaxLimit(n int) Option {
	return func(c *engineConfig) {
		c.maxLimit = n
	}
}

func (c *engineConfig) validate() error {
	sources := 0
	if c.products != nil {
		sources++
	}
	if c.path != "" {
		sources++
	}
	if len(c.addrs) > 0 || c.key != "" {
		sources++
		if len(c.addrs) == 0 || c.key == "" {
			return errors.New("vidriera: WithRedis needs a key and at least one address")
		}
	}
	switch sources {
	case 0:
		return errors.New("vidriera: catalog source required (use WithProducts, WithCatalogFile or WithRedis)")
	case 1:
		return nil
	default:
		return errors.New("vidriera: only one catalog source may be set")
	}
}
