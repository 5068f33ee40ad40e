package health

import "context"

// CatalogChecker reports whether a catalog snapshot is loaded.
type CatalogChecker interface {
	HealthCheck(ctx context.Context) error
}

// DBPinger checks database availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}
