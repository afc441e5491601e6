package ports

import "context"

// HealthChecker checks external dependency health.
type HealthChecker interface {
	// Ping verifies the dependency is reachable. Returns nil if healthy.
	Ping(ctx context.Context) error
	// Name returns the dependency name (e.g., "scanner").
	Name() string
}
