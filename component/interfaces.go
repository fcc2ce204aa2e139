package component

import "context"

// HealthStatus represents the health state of a component.
type HealthStatus string

const (
	StatusHealthy   HealthStatus = "healthy"
	StatusUnhealthy HealthStatus = "unhealthy"
	StatusDegraded  HealthStatus = "degraded"
)

// Health holds health information for a component.
type Health struct {
	Name    string       `json:"name"`
	Status  HealthStatus `json:"status"`
	Message string       `json:"message,omitempty"`
}

// Healthy reports whether the status is StatusHealthy.
func (h Health) Healthy() bool {
	return h.Status == StatusHealthy
}

// Component represents a lifecycle-managed client.
type Component interface {
	// Name returns the unique name of the component.
	Name() string

	// Start prepares the component for use.
	Start(ctx context.Context) error

	// Stop releases the component's resources.
	Stop(ctx context.Context) error

	// Health returns the current health status of the component.
	Health(ctx context.Context) Health
}

// Description holds summary information for a host's startup display.
type Description struct {
	// Name is the human-readable display name. If empty, the component's
	// Name() is used.
	Name string
	// Type categorizes the component, e.g. "http-client".
	Type string
	// Details is a one-liner such as "https://api.baasic.com/v1/app/ timeout=30s".
	Details string
}

// Describable is optionally implemented by Components to self-report what
// they are and how they are configured.
type Describable interface {
	Describe() Description
}
