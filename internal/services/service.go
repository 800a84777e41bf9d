// Package services contains application services that orchestrate business logic.
package services

// Service is the base interface that all application services implement.
type Service interface {
	// ServiceName returns the unique identifier for this service.
	// Used for logging, debugging, and service registration.
	ServiceName() string
}

// Initializable services can be initialized after construction
type Initializable interface {
	Service
	Initialize() error
}

// Cleanable services can cleanup resources on shutdown
type Cleanable interface {
	Service
	// Cleanup releases any resources held by the service.
	// Should be idempotent and safe to call multiple times.
	Cleanup() error
}
