package model

// Environment names for runtime behavior switches.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Scope carries the per-request caller identity through use cases.
type Scope struct {
	UserID string
}
