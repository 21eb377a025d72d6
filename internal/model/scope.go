package model

// Scope carries the caller identity of a request.
type Scope struct {
	OwnerID   string
	RequestID string
}

// Environment names the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentStaging     Environment = "staging"
	EnvironmentProduction  Environment = "production"
)
