package model

// Scope carries the authenticated caller identity through a request.
type Scope struct {
	CustomerID string
}

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
