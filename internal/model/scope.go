package model

// Scope carries the caller context for a request.
type Scope struct {
	UserID   string
	Username string
}

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
