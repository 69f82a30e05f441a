package system

import "github.com/olgasafonova/lowcodeapi-go/internal/base"

// HealthCheckArgs takes no parameters
type HealthCheckArgs struct{}

// HealthCheckResult wraps the health report
type HealthCheckResult struct {
	Health base.Response `json:"health"`
}

// GetVersionArgs takes no parameters
type GetVersionArgs struct{}

// GetVersionResult wraps the API version information
type GetVersionResult struct {
	Version base.Response `json:"version"`
}
