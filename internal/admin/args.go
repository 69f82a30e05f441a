package admin

import "github.com/olgasafonova/lowcodeapi-go/internal/base"

// GetStatisticsArgs takes no parameters
type GetStatisticsArgs struct{}

// GetStatisticsResult wraps the platform statistics
type GetStatisticsResult struct {
	Statistics base.Response `json:"statistics"`
}
