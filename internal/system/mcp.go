package system

import "context"

// HealthCheckMCP is the MCP wrapper for HealthCheck
func (a *API) HealthCheckMCP(ctx context.Context, _ HealthCheckArgs) (HealthCheckResult, error) {
	resp, err := a.HealthCheck(ctx)
	if err != nil {
		return HealthCheckResult{}, err
	}
	return HealthCheckResult{Health: resp}, nil
}

// GetVersionMCP is the MCP wrapper for GetVersion
func (a *API) GetVersionMCP(ctx context.Context, _ GetVersionArgs) (GetVersionResult, error) {
	resp, err := a.GetVersion(ctx)
	if err != nil {
		return GetVersionResult{}, err
	}
	return GetVersionResult{Version: resp}, nil
}
