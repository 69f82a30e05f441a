package user

import "context"

// GetInfoMCP is the MCP wrapper for GetInfo
func (a *API) GetInfoMCP(ctx context.Context, _ GetInfoArgs) (GetInfoResult, error) {
	info, err := a.GetInfo(ctx)
	if err != nil {
		return GetInfoResult{}, err
	}
	return GetInfoResult{User: info}, nil
}
