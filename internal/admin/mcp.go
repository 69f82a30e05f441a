package admin

import "context"

// GetStatisticsMCP is the MCP wrapper for GetStatistics
func (a *API) GetStatisticsMCP(ctx context.Context, _ GetStatisticsArgs) (GetStatisticsResult, error) {
	resp, err := a.GetStatistics(ctx)
	if err != nil {
		return GetStatisticsResult{}, err
	}
	return GetStatisticsResult{Statistics: resp}, nil
}
