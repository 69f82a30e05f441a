package visualeditor

import "context"

// ListComponentsMCP is the MCP wrapper for ListComponents
func (a *API) ListComponentsMCP(ctx context.Context, _ ListComponentsArgs) (ListComponentsResult, error) {
	resp, err := a.ListComponents(ctx)
	if err != nil {
		return ListComponentsResult{}, err
	}
	return ListComponentsResult{Components: resp}, nil
}
