package media

import "context"

// ListMediaMCP is the MCP wrapper for ListMedia
func (a *API) ListMediaMCP(ctx context.Context, _ ListMediaArgs) (ListMediaResult, error) {
	resp, err := a.ListMedia(ctx)
	if err != nil {
		return ListMediaResult{}, err
	}
	return ListMediaResult{Media: resp}, nil
}
