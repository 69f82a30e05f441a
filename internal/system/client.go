// Package system wraps the service health and version endpoints of the LowCode API.
package system

import (
	"context"
	"fmt"

	"github.com/olgasafonova/lowcodeapi-go/internal/base"
)

const Module = "system"

// API issues system requests
type API struct {
	*base.Client
}

// New returns a system module bound to the base URL and token of c
func New(c *base.Client) *API {
	return &API{Client: c.Clone(base.WithModule(Module))}
}

// NewAPI validates baseURL and token and creates a system module
func NewAPI(baseURL, token string, opts ...base.ClientOption) (*API, error) {
	c, err := base.NewClient(baseURL, token, opts...)
	if err != nil {
		return nil, err
	}
	return New(c), nil
}

func (a *API) String() string {
	return fmt.Sprintf("SystemAPI(base_url=%s)", a.BaseURL())
}

func (a *API) GoString() string {
	return a.String()
}

// HealthCheck reports whether the API is up
func (a *API) HealthCheck(ctx context.Context) (base.Response, error) {
	return a.Get(ctx, "/system/health")
}

func (a *API) GetVersion(ctx context.Context) (base.Response, error) {
	return a.Get(ctx, "/system/version")
}

// GetStatus returns the state of the API's dependent services
func (a *API) GetStatus(ctx context.Context) (base.Response, error) {
	return a.Get(ctx, "/system/status")
}
