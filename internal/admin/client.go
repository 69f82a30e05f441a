// Package admin wraps the administration endpoints of the LowCode API.
// Every call requires a token with the admin role; other tokens get a
// RequestError with status 403.
package admin

import (
	"context"
	"fmt"

	"github.com/olgasafonova/lowcodeapi-go/internal/base"
)

const Module = "admin"

// API issues administration requests
type API struct {
	*base.Client
}

// New returns an admin module bound to the base URL and token of c
func New(c *base.Client) *API {
	return &API{Client: c.Clone(base.WithModule(Module))}
}

// NewAPI validates baseURL and token and creates an admin module
func NewAPI(baseURL, token string, opts ...base.ClientOption) (*API, error) {
	c, err := base.NewClient(baseURL, token, opts...)
	if err != nil {
		return nil, err
	}
	return New(c), nil
}

func (a *API) String() string {
	return fmt.Sprintf("AdminAPI(base_url=%s)", a.BaseURL())
}

func (a *API) GoString() string {
	return a.String()
}

func userPath(id int) string {
	return fmt.Sprintf("/admin/users/%d", id)
}

func (a *API) ListUsers(ctx context.Context) (base.Response, error) {
	return a.Get(ctx, "/admin/users")
}

func (a *API) GetUser(ctx context.Context, id int) (base.Response, error) {
	return a.Get(ctx, userPath(id))
}

// UpdateUser changes only the fields present in fields
func (a *API) UpdateUser(ctx context.Context, id int, fields any) (base.Response, error) {
	return a.Patch(ctx, userPath(id), fields)
}

func (a *API) DeleteUser(ctx context.Context, id int) (base.Response, error) {
	return a.Delete(ctx, userPath(id))
}

// BlockUser suspends user id
func (a *API) BlockUser(ctx context.Context, id int) (base.Response, error) {
	return a.Post(ctx, userPath(id)+"/block", nil)
}

// UnblockUser lifts a suspension
func (a *API) UnblockUser(ctx context.Context, id int) (base.Response, error) {
	return a.Post(ctx, userPath(id)+"/unblock", nil)
}

// GetStatistics returns platform-wide usage counters
func (a *API) GetStatistics(ctx context.Context) (base.Response, error) {
	return a.Get(ctx, "/admin/stats")
}

// GetLogs returns the platform audit log
func (a *API) GetLogs(ctx context.Context) (base.Response, error) {
	return a.Get(ctx, "/admin/logs")
}
