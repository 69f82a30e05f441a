// Package user wraps the account endpoints of the authenticated user.
package user

import (
	"context"
	"fmt"

	"github.com/olgasafonova/lowcodeapi-go/internal/base"
)

const Module = "user"

// API issues requests about the current user
type API struct {
	*base.Client
}

// New returns a user module bound to the base URL and token of c
func New(c *base.Client) *API {
	return &API{Client: c.Clone(base.WithModule(Module))}
}

// NewAPI validates baseURL and token and creates a user module
func NewAPI(baseURL, token string, opts ...base.ClientOption) (*API, error) {
	c, err := base.NewClient(baseURL, token, opts...)
	if err != nil {
		return nil, err
	}
	return New(c), nil
}

func (a *API) String() string {
	return fmt.Sprintf("UserAPI(base_url=%s)", a.BaseURL())
}

func (a *API) GoString() string {
	return a.String()
}

// GetInfo returns the profile of the token owner
func (a *API) GetInfo(ctx context.Context) (base.Response, error) {
	return a.Get(ctx, "/user")
}

// UpdateInfo replaces profile fields
func (a *API) UpdateInfo(ctx context.Context, fields any) (base.Response, error) {
	return a.Put(ctx, "/user", fields)
}

func (a *API) GetSettings(ctx context.Context) (base.Response, error) {
	return a.Get(ctx, "/user/settings")
}

// UpdateSettings changes only the settings present in fields
func (a *API) UpdateSettings(ctx context.Context, fields any) (base.Response, error) {
	return a.Patch(ctx, "/user/settings", fields)
}

// DeleteAccount permanently removes the account
func (a *API) DeleteAccount(ctx context.Context) (base.Response, error) {
	return a.Delete(ctx, "/user")
}
