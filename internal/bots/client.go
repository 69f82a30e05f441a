// Package bots wraps the bot management endpoints of the LowCode API.
//
// Bots are addressed by integer ID. Besides CRUD the API exposes a small
// lifecycle: a bot can be started, stopped, and queried for its status and logs.
package bots

import (
	"context"
	"fmt"

	"github.com/olgasafonova/lowcodeapi-go/internal/base"
)

const Module = "bots"

// API issues bot management requests
type API struct {
	*base.Client
}

// New returns a bots module bound to the base URL and token of c
func New(c *base.Client) *API {
	return &API{Client: c.Clone(base.WithModule(Module))}
}

// NewAPI validates baseURL and token and creates a bots module
func NewAPI(baseURL, token string, opts ...base.ClientOption) (*API, error) {
	c, err := base.NewClient(baseURL, token, opts...)
	if err != nil {
		return nil, err
	}
	return New(c), nil
}

func (a *API) String() string {
	return fmt.Sprintf("BotsAPI(base_url=%s)", a.BaseURL())
}

func (a *API) GoString() string {
	return a.String()
}

func botPath(id int) string {
	return fmt.Sprintf("/bots/%d", id)
}

// ListBots returns all bots owned by the token holder
func (a *API) ListBots(ctx context.Context) (base.Response, error) {
	return a.Get(ctx, "/bots")
}

func (a *API) GetBot(ctx context.Context, id int) (base.Response, error) {
	return a.Get(ctx, botPath(id))
}

// CreateBot creates a bot from fields
func (a *API) CreateBot(ctx context.Context, fields any) (base.Response, error) {
	return a.Post(ctx, "/bots", fields)
}

// UpdateBot replaces the definition of bot id
func (a *API) UpdateBot(ctx context.Context, id int, fields any) (base.Response, error) {
	return a.Put(ctx, botPath(id), fields)
}

func (a *API) DeleteBot(ctx context.Context, id int) (base.Response, error) {
	return a.Delete(ctx, botPath(id))
}

// GetBotStatus returns the runtime status of bot id
func (a *API) GetBotStatus(ctx context.Context, id int) (base.Response, error) {
	return a.Get(ctx, botPath(id)+"/status")
}

// StartBot launches bot id
func (a *API) StartBot(ctx context.Context, id int) (base.Response, error) {
	return a.Post(ctx, botPath(id)+"/start", nil)
}

// StopBot halts bot id
func (a *API) StopBot(ctx context.Context, id int) (base.Response, error) {
	return a.Post(ctx, botPath(id)+"/stop", nil)
}

// GetBotLogs returns recent log entries of bot id
func (a *API) GetBotLogs(ctx context.Context, id int) (base.Response, error) {
	return a.Get(ctx, botPath(id)+"/logs")
}
