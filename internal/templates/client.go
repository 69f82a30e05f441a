// Package templates wraps the bot template endpoints of the LowCode API.
package templates

import (
	"context"
	"fmt"

	"github.com/olgasafonova/lowcodeapi-go/internal/base"
)

const Module = "templates"

// API issues template requests
type API struct {
	*base.Client
}

// New returns a templates module bound to the base URL and token of c
func New(c *base.Client) *API {
	return &API{Client: c.Clone(base.WithModule(Module))}
}

// NewAPI validates baseURL and token and creates a templates module
func NewAPI(baseURL, token string, opts ...base.ClientOption) (*API, error) {
	c, err := base.NewClient(baseURL, token, opts...)
	if err != nil {
		return nil, err
	}
	return New(c), nil
}

func (a *API) String() string {
	return fmt.Sprintf("TemplatesAPI(base_url=%s)", a.BaseURL())
}

func (a *API) GoString() string {
	return a.String()
}

func templatePath(id int) string {
	return fmt.Sprintf("/templates/%d", id)
}

func (a *API) ListTemplates(ctx context.Context) (base.Response, error) {
	return a.Get(ctx, "/templates")
}

func (a *API) GetTemplate(ctx context.Context, id int) (base.Response, error) {
	return a.Get(ctx, templatePath(id))
}

func (a *API) CreateTemplate(ctx context.Context, fields any) (base.Response, error) {
	return a.Post(ctx, "/templates", fields)
}

func (a *API) UpdateTemplate(ctx context.Context, id int, fields any) (base.Response, error) {
	return a.Put(ctx, templatePath(id), fields)
}

func (a *API) DeleteTemplate(ctx context.Context, id int) (base.Response, error) {
	return a.Delete(ctx, templatePath(id))
}

// ApplyTemplate copies template templateID onto bot botID
func (a *API) ApplyTemplate(ctx context.Context, templateID, botID int) (base.Response, error) {
	return a.Post(ctx, templatePath(templateID)+"/apply", map[string]int{"bot_id": botID})
}
