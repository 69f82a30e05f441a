// Package visualeditor wraps the visual editor endpoints of the LowCode API.
// A visual editor project belongs to exactly one bot and is addressed by the
// bot ID.
package visualeditor

import (
	"context"
	"fmt"

	"github.com/olgasafonova/lowcodeapi-go/internal/base"
)

const Module = "visual_editor"

// API issues visual editor requests
type API struct {
	*base.Client
}

// New returns a visual editor module bound to the base URL and token of c
func New(c *base.Client) *API {
	return &API{Client: c.Clone(base.WithModule(Module))}
}

// NewAPI validates baseURL and token and creates a visual editor module
func NewAPI(baseURL, token string, opts ...base.ClientOption) (*API, error) {
	c, err := base.NewClient(baseURL, token, opts...)
	if err != nil {
		return nil, err
	}
	return New(c), nil
}

func (a *API) String() string {
	return fmt.Sprintf("VisualEditorAPI(base_url=%s)", a.BaseURL())
}

func (a *API) GoString() string {
	return a.String()
}

func projectPath(botID int) string {
	return fmt.Sprintf("/visual-editor/projects/%d", botID)
}

// GetProject returns the editor project of bot botID
func (a *API) GetProject(ctx context.Context, botID int) (base.Response, error) {
	return a.Get(ctx, projectPath(botID))
}

// SaveProject replaces the editor project of bot botID
func (a *API) SaveProject(ctx context.Context, botID int, fields any) (base.Response, error) {
	return a.Put(ctx, projectPath(botID), fields)
}

// ListComponents returns the building blocks available in the editor
func (a *API) ListComponents(ctx context.Context) (base.Response, error) {
	return a.Get(ctx, "/visual-editor/components")
}

// Preview renders the saved project without publishing it
func (a *API) Preview(ctx context.Context, botID int) (base.Response, error) {
	return a.Post(ctx, projectPath(botID)+"/preview", nil)
}

// Publish makes the saved project live
func (a *API) Publish(ctx context.Context, botID int) (base.Response, error) {
	return a.Post(ctx, projectPath(botID)+"/publish", nil)
}
