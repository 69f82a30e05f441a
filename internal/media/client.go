// Package media wraps the media library endpoints of the LowCode API.
package media

import (
	"context"
	"fmt"
	"io"

	"github.com/olgasafonova/lowcodeapi-go/internal/base"
)

const Module = "media"

// UploadField is the multipart field that carries uploaded file content
const UploadField = "file"

// API issues media library requests
type API struct {
	*base.Client
}

// New returns a media module bound to the base URL and token of c
func New(c *base.Client) *API {
	return &API{Client: c.Clone(base.WithModule(Module))}
}

// NewAPI validates baseURL and token and creates a media module
func NewAPI(baseURL, token string, opts ...base.ClientOption) (*API, error) {
	c, err := base.NewClient(baseURL, token, opts...)
	if err != nil {
		return nil, err
	}
	return New(c), nil
}

func (a *API) String() string {
	return fmt.Sprintf("MediaAPI(base_url=%s)", a.BaseURL())
}

func (a *API) GoString() string {
	return a.String()
}

func mediaPath(id int) string {
	return fmt.Sprintf("/media/%d", id)
}

func (a *API) ListMedia(ctx context.Context) (base.Response, error) {
	return a.Get(ctx, "/media")
}

func (a *API) GetMedia(ctx context.Context, id int) (base.Response, error) {
	return a.Get(ctx, mediaPath(id))
}

// CreateMedia registers a media record from fields
func (a *API) CreateMedia(ctx context.Context, fields any) (base.Response, error) {
	return a.Post(ctx, "/media", fields)
}

// UpdateMedia changes only the fields present in fields
func (a *API) UpdateMedia(ctx context.Context, id int, fields any) (base.Response, error) {
	return a.Patch(ctx, mediaPath(id), fields)
}

func (a *API) DeleteMedia(ctx context.Context, id int) (base.Response, error) {
	return a.Delete(ctx, mediaPath(id))
}

// UploadMedia sends content as a multipart file named filename
func (a *API) UploadMedia(ctx context.Context, filename string, content io.Reader) (base.Response, error) {
	return a.Upload(ctx, "/media/upload", UploadField, filename, content)
}
