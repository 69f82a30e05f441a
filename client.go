package lowcode

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/olgasafonova/lowcodeapi-go/internal/admin"
	"github.com/olgasafonova/lowcodeapi-go/internal/auth"
	"github.com/olgasafonova/lowcodeapi-go/internal/base"
	"github.com/olgasafonova/lowcodeapi-go/internal/bots"
	"github.com/olgasafonova/lowcodeapi-go/internal/media"
	"github.com/olgasafonova/lowcodeapi-go/internal/system"
	"github.com/olgasafonova/lowcodeapi-go/internal/templates"
	"github.com/olgasafonova/lowcodeapi-go/internal/user"
	"github.com/olgasafonova/lowcodeapi-go/internal/visualeditor"
)

// Response is a decoded JSON object returned by the API
type Response = base.Response

// Module types returned by the Client accessors
type (
	AuthAPI         = auth.API
	UserAPI         = user.API
	BotsAPI         = bots.API
	TemplatesAPI    = templates.API
	MediaAPI        = media.API
	VisualEditorAPI = visualeditor.API
	AdminAPI        = admin.API
	SystemAPI       = system.API
)

// Client is the entry point to the LowCode API
type Client struct {
	base *base.Client
}

type clientConfig struct {
	baseURL string
	opts    []base.ClientOption
}

// Option configures the Client
type Option func(*clientConfig)

// WithBaseURL points the client at another API deployment
func WithBaseURL(u string) Option {
	return func(c *clientConfig) {
		c.baseURL = u
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *clientConfig) {
		c.opts = append(c.opts, base.WithHTTPClient(hc))
	}
}

// WithLogger sets a custom logger
func WithLogger(l *slog.Logger) Option {
	return func(c *clientConfig) {
		c.opts = append(c.opts, base.WithLogger(l))
	}
}

// WithTimeout overrides the default 30s per-request deadline. It never
// modifies an *http.Client passed through WithHTTPClient.
func WithTimeout(d time.Duration) Option {
	return func(c *clientConfig) {
		c.opts = append(c.opts, base.WithTimeout(d))
	}
}

// WithUserAgent replaces the default User-Agent header
func WithUserAgent(ua string) Option {
	return func(c *clientConfig) {
		c.opts = append(c.opts, base.WithUserAgent(ua))
	}
}

// NewClient creates a client for token. It fails with *ValidationError when
// the token is empty or the base URL is not an absolute http(s) URL.
func NewClient(token string, opts ...Option) (*Client, error) {
	cfg := &clientConfig{baseURL: DefaultBaseURL}
	for _, opt := range opts {
		opt(cfg)
	}

	b, err := base.NewClient(cfg.baseURL, token, cfg.opts...)
	if err != nil {
		return nil, err
	}
	return &Client{base: b}, nil
}

// Token returns the bearer token
func (c *Client) Token() string {
	return c.base.Token()
}

// BaseURL returns the API base URL without trailing slash
func (c *Client) BaseURL() string {
	return c.base.BaseURL()
}

func (c *Client) String() string {
	return fmt.Sprintf("Client(base_url=%s)", c.BaseURL())
}

func (c *Client) GoString() string {
	return c.String()
}

// Auth returns a new authentication module
func (c *Client) Auth() *AuthAPI {
	return auth.New(c.base)
}

// User returns a new module for the token owner's account
func (c *Client) User() *UserAPI {
	return user.New(c.base)
}

// Bots returns a new bot management module
func (c *Client) Bots() *BotsAPI {
	return bots.New(c.base)
}

// Templates returns a new template module
func (c *Client) Templates() *TemplatesAPI {
	return templates.New(c.base)
}

// Media returns a new media library module
func (c *Client) Media() *MediaAPI {
	return media.New(c.base)
}

// VisualEditor returns a new visual editor module
func (c *Client) VisualEditor() *VisualEditorAPI {
	return visualeditor.New(c.base)
}

// Admin returns a new administration module
func (c *Client) Admin() *AdminAPI {
	return admin.New(c.base)
}

// System returns a new system module
func (c *Client) System() *SystemAPI {
	return system.New(c.base)
}
