// Package base provides the shared request primitive for the LowCode API modules.
package base

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"

	apierrors "github.com/olgasafonova/lowcodeapi-go/internal/errors"
	"github.com/olgasafonova/lowcodeapi-go/metrics"
	"github.com/olgasafonova/lowcodeapi-go/tracing"
)

const (
	// DefaultTimeout for API requests
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent identifies the SDK to the API
	DefaultUserAgent = "lowcodeapi-go/0.1.0"

	// InvalidJSONMessage is the "error" value of a Response built from an undecodable body
	InvalidJSONMessage = "Invalid JSON response"

	// RequestIDHeader carries a per-request UUID
	RequestIDHeader = "X-Request-ID"
)

// Response is a decoded JSON object returned by the API.
type Response map[string]any

// Client holds the base URL and bearer token of one API module and performs
// requests over a shared HTTP session.
type Client struct {
	Logger *slog.Logger

	baseURL    string
	token      string
	module     string
	userAgent  string
	timeout    time.Duration
	httpClient *http.Client
	rest       *resty.Client
}

// ClientOption configures the Client
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(c *http.Client) ClientOption {
	return func(client *Client) {
		client.httpClient = c
	}
}

// WithLogger sets a custom logger
func WithLogger(l *slog.Logger) ClientOption {
	return func(client *Client) {
		client.Logger = l
	}
}

// WithTimeout bounds each request with a context deadline; d <= 0 keeps the
// current value. The *http.Client passed to WithHTTPClient is left untouched,
// so its own Timeout still applies on top.
func WithTimeout(d time.Duration) ClientOption {
	return func(client *Client) {
		if d > 0 {
			client.timeout = d
		}
	}
}

// WithUserAgent sets the User-Agent header
func WithUserAgent(ua string) ClientOption {
	return func(client *Client) {
		client.userAgent = ua
	}
}

// WithModule sets the module name used in metrics, spans and logs
func WithModule(name string) ClientOption {
	return func(client *Client) {
		client.module = name
	}
}

// NewClient validates baseURL and token and creates a client.
// An empty token or a base URL without http(s) scheme and host fails with
// *errors.ValidationError.
func NewClient(baseURL, token string, opts ...ClientOption) (*Client, error) {
	if err := validateToken(token); err != nil {
		return nil, err
	}
	normalized, err := validateBaseURL(baseURL)
	if err != nil {
		return nil, err
	}

	c := &Client{
		Logger:    slog.Default(),
		baseURL:   normalized,
		token:     token,
		module:    "base",
		userAgent: DefaultUserAgent,
		timeout:   DefaultTimeout,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		c.httpClient = newHTTPClient()
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}

	c.rest = c.newRest()
	return c, nil
}

func (c *Client) newRest() *resty.Client {
	return resty.NewWithClient(c.httpClient).SetLogger(restyLogger{logger: c.Logger})
}

// Clone returns a new Client with the same base URL, token and settings,
// then applies opts to it. Unless WithHTTPClient is among opts the clone
// shares the HTTP session (connection pool) with c.
func (c *Client) Clone(opts ...ClientOption) *Client {
	clone := *c
	for _, opt := range opts {
		opt(&clone)
	}
	if clone.httpClient == nil {
		clone.httpClient = c.httpClient
	}
	if clone.Logger == nil {
		clone.Logger = slog.Default()
	}
	if clone.httpClient != c.httpClient || clone.Logger != c.Logger {
		clone.rest = clone.newRest()
	}
	return &clone
}

// Timeout returns the per-request deadline
func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// BaseURL returns the API base URL without trailing slash
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Token returns the bearer token
func (c *Client) Token() string {
	return c.token
}

// Module returns the module name used for metrics and tracing
func (c *Client) Module() string {
	return c.module
}

// HTTPClient returns the underlying HTTP client shared by clones
func (c *Client) HTTPClient() *http.Client {
	return c.rest.GetClient()
}

// String never includes the token.
func (c *Client) String() string {
	return fmt.Sprintf("base.Client(module=%s, base_url=%s)", c.module, c.baseURL)
}

// GoString keeps %#v from dumping the token.
func (c *Client) GoString() string {
	return c.String()
}

// Headers returns the headers sent with every request
func (c *Client) Headers() map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + c.token,
		"Content-Type":  "application/json",
		"Accept":        "application/json",
		"User-Agent":    c.userAgent,
	}
}

// MakeRequest sends method to path with an optional JSON body and returns the
// decoded JSON object.
//
// A 401 response yields *errors.AuthenticationError, any other non-2xx response
// yields *errors.RequestError and transport failures yield *errors.NetworkError.
// A 2xx body that is not valid JSON is not an error: the returned Response holds
// "error", "status_code" and "response_text" instead.
func (c *Client) MakeRequest(ctx context.Context, method, path string, body any) (Response, error) {
	return c.do(ctx, method, path, func(req *resty.Request) {
		if body != nil {
			req.SetBody(body)
		}
	})
}

// Get performs a GET request against an arbitrary endpoint
func (c *Client) Get(ctx context.Context, path string) (Response, error) {
	return c.MakeRequest(ctx, http.MethodGet, path, nil)
}

// Post performs a POST request against an arbitrary endpoint
func (c *Client) Post(ctx context.Context, path string, body any) (Response, error) {
	return c.MakeRequest(ctx, http.MethodPost, path, body)
}

// Put performs a PUT request against an arbitrary endpoint
func (c *Client) Put(ctx context.Context, path string, body any) (Response, error) {
	return c.MakeRequest(ctx, http.MethodPut, path, body)
}

// Patch performs a PATCH request against an arbitrary endpoint
func (c *Client) Patch(ctx context.Context, path string, body any) (Response, error) {
	return c.MakeRequest(ctx, http.MethodPatch, path, body)
}

// Delete performs a DELETE request against an arbitrary endpoint
func (c *Client) Delete(ctx context.Context, path string) (Response, error) {
	return c.MakeRequest(ctx, http.MethodDelete, path, nil)
}

// Upload posts a multipart form with a single file part.
func (c *Client) Upload(ctx context.Context, path, field, filename string, content io.Reader) (Response, error) {
	return c.do(ctx, http.MethodPost, path, func(req *resty.Request) {
		req.Header.Del("Content-Type")
		req.SetFileReader(field, filename, content)
	})
}

func (c *Client) do(ctx context.Context, method, path string, prepare func(*resty.Request)) (Response, error) {
	path = normalizePath(path)
	reqURL := c.baseURL + path

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	ctx, span := tracing.StartAPISpan(ctx, c.module, method, path)
	defer span.End()

	req := c.rest.R().
		SetContext(ctx).
		SetHeaders(c.Headers()).
		SetHeader(RequestIDHeader, uuid.NewString())
	tracing.InjectHeaders(ctx, propagation.HeaderCarrier(req.Header))
	if prepare != nil {
		prepare(req)
	}

	start := time.Now()
	resp, err := req.Execute(method, reqURL)
	duration := time.Since(start)

	if err != nil {
		netErr := &apierrors.NetworkError{Method: method, URL: reqURL, Err: err}
		metrics.RecordAPICall(c.module, method, duration.Seconds(), false, "network")
		tracing.Finish(span, netErr)
		c.Logger.Warn("LowCode API request failed",
			"module", c.module,
			"method", method,
			"path", path,
			"error", err)
		return nil, netErr
	}

	status := resp.StatusCode()
	span.SetAttributes(attribute.Int("http.response.status_code", status))
	c.Logger.Debug("LowCode API request",
		"module", c.module,
		"method", method,
		"path", path,
		"status", status,
		"duration_ms", duration.Milliseconds())

	result, err := c.handleResponse(method, path, status, resp.Body())
	tracing.Finish(span, err)
	if err != nil {
		metrics.RecordAPICall(c.module, method, duration.Seconds(), false, errorCode(err))
		return nil, err
	}

	metrics.RecordAPICall(c.module, method, duration.Seconds(), true, "")
	return result, nil
}

// handleResponse maps a status code and body to a Response or a typed error
func (c *Client) handleResponse(method, path string, status int, body []byte) (Response, error) {
	if status == http.StatusUnauthorized {
		metrics.AuthFailures.WithLabelValues(c.module).Inc()
		c.Logger.Warn("LowCode API rejected credentials",
			"module", c.module,
			"method", method,
			"path", path)
		return nil, apierrors.NewAuthenticationError(errorMessage(status, body))
	}

	if status < 200 || status > 299 {
		return nil, apierrors.NewRequestError(method, path, status, errorMessage(status, body))
	}

	result, ok := decodeBody(body)
	if !ok {
		metrics.InvalidJSONResponses.WithLabelValues(c.module).Inc()
		c.Logger.Warn("Could not decode JSON response",
			"module", c.module,
			"method", method,
			"path", path,
			"status", status,
			"body", truncate(string(body), 200))
		return Response{
			"error":         InvalidJSONMessage,
			"status_code":   status,
			"response_text": string(body),
		}, nil
	}
	return result, nil
}

// decodeBody parses a JSON body. Empty bodies decode to an empty Response and
// non-object values are wrapped under "data". Numbers stay json.Number so
// large IDs survive unchanged.
func decodeBody(body []byte) (Response, bool) {
	if len(bytes.TrimSpace(body)) == 0 {
		return Response{}, true
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, false
	}
	if err := dec.Decode(new(any)); !errors.Is(err, io.EOF) {
		return nil, false
	}

	if obj, ok := value.(map[string]any); ok {
		return Response(obj), true
	}
	return Response{"data": value}, true
}

// errorMessage extracts a human-readable message from an error body
func errorMessage(status int, body []byte) string {
	var payload map[string]any
	if json.Unmarshal(body, &payload) == nil {
		for _, key := range []string{"message", "error", "detail"} {
			if msg, ok := payload[key].(string); ok && msg != "" {
				return msg
			}
		}
	}
	if text := strings.TrimSpace(string(body)); text != "" {
		return truncate(text, 200)
	}
	return http.StatusText(status)
}

// errorCode is the metrics label for a failed request
func errorCode(err error) string {
	switch {
	case apierrors.IsAuthentication(err):
		return "unauthorized"
	case apierrors.IsRequest(err):
		return fmt.Sprintf("http_%d", apierrors.StatusCode(err))
	default:
		return "unknown"
	}
}

func validateToken(token string) error {
	if err := validation.Validate(strings.TrimSpace(token), validation.Required); err != nil {
		// never echo the token value
		return apierrors.NewValidationError("token", "", "token is required")
	}
	return nil
}

func validateBaseURL(raw string) (string, error) {
	normalized := strings.TrimRight(strings.TrimSpace(raw), "/")
	err := validation.Validate(normalized,
		validation.Required.Error("base URL is required"),
		is.RequestURL.Error("must be an absolute URL"),
		validation.By(httpURL),
	)
	if err != nil {
		return "", apierrors.NewValidationError("base_url", raw, err.Error())
	}
	return normalized, nil
}

// httpURL requires an http or https scheme and a host
func httpURL(value any) error {
	s, _ := value.(string)
	u, err := url.Parse(s)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("scheme must be http or https")
	}
	if u.Host == "" {
		return errors.New("host is required")
	}
	return nil
}

// normalizePath makes sure path starts with a slash
func normalizePath(path string) string {
	if !strings.HasPrefix(path, "/") {
		return "/" + path
	}
	return path
}

// truncate shortens a string to maxLen, adding "..." if truncated
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// newHTTPClient creates an HTTP client with optimized transport settings.
// It sets no Timeout of its own: each request carries a context deadline.
func newHTTPClient() *http.Client {
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 20,
		MaxConnsPerHost:     50,
		IdleConnTimeout:     120 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
		ForceAttemptHTTP2:   true,
	}

	return &http.Client{Transport: transport}
}

// restyLogger routes resty's internal messages into slog
type restyLogger struct {
	logger *slog.Logger
}

func (l restyLogger) Errorf(format string, v ...any) {
	l.logger.Error(strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "resty")
}

func (l restyLogger) Warnf(format string, v ...any) {
	l.logger.Warn(strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "resty")
}

func (l restyLogger) Debugf(format string, v ...any) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "resty")
}
