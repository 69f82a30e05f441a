package base

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	dto "github.com/prometheus/client_model/go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	apierrors "github.com/olgasafonova/lowcodeapi-go/internal/errors"
	"github.com/olgasafonova/lowcodeapi-go/metrics"
)

const (
	testBaseURL = "https://api.example.com"
	testToken   = "test_token"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, serverURL string, opts ...ClientOption) *Client {
	t.Helper()
	opts = append([]ClientOption{WithLogger(quietLogger())}, opts...)
	client, err := NewClient(serverURL, testToken, opts...)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	return client
}

func TestNewClient(t *testing.T) {
	client, err := NewClient(testBaseURL, testToken)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	if client.BaseURL() != testBaseURL {
		t.Errorf("BaseURL() = %q, want %q", client.BaseURL(), testBaseURL)
	}
	if client.Token() != testToken {
		t.Errorf("Token() = %q, want %q", client.Token(), testToken)
	}
	if client.Logger == nil {
		t.Error("Logger is nil")
	}
	if client.HTTPClient() == nil {
		t.Fatal("HTTPClient is nil")
	}
	if client.Timeout() != DefaultTimeout {
		t.Errorf("Timeout() = %v, want %v", client.Timeout(), DefaultTimeout)
	}
	if client.HTTPClient().Timeout != 0 {
		t.Errorf("SDK-owned http.Client should rely on request deadlines, got Timeout %v", client.HTTPClient().Timeout)
	}
	if client.Module() != "base" {
		t.Errorf("Module() = %q, want 'base'", client.Module())
	}
}

func TestNewClient_Validation(t *testing.T) {
	tests := []struct {
		name      string
		baseURL   string
		token     string
		wantField string
	}{
		{"empty token", testBaseURL, "", "token"},
		{"blank token", testBaseURL, "   ", "token"},
		{"empty base URL", "", testToken, "base_url"},
		{"no scheme", "invalid_url", testToken, "base_url"},
		{"host only", "api.example.com", testToken, "base_url"},
		{"unsupported scheme", "ftp://files.example.com", testToken, "base_url"},
		{"scheme without host", "https://", testToken, "base_url"},
		{"slash only", "/", testToken, "base_url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.baseURL, tt.token)
			if err == nil {
				t.Fatalf("expected error, got client %v", client)
			}
			if !apierrors.IsValidation(err) {
				t.Fatalf("expected ValidationError, got %T: %v", err, err)
			}
			verr := err.(*apierrors.ValidationError)
			if verr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", verr.Field, tt.wantField)
			}
		})
	}
}

func TestNewClient_ValidationDoesNotEchoToken(t *testing.T) {
	_, err := NewClient("not a url", "super-secret-token")
	if err == nil {
		t.Fatal("expected error")
	}
	if strings.Contains(err.Error(), "super-secret-token") {
		t.Errorf("error message leaks the token: %q", err.Error())
	}
}

func TestNewClient_TrimsTrailingSlash(t *testing.T) {
	client, err := NewClient("https://api.example.com/v1/", testToken)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	if client.BaseURL() != "https://api.example.com/v1" {
		t.Errorf("BaseURL() = %q, want trailing slash removed", client.BaseURL())
	}
}

func TestNewClientWithOptions(t *testing.T) {
	customHTTP := &http.Client{Timeout: 60 * time.Second}
	customLogger := quietLogger()

	client, err := NewClient(testBaseURL, testToken,
		WithHTTPClient(customHTTP),
		WithLogger(customLogger),
		WithUserAgent("custom-agent/2.0"),
		WithModule("bots"),
	)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	if client.HTTPClient() != customHTTP {
		t.Error("custom HTTP client was not set")
	}
	if client.Logger != customLogger {
		t.Error("custom logger was not set")
	}
	if client.Headers()["User-Agent"] != "custom-agent/2.0" {
		t.Errorf("User-Agent = %q, want custom-agent/2.0", client.Headers()["User-Agent"])
	}
	if client.Module() != "bots" {
		t.Errorf("Module() = %q, want bots", client.Module())
	}
}

func slowServer(t *testing.T, delay time.Duration) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(delay):
		case <-r.Context().Done():
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestNewClient_WithTimeout(t *testing.T) {
	server := slowServer(t, 300*time.Millisecond)

	client := newTestClient(t, server.URL, WithTimeout(50*time.Millisecond))
	if client.Timeout() != 50*time.Millisecond {
		t.Errorf("Timeout() = %v, want 50ms", client.Timeout())
	}

	_, err := client.Get(context.Background(), "/system/health")
	if !apierrors.IsNetwork(err) {
		t.Fatalf("expected NetworkError after the deadline, got %T: %v", err, err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("error should unwrap to context.DeadlineExceeded: %v", err)
	}
}

func TestNewClient_WithTimeoutLeavesHTTPClientAlone(t *testing.T) {
	custom := &http.Client{Timeout: 60 * time.Second}

	client := newTestClient(t, testBaseURL, WithHTTPClient(custom), WithTimeout(5*time.Second))

	if custom.Timeout != 60*time.Second {
		t.Errorf("caller's http.Client timeout changed to %v", custom.Timeout)
	}
	if client.HTTPClient() != custom {
		t.Error("custom HTTP client was not used")
	}
	if client.Timeout() != 5*time.Second {
		t.Errorf("Timeout() = %v, want 5s", client.Timeout())
	}
	if client.Clone(WithTimeout(0)).Timeout() != 5*time.Second {
		t.Error("WithTimeout(0) should keep the current deadline")
	}
}

func TestHeaders(t *testing.T) {
	client, err := NewClient(testBaseURL, testToken)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	want := map[string]string{
		"Authorization": "Bearer " + testToken,
		"Content-Type":  "application/json",
		"Accept":        "application/json",
		"User-Agent":    DefaultUserAgent,
	}
	if diff := cmp.Diff(want, client.Headers()); diff != "" {
		t.Errorf("Headers() mismatch (-want +got):\n%s", diff)
	}
}

func TestClient_StringHidesToken(t *testing.T) {
	client, err := NewClient(testBaseURL, "hidden-token-value")
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	for _, format := range []string{"%s", "%v", "%+v", "%#v"} {
		out := fmt.Sprintf(format, client)
		if strings.Contains(out, "hidden-token-value") {
			t.Errorf("format %s leaks the token: %q", format, out)
		}
		if !strings.Contains(out, testBaseURL) {
			t.Errorf("format %s should include the base URL: %q", format, out)
		}
	}
}

func TestClient_Clone(t *testing.T) {
	client, err := NewClient(testBaseURL, testToken)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	clone := client.Clone(WithModule("media"))
	if clone == client {
		t.Fatal("Clone returned the same instance")
	}
	if clone.BaseURL() != client.BaseURL() || clone.Token() != client.Token() {
		t.Error("clone should copy base URL and token")
	}
	if clone.HTTPClient() != client.HTTPClient() {
		t.Error("clone should share the HTTP session")
	}
	if clone.Module() != "media" || client.Module() != "base" {
		t.Errorf("module option should only affect the clone: clone=%q original=%q", clone.Module(), client.Module())
	}
}

func TestClient_CloneAppliesTimeout(t *testing.T) {
	server := slowServer(t, 300*time.Millisecond)
	client := newTestClient(t, server.URL)

	_, err := client.Clone(WithTimeout(50*time.Millisecond)).Get(context.Background(), "/bots")
	if !apierrors.IsNetwork(err) {
		t.Fatalf("clone timeout ignored: got %v", err)
	}
	if client.Timeout() != DefaultTimeout {
		t.Errorf("original Timeout() = %v, want %v", client.Timeout(), DefaultTimeout)
	}
}

func TestClient_CloneAppliesHTTPClientAndLogger(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	custom := &http.Client{}
	logger := quietLogger()

	clone := client.Clone(WithHTTPClient(custom), WithLogger(logger))
	if clone.HTTPClient() != custom {
		t.Error("clone should use the new HTTP client")
	}
	if client.HTTPClient() == custom {
		t.Error("original client should keep its HTTP session")
	}
	if clone.Logger != logger {
		t.Error("clone should use the new logger")
	}
	if _, err := clone.Get(context.Background(), "/system/health"); err != nil {
		t.Fatalf("Get through clone failed: %v", err)
	}
	if requests != 1 {
		t.Errorf("requests = %d, want 1", requests)
	}

	if got := client.Clone(WithLogger(nil)).Logger; got == nil {
		t.Error("a nil logger should fall back to slog.Default")
	}
}

func TestMakeRequest_Success(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/test" {
			t.Errorf("path = %s, want /test", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer "+testToken {
			t.Errorf("Authorization = %q", got)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("Content-Type = %q", got)
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("Accept = %q", got)
		}
		if got := r.Header.Get("User-Agent"); got != DefaultUserAgent {
			t.Errorf("User-Agent = %q", got)
		}
		if _, err := uuid.Parse(r.Header.Get(RequestIDHeader)); err != nil {
			t.Errorf("%s is not a UUID: %v", RequestIDHeader, err)
		}
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"success","count":2}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	result, err := client.MakeRequest(context.Background(), http.MethodPost, "/test", map[string]any{"name": "Pavlo"})
	if err != nil {
		t.Fatalf("MakeRequest failed: %v", err)
	}

	if diff := cmp.Diff(Response{"status": "success", "count": json.Number("2")}, result); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[string]any{"name": "Pavlo"}, gotBody); diff != "" {
		t.Errorf("request body mismatch (-want +got):\n%s", diff)
	}
}

func TestMakeRequest_PathWithoutLeadingSlash(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	if _, err := client.Get(context.Background(), "system/health"); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if gotPath != "/system/health" {
		t.Errorf("path = %q, want /system/health", gotPath)
	}
}

func TestMakeRequest_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Unauthorized"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.Get(context.Background(), "/test")
	if err == nil {
		t.Fatal("expected error for 401")
	}
	if !apierrors.IsAuthentication(err) {
		t.Fatalf("expected AuthenticationError, got %T: %v", err, err)
	}
	if msg := err.(*apierrors.AuthenticationError).Message; msg != "Unauthorized" {
		t.Errorf("Message = %q, want Unauthorized", msg)
	}
}

func TestMakeRequest_RequestErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{"not found with message", http.StatusNotFound, `{"message":"bot not found"}`, "bot not found"},
		{"bad request with error key", http.StatusBadRequest, `{"error":"name is required"}`, "name is required"},
		{"forbidden with detail", http.StatusForbidden, `{"detail":"admin only"}`, "admin only"},
		{"server error plain text", http.StatusInternalServerError, "boom", "boom"},
		{"empty body", http.StatusServiceUnavailable, "", "Service Unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := newTestClient(t, server.URL)
			_, err := client.Delete(context.Background(), "/bots/7")
			if !apierrors.IsRequest(err) {
				t.Fatalf("expected RequestError, got %T: %v", err, err)
			}
			reqErr := err.(*apierrors.RequestError)
			if reqErr.StatusCode != tt.status {
				t.Errorf("StatusCode = %d, want %d", reqErr.StatusCode, tt.status)
			}
			if reqErr.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", reqErr.Message, tt.wantMsg)
			}
			if reqErr.Method != http.MethodDelete || reqErr.Path != "/bots/7" {
				t.Errorf("Method/Path = %s %s", reqErr.Method, reqErr.Path)
			}
		})
	}
}

func TestMakeRequest_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html>maintenance</html>"))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	result, err := client.Get(context.Background(), "/user")
	if err != nil {
		t.Fatalf("invalid JSON must not raise, got %v", err)
	}

	want := Response{
		"error":         InvalidJSONMessage,
		"status_code":   http.StatusOK,
		"response_text": "<html>maintenance</html>",
	}
	if diff := cmp.Diff(want, result); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func TestMakeRequest_EmptyAndNonObjectBodies(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   Response
	}{
		{"no content", http.StatusNoContent, "", Response{}},
		{"array", http.StatusOK, `[1,2]`, Response{"data": []any{json.Number("1"), json.Number("2")}}},
		{"string", http.StatusOK, `"ok"`, Response{"data": "ok"}},
		{"null", http.StatusOK, `null`, Response{"data": nil}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := newTestClient(t, server.URL)
			result, err := client.Get(context.Background(), "/bots")
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}
			if diff := cmp.Diff(tt.want, result); diff != "" {
				t.Errorf("response mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMakeRequest_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := newTestClient(t, url)
	_, err := client.Get(context.Background(), "/system/health")
	if !apierrors.IsNetwork(err) {
		t.Fatalf("expected NetworkError, got %T: %v", err, err)
	}
}

func TestMakeRequest_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Get(ctx, "/user")
	if err == nil {
		t.Fatal("expected error when context is canceled")
	}
	if !apierrors.IsNetwork(err) {
		t.Errorf("expected NetworkError, got %T", err)
	}
}

func TestVerbHelpers(t *testing.T) {
	var gotMethod string
	var gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	ctx := context.Background()
	payload := map[string]string{"name": "Pavlo"}

	tests := []struct {
		name       string
		call       func() (Response, error)
		wantMethod string
		wantBody   bool
	}{
		{"get", func() (Response, error) { return client.Get(ctx, "/user") }, http.MethodGet, false},
		{"post", func() (Response, error) { return client.Post(ctx, "/user", payload) }, http.MethodPost, true},
		{"put", func() (Response, error) { return client.Put(ctx, "/user", payload) }, http.MethodPut, true},
		{"patch", func() (Response, error) { return client.Patch(ctx, "/user", payload) }, http.MethodPatch, true},
		{"delete", func() (Response, error) { return client.Delete(ctx, "/user") }, http.MethodDelete, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.call(); err != nil {
				t.Fatalf("call failed: %v", err)
			}
			if gotMethod != tt.wantMethod {
				t.Errorf("method = %s, want %s", gotMethod, tt.wantMethod)
			}
			if tt.wantBody && !strings.Contains(gotBody, `"name":"Pavlo"`) {
				t.Errorf("body = %q, want JSON payload", gotBody)
			}
			if !tt.wantBody && gotBody != "" {
				t.Errorf("body = %q, want empty", gotBody)
			}
		})
	}
}

func TestUpload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
			t.Errorf("Content-Type = %q, want multipart/form-data", r.Header.Get("Content-Type"))
		}
		if got := r.Header.Get("Authorization"); got != "Bearer "+testToken {
			t.Errorf("Authorization = %q", got)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("FormFile failed: %v", err)
		}
		defer file.Close()
		content, _ := io.ReadAll(file)
		if header.Filename != "logo.png" || string(content) != "PNGDATA" {
			t.Errorf("got file %q with %q", header.Filename, content)
		}
		_, _ = w.Write([]byte(`{"id":9}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	result, err := client.Upload(context.Background(), "/media/upload", "file", "logo.png", strings.NewReader("PNGDATA"))
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	if result["id"] != json.Number("9") {
		t.Errorf("id = %v, want 9", result["id"])
	}
}

func TestMakeRequest_RecordsMetrics(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, WithModule("metrics_probe"))
	counter := metrics.APIRequestsTotal.WithLabelValues("metrics_probe", http.MethodGet, "success")

	var before dto.Metric
	_ = counter.Write(&before)

	if _, err := client.Get(context.Background(), "/system/health"); err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	var after dto.Metric
	_ = counter.Write(&after)
	if after.Counter.GetValue() != before.Counter.GetValue()+1 {
		t.Errorf("counter = %v, want %v", after.Counter.GetValue(), before.Counter.GetValue()+1)
	}
}

func TestDecodeBody(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		want   Response
		wantOK bool
	}{
		{"object", `{"a":"b"}`, Response{"a": "b"}, true},
		{"whitespace", "  \n", Response{}, true},
		{"number", `42`, Response{"data": json.Number("42")}, true},
		{"id above 2^53", `{"id":9007199254740993}`, Response{"id": json.Number("9007199254740993")}, true},
		{"decimal", `{"ratio":0.25}`, Response{"ratio": json.Number("0.25")}, true},
		{"invalid", `{"a":`, nil, false},
		{"trailing data", `{"a":1} {"b":2}`, nil, false},
		{"trailing garbage", `{"a":1}x`, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := decodeBody([]byte(tt.body))
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMakeRequest_LargeIDRoundTrip(t *testing.T) {
	const body = `{"id":9007199254740993,"owner":{"id":18446744073709551615}}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	result, err := client.Get(context.Background(), "/bots/9007199254740993")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	out, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(out) != body {
		t.Errorf("body changed:\n got %s\nwant %s", out, body)
	}
}

func TestMakeRequest_EmitsSpanPerRequest(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(provider)
	t.Cleanup(func() {
		otel.SetTracerProvider(previous)
		_ = provider.Shutdown(context.Background())
	})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/user" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, WithModule("bots"))
	ctx := context.Background()
	_, _ = client.Get(ctx, "/bots/1/status")
	_, _ = client.Post(ctx, "/bots/1/start", nil)
	_, _ = client.Get(ctx, "/user")

	spans := recorder.Ended()
	if len(spans) != 3 {
		t.Fatalf("got %d spans, want one per request (3)", len(spans))
	}

	tests := []struct {
		name       string
		path       string
		status     int64
		statusCode codes.Code
	}{
		{"lowcode.bots GET", "/bots/1/status", 200, codes.Ok},
		{"lowcode.bots POST", "/bots/1/start", 200, codes.Ok},
		{"lowcode.bots GET", "/user", 401, codes.Error},
	}
	for i, tt := range tests {
		span := spans[i]
		if span.Name() != tt.name {
			t.Errorf("span %d name = %q, want %q", i, span.Name(), tt.name)
		}
		if span.Status().Code != tt.statusCode {
			t.Errorf("span %d status = %v, want %v", i, span.Status().Code, tt.statusCode)
		}
		attrs := make(map[attribute.Key]attribute.Value)
		for _, kv := range span.Attributes() {
			attrs[kv.Key] = kv.Value
		}
		if attrs["url.path"].AsString() != tt.path {
			t.Errorf("span %d url.path = %q, want %q", i, attrs["url.path"].AsString(), tt.path)
		}
		if attrs["http.response.status_code"].AsInt64() != tt.status {
			t.Errorf("span %d status code = %d, want %d", i, attrs["http.response.status_code"].AsInt64(), tt.status)
		}
	}
}

func TestErrorCode(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{apierrors.NewAuthenticationError(""), "unauthorized"},
		{apierrors.NewRequestError("GET", "/", 404, ""), "http_404"},
		{fmt.Errorf("other"), "unknown"},
	}

	for _, tt := range tests {
		if got := errorCode(tt.err); got != tt.want {
			t.Errorf("errorCode(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input    string
		maxLen   int
		expected string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"longer than max length", 10, "longer tha..."},
		{"", 5, ""},
		{"abc", 0, "..."},
		{"abc", 3, "abc"},
		{"abcd", 3, "abc..."},
	}

	for _, tt := range tests {
		result := truncate(tt.input, tt.maxLen)
		if result != tt.expected {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, result, tt.expected)
		}
	}
}
