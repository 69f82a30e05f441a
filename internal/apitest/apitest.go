// Package apitest provides an httptest-backed stand-in for the LowCode API,
// recording every request so module tests can assert method, path, headers
// and JSON body.
package apitest

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/olgasafonova/lowcodeapi-go/internal/base"
)

// Token is the bearer token used by clients created with Server.Client
const Token = "test_token"

// Request is a recorded inbound request
type Request struct {
	Method  string
	Path    string
	Header  http.Header
	RawBody []byte
	Body    map[string]any // nil unless the body was a JSON object
}

// Server is a recording API stub
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	requests []Request
	status   int
	reply    string
}

// NewServer starts a stub that answers 200 {"ok":true} until SetReply is called.
// It is closed automatically when the test ends.
func NewServer(t testing.TB) *Server {
	t.Helper()
	s := &Server{status: http.StatusOK, reply: `{"ok":true}`}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)
	return s
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)
	rec := Request{
		Method:  r.Method,
		Path:    r.URL.Path,
		Header:  r.Header.Clone(),
		RawBody: raw,
	}
	var obj map[string]any
	if json.Unmarshal(raw, &obj) == nil {
		rec.Body = obj
	}

	s.mu.Lock()
	s.requests = append(s.requests, rec)
	status, reply := s.status, s.reply
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(reply))
}

// SetReply changes the status and body returned for subsequent requests
func (s *Server) SetReply(status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
	s.reply = body
}

// Requests returns a copy of all recorded requests
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// Last returns the most recent request, failing the test if there is none
func (s *Server) Last(t testing.TB) Request {
	t.Helper()
	reqs := s.Requests()
	if len(reqs) == 0 {
		t.Fatal("no requests recorded")
	}
	return reqs[len(reqs)-1]
}

// AssertLast fails the test unless the most recent request used method and
// path, carried the bearer token and sent body as its JSON object. A nil body
// asserts that no body was sent.
func (s *Server) AssertLast(t testing.TB, method, path string, body map[string]any) {
	t.Helper()
	req := s.Last(t)
	if req.Method != method {
		t.Errorf("method = %s, want %s", req.Method, method)
	}
	if req.Path != path {
		t.Errorf("path = %s, want %s", req.Path, path)
	}
	if got := req.Header.Get("Authorization"); got != "Bearer "+Token {
		t.Errorf("Authorization = %q, want bearer token", got)
	}
	if body == nil {
		if len(req.RawBody) != 0 {
			t.Errorf("body = %q, want none", req.RawBody)
		}
		return
	}
	if diff := cmp.Diff(body, req.Body); diff != "" {
		t.Errorf("body mismatch (-want +got):\n%s", diff)
	}
}

// Client returns a base client pointed at the stub with a silent logger
func (s *Server) Client(t testing.TB, opts ...base.ClientOption) *base.Client {
	t.Helper()
	opts = append([]base.ClientOption{base.WithLogger(DiscardLogger())}, opts...)
	c, err := base.NewClient(s.URL, Token, opts...)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	return c
}

// DiscardLogger returns a logger that drops everything
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
