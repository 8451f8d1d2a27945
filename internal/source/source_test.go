package source

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
)

func readBody(t *testing.T, in *Input) string {
	t.Helper()
	defer in.Close()

	data, err := io.ReadAll(in.Body)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	return string(data)
}

func TestOpenFile(t *testing.T) {
	t.Parallel()

	name := filepath.Join(t.TempDir(), "users.json")
	if err := os.WriteFile(name, []byte(`{"a":1}`), 0644); err != nil {
		t.Fatal(err)
	}

	in, err := New(http.DefaultClient, 0).Open(context.Background(), name)
	if err != nil {
		t.Fatalf("Open(%q) error = %v", name, err)
	}
	if in.Name != name || in.Hint != name {
		t.Errorf("Open(%q) = name %q hint %q", name, in.Name, in.Hint)
	}
	if got := readBody(t, in); got != `{"a":1}` {
		t.Errorf("body = %q", got)
	}

	if _, err := New(http.DefaultClient, 0).Open(context.Background(), filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Open(missing) error = %v, want os.ErrNotExist", err)
	}
}

func TestOpenStdin(t *testing.T) {
	t.Parallel()

	opener := New(http.DefaultClient, 0)
	opener.SetStdin(strings.NewReader("name: Mark"))

	in, err := opener.Open(context.Background(), Stdin)
	if err != nil {
		t.Fatalf("Open(-) error = %v", err)
	}
	if in.Name != "stdin" || in.Hint != "" {
		t.Errorf("Open(-) = name %q hint %q, want stdin and no hint", in.Name, in.Hint)
	}
	if got := readBody(t, in); got != "name: Mark" {
		t.Errorf("body = %q", got)
	}
}

func TestOpenURL(t *testing.T) {
	t.Parallel()

	var (
		mu           sync.Mutex
		gotRequestID string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		gotRequestID = r.Header.Get(RequestIDHeader)
		mu.Unlock()
		switch r.URL.Path {
		case "/users":
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.Write([]byte(`{"users":[]}`))
		case "/config.yaml":
			w.Header().Set("Content-Type", "application/octet-stream")
			w.Write([]byte("a: 1"))
		case "/problem":
			w.Header().Set("Content-Type", "application/problem+json")
			w.Write([]byte(`{}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	opener := New(server.Client(), 0)

	tests := []struct {
		path     string
		wantHint string
		wantBody string
	}{
		{path: "/users", wantHint: "response.json", wantBody: `{"users":[]}`},
		{path: "/config.yaml", wantHint: "/config.yaml", wantBody: "a: 1"},
		{path: "/problem", wantHint: "response.json", wantBody: `{}`},
	}

	for _, tt := range tests {
		in, err := opener.Open(context.Background(), server.URL+tt.path)
		if err != nil {
			t.Fatalf("Open(%s) error = %v", tt.path, err)
		}
		if in.Hint != tt.wantHint {
			t.Errorf("Open(%s).Hint = %q, want %q", tt.path, in.Hint, tt.wantHint)
		}
		if _, err := uuid.Parse(in.RequestID); err != nil {
			t.Errorf("Open(%s).RequestID = %q, not a UUID: %v", tt.path, in.RequestID, err)
		}
		mu.Lock()
		seen := gotRequestID
		mu.Unlock()
		if seen != in.RequestID {
			t.Errorf("server saw %s %q, want %q", RequestIDHeader, seen, in.RequestID)
		}
		if got := readBody(t, in); got != tt.wantBody {
			t.Errorf("Open(%s) body = %q, want %q", tt.path, got, tt.wantBody)
		}
	}
}

func TestOpenURLStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := New(server.Client(), 0).Open(context.Background(), server.URL)
	if !errors.Is(err, ErrStatus) {
		t.Fatalf("Open() error = %v, want ErrStatus", err)
	}
	if !strings.Contains(err.Error(), "503") {
		t.Errorf("Open() error = %v, want status code in message", err)
	}
}

func TestOpenURLRateLimited(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	opener := New(server.Client(), 1)

	in, err := opener.Open(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("first Open() error = %v", err)
	}
	in.Close()

	// The burst is spent, so the next fetch must wait about a second.
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if _, err := opener.Open(ctx, server.URL); err == nil {
		t.Fatal("second Open() succeeded inside the rate limit window")
	}
}

func TestIsURL(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"http://example.com":  true,
		"https://example.com": true,
		"ftp://example.com":   false,
		"users.json":          false,
		"-":                   false,
	}
	for location, want := range tests {
		if got := IsURL(location); got != want {
			t.Errorf("IsURL(%q) = %v, want %v", location, got, want)
		}
	}
}
