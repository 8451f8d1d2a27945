// Package source opens the locations jseek reads documents from: local
// files, standard input and http(s) URLs.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/jacoelho/jseek/internal/ratelimit"
)

// Stdin is the location that reads standard input.
const Stdin = "-"

// RequestIDHeader carries a fresh UUID on every URL fetch.
const RequestIDHeader = "X-Request-Id"

// ErrStatus indicates a URL fetch that did not return a 2xx status.
var ErrStatus = errors.New("source: unexpected status")

// Input is an opened location. Hint is the name format detection should
// look at: the file name, the URL path, or an extension derived from the
// response Content-Type.
type Input struct {
	Name      string
	Hint      string
	RequestID string
	Body      io.ReadCloser
}

func (in *Input) Close() error {
	return in.Body.Close()
}

// Opener opens locations. URL fetches share one client and one limiter.
type Opener struct {
	client  *http.Client
	limiter *ratelimit.Limiter
	stdin   io.Reader
}

// New uses 0 or negative requestsPerSecond for no rate limiting.
func New(client *http.Client, requestsPerSecond float64) *Opener {
	return &Opener{
		client:  client,
		limiter: ratelimit.New(requestsPerSecond),
		stdin:   os.Stdin,
	}
}

// SetStdin replaces the reader used for the Stdin location.
func (o *Opener) SetStdin(r io.Reader) {
	o.stdin = r
}

// IsURL reports whether location is fetched over HTTP.
func IsURL(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

// Open opens location for reading.
func (o *Opener) Open(ctx context.Context, location string) (*Input, error) {
	switch {
	case location == Stdin:
		return &Input{Name: "stdin", Body: io.NopCloser(o.stdin)}, nil
	case IsURL(location):
		return o.fetch(ctx, location)
	}

	f, err := os.Open(location)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", location, err)
	}
	return &Input{Name: location, Hint: location, Body: f}, nil
}

func (o *Opener) fetch(ctx context.Context, location string) (*Input, error) {
	if err := o.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", location, err)
	}

	requestID := uuid.New().String()
	req.Header.Set(RequestIDHeader, requestID)
	req.Header.Set("Accept", "application/json, application/yaml;q=0.9, application/cbor;q=0.8, */*;q=0.1")

	resp, err := o.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", location, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("%w: %s returned %d", ErrStatus, location, resp.StatusCode)
	}

	return &Input{
		Name:      location,
		Hint:      hintFor(location, resp.Header.Get("Content-Type")),
		RequestID: requestID,
		Body:      resp.Body,
	}, nil
}

func hintFor(location, contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err == nil {
		switch {
		case mediaType == "application/json" || strings.HasSuffix(mediaType, "+json"):
			return "response.json"
		case mediaType == "application/yaml" || mediaType == "application/x-yaml" || mediaType == "text/yaml":
			return "response.yaml"
		case mediaType == "application/cbor" || strings.HasSuffix(mediaType, "+cbor"):
			return "response.cbor"
		}
	}

	u, err := url.Parse(location)
	if err != nil {
		return ""
	}
	return u.Path
}
