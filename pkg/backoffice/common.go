// Package backoffice implements the REST clients for the back-office API
// that owns products, nutrition facts and the warning-seal catalog.
//
// All label data is fetched from here on demand; labelpress itself persists
// nothing. Responses are cached on disk with a short TTL so that reopening
// a preview does not hammer the API, and transient failures are retried
// with exponential backoff.
package backoffice

import (
	"errors"
	"net/http"
	"time"

	"github.com/labelpress/labelpress/pkg/httputil"
)

const httpTimeout = 10 * time.Second

var (
	// ErrNotFound is returned when a product or resource doesn't exist upstream.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors, 5xx responses).
	ErrNetwork = errors.New("network error")
)

// NewHTTPClient creates an HTTP client with a standard timeout for back-office requests.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}

// NewCache creates a file-based cache with the given TTL in the default cache directory.
// See [httputil.NewCache] for details on cache location and behavior.
func NewCache(ttl time.Duration) (*httputil.Cache, error) {
	return httputil.NewCache("", ttl)
}
