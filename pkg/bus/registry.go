package bus

import (
	"fmt"
	"strings"
	"sync"
)

// OpenFunc opens a controller for a URL. The full URL is passed through so
// openers can interpret host, path and query parts as they see fit.
type OpenFunc func(rawURL string) (Controller, error)

// Registry maps URL schemes to controller openers. Applications construct a
// Registry, register the controller implementations they link in, and pass
// it to whatever resolves configuration into a live bus. Nothing registers
// itself implicitly.
type Registry struct {
	mu      sync.RWMutex
	openers map[string]OpenFunc
}

// NewRegistry creates an empty controller registry.
func NewRegistry() *Registry {
	return &Registry{openers: make(map[string]OpenFunc)}
}

// Register associates a URL scheme with an opener. Scheme matching is
// case-insensitive. Registering a scheme twice replaces the opener.
func (r *Registry) Register(scheme string, open OpenFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.openers[strings.ToLower(scheme)] = open
}

// Schemes returns the registered schemes in unspecified order.
func (r *Registry) Schemes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	schemes := make([]string, 0, len(r.openers))
	for s := range r.openers {
		schemes = append(schemes, s)
	}
	return schemes
}

// Open resolves rawURL to a registered opener by scheme and opens the
// controller. Only the scheme prefix is inspected; everything after "://"
// is an opaque connection identifier owned by the opener, and need not be
// a well-formed URL (FTDI identifiers like "ftdi://ftdi:232h/1" carry a
// product code where a URL would have a port).
func (r *Registry) Open(rawURL string) (Controller, error) {
	scheme, _, ok := strings.Cut(rawURL, "://")
	if !ok || scheme == "" {
		return nil, fmt.Errorf("%w: URL %q has no scheme", ErrUnknownScheme, rawURL)
	}

	r.mu.RLock()
	open, ok := r.openers[strings.ToLower(scheme)]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, scheme)
	}
	return open(rawURL)
}
