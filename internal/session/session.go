// Package session holds the in-memory registry of admin panel sessions.
//
// An admin session is nothing more than an opaque identifier with an expiry:
// the original site kept a single "admin_logged" flag in the browser session,
// and the registry reproduces that one-bit state per session ID. Sessions are
// not persisted; a server restart logs every administrator out.
package session

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-blog-engine/internal/logger"
)

// Registry tracks live admin sessions keyed by their opaque identifier.
// It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]time.Time // session ID → expiry
	ttl      time.Duration

	generate func() string
	now      func() time.Time

	logger *logger.Logger
}

// IDGenerator produces opaque session identifiers.
type IDGenerator interface {
	Generate() string
}

// NewRegistry constructs a Registry whose sessions live for ttl after login.
func NewRegistry(ttl time.Duration, gen IDGenerator, logger *logger.Logger) *Registry {
	return &Registry{
		sessions: make(map[string]time.Time),
		ttl:      ttl,
		generate: gen.Generate,
		now:      time.Now,
		logger:   logger,
	}
}

// Create registers a new session and returns its identifier.
func (r *Registry) Create() string {
	id := r.generate()

	r.mu.Lock()
	r.sessions[id] = r.now().Add(r.ttl)
	r.mu.Unlock()

	r.logger.Debug().Msg("admin session created")
	return id
}

// Delete removes the session with the given identifier.
// Deleting an unknown or already-expired session is a no-op.
func (r *Registry) Delete(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

// Active reports whether the session exists and has not expired.
// Expired entries are removed lazily on lookup.
func (r *Registry) Active(id string) bool {
	r.mu.RLock()
	expiry, ok := r.sessions[id]
	r.mu.RUnlock()

	if !ok {
		return false
	}

	if r.now().After(expiry) {
		r.Delete(id)
		return false
	}

	return true
}

// Sweep removes every expired session and returns the number removed.
// Called periodically by the session sweeper worker.
func (r *Registry) Sweep() int {
	now := r.now()

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, expiry := range r.sessions {
		if now.After(expiry) {
			delete(r.sessions, id)
			removed++
		}
	}

	return removed
}

// Len returns the number of live entries, expired ones included until the
// next sweep.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
