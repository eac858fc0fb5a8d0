// Package format holds the registry of named string format predicates used
// by the format keyword. Formats are pluggable: callers may register their
// own predicates, and an unregistered format name is a no-op pass.
package format

import (
	"net/mail"
	"net/netip"
	"net/url"
	"regexp"
	"sync"
	"time"
)

// Predicate reports whether s is a well-formed value of the format.
type Predicate func(s string) bool

// Registry maps format names to predicates. Safe for concurrent use.
type Registry struct {
	mu sync.RWMutex
	m  map[string]Predicate
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{m: map[string]Predicate{}}
}

// Register adds or replaces a predicate; nil predicates are ignored.
func (r *Registry) Register(name string, p Predicate) {
	if p == nil {
		return
	}
	r.mu.Lock()
	r.m[name] = p
	r.mu.Unlock()
}

// Lookup returns the predicate registered under name.
func (r *Registry) Lookup(name string) (Predicate, bool) {
	r.mu.RLock()
	p, ok := r.m[name]
	r.mu.RUnlock()
	return p, ok
}

var defaultRegistry = newDefaultRegistry()

// Default returns the shared registry pre-populated with the built-in
// formats. Register extends it process-wide.
func Default() *Registry { return defaultRegistry }

// Register adds a predicate to the default registry.
func Register(name string, p Predicate) { defaultRegistry.Register(name, p) }

var hostnameRE = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)
var uuidRE = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

func newDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("date-time", isDateTime)
	r.Register("date", func(s string) bool {
		_, err := time.Parse("2006-01-02", s)
		return err == nil
	})
	r.Register("time", func(s string) bool {
		if _, err := time.Parse("15:04:05Z07:00", s); err == nil {
			return true
		}
		_, err := time.Parse("15:04:05", s)
		return err == nil
	})
	r.Register("email", func(s string) bool {
		_, err := mail.ParseAddress(s)
		return err == nil
	})
	r.Register("uuid", uuidRE.MatchString)
	r.Register("hostname", hostnameRE.MatchString)
	r.Register("ipv4", func(s string) bool {
		a, err := netip.ParseAddr(s)
		return err == nil && a.Is4()
	})
	r.Register("ipv6", func(s string) bool {
		a, err := netip.ParseAddr(s)
		return err == nil && a.Is6() && !a.Is4In6()
	})
	r.Register("uri", func(s string) bool {
		u, err := url.Parse(s)
		return err == nil && u.IsAbs()
	})
	r.Register("regex", func(s string) bool {
		_, err := regexp.Compile(s)
		return err == nil
	})
	return r
}

func isDateTime(s string) bool {
	// Accept RFC3339Nano (trailing zeros optional).
	if _, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return true
	}
	_, err := time.Parse(time.RFC3339, s)
	return err == nil
}
