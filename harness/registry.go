// harness/registry.go
//
// Package harness is a self-registering test catalog and a sequential
// runner. Checks register under a qualified "suite.case" name; the runner
// executes them in registration order, isolates each body's assertion
// failures and panics, reports a pass/fail line per check, and returns the
// failure count for use as the process exit code.
package harness

import (
	"fmt"
	"sync"
)

// Func is a check body. Assertions take the *T handle.
type Func func(*T)

type entry struct {
	name string
	fn   Func
}

// Registry is an ordered catalog of named checks. Registration order is
// execution order. Registering a duplicate name panics: a silent overwrite
// would corrupt the catalog invisibly, so misuse fails fast at startup.
type Registry struct {
	mu      sync.Mutex
	entries []entry
	names   map[string]struct{}
}

func NewRegistry() *Registry {
	return &Registry{names: make(map[string]struct{})}
}

// Register appends a check to the catalog.
func (r *Registry) Register(name string, fn Func) {
	if fn == nil {
		panic(fmt.Sprintf("nil body for check %q", name))
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.names[name]; exists {
		panic(fmt.Sprintf("duplicate test name %q", name))
	}
	r.names[name] = struct{}{}
	r.entries = append(r.entries, entry{name: name, fn: fn})
}

// Len returns the number of registered checks.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// snapshot copies the catalog so a run is unaffected by late registrations.
func (r *Registry) snapshot() []entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]entry(nil), r.entries...)
}

// Default is the ambient catalog the package-level Register feeds. It is a
// plain eagerly-initialised value, so "registered before any lookup" holds
// without relying on cross-file initialisation order.
var Default = NewRegistry()

// Register adds a check to the ambient catalog.
func Register(name string, fn Func) { Default.Register(name, fn) }
