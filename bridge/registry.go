package bridge

import (
	"fmt"
	"sync"

	"github.com/mccode-go/mctree/comp"
)

// UnresolvedTypeError means the host runtime has no declared counterpart
// for a node type the bridge needs. It signals that the grammar and the
// host-side declarations have drifted out of sync; callers must treat it
// as fatal for the wrap operation that hit it.
type UnresolvedTypeError struct {
	TypeName string
	Cause    error
}

func (e *UnresolvedTypeError) Error() string {
	return fmt.Sprintf("no host type is declared for node type %v: %v", e.TypeName, e.Cause)
}

func (e *UnresolvedTypeError) Unwrap() error {
	return e.Cause
}

// Registry caches host type handles, resolving each node type at most once
// per process. All methods are safe for concurrent use; hosts that want a
// read-only table before going parallel can call Preload instead.
type Registry struct {
	host Host

	mu      sync.Mutex
	handles map[comp.NodeType]TypeHandle
	closed  bool
}

func NewRegistry(host Host) *Registry {
	return &Registry{
		host:    host,
		handles: map[comp.NodeType]TypeHandle{},
	}
}

// Handle returns the host type handle for t, resolving it on first use.
// Subsequent calls return the identical cached handle. Resolution failures
// are not cached.
func (r *Registry) Handle(t comp.NodeType) (TypeHandle, error) {
	if t == comp.TokenType {
		return nil, fmt.Errorf("token nodes have no host type: use Host.WrapToken")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil, fmt.Errorf("the registry is already closed")
	}
	if h, ok := r.handles[t]; ok {
		return h, nil
	}
	h, err := r.host.ResolveType(t.Name())
	if err != nil {
		return nil, &UnresolvedTypeError{
			TypeName: t.Name(),
			Cause:    err,
		}
	}
	r.handles[t] = h
	return h, nil
}

// Preload resolves every node type eagerly. After a successful Preload the
// cache is complete and Handle never mutates it again.
func (r *Registry) Preload() error {
	for _, t := range comp.Types() {
		if _, err := r.Handle(t); err != nil {
			return err
		}
	}
	return nil
}

// Close releases every cached handle exactly once, in no particular order.
// Closing twice is harmless; using the registry after Close is an error.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.closed = true
	for _, h := range r.handles {
		h.Release()
	}
	r.handles = nil
}
