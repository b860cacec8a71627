// Package bridge exposes component-grammar parse trees to an embedding host
// runtime. For every node type the host declares one counterpart type; the
// bridge resolves each counterpart at most once per process, caches the
// handle, and wraps tree nodes into host values carrying the node's type
// identity, its structural children, and its grammar-declared labeled
// references.
package bridge

import (
	"github.com/mccode-go/mctree/tree"
)

// Host is the embedding runtime the bridge targets. Implementations must
// declare one type per rule node type under exactly the node type's wire
// name; ResolveType for an undeclared name is the only failure mode the
// bridge recognizes, and it is treated as a packaging defect rather than a
// data problem.
type Host interface {
	ResolveType(name string) (TypeHandle, error)

	// WrapToken converts a terminal token node into a host value. Tokens
	// are uniform across node types and bypass the type registry.
	WrapToken(tok *tree.Node) (any, error)
}

// TypeHandle is an opaque handle to a host-side type, sufficient to
// construct instances. The registry owns a cached handle until Close, at
// which point Release is called exactly once.
type TypeHandle interface {
	Name() string
	New(inst *Instance) (any, error)
	Release()
}

// Instance carries everything the host needs to materialize one wrapped
// node: the node itself, its already-wrapped children in structural order,
// and its label bindings in declaration order.
type Instance struct {
	Node     *tree.Node
	Children []any
	Labels   []LabelBinding
}

// LabelBinding associates a declared label name with the wrapped child it
// references. Value is nil when the optional child is absent.
type LabelBinding struct {
	Name  string
	Value any
}
