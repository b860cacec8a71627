package bridge

import (
	"fmt"

	"github.com/mccode-go/mctree/tree"
)

// Translator wraps parse trees into host values, one wrapper per node.
// Wrapping the same node twice produces two equivalent values (same type,
// children, and labels), not necessarily the same instance.
type Translator struct {
	host Host
	reg  *Registry
}

func NewTranslator(host Host) *Translator {
	return &Translator{
		host: host,
		reg:  NewRegistry(host),
	}
}

// Registry returns the translator's type registry, for eager preloading or
// direct handle access.
func (t *Translator) Registry() *Registry {
	return t.reg
}

// Close tears the translator down, releasing every cached type handle.
func (t *Translator) Close() {
	t.reg.Close()
}

// Wrap converts a parse tree into host values, depth-first. Children are
// wrapped in structural order; declared labels are collected in declaration
// order, carrying the exact wrapped child their binding references.
func (t *Translator) Wrap(n *tree.Node) (any, error) {
	if n == nil {
		return nil, fmt.Errorf("cannot wrap a nil node")
	}
	if n.IsToken() {
		return t.host.WrapToken(n)
	}

	h, err := t.reg.Handle(n.Type)
	if err != nil {
		return nil, err
	}

	children := make([]any, len(n.Children))
	for i, c := range n.Children {
		v, err := t.Wrap(c)
		if err != nil {
			return nil, err
		}
		children[i] = v
	}

	declared := n.Type.Labels()
	var labels []LabelBinding
	if len(declared) > 0 {
		labels = make([]LabelBinding, len(declared))
		for i, name := range declared {
			b := LabelBinding{
				Name: name,
			}
			if j, ok := n.LabelIndex(name); ok {
				b.Value = children[j]
			}
			labels[i] = b
		}
	}

	return h.New(&Instance{
		Node:     n,
		Children: children,
		Labels:   labels,
	})
}
