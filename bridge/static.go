package bridge

import (
	"bytes"
	"fmt"

	"github.com/mccode-go/mctree/comp"
	"github.com/mccode-go/mctree/tree"
)

// StaticHost is an in-memory host runtime with a fixed set of declared
// types. It is the reference implementation of the Host contract: the CLI
// wraps trees against it, and omitting a name from the declaration set
// reproduces the grammar/host drift failure mode.
type StaticHost struct {
	types map[string]*staticType
}

// NewStaticHost declares one host type per name. Passing no names declares
// the complete node type universe.
func NewStaticHost(names ...string) *StaticHost {
	if len(names) == 0 {
		for _, t := range comp.Types() {
			names = append(names, t.Name())
		}
	}
	types := make(map[string]*staticType, len(names))
	for _, name := range names {
		types[name] = &staticType{
			name: name,
		}
	}
	return &StaticHost{
		types: types,
	}
}

func (h *StaticHost) ResolveType(name string) (TypeHandle, error) {
	t, ok := h.types[name]
	if !ok {
		return nil, fmt.Errorf("undeclared type: %v", name)
	}
	return t, nil
}

func (h *StaticHost) WrapToken(tok *tree.Node) (any, error) {
	return &Token{
		Text: tok.Text,
		Row:  tok.Row,
		Col:  tok.Col,
	}, nil
}

// Releases reports how many times the handle for name has been released.
// A registry that honors scoped ownership releases each handle exactly once.
func (h *StaticHost) Releases(name string) int {
	t, ok := h.types[name]
	if !ok {
		return 0
	}
	return t.releases
}

type staticType struct {
	name     string
	releases int
}

func (t *staticType) Name() string {
	return t.name
}

func (t *staticType) New(inst *Instance) (any, error) {
	return &Object{
		Type:     t.name,
		Node:     inst.Node,
		Children: inst.Children,
		Labels:   inst.Labels,
	}, nil
}

func (t *staticType) Release() {
	t.releases++
}

// Object is the generic host value a StaticHost materializes for one rule
// node.
type Object struct {
	Type     string
	Node     *tree.Node
	Children []any
	Labels   []LabelBinding
}

// Token is the host value a StaticHost materializes for one terminal token.
type Token struct {
	Text string
	Row  int
	Col  int
}

// Format renders the host-side view of a wrapped tree in the same text form
// tree.Node.Format uses, which makes it easy to eyeball what the bridge
// carried across.
func (o *Object) Format() []byte {
	var b bytes.Buffer
	formatValue(&b, o, 0, "")
	return b.Bytes()
}

func formatValue(buf *bytes.Buffer, v any, depth int, label string) {
	for i := 0; i < depth; i++ {
		buf.WriteString("    ")
	}
	if label != "" {
		buf.WriteString(label)
		buf.WriteString(":")
	}
	switch v := v.(type) {
	case *Token:
		buf.WriteString("'")
		buf.WriteString(v.Text)
		buf.WriteString("'")
	case *Object:
		buf.WriteString("(")
		buf.WriteString(v.Type)
		for _, c := range v.Children {
			buf.WriteString("\n")
			formatValue(buf, c, depth+1, v.labelOf(c))
		}
		buf.WriteString(")")
	default:
		fmt.Fprintf(buf, "%v", v)
	}
}

func (o *Object) labelOf(child any) string {
	for _, b := range o.Labels {
		if b.Value != nil && b.Value == child {
			return b.Name
		}
	}
	return ""
}

// Tree rebuilds a parse tree from the wrapped values. The result must be
// value-equivalent to the tree that was wrapped; the tester leans on that
// to verify the bridge end to end.
func (o *Object) Tree() (*tree.Node, error) {
	t, ok := comp.TypeOf(o.Type)
	if !ok {
		return nil, fmt.Errorf("unknown node type: %v", o.Type)
	}
	children := make([]*tree.Node, len(o.Children))
	for i, c := range o.Children {
		switch c := c.(type) {
		case *Token:
			children[i] = tree.NewTokenNode(c.Text)
		case *Object:
			n, err := c.Tree()
			if err != nil {
				return nil, err
			}
			children[i] = n
		default:
			return nil, fmt.Errorf("unexpected child value of %v: %T", o.Type, c)
		}
	}
	n := tree.NewNode(t, children...)
	for _, b := range o.Labels {
		if b.Value == nil {
			continue
		}
		for i, c := range o.Children {
			if c == b.Value {
				if err := n.Bind(b.Name, children[i]); err != nil {
					return nil, err
				}
				break
			}
		}
	}
	return n, nil
}
