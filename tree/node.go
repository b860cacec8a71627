// Package tree models the parse trees the bridge consumes: rule nodes
// belonging to one of the closed set of component-grammar node types, token
// nodes carrying lexemes, and grammar-declared label bindings pointing into
// a node's child sequence. It also reads and writes a plain-text exchange
// format so trees can be handled by tooling without the upstream parser.
package tree

import (
	"fmt"
	"io"

	"github.com/mccode-go/mctree/comp"
)

type Node struct {
	Type comp.NodeType

	// Text is the lexeme of a token node. Rule nodes leave it empty.
	Text string

	Row int
	Col int

	Children []*Node

	// bindings maps a declared label name to an index into Children.
	// Established by the producer at parse time and fixed afterwards.
	bindings map[string]int
}

func NewNode(t comp.NodeType, children ...*Node) *Node {
	return &Node{
		Type:     t,
		Children: children,
	}
}

func NewTokenNode(text string) *Node {
	return &Node{
		Type: comp.TokenType,
		Text: text,
	}
}

func (n *Node) IsToken() bool {
	return n.Type == comp.TokenType
}

// Bind associates one of the node type's declared labels with a structural
// child. The target must already be a member of n.Children; labels never
// reference nodes outside the child sequence.
func (n *Node) Bind(label string, target *Node) error {
	if !n.Type.HasLabel(label) {
		return fmt.Errorf("node type %v doesn't declare a label '%v'", n.Type.Name(), label)
	}
	for i, c := range n.Children {
		if c == target {
			if n.bindings == nil {
				n.bindings = map[string]int{}
			}
			n.bindings[label] = i
			return nil
		}
	}
	return fmt.Errorf("a label must reference a child of its node: %v has no such child for label '%v'", n.Type.Name(), label)
}

// Label returns the child bound to a declared label, or nil when the
// optional child is absent or the label was never bound.
func (n *Node) Label(name string) *Node {
	i, ok := n.bindings[name]
	if !ok {
		return nil
	}
	return n.Children[i]
}

// LabelIndex returns the child position a label is bound to.
func (n *Node) LabelIndex(name string) (int, bool) {
	i, ok := n.bindings[name]
	return i, ok
}

// labelOf returns the label name bound to the child at index i, if any.
func (n *Node) labelOf(i int) (string, bool) {
	for _, name := range n.Type.Labels() {
		if j, ok := n.bindings[name]; ok && j == i {
			return name, true
		}
	}
	return "", false
}

func PrintTree(w io.Writer, node *Node) {
	printTree(w, node, "", "")
}

func printTree(w io.Writer, node *Node, ruledLine string, childRuledLinePrefix string) {
	if node == nil {
		return
	}

	if node.IsToken() {
		fmt.Fprintf(w, "%v%#v\n", ruledLine, node.Text)
	} else {
		fmt.Fprintf(w, "%v%v\n", ruledLine, node.Type.Name())
	}

	num := len(node.Children)
	for i, child := range node.Children {
		var line string
		if num > 1 && i < num-1 {
			line = "├─ "
		} else {
			line = "└─ "
		}

		var prefix string
		if i >= num-1 {
			prefix = "   "
		} else {
			prefix = "│  "
		}

		if label, ok := node.labelOf(i); ok {
			line = line + label + ": "
		}

		printTree(w, child, childRuledLinePrefix+line, childRuledLinePrefix+prefix)
	}
}
