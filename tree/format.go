package tree

import "bytes"

// Format renders the canonical text form of a tree. Parsing the result
// yields a value-equivalent tree.
func (n *Node) Format() []byte {
	var b bytes.Buffer
	n.format(&b, 0, "")
	return b.Bytes()
}

func (n *Node) format(buf *bytes.Buffer, depth int, label string) {
	for i := 0; i < depth; i++ {
		buf.WriteString("    ")
	}
	if label != "" {
		buf.WriteString(label)
		buf.WriteString(":")
	}
	if n.IsToken() {
		buf.WriteString("'")
		buf.WriteString(n.Text)
		buf.WriteString("'")
		return
	}
	buf.WriteString("(")
	buf.WriteString(n.Type.Name())
	for i, c := range n.Children {
		buf.WriteString("\n")
		childLabel, _ := n.labelOf(i)
		c.format(buf, depth+1, childLabel)
	}
	buf.WriteString(")")
}
