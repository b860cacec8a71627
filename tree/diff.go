package tree

import "fmt"

type Diff struct {
	ExpectedPath string
	ActualPath   string
	Message      string
}

func newDiff(expectedPath, actualPath, message string) *Diff {
	return &Diff{
		ExpectedPath: expectedPath,
		ActualPath:   actualPath,
		Message:      message,
	}
}

// DiffNode compares two trees for value equivalence: node types, token
// lexemes, child counts, and label bindings. Wrapper idempotence is defined
// in these terms, so two wraps of the same node must diff clean.
func DiffNode(expected, actual *Node) []*Diff {
	if expected == nil && actual == nil {
		return nil
	}
	return diffNode(expected, actual, nodeName(expected), nodeName(actual))
}

func diffNode(expected, actual *Node, expectedPath, actualPath string) []*Diff {
	if actual.Type != expected.Type {
		msg := fmt.Sprintf("unexpected node type: expected '%v' but got '%v'", expected.Type.Name(), actual.Type.Name())
		return []*Diff{
			newDiff(expectedPath, actualPath, msg),
		}
	}
	if actual.Text != expected.Text {
		msg := fmt.Sprintf("unexpected lexeme: expected '%v' but got '%v'", expected.Text, actual.Text)
		return []*Diff{
			newDiff(expectedPath, actualPath, msg),
		}
	}
	if len(actual.Children) != len(expected.Children) {
		msg := fmt.Sprintf("unexpected node count: expected %v but got %v", len(expected.Children), len(actual.Children))
		return []*Diff{
			newDiff(expectedPath, actualPath, msg),
		}
	}
	for _, label := range expected.Type.Labels() {
		ei, eok := expected.LabelIndex(label)
		ai, aok := actual.LabelIndex(label)
		if eok != aok || (eok && ei != ai) {
			msg := fmt.Sprintf("unexpected binding for label '%v': expected %v but got %v", label, bindingDesc(ei, eok), bindingDesc(ai, aok))
			return []*Diff{
				newDiff(expectedPath, actualPath, msg),
			}
		}
	}
	var diffs []*Diff
	for i, exp := range expected.Children {
		act := actual.Children[i]
		ep := fmt.Sprintf("%v.[%v]%v", expectedPath, i, nodeName(exp))
		ap := fmt.Sprintf("%v.[%v]%v", actualPath, i, nodeName(act))
		if ds := diffNode(exp, act, ep, ap); len(ds) > 0 {
			diffs = append(diffs, ds...)
		}
	}
	return diffs
}

func nodeName(n *Node) string {
	if n == nil {
		return "<nil>"
	}
	if n.IsToken() {
		return fmt.Sprintf("%#v", n.Text)
	}
	return n.Type.Name()
}

func bindingDesc(i int, bound bool) string {
	if !bound {
		return "no binding"
	}
	return fmt.Sprintf("child %v", i)
}
