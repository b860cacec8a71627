package tree

import (
	"strings"
	"testing"

	"github.com/mccode-go/mctree/comp"
)

func TestParse(t *testing.T) {
	src := `
(ExpressionBinaryPM
    left:(ExpressionInteger '1')
    '+'
    right:(ExpressionBinaryMD
        left:(ExpressionInteger '2')
        '*'
        right:(ExpressionInteger '3')))
`
	n, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if n.Type != comp.NodeExpressionBinaryPM {
		t.Fatalf("unexpected root type: %v", n.Type.Name())
	}
	if len(n.Children) != 3 {
		t.Fatalf("unexpected child count: %v", len(n.Children))
	}
	if n.Label("left") != n.Children[0] {
		t.Fatal("'left' must be bound to the first child")
	}
	if n.Label("right") != n.Children[2] {
		t.Fatal("'right' must be bound to the third child")
	}
	if op := n.Children[1]; !op.IsToken() || op.Text != "+" {
		t.Fatalf("the second child must be the '+' token: got: %v", nodeName(op))
	}

	inner := n.Children[2]
	if inner.Type != comp.NodeExpressionBinaryMD {
		t.Fatalf("unexpected inner type: %v", inner.Type.Name())
	}
	if inner.Label("left") != inner.Children[0] || inner.Label("right") != inner.Children[2] {
		t.Fatal("inner labels must be bound to the inner children")
	}
}

func TestParse_formatRoundTrip(t *testing.T) {
	tests := []string{
		`(Prog (ComponentDefineNew 'COMPONENT' 'Slit' (Component_parameter_set (Component_define_parameters 'DEFINITION' 'PARAMETERS'))))`,
		`(Metadata mime:'application/json' name:'cfg' (Unparsed_block '%{ ... %}'))`,
		`(ExpressionTrinaryLogic test:(ExpressionIdentifier 'x') '?' true:(ExpressionInteger '1') ':' false:(ExpressionZero '0'))`,
		`(ExpressionExponentiation base:(ExpressionFloat '2.5') '^' exponent:(ExpressionInteger '3'))`,
		`(Uservars)`,
	}
	for _, src := range tests {
		n1, err := Parse(strings.NewReader(src))
		if err != nil {
			t.Fatalf("%v: %v", src, err)
		}
		n2, err := Parse(strings.NewReader(string(n1.Format())))
		if err != nil {
			t.Fatalf("re-parsing the canonical form failed: %v:\n%v", err, string(n1.Format()))
		}
		if diffs := DiffNode(n1, n2); len(diffs) > 0 {
			t.Fatalf("%v: the canonical form is not value-equivalent: %v", src, diffs[0].Message)
		}
	}
}

func TestParse_positions(t *testing.T) {
	src := "(Prog\n    (Category 'optics'))"
	n, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if n.Row != 1 || n.Col != 1 {
		t.Fatalf("unexpected root position: %v:%v", n.Row, n.Col)
	}
	cat := n.Children[0]
	if cat.Row != 2 || cat.Col != 5 {
		t.Fatalf("unexpected child position: %v:%v", cat.Row, cat.Col)
	}
	tok := cat.Children[0]
	if tok.Row != 2 || tok.Col != 15 {
		t.Fatalf("unexpected token position: %v:%v", tok.Row, tok.Col)
	}
}

func TestParse_syntaxErrors(t *testing.T) {
	tests := []struct {
		caption string
		src     string
		msg     string
	}{
		{
			caption: "unknown node type",
			src:     `(NoSuchRule)`,
			msg:     "unknown node type",
		},
		{
			caption: "token sentinel is not a rule",
			src:     `(Token)`,
			msg:     "unknown node type",
		},
		{
			caption: "unclosed node",
			src:     `(Prog (Category 'optics')`,
			msg:     "unexpected EOF",
		},
		{
			caption: "undeclared label",
			src:     `(Assignment left:(ExpressionInteger '1'))`,
			msg:     "doesn't declare a label",
		},
		{
			caption: "label without an element",
			src:     `(ExpressionBinaryPM left:)`,
			msg:     "must be a child node or a token",
		},
		{
			caption: "two roots",
			src:     `(Prog) (Prog)`,
			msg:     "just one root node",
		},
		{
			caption: "invalid token",
			src:     `(Prog $)`,
			msg:     "invalid token",
		},
		{
			caption: "bare text",
			src:     `Prog`,
			msg:     "expected '('",
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.src))
			if err == nil {
				t.Fatal("parse must fail")
			}
			if !strings.Contains(err.Error(), tt.msg) {
				t.Fatalf("unexpected error message: want a message containing %#v, got: %v", tt.msg, err)
			}
		})
	}
}
