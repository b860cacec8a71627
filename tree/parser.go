package tree

import (
	"fmt"
	"io"

	"github.com/mccode-go/mctree/comp"
)

// SyntaxError reports a malformed tree text with the position of the
// offending token.
type SyntaxError struct {
	Row   int
	Col   int
	Cause error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v:%v: %v", e.Row, e.Col, e.Cause)
}

func (e *SyntaxError) Unwrap() error {
	return e.Cause
}

// Parse reads one tree in the text exchange format:
//
//	(ExpressionBinaryPM left:(ExpressionInteger '1') '+' right:(ExpressionInteger '2'))
//
// Every element of a node is a structural child; a label: prefix
// additionally binds one of the node type's declared labels to that child.
// Only the closed set of known node types is accepted.
func Parse(src io.Reader) (*Node, error) {
	l, err := newLexer(src)
	if err != nil {
		return nil, err
	}
	p := &parser{
		lex: l,
	}
	root, err := p.parseNode()
	if err != nil {
		return nil, err
	}
	tok, err := p.lex.next()
	if err != nil {
		return nil, err
	}
	if tok.kind != tokenKindEOF {
		return nil, synErr(tok, fmt.Errorf("a tree text must contain just one root node"))
	}
	return root, nil
}

type parser struct {
	lex *lexer
}

func (p *parser) parseNode() (*Node, error) {
	open, err := p.expect(tokenKindNodeOpen)
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expect(tokenKindName)
	if err != nil {
		return nil, err
	}
	nodeType, ok := comp.TypeOf(nameTok.text)
	if !ok {
		return nil, synErr(nameTok, fmt.Errorf("unknown node type: %v", nameTok.text))
	}

	n := &Node{
		Type: nodeType,
		Row:  open.row,
		Col:  open.col,
	}
	for {
		tok, err := p.lex.peek()
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokenKindNodeClose:
			_, _ = p.lex.next()
			return n, nil
		case tokenKindEOF:
			return nil, synErr(tok, fmt.Errorf("unexpected EOF: node %v is not closed", nodeType.Name()))
		case tokenKindInvalid:
			return nil, synErr(tok, fmt.Errorf("invalid token: '%v'", tok.text))
		}

		var label *token
		if tok.kind == tokenKindLabel {
			label, _ = p.lex.next()
		}

		child, err := p.parseElement()
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, child)
		if label != nil {
			if err := n.Bind(label.text, child); err != nil {
				return nil, synErr(label, err)
			}
		}
	}
}

func (p *parser) parseElement() (*Node, error) {
	tok, err := p.lex.peek()
	if err != nil {
		return nil, err
	}
	switch tok.kind {
	case tokenKindNodeOpen:
		return p.parseNode()
	case tokenKindString:
		_, _ = p.lex.next()
		n := NewTokenNode(tok.text)
		n.Row = tok.row
		n.Col = tok.col
		return n, nil
	}
	return nil, synErr(tok, fmt.Errorf("a node element must be a child node or a token: got '%v'", tok.kind))
}

func (p *parser) expect(kind tokenKind) (*token, error) {
	tok, err := p.lex.next()
	if err != nil {
		return nil, err
	}
	if tok.kind != kind {
		if tok.kind == tokenKindInvalid {
			return nil, synErr(tok, fmt.Errorf("invalid token: '%v'", tok.text))
		}
		return nil, synErr(tok, fmt.Errorf("expected '%v' but got '%v'", kind, tok.kind))
	}
	return tok, nil
}

func synErr(tok *token, cause error) error {
	return &SyntaxError{
		Row:   tok.row,
		Col:   tok.col,
		Cause: cause,
	}
}
