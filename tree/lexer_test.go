package tree

import (
	"strings"
	"testing"
)

func TestCompiledLexSpec(t *testing.T) {
	s, err := compiledLexSpec()
	if err != nil {
		t.Fatalf("lexical specification failed to compile: %v", err)
	}
	if s == nil {
		t.Fatal("compiled specification is nil")
	}
	if s.Name != "tree" {
		t.Fatalf("unexpected specification name; want: tree, got: %v", s.Name)
	}
}

func TestLexer_Run(t *testing.T) {
	src := `(Prog
    left:(Identifier 'x'))`
	want := []*token{
		{kind: tokenKindNodeOpen, row: 1, col: 1},
		{kind: tokenKindName, text: "Prog", row: 1, col: 2},
		{kind: tokenKindLabel, text: "left", row: 2, col: 5},
		{kind: tokenKindNodeOpen, row: 2, col: 10},
		{kind: tokenKindName, text: "Identifier", row: 2, col: 11},
		{kind: tokenKindString, text: "x", row: 2, col: 22},
		{kind: tokenKindNodeClose, row: 2, col: 25},
		{kind: tokenKindNodeClose, row: 2, col: 26},
		{kind: tokenKindEOF},
	}

	l, err := newLexer(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	for i, eTok := range want {
		tok, err := l.next()
		if err != nil {
			t.Fatal(err)
		}
		if tok.kind != eTok.kind || tok.text != eTok.text {
			t.Fatalf("unexpected token at %v; want: %+v, got: %+v", i, eTok, tok)
		}
		if eTok.kind != tokenKindEOF && (tok.row != eTok.row || tok.col != eTok.col) {
			t.Fatalf("unexpected position at %v; want: %v:%v, got: %v:%v", i, eTok.row, eTok.col, tok.row, tok.col)
		}
	}
}
