package tree

import (
	"fmt"
	"io"
	"strings"
	"sync"

	mlcompiler "github.com/nihei9/maleeni/compiler"
	mldriver "github.com/nihei9/maleeni/driver"
	mlspec "github.com/nihei9/maleeni/spec"
)

type tokenKind string

const (
	tokenKindNodeOpen  = tokenKind("(")
	tokenKindNodeClose = tokenKind(")")
	tokenKindLabel     = tokenKind("label")
	tokenKindName      = tokenKind("name")
	tokenKindString    = tokenKind("string")
	tokenKindEOF       = tokenKind("eof")
	tokenKindInvalid   = tokenKind("invalid")
)

type token struct {
	kind tokenKind
	text string
	row  int
	col  int
}

var (
	lexSpecOnce sync.Once
	lexSpec     *mlspec.CompiledLexSpec
	lexSpecErr  error
)

// compiledLexSpec builds the lexical specification of the tree text format
// once per process. The lex spec is tiny, so compiling it at first use
// beats shipping a generated table.
func compiledLexSpec() (*mlspec.CompiledLexSpec, error) {
	lexSpecOnce.Do(func() {
		s := &mlspec.LexSpec{
			Name: "tree",
			Entries: []*mlspec.LexEntry{
				{
					Kind:    mlspec.LexKindName("white_space"),
					Pattern: mlspec.LexPattern("[\\u{0009}\\u{000A}\\u{000D}\\u{0020}]+"),
				},
				{
					Kind:    mlspec.LexKindName("node_open"),
					Pattern: mlspec.LexPattern("\\("),
				},
				{
					Kind:    mlspec.LexKindName("node_close"),
					Pattern: mlspec.LexPattern("\\)"),
				},
				{
					Kind:    mlspec.LexKindName("label"),
					Pattern: mlspec.LexPattern("[a-zA-Z_][0-9a-zA-Z_]*:"),
				},
				{
					Kind:    mlspec.LexKindName("name"),
					Pattern: mlspec.LexPattern("[a-zA-Z_][0-9a-zA-Z_]*"),
				},
				{
					Kind:    mlspec.LexKindName("string"),
					Pattern: mlspec.LexPattern("'[^']*'"),
				},
			},
		}

		var cErrs []*mlcompiler.CompileError
		lexSpec, lexSpecErr, cErrs = mlcompiler.Compile(s, mlcompiler.CompressionLevel(mlcompiler.CompressionLevelMax))
		if lexSpecErr != nil && len(cErrs) > 0 {
			var b strings.Builder
			for i, cErr := range cErrs {
				if i > 0 {
					fmt.Fprintf(&b, "\n")
				}
				fmt.Fprintf(&b, "%v: %v", cErr.Kind, cErr.Cause)
			}
			lexSpecErr = fmt.Errorf("%v", b.String())
		}
	})
	return lexSpec, lexSpecErr
}

type lexer struct {
	s   *mlspec.CompiledLexSpec
	d   *mldriver.Lexer
	buf *token
}

func newLexer(src io.Reader) (*lexer, error) {
	s, err := compiledLexSpec()
	if err != nil {
		return nil, err
	}
	d, err := mldriver.NewLexer(mldriver.NewLexSpec(s), src)
	if err != nil {
		return nil, err
	}
	return &lexer{
		s: s,
		d: d,
	}, nil
}

func (l *lexer) next() (*token, error) {
	if l.buf != nil {
		tok := l.buf
		l.buf = nil
		return tok, nil
	}
	return l.lexAndSkipWSs()
}

func (l *lexer) peek() (*token, error) {
	if l.buf != nil {
		return l.buf, nil
	}
	tok, err := l.lexAndSkipWSs()
	if err != nil {
		return nil, err
	}
	l.buf = tok
	return tok, nil
}

func (l *lexer) lexAndSkipWSs() (*token, error) {
	var tok *mldriver.Token
	var kindName string
	for {
		var err error
		tok, err = l.d.Next()
		if err != nil {
			return nil, err
		}
		if tok.Invalid {
			return &token{
				kind: tokenKindInvalid,
				text: string(tok.Lexeme),
				row:  tok.Row + 1,
				col:  tok.Col + 1,
			}, nil
		}
		if tok.EOF {
			return &token{
				kind: tokenKindEOF,
			}, nil
		}
		kindName = l.s.KindNames[tok.KindID].String()
		if kindName == "white_space" {
			continue
		}

		break
	}

	t := &token{
		row: tok.Row + 1,
		col: tok.Col + 1,
	}
	text := string(tok.Lexeme)
	switch kindName {
	case "node_open":
		t.kind = tokenKindNodeOpen
	case "node_close":
		t.kind = tokenKindNodeClose
	case "label":
		t.kind = tokenKindLabel
		t.text = strings.TrimSuffix(text, ":")
	case "name":
		t.kind = tokenKindName
		t.text = text
	case "string":
		t.kind = tokenKindString
		t.text = text[1 : len(text)-1]
	default:
		return nil, fmt.Errorf("unknown lexical kind: %v", kindName)
	}
	return t, nil
}
