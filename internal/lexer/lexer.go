// Package lexer splits turtle command text into words and line ends.
package lexer

import (
	"fmt"
	"strings"
	"sync"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

type Type int

const (
	ILLEGAL Type = iota
	EOF
	WORD
	EOL
)

func (t Type) String() string {
	switch t {
	case EOF:
		return "EOF"
	case WORD:
		return "Word"
	case EOL:
		return "EOL"
	}
	return "ILLEGAL"
}

type Token struct {
	Type    Type
	Literal string
	Offset  int
	Line    int
	Column  int
}

type Lexer struct {
	scanner *lexmachine.Scanner
	last    Token
	// midLine is set once a word has been read on the current line.
	midLine bool
}

var (
	compiled    *lexmachine.Lexer
	compileErr  error
	compileOnce sync.Once
)

// build compiles the shared DFA. A bare // (alone or followed by a blank)
// starts a comment running to the end of the line, so an argument such as
// //tmp/a.png stays a word. NextToken also drops a line whose first word
// starts with //.
func build() (*lexmachine.Lexer, error) {
	compileOnce.Do(func() {
		l := lexmachine.NewLexer()
		l.Add([]byte(`//([ \t\r][^\n]*)?`), skip)
		l.Add([]byte(`[ \t\r]+`), skip)
		l.Add([]byte(`\n`), tokAction(EOL))
		l.Add([]byte(`[^ \t\r\n]+`), tokAction(WORD))
		if err := l.Compile(); err != nil {
			compileErr = fmt.Errorf("compile lexer: %w", err)
			return
		}
		compiled = l
	})
	return compiled, compileErr
}

func New(input []byte) (*Lexer, error) {
	l, err := build()
	if err != nil {
		return nil, err
	}
	scanner, err := l.Scanner(input)
	if err != nil {
		return nil, err
	}
	return &Lexer{scanner: scanner}, nil
}

func (l *Lexer) NextToken() Token {
	tok := l.next()
	if tok.Type == WORD && !l.midLine && strings.HasPrefix(tok.Literal, "//") {
		for tok.Type != EOL && tok.Type != EOF && tok.Type != ILLEGAL {
			tok = l.next()
		}
	}
	l.midLine = tok.Type == WORD
	return tok
}

func (l *Lexer) next() Token {
	tok, err, eof := l.scanner.Next()
	if eof {
		return Token{Type: EOF, Offset: l.last.Offset + len(l.last.Literal), Line: l.last.Line, Column: l.last.Column + len(l.last.Literal)}
	}
	if err != nil {
		return Token{Type: ILLEGAL, Literal: err.Error()}
	}
	l.last = tok.(Token)
	return l.last
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func tokAction(t Type) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return Token{
			Type:    t,
			Literal: string(m.Bytes),
			Offset:  m.TC,
			Line:    m.StartLine,
			Column:  m.StartColumn,
		}, nil
	}
}
