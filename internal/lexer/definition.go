package lexer

import (
	"fmt"
	"io"

	plex "github.com/alecthomas/participle/v2/lexer"
)

// Symbol types as seen by participle grammars: @Word and EOL.
const (
	SymWord plex.TokenType = -(iota + 2)
	SymEOL
)

// Definition exposes the lexmachine scanner to participle.
type Definition struct{}

var (
	_ plex.Definition       = Definition{}
	_ plex.StringDefinition = Definition{}
	_ plex.BytesDefinition  = Definition{}
)

func (Definition) Symbols() map[string]plex.TokenType {
	return map[string]plex.TokenType{
		"EOF":  plex.EOF,
		"Word": SymWord,
		"EOL":  SymEOL,
	}
}

func (d Definition) Lex(filename string, r io.Reader) (plex.Lexer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return d.LexBytes(filename, data)
}

func (d Definition) LexString(filename string, input string) (plex.Lexer, error) {
	return d.LexBytes(filename, []byte(input))
}

func (Definition) LexBytes(filename string, input []byte) (plex.Lexer, error) {
	l, err := New(input)
	if err != nil {
		return nil, err
	}
	return &adapter{l: l, filename: filename}, nil
}

type adapter struct {
	l        *Lexer
	filename string
}

func (a *adapter) Next() (plex.Token, error) {
	tok := a.l.NextToken()
	pos := plex.Position{Filename: a.filename, Offset: tok.Offset, Line: tok.Line, Column: tok.Column}
	switch tok.Type {
	case EOF:
		return plex.EOFToken(pos), nil
	case WORD:
		return plex.Token{Type: SymWord, Value: tok.Literal, Pos: pos}, nil
	case EOL:
		return plex.Token{Type: SymEOL, Value: tok.Literal, Pos: pos}, nil
	}
	return plex.Token{}, fmt.Errorf("%s: %s", a.filename, tok.Literal)
}
