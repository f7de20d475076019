package interpreter

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	cmdlexer "turtlegraphics/internal/lexer"
)

// Script is a command file: one command per line, blank lines and //
// comments ignored.
type Script struct {
	Lines []*Line `parser:"( @@ | EOL )*"`
}

// Line is one command and its raw argument tokens.
type Line struct {
	Pos  lexer.Position
	Name string   `parser:"@Word"`
	Args []string `parser:"@Word*"`
}

// Command returns the lower-cased command name.
func (l *Line) Command() string {
	return strings.ToLower(l.Name)
}

func (l *Line) String() string {
	return strings.Join(append([]string{l.Name}, l.Args...), " ")
}

var parser = participle.MustBuild[Script](participle.Lexer(cmdlexer.Definition{}))

// ParseScript parses a whole command file.
func ParseScript(filename string, r io.Reader) (*Script, error) {
	return parser.Parse(filename, r)
}

// ParseLine parses a single command. It returns nil for a blank or
// comment-only line.
func ParseLine(text string) (*Line, error) {
	if strings.ContainsAny(text, "\n") {
		return nil, fmt.Errorf("one command per line")
	}
	s, err := parser.ParseString("", text)
	if err != nil {
		return nil, err
	}
	if len(s.Lines) == 0 {
		return nil, nil
	}
	return s.Lines[0], nil
}
