package lexer

import (
	"reflect"
	"testing"

	plex "github.com/alecthomas/participle/v2/lexer"
)

func TestNextToken(t *testing.T) {
	input := `// a square
FORWARD 100
right	90

pencolour 255 0 0 // red
triangle 60 80 100
`
	tests := []struct {
		expectedType    Type
		expectedLiteral string
	}{
		{EOL, "\n"},
		{WORD, "FORWARD"},
		{WORD, "100"},
		{EOL, "\n"},
		{WORD, "right"},
		{WORD, "90"},
		{EOL, "\n"},
		{EOL, "\n"},
		{WORD, "pencolour"},
		{WORD, "255"},
		{WORD, "0"},
		{WORD, "0"},
		{EOL, "\n"},
		{WORD, "triangle"},
		{WORD, "60"},
		{WORD, "80"},
		{WORD, "100"},
		{EOL, "\n"},
		{EOF, ""},
	}

	l, err := New([]byte(input))
	if err != nil {
		t.Fatalf("Failed to create lexer: %v", err)
	}

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q (%q)",
				i, tt.expectedType, tok.Type, tok.Literal)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestTokenPositions(t *testing.T) {
	l, err := New([]byte("pu\n  forward 10"))
	if err != nil {
		t.Fatal(err)
	}
	first := l.NextToken() // pu
	l.NextToken()          // \n
	tok := l.NextToken()
	if tok.Literal != "forward" || tok.Line != first.Line+1 || tok.Column != first.Column+2 {
		t.Fatalf("position wrong. got literal=%q line=%d col=%d, first at %d:%d",
			tok.Literal, tok.Line, tok.Column, first.Line, first.Column)
	}
	if tok.Offset != 5 {
		t.Fatalf("offset wrong. expected=5, got=%d", tok.Offset)
	}
}

func words(t *testing.T, input string) []string {
	t.Helper()
	l, err := New([]byte(input))
	if err != nil {
		t.Fatal(err)
	}
	var out []string
	for tok := l.NextToken(); tok.Type != EOF; tok = l.NextToken() {
		if tok.Type == ILLEGAL {
			t.Fatalf("illegal token %q", tok.Literal)
		}
		if tok.Type == WORD {
			out = append(out, tok.Literal)
		}
	}
	return out
}

func TestWords(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"forward 100", []string{"forward", "100"}},
		{"  left\t45  ", []string{"left", "45"}},
		{"", nil},
		{"   ", nil},
		{"// only a comment", nil},
		{"//no blank after the slashes", nil},
		{"  //indented note\nright", []string{"right"}},
		{"circle 50 // ring", []string{"circle", "50"}},
		{"circle 50 //", []string{"circle", "50"}},
		{"save //tmp/a.png", []string{"save", "//tmp/a.png"}},
		{"load //srv/x.png // shared", []string{"load", "//srv/x.png"}},
		{"forward ten", []string{"forward", "ten"}},
		{"pencolour -1 0.5 x", []string{"pencolour", "-1", "0.5", "x"}},
	}

	for i, tt := range tests {
		got := words(t, tt.input)
		if !reflect.DeepEqual(got, tt.expected) {
			t.Fatalf("tests[%d] - words wrong. expected=%q, got=%q", i, tt.expected, got)
		}
	}
}

func TestDefinitionFeedsParticiple(t *testing.T) {
	lx, err := Definition{}.LexString("script.txt", "square 50\n")
	if err != nil {
		t.Fatal(err)
	}
	want := []plex.TokenType{SymWord, SymWord, SymEOL, plex.EOF}
	for i, typ := range want {
		tok, err := lx.Next()
		if err != nil {
			t.Fatalf("tok %d: %v", i, err)
		}
		if tok.Type != typ {
			t.Fatalf("tok %d want %v got %v", i, typ, tok.Type)
		}
		if tok.Pos.Filename != "script.txt" {
			t.Fatalf("tok %d filename %q", i, tok.Pos.Filename)
		}
	}
	if (Definition{}).Symbols()["Word"] != SymWord {
		t.Fatal("Word symbol not registered")
	}
}
