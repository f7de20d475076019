package console

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestAnswer(t *testing.T) {
	tests := []struct {
		key      byte
		expected bool
	}{
		{'y', true},
		{'Y', true},
		{'n', false},
		{'\r', false},
		{'q', false},
		{3, false},
	}
	for i, tt := range tests {
		if got := Answer(tt.key); got != tt.expected {
			t.Fatalf("tests[%d] - answer to %q wrong. expected=%v, got=%v", i, tt.key, tt.expected, got)
		}
	}
}

func TestPrompterConfirm(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(&out, nil)

	p.readKey = func() (byte, error) { return 'y', nil }
	if !p.Confirm("Clear anyway?") {
		t.Fatal("y refused")
	}
	if got := out.String(); got != "Clear anyway? [y/N] y\n" {
		t.Fatalf("output %q", got)
	}

	out.Reset()
	p.readKey = func() (byte, error) { return 0, errors.New("no tty") }
	if p.Confirm("Reset anyway?") {
		t.Fatal("read failure accepted")
	}
	if got := out.String(); got != "Reset anyway? [y/N] \n" {
		t.Fatalf("output %q", got)
	}
}

func TestRegularFileIsNotTerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "plain"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if IsTerminal(f.Fd()) {
		t.Fatal("regular file reported as terminal")
	}
}
