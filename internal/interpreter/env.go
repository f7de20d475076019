package interpreter

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// History holds the session log and the commands that can be replayed.
type History struct {
	entries  []string
	commands []string
}

func NewHistory() *History {
	return &History{}
}

// Log appends a line to the session log.
func (h *History) Log(line string) {
	h.entries = append(h.entries, line)
}

func (h *History) record(cmd string) {
	h.commands = append(h.commands, cmd)
}

// Entries returns the session log, oldest first.
func (h *History) Entries() []string {
	return append([]string(nil), h.entries...)
}

// Commands returns the replayable commands, oldest first.
func (h *History) Commands() []string {
	return append([]string(nil), h.commands...)
}

// Last returns the most recent log line.
func (h *History) Last() string {
	if len(h.entries) == 0 {
		return ""
	}
	return h.entries[len(h.entries)-1]
}

// WriteScript writes the replayable commands one per line under a comment
// header, in the format loadscript reads.
func (h *History) WriteScript(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "// turtle commands")
	for _, c := range h.commands {
		fmt.Fprintln(bw, c)
	}
	return bw.Flush()
}

func (h *History) String() string {
	return strings.Join(h.entries, "\n")
}
