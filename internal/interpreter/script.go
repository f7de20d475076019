package interpreter

import (
	"fmt"
	"io"
	"os"
)

// RunFile replays the command file at path. See RunScript.
func (s *Session) RunFile(path string) (failed int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return s.RunScript(path, f)
}

// RunScript replays a command file line by line. A failing line is
// reported like a typed command and replay carries on; failed counts them.
// Destructive commands inside the script are answered by the script
// policy. The drawing is marked unsaved afterwards.
func (s *Session) RunScript(name string, r io.Reader) (failed int, err error) {
	if s.depth >= maxDepth {
		return 0, fmt.Errorf("%s: scripts nested deeper than %d", name, maxDepth)
	}
	script, err := ParseScript(name, r)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", name, err)
	}

	s.depth++
	defer func() { s.depth-- }()
	s.log.Debug("script start", "name", name, "lines", len(script.Lines), "depth", s.depth)
	for _, line := range script.Lines {
		if s.done {
			break
		}
		if err := s.run(line); err != nil {
			failed++
		}
	}
	s.Saved = false
	s.log.Info("script replayed", "name", name, "lines", len(script.Lines), "failed", failed)
	return failed, nil
}
