package interpreter

import (
	"image/color"
	"log/slog"
	"strings"

	"turtlegraphics/internal/canvas"
	"turtlegraphics/internal/turtle"
)

// maxDepth bounds loadscript nesting.
const maxDepth = 8

// Options configures a Session.
type Options struct {
	Width      int
	Height     int
	Background color.RGBA

	// Confirm answers prompts for commands typed by the user. Nil means
	// ScriptPolicy.
	Confirm Confirmer
	// ScriptPolicy answers prompts raised while a script is replayed.
	ScriptPolicy Policy

	Sink   Sink
	Logger *slog.Logger
}

func DefaultOptions() Options {
	return Options{
		Width:        800,
		Height:       400,
		Background:   color.RGBA{A: 255},
		ScriptPolicy: Deny,
	}
}

// Session is the interpreter state shared across command lines: the turtle,
// its surface, the history and the saved flag.
type Session struct {
	Turtle  *turtle.Turtle
	Surface *canvas.Surface
	History *History

	// Saved is false once the drawing changed after the last save or load.
	Saved bool

	confirm Confirmer
	policy  Policy
	sink    Sink
	log     *slog.Logger
	depth   int
	done    bool
}

func NewSession(opts Options) *Session {
	def := DefaultOptions()
	if opts.Width <= 0 {
		opts.Width = def.Width
	}
	if opts.Height <= 0 {
		opts.Height = def.Height
	}
	if opts.Background == (color.RGBA{}) {
		opts.Background = def.Background
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Sink == nil {
		opts.Sink = discard{}
	}
	if opts.Confirm == nil {
		opts.Confirm = opts.ScriptPolicy
	}
	surface := canvas.New(opts.Width, opts.Height, opts.Background, opts.Logger)
	return &Session{
		Turtle:  turtle.New(surface, opts.Logger),
		Surface: surface,
		History: NewHistory(),
		Saved:   true,
		confirm: opts.Confirm,
		policy:  opts.ScriptPolicy,
		sink:    opts.Sink,
		log:     opts.Logger,
	}
}

// Done reports whether exit was requested.
func (s *Session) Done() bool {
	return s.done
}

// Close releases the surface.
func (s *Session) Close() error {
	return s.Surface.Close()
}

// Exec runs one line of input. Blank and comment-only lines do nothing.
// A rejected command returns an *Error; the session stays usable.
func (s *Session) Exec(text string) error {
	line, err := ParseLine(text)
	if err != nil {
		s.History.Log("> " + strings.TrimSpace(text))
		e := wrapError(ParseError, err, "Could not read command", "Could not read command")
		s.report(e.Msg, e.Log)
		return e
	}
	if line == nil {
		return nil
	}
	return s.run(line)
}

func (s *Session) run(line *Line) error {
	s.History.Log("> " + line.String())
	name := line.Command()
	cmd, ok := lookup(name)
	if !ok {
		e := newError(UnknownCommand, "Invalid Command: "+name, "Invalid Command: "+name)
		return s.fail(line, e)
	}
	if e := cmd.checkArity(line.Args); e != nil {
		return s.fail(line, e)
	}
	res, e := cmd.run(s, line.Args)
	if e != nil {
		return s.fail(line, e)
	}
	if cmd.dirty {
		s.Saved = false
	}
	if cmd.replay && !res.cancelled {
		s.History.record(line.String())
	}
	s.report(res.msg, res.log)
	s.log.Debug("command", "cmd", name, "args", line.Args, "ok", true)
	return nil
}

func (s *Session) fail(line *Line, e *Error) error {
	s.report(e.Msg, e.Log)
	s.log.Info("command failed", "cmd", line.Command(), "args", line.Args, "kind", e.Kind.String(), "err", e)
	return e
}

func (s *Session) report(msg, log string) {
	if msg != "" {
		s.sink.Status(msg)
	}
	if log != "" {
		s.History.Log(log)
	}
}

// confirmer answers the user directly, or by policy inside a script.
func (s *Session) confirmer() Confirmer {
	if s.depth > 0 {
		return s.policy
	}
	return s.confirm
}
