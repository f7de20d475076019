package interpreter

import (
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"turtlegraphics/internal/turtle"
)

type statuses []string

func (s *statuses) Status(msg string) {
	*s = append(*s, msg)
}

func testSession(t *testing.T, c Confirmer) (*Session, *statuses) {
	t.Helper()
	out := &statuses{}
	opts := DefaultOptions()
	opts.Confirm = c
	opts.Sink = out
	s := NewSession(opts)
	t.Cleanup(func() { s.Close() })
	return s, out
}

func execAll(t *testing.T, s *Session, lines ...string) {
	t.Helper()
	for _, l := range lines {
		if err := s.Exec(l); err != nil {
			t.Fatalf("%q: %v", l, err)
		}
	}
}

func near(a, b turtle.Point) bool {
	return math.Abs(a.X-b.X) < 1e-6 && math.Abs(a.Y-b.Y) < 1e-6
}

func TestRejectedCommands(t *testing.T) {
	tests := []struct {
		input string
		kind  Kind
	}{
		{"forward 2000", OutOfRange},
		{"move -1001", OutOfRange},
		{"forward", MissingArgument},
		{"forward ten", ParseError},
		{"forward 1 2", ParseError},
		{"forward 300", OffCanvas},
		{"backward 201", OffCanvas},
		{"right 400", OutOfRange},
		{"left x", ParseError},
		{"penwidth 0", OutOfRange},
		{"penwidth wide", ParseError},
		{"setspeed 11", OutOfRange},
		{"setspeed", MissingArgument},
		{"pencolour 999 0 0", OutOfRange},
		{"pencolour 0 -1 0", OutOfRange},
		{"pencolour 999 0 x", ParseError},
		{"pencolour 1 2", ParseError},
		{"pencolour nosuchcolour", ParseError},
		{"circle 0", OutOfRange},
		{"circle 501", OutOfRange},
		{"square 250", OffCanvas},
		{"square 1.5", ParseError},
		{"triangle", MissingArgument},
		{"triangle 1 1 5", InvalidGeometry},
		{"triangle 0 1 1", OutOfRange},
		{"triangle 1 2", ParseError},
		{"triangle 300", OffCanvas},
		{"frobnicate", UnknownCommand},
		{"penup now", ParseError},
		{"save", MissingArgument},
		{"load no-such-drawing.png", IOFailure},
		{"load drawing.gif", IOFailure},
		{"loadscript no-such-script.txt", IOFailure},
	}

	for i, tt := range tests {
		s, _ := testSession(t, Deny)
		before := s.Turtle.State()
		err := s.Exec(tt.input)
		if KindOf(err) != tt.kind {
			t.Fatalf("tests[%d] %q - kind wrong. expected=%s, got=%v", i, tt.input, tt.kind, err)
		}
		if s.Turtle.State() != before {
			t.Fatalf("tests[%d] %q - state changed to %s", i, tt.input, s.Turtle.State())
		}
		if !s.Saved {
			t.Fatalf("tests[%d] %q - rejected command marked drawing unsaved", i, tt.input)
		}
		if last := s.History.Last(); !strings.HasPrefix(last, "Error") {
			t.Fatalf("tests[%d] %q - history line %q", i, tt.input, last)
		}
	}
}

func TestUnknownCommandMessage(t *testing.T) {
	s, out := testSession(t, Deny)
	s.Exec("frobnicate")
	if got := (*out)[len(*out)-1]; got != "Invalid Command: frobnicate" {
		t.Fatalf("status %q", got)
	}
	want := []string{"> frobnicate", "Error: Invalid Command: frobnicate"}
	if got := s.History.Entries(); strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("history %q", got)
	}
}

func TestMovement(t *testing.T) {
	s, _ := testSession(t, Deny)
	start := s.Turtle.Position()

	execAll(t, s, "FORWARD 100", "Backward 100")
	if !near(s.Turtle.Position(), start) {
		t.Fatalf("forward/back ended at %s", s.Turtle.Position())
	}

	execAll(t, s, "right", "move 50")
	if want := (turtle.Point{X: start.X + 50, Y: start.Y}); !near(s.Turtle.Position(), want) {
		t.Fatalf("after right turn at %s want %s", s.Turtle.Position(), want)
	}
	execAll(t, s, "left 45", "left")
	if h := s.Turtle.Heading(); h != 315 {
		t.Fatalf("heading %g", h)
	}
	execAll(t, s, "rt 45", "reverse 50")
	if h := s.Turtle.Heading(); h != 0 {
		t.Fatalf("heading %g", h)
	}
	if want := (turtle.Point{X: start.X + 50, Y: start.Y + 50}); !near(s.Turtle.Position(), want) {
		t.Fatalf("at %s want %s", s.Turtle.Position(), want)
	}
}

func TestTurnThenUndoRestoresHeading(t *testing.T) {
	for _, deg := range []string{"1", "7", "45", "119", "360", "-360", "-17"} {
		s, _ := testSession(t, Deny)
		execAll(t, s, "right 33")
		before := s.Turtle.Heading()
		execAll(t, s, "right "+deg, "left "+deg)
		if s.Turtle.Heading() != before {
			t.Fatalf("right/left %s: heading %g want %g", deg, s.Turtle.Heading(), before)
		}
	}
}

func TestPenCommands(t *testing.T) {
	tests := []struct {
		input string
		want  color.RGBA
	}{
		{"pencolour green", color.RGBA{G: 255, A: 255}},
		{"pencolour Gray", color.RGBA{R: 128, G: 128, B: 128, A: 255}},
		{"pencolour navy", color.RGBA{B: 128, A: 255}},
		{"pencolour 10 20 30", color.RGBA{R: 10, G: 20, B: 30, A: 255}},
		{"pen 255 255 0", color.RGBA{R: 255, G: 255, A: 255}},
	}
	for i, tt := range tests {
		s, _ := testSession(t, Deny)
		execAll(t, s, tt.input)
		if got := s.Turtle.State().Color; got != tt.want {
			t.Fatalf("tests[%d] %q - colour %v want %v", i, tt.input, got, tt.want)
		}
	}

	s, out := testSession(t, Deny)
	execAll(t, s, "pu", "penwidth 7", "setspeed 9")
	st := s.Turtle.State()
	if st.PenDown || st.Width != 7 || st.Speed != 9 {
		t.Fatalf("state %s", st)
	}
	if got := strings.Join(*out, "|"); got != "Pen lifted|Pen width set to 7|Speed set to 9" {
		t.Fatalf("statuses %q", got)
	}
	execAll(t, s, "pd")
	if !s.Turtle.State().PenDown {
		t.Fatal("pen still up")
	}
}

func TestShapesKeepPose(t *testing.T) {
	for _, input := range []string{"square 50", "triangle 60", "triangle 3 4 5", "triangle 60 80 100", "circle 40"} {
		s, _ := testSession(t, Deny)
		execAll(t, s, "right 30")
		before := s.Turtle.State()
		execAll(t, s, input)
		after := s.Turtle.State()
		if !near(after.Pos, before.Pos) || after.Heading() != before.Heading() {
			t.Fatalf("%q moved turtle from %s to %s", input, before, after)
		}
		if s.Saved {
			t.Fatalf("%q left drawing saved", input)
		}
	}
}

func TestFixedDrawings(t *testing.T) {
	for _, input := range []string{"olympics", "name", "about"} {
		s, _ := testSession(t, Deny)
		if err := s.Exec(input); err != nil {
			t.Fatalf("%q: %v", input, err)
		}
		if s.Surface.Vector().Len() == 0 {
			t.Fatalf("%q drew nothing", input)
		}
	}
}

func TestConfirmation(t *testing.T) {
	// Nothing to lose: no prompt.
	asked := 0
	s, _ := testSession(t, ConfirmFunc(func(string) bool { asked++; return false }))
	execAll(t, s, "clear")
	if asked != 0 {
		t.Fatalf("prompted %d times on a saved drawing", asked)
	}

	// Denied: drawing and pose survive.
	execAll(t, s, "forward 50", "right 90")
	before := s.Turtle.State()
	strokes := s.Surface.Vector().Len()
	execAll(t, s, "clear", "reset")
	if asked != 2 {
		t.Fatalf("prompted %d times, want 2", asked)
	}
	if s.Turtle.State() != before || s.Surface.Vector().Len() != strokes {
		t.Fatal("denied clear/reset changed the session")
	}
	if last := s.History.Last(); last != "Reset operation cancelled" {
		t.Fatalf("history %q", last)
	}
	if got := strings.Join(s.History.Commands(), "|"); got != "clear|forward 50|right 90" {
		t.Fatalf("replayable commands %q", got)
	}

	// Allowed.
	var prompts []string
	s2, _ := testSession(t, ConfirmFunc(func(p string) bool { prompts = append(prompts, p); return true }))
	execAll(t, s2, "forward 50", "right 90", "clear")
	if s2.Surface.Vector().Len() != 0 {
		t.Fatal("clear kept strokes")
	}
	if s2.Turtle.Heading() != 90 {
		t.Fatal("clear changed heading")
	}
	execAll(t, s2, "reset")
	if s2.Turtle.State() != turtle.DefaultState(s2.Turtle.Bounds()) {
		t.Fatalf("reset left %s", s2.Turtle.State())
	}
	if len(prompts) != 2 || !strings.Contains(prompts[0], "Clear anyway?") || !strings.Contains(prompts[1], "Reset anyway?") {
		t.Fatalf("prompts %q", prompts)
	}
	if s2.Saved {
		t.Fatal("reset marked drawing saved")
	}
}

func TestScriptUsesPolicy(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wipe.txt")
	if err := os.WriteFile(path, []byte("clear\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	prompted := false
	opts := DefaultOptions()
	opts.Confirm = ConfirmFunc(func(string) bool { prompted = true; return true })
	opts.ScriptPolicy = Deny
	s := NewSession(opts)
	defer s.Close()
	execAll(t, s, "forward 20", "loadscript "+path)
	if prompted {
		t.Fatal("script asked the user")
	}
	if s.Surface.Vector().Len() != 1 {
		t.Fatal("script clear was not denied")
	}

	opts.ScriptPolicy = Allow
	s2 := NewSession(opts)
	defer s2.Close()
	execAll(t, s2, "forward 20", "loadscript "+path)
	if s2.Surface.Vector().Len() != 0 {
		t.Fatal("script clear was not allowed")
	}
}

func TestScriptReplayMatchesTyped(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "script.txt")
	script := "// turn and go\nforward 10\n\nright 90\n"
	if err := os.WriteFile(path, []byte(script), 0o644); err != nil {
		t.Fatal(err)
	}

	typed, _ := testSession(t, Deny)
	execAll(t, typed, "forward 10", "right 90")

	replayed, _ := testSession(t, Deny)
	failed, err := replayed.RunFile(path)
	if err != nil || failed != 0 {
		t.Fatalf("replay failed=%d err=%v", failed, err)
	}
	if typed.Turtle.State() != replayed.Turtle.State() {
		t.Fatalf("typed %s, replayed %s", typed.Turtle.State(), replayed.Turtle.State())
	}
	if replayed.Saved {
		t.Fatal("replay left drawing saved")
	}
}

func TestScriptCountsFailures(t *testing.T) {
	s, _ := testSession(t, Deny)
	failed, err := s.RunScript("inline", strings.NewReader("forward 10\nfrobnicate\nforward 9999\nright 90\n"))
	if err != nil {
		t.Fatal(err)
	}
	if failed != 2 {
		t.Fatalf("failed %d", failed)
	}
	if s.Turtle.Heading() != 90 {
		t.Fatal("replay stopped at first failure")
	}
}

func TestSaveScriptRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "history.txt")

	s, _ := testSession(t, Deny)
	execAll(t, s, "pencolour blue", "forward 40", "right 45", "square 30", "help", "penup", "backward 20")
	s.Exec("frobnicate")
	execAll(t, s, "savescript "+path)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "// turtle commands\npencolour blue\nforward 40\nright 45\nsquare 30\npenup\nbackward 20\n"
	if string(data) != want {
		t.Fatalf("script file:\n%s", data)
	}

	s2, _ := testSession(t, Deny)
	execAll(t, s2, "loadscript "+path)
	if s.Turtle.State() != s2.Turtle.State() {
		t.Fatalf("saved from %s, reloaded %s", s.Turtle.State(), s2.Turtle.State())
	}
}

func TestNestedScriptsStop(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "self.txt")
	if err := os.WriteFile(path, []byte("right 1\nloadscript "+path+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, _ := testSession(t, Deny)
	if err := s.Exec("loadscript " + path); err != nil {
		t.Fatal(err)
	}
	if h := s.Turtle.Heading(); h != maxDepth {
		t.Fatalf("heading %g, want %d nested runs", h, maxDepth)
	}
	if !strings.Contains(s.History.String(), "nested deeper") {
		t.Fatal("depth failure not logged")
	}
}

func TestSaveLoadImage(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "drawing")

	s, out := testSession(t, Deny)
	execAll(t, s, "penwidth 4", "square 80", "pencolour 0 128 255", "circle 60")
	if s.Saved {
		t.Fatal("drawing saved before save")
	}
	execAll(t, s, "save "+base)
	if !s.Saved {
		t.Fatal("save did not mark drawing saved")
	}
	if got := (*out)[len(*out)-1]; got != "Drawing saved as "+base+".png" {
		t.Fatalf("status %q", got)
	}

	s2, _ := testSession(t, Deny)
	execAll(t, s2, "forward 10", "load "+base+".png")
	if !s2.Saved {
		t.Fatal("load did not mark drawing saved")
	}
	a, b := s.Surface.Snapshot(), s2.Surface.Snapshot()
	if a.Bounds() != b.Bounds() {
		t.Fatalf("bounds %v vs %v", a.Bounds(), b.Bounds())
	}
	r := a.Bounds()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			ar, ag, ab, aa := a.At(x, y).RGBA()
			br, bg, bb, ba := b.At(x, y).RGBA()
			if ar != br || ag != bg || ab != bb || aa != ba {
				t.Fatalf("pixel (%d,%d) differs", x, y)
			}
		}
	}

	small := DefaultOptions()
	small.Width, small.Height = 100, 100
	s3 := NewSession(small)
	defer s3.Close()
	if err := s3.Exec("load " + base + ".png"); KindOf(err) != IOFailure {
		t.Fatalf("loading a larger image: %v", err)
	}
}

func TestSavedFlag(t *testing.T) {
	s, _ := testSession(t, Allow)
	steps := []struct {
		input string
		saved bool
	}{
		{"penup", true},
		{"right 90", true},
		{"forward 10", false},
		{"save " + filepath.Join(t.TempDir(), "a.bmp"), true},
		{"pencolour red", true},
		{"clear", false},
	}
	for i, st := range steps {
		execAll(t, s, st.input)
		if s.Saved != st.saved {
			t.Fatalf("steps[%d] %q - saved=%v", i, st.input, s.Saved)
		}
	}
}

func TestHelpAndExit(t *testing.T) {
	s, out := testSession(t, Deny)
	execAll(t, s, "help")
	if !strings.HasPrefix((*out)[0], "=== Turtle Graphics Commands ===") {
		t.Fatalf("help %q", (*out)[0])
	}
	if s.Done() {
		t.Fatal("done before exit")
	}
	failed, err := s.RunScript("inline", strings.NewReader("quit\nforward 10\n"))
	if err != nil || failed != 0 {
		t.Fatalf("failed=%d err=%v", failed, err)
	}
	if !s.Done() {
		t.Fatal("quit did not end the session")
	}
	if s.Turtle.Position() != s.Turtle.Bounds().Center() {
		t.Fatal("command after quit ran")
	}
}

func TestBlankAndCommentLines(t *testing.T) {
	s, out := testSession(t, Deny)
	for _, l := range []string{"", "   ", "// nothing here"} {
		if err := s.Exec(l); err != nil {
			t.Fatalf("%q: %v", l, err)
		}
	}
	if len(*out) != 0 || len(s.History.Entries()) != 0 {
		t.Fatal("blank lines produced output")
	}
}

func TestSaveAppendsPngToUnknownExtension(t *testing.T) {
	dir := t.TempDir()
	s, _ := testSession(t, Deny)
	execAll(t, s, "square 20", "save "+filepath.Join(dir, "my.drawing"))
	if _, err := os.Stat(filepath.Join(dir, "my.drawing.png")); err != nil {
		t.Fatalf("drawing not written as png: %v", err)
	}
	if !s.Saved {
		t.Fatal("save did not mark drawing saved")
	}
}

func TestCircleWithPenUp(t *testing.T) {
	s, out := testSession(t, Deny)
	execAll(t, s, "penup", "circle 30")
	if got := (*out)[len(*out)-1]; got != "Pen is up - circle not drawn" {
		t.Fatalf("status %q", got)
	}
	if !s.Saved || s.Surface.Vector().Len() != 0 {
		t.Fatal("pen-up circle changed the drawing")
	}
	execAll(t, s, "pendown", "circle 30")
	if s.Saved || s.Surface.Vector().Len() != 1 {
		t.Fatal("circle with pen down not drawn")
	}
}

func TestHistoryCommand(t *testing.T) {
	s, out := testSession(t, Deny)
	execAll(t, s, "forward 10", "history")
	want := "> forward 10\nMoved forward by 10 pixels\n> history"
	if got := (*out)[len(*out)-1]; got != want {
		t.Fatalf("history shown as %q", got)
	}
	if s.History.Last() != "Displayed history" {
		t.Fatalf("history line %q", s.History.Last())
	}
	if got := strings.Join(s.History.Commands(), "|"); got != "forward 10" {
		t.Fatalf("history recorded for replay: %q", got)
	}
}
