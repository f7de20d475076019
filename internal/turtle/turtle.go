package turtle

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"
)

var (
	ErrOffCanvas       = errors.New("off canvas")
	ErrInvalidTriangle = errors.New("sides do not form a triangle")
)

// Canvas is the rendering collaborator the turtle draws on.
type Canvas interface {
	Size() (width, height int)
	DrawLine(from, to Point, s Stroke)
	DrawCircle(center Point, radius float64, s Stroke)
	Clear()
	Snapshot() image.Image
	Restore(img image.Image) error
}

// Turtle owns the pen state and turns primitive moves into canvas draws.
type Turtle struct {
	state  State
	canvas Canvas
	log    *slog.Logger
}

func New(c Canvas, log *slog.Logger) *Turtle {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	t := &Turtle{canvas: c, log: log}
	t.state = DefaultState(t.Bounds())
	return t
}

func (t *Turtle) State() State {
	return t.state
}

func (t *Turtle) Position() Point {
	return t.state.Pos
}

func (t *Turtle) Heading() float64 {
	return t.state.Heading()
}

func (t *Turtle) Bounds() Bounds {
	w, h := t.canvas.Size()
	return Bounds{Width: w, Height: h}
}

// Move goes distance pixels along the heading, or returns ErrOffCanvas
// and leaves the turtle where it is.
func (t *Turtle) Move(distance float64) error {
	to := t.state.Ahead(distance)
	if !t.Bounds().InBounds(to) {
		return fmt.Errorf("%w: %s -> %s", ErrOffCanvas, t.state.Pos, to)
	}
	t.Forward(distance)
	return nil
}

// Forward moves unconditionally. Negative distances move backwards.
func (t *Turtle) Forward(distance float64) {
	from := t.state.Pos
	to := t.state.Ahead(distance)
	if t.state.PenDown {
		t.canvas.DrawLine(from, to, t.state.Stroke())
	}
	t.state.Pos = to
}

func (t *Turtle) Left(degrees float64) {
	t.state.heading = t.state.heading.turn(-toHeading(degrees))
}

func (t *Turtle) Right(degrees float64) {
	t.state.heading = t.state.heading.turn(toHeading(degrees))
}

func (t *Turtle) SetPenDown(down bool) {
	t.state.PenDown = down
}

func (t *Turtle) SetColor(c color.RGBA) {
	t.state.Color = c
}

func (t *Turtle) SetWidth(width int) {
	t.state.Width = width
}

func (t *Turtle) SetSpeed(speed int) {
	t.state.Speed = speed
}

// Circle draws a circle centred on the turtle. Nothing is drawn with the
// pen up.
func (t *Turtle) Circle(radius float64) {
	if !t.state.PenDown {
		return
	}
	t.canvas.DrawCircle(t.state.Pos, radius, t.state.Stroke())
}

// Reset puts the turtle back to the default pose. The drawing is kept.
func (t *Turtle) Reset() {
	t.state = DefaultState(t.Bounds())
}

// Clear erases the drawing without touching the pose.
func (t *Turtle) Clear() {
	t.canvas.Clear()
}

func (t *Turtle) Snapshot() image.Image {
	return t.canvas.Snapshot()
}

// Restore replaces the drawing. The pose is kept but pulled back to the
// centre if the new bounds no longer contain it.
func (t *Turtle) Restore(img image.Image) error {
	if err := t.canvas.Restore(img); err != nil {
		return err
	}
	if b := t.Bounds(); !b.InBounds(t.state.Pos) {
		t.state.Pos = b.Center()
	}
	return nil
}

// Draw dry-runs r on a Recorder and only replays it on the canvas when
// every move stays inside the bounds.
func (t *Turtle) Draw(r Routine) error {
	rec := NewRecorder(t.state, t.Bounds())
	r(rec)
	if rec.Err != nil {
		return rec.Err
	}
	r(t)
	t.log.Debug("routine drawn", "calls", len(rec.Calls), "state", t.state.String())
	return nil
}
