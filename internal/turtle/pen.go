package turtle

import (
	"fmt"
	"image/color"
)

// Pen is the set of primitives a composite routine may use. Turtle draws
// with them; Recorder only follows the pose so a routine can be checked
// before anything is drawn.
type Pen interface {
	Forward(distance float64)
	Left(degrees float64)
	Right(degrees float64)
	SetPenDown(down bool)
	SetColor(c color.RGBA)
	SetWidth(width int)
	SetSpeed(speed int)
	Circle(radius float64)
	Reset()
}

// Routine is a fixed sequence of Pen calls.
type Routine func(p Pen)

// Call is one primitive invocation seen by a Recorder.
type Call struct {
	Op  string
	Arg float64
}

func (c Call) String() string {
	return fmt.Sprintf("%s(%g)", c.Op, c.Arg)
}

// Recorder is a Pen that tracks the pose a routine would produce and the
// calls it made, without drawing. The first move that would leave the
// bounds is kept in Err.
type Recorder struct {
	State  State
	Bounds Bounds
	Calls  []Call
	Err    error
}

func NewRecorder(s State, b Bounds) *Recorder {
	return &Recorder{State: s, Bounds: b}
}

func (r *Recorder) record(op string, arg float64) {
	r.Calls = append(r.Calls, Call{Op: op, Arg: arg})
}

func (r *Recorder) Forward(distance float64) {
	r.record("forward", distance)
	to := r.State.Ahead(distance)
	if r.Err == nil && !r.Bounds.InBounds(to) {
		r.Err = fmt.Errorf("%w: %s -> %s", ErrOffCanvas, r.State.Pos, to)
	}
	r.State.Pos = to
}

func (r *Recorder) Left(degrees float64) {
	r.record("left", degrees)
	r.State.heading = r.State.heading.turn(-toHeading(degrees))
}

func (r *Recorder) Right(degrees float64) {
	r.record("right", degrees)
	r.State.heading = r.State.heading.turn(toHeading(degrees))
}

func (r *Recorder) SetPenDown(down bool) {
	arg := 0.0
	if down {
		arg = 1
	}
	r.record("pen", arg)
	r.State.PenDown = down
}

func (r *Recorder) SetColor(c color.RGBA) {
	r.record("colour", float64(uint32(c.R)<<16|uint32(c.G)<<8|uint32(c.B)))
	r.State.Color = c
}

func (r *Recorder) SetWidth(width int) {
	r.record("width", float64(width))
	r.State.Width = width
}

func (r *Recorder) SetSpeed(speed int) {
	r.record("speed", float64(speed))
	r.State.Speed = speed
}

func (r *Recorder) Circle(radius float64) {
	r.record("circle", radius)
}

func (r *Recorder) Reset() {
	r.record("reset", 0)
	r.State = DefaultState(r.Bounds)
}

// Count returns how many calls of op with argument arg were recorded.
func (r *Recorder) Count(op string, arg float64) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op && c.Arg == arg {
			n++
		}
	}
	return n
}
