package turtle

import (
	"fmt"
	"image/color"
	"math"
)

// Point is a position on the canvas in pixels. Y grows downwards.
type Point struct {
	X, Y float64
}

func (p Point) String() string {
	return fmt.Sprintf("(%.1f,%.1f)", p.X, p.Y)
}

// Stroke is the pen style a segment or circle is drawn with.
type Stroke struct {
	Color color.RGBA
	Width int
}

// heading is stored in millionths of a degree, always in [0, fullTurn).
// Integer turns are exact and a full set of exterior turns returns to the
// starting value bit for bit.
type heading int64

const (
	headingScale          = 1_000_000
	fullTurn      heading = 360 * headingScale
	DefaultWidth          = 2
	DefaultSpeed          = 5
	MinSpeed              = 1
	MaxSpeed              = 10
)

// DefaultColor is the pen colour a fresh or reset turtle draws with.
var DefaultColor = color.RGBA{R: 255, A: 255}

func toHeading(deg float64) heading {
	return heading(math.Round(deg * headingScale))
}

func (h heading) turn(delta heading) heading {
	h = (h + delta) % fullTurn
	if h < 0 {
		h += fullTurn
	}
	return h
}

func (h heading) degrees() float64 {
	return float64(h) / headingScale
}

// State is the full turtle pose and pen configuration.
type State struct {
	Pos     Point
	heading heading
	PenDown bool
	Color   color.RGBA
	Width   int
	Speed   int
}

// DefaultState returns the pose a turtle has after Reset on a canvas of
// the given bounds: centred, heading up, pen down, red, width 2.
func DefaultState(b Bounds) State {
	return State{
		Pos:     b.Center(),
		PenDown: true,
		Color:   DefaultColor,
		Width:   DefaultWidth,
		Speed:   DefaultSpeed,
	}
}

// Heading returns the direction of travel in degrees, 0 = up, clockwise.
func (s State) Heading() float64 {
	return s.heading.degrees()
}

// Stroke returns the current pen style.
func (s State) Stroke() Stroke {
	return Stroke{Color: s.Color, Width: s.Width}
}

// Ahead projects a move of distance pixels along the current heading.
func (s State) Ahead(distance float64) Point {
	rad := s.Heading() * math.Pi / 180
	return Point{
		X: s.Pos.X + distance*math.Sin(rad),
		Y: s.Pos.Y - distance*math.Cos(rad),
	}
}

func (s State) String() string {
	pen := "up"
	if s.PenDown {
		pen = "down"
	}
	return fmt.Sprintf("pos=%s heading=%g pen=%s colour=#%02x%02x%02x width=%d speed=%d",
		s.Pos, s.Heading(), pen, s.Color.R, s.Color.G, s.Color.B, s.Width, s.Speed)
}
