package canvas

import (
	"fmt"
	"image/color"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"turtlegraphics/internal/turtle"
)

type shapeKind int

const (
	shapeLine shapeKind = iota
	shapeCircle
)

type shape struct {
	kind   shapeKind
	from   turtle.Point
	to     turtle.Point
	radius float64
	stroke turtle.Stroke
}

// Vector is an ordered log of the strokes drawn since the last clear.
type Vector struct {
	width, height int
	bg            color.RGBA
	shapes        []shape
}

func NewVector(width, height int, bg color.RGBA) *Vector {
	return &Vector{width: width, height: height, bg: bg}
}

func (v *Vector) Line(from, to turtle.Point, st turtle.Stroke) {
	v.shapes = append(v.shapes, shape{kind: shapeLine, from: from, to: to, stroke: st})
}

func (v *Vector) Circle(center turtle.Point, radius float64, st turtle.Stroke) {
	v.shapes = append(v.shapes, shape{kind: shapeCircle, from: center, radius: radius, stroke: st})
}

func (v *Vector) Reset() {
	v.shapes = v.shapes[:0]
}

func (v *Vector) Len() int {
	return len(v.shapes)
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func px(f float64) int {
	return int(math.Round(f))
}

// WriteSVG encodes the log as an SVG document of the canvas size.
func (v *Vector) WriteSVG(w io.Writer) error {
	cw := &errWriter{w: w}
	doc := svg.New(cw)
	doc.Start(v.width, v.height)
	doc.Title("turtle drawing")
	doc.Rect(0, 0, v.width, v.height, "fill:"+hex(v.bg))
	doc.Gstyle("fill:none;stroke-linecap:round")
	for _, s := range v.shapes {
		style := fmt.Sprintf("stroke:%s;stroke-width:%d", hex(s.stroke.Color), s.stroke.Width)
		switch s.kind {
		case shapeLine:
			doc.Line(px(s.from.X), px(s.from.Y), px(s.to.X), px(s.to.Y), style)
		case shapeCircle:
			doc.Circle(px(s.from.X), px(s.from.Y), px(s.radius), style)
		}
	}
	doc.Gend()
	doc.End()
	return cw.err
}

// errWriter keeps the first write error; svgo drops them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
