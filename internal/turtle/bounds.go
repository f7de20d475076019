package turtle

// Bounds is the drawable area [0,Width] x [0,Height].
type Bounds struct {
	Width, Height int
}

// slack absorbs the float and micro-degree heading error of a shape that
// returns to the edge it started on. It is far below a pixel.
const slack = 1e-4

func (b Bounds) InBounds(p Point) bool {
	return p.X >= -slack && p.X <= float64(b.Width)+slack &&
		p.Y >= -slack && p.Y <= float64(b.Height)+slack
}

func (b Bounds) Center() Point {
	return Point{X: float64(b.Width) / 2, Y: float64(b.Height) / 2}
}
