// Package canvas renders turtle strokes onto a gg raster and keeps a
// vector log of the same strokes for SVG export.
package canvas

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"github.com/gogpu/gg"

	"turtlegraphics/internal/turtle"
)

// Surface is the turtle.Canvas backed by a gg.Context.
type Surface struct {
	dc     *gg.Context
	bg     color.RGBA
	vector *Vector
	log    *slog.Logger
}

var _ turtle.Canvas = (*Surface)(nil)

// New returns a width x height surface filled with bg.
func New(width, height int, bg color.RGBA, log *slog.Logger) *Surface {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	s := &Surface{
		dc:     gg.NewContext(width, height),
		bg:     bg,
		vector: NewVector(width, height, bg),
		log:    log,
	}
	s.dc.SetLineCap(gg.LineCapRound)
	s.dc.ClearWithColor(gg.FromColor(bg))
	return s
}

func (s *Surface) Size() (int, int) {
	return s.dc.Width(), s.dc.Height()
}

func (s *Surface) Vector() *Vector {
	return s.vector
}

func (s *Surface) DrawLine(from, to turtle.Point, st turtle.Stroke) {
	s.dc.SetColor(st.Color)
	s.dc.SetLineWidth(float64(st.Width))
	s.dc.DrawLine(from.X, from.Y, to.X, to.Y)
	if err := s.dc.Stroke(); err != nil {
		s.log.Warn("stroke line", "from", from.String(), "to", to.String(), "err", err)
	}
	s.vector.Line(from, to, st)
}

func (s *Surface) DrawCircle(center turtle.Point, radius float64, st turtle.Stroke) {
	s.dc.SetColor(st.Color)
	s.dc.SetLineWidth(float64(st.Width))
	s.dc.DrawCircle(center.X, center.Y, radius)
	if err := s.dc.Stroke(); err != nil {
		s.log.Warn("stroke circle", "center", center.String(), "r", radius, "err", err)
	}
	s.vector.Circle(center, radius, st)
}

func (s *Surface) Clear() {
	s.dc.ClearWithColor(gg.FromColor(s.bg))
	s.vector.Reset()
}

// Snapshot returns a copy of the pixels.
func (s *Surface) Snapshot() image.Image {
	return s.dc.Image()
}

// Restore replaces the pixels with img. The image must match the surface
// size. The vector log restarts empty since a raster cannot be replayed as
// strokes.
func (s *Surface) Restore(img image.Image) error {
	w, h := s.Size()
	if b := img.Bounds(); b.Dx() != w || b.Dy() != h {
		return fmt.Errorf("image is %dx%d, canvas is %dx%d", b.Dx(), b.Dy(), w, h)
	}
	old := s.dc
	s.dc = gg.NewContextForImage(img)
	s.dc.SetLineCap(gg.LineCapRound)
	if err := old.Close(); err != nil {
		s.log.Warn("close replaced context", "err", err)
	}
	s.vector.Reset()
	return nil
}

// Close releases the drawing context.
func (s *Surface) Close() error {
	return s.dc.Close()
}
