package interpreter

import (
	"fmt"
	"io"

	"turtlegraphics/internal/turtle"
)

// Sink receives the status message of every command.
type Sink interface {
	Status(msg string)
}

// WriterSink prints each status on its own line.
type WriterSink struct {
	W io.Writer
}

func (w WriterSink) Status(msg string) {
	fmt.Fprintln(w.W, msg)
}

type discard struct{}

func (discard) Status(string) {}

// Display prints the turtle pose and pen settings.
func Display(w io.Writer, st turtle.State) {
	pen := "up"
	if st.PenDown {
		pen = "down"
	}
	c := st.Color
	fmt.Fprintf(w, "Turtle at %s heading %g°\n", st.Pos, st.Heading())
	fmt.Fprintf(w, "Pen %s, colour RGB(%d,%d,%d), width %d, speed %d\n", pen, c.R, c.G, c.B, st.Width, st.Speed)
}
