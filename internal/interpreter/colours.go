package interpreter

import (
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// basicColours are the names listed in help. They keep their full
// intensity values, so green is 0,255,0 rather than the SVG keyword.
var basicColours = []struct {
	name string
	c    color.RGBA
}{
	{"red", color.RGBA{R: 255, A: 255}},
	{"green", color.RGBA{G: 255, A: 255}},
	{"blue", color.RGBA{B: 255, A: 255}},
	{"black", color.RGBA{A: 255}},
	{"yellow", color.RGBA{R: 255, G: 255, A: 255}},
	{"cyan", color.RGBA{G: 255, B: 255, A: 255}},
	{"magenta", color.RGBA{R: 255, B: 255, A: 255}},
	{"white", color.RGBA{R: 255, G: 255, B: 255, A: 255}},
	{"gray", color.RGBA{R: 128, G: 128, B: 128, A: 255}},
}

// colourByName looks up a basic colour, then any SVG 1.1 colour keyword.
func colourByName(name string) (color.RGBA, bool) {
	name = strings.ToLower(name)
	for _, b := range basicColours {
		if b.name == name {
			return b.c, true
		}
	}
	c, ok := colornames.Map[name]
	return c, ok
}

func colourList() string {
	names := make([]string, len(basicColours))
	for i, b := range basicColours {
		names[i] = b.name
	}
	return strings.Join(names, ", ")
}

func rgba(r, g, b int) color.RGBA {
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}
}
