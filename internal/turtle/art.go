package turtle

import (
	"image/color"

	"golang.org/x/image/colornames"
)

type stepOp int

const (
	opForward stepOp = iota
	opLeft
	opRight
	opPen
	opColour
	opWidth
	opSpeed
	opCircle
	opReset
)

// Palette indices used by the fixed scripts.
const (
	blue = iota
	gray
	red
	green
	yellow
	magenta
	cyan
	white
)

var palette = []color.RGBA{
	blue:    colornames.Blue,
	gray:    colornames.Gray,
	red:     colornames.Red,
	green:   colornames.Lime,
	yellow:  colornames.Yellow,
	magenta: colornames.Magenta,
	cyan:    colornames.Cyan,
	white:   colornames.White,
}

type step struct {
	op  stepOp
	arg float64
}

func play(steps []step) Routine {
	return func(p Pen) {
		for _, s := range steps {
			switch s.op {
			case opForward:
				p.Forward(s.arg)
			case opLeft:
				p.Left(s.arg)
			case opRight:
				p.Right(s.arg)
			case opPen:
				p.SetPenDown(s.arg != 0)
			case opColour:
				p.SetColor(palette[int(s.arg)])
			case opWidth:
				p.SetWidth(int(s.arg))
			case opSpeed:
				p.SetSpeed(int(s.arg))
			case opCircle:
				p.Circle(s.arg)
			case opReset:
				p.Reset()
			}
		}
	}
}

// Olympics draws the five rings from a reset pose. It fits an 800x400
// canvas.
func Olympics() Routine {
	return play(olympicSteps)
}

// NameArt draws the author's name in block letters from a reset pose.
func NameArt() Routine {
	return play(nameSteps)
}

var olympicSteps = []step{
	{opSpeed, 1}, {opReset, 0}, {opPen, 0}, {opWidth, 5}, {opPen, 0},
	{opRight, 90}, {opForward, 200}, {opRight, 90}, {opForward, 30}, {opColour, blue},
	{opPen, 1}, {opCircle, 90}, {opPen, 0}, {opRight, 90}, {opForward, 120},
	{opLeft, 90}, {opLeft, 90}, {opForward, -80}, {opPen, 1}, {opColour, gray},
	{opCircle, 90}, {opPen, 0}, {opRight, 90}, {opRight, 90}, {opForward, 200},
	{opLeft, 90}, {opLeft, 90}, {opPen, 1}, {opColour, red}, {opCircle, 90},
	{opPen, 0}, {opForward, 100}, {opLeft, 90}, {opForward, 90}, {opRight, 90},
	{opRight, 90}, {opPen, 1}, {opColour, green}, {opCircle, 90}, {opLeft, 90},
	{opPen, 0}, {opForward, 210}, {opRight, 90}, {opPen, 1}, {opColour, yellow},
	{opCircle, 90}, {opPen, 0}, {opForward, -30}, {opLeft, 90}, {opForward, 220},
	{opLeft, 90},
}

var nameSteps = []step{
	{opSpeed, 1}, {opReset, 0}, {opPen, 0}, {opColour, magenta}, {opWidth, 3},
	{opRight, 90}, {opForward, 250}, {opRight, 90}, {opPen, 1}, {opForward, 100},
	{opRight, 90}, {opForward, 50}, {opRight, 90}, {opForward, 100}, {opForward, -50},
	{opRight, 90}, {opForward, 50}, {opPen, 0}, {opColour, green}, {opForward, -50},
	{opLeft, 90}, {opForward, 50}, {opLeft, 90}, {opForward, 40}, {opLeft, 90},
	{opPen, 1}, {opForward, 50}, {opLeft, 30}, {opForward, 55}, {opForward, -55},
	{opRight, 60}, {opForward, 55}, {opForward, -55}, {opPen, 0}, {opColour, red},
	{opRight, 60}, {opForward, 40}, {opPen, 1}, {opLeft, 90}, {opForward, -50},
	{opForward, 100}, {opForward, -100}, {opRight, 90}, {opForward, 50}, {opLeft, 90},
	{opForward, 100}, {opForward, -100}, {opPen, 0}, {opRight, 90}, {opForward, 30},
	{opLeft, 90}, {opForward, 100}, {opRight, 90}, {opForward, 30}, {opLeft, 90},
	{opLeft, 90}, {opPen, 1}, {opColour, blue}, {opForward, 40}, {opLeft, 90},
	{opForward, 40}, {opRight, 90}, {opRight, 90}, {opRight, 90}, {opForward, 40},
	{opRight, 90}, {opForward, 60}, {opRight, 90}, {opForward, 45}, {opPen, 0},
	{opRight, 90}, {opRight, 90}, {opForward, 60}, {opColour, cyan}, {opLeft, 90},
	{opPen, 1}, {opForward, 100}, {opRight, 90}, {opRight, 90}, {opPen, 0},
	{opForward, 50}, {opLeft, 90}, {opPen, 1}, {opForward, 40}, {opLeft, 90},
	{opForward, 50}, {opRight, 90}, {opRight, 90}, {opPen, 0}, {opForward, 50},
	{opPen, 1}, {opForward, 50}, {opPen, 0}, {opLeft, 90}, {opForward, 20},
	{opLeft, 90}, {opPen, 1}, {opColour, yellow}, {opForward, 100}, {opRight, 90},
	{opForward, 25}, {opRight, 20}, {opForward, 10}, {opRight, 20}, {opForward, 10},
	{opRight, 20}, {opForward, 10}, {opRight, 20}, {opForward, 10}, {opRight, 20},
	{opForward, 10}, {opRight, 20}, {opForward, 10}, {opRight, 20}, {opForward, 10},
	{opRight, 20}, {opForward, 10}, {opRight, 20}, {opForward, 10}, {opLeft, 140},
	{opForward, 70}, {opPen, 0}, {opLeft, 40}, {opForward, 45}, {opLeft, 90},
	{opForward, 93}, {opLeft, 90}, {opPen, 1}, {opColour, white}, {opForward, 47},
	{opLeft, 90}, {opForward, 44}, {opLeft, 90}, {opForward, 47}, {opPen, 0},
	{opLeft, 90}, {opLeft, 90}, {opForward, 47}, {opLeft, 90}, {opPen, 1},
	{opForward, 51}, {opLeft, 90}, {opForward, 47}, {opPen, 0}, {opForward, 28},
	{opLeft, 90}, {opForward, 93}, {opRight, 90}, {opForward, 47}, {opLeft, 90},
	{opLeft, 90}, {opPen, 1}, {opForward, 50}, {opLeft, 90}, {opForward, 47},
	{opLeft, 90}, {opForward, 50}, {opLeft, 90}, {opLeft, 90}, {opPen, 0},
	{opForward, 50}, {opLeft, 90}, {opPen, 1}, {opForward, 47}, {opLeft, 90},
	{opForward, 50},
}
