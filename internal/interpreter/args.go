package interpreter

import (
	"fmt"
	"strconv"
)

// param is an integer argument with an inclusive range and the messages
// used when a value falls outside it.
type param struct {
	name     string
	min, max int
	rangeMsg string
	rangeLog string
}

var (
	distanceParam = param{"distance", -1000, 1000,
		"Distance too large (max 1000 pixels)", "Distance exceeds maximum allowed"}
	angleParam = param{"angle", -360, 360,
		"Angle must be between -360 and 360 degrees", "Invalid angle specified"}
	radiusParam = param{"radius", 1, 500,
		"Radius must be between 1 and 500 pixels", "Invalid radius size"}
	sizeParam = param{"size", 1, 500,
		"Size must be between 1 and 500 pixels", "Invalid shape size"}
	sideParam = param{"side", 1, 500,
		"Sides must be between 1 and 500 pixels", "Invalid triangle side length"}
	widthParam = param{"width", 1, 100,
		"Pen width must be between 1 and 100 pixels", "Invalid pen width"}
	speedParam = param{"speed", 1, 10,
		"Speed must be between 1 and 10", "Invalid speed"}
	rgbParam = param{"colour", 0, 255,
		"Need 3 numbers (0-255)", "Need 3 numbers (0-255) for RGB"}
)

func (p param) atoi(arg string) (int, *Error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, wrapError(ParseError, err,
			fmt.Sprintf("Invalid %s - must be integer", p.name),
			fmt.Sprintf("Invalid %s format", p.name))
	}
	return n, nil
}

func (p param) check(n int) *Error {
	if n < p.min || n > p.max {
		return newError(OutOfRange, p.rangeMsg, p.rangeLog)
	}
	return nil
}

func (p param) parse(arg string) (int, *Error) {
	n, e := p.atoi(arg)
	if e != nil {
		return 0, e
	}
	return n, p.check(n)
}

// parseAll parses every argument before range checking any of them, so a
// malformed number is reported ahead of an out-of-range one.
func (p param) parseAll(args []string) ([]int, *Error) {
	out := make([]int, len(args))
	for i, a := range args {
		n, e := p.atoi(a)
		if e != nil {
			return nil, e
		}
		out[i] = n
	}
	for _, n := range out {
		if e := p.check(n); e != nil {
			return nil, e
		}
	}
	return out, nil
}
