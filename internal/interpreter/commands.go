package interpreter

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"turtlegraphics/internal/canvas"
	"turtlegraphics/internal/turtle"
)

type result struct {
	msg       string
	log       string
	cancelled bool
}

func done(msg string) result {
	return result{msg: msg, log: msg}
}

type command struct {
	names    []string
	min, max int
	usage    string
	run      func(s *Session, args []string) (result, *Error)

	// dirty commands change the drawing.
	dirty bool
	// replay commands are written out by savescript.
	replay bool
}

func (c *command) checkArity(args []string) *Error {
	switch {
	case len(args) < c.min:
		return newError(MissingArgument, c.usage, "Missing parameter for "+c.names[0])
	case len(args) > c.max:
		return newError(ParseError, c.usage, "Invalid "+c.names[0]+" command syntax")
	}
	return nil
}

var commands = []*command{
	{names: []string{"forward", "move"}, min: 1, max: 1, usage: "Syntax: forward <distance>",
		run: func(s *Session, args []string) (result, *Error) { return s.move(args[0], 1, "forward") },
		dirty: true, replay: true},
	{names: []string{"backward", "reverse"}, min: 1, max: 1, usage: "Syntax: backward <distance>",
		run: func(s *Session, args []string) (result, *Error) { return s.move(args[0], -1, "backward") },
		dirty: true, replay: true},
	{names: []string{"right", "rt"}, max: 1, usage: "Syntax: right [degrees]",
		run: func(s *Session, args []string) (result, *Error) { return s.turn(args, s.Turtle.Right, "right") },
		replay: true},
	{names: []string{"left", "lt"}, max: 1, usage: "Syntax: left [degrees]",
		run: func(s *Session, args []string) (result, *Error) { return s.turn(args, s.Turtle.Left, "left") },
		replay: true},
	{names: []string{"penup", "pu"}, usage: "Syntax: penup",
		run: func(s *Session, _ []string) (result, *Error) {
			s.Turtle.SetPenDown(false)
			return done("Pen lifted"), nil
		},
		replay: true},
	{names: []string{"pendown", "pd"}, usage: "Syntax: pendown",
		run: func(s *Session, _ []string) (result, *Error) {
			s.Turtle.SetPenDown(true)
			return done("Pen lowered"), nil
		},
		replay: true},
	{names: []string{"penwidth"}, min: 1, max: 1, usage: "Syntax: penwidth <size>",
		run: func(s *Session, args []string) (result, *Error) {
			w, e := widthParam.parse(args[0])
			if e != nil {
				return result{}, e
			}
			s.Turtle.SetWidth(w)
			return result{msg: fmt.Sprintf("Pen width set to %d", w), log: fmt.Sprintf("Set pen width to %d", w)}, nil
		},
		replay: true},
	{names: []string{"pencolour", "pencolor", "pen"}, min: 1, max: 3,
		usage: "Syntax: pencolour <colorName> OR pencolour <r> <g> <b>",
		run:   (*Session).penColour, replay: true},
	{names: []string{"circle"}, min: 1, max: 1, usage: "Syntax: circle <radius>",
		run: func(s *Session, args []string) (result, *Error) {
			r, e := radiusParam.parse(args[0])
			if e != nil {
				return result{}, e
			}
			if !s.Turtle.State().PenDown {
				return done("Pen is up - circle not drawn"), nil
			}
			s.Turtle.Circle(float64(r))
			s.Saved = false
			return done(fmt.Sprintf("Drawn circle with radius %d", r)), nil
		},
		replay: true},
	{names: []string{"square"}, min: 1, max: 1, usage: "Syntax: square <size>",
		run: func(s *Session, args []string) (result, *Error) {
			n, e := sizeParam.parse(args[0])
			if e != nil {
				return result{}, e
			}
			if e := s.draw(turtle.Square(float64(n)), "Square"); e != nil {
				return result{}, e
			}
			return done(fmt.Sprintf("Drawn square with size %d", n)), nil
		},
		dirty: true, replay: true},
	{names: []string{"triangle"}, min: 1, max: 3,
		usage: "Syntax: triangle <size> OR triangle <side1> <side2> <side3>",
		run:   (*Session).triangle, dirty: true, replay: true},
	{names: []string{"olympics"}, usage: "Syntax: olympics",
		run: func(s *Session, _ []string) (result, *Error) {
			if e := s.draw(turtle.Olympics(), "Olympics logo"); e != nil {
				return result{}, e
			}
			return done("Olympics logo Drawn"), nil
		},
		dirty: true, replay: true},
	{names: []string{"name", "about"}, usage: "Syntax: name",
		run: func(s *Session, _ []string) (result, *Error) {
			if e := s.draw(turtle.NameArt(), "Name"); e != nil {
				return result{}, e
			}
			return done("Name Drawn"), nil
		},
		dirty: true, replay: true},
	{names: []string{"setspeed"}, min: 1, max: 1, usage: "Syntax: setspeed <1-10>",
		run: func(s *Session, args []string) (result, *Error) {
			n, e := speedParam.parse(args[0])
			if e != nil {
				return result{}, e
			}
			s.Turtle.SetSpeed(n)
			return result{msg: fmt.Sprintf("Speed set to %d", n), log: fmt.Sprintf("Set speed to %d", n)}, nil
		},
		replay: true},
	{names: []string{"clear"}, usage: "Syntax: clear",
		run: func(s *Session, _ []string) (result, *Error) {
			if !s.mayDiscard("Current image is not saved. Clear anyway?") {
				return result{msg: "Clear operation cancelled", log: "Clear operation cancelled", cancelled: true}, nil
			}
			s.Turtle.Clear()
			s.Saved = false
			return done("Canvas cleared"), nil
		},
		replay: true},
	{names: []string{"reset"}, usage: "Syntax: reset",
		run: func(s *Session, _ []string) (result, *Error) {
			if !s.mayDiscard("Current image is not saved. Reset anyway?") {
				return result{msg: "Reset operation cancelled", log: "Reset operation cancelled", cancelled: true}, nil
			}
			s.Turtle.Reset()
			s.Saved = false
			return done("Turtle reset"), nil
		},
		replay: true},
	{names: []string{"save"}, min: 1, max: 1, usage: "Syntax: save <filename>", run: (*Session).saveImage},
	{names: []string{"load"}, min: 1, max: 1, usage: "Syntax: load <filename>", run: (*Session).loadImage},
	{names: []string{"savescript"}, min: 1, max: 1, usage: "Syntax: savescript <filename>", run: (*Session).saveScript},
	{names: []string{"loadscript"}, min: 1, max: 1, usage: "Syntax: loadscript <filename>", run: (*Session).loadScript},
	{names: []string{"help"}, usage: "Syntax: help",
		run: func(s *Session, _ []string) (result, *Error) {
			return result{msg: helpText, log: "Displayed help"}, nil
		}},
	{names: []string{"history"}, usage: "Syntax: history",
		run: func(s *Session, _ []string) (result, *Error) {
			return result{msg: s.History.String(), log: "Displayed history"}, nil
		}},
	{names: []string{"exit", "quit"}, usage: "Syntax: exit",
		run: func(s *Session, _ []string) (result, *Error) {
			s.done = true
			return result{msg: "Goodbye", log: "Session ended"}, nil
		}},
}

var commandIndex map[string]*command

func init() {
	commandIndex = make(map[string]*command)
	for _, c := range commands {
		for _, n := range c.names {
			commandIndex[n] = c
		}
	}
}

func lookup(name string) (*command, bool) {
	c, ok := commandIndex[strings.ToLower(name)]
	return c, ok
}

// move walks sign*distance, refusing moves that would leave the canvas.
func (s *Session) move(arg string, sign float64, verb string) (result, *Error) {
	d, e := distanceParam.parse(arg)
	if e != nil {
		return result{}, e
	}
	if err := s.Turtle.Move(sign * float64(d)); err != nil {
		return result{}, wrapError(OffCanvas, err, "Cannot move turtle off screen", "Movement would take turtle off screen")
	}
	return done(fmt.Sprintf("Moved %s by %d pixels", verb, d)), nil
}

func (s *Session) turn(args []string, fn func(float64), verb string) (result, *Error) {
	deg := 90
	if len(args) == 1 {
		var e *Error
		if deg, e = angleParam.parse(args[0]); e != nil {
			return result{}, e
		}
	}
	fn(float64(deg))
	return done(fmt.Sprintf("Turned %s by %d degrees", verb, deg)), nil
}

func (s *Session) penColour(args []string) (result, *Error) {
	switch len(args) {
	case 1:
		c, ok := colourByName(args[0])
		if !ok {
			return result{}, newError(ParseError, "Available colors: "+colourList(), "Unknown colour "+args[0])
		}
		s.Turtle.SetColor(c)
		name := strings.ToLower(args[0])
		return result{msg: "Pen color: " + name, log: "Set pen color to " + name}, nil
	case 3:
		rgb, e := rgbParam.parseAll(args)
		if e != nil {
			return result{}, e
		}
		s.Turtle.SetColor(rgba(rgb[0], rgb[1], rgb[2]))
		v := fmt.Sprintf("RGB(%d,%d,%d)", rgb[0], rgb[1], rgb[2])
		return result{msg: "Pen color set to " + v, log: "Set pen color to " + v}, nil
	}
	return result{}, newError(ParseError, "Syntax: pencolour <colorName> OR pencolour <r> <g> <b>", "Invalid pencolour command syntax")
}

func (s *Session) triangle(args []string) (result, *Error) {
	switch len(args) {
	case 1:
		n, e := sizeParam.parse(args[0])
		if e != nil {
			return result{}, e
		}
		if e := s.draw(turtle.EquilateralTriangle(float64(n)), "Triangle"); e != nil {
			return result{}, e
		}
		return done(fmt.Sprintf("Drawn equilateral triangle with size %d", n)), nil
	case 3:
		sides, e := sideParam.parseAll(args)
		if e != nil {
			return result{}, e
		}
		a, b, c := float64(sides[0]), float64(sides[1]), float64(sides[2])
		r, err := turtle.Triangle(a, b, c)
		if err != nil {
			return result{}, wrapError(InvalidGeometry, err,
				"Invalid triangle - sum of any two sides must be greater than the third",
				"Invalid triangle sides provided")
		}
		if e := s.draw(r, "Triangle"); e != nil {
			return result{}, e
		}
		return done(fmt.Sprintf("Drawn triangle with sides %d, %d, %d", sides[0], sides[1], sides[2])), nil
	}
	return result{}, newError(ParseError, "Syntax: triangle <size> OR triangle <side1> <side2> <side3>", "Invalid triangle command syntax")
}

// draw runs a composite routine, which only touches the turtle when the
// whole figure fits.
func (s *Session) draw(r turtle.Routine, what string) *Error {
	if err := s.Turtle.Draw(r); err != nil {
		if errors.Is(err, turtle.ErrOffCanvas) {
			return wrapError(OffCanvas, err, what+" would go off screen", what+" would take turtle off screen")
		}
		return wrapError(InvalidGeometry, err, err.Error(), err.Error())
	}
	return nil
}

func (s *Session) saveImage(args []string) (result, *Error) {
	path := canvas.WithDefaultExt(args[0])
	if err := canvas.Save(path, s.Surface); err != nil {
		msg := "Error saving: " + err.Error()
		return result{}, wrapError(IOFailure, err, msg, msg)
	}
	s.Saved = true
	s.log.Info("drawing saved", "path", path)
	return done("Drawing saved as " + path), nil
}

func (s *Session) loadImage(args []string) (result, *Error) {
	path := args[0]
	img, err := canvas.Load(path)
	if err == nil {
		err = s.Turtle.Restore(img)
	}
	if err != nil {
		msg := "Error loading: " + err.Error()
		return result{}, wrapError(IOFailure, err, msg, msg)
	}
	s.Saved = true
	s.log.Info("drawing loaded", "path", path)
	return done("Drawing loaded from " + path), nil
}

func (s *Session) saveScript(args []string) (result, *Error) {
	path := args[0]
	err := writeFile(path, s.History.WriteScript)
	if err != nil {
		return result{}, wrapError(IOFailure, err,
			"Error saving text file: "+err.Error(), "Error saving command history: "+err.Error())
	}
	s.log.Info("script saved", "path", path, "commands", len(s.History.Commands()))
	return result{msg: "Command history saved as " + path, log: "Saved command history to: " + path}, nil
}

func (s *Session) loadScript(args []string) (result, *Error) {
	path := args[0]
	failed, err := s.RunFile(path)
	if err != nil {
		return result{}, wrapError(IOFailure, err,
			"Error loading text file: "+err.Error(), "Error loading commands: "+err.Error())
	}
	msg := "Commands loaded from " + path
	if failed > 0 {
		msg = fmt.Sprintf("%s (%d failed)", msg, failed)
	}
	return result{msg: msg, log: "Loaded commands from: " + path}, nil
}

// writeFile creates path and hands it to write, removing it again if
// anything fails.
func writeFile(path string, write func(w io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(path)
		}
	}()
	return write(f)
}
