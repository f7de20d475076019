package interpreter

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies why a command was rejected.
type Kind int

const (
	ParseError Kind = iota + 1
	MissingArgument
	OutOfRange
	OffCanvas
	InvalidGeometry
	UnknownCommand
	IOFailure
)

var kindNames = map[Kind]string{
	ParseError:      "ParseError",
	MissingArgument: "MissingArgument",
	OutOfRange:      "OutOfRange",
	OffCanvas:       "OffCanvas",
	InvalidGeometry: "InvalidGeometry",
	UnknownCommand:  "UnknownCommand",
	IOFailure:       "IOFailure",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is a rejected command. Msg is the status shown to the user and Log
// the history line; the turtle is untouched whenever an Error is returned.
type Error struct {
	Kind Kind
	Msg  string
	Log  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(k Kind, msg, log string) *Error {
	if !strings.HasPrefix(log, "Error") {
		log = "Error: " + log
	}
	return &Error{Kind: k, Msg: msg, Log: log}
}

func wrapError(k Kind, err error, msg, log string) *Error {
	e := newError(k, msg, log)
	e.Err = err
	return e
}

// KindOf returns the Kind of err, or 0 when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
