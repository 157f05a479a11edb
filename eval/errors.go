package eval

import (
	"errors"
	"fmt"

	"github.com/sstlang/sst/ast"
)

// Kind identifies the variant of an evaluation [Error].
type Kind int

const (
	// WrongMacroArgCount was produced by a macro call whose positional
	// argument count does not match the macro's declared arity.
	WrongMacroArgCount Kind = iota
	// WrongDefArgCount was produced by a \def that does not have exactly
	// two positional arguments (name, body).
	WrongDefArgCount
	// InvalidMacroName was produced when a \def's name argument does not
	// start with literal text.
	InvalidMacroName
	// BadArity was produced by an arity= named argument on \def that is
	// not a plain non-negative integer.
	BadArity
	// BadStrip was produced by a \strip that does not have exactly one
	// positional argument.
	BadStrip
	// BadInclude was produced by an \include or \includeraw whose
	// filename argument is missing or not plain text.
	BadInclude
	// UnknownBase was produced by an \include or \includeraw appearing in
	// a Doc with no associated filename, so there is no directory to
	// resolve the included path against.
	UnknownBase
	// IOError was produced when the filesystem read for an \include or
	// \includeraw failed.
	IOError
)

func (k Kind) String() string {
	switch k {
	case WrongMacroArgCount:
		return "WrongMacroArgCount"
	case WrongDefArgCount:
		return "WrongDefArgCount"
	case InvalidMacroName:
		return "InvalidMacroName"
	case BadArity:
		return "BadArity"
	case BadStrip:
		return "BadStrip"
	case BadInclude:
		return "BadInclude"
	case UnknownBase:
		return "UnknownBase"
	case IOError:
		return "IOError"
	default:
		return "Unknown"
	}
}

// ErrEval is the sentinel every [Error] wraps, for use with [errors.Is].
var ErrEval = errors.New("evaluation error")

// Error is an evaluation-stage error. All evaluation errors carry the
// [ast.Pos] of the element that triggered them and are fatal to the run.
type Error struct {
	Kind Kind
	Pos  ast.Pos

	// Name, Want, Got are set for WrongMacroArgCount.
	Name string
	Want int
	Got  int

	// Path and Err are set for IOError.
	Path string
	Err  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case WrongMacroArgCount:
		return fmt.Sprintf("%s at %s: macro %q wants %d argument(s), got %d", e.Kind, posString(e.Pos), e.Name, e.Want, e.Got)
	case WrongDefArgCount:
		return fmt.Sprintf("%s at %s: \\def wants 2 arguments (name, body), got %d", e.Kind, posString(e.Pos), e.Got)
	case InvalidMacroName:
		return fmt.Sprintf("%s at %s: \\def's name argument must start with plain text", e.Kind, posString(e.Pos))
	case BadArity:
		return fmt.Sprintf("%s at %s: arity= must be a plain non-negative integer", e.Kind, posString(e.Pos))
	case BadStrip:
		return fmt.Sprintf("%s at %s: \\strip wants exactly 1 argument", e.Kind, posString(e.Pos))
	case BadInclude:
		return fmt.Sprintf("%s at %s: expected a single plain-text filename argument", e.Kind, posString(e.Pos))
	case UnknownBase:
		return fmt.Sprintf("%s at %s: no filename to resolve the included path against", e.Kind, posString(e.Pos))
	case IOError:
		return fmt.Sprintf("%s at %s: reading %q: %v", e.Kind, posString(e.Pos), e.Path, e.Err)
	default:
		return fmt.Sprintf("evaluation error at %s", posString(e.Pos))
	}
}

func (e *Error) Unwrap() error {
	return ErrEval
}

func posString(p ast.Pos) string {
	if p.HasFilename() {
		return fmt.Sprintf("%s:%d:%d", p.FilenameString(), p.Line, p.Column)
	}

	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
