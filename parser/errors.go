package parser

import (
	"errors"
	"fmt"

	"github.com/sstlang/sst/ast"
)

// Kind identifies the variant of a parse [Error].
type Kind int

const (
	// UnexpectedChar was produced when the parser expected something
	// other than the character it read.
	UnexpectedChar Kind = iota
	// UnexpectedEOF was produced when input ended where a character was
	// required.
	UnexpectedEOF
	// UnexpectedEnd was produced by a stray \end with no matching \begin.
	UnexpectedEnd
	// MismatchingTags was produced by a \end{tag} that does not match the
	// innermost open \begin{tag}.
	MismatchingTags
	// MissingEnd was produced when input ended while a \begin{tag} was
	// still open.
	MissingEnd
	// TagExpected was produced when a tag name was required but zero
	// legal tag characters were found.
	TagExpected
	// InvalidTagName was produced by a named tag of "begin" or "end".
	InvalidTagName
)

func (k Kind) String() string {
	switch k {
	case UnexpectedChar:
		return "UnexpectedChar"
	case UnexpectedEOF:
		return "UnexpectedEOF"
	case UnexpectedEnd:
		return "UnexpectedEnd"
	case MismatchingTags:
		return "MismatchingTags"
	case MissingEnd:
		return "MissingEnd"
	case TagExpected:
		return "TagExpected"
	case InvalidTagName:
		return "InvalidTagName"
	default:
		return "Unknown"
	}
}

// ErrParse is the sentinel every [Error] wraps, for use with [errors.Is].
var ErrParse = errors.New("parse error")

// Error is a parse-stage error. All parse errors carry a [ast.Pos] and are
// fatal to the run (§7).
type Error struct {
	Kind Kind
	Pos  ast.Pos

	// Char is set for UnexpectedChar.
	Char rune
	// Open and Close are set for MismatchingTags (open tag / closing tag)
	// and MissingEnd (open tag only, Close unused).
	Open  string
	Close string
}

func (e *Error) Error() string {
	switch e.Kind {
	case UnexpectedChar:
		return fmt.Sprintf("%s at %s: unexpected character %q", e.Kind, posString(e.Pos), e.Char)
	case UnexpectedEOF:
		return fmt.Sprintf("%s at %s: unexpected end of input", e.Kind, posString(e.Pos))
	case UnexpectedEnd:
		return fmt.Sprintf("%s at %s: \\end with no matching \\begin", e.Kind, posString(e.Pos))
	case MismatchingTags:
		return fmt.Sprintf("%s at %s: \\end{%s} does not match \\begin{%s}", e.Kind, posString(e.Pos), e.Close, e.Open)
	case MissingEnd:
		return fmt.Sprintf("%s at %s: missing \\end{%s}", e.Kind, posString(e.Pos), e.Open)
	case TagExpected:
		return fmt.Sprintf("%s at %s: expected a tag name", e.Kind, posString(e.Pos))
	case InvalidTagName:
		return fmt.Sprintf("%s at %s: \"begin\" and \"end\" are not valid tag names", e.Kind, posString(e.Pos))
	default:
		return fmt.Sprintf("parse error at %s", posString(e.Pos))
	}
}

func (e *Error) Unwrap() error {
	return ErrParse
}

func posString(p ast.Pos) string {
	if p.HasFilename() {
		return fmt.Sprintf("%s:%d:%d", p.FilenameString(), p.Line, p.Column)
	}

	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
