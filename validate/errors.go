package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sstlang/sst/ast"
)

// Kind identifies the variant of a validation [Error]. Only Expected is
// non-fatal; the rest abort the whole validation regardless of where they
// occur, bypassing [schema.Choice] alternation (spec.md §4.3, §7).
type Kind int

const (
	// Expected was produced when the input did not match at this
	// position; ExpectedSet names what would have matched. Non-fatal.
	Expected Kind = iota
	// WrongArgCount was produced by an element whose positional argument
	// count does not match its schema entry. Fatal.
	WrongArgCount
	// WrongElementContent was produced when an element's argument failed
	// to validate against its pattern; Inner holds the underlying
	// error. Fatal.
	WrongElementContent
	// SchemaError was produced by an ElementRef pattern whose tag has no
	// entry in the schema. Fatal.
	SchemaError
)

func (k Kind) String() string {
	switch k {
	case Expected:
		return "Expected"
	case WrongArgCount:
		return "WrongArgCount"
	case WrongElementContent:
		return "WrongElementContent"
	case SchemaError:
		return "SchemaError"
	default:
		return "Unknown"
	}
}

// ExpectedKind identifies one alternative a [Choice] or match failure
// could have matched at a position, for "expected one of ..." messages.
type ExpectedKind int

const (
	// ExpectedText means a text run would have matched.
	ExpectedText ExpectedKind = iota
	// ExpectedPara means a paragraph would have matched.
	ExpectedPara
	// ExpectedElement means an element of the given tag would have
	// matched.
	ExpectedElement
	// ExpectedEnd means end of input was required.
	ExpectedEnd
)

// ExpectedItem is one entry of an Expected error's alternative set.
type ExpectedItem struct {
	Kind ExpectedKind
	// Tag is set when Kind == ExpectedElement.
	Tag string
}

func (e ExpectedItem) String() string {
	switch e.Kind {
	case ExpectedText:
		return "text"
	case ExpectedPara:
		return "a paragraph"
	case ExpectedElement:
		return fmt.Sprintf("\\%s", e.Tag)
	case ExpectedEnd:
		return "end of input"
	default:
		return "?"
	}
}

// ErrValidate is the sentinel every [Error] wraps, for use with
// [errors.Is].
var ErrValidate = errors.New("validation error")

// Error is a validation-stage error. Every Error carries enough context to
// report a precise diagnostic (spec.md §7); [Error.IsFatal] distinguishes
// the two error taxonomies described in §4.3.
type Error struct {
	Kind Kind
	Pos  ast.Pos

	// ExpectedSet is set for Expected.
	ExpectedSet []ExpectedItem

	// Tag is set for WrongArgCount, WrongElementContent, SchemaError.
	Tag string
	// WantArgs and GotArgs are set for WrongArgCount.
	WantArgs int
	GotArgs  int
	// Inner is set for WrongElementContent: the (always non-fatal) error
	// the failed argument produced.
	Inner error
}

// IsFatal reports whether e aborts the whole validation rather than
// merely ruling out one [schema.Choice] alternative.
func (e *Error) IsFatal() bool {
	return e.Kind != Expected
}

func (e *Error) Error() string {
	switch e.Kind {
	case Expected:
		names := make([]string, len(e.ExpectedSet))
		for i, x := range e.ExpectedSet {
			names[i] = x.String()
		}

		return fmt.Sprintf("%s: expected %s", posString(e.Pos), strings.Join(names, " or "))
	case WrongArgCount:
		return fmt.Sprintf("%s: \\%s wants %d argument(s), got %d", posString(e.Pos), e.Tag, e.WantArgs, e.GotArgs)
	case WrongElementContent:
		return fmt.Sprintf("%s: invalid content for \\%s: %v", posString(e.Pos), e.Tag, e.Inner)
	case SchemaError:
		return fmt.Sprintf("unknown element in schema: \\%s", e.Tag)
	default:
		return fmt.Sprintf("validation error at %s", posString(e.Pos))
	}
}

func (e *Error) Unwrap() error {
	return ErrValidate
}

func posString(p ast.Pos) string {
	if p.HasFilename() {
		return fmt.Sprintf("%s:%d:%d", p.FilenameString(), p.Line, p.Column)
	}

	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
