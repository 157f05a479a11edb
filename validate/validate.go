package validate

import (
	"unicode"

	"github.com/sstlang/sst/ast"
	"github.com/sstlang/sst/schema"
)

// Validate matches doc against s's start pattern and returns the resulting
// Instance, or an error. filename names doc for positions reported when
// the schema's start pattern does not reach the end of doc.
func Validate(s *schema.Schema, doc ast.Doc, filename string) (*Instance, error) {
	return ValidateFullDoc(s, s.Start, doc, ast.NewPos(filename, 0, 0))
}

// ValidateFullDoc matches pattern against doc and additionally requires
// that, after skipping trailing whitespace, the whole of doc has been
// consumed. It is used both for the top-level document and for each
// element argument (§4.3's ElementRef rule).
func ValidateFullDoc(s *schema.Schema, pattern schema.Pattern, doc ast.Doc, pos ast.Pos) (*Instance, error) {
	cur := newCursor(doc.Items, pos)

	inst, err := validateDoc(s, pattern, true, &cur)
	if err != nil {
		return nil, err
	}

	cur.skipWS()

	if !cur.atEnd() {
		return nil, &Error{Kind: Expected, ExpectedSet: []ExpectedItem{{Kind: ExpectedEnd}}, Pos: cur.pos()}
	}

	return inst, nil
}

// validateDoc matches pattern against cur, threading the cursor forward
// on success. atTop is true only on the last sub-pattern of an enclosing
// Seq that is itself at_top, letting a trailing Many require end-of-input
// before it can close (§4.3's Many rule).
func validateDoc(s *schema.Schema, pattern schema.Pattern, atTop bool, cur *cursor) (*Instance, error) {
	switch pattern.Kind {
	case schema.KindText:
		return validateText(cur)
	case schema.KindPara:
		return validatePara(s, pattern, cur)
	case schema.KindElementRef:
		return validateElement(s, pattern, cur)
	case schema.KindSeq:
		return validateSeq(s, pattern, atTop, cur)
	case schema.KindChoice:
		return validateChoice(s, pattern, atTop, cur)
	case schema.KindMany:
		return validateMany(s, pattern, atTop, cur)
	default:
		panic("validate: unknown pattern kind")
	}
}

func validateText(cur *cursor) (*Instance, error) {
	var text []rune

	inEmptyLine := false

	for {
		ch, ok := cur.getChar()
		if !ok {
			break
		}

		text = append(text, ch)

		stop := false

		switch cur.inPara {
		case paraStart:
			if !unicode.IsSpace(ch) {
				cur.inPara = paraInside
			}
		case paraInside:
			if ch == '\n' {
				if inEmptyLine {
					cur.inPara = paraEnd
					stop = true
				} else {
					inEmptyLine = true
				}
			} else if inEmptyLine && !unicode.IsSpace(ch) {
				inEmptyLine = false
			}
		case paraNo, paraEnd:
		}

		if stop {
			break
		}
	}

	if len(text) == 0 {
		return nil, &Error{Kind: Expected, ExpectedSet: []ExpectedItem{{Kind: ExpectedText}}, Pos: cur.pos()}
	}

	return &Instance{Kind: InstanceText, Text: string(text)}, nil
}

func validatePara(s *schema.Schema, pattern schema.Pattern, cur *cursor) (*Instance, error) {
	if cur.inPara != paraNo {
		panic("validate: Para pattern nested inside another paragraph")
	}

	if cur.atEndWS() {
		return nil, &Error{Kind: Expected, ExpectedSet: []ExpectedItem{{Kind: ExpectedPara}}, Pos: cur.pos()}
	}

	cur.inPara = paraStart

	inst, err := validateDoc(s, *pattern.Inner, false, cur)
	if err != nil {
		return nil, err
	}

	if cur.inPara == paraNo {
		panic("validate: Para pattern's inner pattern never entered paragraph state")
	}

	cur.inPara = paraNo

	if inst.IsWhitespace() {
		return nil, &Error{Kind: Expected, ExpectedSet: []ExpectedItem{{Kind: ExpectedPara}}, Pos: cur.pos()}
	}

	return &Instance{Kind: InstancePara, Child: inst}, nil
}

func validateElement(s *schema.Schema, pattern schema.Pattern, cur *cursor) (*Instance, error) {
	argPatterns, ok := s.Elements[pattern.Tag]
	if !ok {
		return nil, &Error{Kind: SchemaError, Tag: pattern.Tag}
	}

	el, ok := cur.getElement(pattern.Tag)
	if !ok {
		return nil, &Error{Kind: Expected, ExpectedSet: []ExpectedItem{{Kind: ExpectedElement, Tag: pattern.Tag}}, Pos: cur.pos()}
	}

	if (len(argPatterns) == 0 && !el.IsEmpty()) || (len(argPatterns) > 0 && len(argPatterns) != len(el.PosArgs)) {
		return nil, &Error{Kind: WrongArgCount, Tag: pattern.Tag, WantArgs: len(argPatterns), GotArgs: len(el.PosArgs), Pos: el.ElementPos}
	}

	children := make([]*Instance, 0, len(argPatterns))

	for i, argPattern := range argPatterns {
		child, err := ValidateFullDoc(s, argPattern, el.PosArgs[i], el.ElementPos)
		if err != nil {
			if ve, isVE := err.(*Error); isVE && ve.IsFatal() { //nolint:errorlint // internal errors are always *Error
				return nil, err
			}

			return nil, &Error{Kind: WrongElementContent, Tag: pattern.Tag, Pos: el.ElementPos, Inner: err}
		}

		children = append(children, child)
	}

	return &Instance{Kind: InstanceElement, Tag: pattern.Tag, Children: children}, nil
}

func validateSeq(s *schema.Schema, pattern schema.Pattern, atTop bool, cur *cursor) (*Instance, error) {
	children := make([]*Instance, 0, len(pattern.Patterns))

	for i, p := range pattern.Patterns {
		isLast := i == len(pattern.Patterns)-1

		child, err := validateDoc(s, p, isLast && atTop, cur)
		if err != nil {
			return nil, err
		}

		children = append(children, child)
	}

	return &Instance{Kind: InstanceSeq, Children: children}, nil
}

func validateChoice(s *schema.Schema, pattern schema.Pattern, atTop bool, cur *cursor) (*Instance, error) {
	var expected []ExpectedItem

	pos := cur.pos()

	for i, p := range pattern.Patterns {
		c2 := *cur

		inst, err := validateDoc(s, p, atTop, &c2)
		if err == nil {
			*cur = c2

			return &Instance{Kind: InstanceChoice, Branch: i, Child: inst}, nil
		}

		ve, isVE := err.(*Error) //nolint:errorlint // internal errors are always *Error
		if !isVE || ve.IsFatal() {
			return nil, err
		}

		expected = append(expected, ve.ExpectedSet...)
	}

	return nil, &Error{Kind: Expected, ExpectedSet: expected, Pos: pos}
}

func validateMany(s *schema.Schema, pattern schema.Pattern, atTop bool, cur *cursor) (*Instance, error) {
	var children []*Instance

	for pattern.Max == nil || len(children) < *pattern.Max {
		inst, err := validateDoc(s, *pattern.Inner, false, cur)
		if err != nil {
			fatal := true
			if ve, isVE := err.(*Error); isVE { //nolint:errorlint // internal errors are always *Error
				fatal = ve.IsFatal()
			}

			if fatal || len(children) < pattern.Min || (atTop && !cur.atEndWS()) {
				return nil, err
			}

			break
		}

		children = append(children, inst)
	}

	return &Instance{Kind: InstanceMany, Children: children}, nil
}

