package parser

import (
	"strings"

	"github.com/sstlang/sst/ast"
)

// ParseString parses src into a normalized [ast.Doc]. filename is recorded
// in every [ast.Pos] produced and may be empty for in-memory input.
func ParseString(filename, src string) (ast.Doc, error) {
	st := newState(filename, src)

	doc, err := parseDoc(st, "", false)
	if err != nil {
		return ast.Doc{}, err
	}

	if c, ok := st.next(); ok {
		return ast.Doc{}, &Error{Kind: UnexpectedChar, Pos: st.pos(), Char: c}
	}

	return Normalize(doc), nil
}

// parseDoc parses items until it hits a delimiter it doesn't own. When
// hasRequiredEnd is true it is looking for a long-form \end{requiredEnd}
// and a premature EOF is a MissingEnd error; otherwise running out of
// input (or hitting an unowned '}'/']') just ends the doc.
func parseDoc(st *state, requiredEnd string, hasRequiredEnd bool) (ast.Doc, error) {
	var doc ast.Doc

	var text strings.Builder

	textPos := st.pos()

	flush := func() {
		if text.Len() > 0 {
			doc.AppendText(text.String(), textPos)
			text.Reset()
		}
	}

	for {
		c, ok := st.peek()

		switch {
		case ok && c == '\\':
			pos := st.pos()
			flush()
			st.next()

			tag, err := parseTag(st)
			if err != nil {
				return ast.Doc{}, err
			}

			haveBegin := false

			switch tag {
			case "begin":
				tag, err = parseEnclosedTag(st)
				if err != nil {
					return ast.Doc{}, err
				}

				haveBegin = true

			case "end":
				tag, err = parseEnclosedTag(st)
				if err != nil {
					return ast.Doc{}, err
				}

				switch {
				case hasRequiredEnd && tag == requiredEnd:
					return doc, nil
				case hasRequiredEnd:
					return ast.Doc{}, &Error{Kind: MismatchingTags, Pos: st.pos(), Open: requiredEnd, Close: tag}
				default:
					return ast.Doc{}, &Error{Kind: UnexpectedEnd, Pos: st.pos()}
				}
			}

			var namedArgs map[string]ast.Doc

			for {
				c2, ok2 := st.peek()
				if !ok2 || c2 != '[' {
					break
				}

				st.next()
				st.skipWS()

				name, err := parseRegularTag(st)
				if err != nil {
					return ast.Doc{}, err
				}

				st.skipWS()

				if _, err := st.eat(func(r rune) bool { return r == '=' }); err != nil {
					return ast.Doc{}, err
				}

				child, err := parseDoc(st, "", false)
				if err != nil {
					return ast.Doc{}, err
				}

				if namedArgs == nil {
					namedArgs = map[string]ast.Doc{}
				}

				namedArgs[name] = child

				if _, err := st.eat(func(r rune) bool { return r == ']' }); err != nil {
					return ast.Doc{}, err
				}
			}

			var posArgs []ast.Doc

			for {
				c2, ok2 := st.peek()
				if !ok2 || c2 != '{' {
					break
				}

				st.next()

				child, err := parseDoc(st, "", false)
				if err != nil {
					return ast.Doc{}, err
				}

				posArgs = append(posArgs, child)

				if _, err := st.eat(func(r rune) bool { return r == '}' }); err != nil {
					return ast.Doc{}, err
				}
			}

			if haveBegin {
				child, err := parseDoc(st, tag, true)
				if err != nil {
					return ast.Doc{}, err
				}

				posArgs = append(posArgs, child)
			}

			doc.Append(ast.NewElement(tag, namedArgs, posArgs, pos))
			textPos = st.pos()

		case ok && c == '{':
			st.next()

			if _, err := st.eat(func(r rune) bool { return r == '{' }); err != nil {
				return ast.Doc{}, err
			}

			if err := parseRaw(st, &text); err != nil {
				return ast.Doc{}, err
			}

		case ok && c != '{' && c != '}' && c != '[' && c != ']':
			st.next()
			text.WriteRune(c)

		default:
			if hasRequiredEnd {
				return ast.Doc{}, &Error{Kind: MissingEnd, Pos: st.pos(), Open: requiredEnd}
			}

			flush()

			return doc, nil
		}
	}
}

// parseRaw parses the contents of a {{ ... }} block, which may nest, into
// text. The opening and closing `{{`/`}}` of this call have already been
// consumed by the caller.
func parseRaw(st *state, text *strings.Builder) error {
	for {
		c, err := st.eat(func(rune) bool { return true })
		if err != nil {
			return err
		}

		switch c {
		case '{':
			c2, err := st.eat(func(rune) bool { return true })
			if err != nil {
				return err
			}

			if c2 == '{' {
				text.WriteString("{{")

				if err := parseRaw(st, text); err != nil {
					return err
				}

				text.WriteString("}}")
			} else {
				text.WriteRune(c)
				text.WriteRune(c2)
			}

		case '}':
			c2, err := st.eat(func(rune) bool { return true })
			if err != nil {
				return err
			}

			if c2 == '}' {
				return nil
			}

			text.WriteRune(c)
			text.WriteRune(c2)

		default:
			text.WriteRune(c)
		}
	}
}

func isTagChar(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '#'
}

// parseTag reads a maximal run of tag characters, failing with TagExpected
// if none are present.
func parseTag(st *state) (string, error) {
	var b strings.Builder

	for {
		c, ok := st.peek()
		if !ok || !isTagChar(c) {
			if b.Len() == 0 {
				return "", &Error{Kind: TagExpected, Pos: st.pos()}
			}

			return b.String(), nil
		}

		b.WriteRune(c)
		st.next()
	}
}

// parseRegularTag is parseTag restricted to reject the reserved names
// "begin" and "end".
func parseRegularTag(st *state) (string, error) {
	tag, err := parseTag(st)
	if err != nil {
		return "", err
	}

	if tag == "begin" || tag == "end" {
		return "", &Error{Kind: InvalidTagName, Pos: st.pos()}
	}

	return tag, nil
}

// parseEnclosedTag parses a `{tag}` as used after \begin and \end.
func parseEnclosedTag(st *state) (string, error) {
	if _, err := st.eat(func(r rune) bool { return r == '{' }); err != nil {
		return "", err
	}

	tag, err := parseRegularTag(st)
	if err != nil {
		return "", err
	}

	if _, err := st.eat(func(r rune) bool { return r == '}' }); err != nil {
		return "", err
	}

	return tag, nil
}
