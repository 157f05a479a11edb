package parser

import (
	"unicode"

	"github.com/sstlang/sst/ast"
)

// indent is the common leading-whitespace prefix shared by every complete
// line of a Doc, plus whether the last line observed was "open" (not yet
// terminated by a newline, so its observed prefix may still be extended by
// later text).
type indent struct {
	open bool
	s    string
}

func newIndent() indent {
	return indent{open: true, s: ""}
}

// unifyIndents is the monoid operation: the longest common whitespace
// prefix of s1 and s2, with an open empty indent acting as the identity.
func unifyIndents(s1, s2 indent) indent {
	r1 := []rune(s1.s)
	r2 := []rune(s2.s)

	for k := 0; ; k++ {
		has1 := k < len(r1)
		has2 := k < len(r2)

		switch {
		case has1 && has2:
			if r1[k] != r2[k] {
				return indent{open: false, s: string(r1[:k])}
			}
		case has1 && !has2:
			if s2.open {
				return s1
			}

			return s2
		default:
			if s1.open {
				return s2
			}

			return s1
		}
	}
}

// getIndent computes the indent of a single text run: the common prefix of
// whitespace at the start of each complete line within s, treating the
// trailing partial line (not terminated by \n) as open.
func getIndent(s string) indent {
	runes := []rune(s)
	ind := newIndent()
	indentStart := 0
	indentEnd := 0
	inIndent := true

	for pos, c := range runes {
		if c == '\n' {
			if inIndent {
				indentEnd = pos
			}

			ind = unifyIndents(ind, indent{open: inIndent, s: string(runes[indentStart:indentEnd])})
			indentStart = pos + 1
			inIndent = true
		} else if inIndent && !unicode.IsSpace(c) {
			inIndent = false
			indentEnd = pos
		}
	}

	return ind
}

// stripIndent removes the indent prefix from the start of every line of s,
// except the first line when stripFirst is false; non-whitespace is never
// consumed, so a line whose actual prefix is shorter than indentStr keeps
// what it has.
func stripIndent(s, indentStr string, stripFirst bool) string {
	runes := []rune(s)
	indentRunes := []rune(indentStr)

	var res []rune

	pos := 0

	for {
		if stripFirst {
			j := 0

			for {
				if pos >= len(runes) {
					return string(res)
				}

				if j >= len(indentRunes) || runes[pos] != indentRunes[j] {
					break
				}

				pos++
				j++
			}
		}

		for {
			if pos >= len(runes) {
				return string(res)
			}

			c := runes[pos]
			res = append(res, c)
			pos++

			if c == '\n' {
				break
			}
		}

		stripFirst = true
	}
}

// stripLeadingEmptyLine drops everything up to and including the first
// newline of s, but only if nothing but whitespace precedes that newline.
func stripLeadingEmptyLine(s string) string {
	runes := []rune(s)

	for i, c := range runes {
		if c == '\n' {
			return string(runes[i+1:])
		}

		if !unicode.IsSpace(c) {
			return s
		}
	}

	return s
}

// Normalize strips the common indent from every text item reachable within
// doc (recursing into every named and positional argument first, so that
// each sub-Doc's own common indent is stripped before it contributes to its
// parent's), and drops a single leading blank line from the first text
// item of every Doc. It returns the normalized Doc.
func Normalize(doc ast.Doc) ast.Doc {
	d, _ := normalize(doc)

	return d
}

func normalize(d ast.Doc) (ast.Doc, indent) {
	ind := newIndent()

	items := make([]ast.Item, len(d.Items))
	copy(items, d.Items)

	for i, it := range items {
		switch it.Kind {
		case ast.Text:
			ind = unifyIndents(ind, getIndent(it.Text))

		case ast.ElementItem:
			if it.NamedArgs != nil {
				newNamed := make(map[string]ast.Doc, len(it.NamedArgs))

				for name, arg := range it.NamedArgs {
					newArg, argIndent := normalize(arg)
					newNamed[name] = newArg
					ind = unifyIndents(ind, argIndent)
				}

				it.NamedArgs = newNamed
			}

			if it.PosArgs != nil {
				newPos := make([]ast.Doc, len(it.PosArgs))

				for n, arg := range it.PosArgs {
					newArg, argIndent := normalize(arg)
					newPos[n] = newArg
					ind = unifyIndents(ind, argIndent)
				}

				it.PosArgs = newPos
			}

			items[i] = it
		}
	}

	if len(items) > 0 && items[0].Kind == ast.Text {
		items[0].Text = stripLeadingEmptyLine(items[0].Text)
	}

	var result ast.Doc

	for n, it := range items {
		if it.Kind == ast.Text {
			it.Text = stripIndent(it.Text, ind.s, n == 0)
		}

		result.Append(it)
	}

	return result, ind
}
