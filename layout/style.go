package layout

import "fmt"

// StyleKind identifies one character-level style modifier.
type StyleKind int

const (
	Bold StyleKind = iota
	Italic
	Underline
	Strikethrough
	// Color applies an indexed (SGR 256-colour) foreground. Its mapping
	// is implemented below but not exercised by any built-in render
	// rule today -- no element in the shipped schema assigns colour.
	Color
)

// Style is one modifier to apply to a run of text; Code is valid only
// when Kind == Color.
type Style struct {
	Kind StyleKind
	Code uint8
}

// ColorStyle builds a Color style selecting the given SGR 256-colour index.
func ColorStyle(code uint8) Style {
	return Style{Kind: Color, Code: code}
}

// fullStyle accumulates every modifier in effect for one character,
// letting nested Styled texts compose (spec.md's renderer applies Bold
// inside Emph inside a paragraph, for example).
type fullStyle struct {
	bold, italic, underline, strikethrough bool
	color                                  uint8
	hasColor                               bool
}

func (s fullStyle) apply(style Style) fullStyle {
	switch style.Kind {
	case Bold:
		s.bold = true
	case Italic:
		s.italic = true
	case Underline:
		s.underline = true
	case Strikethrough:
		s.strikethrough = true
	case Color:
		s.color = style.Code
		s.hasColor = true
	}

	return s
}

// emitANSIDelta writes the SGR escape needed to move from old to new, or
// nothing if the two styles are identical. Every change resets to
// default first: a style never partially supersedes another, it always
// restates the full set of active modifiers.
func emitANSIDelta(dest *[]byte, old, new fullStyle) {
	if old == new {
		return
	}

	*dest = append(*dest, "\x1b[0"...)

	if new.bold {
		*dest = append(*dest, ";1"...)
	}

	if new.italic {
		*dest = append(*dest, ";3"...)
	}

	if new.underline {
		*dest = append(*dest, ";4"...)
	}

	if new.strikethrough {
		*dest = append(*dest, ";9"...)
	}

	if new.hasColor {
		*dest = append(*dest, fmt.Sprintf(";38;5;%d", new.color)...)
	}

	*dest = append(*dest, 'm')
}
