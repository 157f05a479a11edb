package layout

// TextKind identifies the variant of a [Text] node.
type TextKind int

const (
	// TextPlain is a literal run of characters.
	TextPlain TextKind = iota
	// TextStyled wraps Children in an additional Style.
	TextStyled
)

// Text is a node in a styled-text tree: either a literal string, or a
// style applied to a nested sequence of Texts.
type Text struct {
	Kind     TextKind
	Plain    string
	Style    Style
	Children []Text
}

// Plain wraps a literal string as a Text.
func Plain(s string) Text {
	return Text{Kind: TextPlain, Plain: s}
}

// Styled wraps children under an additional style.
func Styled(style Style, children ...Text) Text {
	return Text{Kind: TextStyled, Style: style, Children: children}
}

type styledChar struct {
	style fullStyle
	ch    rune
}

type styledLine []styledChar

// flattenTexts walks texts, resolving every nested Styled wrapper into the
// accumulated style in effect at each character.
func flattenTexts(texts []Text, style fullStyle, line *styledLine) {
	for _, t := range texts {
		switch t.Kind {
		case TextPlain:
			for _, c := range t.Plain {
				*line = append(*line, styledChar{style: style, ch: c})
			}
		case TextStyled:
			flattenTexts(t.Children, style.apply(t.Style), line)
		}
	}
}
