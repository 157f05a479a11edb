package ast

import (
	"strings"
	"unicode"
)

// Doc is an ordered sequence of [Item]. The zero value is an empty Doc.
type Doc struct {
	Items []Item
}

// NewDoc returns a Doc built from items, merging adjacent Text items and
// dropping empty ones so the invariants in the package doc hold.
func NewDoc(items ...Item) Doc {
	var d Doc
	for _, it := range items {
		d.Append(it)
	}

	return d
}

// Append adds it to d, merging with a trailing Text item when both it and
// the current last item are Text, and silently dropping it when it is an
// empty Text run.
func (d *Doc) Append(it Item) {
	if it.Kind == Text {
		if it.Text == "" {
			return
		}

		if n := len(d.Items); n > 0 && d.Items[n-1].Kind == Text {
			d.Items[n-1].Text += it.Text

			return
		}
	}

	d.Items = append(d.Items, it)
}

// AppendText appends a text run at pos, merging with a trailing Text item
// per the Doc invariants.
func (d *Doc) AppendText(text string, pos Pos) {
	if text == "" {
		return
	}

	d.Append(Item{Kind: Text, Text: text, Pos: pos})
}

// IsEmpty reports whether d has no items.
func (d Doc) IsEmpty() bool {
	return len(d.Items) == 0
}

// IsWhitespace reports whether every item in d is Text made up entirely of
// whitespace. An empty Doc is vacuously whitespace.
func (d Doc) IsWhitespace() bool {
	for _, it := range d.Items {
		if !it.IsWhitespace() {
			return false
		}
	}

	return true
}

// ItemKind distinguishes the two variants of [Item].
type ItemKind int

const (
	// Text is a run of literal text.
	Text ItemKind = iota
	// ElementItem is a tagged element with named and positional arguments.
	ElementItem
)

// Item is a tagged union: either a Text run or an [Element]. Exactly one of
// the Text-related fields or the Element-related fields is meaningful,
// selected by Kind.
type Item struct {
	Kind ItemKind

	// Valid when Kind == Text.
	Text string
	Pos  Pos

	// Valid when Kind == ElementItem.
	Tag        string
	NamedArgs  map[string]Doc
	PosArgs    []Doc
	ElementPos Pos
}

// NewText returns a Text item.
func NewText(text string, pos Pos) Item {
	return Item{Kind: Text, Text: text, Pos: pos}
}

// NewElement returns an ElementItem item.
func NewElement(tag string, namedArgs map[string]Doc, posArgs []Doc, pos Pos) Item {
	return Item{
		Kind:       ElementItem,
		Tag:        tag,
		NamedArgs:  namedArgs,
		PosArgs:    posArgs,
		ElementPos: pos,
	}
}

// ItemPos returns the position of the item regardless of its kind.
func (it Item) ItemPos() Pos {
	if it.Kind == Text {
		return it.Pos
	}

	return it.ElementPos
}

// IsWhitespace reports whether it is a Text item made up entirely of
// Unicode whitespace. Elements are never whitespace.
func (it Item) IsWhitespace() bool {
	if it.Kind != Text {
		return false
	}

	return strings.TrimFunc(it.Text, unicode.IsSpace) == ""
}

// IsEmpty reports whether an element has no positional arguments, or
// exactly one positional argument whose Doc is itself empty. Per the
// grammar, "\foo" and "\foo{}" are both empty calls.
func (it Item) IsEmpty() bool {
	if it.Kind != ElementItem {
		return false
	}

	switch len(it.PosArgs) {
	case 0:
		return true
	case 1:
		return it.PosArgs[0].IsEmpty()
	default:
		return false
	}
}
