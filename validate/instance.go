package validate

import (
	"strings"
	"unicode"
)

// InstanceKind identifies the variant of an [Instance], mirroring
// [schema.Kind].
type InstanceKind int

const (
	// InstanceText is a matched text run.
	InstanceText InstanceKind = iota
	// InstanceElement is a matched element; Children holds one Instance
	// per positional argument.
	InstanceElement
	// InstancePara is a matched paragraph wrapping Child.
	InstancePara
	// InstanceSeq is a sequence of matches, one per Seq sub-pattern.
	InstanceSeq
	// InstanceChoice records which alternative matched (Branch) and its
	// instance (Child).
	InstanceChoice
	// InstanceMany is a (possibly empty) repetition of matches.
	InstanceMany
)

// Instance is a node in the proof tree a successful validation produces.
// It mirrors the shape of the [schema.Pattern] it matched, recording the
// decisions (which Choice branch, how many Many repetitions) needed to
// reconstruct that shape. Instance trees are always handled through
// *Instance so that callers -- notably the number package -- can key
// tables on node identity.
type Instance struct {
	Kind InstanceKind

	// Text holds the matched run, valid when Kind == InstanceText.
	Text string

	// Tag holds the matched element's tag, valid when
	// Kind == InstanceElement.
	Tag string

	// Children holds, in order, one Instance per positional argument
	// (InstanceElement), per Seq sub-pattern (InstanceSeq), or per
	// repetition (InstanceMany).
	Children []*Instance

	// Child holds the wrapped instance, valid when Kind == InstancePara
	// or Kind == InstanceChoice.
	Child *Instance

	// Branch holds the index of the matched alternative, valid when
	// Kind == InstanceChoice.
	Branch int
}

// Unchoice returns i.Child if i is an InstanceChoice, or i itself
// otherwise. It does not recurse: a Choice pattern is never nested
// directly inside another Choice in the built-in schema, so one level of
// unwrapping is enough for renderer dispatch.
func (i *Instance) Unchoice() *Instance {
	if i.Kind == InstanceChoice {
		return i.Child
	}

	return i
}

// Seq returns i.Children, panicking if i is not an InstanceSeq. Used by
// callers -- the renderer -- that already know, from the schema, which
// pattern shape they are looking at.
func (i *Instance) Seq() []*Instance {
	if i.Kind != InstanceSeq {
		panic("validate: Seq called on non-Seq Instance")
	}

	return i.Children
}

// Many returns i.Children, panicking if i is not an InstanceMany.
func (i *Instance) Many() []*Instance {
	if i.Kind != InstanceMany {
		panic("validate: Many called on non-Many Instance")
	}

	return i.Children
}

// IsWhitespace reports whether i matched only whitespace text, used by
// Para to reject a paragraph whose content is entirely blank.
func (i *Instance) IsWhitespace() bool {
	switch i.Kind {
	case InstanceText:
		return strings.TrimFunc(i.Text, unicode.IsSpace) == ""
	case InstanceElement:
		return false
	case InstancePara:
		return i.Child.IsWhitespace()
	case InstanceSeq, InstanceMany:
		for _, c := range i.Children {
			if !c.IsWhitespace() {
				return false
			}
		}

		return true
	case InstanceChoice:
		return i.Child.IsWhitespace()
	default:
		return false
	}
}
