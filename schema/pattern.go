package schema

// Kind identifies the variant of a [Pattern].
type Kind int

const (
	// KindText matches one text run.
	KindText Kind = iota
	// KindElementRef matches one element whose tag equals Pattern.Tag.
	KindElementRef
	// KindPara brackets a paragraph around Pattern.Inner.
	KindPara
	// KindSeq matches each of Pattern.Patterns in order.
	KindSeq
	// KindChoice tries each of Pattern.Patterns in order, committing to
	// the first that matches.
	KindChoice
	// KindMany repeats Pattern.Inner greedily, bounded by Pattern.Min and
	// Pattern.Max.
	KindMany
)

// Pattern is a recursive tagged union describing the valid shape of a Doc.
// Only the fields relevant to Kind are meaningful.
type Pattern struct {
	Kind Kind

	// Tag is set when Kind == KindElementRef.
	Tag string

	// Inner is set when Kind == KindPara or Kind == KindMany.
	Inner *Pattern

	// Patterns is set when Kind == KindSeq or Kind == KindChoice.
	Patterns []Pattern

	// Min and Max are set when Kind == KindMany. Max is nil for an
	// unbounded repetition.
	Min int
	Max *int
}

// Text returns a pattern matching a single text run.
func Text() Pattern {
	return Pattern{Kind: KindText}
}

// ElementRef returns a pattern matching one element with the given tag.
func ElementRef(tag string) Pattern {
	return Pattern{Kind: KindElementRef, Tag: tag}
}

// Para returns a pattern bracketing a paragraph around inner.
func Para(inner Pattern) Pattern {
	return Pattern{Kind: KindPara, Inner: &inner}
}

// Seq returns a pattern matching each of ps in order.
func Seq(ps ...Pattern) Pattern {
	return Pattern{Kind: KindSeq, Patterns: ps}
}

// Choice returns a pattern trying each of ps in order, committing to the
// first alternative that matches.
func Choice(ps ...Pattern) Pattern {
	return Pattern{Kind: KindChoice, Patterns: ps}
}

// Many returns a pattern repeating p at least min and, if max is non-nil,
// at most *max times.
func Many(min int, max *int, p Pattern) Pattern {
	return Pattern{Kind: KindMany, Min: min, Max: max, Inner: &p}
}

// Many0 returns a pattern repeating p zero or more times.
func Many0(p Pattern) Pattern {
	return Many(0, nil, p)
}

// Many1 returns a pattern repeating p one or more times.
func Many1(p Pattern) Pattern {
	return Many(1, nil, p)
}
