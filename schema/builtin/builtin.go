// Package builtin defines the fixed document schema every `sst check` and
// `sst read` invocation validates against: the structural, inline, and
// block element set described in spec.md §6.4, modeled directly on
// core.rs's SCHEMA (chapter/emph) and extended to the full element list.
//
// This is configuration data, not core engineering (spec.md §1), so the
// exact pattern shapes below are a reasonable, internally consistent
// completion of what core.rs sketches rather than a literal spec
// requirement.
package builtin

import "github.com/sstlang/sst/schema"

// Schema returns the built-in document schema. Each call returns a fresh
// *schema.Schema; callers that validate many documents may cache the
// result.
func Schema() *schema.Schema {
	inline := schema.Choice(
		schema.Text(),
		schema.ElementRef("emph"),
		schema.ElementRef("strong"),
		schema.ElementRef("code"),
		schema.ElementRef("filename"),
		schema.ElementRef("todo"),
		schema.ElementRef("envar"),
		schema.ElementRef("uri"),
		schema.ElementRef("command"),
		schema.ElementRef("replaceable"),
		schema.ElementRef("link"),
		schema.ElementRef("xref"),
	)

	block := schema.Choice(
		schema.Para(schema.Many1(inline)),
		schema.ElementRef("dinkus"),
		schema.ElementRef("listing"),
		schema.ElementRef("screen"),
		schema.ElementRef("ul"),
		schema.ElementRef("ol"),
		schema.ElementRef("procedure"),
		schema.ElementRef("namedlist"),
	)

	// body is the Seq wrapping the three child slots that chapter,
	// section, and article share: loose blocks, simplesects, then the
	// next level of structural nesting. subsection has no further
	// nesting level below it, so it drops the third slot.
	body := func(nested schema.Pattern) schema.Pattern {
		return schema.Seq(
			schema.Many0(block),
			schema.Many0(schema.ElementRef("simplesect")),
			schema.Many0(nested),
		)
	}

	s := schema.New(schema.Choice(
		schema.ElementRef("book"),
		schema.ElementRef("article"),
		schema.ElementRef("part"),
		schema.ElementRef("chapter"),
		schema.ElementRef("section"),
		schema.ElementRef("subsection"),
		schema.ElementRef("simplesect"),
	))

	// Structural elements.
	s.AddElement("book",
		schema.Many1(inline),
		schema.Many0(schema.ElementRef("part")))
	s.AddElement("part",
		schema.Many1(inline),
		schema.Many0(schema.ElementRef("chapter")))
	s.AddElement("article",
		schema.Many1(inline),
		body(schema.ElementRef("section")))
	s.AddElement("chapter",
		schema.Many1(inline),
		body(schema.ElementRef("section")))
	s.AddElement("section",
		schema.Many1(inline),
		body(schema.ElementRef("subsection")))
	s.AddElement("subsection",
		schema.Many1(inline),
		schema.Seq(
			schema.Many0(block),
			schema.Many0(schema.ElementRef("simplesect"))))
	s.AddElement("simplesect",
		schema.Many1(inline),
		schema.Seq(schema.Many0(block)))

	// Inline elements.
	s.AddElement("emph", schema.Many0(inline))
	s.AddElement("strong", schema.Many0(inline))
	s.AddElement("code", schema.Many0(inline))
	s.AddElement("filename", schema.Many0(inline))
	s.AddElement("todo", schema.Many0(inline))
	s.AddElement("envar", schema.Many0(inline))
	s.AddElement("uri", schema.Text())
	s.AddElement("command", schema.Many0(inline))
	s.AddElement("replaceable", schema.Many0(inline))
	s.AddElement("link", schema.Text(), schema.Many0(inline))
	s.AddElement("xref", schema.Text())

	// Block elements.
	s.AddElement("dinkus")
	s.AddElement("listing", schema.Many0(inline))
	s.AddElement("screen", schema.Many0(inline))
	s.AddElement("ul", schema.Many0(schema.ElementRef("li")))
	s.AddElement("ol", schema.Many0(schema.ElementRef("li")))
	s.AddElement("li", schema.Many0(block))
	s.AddElement("procedure", schema.Many1(schema.ElementRef("step")))
	s.AddElement("step", schema.Many0(block))
	s.AddElement("namedlist", schema.Many0(schema.ElementRef("item")))
	s.AddElement("item", schema.Many1(inline), schema.Many0(block))

	return s
}
