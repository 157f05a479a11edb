package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sstlang/sst/render"
	"github.com/sstlang/sst/validate"
)

func text(s string) *validate.Instance {
	return &validate.Instance{Kind: validate.InstanceText, Text: s}
}

func many(items ...*validate.Instance) *validate.Instance {
	return &validate.Instance{Kind: validate.InstanceMany, Children: items}
}

func para(inner *validate.Instance) *validate.Instance {
	return &validate.Instance{Kind: validate.InstancePara, Child: inner}
}

func seq(items ...*validate.Instance) *validate.Instance {
	return &validate.Instance{Kind: validate.InstanceSeq, Children: items}
}

func elem(tag string, children ...*validate.Instance) *validate.Instance {
	return &validate.Instance{Kind: validate.InstanceElement, Tag: tag, Children: children}
}

func TestToTextRendersNumberedChapterAndParagraph(t *testing.T) {
	t.Parallel()

	body := seq(
		many(para(many(text("Hello world.")))),
		many(),
		many(),
	)
	chapter := elem("chapter", many(text("Introduction")), body)

	got := render.ToText(chapter, 80)

	assert.Contains(t, got, "1 Introduction")
	assert.Contains(t, got, "Hello world.")
}

func TestToTextRendersBulletList(t *testing.T) {
	t.Parallel()

	li1 := elem("li", many(para(many(text("first")))))
	li2 := elem("li", many(para(many(text("second")))))

	body := seq(
		many(elem("ul", many(li1, li2))),
		many(),
		many(),
	)
	chapter := elem("chapter", many(text("List chapter")), body)

	got := render.ToText(chapter, 80)

	assert.Contains(t, got, "first")
	assert.Contains(t, got, "second")
}

func TestToTextRendersEmphAndCodeStyling(t *testing.T) {
	t.Parallel()

	inline := many(
		text("plain "),
		elem("emph", many(text("em"))),
		text(" "),
		elem("code", many(text("co"))),
	)

	body := seq(many(para(inline)), many(), many())
	chapter := elem("chapter", many(text("Styled")), body)

	got := render.ToText(chapter, 80)

	assert.Contains(t, got, "plain")
	assert.Contains(t, got, "em")
	assert.Contains(t, got, "co")
	assert.Contains(t, got, "\x1b[0;3m")
	assert.Contains(t, got, "\x1b[0;1m")
}
