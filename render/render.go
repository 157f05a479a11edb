package render

import (
	"fmt"
	"strconv"

	"github.com/sstlang/sst/layout"
	"github.com/sstlang/sst/number"
	"github.com/sstlang/sst/validate"
)

type renderer struct {
	numbers  *number.Numbers
	maxWidth int
}

// ToText renders a validated document to fixed-width, ANSI-styled text.
func ToText(doc *validate.Instance, maxWidth int) string {
	r := renderer{numbers: number.Create(doc), maxWidth: maxWidth}

	var blocks []layout.Block

	r.toplevel(doc, &blocks)

	top := layout.NewBlock(layout.TB(blocks...))

	return layout.Format(maxWidth, &top)
}

func (r *renderer) toplevel(doc *validate.Instance, blocks *[]layout.Block) {
	inst := doc.Unchoice()

	switch inst.Tag {
	case "book":
		r.book(inst, blocks)
	case "part":
		r.part(inst, blocks)
	case "article":
		r.article(inst, blocks)
	case "chapter":
		r.chapter(inst, blocks)
	case "section":
		r.section(inst, blocks)
	case "subsection":
		r.subsection(inst, blocks)
	case "simplesect":
		r.simplesect(inst, blocks)
	default:
		panic(fmt.Sprintf("render: unsupported top-level element %q", inst.Tag))
	}
}

func (r *renderer) book(inst *validate.Instance, blocks *[]layout.Block) {
	title := inst.Children[0]
	body := inst.Children[1]

	var texts []layout.Text

	r.inlines(title, &texts)
	*blocks = append(*blocks, layout.NewBlock(layout.Para(texts...)))

	for _, part := range body.Many() {
		r.part(part.Unchoice(), blocks)
	}
}

func (r *renderer) part(inst *validate.Instance, blocks *[]layout.Block) {
	title := inst.Children[0]
	body := inst.Children[1]

	var texts []layout.Text

	r.inlines(title, &texts)
	*blocks = append(*blocks, layout.NewBlock(layout.Para(texts...)))

	for _, ch := range body.Many() {
		r.chapter(ch.Unchoice(), blocks)
	}
}

// article has the same body shape as chapter (title, blocks, simplesects,
// sections) but -- like book and part -- is not a numbered element, so
// its title is rendered plain rather than through emitTitle.
func (r *renderer) article(inst *validate.Instance, blocks *[]layout.Block) {
	title := inst.Children[0]
	body := inst.Children[1].Seq()

	var texts []layout.Text

	r.inlines(title, &texts)
	*blocks = append(*blocks, layout.NewBlock(layout.Para(texts...)))

	r.blocks(body[0], blocks)

	for _, s := range body[1].Many() {
		r.simplesect(s.Unchoice(), blocks)
	}

	for _, sec := range body[2].Many() {
		r.section(sec.Unchoice(), blocks)
	}
}

func (r *renderer) getTitle(inst *validate.Instance) string {
	entry := r.numbers.Get(inst)
	if entry == nil {
		panic("render: element has no assigned number")
	}

	return entry.String()
}

func (r *renderer) emitTitle(inst *validate.Instance, blocks *[]layout.Block) {
	texts := []layout.Text{
		layout.Plain(r.getTitle(inst)),
		layout.Plain(" "),
	}

	title := inst.Children[0]

	r.inlines(title, &texts)
	*blocks = append(*blocks, layout.NewBlock(layout.Para(layout.Styled(layout.Style{Kind: layout.Underline}, texts...))))
}

func (r *renderer) chapter(inst *validate.Instance, blocks *[]layout.Block) {
	body := inst.Children[1].Seq()

	r.emitTitle(inst, blocks)
	r.blocks(body[0], blocks)

	for _, s := range body[1].Many() {
		r.simplesect(s.Unchoice(), blocks)
	}

	for _, sec := range body[2].Many() {
		r.section(sec.Unchoice(), blocks)
	}
}

func (r *renderer) section(inst *validate.Instance, blocks *[]layout.Block) {
	body := inst.Children[1].Seq()

	r.emitTitle(inst, blocks)
	r.blocks(body[0], blocks)

	for _, s := range body[1].Many() {
		r.simplesect(s.Unchoice(), blocks)
	}

	for _, sub := range body[2].Many() {
		r.subsection(sub.Unchoice(), blocks)
	}
}

func (r *renderer) subsection(inst *validate.Instance, blocks *[]layout.Block) {
	body := inst.Children[1].Seq()

	r.emitTitle(inst, blocks)
	r.blocks(body[0], blocks)

	for _, s := range body[1].Many() {
		r.simplesect(s.Unchoice(), blocks)
	}
}

func (r *renderer) simplesect(inst *validate.Instance, blocks *[]layout.Block) {
	title := inst.Children[0]
	body := inst.Children[1].Seq()

	var texts []layout.Text

	r.inlines(title, &texts)
	*blocks = append(*blocks, layout.NewBlock(layout.Para(layout.Styled(layout.Style{Kind: layout.Underline}, texts...))))

	r.blocks(body[0], blocks)
}

func (r *renderer) blocks(inst *validate.Instance, blocks *[]layout.Block) {
	for _, item := range inst.Many() {
		r.block(item, blocks)
	}
}

func (r *renderer) block(doc *validate.Instance, blocks *[]layout.Block) {
	inst := doc.Unchoice()

	if inst.Kind == validate.InstancePara {
		var texts []layout.Text

		r.inlines(inst.Child, &texts)
		*blocks = append(*blocks, layout.NewBlock(layout.Para(texts...)))

		return
	}

	switch inst.Tag {
	case "dinkus":
		r.dinkus(blocks)
	case "listing", "screen":
		r.listing(inst, blocks)
	case "ul":
		r.itemList(inst, blocks, false)
	case "ol":
		r.itemList(inst, blocks, true)
	case "procedure":
		r.procedure(inst, blocks)
	case "namedlist":
		r.namedlist(inst, blocks)
	default:
		panic(fmt.Sprintf("render: unsupported block element %q", inst.Tag))
	}
}

func (r *renderer) dinkus(blocks *[]layout.Block) {
	mark := "* * *"

	pad := (r.maxWidth - len(mark)) / 2
	if pad < 0 {
		pad = 0
	}

	*blocks = append(*blocks, layout.NewBlock(layout.Pre(layout.Plain(spaces(pad)+mark))))
}

func (r *renderer) listing(inst *validate.Instance, blocks *[]layout.Block) {
	var texts []layout.Text

	r.inlines(inst.Children[0], &texts)

	*blocks = append(*blocks, layout.NewBlock(layout.Table([][]layout.Block{{
		layout.NewBlockMargin(0, 0, layout.Pre(layout.Plain("   "))),
		layout.NewBlockMargin(0, 0, layout.Pre(texts...)),
	}})))
}

// itemList renders a \ul or \ol element as an indented, marker-prefixed
// list, using the blank-left-column table idiom listing already
// establishes for indentation (text_layout has no dedicated indent
// primitive).
func (r *renderer) itemList(inst *validate.Instance, blocks *[]layout.Block, ordered bool) {
	rows := make([][]layout.Block, 0, len(inst.Children[0].Many()))

	for i, li := range inst.Children[0].Many() {
		marker := "- "
		if ordered {
			marker = strconv.Itoa(i+1) + ". "
		}

		var body []layout.Block

		r.blocks(li.Unchoice().Children[0], &body)

		rows = append(rows, []layout.Block{
			layout.NewBlockMargin(0, 0, layout.Pre(layout.Plain(marker))),
			layout.NewBlockMargin(0, 0, layout.TB(body...)),
		})
	}

	*blocks = append(*blocks, layout.NewBlock(layout.Table(rows)))
}

func (r *renderer) procedure(inst *validate.Instance, blocks *[]layout.Block) {
	steps := inst.Children[0].Many()
	rows := make([][]layout.Block, 0, len(steps))

	for i, step := range steps {
		var body []layout.Block

		r.blocks(step.Unchoice().Children[0], &body)

		rows = append(rows, []layout.Block{
			layout.NewBlockMargin(0, 0, layout.Pre(layout.Plain(strconv.Itoa(i+1)+". "))),
			layout.NewBlockMargin(0, 0, layout.TB(body...)),
		})
	}

	*blocks = append(*blocks, layout.NewBlock(layout.Table(rows)))
}

func (r *renderer) namedlist(inst *validate.Instance, blocks *[]layout.Block) {
	for _, item := range inst.Children[0].Many() {
		it := item.Unchoice()

		var term []layout.Text

		r.inlines(it.Children[0], &term)
		*blocks = append(*blocks, layout.NewBlock(layout.Para(layout.Styled(layout.Style{Kind: layout.Bold}, term...))))

		var body []layout.Block

		r.blocks(it.Children[1], &body)

		*blocks = append(*blocks, layout.NewBlockMargin(0, 1, layout.Table([][]layout.Block{{
			layout.NewBlockMargin(0, 0, layout.Pre(layout.Plain("   "))),
			layout.NewBlockMargin(0, 0, layout.TB(body...)),
		}})))
	}
}

func (r *renderer) inlines(doc *validate.Instance, texts *[]layout.Text) {
	for _, d := range doc.Many() {
		inst := d.Unchoice()

		if inst.Kind == validate.InstanceText {
			*texts = append(*texts, layout.Plain(inst.Text))
			continue
		}

		switch inst.Tag {
		case "emph", "replaceable":
			var inner []layout.Text

			r.inlines(inst.Children[0], &inner)
			*texts = append(*texts, layout.Styled(layout.Style{Kind: layout.Italic}, inner...))

		case "strong", "code", "filename", "envar", "command":
			var inner []layout.Text

			r.inlines(inst.Children[0], &inner)
			*texts = append(*texts, layout.Styled(layout.Style{Kind: layout.Bold}, inner...))

		case "todo":
			var inner []layout.Text

			inner = append(inner, layout.Plain("TODO: "))
			r.inlines(inst.Children[0], &inner)
			*texts = append(*texts, layout.Styled(layout.Style{Kind: layout.Bold}, inner...))

		case "uri":
			*texts = append(*texts, layout.Styled(layout.Style{Kind: layout.Underline}, layout.Plain(inst.Children[0].Text)))

		case "xref":
			*texts = append(*texts, layout.Styled(layout.Style{Kind: layout.Underline}, layout.Plain("-> "+inst.Children[0].Text)))

		case "link":
			r.inlines(inst.Children[1], texts)

			url := inst.Children[0]
			*texts = append(*texts, layout.Plain(" ("))
			*texts = append(*texts, layout.Styled(layout.Style{Kind: layout.Bold}, layout.Plain(url.Text)))
			*texts = append(*texts, layout.Plain(")"))

		default:
			*texts = append(*texts, layout.Plain("<UNHANDLED>"))
		}
	}
}

func spaces(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}

	return string(b)
}
