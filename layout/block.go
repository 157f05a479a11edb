package layout

// ContentKind identifies the variant of a [Block]'s [Content].
type ContentKind int

const (
	// ContentPara is a word-wrapped paragraph.
	ContentPara ContentKind = iota
	// ContentPre is preformatted text, broken into lines on '\n' with no
	// wrapping.
	ContentPre
	// ContentTB ("top-to-bottom") is a vertical sequence of child blocks.
	ContentTB
	// ContentTable is a grid of blocks, column widths computed from
	// content.
	ContentTable
)

// Content is the body of a [Block].
type Content struct {
	Kind   ContentKind
	Texts  []Text  // valid for ContentPara, ContentPre
	Blocks []Block // valid for ContentTB
	Rows   [][]Block
}

// Para builds a word-wrapped paragraph.
func Para(texts ...Text) Content {
	return Content{Kind: ContentPara, Texts: texts}
}

// Pre builds preformatted content.
func Pre(texts ...Text) Content {
	return Content{Kind: ContentPre, Texts: texts}
}

// TB builds a vertical sequence of blocks.
func TB(blocks ...Block) Content {
	return Content{Kind: ContentTB, Blocks: blocks}
}

// Table builds a grid of blocks; every row must have the same number of
// columns.
func Table(rows [][]Block) Content {
	return Content{Kind: ContentTable, Rows: rows}
}

// Block is one layout unit: a content body plus the blank-line margin to
// reserve above and below it, collapsed against neighbouring margins the
// way adjoining CSS margins do.
type Block struct {
	MarginTop    int
	MarginBottom int
	Content      Content
}

// NewBlock wraps content with the default one-line margin above and below.
func NewBlock(content Content) Block {
	return Block{MarginTop: 1, MarginBottom: 1, Content: content}
}

// NewBlockMargin wraps content with explicit margins, e.g. 0 to butt a
// block directly against its neighbour.
func NewBlockMargin(marginTop, marginBottom int, content Content) Block {
	return Block{MarginTop: marginTop, MarginBottom: marginBottom, Content: content}
}
