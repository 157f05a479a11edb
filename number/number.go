package number

import (
	"strconv"
	"strings"

	"github.com/sstlang/sst/validate"
)

// TocEntry is one numbered node -- a chapter, section, or subsection --
// together with a link to its enclosing entry, so its full dotted number
// can be reconstructed without revisiting the tree.
type TocEntry struct {
	Parent *TocEntry
	Number int
	Title  *validate.Instance
}

// Path returns entry's number and each ancestor's number, outermost first.
func (entry *TocEntry) Path() []string {
	var numbers []string

	for e := entry; e != nil; e = e.Parent {
		numbers = append(numbers, strconv.Itoa(e.Number))
	}

	for i, j := 0, len(numbers)-1; i < j; i, j = i+1, j-1 {
		numbers[i], numbers[j] = numbers[j], numbers[i]
	}

	return numbers
}

// String renders entry's dotted number, e.g. "2.3.1".
func (entry *TocEntry) String() string {
	return strings.Join(entry.Path(), ".")
}

// Numbers is a table of contents: every chapter, section, and subsection
// instance in a validated document, keyed by its own node identity.
type Numbers struct {
	toc map[*validate.Instance]*TocEntry
}

// numberedTags names the element tags that receive a number of their own.
// chapter, section, and subsection nest (each resets its children's
// counter to 1); other structural elements -- book, part, article,
// simplesect -- are not numbered.
var numberedTags = map[string]bool{
	"chapter":    true,
	"section":    true,
	"subsection": true,
}

// Create walks doc and assigns a number to every chapter, section, and
// subsection instance it contains.
func Create(doc *validate.Instance) *Numbers {
	n := &Numbers{toc: map[*validate.Instance]*TocEntry{}}

	next := 1

	n.traverse(doc, nil, &next)

	return n
}

// Get returns the TocEntry assigned to doc, or nil if doc was not a
// numbered element.
func (n *Numbers) Get(doc *validate.Instance) *TocEntry {
	return n.toc[doc]
}

func (n *Numbers) traverse(inst *validate.Instance, parent *TocEntry, next *int) {
	childNext := next

	if inst.Kind == validate.InstanceElement && numberedTags[inst.Tag] {
		entry := &TocEntry{
			Parent: parent,
			Number: *next,
			Title:  inst.Children[0],
		}

		n.toc[inst] = entry
		parent = entry
		*next++

		newCounter := 1
		childNext = &newCounter
	}

	switch inst.Kind {
	case validate.InstanceText:
	case validate.InstanceElement:
		for _, c := range inst.Children {
			n.traverse(c, parent, childNext)
		}
	case validate.InstancePara:
		n.traverse(inst.Child, parent, childNext)
	case validate.InstanceSeq, validate.InstanceMany:
		for _, c := range inst.Children {
			n.traverse(c, parent, childNext)
		}
	case validate.InstanceChoice:
		n.traverse(inst.Child, parent, childNext)
	}
}
