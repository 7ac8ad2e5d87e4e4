// Package document holds the content blocks that section generators emit and
// the DOCX writer that turns an ordered list of blocks into a Word file.
package document

import "strings"

// Block is one positional unit of body content: a Paragraph or a Table.
type Block interface {
	block()
}

// Alignment of a paragraph within its container.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
)

// Border selects the line color used around a table cell. The actual colors
// come from Config at render time.
type Border int

const (
	BorderRegular Border = iota
	BorderLight
)

// Paragraph style identifiers written to styles.xml.
const (
	StyleTitle    = "Title"
	StyleHeading1 = "Heading1"
	StyleHeading2 = "Heading2"
)

// Spacing before and after a paragraph, in twentieths of a point.
type Spacing struct {
	Before int
	After  int
}

// Run is a span of text sharing one character format.
type Run struct {
	Text   string
	Bold   bool
	Italic bool
	// Size in half-points; zero inherits from the paragraph style.
	Size int
}

// Paragraph is a single block of runs. A paragraph with PageBreak set renders
// as a hard page break and ignores its runs.
type Paragraph struct {
	Style     string
	Align     Alignment
	Spacing   Spacing
	Runs      []Run
	PageBreak bool
}

// Cell is one table cell. Shading is a hex fill color or ShadeHeader.
type Cell struct {
	Width      int
	Shading    string
	Border     Border
	Paragraphs []Paragraph
}

// Row of cells.
type Row struct {
	Cells []Cell
}

// Table with fixed column widths in DXA (twentieths of a point).
type Table struct {
	ColumnWidths []int
	Rows         []Row
}

func (Paragraph) block() {}
func (Table) block()     {}

// Text returns the concatenated run text of the paragraph.
func (p Paragraph) Text() string {
	var sb strings.Builder
	for _, r := range p.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// Titles lists the text of every Title-styled paragraph in blocks, in order.
func Titles(blocks []Block) []string {
	var titles []string
	for _, b := range blocks {
		if p, ok := b.(Paragraph); ok && p.Style == StyleTitle {
			titles = append(titles, p.Text())
		}
	}
	return titles
}

// Texts flattens every run of every paragraph, including those nested in
// table cells, into a slice of paragraph strings.
func Texts(blocks []Block) []string {
	var out []string
	for _, b := range blocks {
		switch v := b.(type) {
		case Paragraph:
			out = append(out, v.Text())
		case Table:
			for _, row := range v.Rows {
				for _, cell := range row.Cells {
					for _, p := range cell.Paragraphs {
						out = append(out, p.Text())
					}
				}
			}
		}
	}
	return out
}
