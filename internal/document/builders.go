package document

// Fill colors shared by the section layouts.
const (
	// ShadeHeader resolves to Config.HeaderBackground when rendered.
	ShadeHeader = "header"

	ShadeLightBlue   = "E8F0FF"
	ShadeLightGreen  = "D5F5D5"
	ShadeLightPink   = "FFF0F0"
	ShadeLightYellow = "FFF8E8"
	ShadeLightGray   = "F0F0F0"
	ShadeFather      = "E8F8FF"
	ShadeMother      = "FFE8F0"
)

// Common column layouts, in DXA.
var (
	WidthsLabelValue = []int{3500, 5500}
	WidthsHalves     = []int{4500, 4500}
	WidthsThirds     = []int{3000, 3000, 3000}
	WidthsFifths     = []int{1800, 1800, 1800, 1800, 1800}
)

// Format is the optional character and spacing formatting for a paragraph
// built with Text or Centered.
type Format struct {
	Bold   bool
	Italic bool
	Size   int
	Before int
	After  int
}

// Field is one label/value pair of a FieldTable.
type Field struct {
	Label string
	Value string
}

// Title is the single top-level heading of a section.
func Title(text string, size int) Paragraph {
	return Paragraph{
		Style:   StyleTitle,
		Align:   AlignCenter,
		Spacing: Spacing{Before: 200, After: 200},
		Runs:    []Run{{Text: text, Bold: true, Size: size}},
	}
}

// Heading is a centered sub-heading inside a section.
func Heading(text string) Paragraph {
	return Paragraph{
		Style:   StyleHeading2,
		Align:   AlignCenter,
		Spacing: Spacing{Before: 200, After: 100},
		Runs:    []Run{{Text: text, Bold: true, Size: 24}},
	}
}

// Text is a left-aligned paragraph. Spacing defaults to 100 after.
func Text(text string, f Format) Paragraph {
	return Paragraph{
		Align:   AlignLeft,
		Spacing: f.spacing(),
		Runs:    []Run{{Text: text, Bold: f.Bold, Italic: f.Italic, Size: f.Size}},
	}
}

// Centered is a centered paragraph. Spacing defaults to 100 after.
func Centered(text string, f Format) Paragraph {
	p := Text(text, f)
	p.Align = AlignCenter
	return p
}

// Label is a bold left-aligned paragraph introducing a group of lines.
func Label(text string) Paragraph {
	return Text(text, Format{Bold: true, Before: 200, After: 100})
}

// LabelValue renders "<label> <value>" with the label in bold.
func LabelValue(label, value string) Paragraph {
	return Paragraph{
		Spacing: Spacing{After: 50},
		Runs:    []Run{{Text: label, Bold: true}, {Text: " " + value}},
	}
}

// Inline is LabelValue without paragraph spacing, for use inside cells.
func Inline(label, value string) Paragraph {
	return Paragraph{Runs: []Run{{Text: label, Bold: true}, {Text: " " + value}}}
}

// Plain is an unformatted paragraph without spacing, for use inside cells.
func Plain(text string) Paragraph {
	return Paragraph{Runs: []Run{{Text: text}}}
}

// Bold is a bold paragraph without spacing, for use inside cells.
func Bold(text string) Paragraph {
	return Paragraph{Runs: []Run{{Text: text, Bold: true}}}
}

// PageBreak forces the following content onto a new page.
func PageBreak() Paragraph {
	return Paragraph{PageBreak: true}
}

// TextCell is a plain left-aligned cell.
func TextCell(text string, width int) Cell {
	return Cell{Width: width, Paragraphs: []Paragraph{Plain(text)}}
}

// CenteredCell is a plain centered cell.
func CenteredCell(text string, width int) Cell {
	p := Plain(text)
	p.Align = AlignCenter
	return Cell{Width: width, Paragraphs: []Paragraph{p}}
}

// StackCell holds several paragraphs stacked vertically.
func StackCell(width int, paragraphs ...Paragraph) Cell {
	return Cell{Width: width, Paragraphs: paragraphs}
}

// HeaderCell is a centered bold cell with a background fill.
func HeaderCell(text string, width int, shade string) Cell {
	p := Bold(text)
	p.Align = AlignCenter
	return Cell{Width: width, Shading: shade, Paragraphs: []Paragraph{p}}
}

// FieldTable is a two-column table with a shaded label column.
func FieldTable(shade string, fields ...Field) Table {
	t := Table{ColumnWidths: WidthsLabelValue}
	for _, f := range fields {
		t.Rows = append(t.Rows, Row{Cells: []Cell{
			HeaderCell(f.Label, WidthsLabelValue[0], shade),
			TextCell(f.Value, WidthsLabelValue[1]),
		}})
	}
	return t
}

// GridTable is a table with one shaded header row followed by rows of
// centered values. Each row must have one value per column.
func GridTable(widths []int, shade string, header []string, rows ...[]string) Table {
	t := Table{ColumnWidths: widths}
	head := Row{}
	for i, h := range header {
		head.Cells = append(head.Cells, HeaderCell(h, widths[i], shade))
	}
	t.Rows = append(t.Rows, head)
	for _, values := range rows {
		r := Row{}
		for i, v := range values {
			r.Cells = append(r.Cells, CenteredCell(v, widths[i]))
		}
		t.Rows = append(t.Rows, r)
	}
	return t
}

// PairTable lays out two parallel columns, such as husband and wife, under
// a shaded header row. left and right must have the same length.
func PairTable(leftHeader, rightHeader, leftShade, rightShade string, left, right [][]Paragraph) Table {
	w := WidthsHalves
	t := Table{ColumnWidths: w}
	t.Rows = append(t.Rows, Row{Cells: []Cell{
		HeaderCell(leftHeader, w[0], leftShade),
		HeaderCell(rightHeader, w[1], rightShade),
	}})
	for i := range left {
		t.Rows = append(t.Rows, Row{Cells: []Cell{
			StackCell(w[0], left[i]...),
			StackCell(w[1], right[i]...),
		}})
	}
	return t
}

func (f Format) spacing() Spacing {
	if f.Before == 0 && f.After == 0 {
		return Spacing{After: 100}
	}
	return Spacing{Before: f.Before, After: f.After}
}
