package document

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
	"time"
)

const (
	xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"
	nsMain    = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

	contentTypes = xmlHeader + `<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
		`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
		`<Default Extension="xml" ContentType="application/xml"/>` +
		`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
		`<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>` +
		`</Types>`

	packageRels = xmlHeader + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
		`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
		`</Relationships>`

	documentRels = xmlHeader + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
		`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>` +
		`</Relationships>`

	// A4 in DXA.
	pageWidth  = 11906
	pageHeight = 16838
)

// zipEpoch is stamped on every archive entry so identical blocks always
// produce identical bytes.
var zipEpoch = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

// Render serializes blocks into a .docx file using cfg for styles and page
// layout. The output is a pure function of its inputs.
func Render(cfg Config, blocks []Block) ([]byte, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid document config: %w", err)
	}

	body, err := renderBody(cfg, blocks)
	if err != nil {
		return nil, err
	}

	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypes},
		{"_rels/.rels", packageRels},
		{"word/_rels/document.xml.rels", documentRels},
		{"word/document.xml", body},
		{"word/styles.xml", renderStyles(cfg)},
	}

	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)
	for _, p := range parts {
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     p.name,
			Method:   zip.Deflate,
			Modified: zipEpoch,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", p.name, err)
		}
		if _, err := w.Write([]byte(p.content)); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", p.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize docx archive: %w", err)
	}
	return buf.Bytes(), nil
}

func renderBody(cfg Config, blocks []Block) (string, error) {
	var sb strings.Builder
	sb.WriteString(xmlHeader)
	sb.WriteString(`<w:document xmlns:w="` + nsMain + `"><w:body>`)

	endsWithTable := false
	for i, b := range blocks {
		switch v := b.(type) {
		case Paragraph:
			writeParagraph(&sb, v)
			endsWithTable = false
		case Table:
			if err := writeTable(&sb, cfg, v); err != nil {
				return "", fmt.Errorf("block %d: %w", i, err)
			}
			endsWithTable = true
		default:
			return "", fmt.Errorf("block %d: unsupported block type %T", i, b)
		}
	}
	// Word expects a paragraph between the last table and the section properties.
	if endsWithTable || len(blocks) == 0 {
		sb.WriteString(`<w:p/>`)
	}

	m := cfg.Margins
	fmt.Fprintf(&sb, `<w:sectPr><w:pgSz w:w="%d" w:h="%d"/>`, pageWidth, pageHeight)
	fmt.Fprintf(&sb, `<w:pgMar w:top="%d" w:right="%d" w:bottom="%d" w:left="%d" w:header="708" w:footer="708" w:gutter="0"/>`,
		m.Top, m.Right, m.Bottom, m.Left)
	sb.WriteString(`</w:sectPr></w:body></w:document>`)
	return sb.String(), nil
}

func writeParagraph(sb *strings.Builder, p Paragraph) {
	if p.PageBreak {
		sb.WriteString(`<w:p><w:r><w:br w:type="page"/></w:r></w:p>`)
		return
	}

	sb.WriteString(`<w:p>`)
	if p.Style != "" || p.Align != AlignLeft || p.Spacing != (Spacing{}) {
		sb.WriteString(`<w:pPr>`)
		if p.Style != "" {
			fmt.Fprintf(sb, `<w:pStyle w:val="%s"/>`, p.Style)
		}
		if p.Spacing != (Spacing{}) {
			fmt.Fprintf(sb, `<w:spacing w:before="%d" w:after="%d"/>`, p.Spacing.Before, p.Spacing.After)
		}
		if p.Align == AlignCenter {
			sb.WriteString(`<w:jc w:val="center"/>`)
		}
		sb.WriteString(`</w:pPr>`)
	}
	for _, r := range p.Runs {
		writeRun(sb, r)
	}
	sb.WriteString(`</w:p>`)
}

func writeRun(sb *strings.Builder, r Run) {
	sb.WriteString(`<w:r>`)
	if r.Bold || r.Italic || r.Size > 0 {
		sb.WriteString(`<w:rPr>`)
		if r.Bold {
			sb.WriteString(`<w:b/>`)
		}
		if r.Italic {
			sb.WriteString(`<w:i/>`)
		}
		if r.Size > 0 {
			fmt.Fprintf(sb, `<w:sz w:val="%d"/><w:szCs w:val="%d"/>`, r.Size, r.Size)
		}
		sb.WriteString(`</w:rPr>`)
	}
	sb.WriteString(`<w:t xml:space="preserve">`)
	_ = xml.EscapeText(sb, []byte(r.Text))
	sb.WriteString(`</w:t></w:r>`)
}

func writeTable(sb *strings.Builder, cfg Config, t Table) error {
	if len(t.ColumnWidths) == 0 {
		return fmt.Errorf("table has no columns")
	}
	total := 0
	for _, w := range t.ColumnWidths {
		total += w
	}

	fmt.Fprintf(sb, `<w:tbl><w:tblPr><w:tblW w:w="%d" w:type="dxa"/><w:tblLayout w:type="fixed"/></w:tblPr><w:tblGrid>`, total)
	for _, w := range t.ColumnWidths {
		fmt.Fprintf(sb, `<w:gridCol w:w="%d"/>`, w)
	}
	sb.WriteString(`</w:tblGrid>`)

	for ri, row := range t.Rows {
		if len(row.Cells) != len(t.ColumnWidths) {
			return fmt.Errorf("row %d has %d cells, table has %d columns", ri, len(row.Cells), len(t.ColumnWidths))
		}
		sb.WriteString(`<w:tr>`)
		for _, c := range row.Cells {
			writeCell(sb, cfg, c)
		}
		sb.WriteString(`</w:tr>`)
	}
	sb.WriteString(`</w:tbl>`)
	return nil
}

func writeCell(sb *strings.Builder, cfg Config, c Cell) {
	color := cfg.BorderColor
	if c.Border == BorderLight {
		color = cfg.LightBorderColor
	}

	sb.WriteString(`<w:tc><w:tcPr>`)
	fmt.Fprintf(sb, `<w:tcW w:w="%d" w:type="dxa"/>`, c.Width)
	sb.WriteString(`<w:tcBorders>`)
	for _, side := range []string{"top", "left", "bottom", "right"} {
		fmt.Fprintf(sb, `<w:%s w:val="single" w:sz="4" w:space="0" w:color="%s"/>`, side, color)
	}
	sb.WriteString(`</w:tcBorders>`)
	if fill := resolveShade(cfg, c.Shading); fill != "" {
		fmt.Fprintf(sb, `<w:shd w:val="clear" w:color="auto" w:fill="%s"/>`, fill)
	}
	sb.WriteString(`</w:tcPr>`)

	if len(c.Paragraphs) == 0 {
		sb.WriteString(`<w:p/>`)
	}
	for _, p := range c.Paragraphs {
		writeParagraph(sb, p)
	}
	sb.WriteString(`</w:tc>`)
}

func resolveShade(cfg Config, shade string) string {
	if shade == ShadeHeader {
		return cfg.HeaderBackground
	}
	if hexColor.MatchString(shade) {
		return shade
	}
	return ""
}

func renderStyles(cfg Config) string {
	var sb strings.Builder
	font := xmlAttr(cfg.Font)
	fonts := fmt.Sprintf(`<w:rFonts w:ascii="%s" w:hAnsi="%s" w:cs="%s" w:eastAsia="%s"/>`, font, font, font, font)

	sb.WriteString(xmlHeader)
	sb.WriteString(`<w:styles xmlns:w="` + nsMain + `">`)
	fmt.Fprintf(&sb, `<w:docDefaults><w:rPrDefault><w:rPr>%s<w:sz w:val="%d"/><w:szCs w:val="%d"/></w:rPr></w:rPrDefault><w:pPrDefault/></w:docDefaults>`,
		fonts, cfg.FontSize, cfg.FontSize)
	sb.WriteString(`<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/><w:qFormat/></w:style>`)

	styles := []struct {
		id, name      string
		size          int
		before, after int
		center        bool
	}{
		{StyleTitle, "Title", cfg.TitleSize, 120, 120, true},
		{StyleHeading1, "heading 1", cfg.Heading1Size, 240, 120, false},
		{StyleHeading2, "heading 2", cfg.Heading2Size, 180, 100, false},
	}
	for _, s := range styles {
		fmt.Fprintf(&sb, `<w:style w:type="paragraph" w:styleId="%s"><w:name w:val="%s"/><w:basedOn w:val="Normal"/><w:next w:val="Normal"/><w:qFormat/>`, s.id, s.name)
		fmt.Fprintf(&sb, `<w:pPr><w:spacing w:before="%d" w:after="%d"/>`, s.before, s.after)
		if s.center {
			sb.WriteString(`<w:jc w:val="center"/>`)
		}
		sb.WriteString(`</w:pPr>`)
		fmt.Fprintf(&sb, `<w:rPr>%s<w:b/><w:color w:val="000000"/><w:sz w:val="%d"/><w:szCs w:val="%d"/></w:rPr></w:style>`, fonts, s.size, s.size)
	}
	sb.WriteString(`</w:styles>`)
	return sb.String()
}

func xmlAttr(s string) string {
	var sb strings.Builder
	_ = xml.EscapeText(&sb, []byte(s))
	return sb.String()
}
