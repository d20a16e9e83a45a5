package render

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"strconv"
	"strings"

	"resume-ats/internal/i18n"
	"resume-ats/resume/model"
)

const (
	contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>
</Types>`

	packageRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

	documentRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>
</Relationships>`

	stylesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:docDefaults><w:rPrDefault><w:rPr><w:rFonts w:ascii="Times New Roman" w:hAnsi="Times New Roman" w:cs="Times New Roman"/><w:sz w:val="22"/></w:rPr></w:rPrDefault></w:docDefaults>
<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/><w:pPr><w:spacing w:after="40"/></w:pPr></w:style>
</w:styles>`
)

// A4 in twentieths of a point, 20mm margins.
const (
	pageWidthTwips  = 11906
	pageHeightTwips = 16838
	pageMarginTwips = 1134
)

// RenderDOCX renders r as a WordprocessingML package with the same layout as the preview.
func RenderDOCX(r model.Resume, loc i18n.Locale) ([]byte, error) {
	return RenderLayoutDOCX(Layout(r, loc))
}

// RenderLayoutDOCX encodes an already built layout.
func RenderLayoutDOCX(doc Document) ([]byte, error) {
	documentXML := buildDocumentXML(doc)
	if err := validateDocumentXMLStrict(documentXML); err != nil {
		return nil, &RenderError{Format: "docx", Message: "invalid document.xml", Cause: err}
	}
	if err := validateDocumentXMLStructure(documentXML); err != nil {
		return nil, &RenderError{Format: "docx", Message: "invalid document.xml", Cause: err}
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", packageRelsXML},
		{"word/document.xml", documentXML},
		{"word/_rels/document.xml.rels", documentRelsXML},
		{"word/styles.xml", stylesXML},
	}
	for _, part := range parts {
		if err := writeZipEntry(zw, part.name, []byte(part.content)); err != nil {
			return nil, &RenderError{Format: "docx", Message: "write " + part.name, Cause: err}
		}
	}
	if err := zw.Close(); err != nil {
		return nil, &RenderError{Format: "docx", Message: "close package", Cause: err}
	}
	return buf.Bytes(), nil
}

type docxWriter struct {
	b strings.Builder
}

func buildDocumentXML(doc Document) string {
	w := &docxWriter{}
	w.b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	w.b.WriteString(`<w:document xmlns:w="` + wmlNamespace + `" xmlns:r="` + relNamespace + `"><w:body>`)

	w.paragraph("center", StyleMap["name"], doc.Name)
	if len(doc.Contacts) > 0 {
		w.paragraph("center", RunStyle{}, strings.Join(doc.Contacts, " | "))
	}

	for _, sec := range doc.Sections {
		if sec.Heading != "" {
			w.heading(sec.Heading)
		}
		if sec.Paragraph != "" {
			w.paragraph("both", RunStyle{}, sec.Paragraph)
		}
		for _, e := range sec.Entries {
			w.entry(e)
		}
		if len(sec.Columns) > 0 {
			w.columns(sec.Columns)
		}
		for _, item := range sec.Items {
			w.paragraph("", RunStyle{}, Bullet+" "+item)
		}
	}

	w.b.WriteString(`<w:sectPr><w:pgSz w:w="` + strconv.Itoa(pageWidthTwips) + `" w:h="` + strconv.Itoa(pageHeightTwips) + `"/>`)
	margin := strconv.Itoa(pageMarginTwips)
	w.b.WriteString(`<w:pgMar w:top="` + margin + `" w:right="` + margin + `" w:bottom="` + margin + `" w:left="` + margin + `" w:header="0" w:footer="0" w:gutter="0"/></w:sectPr>`)
	w.b.WriteString(`</w:body></w:document>`)
	return w.b.String()
}

func (w *docxWriter) heading(text string) {
	w.b.WriteString(`<w:p><w:pPr><w:pBdr><w:bottom w:val="single" w:sz="6" w:space="1" w:color="` + HeadingColor + `"/></w:pBdr><w:spacing w:before="200" w:after="80"/></w:pPr>`)
	w.run(StyleMap["sectionHeading"], text)
	w.b.WriteString(`</w:p>`)
}

func (w *docxWriter) entry(e Entry) {
	if e.Title != "" {
		w.paragraph("", StyleMap["roleLine"], e.Title)
	}
	if e.Subtitle != "" {
		w.paragraph("", RunStyle{}, e.Subtitle)
	}
	if e.Meta != "" {
		w.paragraph("", StyleMap["meta"], e.Meta)
	}
	if e.Label != "" {
		w.paragraph("", RunStyle{Bold: true}, e.Label)
	}
	for _, bullet := range e.Bullets {
		w.paragraph("", RunStyle{}, bullet)
	}
}

func (w *docxWriter) columns(cols []Column) {
	w.b.WriteString(`<w:tbl><w:tblPr><w:tblW w:w="5000" w:type="pct"/><w:tblLayout w:type="fixed"/></w:tblPr><w:tblGrid>`)
	width := strconv.Itoa((pageWidthTwips - 2*pageMarginTwips) / len(cols))
	for range cols {
		w.b.WriteString(`<w:gridCol w:w="` + width + `"/>`)
	}
	w.b.WriteString(`</w:tblGrid><w:tr>`)
	for _, col := range cols {
		w.b.WriteString(`<w:tc><w:tcPr><w:tcW w:w="` + width + `" w:type="dxa"/></w:tcPr>`)
		w.paragraph("", StyleMap["sectionHeading"], col.Heading)
		for _, item := range col.Items {
			w.paragraph("", RunStyle{}, Bullet+" "+item)
		}
		w.b.WriteString(`</w:tc>`)
	}
	w.b.WriteString(`</w:tr></w:tbl>`)
}

func (w *docxWriter) paragraph(align string, style RunStyle, text string) {
	w.b.WriteString(`<w:p>`)
	if align != "" {
		w.b.WriteString(`<w:pPr><w:jc w:val="` + align + `"/></w:pPr>`)
	}
	w.run(style, text)
	w.b.WriteString(`</w:p>`)
}

func (w *docxWriter) run(style RunStyle, text string) {
	w.b.WriteString(`<w:r>`)
	if props := runProperties(style); props != "" {
		w.b.WriteString(`<w:rPr>` + props + `</w:rPr>`)
	}
	w.b.WriteString(`<w:t xml:space="preserve">`)
	_ = xml.EscapeText(&w.b, []byte(text))
	w.b.WriteString(`</w:t></w:r>`)
}

func runProperties(style RunStyle) string {
	var b strings.Builder
	if style.Bold {
		b.WriteString(`<w:b/>`)
	}
	if style.Italic {
		b.WriteString(`<w:i/>`)
	}
	if style.Color != "" {
		b.WriteString(`<w:color w:val="` + style.Color + `"/>`)
	}
	if style.Size > 0 {
		b.WriteString(`<w:sz w:val="` + strconv.Itoa(style.Size) + `"/>`)
	}
	return b.String()
}
