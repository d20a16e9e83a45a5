package render

import (
	"bytes"
	"embed"
	"html/template"

	"resume-ats/internal/i18n"
	"resume-ats/resume/model"
)

//go:embed templates/preview.html.tmpl
var templateFS embed.FS

var previewTemplate = template.Must(template.ParseFS(templateFS, "templates/preview.html.tmpl"))

type htmlData struct {
	Document
	RegionID string
}

// RenderHTML renders the print preview page. The printable region carries id RegionID.
func RenderHTML(r model.Resume, loc i18n.Locale) ([]byte, error) {
	return RenderLayoutHTML(Layout(r, loc))
}

// RenderLayoutHTML renders an already built layout.
func RenderLayoutHTML(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := previewTemplate.Execute(&buf, htmlData{Document: doc, RegionID: RegionID}); err != nil {
		return nil, &TemplateError{Message: "failed to execute preview template", Cause: err}
	}
	return buf.Bytes(), nil
}
