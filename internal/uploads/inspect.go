package uploads

import (
	"context"
	"fmt"

	"resume-ats/internal/analyses"
	"resume-ats/internal/extract"
)

// Inspection is what a reader sees in an exported CV file.
type Inspection struct {
	File     string            `json:"file"`
	MimeType string            `json:"mimeType"`
	Pages    int               `json:"pages,omitempty"`
	Chars    int               `json:"chars"`
	Coverage analyses.Coverage `json:"coverage"`
	Text     string            `json:"text,omitempty"`
}

// Inspect extracts the text of a PDF or DOCX and reports its keyword coverage.
func Inspect(ctx context.Context, fileName string, data []byte) (Inspection, error) {
	mime := extract.DetectMimeType(fileName, data)
	if _, ok := allowedContentTypes[mime]; !ok {
		return Inspection{}, fmt.Errorf("%w: %s", ErrUnsupportedType, mime)
	}
	text, err := extract.ExtractTextFromBytes(ctx, data, mime, fileName)
	if err != nil {
		return Inspection{}, fmt.Errorf("extract %s: %w", fileName, err)
	}
	res := Inspection{
		File:     fileName,
		MimeType: mime,
		Chars:    len([]rune(text)),
		Coverage: analyses.KeywordCoverage(text),
		Text:     text,
	}
	if mime == extract.MimePDF {
		pages, err := extract.PDFPageCount(data)
		if err != nil {
			return Inspection{}, fmt.Errorf("count pages in %s: %w", fileName, err)
		}
		res.Pages = pages
	}
	return res, nil
}
