package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"resume-ats/internal/extract"
	"resume-ats/internal/i18n"
	"resume-ats/resume/model"
	"resume-ats/resume/render"
)

func main() {
	outDir := flag.String("out", "./out", "output directory for the sample preview files")
	locale := flag.String("locale", "id", "preview locale (id or en)")
	flag.Parse()

	loc, err := i18n.ParseLocale(*locale)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid locale: %v\n", err)
		os.Exit(1)
	}

	sample := model.Sample()
	htmlBytes, err := render.RenderHTML(sample, loc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "render html failed: %v\n", err)
		os.Exit(1)
	}
	docxBytes, err := render.RenderDOCX(sample, loc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "render docx failed: %v\n", err)
		os.Exit(1)
	}

	if err := writeOutputs(*outDir, sample, htmlBytes, docxBytes); err != nil {
		fmt.Fprintf(os.Stderr, "write failed: %v\n", err)
		os.Exit(1)
	}

	if err := validateRenderedDocx(docxBytes, sample); err != nil {
		fmt.Fprintf(os.Stderr, "render validation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("OK: wrote %s\n", *outDir)
}

func writeOutputs(dir string, r model.Resume, htmlBytes, docxBytes []byte) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, "sample_resume.html"), htmlBytes, 0o644); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, "sample_resume.docx"), docxBytes, 0o644); err != nil {
		return err
	}

	payload, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "sample_resume_model.json"), payload, 0o644)
}

// validateRenderedDocx reads the package back and checks that the name and every job
// title made it into the document text.
func validateRenderedDocx(docxBytes []byte, r model.Resume) error {
	text, err := extract.ExtractTextFromBytes(context.Background(), docxBytes, extract.MimeDOCX, "sample_resume.docx")
	if err != nil {
		return err
	}
	want := []string{r.PersonalInfo.FullName}
	for _, exp := range r.Experiences {
		want = append(want, exp.JobTitle)
	}
	for _, w := range want {
		if w != "" && !strings.Contains(text, w) {
			return fmt.Errorf("%q missing from rendered document", w)
		}
	}
	return nil
}
