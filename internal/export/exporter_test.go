package export

import (
	"context"
	"errors"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"resume-ats/internal/extract/extracttest"
	"resume-ats/internal/i18n"
	"resume-ats/internal/shared/storage/object/local"
	"resume-ats/resume/model"
	"resume-ats/resume/render"
)

type fakePrinter struct {
	mu      sync.Mutex
	results map[string]printResult
	calls   []string
	pages   [][]byte
}

type printResult struct {
	data []byte
	err  error
}

func (f *fakePrinter) PrintPDF(_ context.Context, html []byte, profile Profile) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, profile.Name)
	f.pages = append(f.pages, html)
	res, ok := f.results[profile.Name]
	if !ok {
		return nil, errors.New("unexpected profile " + profile.Name)
	}
	return res.data, res.err
}

func okPDF() printResult {
	return printResult{data: extracttest.MinimalPDF("Ronald Gunawan")}
}

func TestExportPrimarySucceeds(t *testing.T) {
	printer := &fakePrinter{results: map[string]printResult{"primary": okPDF()}}
	exp := New(printer)

	res, err := exp.Export(context.Background(), Request{Resume: model.Sample(), Locale: i18n.EN, Format: FormatPDF})
	require.NoError(t, err)

	assert.Equal(t, []string{"primary"}, printer.calls)
	assert.Equal(t, "primary", res.Profile)
	assert.Equal(t, 1, res.Attempts)
	assert.Equal(t, ContentTypePDF, res.ContentType)
	assert.Equal(t, "Ronald Gunawan.pdf", res.Filename)
	assert.True(t, strings.HasPrefix(string(res.Data), "%PDF-"))
}

func TestExportPrintsOnlyTheRegion(t *testing.T) {
	printer := &fakePrinter{results: map[string]printResult{"primary": okPDF()}}
	html := `<html><head><style>p{}</style></head><body><nav>menu</nav><div id="cv-preview"><p>page</p></div><footer>x</footer></body></html>`

	_, err := New(printer).Export(context.Background(), Request{HTML: []byte(html), Format: FormatPDF})
	require.NoError(t, err)
	require.Len(t, printer.pages, 1)

	dom, err := goquery.NewDocumentFromReader(strings.NewReader(string(printer.pages[0])))
	require.NoError(t, err)
	assert.Equal(t, 0, dom.Find("nav").Length())
	assert.Equal(t, 0, dom.Find("footer").Length())
	assert.Equal(t, "page", dom.Find("#cv-preview p").Text())
	assert.Equal(t, 1, dom.Find("head style").Length())
}

func TestExportStripsActiveContent(t *testing.T) {
	printer := &fakePrinter{results: map[string]printResult{"primary": okPDF()}}
	html := `<html><head>
<script>fetch("http://169.254.169.254/latest/meta-data/")</script>
<link rel="prefetch" href="http://10.0.0.1/internal">
<link rel="stylesheet" href="print.css">
<style>p{}</style>
</head><body>
<div id="cv-preview" onclick="steal()">
<p onmouseover="steal()">page</p>
<script>steal()</script>
<iframe src="http://10.0.0.1/admin"></iframe>
<object data="http://10.0.0.1/x"></object>
<a href="javascript:steal()">link</a>
</div></body></html>`

	_, err := New(printer).Export(context.Background(), Request{HTML: []byte(html), Format: FormatPDF})
	require.NoError(t, err)
	require.Len(t, printer.pages, 1)

	page := string(printer.pages[0])
	assert.NotContains(t, strings.ToLower(page), "<script")
	assert.NotContains(t, page, "169.254.169.254")
	assert.NotContains(t, page, "steal()")

	dom, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	require.NoError(t, err)
	assert.Equal(t, 0, dom.Find("iframe, object, link[rel=prefetch]").Length())
	assert.Equal(t, 1, dom.Find(`link[rel=stylesheet]`).Length())
	assert.Equal(t, 1, dom.Find("head style").Length())
	assert.Equal(t, "page", dom.Find("#cv-preview p").Text())
	assert.Equal(t, "link", dom.Find("#cv-preview a").Text())
	_, hasHref := dom.Find("#cv-preview a").Attr("href")
	assert.False(t, hasHref)
}

func TestExportFallsBackOnce(t *testing.T) {
	printer := &fakePrinter{results: map[string]printResult{
		"primary":  {err: errors.New("canvas too large")},
		"fallback": okPDF(),
	}}
	core, logs := observer.New(zap.WarnLevel)

	res, err := New(printer, WithLogger(zap.New(core))).Export(context.Background(), Request{Resume: model.Sample(), Format: FormatPDF})
	require.NoError(t, err)

	assert.Equal(t, []string{"primary", "fallback"}, printer.calls)
	assert.Equal(t, "fallback", res.Profile)
	assert.Equal(t, 2, res.Attempts)
	assert.Equal(t, 1, logs.FilterMessage("export.attempt_failed").Len())
}

func TestExportUnreadablePDFCountsAsFailure(t *testing.T) {
	printer := &fakePrinter{results: map[string]printResult{
		"primary":  {data: []byte("not a pdf")},
		"fallback": okPDF(),
	}}

	res, err := New(printer).Export(context.Background(), Request{Resume: model.Sample(), Format: FormatPDF})
	require.NoError(t, err)
	assert.Equal(t, "fallback", res.Profile)
}

func TestExportBothProfilesFail(t *testing.T) {
	primaryErr := errors.New("primary boom")
	fallbackErr := errors.New("fallback boom")
	printer := &fakePrinter{results: map[string]printResult{
		"primary":  {err: primaryErr},
		"fallback": {err: fallbackErr},
	}}
	dir := t.TempDir()
	exp := New(printer, WithSink(local.New(dir)))

	_, err := exp.Export(context.Background(), Request{Resume: model.Sample(), Locale: i18n.EN, Format: FormatPDF})
	require.Error(t, err)

	var exportErr *Error
	require.True(t, errors.As(err, &exportErr))
	assert.ErrorIs(t, err, ErrExportFailed)
	assert.ErrorIs(t, err, primaryErr)
	assert.ErrorIs(t, err, fallbackErr)
	assert.Len(t, exportErr.Attempts, 2)
	assert.Equal(t, "PDF generation failed. Please try again or check your browser compatibility.", exportErr.Message)
	assert.Equal(t, []string{"primary", "fallback"}, printer.calls, "no third attempt")

	entries, readErr := readDirNames(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries, "sink must not be written on failure")
}

func TestExportCustomProfilesReplaceDefaults(t *testing.T) {
	printer := &fakePrinter{results: map[string]printResult{
		"draft": {err: errors.New("draft boom")},
	}}
	exp := New(printer, WithProfiles(Profile{Name: "draft", DeviceScale: 1}))

	_, err := exp.Export(context.Background(), Request{Resume: model.Sample(), Format: FormatPDF})
	var exportErr *Error
	require.True(t, errors.As(err, &exportErr))
	assert.Len(t, exportErr.Attempts, 1)
	assert.Equal(t, []string{"draft"}, printer.calls)
}

func TestExportMissingRegionIsNotRetried(t *testing.T) {
	printer := &fakePrinter{results: map[string]printResult{"primary": okPDF()}}

	_, err := New(printer).Export(context.Background(), Request{HTML: []byte("<html><body><p>no region</p></body></html>"), Format: FormatPDF})
	assert.ErrorIs(t, err, ErrRegionNotFound)
	assert.Empty(t, printer.calls)
}

func TestExportCancelledContextStopsBeforePrinting(t *testing.T) {
	printer := &fakePrinter{results: map[string]printResult{"primary": okPDF()}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(printer).Export(ctx, Request{Resume: model.Sample(), Format: FormatPDF})
	assert.ErrorIs(t, err, ErrExportFailed)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, printer.calls)
}

func TestExportDOCX(t *testing.T) {
	printer := &fakePrinter{}
	res, err := New(printer).Export(context.Background(), Request{Resume: model.Sample(), Locale: i18n.ID, Format: FormatDOCX, Filename: "cv-ronald.pdf"})
	require.NoError(t, err)

	assert.Empty(t, printer.calls)
	assert.Equal(t, ContentTypeDOCX, res.ContentType)
	assert.Equal(t, "cv-ronald.docx", res.Filename)
	assert.Equal(t, 1, res.Attempts)
	assert.True(t, strings.HasPrefix(string(res.Data), "PK"))
}

func TestExportWritesSinkAfterSuccess(t *testing.T) {
	printer := &fakePrinter{results: map[string]printResult{"primary": okPDF()}}
	store := local.New(t.TempDir())

	res, err := New(printer, WithSink(store)).Export(context.Background(), Request{Resume: model.Sample(), Format: FormatPDF})
	require.NoError(t, err)
	require.NotEmpty(t, res.StorageKey)

	rc, err := store.Open(context.Background(), res.StorageKey)
	require.NoError(t, err)
	defer rc.Close()
}

func TestExportRejectsInvalidRequest(t *testing.T) {
	exp := New(&fakePrinter{})

	_, err := exp.Export(context.Background(), Request{Format: "rtf"})
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = exp.Export(context.Background(), Request{Format: FormatPDF, RegionID: "cv preview"})
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = exp.Export(context.Background(), Request{Format: FormatPDF, Locale: "fr"})
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(" DOCX ")
	require.NoError(t, err)
	assert.Equal(t, FormatDOCX, f)

	f, err = ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatPDF, f)

	_, err = ParseFormat("odt")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestFilename(t *testing.T) {
	tests := []struct {
		requested string
		fullName  string
		format    Format
		want      string
	}{
		{fullName: "Ronald Gunawan", format: FormatPDF, want: "Ronald Gunawan.pdf"},
		{fullName: "", format: FormatPDF, want: "resume.pdf"},
		{requested: "my cv.PDF", format: FormatDOCX, want: "my cv.docx"},
		{fullName: "Dr. J. Smith", format: FormatPDF, want: "Dr. J. Smith.pdf"},
		{fullName: "a/b", format: FormatPDF, want: "a_b.pdf"},
		{requested: "../etc", format: FormatPDF, want: "resume.pdf"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Filename(tt.requested, tt.fullName, tt.format))
	}
}

func TestExtractRegionKeepsHead(t *testing.T) {
	html, err := render.RenderHTML(model.Sample(), i18n.EN)
	require.NoError(t, err)

	page, err := ExtractRegion(html, render.RegionID)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(strings.ToLower(string(page)), "<!doctype html>"))
	assert.Equal(t, 1, strings.Count(strings.ToLower(string(page)), "<!doctype"))
	assert.Contains(t, string(page), "Ronald Gunawan")
	assert.Contains(t, string(page), `charset="utf-8"`)
}

func readDirNames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}
