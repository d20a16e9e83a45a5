package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"resume-ats/internal/extract"
	"resume-ats/internal/i18n"
	"resume-ats/internal/shared/metrics"
	"resume-ats/internal/shared/storage/object"
	"resume-ats/internal/shared/telemetry"
	"resume-ats/internal/shared/util"
	"resume-ats/resume/model"
	"resume-ats/resume/render"
)

// Format is an export file format.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
)

const (
	ContentTypePDF  = "application/pdf"
	ContentTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// ParseFormat accepts "pdf" and "docx" in any case. Empty means pdf.
func ParseFormat(raw string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "pdf":
		return FormatPDF, nil
	case "docx":
		return FormatDOCX, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, raw)
	}
}

// Request describes one export. HTML, when set, is printed instead of rendering Resume.
type Request struct {
	Resume   model.Resume
	Locale   i18n.Locale `validate:"omitempty,oneof=id en"`
	Format   Format      `validate:"required,oneof=pdf docx"`
	HTML     []byte
	RegionID string `validate:"omitempty,max=64,excludesall= #<>"`
	Filename string `validate:"omitempty,max=120"`
	// Owner groups stored exports in the sink; it is hashed before use.
	Owner string `validate:"omitempty,max=254"`
}

// Result is a finished export.
type Result struct {
	Filename    string
	ContentType string
	Data        []byte
	Profile     string
	Attempts    int
	StorageKey  string
}

// Exporter prints résumés to PDF through an ordered profile list, or renders DOCX in-process.
type Exporter struct {
	printer        Printer
	profiles       []Profile
	sink           object.ObjectStore
	attemptTimeout time.Duration
	logger         *zap.Logger
	validate       *validator.Validate
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithProfiles replaces the default primary/fallback profiles.
func WithProfiles(profiles ...Profile) Option {
	return func(e *Exporter) {
		if len(profiles) > 0 {
			e.profiles = append([]Profile(nil), profiles...)
		}
	}
}

// WithSink persists every successful export.
func WithSink(store object.ObjectStore) Option {
	return func(e *Exporter) { e.sink = store }
}

// WithAttemptTimeout bounds each print attempt. Zero disables the bound.
func WithAttemptTimeout(d time.Duration) Option {
	return func(e *Exporter) { e.attemptTimeout = d }
}

// WithLogger sets the exporter logger.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Exporter) { e.logger = telemetry.OrNop(logger) }
}

// New builds an Exporter around printer.
func New(printer Printer, opts ...Option) *Exporter {
	e := &Exporter{
		printer:  printer,
		profiles: DefaultProfiles(),
		logger:   zap.NewNop(),
		validate: validator.New(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export produces the requested file. Sinks are only written after a successful attempt.
func (e *Exporter) Export(ctx context.Context, req Request) (Result, error) {
	if req.Format == "" {
		req.Format = FormatPDF
	}
	if err := e.validate.Struct(req); err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	if !req.Locale.Valid() {
		req.Locale = i18n.Default
	}
	if req.RegionID == "" {
		req.RegionID = render.RegionID
	}

	metrics.IncExportStarted()
	start := time.Now()

	var (
		res Result
		err error
	)
	switch req.Format {
	case FormatPDF:
		res, err = e.exportPDF(ctx, req)
	case FormatDOCX:
		res, err = e.exportDOCX(req)
	default:
		err = fmt.Errorf("%w: %q", ErrUnsupportedFormat, req.Format)
	}
	if err != nil {
		metrics.IncExportFailed()
		e.logger.Error("export.failed",
			zap.String("format", string(req.Format)),
			zap.String("locale", req.Locale.String()),
			zap.Error(err),
		)
		return Result{}, err
	}

	res.Filename = Filename(req.Filename, req.Resume.PersonalInfo.FullName, req.Format)
	if e.sink != nil {
		key, _, _, err := e.sink.Save(ctx, ownerOf(req), res.Filename, bytes.NewReader(res.Data))
		if err != nil {
			metrics.IncExportFailed()
			return Result{}, fmt.Errorf("store export: %w", err)
		}
		res.StorageKey = key
	}

	metrics.IncExportCompleted()
	metrics.ObserveExportDurationMs(float64(time.Since(start).Milliseconds()))
	e.logger.Info("export.completed",
		zap.String("format", string(req.Format)),
		zap.String("profile", res.Profile),
		zap.Int("attempts", res.Attempts),
		zap.Int("bytes", len(res.Data)),
		zap.Duration("duration", time.Since(start)),
	)
	return res, nil
}

func (e *Exporter) exportPDF(ctx context.Context, req Request) (Result, error) {
	html := req.HTML
	if len(html) == 0 {
		rendered, err := render.RenderHTML(req.Resume, req.Locale)
		if err != nil {
			return Result{}, err
		}
		html = rendered
	}
	page, err := ExtractRegion(html, req.RegionID)
	if err != nil {
		return Result{}, err
	}
	if e.printer == nil {
		return Result{}, &Error{
			Message:  i18n.T(req.Locale, i18n.ExportFailed),
			Attempts: []Attempt{{Profile: "none", Err: errors.New("no printer configured")}},
		}
	}

	var attempts []Attempt
	for i, profile := range e.profiles {
		if err := ctx.Err(); err != nil {
			attempts = append(attempts, Attempt{Profile: profile.Name, Err: err})
			break
		}
		if i > 0 {
			metrics.IncExportFallback()
		}
		data, err := e.printOnce(ctx, page, profile)
		if err == nil {
			return Result{
				ContentType: ContentTypePDF,
				Data:        data,
				Profile:     profile.Name,
				Attempts:    i + 1,
			}, nil
		}
		e.logger.Warn("export.attempt_failed",
			zap.String("profile", profile.Name),
			zap.Int("attempt", i+1),
			zap.Error(err),
		)
		attempts = append(attempts, Attempt{Profile: profile.Name, Err: err})
	}
	return Result{}, &Error{Message: i18n.T(req.Locale, i18n.ExportFailed), Attempts: attempts}
}

func (e *Exporter) printOnce(ctx context.Context, page []byte, profile Profile) ([]byte, error) {
	if e.attemptTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.attemptTimeout)
		defer cancel()
	}
	data, err := e.printer.PrintPDF(ctx, page, profile)
	if err != nil {
		return nil, err
	}
	if _, err := extract.PDFPageCount(data); err != nil {
		return nil, fmt.Errorf("verify pdf: %w", err)
	}
	return data, nil
}

func (e *Exporter) exportDOCX(req Request) (Result, error) {
	data, err := render.RenderDOCX(req.Resume, req.Locale)
	if err != nil {
		return Result{}, &Error{
			Message:  i18n.T(req.Locale, i18n.ExportFailed),
			Attempts: []Attempt{{Profile: string(FormatDOCX), Err: err}},
		}
	}
	return Result{
		ContentType: ContentTypeDOCX,
		Data:        data,
		Profile:     string(FormatDOCX),
		Attempts:    1,
	}, nil
}

// Filename picks the download name: the requested name, else the full name, else "resume".
// The extension always matches format.
func Filename(requested, fullName string, format Format) string {
	ext := "." + string(format)
	base := strings.TrimSpace(requested)
	if base == "" {
		base = strings.TrimSpace(fullName)
	}
	if e := strings.ToLower(filepath.Ext(base)); e == ".pdf" || e == ".docx" {
		base = base[:len(base)-len(e)]
	}
	clean, err := util.SanitizeFileName(base)
	if err != nil {
		clean = "resume"
	}
	return clean + ext
}

func ownerOf(req Request) string {
	if req.Owner != "" {
		return req.Owner
	}
	if email := req.Resume.PersonalInfo.Email; email != "" {
		return email
	}
	return "anonymous"
}
