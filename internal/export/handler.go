package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-ats/internal/i18n"
	"resume-ats/internal/shared/server/bind"
	"resume-ats/internal/shared/server/middleware"
	"resume-ats/internal/shared/server/respond"
	"resume-ats/resume/render"
)

// ProfileContextKey is set on the gin context to the profile that produced the export.
const ProfileContextKey = "exportProfile"

// Handler serves the preview and export routes.
type Handler struct {
	Exporter *Exporter
}

// NewHandler constructs a Handler.
func NewHandler(exp *Exporter) *Handler {
	return &Handler{Exporter: exp}
}

// RegisterRoutes attaches the preview route to rg and the export route to exportGroup.
// The export group usually carries its own rate limit.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, exportGroup *gin.RouterGroup) {
	rg.POST("/preview", h.preview)
	exportGroup.POST("/export", h.export)
}

type exportOptions struct {
	Locale   string `json:"locale"`
	Format   string `json:"format"`
	Filename string `json:"filename"`
	HTML     string `json:"html"`
	RegionID string `json:"regionId"`
	Owner    string `json:"owner"`
}

func (h *Handler) preview(c *gin.Context) {
	r, ok := bind.Resume(c)
	if !ok {
		return
	}
	loc := middleware.LocaleFromContext(c)

	switch strings.ToLower(c.DefaultQuery("format", "html")) {
	case "html":
		out, err := render.RenderHTML(r, loc)
		if err != nil {
			respond.Error(c, http.StatusInternalServerError, "render_error", "failed to render preview", nil)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", out)
	case "docx":
		out, err := render.RenderDOCX(r, loc)
		if err != nil {
			respond.Error(c, http.StatusInternalServerError, "render_error", "failed to render preview", nil)
			return
		}
		c.Data(http.StatusOK, ContentTypeDOCX, out)
	default:
		respond.Error(c, http.StatusBadRequest, "validation_error", "format must be html or docx", nil)
	}
}

func (h *Handler) export(c *gin.Context) {
	r, envelope, ok := bind.ResumeField(c, "resume")
	if !ok {
		return
	}
	opts, err := decodeOptions(envelope)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}

	format, err := ParseFormat(opts.Format)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "unsupported_format", err.Error(), nil)
		return
	}
	loc := middleware.LocaleFromContext(c)
	if opts.Locale != "" {
		parsed, err := i18n.ParseLocale(opts.Locale)
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
			return
		}
		loc = parsed
	}

	res, err := h.Exporter.Export(c.Request.Context(), Request{
		Resume:   r,
		Locale:   loc,
		Format:   format,
		HTML:     []byte(opts.HTML),
		RegionID: opts.RegionID,
		Filename: opts.Filename,
		Owner:    opts.Owner,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.Set(ProfileContextKey, res.Profile)
	c.Header("X-Export-Profile", res.Profile)
	c.Header("X-Export-Attempts", fmt.Sprint(res.Attempts))
	if res.StorageKey != "" {
		c.Header("X-Storage-Key", res.StorageKey)
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", res.Filename))
	c.Data(http.StatusOK, res.ContentType, res.Data)
}

// decodeOptions reads the string options of an export envelope. Unknown properties are ignored.
func decodeOptions(envelope map[string]json.RawMessage) (exportOptions, error) {
	var opts exportOptions
	fields := map[string]*string{
		"locale":   &opts.Locale,
		"format":   &opts.Format,
		"filename": &opts.Filename,
		"html":     &opts.HTML,
		"regionId": &opts.RegionID,
		"owner":    &opts.Owner,
	}
	for name, dst := range fields {
		raw, ok := envelope[name]
		if !ok || string(raw) == "null" {
			continue
		}
		if err := json.Unmarshal(raw, dst); err != nil {
			return exportOptions{}, fmt.Errorf("%s must be a string", name)
		}
	}
	return opts, nil
}

func (h *Handler) writeError(c *gin.Context, err error) {
	var exportErr *Error
	switch {
	case errors.Is(err, ErrInvalidRequest), errors.Is(err, ErrUnsupportedFormat):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, ErrRegionNotFound):
		respond.Error(c, http.StatusUnprocessableEntity, "region_not_found", err.Error(), nil)
	case errors.As(err, &exportErr):
		attempts := make([]gin.H, 0, len(exportErr.Attempts))
		for _, a := range exportErr.Attempts {
			attempts = append(attempts, gin.H{"profile": a.Profile, "error": fmt.Sprint(a.Err)})
		}
		respond.Error(c, http.StatusBadGateway, "export_failed", exportErr.Message, attempts)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "export failed", nil)
	}
}
