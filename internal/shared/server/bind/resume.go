package bind

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-ats/internal/schemas"
	"resume-ats/internal/shared/server/respond"
	"resume-ats/resume/model"
)

const maxBodyBytes = 1 << 20

// Resume decodes the request body as a schema-checked résumé. On failure it writes the
// error response and returns false.
func Resume(c *gin.Context) (model.Resume, bool) {
	raw, ok := body(c)
	if !ok {
		return model.Resume{}, false
	}
	return decode(c, raw)
}

// ResumeField decodes one JSON property of an object body as a résumé and returns the
// remaining properties for the caller to read.
func ResumeField(c *gin.Context, field string) (model.Resume, map[string]json.RawMessage, bool) {
	raw, ok := body(c)
	if !ok {
		return model.Resume{}, nil, false
	}
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_json", "request body must be a JSON object", nil)
		return model.Resume{}, nil, false
	}
	inner, ok := envelope[field]
	if !ok {
		respond.Error(c, http.StatusBadRequest, "validation_error", field+" is required", nil)
		return model.Resume{}, nil, false
	}
	r, ok := decode(c, inner)
	return r, envelope, ok
}

func body(c *gin.Context) ([]byte, bool) {
	raw, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respond.Error(c, http.StatusRequestEntityTooLarge, "payload_too_large", "request body is too large", nil)
			return nil, false
		}
		respond.Error(c, http.StatusBadRequest, "invalid_body", "failed to read request body", nil)
		return nil, false
	}
	if !json.Valid(raw) {
		respond.Error(c, http.StatusBadRequest, "invalid_json", "request body must be valid JSON", nil)
		return nil, false
	}
	return raw, true
}

func decode(c *gin.Context, raw []byte) (model.Resume, bool) {
	r, err := schemas.DecodeResume(raw)
	if err != nil {
		var verr *schemas.ValidationError
		if errors.As(err, &verr) {
			respond.Error(c, http.StatusUnprocessableEntity, "schema_error", "resume does not match the schema", verr.Errors)
			return model.Resume{}, false
		}
		respond.Error(c, http.StatusBadRequest, "invalid_json", "failed to decode resume", nil)
		return model.Resume{}, false
	}
	return r, true
}
