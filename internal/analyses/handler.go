package analyses

import (
	"github.com/gin-gonic/gin"

	"resume-ats/internal/shared/server/bind"
	"resume-ats/internal/shared/server/middleware"
	"resume-ats/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the scoring service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches scoring routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/keywords", h.keywords)
	rg.POST("/score", h.score)
}

func (h *Handler) keywords(c *gin.Context) {
	respond.OK(c, gin.H{"keywords": h.Svc.Keywords()})
}

func (h *Handler) score(c *gin.Context) {
	r, ok := bind.Resume(c)
	if !ok {
		return
	}
	respond.OK(c, h.Svc.Score(r, middleware.LocaleFromContext(c)))
}
