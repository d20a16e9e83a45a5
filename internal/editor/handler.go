package editor

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-ats/internal/shared/server/middleware"
	"resume-ats/internal/shared/server/respond"
	"resume-ats/resume/model"
)

// Handler serves the editor helpers: sample data and skill suggestions.
type Handler struct{}

// NewHandler constructs a Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes attaches editor routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/sample", h.sample)
	rg.GET("/skills/suggestions", h.suggestions)
}

func (h *Handler) sample(c *gin.Context) {
	respond.OK(c, model.Sample())
}

func (h *Handler) suggestions(c *gin.Context) {
	loc := middleware.LocaleFromContext(c)

	categories := []model.SkillCategory{model.CategoryTechnical, model.CategoryHard, model.CategorySoft}
	if raw := strings.TrimSpace(c.Query("category")); raw != "" {
		cat := model.ParseSkillCategory(raw)
		if cat == model.CategoryNone {
			respond.Error(c, http.StatusBadRequest, "validation_error", "category must be technical, hard or soft", nil)
			return
		}
		categories = []model.SkillCategory{cat}
	}

	var have model.Resume
	for _, name := range strings.Split(c.Query("have"), ",") {
		if name = strings.TrimSpace(name); name != "" {
			have.Skills = append(have.Skills, model.Skill{Name: name})
		}
	}

	query := c.Query("q")
	out := make(map[model.SkillCategory][]string, len(categories))
	for _, cat := range categories {
		if query == "" {
			out[cat] = PopularSkills(loc, cat)
			continue
		}
		out[cat] = SuggestSkills(have, loc, cat, query)
	}

	respond.OK(c, gin.H{
		"locale":      loc,
		"query":       query,
		"suggestions": out,
	})
}
