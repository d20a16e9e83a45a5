package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"resume-ats/internal/analyses"
	"resume-ats/internal/editor"
	"resume-ats/internal/export"
	"resume-ats/internal/i18n"
	"resume-ats/internal/services/health"
	"resume-ats/internal/shared/config"
	"resume-ats/internal/shared/metrics"
	"resume-ats/internal/shared/server/middleware"
	"resume-ats/internal/shared/telemetry"
	"resume-ats/internal/uploads"
)

const (
	rateGroupDefault = "DEFAULT"
	rateGroupExport  = "EXPORT"
)

// ReadHeaderTimeout bounds slow clients on the API listener.
const ReadHeaderTimeout = 10 * time.Second

// RouterDeps carries the handlers mounted under /api/v1.
type RouterDeps struct {
	Config          config.Config
	Logger          *zap.Logger
	Health          *health.Service
	AnalysisHandler *analyses.Handler
	EditorHandler   *editor.Handler
	ExportHandler   *export.Handler
	// Limiter is shared across requests; nil builds a fresh one.
	Limiter *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	logger := telemetry.OrNop(deps.Logger)
	fallback, err := i18n.ParseLocale(deps.Config.Locale)
	if err != nil {
		fallback = i18n.Default
	}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Locale(fallback),
		middleware.Logging(logger),
		middleware.Recovery(logger),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.RateLimit(rateLimitConfig(deps)),
	)

	api := r.Group("/api/v1")
	healthSvc := deps.Health
	if healthSvc == nil {
		healthSvc = health.NewService()
	}
	api.GET("/health", func(c *gin.Context) {
		st := healthSvc.Status(c.Request.Context())
		code := http.StatusOK
		if !st.OK {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, st)
	})
	api.GET("/metrics", metrics.Handler())
	uploads.RegisterRoutes(api)

	if deps.AnalysisHandler != nil {
		deps.AnalysisHandler.RegisterRoutes(api)
	}
	if deps.EditorHandler != nil {
		deps.EditorHandler.RegisterRoutes(api)
	}
	if deps.ExportHandler != nil {
		deps.ExportHandler.RegisterRoutes(api, api)
	}
	return r
}

func rateLimitConfig(deps RouterDeps) middleware.RateLimitConfig {
	exportRule := middleware.RateLimitRule{Rate: deps.Config.ExportRate, Burst: deps.Config.ExportBurst}
	if exportRule.Rate <= 0 || exportRule.Burst <= 0 {
		exportRule = middleware.RateLimitRule{Rate: 0.5, Burst: 5}
	}
	return middleware.RateLimitConfig{
		DefaultGroup: rateGroupDefault,
		Limiter:      deps.Limiter,
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method == http.MethodPost && c.FullPath() == "/api/v1/export" {
				return rateGroupExport
			}
			return rateGroupDefault
		},
		Rules: map[string]middleware.RateLimitRule{
			rateGroupDefault: {Rate: 20, Burst: 40},
			rateGroupExport:  exportRule,
		},
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
