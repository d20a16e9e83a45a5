package bootstrap

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"resume-ats/internal/analyses"
	"resume-ats/internal/editor"
	"resume-ats/internal/export"
	"resume-ats/internal/services/health"
	"resume-ats/internal/shared/config"
	"resume-ats/internal/shared/server"
	"resume-ats/internal/shared/storage/object"
	localstore "resume-ats/internal/shared/storage/object/local"
	s3store "resume-ats/internal/shared/storage/object/s3"
	"resume-ats/internal/shared/telemetry"
)

// App holds shared dependencies for the API server and the CLI.
type App struct {
	Config          config.Config
	Logger          *zap.Logger
	Router          *gin.Engine
	Store           object.ObjectStore
	Printer         export.Printer
	Health          *health.Service
	AnalysesService *analyses.Service
	Exporter        *export.Exporter
	AnalysisHandler *analyses.Handler
	EditorHandler   *editor.Handler
	ExportHandler   *export.Handler
}

// Option overrides a dependency before services are built.
type Option func(*App)

// WithPrinter replaces the headless Chrome printer.
func WithPrinter(p export.Printer) Option {
	return func(a *App) { a.Printer = p }
}

// WithStore replaces the configured export sink.
func WithStore(s object.ObjectStore) Option {
	return func(a *App) { a.Store = s }
}

// Build prepares shared dependencies and the router.
func Build(ctx context.Context, cfg config.Config, logger *zap.Logger, opts ...Option) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	app := &App{
		Config: cfg,
		Logger: telemetry.OrNop(logger),
		Health: health.NewService(),
	}
	for _, opt := range opts {
		opt(app)
	}

	if app.Store == nil {
		store, err := buildStore(ctx, cfg)
		if err != nil {
			return nil, err
		}
		app.Store = store
	}
	if app.Printer == nil {
		app.Printer = export.NewChromePrinter(cfg.ChromePath)
	}

	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          app.Config,
		Logger:          app.Logger,
		Health:          app.Health,
		AnalysisHandler: app.AnalysisHandler,
		EditorHandler:   app.EditorHandler,
		ExportHandler:   app.ExportHandler,
	})
	return app, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ExportStore {
	case "s3":
		store, err := s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
		if err != nil {
			return nil, fmt.Errorf("build s3 store: %w", err)
		}
		return store, nil
	case "local":
		return localstore.New(cfg.LocalStoreDir), nil
	default:
		return nil, nil
	}
}

func buildServices(app *App) {
	opts := []export.Option{
		export.WithLogger(app.Logger),
		export.WithAttemptTimeout(app.Config.ExportTimeout),
	}
	if app.Store != nil {
		opts = append(opts, export.WithSink(app.Store))
		if app.Config.ExportStore == "local" {
			dir := app.Config.LocalStoreDir
			app.Health.Register("store", func(context.Context) error {
				return checkDir(dir)
			})
		}
	}

	app.AnalysesService = analyses.NewService(app.Logger)
	app.Exporter = export.New(app.Printer, opts...)
	app.AnalysisHandler = analyses.NewHandler(app.AnalysesService)
	app.EditorHandler = editor.NewHandler()
	app.ExportHandler = export.NewHandler(app.Exporter)
}

// checkDir succeeds when dir exists or can be created.
func checkDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("store dir %s: %w", dir, err)
	}
	return nil
}
