package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/mrlokans/eventadmin/internal/audit"
	"github.com/mrlokans/eventadmin/internal/config"
	"github.com/mrlokans/eventadmin/internal/database"
	auditRepo "github.com/mrlokans/eventadmin/internal/database/audit"
	"github.com/mrlokans/eventadmin/internal/database/events"
	"github.com/mrlokans/eventadmin/internal/database/imports"
	http_controllers "github.com/mrlokans/eventadmin/internal/http"
	"github.com/mrlokans/eventadmin/internal/importers"
	"github.com/mrlokans/eventadmin/internal/scheduler"
	"github.com/mrlokans/eventadmin/internal/services"
	"github.com/mrlokans/eventadmin/internal/tasks"
)

type ShutdownFunc func(ctx context.Context)

// App holds the wired components shared by the server and the CLI.
type App struct {
	Config *config.Config
	Log    *zap.Logger

	DB             *database.Database
	Events         *events.Repository
	ImportSessions *imports.Repository
	Audit          *audit.Service
	Catalog        *services.Catalog
	Imports        *services.ImportService

	// Tasks is nil when the task queue is disabled.
	Tasks *tasks.Client
}

// Build opens the database and task queue and wires the import service.
func Build(cfg *config.Config, log *zap.Logger) (*App, error) {
	if log == nil {
		log = zap.NewNop()
	}

	db, err := database.NewDatabase(cfg.Database.Path, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	app := &App{
		Config:         cfg,
		Log:            log,
		DB:             db,
		Events:         events.NewRepository(db.DB),
		ImportSessions: imports.NewRepository(db.DB),
		Audit:          audit.NewService(auditRepo.NewRepository(db.DB), log),
		Catalog:        services.NewCatalog(db.DB),
	}

	serviceCfg := services.ImportServiceConfig{
		Events:          app.Events,
		Sessions:        app.ImportSessions,
		Importer:        importers.NewImporter(services.NewImportStores(db.DB), log),
		Audit:           app.Audit,
		MaxStoredErrors: cfg.Import.MaxStoredErrors,
		Logger:          log,
	}
	if cfg.Import.ArchiveDir != "" {
		serviceCfg.Archive = audit.NewArchiver(cfg.Import.ArchiveDir, log)
	}

	if cfg.Tasks.Enabled {
		app.Tasks, err = tasks.NewClient(cfg.Database.Path, tasks.Config{
			Workers:         cfg.Tasks.Workers,
			ReleaseAfter:    cfg.Tasks.ReleaseAfter,
			CleanupInterval: cfg.Tasks.CleanupInterval,
		}, log)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to initialize task queue: %w", err)
		}
		serviceCfg.Queue = app.Tasks
	}

	app.Imports = services.NewImportService(serviceCfg)

	if app.Tasks != nil {
		app.Tasks.Register(
			tasks.NewImportQueue(app.Imports, log),
			tasks.NewCleanupAuditEventsQueue(app.Audit, app.Audit, log),
			tasks.NewCleanupImportSessionsQueue(app.ImportSessions, app.Audit, log),
		)
	}

	return app, nil
}

// Close waits for pending audit writes and releases the databases.
func (a *App) Close() error {
	a.Audit.Wait()

	var errs []error
	if a.Tasks != nil {
		errs = append(errs, a.Tasks.Close())
	}
	errs = append(errs, a.DB.Close())
	return errors.Join(errs...)
}

// Router builds the HTTP API over the app's components.
func (a *App) Router(version string) http.Handler {
	routerCfg := http_controllers.RouterConfig{
		Database:       a.DB,
		Events:         a.Events,
		Imports:        a.Imports,
		ImportSessions: a.ImportSessions,
		Catalog:        a.Catalog,
		Audit:          a.Audit,
		MaxUploadBytes: a.Config.HTTP.MaxUploadBytes,
		MaxErrorsShown: a.Config.Import.MaxErrorsShown,
		Version:        version,
		Logger:         a.Log.Named("http"),
	}
	if a.Tasks != nil {
		routerCfg.Tasks = a.Tasks
	}
	return http_controllers.NewRouter(routerCfg)
}

// Run starts the task workers, the cleanup scheduler and the HTTP server,
// and blocks until SIGINT or SIGTERM.
func Run(cfg *config.Config, version string, log *zap.Logger) error {
	log.Info("starting eventadmin", zap.String("version", version))

	app, err := Build(cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Error("error during close", zap.Error(err))
		}
	}()

	bgCtx, cancelBackground := context.WithCancel(context.Background())
	defer cancelBackground()

	if app.Tasks != nil {
		go app.Tasks.Start(bgCtx)

		if cfg.Scheduler.Enabled {
			cleanup := scheduler.NewCleanupScheduler(app.Tasks, scheduler.CleanupJobs(cfg.Scheduler, cfg.Audit), log)
			if err := cleanup.Start(bgCtx); err != nil {
				return err
			}
		}
	} else {
		log.Warn("task queue disabled: async imports and scheduled cleanup are unavailable")
	}

	onShutdown := func(ctx context.Context) {
		if app.Tasks != nil {
			app.Tasks.Stop(ctx)
		}
		cancelBackground()
	}

	return Serve(app.Router(version), cfg, log, onShutdown)
}

// Serve listens until SIGINT or SIGTERM, then shuts down within
// cfg.Global.ShutdownTimeout.
func Serve(handler http.Handler, cfg *config.Config, log *zap.Logger, onShutdown ShutdownFunc) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return serve(ctx, srv, cfg.Global.ShutdownTimeout, log, onShutdown)
}

func serve(ctx context.Context, srv *http.Server, timeout time.Duration, log *zap.Logger, onShutdown ShutdownFunc) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down server", zap.Duration("timeout", timeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if onShutdown != nil {
		onShutdown(shutdownCtx)
	}

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	log.Info("server exiting")
	return nil
}
