// Package server initializes and runs the grievdesk server: it selects the
// catalog source, builds the services and runs the gRPC and HTTP transports
// until the process is signalled.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/grievdesk/internal/catalog"
	"github.com/dmitrijs2005/grievdesk/internal/cryptox"
	"github.com/dmitrijs2005/grievdesk/internal/logging"
	"github.com/dmitrijs2005/grievdesk/internal/server/config"
	"github.com/dmitrijs2005/grievdesk/internal/server/document"
	"github.com/dmitrijs2005/grievdesk/internal/server/httpapi"
	"github.com/dmitrijs2005/grievdesk/internal/server/metrics"
	"github.com/dmitrijs2005/grievdesk/internal/server/migrations"
	"github.com/dmitrijs2005/grievdesk/internal/server/services"
	_ "github.com/jackc/pgx/v5/stdlib"

	gs "github.com/dmitrijs2005/grievdesk/internal/server/grpc"
)

// postgresCatalogName is the catalog_documents row the server reads.
const postgresCatalogName = "default"

// logOutput is where the server writes its JSON log.
var logOutput io.Writer = os.Stdout

// migrateUp is a seam for tests.
var migrateUp = migrations.Up

type App struct {
	config     *config.Config
	logger     logging.Logger
	metrics    *metrics.Metrics
	db         *sql.DB
	source     catalog.Source
	loader     *catalog.Loader
	identity   *services.IdentityService
	grievances *services.GrievanceService
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.NewJSON(logOutput, logging.ParseLevel(c.LogLevel))
	m := metrics.New()

	app := &App{config: c, logger: logger, metrics: m}

	source, err := app.newSource(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog source: %w", err)
	}
	app.source = source
	app.loader = catalog.NewLoader(source, logger, catalog.WithObserver(m.CatalogLoad))

	font := document.ProbeFont(c.FontPath)
	assembler := document.NewAssembler(c.Organization, font, logger)

	app.identity = services.NewIdentityService(app.loader, cryptox.DeriveSigningKey(c.SecretKey),
		c.AccessTokenValidityDuration, logger, m)
	app.grievances = services.NewGrievanceService(assembler, logger, m)

	return app, nil
}

// newSource builds the configured catalog source. Database and storage
// problems are logged and left to the loader, which serves an empty catalog
// until the source becomes readable.
func (app *App) newSource(ctx context.Context) (catalog.Source, error) {
	c := app.config

	switch c.CatalogSource {
	case config.CatalogSourceFile, "":
		return catalog.NewFileSource(c.CatalogPath), nil

	case config.CatalogSourceS3:
		client, err := catalog.NewS3Client(ctx, catalog.S3Settings{
			Region:       c.S3Region,
			BaseEndpoint: c.S3BaseEndpoint,
			AccessKey:    c.S3RootUser,
			SecretKey:    c.S3RootPassword,
		})
		if err != nil {
			return nil, err
		}
		return catalog.NewS3Source(client, c.S3Bucket, c.S3CatalogKey), nil

	case config.CatalogSourcePostgres:
		db, err := sql.Open("pgx", c.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		app.db = db

		if err := migrateUp(ctx, db); err != nil {
			app.logger.Warn(ctx, "catalog migrations not applied", "error", err)
		}

		src := catalog.NewPostgresSource(db, postgresCatalogName)
		if c.CatalogImportPath != "" {
			app.importCatalog(ctx, src, c.CatalogImportPath)
		}
		return src, nil
	}

	return nil, fmt.Errorf("unknown catalog source %q", c.CatalogSource)
}

func (app *App) importCatalog(ctx context.Context, src *catalog.PostgresSource, path string) {
	body, err := os.ReadFile(path)
	if err != nil {
		app.logger.Warn(ctx, "catalog import skipped", "path", path, "error", err)
		return
	}
	rev, err := src.Publish(ctx, string(body))
	if err != nil {
		app.logger.Warn(ctx, "catalog import failed", "path", path, "error", err)
		return
	}
	app.logger.Info(ctx, "catalog imported", "path", path, "revision", rev)
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.identity, app.grievances, app.loader)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := httpapi.NewServer(app.config.EndpointAddrHTTP, app.logger, app.identity, app.grievances, app.loader, app.metrics.Handler())

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// startWatcher reloads a file catalog on change. Watch failures only cost
// the eager reload; the fingerprint check still picks changes up.
func (app *App) startWatcher(ctx context.Context) {
	fs, ok := app.source.(*catalog.FileSource)
	if !ok || !app.config.WatchCatalog {
		return
	}

	w, err := catalog.NewWatcher(fs.Path(), app.loader, app.logger)
	if err != nil {
		app.logger.Warn(ctx, "catalog watcher not started", "error", err)
		return
	}

	if err := w.Run(ctx); err != nil {
		app.logger.Warn(ctx, "catalog watcher stopped", "error", err)
	}
}

// warmCatalog loads the catalog once so problems with the source show up in
// the log at startup.
func (app *App) warmCatalog(ctx context.Context) {
	c, err := app.loader.Load(ctx)
	if err != nil {
		app.logger.Warn(ctx, "starting with degraded catalog", "source", app.source.Name(), "error", err)
	}
	lists := c.Lists()
	app.logger.Info(ctx, "catalog loaded",
		"source", app.source.Name(),
		"users", c.UserCount(),
		"designations", len(lists[catalog.SectionDesignations]),
		"trades", len(lists[catalog.SectionTrades]),
		"grievance_types", len(lists[catalog.SectionGrievanceTypes]),
	)
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)
	app.warmCatalog(ctx)

	var wg sync.WaitGroup

	wg.Add(3)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startWatcher(ctx)
	}()

	wg.Wait()

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error(ctx, "closing database", "error", err)
		}
	}

	app.logger.Info(ctx, "App stopped")
}
