package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Gobusters/ectoenv"
	"github.com/Gobusters/ectologger"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	_ "github.com/lib/pq"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/Ramsey-B/aster/config"
	"github.com/Ramsey-B/aster/internal/repositories/matchresult"
	"github.com/Ramsey-B/aster/internal/repositories/profile"
	"github.com/Ramsey-B/aster/internal/repositories/university"
	"github.com/Ramsey-B/aster/pkg/database"
	"github.com/Ramsey-B/aster/pkg/events"
	"github.com/Ramsey-B/aster/pkg/kafka"
	"github.com/Ramsey-B/aster/pkg/logging"
	"github.com/Ramsey-B/aster/pkg/matching"
	"github.com/Ramsey-B/aster/pkg/middleware"
	"github.com/Ramsey-B/aster/pkg/routes/health"
	matchroutes "github.com/Ramsey-B/aster/pkg/routes/match"
	profileroutes "github.com/Ramsey-B/aster/pkg/routes/profile"
	universityroutes "github.com/Ramsey-B/aster/pkg/routes/university"
	"github.com/Ramsey-B/aster/pkg/startup"
	"github.com/Ramsey-B/aster/pkg/tracing"
	"github.com/Ramsey-B/aster/pkg/tracing/exporters"
)

func main() {
	// .env is optional; real deployments set env vars directly
	_ = godotenv.Load()

	var cfg config.Config
	if err := ectoenv.BindEnv(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.AppName, cfg.PrettyLogs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	app := &application{cfg: &cfg, logger: logger}

	boot := startup.NewStartup(logger, cfg.StartupMaxAttempts)
	boot.AddDependency(&tracingDependency{app: app})
	boot.AddDependency(&databaseDependency{app: app})
	boot.AddDependency(&kafkaDependency{app: app})
	boot.AddDependency(&httpDependency{app: app})

	if err := boot.Start(ctx); err != nil {
		logger.WithError(err).Error("Startup failed")
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Shutdown signal received")

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer stopCancel()
	if err := boot.Stop(stopCtx); err != nil {
		logger.WithError(err).Error("Shutdown failed")
		os.Exit(1)
	}
}

// application holds the wired components shared across startup dependencies
type application struct {
	cfg    *config.Config
	logger ectologger.Logger

	tracerProvider *sdktrace.TracerProvider
	sqlxDB         *sqlx.DB
	producer       *kafka.Producer
	echo           *echo.Echo
	checker        *health.Checker
}

type tracingDependency struct {
	app *application
}

func (d *tracingDependency) GetName() string { return "tracing" }
func (d *tracingDependency) DependsOn() []string { return nil }

func (d *tracingDependency) Start(ctx context.Context) error {
	cfg := d.app.cfg

	var exporter sdktrace.SpanExporter
	if cfg.TracingEnabled {
		otlp, err := exporters.NewOTLPExporter(ctx, exporters.OTLPConfig{
			Endpoint: cfg.OTLPEndpoint,
			Protocol: cfg.OTLPProtocol,
			Insecure: cfg.OTLPInsecure,
			Timeout:  10 * time.Second,
		})
		if err != nil {
			return err
		}
		exporter = otlp
	} else {
		exporter = &exporters.ConsoleExporter{}
	}

	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
	otel.SetTracerProvider(tp)
	tracing.SetTracer(tp.Tracer(cfg.AppName))

	d.app.tracerProvider = tp
	return nil
}

func (d *tracingDependency) Stop(ctx context.Context) error {
	if d.app.tracerProvider == nil {
		return nil
	}
	return d.app.tracerProvider.Shutdown(ctx)
}

type databaseDependency struct {
	app *application
}

func (d *databaseDependency) GetName() string { return "database" }
func (d *databaseDependency) DependsOn() []string { return nil }

func (d *databaseDependency) Start(ctx context.Context) error {
	cfg := d.app.cfg

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DatabaseHost, cfg.DatabasePort, cfg.DatabaseUserName, cfg.DatabasePassword, cfg.DatabaseName, cfg.DatabaseSSLMode)

	db, err := sqlx.ConnectContext(ctx, cfg.DatabaseDriver, dsn)
	if err != nil {
		return err
	}

	db.SetMaxOpenConns(cfg.DatabaseMaxOpenConns)
	db.SetMaxIdleConns(cfg.DatabaseMaxIdleConns)
	db.SetConnMaxLifetime(cfg.DatabaseConnMaxLifetime)

	driver, err := postgres.WithInstance(db.DB, &postgres.Config{})
	if err != nil {
		return err
	}

	migrator := database.NewMigrationService(d.app.logger, &database.MigrationConfig{
		MigrationFolderPath: cfg.DatabaseMigrationFolderPath,
		Version:             uint(cfg.DatabaseMigrationVersion),
		Force:               cfg.DatabaseMigrationForce,
		AutoRollback:        cfg.DatabaseMigrationAutoRollback,
	})
	if err := migrator.Migrate(cfg.DatabaseName, driver); err != nil {
		return err
	}

	d.app.sqlxDB = db
	return nil
}

func (d *databaseDependency) Stop(ctx context.Context) error {
	if d.app.sqlxDB == nil {
		return nil
	}
	return d.app.sqlxDB.Close()
}

type kafkaDependency struct {
	app *application
}

func (d *kafkaDependency) GetName() string { return "kafka-producer" }
func (d *kafkaDependency) DependsOn() []string { return nil }

func (d *kafkaDependency) Start(ctx context.Context) error {
	cfg := d.app.cfg
	if !cfg.KafkaProducerEnabled {
		d.app.logger.Info("Kafka producer disabled, match events will not be emitted")
		return nil
	}

	d.app.producer = kafka.NewProducer(kafka.ProducerConfig{
		Brokers:      cfg.KafkaBrokers,
		Topic:        cfg.KafkaOutputTopic,
		BatchSize:    cfg.KafkaBatchSize,
		BatchTimeout: time.Duration(cfg.KafkaBatchTimeout) * time.Millisecond,
		RequiredAcks: cfg.KafkaRequiredAcks,
		Compression:  cfg.KafkaCompression,
	}, d.app.logger)
	return nil
}

func (d *kafkaDependency) Stop(ctx context.Context) error {
	if d.app.producer == nil {
		return nil
	}
	return d.app.producer.Close()
}

type httpDependency struct {
	app *application
}

func (d *httpDependency) GetName() string { return "http-server" }
func (d *httpDependency) DependsOn() []string { return []string{"tracing", "database", "kafka-producer"} }

func (d *httpDependency) Start(ctx context.Context) error {
	cfg := d.app.cfg
	logger := d.app.logger

	db := database.NewDatabaseInstance(d.app.sqlxDB, logger)

	profiles := profile.NewRepository(db, logger)
	universities := university.NewRepository(db, logger)
	results := matchresult.NewRepository(db, logger)

	emitter := events.NewEmitter(d.app.producer, logger)
	matcher := matching.NewService(results, emitter, logger)

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = time.Duration(cfg.HttpServerReadTimeoutSeconds) * time.Second
	e.Server.WriteTimeout = time.Duration(cfg.HttpServerWriteTimeoutSeconds) * time.Second
	e.Server.IdleTimeout = time.Duration(cfg.HttpServerIdleTimeoutSeconds) * time.Second
	e.Server.ReadHeaderTimeout = time.Duration(cfg.ReadHeaderTimeoutSeconds) * time.Second
	e.Server.MaxHeaderBytes = cfg.MaxHeaderBytes

	e.HTTPErrorHandler = middleware.Error(logger)
	e.Use(middleware.Context())
	e.Use(middleware.Logger(logger))
	e.Use(otelecho.Middleware(cfg.AppName))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: cfg.AllowMethods,
	}))

	checker := health.NewChecker(d.app.sqlxDB, cfg.Version)
	checker.RegisterRoutes(e)

	api := e.Group("/api/v1")
	profileroutes.NewHandler(profiles).RegisterRoutes(api)
	universityroutes.NewHandler(universities).RegisterRoutes(api)
	matchroutes.NewHandler(profiles, universities, results, matcher, cfg.EvaluateDefaultLimit).RegisterRoutes(api)

	d.app.echo = e
	d.app.checker = checker

	go func() {
		addr := fmt.Sprintf(":%d", cfg.Port)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Error("HTTP server stopped unexpectedly")
		}
	}()

	checker.SetReady(true)
	logger.WithFields(map[string]any{"port": cfg.Port}).Infof("%s listening on port %d", cfg.AppName, cfg.Port)
	return nil
}

func (d *httpDependency) Stop(ctx context.Context) error {
	if d.app.echo == nil {
		return nil
	}
	d.app.checker.SetReady(false)
	return d.app.echo.Shutdown(ctx)
}
