package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	dashboardapp "github.com/freelancehub/backend/internal/application/dashboard"
	kanbanapp "github.com/freelancehub/backend/internal/application/kanban"
	profileapp "github.com/freelancehub/backend/internal/application/profile"
	workspaceapp "github.com/freelancehub/backend/internal/application/workspace"
	"github.com/freelancehub/backend/internal/infrastructure/auth"
	"github.com/freelancehub/backend/internal/infrastructure/cache"
	"github.com/freelancehub/backend/internal/infrastructure/config"
	"github.com/freelancehub/backend/internal/infrastructure/event"
	"github.com/freelancehub/backend/internal/infrastructure/logger"
	"github.com/freelancehub/backend/internal/infrastructure/persistence"
	"github.com/freelancehub/backend/internal/infrastructure/realtime"
	"github.com/freelancehub/backend/internal/infrastructure/storage"
	"github.com/freelancehub/backend/internal/infrastructure/telemetry"
	"github.com/freelancehub/backend/internal/interfaces/http/handler"
	"github.com/freelancehub/backend/internal/interfaces/http/middleware"
	"github.com/freelancehub/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/freelancehub/backend/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//	@title			FreelanceHub API
//	@version		1.0
//	@description	Project management backend for freelancers: kanban boards, project workspaces, dashboard statistics and profiles.

//	@contact.name	API Support
//	@contact.url	https://github.com/freelancehub/backend

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "1.0.0"

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting FreelanceHub backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("version", version),
	)

	ctx := context.Background()

	tracerProvider, err := telemetry.NewTracerProvider(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize tracing", zap.Error(err))
	}
	meterProvider, err := telemetry.NewMeterProvider(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize metrics", zap.Error(err))
	}
	loggerProvider, err := telemetry.NewLoggerProvider(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize log export", zap.Error(err))
	}
	log = logger.Tee(log, loggerProvider.ZapCore(cfg.Telemetry.ServiceName, logger.ParseLevel(cfg.Log.Level)))
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := meterProvider.Shutdown(shutdownCtx); err != nil {
			log.Error("Error shutting down meter provider", zap.Error(err))
		}
		if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
		if err := loggerProvider.Shutdown(shutdownCtx); err != nil {
			log.Error("Error shutting down logger provider", zap.Error(err))
		}
	}()

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level),
		logger.WithSlowThreshold(cfg.Telemetry.DBSlowQueryThresh),
		logger.WithIgnoreRecordNotFoundError(true),
	)
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected", zap.String("driver", cfg.Database.Driver))

	if cfg.Database.Driver == config.DriverSQLite {
		if err := db.AutoMigrate(); err != nil {
			log.Fatal("Failed to create sqlite schema", zap.Error(err))
		}
	}

	if err := telemetry.RegisterDBTracing(db.DB, telemetry.DBTracingConfig{
		Enabled:         cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled,
		LogFullSQL:      cfg.Telemetry.DBLogFullSQL,
		SlowQueryThresh: cfg.Telemetry.DBSlowQueryThresh,
		DBSystem:        cfg.Database.Driver,
	}, log); err != nil {
		log.Warn("Database tracing disabled", zap.Error(err))
	}
	if cfg.Telemetry.Enabled {
		dbMetrics, err := telemetry.RegisterDBMetrics(db.DB, meterProvider, telemetry.DBMetricsConfig{
			SlowQueryThreshold: cfg.Telemetry.DBSlowQueryThresh,
		}, log)
		if err != nil {
			log.Warn("Database metrics disabled", zap.Error(err))
		} else {
			defer func() {
				if err := dbMetrics.Stop(); err != nil {
					log.Warn("Error stopping database metrics", zap.Error(err))
				}
			}()
		}
	}

	// Repositories
	boardRepo := persistence.NewGormBoardRepository(db.DB)
	columnRepo := persistence.NewGormColumnRepository(db.DB)
	cardRepo := persistence.NewGormCardRepository(db.DB)
	workspaceRepos := persistence.NewWorkspaceRepositories(db.DB)
	profileRepo := persistence.NewGormProfileRepository(db.DB)

	// Board change feed: kanban service -> event bus -> websocket hub
	eventBus := event.NewInMemoryEventBus(log)
	hub := realtime.NewHub(log)
	eventBus.Subscribe(hub, hub.EventTypes()...)
	if err := eventBus.Start(ctx); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		if err := eventBus.Stop(context.Background()); err != nil {
			log.Error("Error stopping event bus", zap.Error(err))
		}
	}()
	hubCtx, stopHub := context.WithCancel(ctx)
	go hub.Run(hubCtx)

	kanbanService := kanbanapp.NewService(boardRepo, columnRepo, cardRepo, persistence.NewGormKanbanTransactionScope(db.DB))
	kanbanService.SetLogger(log.Named("kanban"))
	kanbanService.SetEventPublisher(eventBus)
	if kanbanMetrics, err := telemetry.NewKanbanMetrics(meterProvider); err != nil {
		log.Warn("Kanban metrics disabled", zap.Error(err))
	} else {
		kanbanService.SetMoveRecorder(kanbanMetrics)
	}

	workspaceService := workspaceapp.NewService(workspaceRepos, persistence.NewGormWorkspaceTransactionScope(db.DB))
	workspaceService.SetLogger(log.Named("workspace"))
	objectStorage, err := storage.New(ctx, &cfg.Storage, log)
	if err != nil {
		// Documents answer 503 until storage is reachable; everything else keeps working
		log.Error("Document storage unavailable", zap.String("backend", cfg.Storage.Backend), zap.Error(err))
	} else {
		workspaceService.SetObjectStorage(objectStorage)
	}

	dashboardService := dashboardapp.NewService(
		workspaceRepos.Projects,
		workspaceRepos.Milestones,
		workspaceRepos.Finances,
		boardRepo,
		columnRepo,
		cardRepo,
	)
	profileService := profileapp.NewService(profileRepo, workspaceRepos.Projects)

	idempotencyStore, err := cache.NewIdempotencyStoreFactory(cfg.Redis, cache.WithLogger(log)).CreateStore()
	if err != nil {
		log.Fatal("Failed to create idempotency store", zap.Error(err))
	}
	defer func() {
		if err := idempotencyStore.Close(); err != nil {
			log.Error("Error closing idempotency store", zap.Error(err))
		}
	}()

	jwtService := auth.NewJWTService(cfg.JWT)

	// Handlers
	kanbanHandler := handler.NewKanbanHandler(kanbanService)
	kanbanHandler.SetBoardSubscriber(hub, cfg.HTTP.CORSAllowOrigins)
	systemHandler := handler.NewSystemHandler(cfg.App.Name, version, db)
	handlers := router.Handlers{
		Kanban:    kanbanHandler,
		Project:   handler.NewProjectHandler(workspaceService, cfg.HTTP.UploadMaxSize),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Profile:   handler.NewProfileHandler(profileService),
		System:    systemHandler,
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack, outermost first
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{middleware.RequestIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	engine.Use(middleware.BodyLimitWithConfig(middleware.BodyLimitConfig{
		MaxBytes:       cfg.HTTP.MaxBodySize,
		UploadMaxBytes: cfg.HTTP.UploadMaxSize,
	}))

	var rateLimiter *middleware.RateLimiter
	if cfg.HTTP.RateLimitEnabled {
		rateLimiter = middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	engine.Use(middleware.Tracing(middleware.TracingConfig{
		ServiceName: cfg.Telemetry.ServiceName,
		Enabled:     cfg.Telemetry.Enabled,
	}))
	engine.Use(middleware.HTTPMetrics(meterProvider, log))

	engine.GET("/health", systemHandler.Health)
	engine.GET("/swagger/*any",
		middleware.SwaggerProtection(cfg.Swagger, middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
			JWTService: jwtService,
			Logger:     log,
		})),
		ginSwagger.WrapHandler(swaggerFiles.Handler),
	)

	// Bearer tokens are mandatory in production; elsewhere the X-User-ID
	// header and userId query parameter still identify the caller
	jwtConfig := middleware.DefaultJWTConfig(jwtService)
	jwtConfig.Optional = !cfg.IsProduction()
	jwtConfig.Logger = log

	r := router.NewRouter(engine,
		router.WithAPIVersion("v1"),
		router.WithMiddleware(
			middleware.Timeout(cfg.HTTP.WriteTimeout),
			middleware.JWTAuthMiddlewareWithConfig(jwtConfig),
			middleware.SpanEnricher(),
			middleware.Idempotency(middleware.IdempotencyConfig{
				Store:  idempotencyStore,
				TTL:    cfg.HTTP.IdempotencyTTL,
				Logger: log,
			}),
		),
	)
	for _, group := range router.APIGroups(handlers) {
		r.Register(group)
	}
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	// Hijacked websocket connections are not tracked by Shutdown
	stopHub()
	hub.Wait()

	if rateLimiter != nil {
		rateLimiter.Stop()
	}

	log.Info("Server exited gracefully")
}
