// File: timetabler/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"timetabler/config"
	"timetabler/handlers"
	"timetabler/middleware"
	"timetabler/observability"
	"timetabler/routes"
	ai "timetabler/services/intelligence"
	"timetabler/services/syllabus"
	"timetabler/utils"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("main: failed to load config: %v", err)
	}

	logger, err := utils.NewLogger(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		log.Fatalf("main: failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	ctx := context.Background()

	shutdownTracing, err := observability.InitTracing(ctx, observability.TracingConfig{
		Enabled:     cfg.OtelEnabled,
		ServiceName: cfg.OtelServiceName,
		Environment: cfg.Env,
		Endpoint:    cfg.OtelEndpoint,
		Insecure:    cfg.OtelInsecure,
		SampleRatio: cfg.OtelSampleRatio,
	}, logger)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize tracing: %v", err)
	}

	gemini, err := ai.NewGeminiClient(ctx, cfg.GeminiAPIKey, ai.GeminiOptions{JSONMode: cfg.GeminiJSONMode})
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize gemini client: %v", err)
	}
	defer gemini.Close()

	corsConfig := routes.CORSConfig(cfg)
	if err := corsConfig.Validate(); err != nil {
		logger.Sugar().Fatalf("main: invalid CORS configuration: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(utils.ErrorHandler(logger))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RequestLoggerMiddleware(logger))
	if cfg.OtelEnabled {
		router.Use(otelgin.Middleware(cfg.OtelServiceName))
	}

	// services.
	timetableService := ai.NewDefaultTimetableService(
		gemini,
		syllabus.NewPDFExtractor(),
		cfg.GenerationTimeout,
		logger.Named("timetable"),
	)

	timetableHandler := handlers.NewTimetableHandler(timetableService, cfg.DefaultModel, cfg.MaxUploadBytes, logger)
	handlerBundle := handlers.NewHandlerBundle(timetableHandler)

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle, corsConfig)

	// Start the HTTP server.
	srv := &http.Server{
		Addr:    "0.0.0.0:" + cfg.AppPort,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Sugar().Warnf("main: tracing shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
