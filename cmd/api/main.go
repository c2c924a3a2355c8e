package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	"ai-toolkit/internal/config"
	"ai-toolkit/internal/infra/docextract"
	"ai-toolkit/internal/infra/fetcher"
	"ai-toolkit/internal/infra/llm"
	"ai-toolkit/internal/observability/logging"
	"ai-toolkit/internal/observability/slo"
	"ai-toolkit/internal/observability/tracing"

	asstUC "ai-toolkit/internal/usecase/assistant"
	lpUC "ai-toolkit/internal/usecase/learnpath"
	sumUC "ai-toolkit/internal/usecase/summarize"

	hhttp "ai-toolkit/internal/handler/http"
	hassistant "ai-toolkit/internal/handler/http/assistant"
	hlearnpath "ai-toolkit/internal/handler/http/learnpath"
	"ai-toolkit/internal/handler/http/middleware"
	"ai-toolkit/internal/handler/http/requestid"
	hsummarize "ai-toolkit/internal/handler/http/summarize"

	_ "ai-toolkit/docs" // swagger docs
)

// @title           AI Toolkit API
// @version         1.0
// @description     Extractive text summarization, document Q&A, website help chat
// @description     and learning path generation.

// @contact.name   API Support

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

func main() {
	logger := initLogger()

	cfg, err := config.LoadServerConfig()
	if err != nil {
		logger.Error("failed to load server configuration", slog.Any("error", err))
		os.Exit(1)
	}

	shutdownTracing := tracing.Setup(cfg.TraceSampleRatio)
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Error("failed to shut down tracer provider", slog.Any("error", err))
		}
	}()

	components := setupServer(logger, cfg)
	runServer(logger, cfg, components)
}

// initLogger initializes the process logger from LOG_LEVEL and LOG_FORMAT.
func initLogger() *slog.Logger {
	logger := logging.NewLogger()
	slog.SetDefault(logger)
	return logger
}

// ServerComponents holds components needed for server operation and cleanup.
type ServerComponents struct {
	Handler    http.Handler
	Readiness  *hhttp.Readiness
	Reloader   *config.Reloader
	SLOTracker *slo.Tracker
}

// setupServer builds the services, routes and middleware.
func setupServer(logger *slog.Logger, cfg *config.ServerConfig) *ServerComponents {
	// URL ingestion is optional; without it only raw text is accepted.
	fetchCfg, err := fetcher.LoadConfigFromEnv()
	if err != nil {
		logger.Error("failed to load content fetch configuration", slog.Any("error", err))
		os.Exit(1)
	}
	var (
		contentFetcher sumUC.ContentFetcher
		fetchReporter  hhttp.BreakerReporter
	)
	if fetchCfg.Enabled {
		f := fetcher.NewReadabilityFetcher(fetchCfg)
		contentFetcher, fetchReporter = f, f
		logger.Info("content fetch enabled",
			slog.Duration("timeout", fetchCfg.Timeout),
			slog.Bool("deny_private_ips", fetchCfg.DenyPrivateIPs))
	} else {
		logger.Info("content fetch disabled, url inputs will be rejected")
	}

	sumSvc := sumUC.NewService(sumUC.DefaultEngine(), contentFetcher, cfg.Summarize)
	reloader := setupKeyPoints(logger, cfg, sumSvc)

	runner, err := sumUC.NewRunner(sumSvc, cfg.MaxSessions)
	if err != nil {
		logger.Error("failed to create summarize runner", slog.Any("error", err))
		os.Exit(1)
	}

	provider, err := llm.New(llm.LoadConfig())
	if err != nil {
		logger.Error("failed to create assistant provider", slog.Any("error", err))
		os.Exit(1)
	}
	var providerReporter hhttp.BreakerReporter
	if br, ok := provider.(hhttp.BreakerReporter); ok {
		providerReporter = br
	}
	asstSvc := asstUC.NewService(provider, docextract.NewHTMLExtractor(), cfg.Assistant)
	logger.Info("assistant provider configured", slog.String("provider", asstSvc.ProviderName()))

	readiness := &hhttp.Readiness{}
	health := &hhttp.HealthHandler{
		Version: cfg.Version,
		Dependencies: map[string]hhttp.BreakerReporter{
			"assistant": providerReporter,
			"fetcher":   fetchReporter,
		},
	}

	// Assistant routes wait on a remote model and are kept out of the latency objectives.
	sloTracker := slo.NewTracker(logger, "/api/document-qa", "/api/website-chat")

	mux := setupRoutes(health, readiness, sumSvc, runner, asstSvc, lpUC.NewGenerator())
	handler := applyMiddleware(logger, cfg, sloTracker, mux)

	return &ServerComponents{
		Handler:    handler,
		Readiness:  readiness,
		Reloader:   reloader,
		SLOTracker: sloTracker,
	}
}

// setupKeyPoints applies the key point vocabulary file, if configured, and
// returns the reloader when a reload schedule is set.
func setupKeyPoints(logger *slog.Logger, cfg *config.ServerConfig, svc *sumUC.Service) *config.Reloader {
	if cfg.KeyPointFile == "" {
		return nil
	}

	if cfg.KeyPointReloadSchedule == "" {
		kpCfg, err := config.LoadKeyPointConfig(cfg.KeyPointFile)
		if err != nil {
			logger.Error("failed to load key point configuration", slog.Any("error", err))
			os.Exit(1)
		}
		engine, err := sumUC.NewEngine(kpCfg)
		if err != nil {
			logger.Error("invalid key point configuration", slog.Any("error", err))
			os.Exit(1)
		}
		svc.SetEngine(engine)
		logger.Info("key point configuration loaded", slog.String("path", cfg.KeyPointFile))
		return nil
	}

	reloader, err := config.NewReloader(cfg.KeyPointFile, cfg.KeyPointReloadSchedule, svc, logger)
	if err != nil {
		logger.Error("failed to create key point reloader", slog.Any("error", err))
		os.Exit(1)
	}
	if outcome := reloader.Reload(); outcome == config.ReloadFailure {
		logger.Error("failed to load key point configuration", slog.String("path", cfg.KeyPointFile))
		os.Exit(1)
	}
	return reloader
}

// setupRoutes registers all HTTP routes.
func setupRoutes(
	health *hhttp.HealthHandler,
	readiness *hhttp.Readiness,
	sumSvc *sumUC.Service,
	runner *sumUC.Runner,
	asstSvc *asstUC.Service,
	generator *lpUC.Generator,
) *http.ServeMux {
	mux := http.NewServeMux()

	hhttp.RegisterHealth(mux, health, readiness)
	mux.Handle("GET /metrics", hhttp.MetricsHandler())
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	hsummarize.Register(mux, sumSvc, runner)
	hassistant.Register(mux, asstSvc)
	hlearnpath.Register(mux, generator)

	return mux
}

// applyMiddleware wraps the handler with the middleware chain.
// Order: CORS → Request ID → Tracing → Metrics → SLO → Logging → Recovery → IP Rate Limit → Body Limit → Timeout
func applyMiddleware(logger *slog.Logger, cfg *config.ServerConfig, sloTracker *slo.Tracker, handler http.Handler) http.Handler {
	corsConfig := middleware.DefaultCORSConfig(cfg.CORSAllowedOrigins)
	corsConfig.Logger = logger
	logger.Info("CORS enabled",
		slog.Any("allowed_origins", corsConfig.AllowedOrigins),
		slog.Any("allowed_methods", corsConfig.AllowedMethods))

	chain := []hhttp.Middleware{
		middleware.CORS(corsConfig),
		requestid.Middleware,
		tracing.Middleware,
		hhttp.MetricsMiddleware,
		sloTracker.Middleware,
		hhttp.Logging(logger),
		hhttp.Recover(logger),
	}

	if cfg.RateLimit.Enabled {
		extractor, err := middleware.NewTrustedProxyExtractor(cfg.RateLimit.TrustedProxies)
		if err != nil {
			logger.Error("failed to load trusted proxy configuration", slog.Any("error", err))
			os.Exit(1)
		}
		limiter := middleware.NewIPRateLimiter(middleware.IPRateLimiterConfig{
			RequestsPerMinute: cfg.RateLimit.RequestsPerMinute,
			Burst:             cfg.RateLimit.Burst,
			MaxClients:        cfg.RateLimit.MaxClients,
		}, extractor)
		chain = append(chain, limiter.Middleware())
		logger.Info("rate limiting initialized",
			slog.Int("requests_per_minute", cfg.RateLimit.RequestsPerMinute),
			slog.Int("burst", cfg.RateLimit.Burst),
			slog.Int("trusted_proxies_count", len(cfg.RateLimit.TrustedProxies)))
	} else {
		logger.Warn("rate limiting is DISABLED - not recommended for production")
	}

	chain = append(chain,
		hhttp.LimitRequestBody(cfg.MaxBodyBytes),
		hhttp.Timeout(cfg.RequestTimeout),
	)
	return hhttp.Chain(handler, chain...)
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, cfg *config.ServerConfig, components *ServerComponents) {
	// Create a context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if components.Reloader != nil {
		components.Reloader.Start()
	}
	if err := components.SLOTracker.Start("@every 1m"); err != nil {
		logger.Error("failed to start slo tracker", slog.Any("error", err))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           components.Handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		logger.Error("failed to listen", slog.String("addr", cfg.Addr), slog.Any("error", err))
		os.Exit(1)
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", ln.Addr().String()),
			slog.String("version", cfg.Version))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()
	components.Readiness.SetReady(true)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	// Fail readiness first so load balancers stop routing new requests.
	components.Readiness.SetReady(false)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if components.Reloader != nil {
		components.Reloader.Stop(shutdownCtx)
	}
	components.SLOTracker.Stop(shutdownCtx)
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}

	// Cancel request contexts still running after shutdown
	cancel()
	logger.Info("server stopped")
}
