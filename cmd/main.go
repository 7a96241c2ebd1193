package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/okian/boxscore/internal/adapters/http/status"
	app "github.com/okian/boxscore/internal/app"
	"github.com/okian/boxscore/internal/config"
	"github.com/okian/boxscore/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

func main() {
	// Disable default Go metrics collection; the pipeline registers its
	// own metrics on a private registry
	prometheus.Unregister(collectors.NewGoCollector())
	prometheus.Unregister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// Initialize logging
	if err := logger.Init(); err != nil {
		// Use stderr for initialization errors since logger isn't available yet
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	code := run()

	_ = logger.Sync()
	os.Exit(code)
}

func run() int {
	loggerInstance := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM. A signal mid-season
	// cancels the remaining network work; records already fetched are
	// still written by their branch.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return 1
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		loggerInstance.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	// The season number is the one positional argument.
	seasonArg := ""
	if len(os.Args) > 1 {
		seasonArg = os.Args[1]
	}

	svc := app.New(
		app.WithLogger(loggerInstance),
		app.WithConfig(cfg),
	)
	if err := svc.Start(ctx); err != nil {
		os.Stderr.WriteString("failed to start service: " + err.Error() + "\n")
		return 1
	}
	defer svc.Stop()

	// Optional status listener for the duration of the run.
	var srv *http.Server
	if cfg.StatusEnabled {
		mux := http.NewServeMux()
		statusServer := status.NewServer(svc)
		statusServer.Register(ctx, mux)

		srv = &http.Server{
			Addr:              cfg.Addr,
			Handler:           mux,
			ReadTimeout:       readTimeout,
			WriteTimeout:      writeTimeout,
			IdleTimeout:       idleTimeout,
			ReadHeaderTimeout: readHeaderTimeout,
		}

		go func() {
			loggerInstance.Info(ctx, "starting status server", logger.String("addr", cfg.Addr))
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				loggerInstance.Warn(ctx, "status server failed", logger.Error(err))
			}
		}()
	}

	runErr := svc.Run(ctx, seasonArg)

	if srv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			loggerInstance.Error(ctx, "status server shutdown failed", logger.Error(err))
		}
	}

	if runErr != nil {
		os.Stderr.WriteString("season retrieval failed: " + runErr.Error() + "\n")
		return 1
	}

	loggerInstance.Info(ctx, "season retrieval finished")

	return 0
}
