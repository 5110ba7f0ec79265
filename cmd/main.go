package main

//
//  @title           bikepulse API
//  @version         1.0
//  @description     Daily bike-rental dataset summaries over a selectable date range.
//  @termsOfService  https://github.com/guttosm/bikepulse
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/bikepulse
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        summary
//  @tag.description Rental totals and metrics for a date range
//
//  @tag.name        dataset
//  @tag.description Information about the loaded dataset
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guttosm/bikepulse/config"
	_ "github.com/guttosm/bikepulse/docs" // swagger docs
	"github.com/guttosm/bikepulse/internal/app"
	"github.com/guttosm/bikepulse/internal/domain/dto"
	"github.com/guttosm/bikepulse/internal/logger"
	"github.com/guttosm/bikepulse/internal/service"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// applyFlagOverrides lets CLI flags win over environment configuration.
// --file forces the CSV source.
func applyFlagOverrides(cfg *config.Config, file, port string) {
	if file != "" {
		cfg.Data.Source = config.SourceCSV
		cfg.Data.File = file
	}
	if port != "" {
		cfg.Server.Port = port
	}
}

// parseDateFlag turns an optional YYYY-MM-DD flag value into a bound.
func parseDateFlag(name, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return nil, fmt.Errorf("--%s: expected YYYY-MM-DD: %w", name, err)
	}
	return &t, nil
}

// runReport aggregates [start, end] once and writes the API's JSON
// response shape to w.
func runReport(ctx context.Context, svc service.RentalService, start, end *time.Time, w io.Writer) error {
	res, err := svc.Summarize(ctx, start, end)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(dto.NewSummaryResponse(res))
}

// main is the entry point of the bikepulse application.
//
// Modes (selected via --mode flag):
//   - api:    Starts the REST API serving rental summaries.
//   - report: Prints the summary for --start/--end as JSON and exits.
//
// Flags:
//   - --mode:  Execution mode ("api" or "report"). Default: "api".
//   - --start, --end: Inclusive bounds in YYYY-MM-DD, defaulting to the dataset span.
//   - --file:  CSV path, overrides DATA_FILE.
//   - --port:  Port for the API server. Defaults to SERVER_PORT.
func main() {
	ctx := context.Background()

	// Validation waits for the flag overrides below.
	config.ReadConfig()

	logger.Init(logger.Options{
		Level:  config.AppConfig.Log.Level,
		Pretty: config.AppConfig.Log.Pretty,
	})

	mode := flag.String("mode", "api", "Mode: api or report")
	start := flag.String("start", "", "Report start date (YYYY-MM-DD)")
	end := flag.String("end", "", "Report end date (YYYY-MM-DD)")
	file := flag.String("file", "", "CSV dataset path (overrides DATA_FILE)")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	applyFlagOverrides(&config.AppConfig, *file, *port)
	if err := config.AppConfig.Validate(); err != nil {
		logger.L().Fatal().Err(err).Msg("invalid configuration")
	}

	switch *mode {
	case "api":
		logger.L().Info().Str("source", config.AppConfig.Data.Source).Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	case "report":
		from, err := parseDateFlag("start", *start)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("invalid flag")
		}
		to, err := parseDateFlag("end", *end)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("invalid flag")
		}

		_, svc, cleanup, err := app.BuildService(config.AppConfig)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}
		err = runReport(ctx, svc, from, to, os.Stdout)
		cleanup()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("report failed")
		}

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
