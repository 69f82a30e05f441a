// LowCode MCP Server - A Model Context Protocol server for the LowCode API
// Exposes bot, template, media and system operations as MCP tools over stdio
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	lowcode "github.com/olgasafonova/lowcodeapi-go"
	"github.com/olgasafonova/lowcodeapi-go/internal/config"
	"github.com/olgasafonova/lowcodeapi-go/tools"
	"github.com/olgasafonova/lowcodeapi-go/tracing"
)

const (
	ServerName    = "lowcode-mcp-server"
	ServerVersion = lowcode.Version
)

const instructions = `LowCode MCP Server provides tools for the LowCode bot platform.

Start with lowcode_list_bots to find bot IDs, then use lowcode_get_bot_status,
lowcode_start_bot or lowcode_stop_bot. Templates are browsed with
lowcode_list_templates and applied with lowcode_apply_template.

Configure via environment variables:
- LOWCODE_TOKEN: API bearer token (required)
- LOWCODE_BASE_URL: API base URL (default https://api.lowcodeapilib.com)
- LOWCODE_TIMEOUT: per-request timeout (default 30s)`

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	metricsAddr := flag.String("metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9090)")
	flag.Parse()

	if err := run(*configPath, *metricsAddr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, metricsAddr string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		if config.IsMissingToken(err) {
			return fmt.Errorf("LOWCODE_TOKEN is not set: %w", err)
		}
		return fmt.Errorf("load configuration: %w", err)
	}
	if metricsAddr != "" {
		cfg.MetricsAddr = metricsAddr
	}

	// stdout carries the MCP protocol
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Setup(ctx, tracing.DefaultConfig())
	if err != nil {
		return fmt.Errorf("set up tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Warn("Tracing shutdown failed", "error", err)
		}
	}()

	opts := []lowcode.Option{
		lowcode.WithBaseURL(cfg.BaseURL),
		lowcode.WithLogger(logger),
		lowcode.WithTimeout(cfg.Timeout),
	}
	if cfg.UserAgent != "" {
		opts = append(opts, lowcode.WithUserAgent(cfg.UserAgent))
	}
	client, err := lowcode.NewClient(cfg.Token, opts...)
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}

	if cfg.MetricsAddr != "" {
		metricsServer := startMetricsServer(cfg.MetricsAddr, logger)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = metricsServer.Shutdown(shutdownCtx)
		}()
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, &mcp.ServerOptions{
		Logger:       logger,
		Instructions: instructions,
	})

	tools.NewHandlerRegistry(client, logger).RegisterAll(server)

	logger.Info("Starting LowCode MCP Server",
		"name", ServerName,
		"version", ServerVersion,
		"client", client.String(),
	)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// startMetricsServer serves /metrics in the background
func startMetricsServer(addr string, logger *slog.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Serving metrics", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Metrics server failed", "error", err)
		}
	}()
	return srv
}
