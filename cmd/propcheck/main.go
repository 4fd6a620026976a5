// Package main provides the propcheck binary entry point.
// Propcheck consumes harvested dataset graphs from NATS, evaluates
// metadata quality rules against them and publishes DQV measurement
// graphs for downstream scoring.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/c360studio/semstreams/component"
	"github.com/c360studio/semstreams/natsclient"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/spf13/cobra"

	"github.com/opencatalog/propcheck/config"
	"github.com/opencatalog/propcheck/metrics"
	propertychecker "github.com/opencatalog/propcheck/processor/property-checker"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "propcheck"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
		natsURL    string
	)

	cmd := &cobra.Command{
		Use:   "propcheck",
		Short: "Dataset metadata quality checker",
		Long: `Propcheck evaluates metadata quality rules against harvested
dataset descriptions.

It consumes harvested dataset graphs from NATS JetStream, checks each
against a declarative rule catalog plus reference-data vocabularies,
and publishes DQV quality measurement graphs for downstream scoring.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configPath, logLevel, natsURL)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&natsURL, "nats-url", "", "NATS server URL (overrides config)")

	cmd.AddCommand(checkCmd())

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}

func run(configPath, logLevel, natsURL string) error {
	bootstrapLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := loadConfig(configPath, bootstrapLogger)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if natsURL != "" {
		cfg.NATS.URL = natsURL
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	natsClient, err := connectToNATS(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer natsClient.Close(ctx)

	if err := ensureStreams(ctx, natsClient, logger); err != nil {
		return err
	}

	checkerConfig, err := json.Marshal(propertychecker.Config{
		Ports:          propertychecker.DefaultConfig().Ports,
		CatalogPath:    cfg.Catalog.Path,
		RefDataBaseURL: cfg.RefData.BaseURL,
		RefDataAPIKey:  cfg.RefData.APIKey,
		RefDataTTL:     cfg.RefData.CacheTTL.String(),
	})
	if err != nil {
		return fmt.Errorf("marshal component config: %w", err)
	}

	// Register the factory so the component is discoverable alongside the
	// semstreams built-ins.
	componentRegistry := component.NewRegistry()
	if err := propertychecker.Register(componentRegistry); err != nil {
		return fmt.Errorf("register property-checker: %w", err)
	}

	deps := component.Dependencies{
		Logger:     logger,
		NATSClient: natsClient,
	}
	disc, err := propertychecker.NewComponent(checkerConfig, deps)
	if err != nil {
		return fmt.Errorf("create property-checker: %w", err)
	}
	checker := disc.(*propertychecker.Component)

	instruments := metrics.New()
	checker.SetInstruments(instruments)

	if err := checker.Initialize(); err != nil {
		return fmt.Errorf("initialize property-checker: %w", err)
	}

	signalCtx, signalCancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer signalCancel()

	if err := checker.Start(signalCtx); err != nil {
		return fmt.Errorf("start property-checker: %w", err)
	}

	var metricsServer *http.Server
	if cfg.Metrics.Addr != "" {
		metricsServer = serveMetrics(cfg.Metrics.Addr, instruments, logger)
	}

	slog.Info("Propcheck ready", "version", Version)

	<-signalCtx.Done()
	slog.Info("Received shutdown signal")

	if metricsServer != nil {
		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			slog.Error("Error stopping metrics server", "error", err)
		}
		cancel()
	}
	if err := checker.Stop(30 * time.Second); err != nil {
		slog.Error("Error stopping property-checker", "error", err)
	}

	slog.Info("Propcheck shutdown complete")
	return nil
}

func loadConfig(configPath string, logger *slog.Logger) (*config.Config, error) {
	if configPath != "" {
		cfg := config.DefaultConfig()
		fileCfg, err := config.LoadFromFile(configPath)
		if err != nil {
			return nil, err
		}
		cfg.Merge(fileCfg)
		return cfg, nil
	}
	return config.NewLoader(logger).Load()
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func connectToNATS(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*natsclient.Client, error) {
	natsURL := cfg.NATS.URL

	// Environment variable override takes precedence
	if envURL := os.Getenv("NATS_URL"); envURL != "" {
		natsURL = envURL
	}

	logger.Info("Connecting to NATS", "url", natsURL)

	client, err := natsclient.NewClient(natsURL,
		natsclient.WithName(cfg.NATS.Name),
		natsclient.WithMaxReconnects(-1),
		natsclient.WithReconnectWait(time.Second),
		natsclient.WithHealthInterval(30*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("create NATS client: %w", err)
	}

	if err := client.Connect(ctx); err != nil {
		return nil, wrapNATSError(err, natsURL)
	}

	connCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := client.WaitForConnection(connCtx); err != nil {
		return nil, wrapNATSError(err, natsURL)
	}

	logger.Info("Connected to NATS", "url", natsURL)
	return client, nil
}

// wrapNATSError provides helpful guidance when NATS connection fails.
func wrapNATSError(err error, url string) error {
	errStr := err.Error()

	if strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "no servers available") ||
		strings.Contains(errStr, "timeout") {
		return fmt.Errorf(`NATS connection failed: %w

NATS is not running at %s.

To start NATS:
  docker compose up -d nats

Or set NATS_URL environment variable to point to your NATS server.`, err, url)
	}

	return fmt.Errorf("NATS connection failed: %w", err)
}

// ensureStreams creates the JetStream streams the checker consumes from
// and publishes to.
func ensureStreams(ctx context.Context, natsClient *natsclient.Client, logger *slog.Logger) error {
	logger.Debug("Creating JetStream streams")

	js, err := natsClient.JetStream()
	if err != nil {
		return fmt.Errorf("get JetStream: %w", err)
	}

	streams := []jetstream.StreamConfig{
		{
			Name:     "DATASET",
			Subjects: []string{"dataset.harvested.>"},
			MaxAge:   24 * time.Hour,
			Storage:  jetstream.FileStorage,
			Replicas: 1,
		},
		{
			Name:     "MQA",
			Subjects: []string{"mqa.properties.>"},
			MaxAge:   24 * time.Hour,
			Storage:  jetstream.FileStorage,
			Replicas: 1,
		},
	}
	for _, sc := range streams {
		if _, err := js.CreateOrUpdateStream(ctx, sc); err != nil {
			return fmt.Errorf("ensure stream %s: %w", sc.Name, err)
		}
	}

	logger.Debug("JetStream streams ready")
	return nil
}

// serveMetrics exposes the Prometheus registry on addr in the background.
func serveMetrics(addr string, instruments *metrics.Metrics, logger *slog.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", instruments.Handler())

	server := &http.Server{Addr: addr, Handler: mux}
	go func() {
		logger.Info("Serving metrics", "addr", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Metrics server failed", "error", err)
		}
	}()
	return server
}
