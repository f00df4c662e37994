package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"

	"github.com/ridawn928/hr-connect/internal/config"
	"github.com/ridawn928/hr-connect/internal/conflict"
	"github.com/ridawn928/hr-connect/internal/device"
	"github.com/ridawn928/hr-connect/internal/engine"
	"github.com/ridawn928/hr-connect/internal/executor"
	"github.com/ridawn928/hr-connect/internal/models"
	"github.com/ridawn928/hr-connect/internal/queue"
	"github.com/ridawn928/hr-connect/internal/queue/boltdb"
	"github.com/ridawn928/hr-connect/internal/queue/sqlite"
	"github.com/ridawn928/hr-connect/internal/remote"
	"github.com/ridawn928/hr-connect/internal/scheduler"
	"github.com/ridawn928/hr-connect/internal/window"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// storage объединяет обе роли одного файла данных.
type storage interface {
	queue.Store
	queue.MetadataStore
}

func main() {
	// .env не обязателен — молча продолжаем без него.
	_ = godotenv.Load()

	showVersion := flag.Bool("version", false, "Show version information")
	configPath := flag.String("config", "syncd.yaml", "Path to YAML sync configuration")
	dbPath := flag.String("db", "syncd.db", "Path to local queue database")
	driver := flag.String("driver", "bolt", "Queue storage driver: bolt or sqlite")
	serverURL := flag.String("server", envOr("SYNCD_SERVER_URL", "http://localhost:8080"), "Remote server base URL")
	aggregates := flag.String("aggregates", "attendance,leave,profile", "Comma-separated aggregate types to sync")
	localFields := flag.String("local-fields", "", "Comma-separated dotted paths the local side is authoritative for")
	probeAddr := flag.String("probe", "1.1.1.1:443", "Address dialed to probe connectivity")
	once := flag.Bool("once", false, "Run a single sync cycle and exit")
	logLevel := flag.String("log-level", envOr("SYNCD_LOG_LEVEL", "info"), "Log level: debug, info, warn, error")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger := newLogger(*logLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger, options{
		configPath:  *configPath,
		dbPath:      *dbPath,
		driver:      *driver,
		serverURL:   *serverURL,
		aggregates:  splitList(*aggregates),
		localFields: splitList(*localFields),
		probeAddr:   *probeAddr,
		once:        *once,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	configPath  string
	dbPath      string
	driver      string
	serverURL   string
	probeAddr   string
	aggregates  []string
	localFields []string
	once        bool
}

func run(ctx context.Context, logger *slog.Logger, opts options) error {
	// Очередь и metadata живут в одном файле.
	store, err := openStorage(ctx, opts.driver, opts.dbPath)
	if err != nil {
		return fmt.Errorf("failed to open queue storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close storage", "error", err)
		}
	}()

	cfg, err := loadConfig(ctx, store, opts.configPath, logger)
	if err != nil {
		return err
	}

	registry := remote.NewRegistry()
	for _, aggregateType := range opts.aggregates {
		registry.Register(aggregateType, remote.NewHTTPHandler(opts.serverURL, aggregateType))
	}

	prober := device.NewProber(opts.probeAddr, nil)
	battery := device.NewSysfsBattery("")
	go prober.Run(ctx)
	go battery.Run(ctx)

	windowTracker := window.NewTracker(store, logger, nil)
	detector := conflict.NewDetector(conflict.NewPolicy(opts.localFields...))
	resolver := conflict.NewResolver(nil)
	exec := executor.New(store, registry, detector, resolver, windowTracker, prober, logger, nil)

	if opts.once {
		result, err := exec.SyncAll(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Synced %d operations: %d succeeded, %d failed, %d conflicted, %d retried\n",
			result.Total, result.Succeeded, result.Failed, result.Conflicted, result.Retried)
		return nil
	}

	sched := scheduler.New(exec, store, prober, battery, cfg, logger, nil)
	// Self-tuning переписывает и файл, чтобы оператор видел текущие
	// настройки.
	sched.OnConfigTuned(func(cfg models.SyncConfig) error {
		return config.Save(opts.configPath, cfg)
	})
	eng := engine.New(store, exec, sched, windowTracker, logger, nil)

	if err := eng.Start(ctx); err != nil {
		return fmt.Errorf("failed to start engine: %w", err)
	}
	defer eng.Close()

	go watchConfig(ctx, logger, opts.configPath, sched)

	logger.Info("sync daemon started",
		"version", Version,
		"driver", opts.driver,
		"aggregates", opts.aggregates,
		"server", opts.serverURL)

	<-ctx.Done()
	logger.Info("shutting down")
	return nil
}

// loadConfig reads the YAML seed configuration; a saved metadata copy
// (including self-tuned settings) takes priority. A metadata read error
// is not fatal, but it must not pass silently: the file settings may be
// stale relative to the tuned copy.
func loadConfig(ctx context.Context, meta queue.MetadataStore, path string, logger *slog.Logger) (models.SyncConfig, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}

	saved, err := meta.SyncConfig(ctx)
	switch {
	case err != nil:
		logger.Warn("failed to load saved sync config, using file settings", "error", err)
	case saved != nil:
		cfg = *saved
		cfg.Normalize()
	}
	return cfg, nil
}

func openStorage(ctx context.Context, driver, dbPath string) (storage, error) {
	switch driver {
	case "bolt":
		return boltdb.New(ctx, dbPath)
	case "sqlite":
		return sqlite.New(ctx, dbPath)
	}
	return nil, fmt.Errorf("unknown storage driver %q", driver)
}

// watchConfig reloads the YAML file on change and hands the new settings
// to the scheduler, which re-evaluates its policy.
func watchConfig(ctx context.Context, logger *slog.Logger, path string, sched *scheduler.Scheduler) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Warn("config watch disabled", "error", err)
		return
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		logger.Warn("config watch disabled", "path", path, "error", err)
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			cfg, err := config.Load(path)
			if err != nil {
				logger.Warn("failed to reload config", "error", err)
				continue
			}
			if err := sched.UpdateConfig(ctx, cfg); err != nil {
				logger.Warn("failed to apply reloaded config", "error", err)
				continue
			}
			logger.Info("config reloaded", "path", path)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("config watch error", "error", err)
		}
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func printVersion() {
	fmt.Printf("HR Connect Sync Daemon\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
