package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"go.uber.org/zap"

	"school-renderer/internal/batch"
	"school-renderer/internal/config"
	"school-renderer/internal/logger"
	"school-renderer/internal/watch"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to YAML config file")
	outputDir := flag.String("output", "", "Output directory (default: renders)")
	width := flag.Int("width", 0, "Frame width in pixels (default: 640)")
	height := flag.Int("height", 0, "Frame height in pixels (default: 480)")
	frames := flag.Int("frames", 0, "Number of orbit frames (default: 12)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	shading := flag.String("shading", "", "Shading mode: basic or lambert")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error")
	logFile := flag.String("log-file", "", "Also write logs to this file")
	watchCfg := flag.Bool("watch", false, "Re-render whenever the config file changes (requires -config)")

	flag.Parse()

	flags := config.Flags{
		OutputDir: *outputDir,
		Width:     *width,
		Height:    *height,
		Frames:    *frames,
		Workers:   *workers,
		Shading:   *shading,
		LogLevel:  *logLevel,
		LogFile:   *logFile,
	}

	cfg, err := loadConfig(*configFile, flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.File); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *watchCfg {
		if *configFile == "" {
			logger.Log.Fatal("-watch requires -config")
		}
		runOnce(ctx, cfg)
		logger.Log.Info("watching config", zap.String("path", *configFile))
		err := watch.File(ctx, *configFile, watch.DefaultDebounce, func() {
			next, err := loadConfig(*configFile, flags)
			if err != nil {
				logger.Log.Error("reload config", zap.Error(err))
				return
			}
			runOnce(ctx, next)
		})
		if err != nil {
			logger.Log.Fatal("watch", zap.Error(err))
		}
		return
	}

	if failed := runOnce(ctx, cfg); failed > 0 {
		logger.Sync()
		os.Exit(1)
	}
}

func loadConfig(path string, flags config.Flags) (config.Config, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
	}
	// CLI flags override config file
	cfg.Resolve(flags)
	return cfg, nil
}

// runOnce renders every orbit frame and writes the manifest. It returns
// the number of frames that failed.
func runOnce(ctx context.Context, cfg config.Config) int {
	bc, err := batch.FromConfig(cfg)
	if err != nil {
		logger.Log.Error("prepare render", zap.Error(err))
		return 1
	}

	logger.Log.Info("rendering school model",
		zap.Int("primitives", len(bc.Scene.Primitives)),
		zap.Int("frames", bc.Frames),
		zap.Int("workers", bc.Workers),
		zap.String("size", fmt.Sprintf("%dx%d", bc.Width, bc.Height)),
		zap.String("shading", bc.Shading.String()),
		zap.String("output", bc.OutputDir))

	start := time.Now()
	results := batch.Run(ctx, bc)

	failed := 0
	for _, r := range results {
		if !r.Success {
			failed++
			logger.Log.Warn("frame failed", zap.Int("frame", r.Frame), zap.String("error", r.Error))
		}
	}
	logger.Log.Info("done",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("rendered", len(results)-failed),
		zap.Int("failed", failed))

	// Write manifest
	manifestPath := filepath.Join(bc.OutputDir, "manifest.json")
	if err := os.MkdirAll(bc.OutputDir, 0755); err != nil {
		logger.Log.Warn("manifest dir", zap.Error(err))
		return failed
	}
	if err := batch.WriteManifest(manifestPath, batch.NewManifest(bc.Scene, results)); err != nil {
		logger.Log.Warn("manifest write failed", zap.Error(err))
	} else {
		logger.Log.Info("manifest written", zap.String("path", manifestPath))
	}

	return failed
}
