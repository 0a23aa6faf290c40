package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"os-scheduler/api"
	"os-scheduler/config"
	"os-scheduler/internal/report"
	"os-scheduler/internal/requests"
	"os-scheduler/internal/schedulers"
)

// With CSV case files as arguments every algorithm is run over each file and
// the reports are written to the configured output directory. Without
// arguments the HTTP API is served.
func main() {
	cfg, err := config.GetSchedulerConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	if len(os.Args) > 1 {
		failed := 0
		for _, path := range os.Args[1:] {
			if err := runCase(cfg, path); err != nil {
				logger.Error("case failed", zap.String("file", path), zap.Error(err))
				failed++
			}
		}
		if failed > 0 {
			os.Exit(1)
		}
		return
	}

	app := fiber.New()
	api.Register(app, api.NewSchedulerHandlerImpl(cfg))
	logger.Info("listening", zap.Int("port", cfg.Port))
	if err := app.Listen(":" + strconv.Itoa(cfg.Port)); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func runCase(cfg *config.SchedulerConfig, path string) error {
	caseName := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	request, err := requests.ReadJobsFile(path)
	if err != nil {
		return err
	}
	if len(request.Jobs) == 0 {
		zap.L().Warn("case has no processes", zap.String("case", caseName))
	}

	results := schedulers.RunAll(request.Processes(cfg.PriorityLabels), cfg.Options())
	paths, err := report.WriteCase(cfg.OutputDir, caseName, results)
	for _, p := range paths {
		zap.L().Info("report written", zap.String("case", caseName), zap.String("path", p))
	}
	return err
}

func newLogger(cfg *config.SchedulerConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	zapConfig := zap.NewProductionConfig()
	if cfg.LogDevelopment {
		zapConfig = zap.NewDevelopmentConfig()
	}
	zapConfig.Level = zap.NewAtomicLevelAt(level)
	return zapConfig.Build()
}
