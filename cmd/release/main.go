package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/vmatt/pysqlsync/pkg/api"
	"github.com/vmatt/pysqlsync/pkg/logging"
	"github.com/vmatt/pysqlsync/pkg/pipeline"
)

var version = "dev"

const (
	_ = iota
	exitDotenvError
	exitLoadConfigurationFileFailed
	exitInvalidConfiguration
	exitCleanupFailed
	exitArtifactBuildFailed
	exitVariantBuildFailed
	exitPipelineFailed
)

var (
	configFile  string
	workspace   string
	variants    string
	cleanPaths  string
	loggingType string
	logLevel    string
	showVersion bool
)

func init() {
	flag.StringVar(
		&configFile,
		"config",
		"",
		"release configuration YAML file (default: .release.yaml in the workspace, if present)")
	flag.StringVar(
		&workspace,
		"workspace",
		"",
		"build workspace directory (overrides configuration)")
	flag.StringVar(
		&variants,
		"variants",
		"",
		"comma-separated runtime-version identifiers (overrides configuration)")
	flag.StringVar(
		&cleanPaths,
		"clean",
		"",
		"comma-separated glob patterns of stale build output (overrides configuration)")
	flag.StringVar(
		&loggingType,
		"logging-type",
		"tint",
		"logging type: json, text or tint")
	flag.StringVar(
		&logLevel,
		"log-level",
		"info",
		"logging level: debug, info, warn, error")
	flag.BoolVar(
		&showVersion,
		"version",
		false,
		"print version and exit")
}

func main() {
	flag.Parse()

	if showVersion {
		fmt.Println(version)
		os.Exit(0)
	}

	_ = logging.Initialize(loggingType, logLevel)

	includeEnv()

	cfg := loadConfiguration()
	applyOverrides(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := pipeline.Run(ctx, cfg)
	if err != nil {
		if ctx.Err() != nil {
			slog.Error("pipeline interrupted",
				"step", report.FailedStep,
				"variant", report.FailedVariant)
		} else {
			slog.Error("pipeline failed",
				"step", report.FailedStep,
				"variant", report.FailedVariant,
				"error", err)
		}
		os.Exit(exitCodeFor(err))
	}

	slog.Info("release pipeline succeeded", "steps", len(report.Steps), "variants", len(cfg.Variants))
}

func exitCodeFor(err error) int {
	switch {
	case errors.Is(err, pipeline.ErrCleanup):
		return exitCleanupFailed
	case errors.Is(err, pipeline.ErrArtifactBuild):
		return exitArtifactBuildFailed
	case errors.Is(err, pipeline.ErrVariantBuild):
		return exitVariantBuildFailed
	default:
		return exitPipelineFailed
	}
}

func loadConfiguration() *api.Config {
	filename := configFile
	if filename == "" {
		candidate := filepath.Join(workspaceOrDefault(), api.DefaultConfigFilename)
		if _, err := os.Stat(candidate); err != nil {
			slog.Debug("no configuration file found, using defaults")
			return api.DefaultConfig()
		}
		filename = candidate
	}

	cfg, err := api.LoadConfig(filename)
	if err != nil {
		slog.Error("failed to load configuration", "filename", filename, "error", err)
		os.Exit(exitLoadConfigurationFileFailed)
	}
	return cfg
}

func applyOverrides(cfg *api.Config) {
	if workspace != "" {
		cfg.Workspace = workspace
	}
	if variants != "" {
		cfg.Variants = splitList(variants)
	}
	if cleanPaths != "" {
		cfg.Clean = splitList(cleanPaths)
	}

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(exitInvalidConfiguration)
	}
}

func workspaceOrDefault() string {
	if workspace != "" {
		return workspace
	}
	return "."
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func includeEnv() {
	err := godotenv.Load()
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Error("failed to load .env", "error", err)
			os.Exit(exitDotenvError)
		}
		slog.Debug("no .env file found")
	} else {
		slog.Info("using .env file")
	}
}
