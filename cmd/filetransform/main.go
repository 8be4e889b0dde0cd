package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/JonMunkholm/FileTransform/internal/batch"
	"github.com/JonMunkholm/FileTransform/internal/config"
	"github.com/JonMunkholm/FileTransform/internal/core"
	"github.com/JonMunkholm/FileTransform/internal/logging"
)

const (
	exitOK          = 0
	exitFailure     = 1
	exitInterrupted = 130
)

func main() {
	os.Exit(run())
}

func run() int {
	// Load .env file if it exists (Overload overwrites existing env vars)
	envLoaded := godotenv.Overload() == nil

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		return exitFailure
	}

	logDir := ""
	if cfg.Logging.FileLoggingEnabled() {
		logDir = cfg.Logging.Dir
	}
	logFile, err := logging.Setup(cfg.Logging.Level, cfg.Logging.Format, logDir)
	if err != nil {
		slog.Error("failed to set up logging", "error", err)
		return exitFailure
	}
	if logFile != nil {
		defer logFile.Close()
		slog.Info("logging initiated", "file", logFile.Name())
	}
	slog.Debug("configuration loaded", "config", cfg.String(), "env_file", envLoaded)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logging.WithRunID(ctx, uuid.NewString())
	log := logging.FromContext(ctx)

	progDir, err := batch.ProgramDir()
	if err != nil {
		log.Error("failed to locate program directory", "error", err)
		return exitFailure
	}

	dir, err := batch.FindTargetDir(progDir, cfg.Batch.FolderName)
	if err != nil {
		log.Error("target directory not found",
			"error", err,
			"code", core.MapError(err).Code,
		)
		log.Error("ensure the folder is located next to the program or one level up",
			"folder", cfg.Batch.FolderName,
		)
		return exitFailure
	}

	log.Info(strings.Repeat("=", 50))
	log.Info("starting automatic scan for Excel files", "dir", dir)
	log.Info("files containing 'Enrollment' or 'Usage' will be processed")
	log.Info(strings.Repeat("=", 50))

	report, err := batch.NewProcessor().Run(ctx, dir)
	if report != nil {
		report.WriteSummary(os.Stdout)
		for _, res := range report.Failures() {
			log.Warn("file not processed", "file", res.File, "code", res.Code(), "messages", res.Messages)
		}
		log.Info("automatic folder scan finished",
			"processed", report.Processed,
			"failed", report.Failed,
			"skipped", report.Skipped,
			"duration", report.Duration().String(),
		)
	}

	switch {
	case errors.Is(err, context.Canceled):
		log.Warn("interrupted before all files were processed")
		return exitInterrupted
	case err != nil:
		log.Error("scan failed", "error", err, "code", core.MapError(err).Code)
		return exitFailure
	}
	return exitOK
}
