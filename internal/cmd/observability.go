package cmd

import (
	"io"

	"github.com/google/uuid"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/felixgeelhaar/vstask/internal/log"
	"github.com/felixgeelhaar/vstask/internal/version"
)

// setupLogging builds the invocation logger and installs it as the default.
// Flag values win over the config file. The returned cleanup closes the log
// file, if one was opened.
func setupLogging(cfg *GlobalConfig, opts options, stderr io.Writer) (*log.Logger, func()) {
	info := version.GetInfo()

	output, cleanup := configureLogOutput(cfg, stderr)

	logger := log.New(log.Config{
		Level:          log.ParseLevel(getLogLevel(cfg, opts)),
		Format:         log.ParseFormat(getLogFormat(cfg, opts)),
		Output:         output,
		AddSource:      false,
		ServiceName:    "vstask",
		ServiceVersion: info.Version,
	}).With("run_id", uuid.New().String())

	log.SetDefaultLogger(logger)

	logCfg := logger.Config()
	logger.Debug("logging configured",
		"level", logCfg.Level.String(),
		"format", logCfg.Format.String(),
		"build", info.String(),
	)
	return logger, cleanup
}

func getLogLevel(cfg *GlobalConfig, opts options) string {
	if opts.logLevel != "" {
		return opts.logLevel
	}
	if cfg != nil && cfg.Logging.Level != "" {
		return cfg.Logging.Level
	}
	return "warn"
}

func getLogFormat(cfg *GlobalConfig, opts options) string {
	if opts.logFormat != "" {
		return opts.logFormat
	}
	if cfg != nil && cfg.Logging.Format != "" {
		return cfg.Logging.Format
	}
	return "text"
}

func configureLogOutput(cfg *GlobalConfig, stderr io.Writer) (log.Output, func()) {
	if cfg == nil || cfg.Logging.File == "" {
		return log.NewOutput(stderr), func() {}
	}

	file := &lumberjack.Logger{
		Filename:   cfg.Logging.File,
		MaxSize:    cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAge:     cfg.Logging.MaxAgeDays,
	}
	cleanup := func() {
		_ = file.Close()
	}
	return log.NewOutput(io.MultiWriter(stderr, file)), cleanup
}
