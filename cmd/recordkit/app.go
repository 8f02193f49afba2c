package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/metalagman/recordkit"
	"github.com/metalagman/recordkit/host"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type app struct {
	logger     zerolog.Logger
	dispatcher *host.Dispatcher
}

func newApp(cmd *cobra.Command, opts *rootOptions) (*app, error) {
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(cmd.ErrOrStderr(), cfg.Log)
	if err != nil {
		return nil, err
	}

	storeOpts, err := cfg.Store.Options()
	if err != nil {
		return nil, err
	}

	store, err := recordkit.NewStore(append(storeOpts, recordkit.WithLogger(logger))...)
	if err != nil {
		return nil, fmt.Errorf("create store: %w", err)
	}

	d, err := host.NewRecordDispatcher(store, host.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("create dispatcher: %w", err)
	}

	return &app{logger: logger, dispatcher: d}, nil
}

// resolveConfig loads --config when given; explicitly set flags win over the file.
func resolveConfig(cmd *cobra.Command, opts *rootOptions) (recordkit.Config, error) {
	cfg := recordkit.DefaultConfig()

	if opts.configPath != "" {
		loaded, err := recordkit.LoadConfig(opts.configPath)
		if err != nil {
			return recordkit.Config{}, err
		}

		cfg = loaded
	}

	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}

	if cmd.Flags().Changed("log-format") {
		cfg.Log.Format = opts.logFormat
	}

	return cfg, nil
}

func newLogger(w io.Writer, cfg recordkit.LogConfig) (zerolog.Logger, error) {
	level := zerolog.InfoLevel

	if cfg.Level != "" {
		parsed, err := zerolog.ParseLevel(cfg.Level)
		if err != nil {
			return zerolog.Logger{}, fmt.Errorf("parse log level: %w", err)
		}

		level = parsed
	}

	switch cfg.Format {
	case "", "console":
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	case "json":
	default:
		return zerolog.Logger{}, fmt.Errorf("unknown log format %q", cfg.Format)
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}

func (a *app) invoke(cmd *cobra.Command, command string, args any) (json.RawMessage, error) {
	raw, err := json.Marshal(args)
	if err != nil {
		return nil, fmt.Errorf("marshal %s args: %w", command, err)
	}

	return a.dispatcher.Invoke(cmd.Context(), command, raw)
}
