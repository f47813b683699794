// Copyright 2026 The Argconv Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/enginehub/argconv/cmd/argconv/cli"
	"github.com/enginehub/argconv/lib/actor"
	"github.com/enginehub/argconv/lib/config"
	"github.com/enginehub/argconv/lib/converter"
	"github.com/enginehub/argconv/lib/inject"
)

// session is everything a converter command runs with.
type session struct {
	logger    *slog.Logger
	converter converter.Converter[any]
	issuer    actor.Actor
	context   inject.Values

	output io.Closer
}

// open loads configuration, builds the console actor and the
// converter, and returns them ready for use. The caller must Close
// the session.
func (p *converterParams) open(command string, streams Streams) (*session, error) {
	logger := cli.NewCommandLogger(streams.Stderr, p.Verbose).With("command", command)

	cfg, err := p.loadConfig()
	if err != nil {
		return nil, err
	}
	locale, err := cfg.Locale()
	if err != nil {
		return nil, cli.Validation("invalid config: %w", err)
	}
	color, err := actor.ParseColorMode(cfg.Console.Color)
	if err != nil {
		return nil, cli.Validation("invalid config: %w", err)
	}
	if p.NoColor {
		color = actor.ColorNever
	}

	built, err := p.build()
	if err != nil {
		return nil, err
	}

	writer := streams.Stderr
	var output io.Closer
	if cfg.Console.Output != "" {
		file, err := os.OpenFile(cfg.Console.Output, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
		if err != nil {
			return nil, cli.Internal("opening console output: %w", err)
		}
		writer = file
		output = file
	}

	console := actor.NewConsole(writer, actor.ConsoleConfig{
		Name:   cfg.Console.Name,
		Locale: locale,
		Color:  color,
	})
	issuer := actor.Restrict(console, p.Deny...)

	logger.Debug("converter ready",
		"environment", cfg.Environment,
		"type", p.Type,
		"description", built.Describe(),
		"actor", issuer.Name(),
		"locale", locale.String(),
		"color", string(color),
		"denied", p.Deny,
	)

	return &session{
		logger:    logger,
		converter: built,
		issuer:    issuer,
		context:   actor.With(inject.Empty(), issuer),
		output:    output,
	}, nil
}

// loadConfig reads --config, then ARGCONV_CONFIG, and falls back to
// the defaults when neither is set.
func (p *converterParams) loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	switch {
	case p.ConfigPath != "":
		cfg, err = config.LoadFile(p.ConfigPath)
	case os.Getenv(config.EnvironmentVariable) != "":
		cfg, err = config.Load()
	default:
		cfg = config.Default()
	}
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, cli.NotFound("loading config: %w", err).
				WithHint("Pass --config with an existing file or unset " + config.EnvironmentVariable + ".")
		}
		return nil, cli.Validation("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, cli.Validation("invalid config: %w", err)
	}
	return cfg, nil
}

// Close releases the console output file, if one was opened.
func (s *session) Close() error {
	if s.output == nil {
		return nil
	}
	return s.output.Close()
}
