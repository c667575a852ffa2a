package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/dmitrymomot/fsmkit/pkg/config"
	"github.com/dmitrymomot/fsmkit/pkg/eventsink"
	"github.com/dmitrymomot/fsmkit/pkg/logger"
)

const (
	appName   = "fsmctl"
	envPrefix = "FSMCTL_"
)

// runIDKey carries the id of one fsmctl invocation in its context.
type runIDKey struct{}

// settings are read from FSMCTL_* environment variables. Empty log settings
// fall back to the Env preset, or to warn/text without one.
type settings struct {
	Env       string `env:"ENV"`
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`
	Redis     eventsink.RedisConfig
}

func loadSettings(envFile string) (settings, error) {
	var s settings
	var err error
	if envFile != "" {
		err = config.LoadEnv(envFile)
	} else {
		err = config.LoadEnv()
	}
	if err != nil {
		return s, err
	}
	if err := config.Load(&s, config.WithPrefix(envPrefix)); err != nil {
		return s, err
	}
	return s, nil
}

func (s settings) logger(w io.Writer) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithLevel(slog.LevelWarn),
		logger.WithFormat(logger.FormatText),
	}

	switch s.Env {
	case "":
	case logger.EnvDevelopment:
		opts = append(opts, logger.WithDevelopment(appName))
	case logger.EnvProduction:
		opts = append(opts, logger.WithProduction(appName))
	default:
		return nil, fmt.Errorf("unknown %sENV %q: use %s or %s", envPrefix, s.Env, logger.EnvDevelopment, logger.EnvProduction)
	}

	if s.LogLevel != "" {
		level, err := logger.ParseLevel(s.LogLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithLevel(level))
	}
	if s.LogFormat != "" {
		format, err := logger.ParseFormat(s.LogFormat)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithFormat(format))
	}

	opts = append(opts,
		logger.WithOutput(w),
		logger.WithAttr(logger.Component(appName)),
		logger.WithContextValue("run_id", runIDKey{}),
	)
	return logger.New(opts...), nil
}
