package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/fsmkit/pkg/fsm"
	"github.com/dmitrymomot/fsmkit/pkg/logger"
)

// app carries state shared by subcommands once the root command has run its
// pre-run hook.
type app struct {
	envFile  string
	logLevel string
	dev      bool
	settings settings
	log      *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "fsmctl",
		Short:         "Inspect and drive finite state machine definitions",
		Long:          `fsmctl loads a YAML or JSON state machine definition, fires transitions against it and renders its transition table.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.envFile, "env-file", "", "dotenv file to load before reading FSMCTL_* settings (default ./.env if present)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level, overrides FSMCTL_LOG_LEVEL")
	root.PersistentFlags().BoolVar(&a.dev, "dev", false, "use the development log preset (debug, text), same as FSMCTL_ENV=development")

	root.AddCommand(
		newRunCmd(a),
		newAllowedCmd(a),
		newGraphCmd(a),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	s, err := loadSettings(a.envFile)
	if err != nil {
		return err
	}
	if a.dev {
		s.Env = logger.EnvDevelopment
	}
	if a.logLevel != "" {
		s.LogLevel = a.logLevel
	}
	log, err := s.logger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.settings = s
	a.log = log
	return nil
}

// machine loads the definition at path and builds a machine logging through
// the command logger.
func (a *app) machine(path string) (*fsm.Machine, error) {
	cfg, err := fsm.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return fsm.New(cfg, fsm.WithLogger(a.log))
}
