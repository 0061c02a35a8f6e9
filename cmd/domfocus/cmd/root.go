// Package cmd implements the domfocus CLI commands.
//
// The root command loads configuration and installs the logger; the
// subcommands (run, repl, version) do the work.
package cmd

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/go-drift/domfocus/cmd/domfocus/internal/config"
	"github.com/go-drift/domfocus/pkg/dom"
	"github.com/go-drift/domfocus/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// app carries state shared by the subcommands.
type app struct {
	v      *viper.Viper
	cfg    *config.Config
	logger zerolog.Logger
}

func (a *app) init(cmd *cobra.Command) error {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		a.v.SetConfigFile(path)
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = cfg.Log.NewLogger(cmd.ErrOrStderr())

	dom.SetLogger(a.logger)
	errors.SetHandler(errors.NewLogHandler(a.logger, cfg.Log.Verbose))
	a.logger.Debug().Str("config", a.v.ConfigFileUsed()).Msg("configuration loaded")
	return nil
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New(), logger: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "domfocus",
		Short: "Focus management for a headless document",
		Long: `domfocus replays focus scenarios against a headless document and
reports the focus, blur, focusin and focusout events they produce.

Scenarios are YAML files describing a document tree, listeners and a list
of steps. Use "domfocus repl" to explore a document interactively.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return a.init(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "config file (default ./domfocus.yaml or ~/.config/domfocus/domfocus.yaml)")
	flags.String("log-level", "", "log level: trace, debug, info, warn or error")
	flags.String("log-format", "", "log format: console or json")
	flags.Bool("verbose", false, "include error kinds and stack traces in error logs")
	_ = a.v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("log.format", flags.Lookup("log-format"))
	_ = a.v.BindPFlag("log.verbose", flags.Lookup("verbose"))

	root.AddCommand(newRunCmd(a), newReplCmd(a), newVersionCmd())
	return root
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return newRootCmd().ExecuteContext(context.Background())
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "domfocus version %s (built %s)\n", Version, BuildTime)
		},
	}
}
