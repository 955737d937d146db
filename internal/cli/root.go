package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/text/message"

	"github.com/mcoot/sugoroku/internal/config"
	"github.com/mcoot/sugoroku/internal/factory"
)

var (
	cfg     *Config
	logger  *slog.Logger
	printer *message.Printer
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "sugoroku",
		Short: "A text-mode dice board game",
		Long: `sugoroku plays a dice race on a board described in a TOML file.

Players take turns rolling a die and moving along the board. Squares may push
players forward, pull them back or make them rest. The first to reach the goal
wins. Boards can also be exported as LaTeX or HTML, checked, or served as JSON.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			env, err := config.LoadAppConfig()
			if err != nil {
				return err
			}
			cfg.applyEnv(env)

			logger, err = cfg.Logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			printer, err = cfg.Printer()
			return err
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.Locale, "locale", cfg.Locale, "Board text locale: en, ja (env: SUGOROKU_LOCALE)")
	rootCmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error (env: SUGOROKU_LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: json, text (env: SUGOROKU_LOG_FORMAT)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")

	// Add subcommands
	rootCmd.AddCommand(newGameCmd())
	rootCmd.AddCommand(newExportCmd("world-to-tex", "Write the board as a LaTeX document", exportTeX))
	rootCmd.AddCommand(newExportCmd("world-to-html", "Write the board as an HTML page", exportHTML))
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newResultsCmd())

	return rootCmd
}

// Execute runs the root command until it completes or a signal arrives
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// newApp wires the application for commands that touch stored results
func newApp() (*factory.App, error) {
	factoryCfg, err := cfg.FactoryConfig(logger)
	if err != nil {
		return nil, err
	}
	if st := factoryCfg.StorageType; st == "" || st == factory.StorageTypeMemory {
		logger.Warn("results are kept in memory and are lost when this command exits; set STORAGE_TYPE=redis to keep them")
	}
	return factory.New(factoryCfg)
}
