// Package cli defines the jokester command line: serve and migrate.
package cli

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"jokester/src/infra/config"
	"jokester/src/infra/logger"
)

// options are the flags shared by every command. They override the
// environment configuration when set.
type options struct {
	logLevel string
	driver   string
}

// NewRootCommand builds the jokester command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "jokester",
		Short: "Jokester serves the new-joke form and stores jokes",
		Long: `Jokester is a small web app where signed-in jokesters submit jokes.

Configuration is read from APP_* environment variables and an optional .env
file in the working directory. APP_SESSION_SECRET is required.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "override APP_LOG_LEVEL (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&opts.driver, "driver", "", "override APP_DB_DRIVER (gorm, postgres, sqlite)")

	root.AddCommand(newServeCommand(opts))
	root.AddCommand(newMigrateCommand(opts))
	return root
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// load reads the configuration and applies flag overrides.
func (o *options) load() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if o.driver != "" {
		cfg.Database.Driver = o.driver
		if err := cfg.Validate(); err != nil {
			return nil, nil, err
		}
	}
	return cfg, logger.New(cfg.Log), nil
}
