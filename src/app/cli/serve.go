package cli

import (
	"github.com/spf13/cobra"

	"jokester/src/app/server"
	"jokester/src/infra/repo"
	"jokester/src/infra/session"
)

func newServeCommand(opts *options) *cobra.Command {
	var noMigrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := opts.load()
			if err != nil {
				return err
			}
			log.Info("starting application",
				"port", cfg.Server.Port,
				"log_level", cfg.Log.Level,
				"db_driver", cfg.Database.Driver,
			)

			sessions, err := session.NewManager(cfg.Session)
			if err != nil {
				return err
			}

			store, err := repo.Open(cmd.Context(), cfg.Database, cfg.Database.AutoMigrate && !noMigrate, log)
			if err != nil {
				return err
			}
			defer store.Close()

			srv, err := server.New(cfg, log, store, sessions)
			if err != nil {
				return err
			}

			// Run blocks until shutdown signal is received
			return srv.Run(cmd.Context())
		},
	}

	cmd.Flags().BoolVar(&noMigrate, "no-migrate", false, "skip migrations even when APP_DB_AUTO_MIGRATE is set")
	return cmd
}
