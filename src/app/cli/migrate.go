package cli

import (
	"github.com/spf13/cobra"

	"jokester/src/infra/repo"
)

func newMigrateCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Bring the database schema up to date and exit",
		Long: `Applies pending migrations. PostgreSQL drivers run the embedded goose
migrations; the sqlite driver uses gorm's AutoMigrate.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := opts.load()
			if err != nil {
				return err
			}

			store, err := repo.Open(cmd.Context(), cfg.Database, true, log)
			if err != nil {
				return err
			}
			if err := store.Close(); err != nil {
				return err
			}

			log.Info("database is up to date", "db_driver", cfg.Database.Driver)
			return nil
		},
	}
}
