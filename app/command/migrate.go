package command

import (
	"library/config"
	"library/util/database"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the embedded database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return err
			}
			log := newLogger(cfg)
			ctx := cmd.Context()

			db, err := database.New(ctx, cfg.DatabaseURL, cfg.DBMaxConns)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := database.Migrate(ctx, db.SQL); err != nil {
				return err
			}
			log.Info("migrations applied")
			return nil
		},
	}
}
