package cmd

import (
	"github.com/spf13/cobra"

	config "todo-list.com/todo-list/internal/configs"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the todos table",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}

		logger.WithField("database", cfg.RedactedDatabaseURL()).Info("migrating database")
		database, err := config.NewDatabaseClient(cfg, logger)
		if err != nil {
			return err
		}
		defer config.CloseDatabase(database)

		if err := config.Migrate(database); err != nil {
			return err
		}

		logger.Info("database tables created successfully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
