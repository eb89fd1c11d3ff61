package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	config "todo-list.com/todo-list/internal/configs"
)

var rootCmd = &cobra.Command{
	Use:           "todo-list",
	Short:         "Todo list service",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads .env (when present) and the environment.
func loadConfig() (config.Config, *log.Logger, error) {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, err
	}

	logger := config.NewLogger(cfg)
	if envErr != nil {
		logger.Debug(".env file not found, using environment variables")
	}

	return cfg, logger, nil
}
