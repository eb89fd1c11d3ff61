package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	config "todo-list.com/todo-list/internal/configs"
	httpapi "todo-list.com/todo-list/internal/http"
	repository "todo-list.com/todo-list/internal/repositories"
	"todo-list.com/todo-list/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the todo list HTTP API and the index page",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}

		listOrder, err := repository.ParseListOrder(cfg.ListOrder)
		if err != nil {
			return err
		}

		logger.WithField("database", cfg.RedactedDatabaseURL()).Info("connecting to database")
		database, err := config.NewDatabaseClient(cfg, logger)
		if err != nil {
			return err
		}
		defer func() {
			if err := config.CloseDatabase(database); err != nil {
				logger.WithError(err).Warn("failed to close database")
			}
		}()

		autoMigrate, _ := cmd.Flags().GetBool("migrate")
		if autoMigrate {
			if err := config.Migrate(database); err != nil {
				return err
			}
			logger.Info("database tables created successfully")
		}

		var store repository.Store = repository.NewTaskRepository(database, listOrder)

		if cfg.RedisAddr != "" {
			redisClient, err := config.NewRedisClient(cfg.RedisAddr)
			if err != nil {
				return err
			}
			defer redisClient.Close()

			store = repository.NewCachedTaskRepository(store, redisClient, cfg.RedisCachePrefix, cfg.CacheTTL, logger)
			logger.WithField("addr", cfg.RedisAddr).Info("task list cache enabled")
		}

		taskService := services.NewTaskService(store, logger)

		e := httpapi.NewServer(logger)
		httpapi.Register(e, httpapi.NewHandler(taskService, logger), cfg.RateLimit)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		serverErr := make(chan error, 1)
		go func() {
			logger.Infof("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serverErr <- err
			}
			close(serverErr)
		}()

		select {
		case <-ctx.Done():
		case err := <-serverErr:
			if err != nil {
				return err
			}
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.WithError(err).Warn("HTTP server shutdown timed out")
		}

		logger.Info("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	serveCmd.Flags().Bool("migrate", true, "create or update the schema before serving")
	rootCmd.AddCommand(serveCmd)
}
