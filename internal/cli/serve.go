package cli

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hemadri138/veritas-project/internal/db"
	deps "github.com/hemadri138/veritas-project/internal/debs"
	api "github.com/hemadri138/veritas-project/internal/http/rest"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const allowConnectionsAfterShutdown = 1 * time.Second

var migrateOnStart bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Serve connects to Postgres, optionally applies pending migrations and
listens on PORT until SIGINT or SIGTERM.

Example:
  veritas serve
  veritas serve --migrate`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().BoolVar(&migrateOnStart, "migrate", false, "apply pending migrations before serving")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if migrateOnStart {
		if err := db.MigrateUp(cfg.Dsn); err != nil {
			return err
		}
	}

	dependencies, err := deps.New(cfg)
	if err != nil {
		return err
	}
	defer dependencies.Close()

	a := api.New(cfg, dependencies)

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("server running", "port", cfg.Port, "env", cfg.AppEnv)
		if err := a.Serve(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stopChan)

	select {
	case err, ok := <-serveErr:
		if ok {
			return errors.Wrap(err, "server stopped")
		}
		return nil
	case sig := <-stopChan:
		slog.Info("shutdown requested", "signal", sig.String(), "grace", allowConnectionsAfterShutdown)
	}

	time.Sleep(allowConnectionsAfterShutdown)

	slog.Info("shutting down server")
	if err := a.Shutdown(); err != nil {
		return errors.Wrap(err, "graceful shutdown failed")
	}
	slog.Info("server stopped")
	return nil
}
