package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/hemadri138/veritas-project/config"
	"github.com/spf13/cobra"
)

// Version is overridden at build time with -ldflags "-X ...cli.Version=...".
var Version = "dev"

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "veritas",
	Short: "Veritas - community fact-checking API",
	Long: `Veritas serves the community fact-checking REST API.

Users register, submit claims with a source URL, attach evidence and
see how the community voted on each claim.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "veritas %s\n", Version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging even in production")
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the config and installs the process-wide logger.
func loadConfig() (*config.Config, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}
	slog.SetDefault(newLogger(os.Stderr, cfg, verbose))
	return cfg, nil
}

func newLogger(w io.Writer, cfg *config.Config, debug bool) *slog.Logger {
	if cfg.IsProduction() {
		level := slog.LevelInfo
		if debug {
			level = slog.LevelDebug
		}
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
