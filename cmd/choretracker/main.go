package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"github.com/spf13/cobra"

	"github.com/dukerupert/choretracker/internal/config"
	"github.com/dukerupert/choretracker/internal/logging"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
var version = "dev"

// app carries what every subcommand needs once the root has loaded config.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	stderr io.Writer
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{stderr: os.Stderr}
	var dbPath string

	root := &cobra.Command{
		Use:           "choretracker",
		Short:         "Track household chores, children and the points they earn",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if dbPath != "" {
				cfg.DBPath = dbPath
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = logging.SetupWriter(cfg.LogLevel, a.stderr)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&dbPath, "db", "", "SQLite database path (overrides CHORES_DB_PATH)")

	root.AddCommand(
		newServeCmd(a),
		newMigrateCmd(a),
		newSeedCmd(a),
		newHashPasswordCmd(),
	)
	return root
}
