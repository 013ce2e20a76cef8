package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukerupert/choretracker/internal/database"
)

func newMigrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down|status|version|redo|reset]",
		Short:     "Apply or inspect database migrations",
		Long:      "Runs a goose command against the embedded migrations. Defaults to up. The serve and seed commands migrate up on their own.",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down", "status", "version", "redo", "reset"},
		RunE: func(cmd *cobra.Command, args []string) error {
			command := "up"
			if len(args) == 1 {
				command = args[0]
			}

			db, err := database.OpenRaw(a.cfg.DBPath)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := database.Migrate(cmd.Context(), db, command); err != nil {
				return err
			}
			a.logger.Info("migrate finished", "command", command, "db", a.cfg.DBPath)
			fmt.Fprintf(cmd.OutOrStdout(), "migrate %s: ok\n", command)
			return nil
		},
	}
}
