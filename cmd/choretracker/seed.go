package main

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"

	"github.com/dukerupert/choretracker/internal/chore"
	"github.com/dukerupert/choretracker/internal/database"
	"github.com/dukerupert/choretracker/internal/seed"
	"github.com/dukerupert/choretracker/internal/store"
)

func newSeedCmd(a *app) *cobra.Command {
	var (
		count    int
		randSeed uint64
	)
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate the database with sample children, chores and assignments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 0 {
				return fmt.Errorf("--count must not be negative")
			}

			db, err := database.Open(a.cfg.DBPath)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer db.Close()

			if randSeed == 0 {
				randSeed = uint64(time.Now().UnixNano())
			}
			rng := rand.New(rand.NewPCG(randSeed, randSeed>>1))

			res, err := seed.Populate(cmd.Context(), seed.Stores{
				Children:    store.NewChildStore(db),
				Chores:      store.NewChoreStore(db),
				Assignments: store.NewAssignmentStore(db),
			}, chore.Today(time.Now(), a.cfg.Location()), rng, count)
			if err != nil {
				return err
			}

			a.logger.Info("seeded database", "db", a.cfg.DBPath, "seed", randSeed)
			fmt.Fprintf(cmd.OutOrStdout(), "created %d children, %d chores, %d assignments (%d completed)\n",
				res.Children, res.Chores, res.Assignments, res.Completed)
			return nil
		},
	}
	cmd.Flags().IntVar(&count, "count", seed.DefaultAssignments, "Number of random assignments to create")
	cmd.Flags().Uint64Var(&randSeed, "seed", 0, "Random seed (0 picks one from the clock)")
	return cmd
}
