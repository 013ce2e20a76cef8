package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dukerupert/choretracker/internal/database"
	"github.com/dukerupert/choretracker/internal/server"
)

const limiterCleanupInterval = time.Hour

func newServeCmd(a *app) *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web application",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if port != "" {
				a.cfg.Port = port
				if err := a.cfg.Validate(); err != nil {
					return err
				}
			}
			return a.serve(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "HTTP port (overrides CHORES_PORT)")
	return cmd
}

// serve runs the HTTP server and the rate limiter sweep until ctx is
// cancelled or either fails, then shuts the server down gracefully.
func (a *app) serve(ctx context.Context) error {
	db, err := database.Open(a.cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	srv, err := server.New(db, server.Options{
		AdminPasswordHash: a.cfg.AdminPasswordHash,
		WSOrigins:         a.cfg.WSOrigins,
		Location:          a.cfg.Location(),
	}, a.logger)
	if err != nil {
		return err
	}
	if a.cfg.AdminPasswordHash == "" {
		a.logger.Warn("CHORES_ADMIN_PASSWORD_HASH not set; delete pages are unprotected")
	}

	httpServer := &http.Server{
		Addr:         a.cfg.Addr(),
		Handler:      srv.Router(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("choretracker listening", "addr", httpServer.Addr, "db", a.cfg.DBPath, "timezone", a.cfg.Timezone)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		return srv.RateLimiter().RunCleanup(gctx, limiterCleanupInterval)
	})
	g.Go(func() error {
		<-gctx.Done()
		a.logger.Info("shutting down")
		srv.Hub().CloseAll()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
