package main

import (
	"context"
	"fmt"
	"time"

	"github.com/freelancehub/backend/internal/infrastructure/persistence"
	"github.com/spf13/cobra"
)

var dbTimeout time.Duration

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Database checks",
}

// dbPingCmd opens the configured database and reports pool statistics
var dbPingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check database connectivity",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		db, err := persistence.NewDatabase(&cfg.Database)
		if err != nil {
			return fmt.Errorf("connect: %w", err)
		}
		defer db.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), dbTimeout)
		defer cancel()
		start := time.Now()
		if err := db.PingContext(ctx); err != nil {
			return fmt.Errorf("ping %s: %w", cfg.Database.Driver, err)
		}
		elapsed := time.Since(start)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s reachable in %s\n", cfg.Database.Driver, elapsed.Round(time.Microsecond))
		if verbose {
			stats, err := db.Stats()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "open=%d in_use=%d idle=%d max_open=%d waits=%d\n",
				stats.OpenConnections, stats.InUse, stats.Idle, stats.MaxOpenConnections, stats.WaitCount)
		}
		return nil
	},
}

func init() {
	dbPingCmd.Flags().DurationVar(&dbTimeout, "timeout", 5*time.Second, "Ping timeout")
}
