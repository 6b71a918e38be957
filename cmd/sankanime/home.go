package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/varoOP/sankanime/internal/app"
)

var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Print the home page aggregate",
	Long: `Print the home page aggregate. A cached copy younger than cache_ttl is
served without contacting the API.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			home, err := a.Anime().GetHomeInfo(ctx)
			if err != nil {
				return fmt.Errorf("home failed: %w", err)
			}
			return writeResult(cmd, a, home)
		})
	},
}

var warmCmd = &cobra.Command{
	Use:   "warm",
	Short: "Resolve the home aggregate and report it",
	Long: `Warm resolves the home aggregate through the cache, logs a per-section
summary and sends a Discord notification when discord_webhook_url is set.
Failures are reported to the same webhook.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			report, err := a.Warm(ctx)
			if err != nil {
				return fmt.Errorf("warm failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d entries, %d genres in %s\n",
				report.CacheKey, report.Total(), report.Genres, report.Elapsed)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(homeCmd)
	rootCmd.AddCommand(warmCmd)
}
