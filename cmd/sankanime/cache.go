package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/varoOP/sankanime/internal/app"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect the local home cache",
}

var cacheShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Describe the stored home record",
	Long: `Show the key, age and state (missing, fresh, stale or corrupt) of the
stored home record. The record is never modified.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			info, err := a.Anime().InspectHomeCache(ctx)
			if err != nil {
				return fmt.Errorf("cache show failed: %w", err)
			}
			return writeResult(cmd, a, info)
		})
	},
}

func init() {
	cacheCmd.AddCommand(cacheShowCmd)
	rootCmd.AddCommand(cacheCmd)
}
