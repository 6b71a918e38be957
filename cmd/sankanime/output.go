package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/varoOP/sankanime/internal/app"
)

// writeResult prints v as indented JSON, as a table when --table is set and
// the result has one, or stores it to the --output file.
func writeResult(cmd *cobra.Command, a *app.App, v any) error {
	if path, _ := cmd.Flags().GetString("output"); path != "" {
		if err := a.Results().Store(cmd.Context(), path, v); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		a.Log().Info().Str("path", path).Msg("result written")
		return nil
	}

	if asTable, _ := cmd.Flags().GetBool("table"); asTable {
		if out, ok := tableFor(v); ok {
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		}
		a.Log().Debug().Msg("result has no table form, printing json")
	}

	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return nil
}
