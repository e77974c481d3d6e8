package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"deen/internal/core"
	"deen/internal/ui"
)

func newProgressCmd() *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Show logged progress for a day",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := LoadAndValidateConfig()
			if err != nil {
				return err
			}
			logger := SetupLogger(cfg)
			schema := core.DefaultActivities()

			date := core.Today()
			if dateFlag != "" {
				date, err = core.ParseDateKey(dateFlag)
				if err != nil {
					return err
				}
			}

			store, cleanup, err := OpenStore(ctx, cfg, logger, schema)
			if err != nil {
				return err
			}
			defer cleanup()

			row, err := store.Row(ctx, date)
			switch {
			case errors.Is(err, core.ErrLogMissing):
				fmt.Fprintln(cmd.OutOrStdout(), "No progress recorded yet.")
				return nil
			case errors.Is(err, core.ErrDateNotFound):
				fmt.Fprintf(cmd.OutOrStdout(), "No progress recorded for %s.\n", date)
				return nil
			case err != nil:
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.RenderProgress(schema, row))
			return nil
		},
	}

	cmd.Flags().StringVarP(&dateFlag, "date", "d", "", "Day to show (dd-mm-yyyy, default today)")

	return cmd
}
