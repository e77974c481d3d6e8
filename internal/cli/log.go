package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"deen/internal/core"
	"deen/internal/ui"
)

func newLogCmd() *cobra.Command {
	var dateFlag string
	var value string

	cmd := &cobra.Command{
		Use:   "log <activity>",
		Short: "Log an activity for today (or another day)",
		Long:  "Logs an activity at its fixed completion count, or with --value for free-text fields like Memorization and Revision.",
		Args:  cobra.ExactArgs(1),
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

			activity := args[0]
			field, err := schema.Field(activity)
			if err != nil {
				return err
			}
			if field.FreeText && !cmd.Flags().Changed("value") {
				return fmt.Errorf("%s is a free-text activity; pass --value", activity)
			}

			store, cleanup, err := OpenStore(ctx, cfg, logger, schema)
			if err != nil {
				return err
			}
			defer cleanup()

			if cmd.Flags().Changed("value") {
				err = store.SetField(ctx, date, activity, value)
			} else {
				err = store.LogDefault(ctx, date, activity)
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(),
				ui.Good.Render(fmt.Sprintf("<----- Logged %q for %s ----->", activity, date)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&dateFlag, "date", "d", "", "Day to log for (dd-mm-yyyy, default today)")
	cmd.Flags().StringVarP(&value, "value", "v", "", "Value to record (required for free-text activities)")

	return cmd
}
