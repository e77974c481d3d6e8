package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"deen/internal/core"
	"deen/internal/tui"
	"deen/internal/ui"
)

const Version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:           "deen",
	Short:         "Daily deeds tracker, zikr counter and Termux helper",
	Long:          "deen tracks daily religious activities in a date-keyed log, counts zikr recitations, and fronts the termux-api device commands.",
	SilenceUsage:  true,
	SilenceErrors: true,
	// Running deen with no subcommand opens the interactive menu.
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg, err := LoadAndValidateConfig()
		if err != nil {
			return err
		}
		logger := SetupLogger(cfg)

		store, cleanup, err := OpenStore(ctx, cfg, logger, core.DefaultActivities())
		if err != nil {
			return err
		}
		defer cleanup()

		completed, err := tui.RunMenu(ctx, store, core.DefaultActivities(), cmd.OutOrStdout())
		if err != nil {
			return err
		}
		if !completed {
			return errCancelled
		}
		return nil
	},
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newLogCmd(),
		newProgressCmd(),
		newZikrCmd(),
		newAssistCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(err.Error()))
		os.Exit(1)
	}
}
