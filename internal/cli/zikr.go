package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"deen/internal/termux"
	"deen/internal/tui"
	"deen/internal/ui"
	"deen/internal/zikr"
)

var errCancelled = errors.New("cancelled")

func newZikrCmd() *cobra.Command {
	var long, short, single bool

	cmd := &cobra.Command{
		Use:   "zikr",
		Short: "Guided zikr with an interactive counter",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !long && !short && !single {
				return errors.New("one of --long, --short or --single is required")
			}

			ctx := cmd.Context()
			cfg, err := LoadAndValidateConfig()
			if err != nil {
				return err
			}
			logger := SetupLogger(cfg)
			runner := termux.NewRunner(cfg.TermuxBinDir, logger)
			pulse := time.Duration(cfg.VibrateMillis) * time.Millisecond

			var title string
			var seq zikr.Sequence
			switch {
			case long:
				title, seq = "Zikr Long", zikr.Long()
			case short:
				title, seq = "Zikr Short", zikr.Short()
			default:
				title = "Zikr"
				seq, err = pickSingle(cmd)
				if err != nil {
					return err
				}
			}

			completed, err := tui.RunCounter(ctx, title, seq, runner, pulse, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if !completed {
				return errCancelled
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("Allhamdulillah DONE!"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&long, "long", false, "Long zikr sequence")
	cmd.Flags().BoolVar(&short, "short", false, "Short zikr sequence")
	cmd.Flags().BoolVar(&single, "single", false, "Pick a single zikr and count")
	cmd.MarkFlagsMutuallyExclusive("long", "short", "single")

	return cmd
}

// pickSingle prompts for one recitation and its count. End-of-input
// cancels the whole command.
func pickSingle(cmd *cobra.Command) (zikr.Sequence, error) {
	out := cmd.OutOrStdout()
	reader := bufio.NewReader(cmd.InOrStdin())

	fmt.Fprintln(out, ui.Banner("Zikr"))
	options := zikr.SingleOptions()
	for i, name := range options {
		fmt.Fprintf(out, " %2d. %s\n", i+1, name)
	}

	choice, err := promptInt(out, reader, "\nSelect Zikr:\n --> ")
	if err != nil {
		return nil, err
	}
	if choice < 1 || choice > len(options) {
		return nil, fmt.Errorf("invalid input: enter a number from 1 - %d", len(options))
	}

	count, err := promptInt(out, reader, "\nEnter Count:\n --> ")
	if err != nil {
		return nil, err
	}
	return zikr.Single(options[choice-1], count)
}

func promptInt(out io.Writer, reader *bufio.Reader, prompt string) (int, error) {
	fmt.Fprint(out, prompt)
	line, err := reader.ReadString('\n')
	if err != nil {
		return 0, errCancelled
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, errors.New("invalid input: enter an integer value")
	}
	return n, nil
}
