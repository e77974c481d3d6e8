package cli

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"deen/internal/termux"
	"deen/internal/ui"
)

func newAssistCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assist",
		Short: "Device helpers via termux-api",
	}

	cmd.AddCommand(
		newAssistBatteryCmd(),
		newAssistWifiCmd(),
		newAssistTorchCmd(),
		newAssistBrightnessCmd(),
		newAssistVolumeCmd(),
		newAssistToastCmd(),
		newAssistClipboardCmd(),
		newAssistVibrateCmd(),
		newAssistOverviewCmd(),
	)
	return cmd
}

func openRunner() (*termux.Runner, time.Duration, error) {
	cfg, err := LoadAndValidateConfig()
	if err != nil {
		return nil, 0, err
	}
	logger := SetupLogger(cfg)
	return termux.NewRunner(cfg.TermuxBinDir, logger), time.Duration(cfg.VibrateMillis) * time.Millisecond, nil
}

func newAssistBatteryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "battery",
		Short: "Show battery status",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, _, err := openRunner()
			if err != nil {
				return err
			}
			out, err := runner.BatteryStatus(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newAssistWifiCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "wifi [scan|on|off]",
		Short:     "Show wifi info, scan networks, or switch the radio",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"scan", "on", "off"},
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, _, err := openRunner()
			if err != nil {
				return err
			}
			if len(args) == 0 {
				out, err := runner.WifiInfo(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			}
			switch args[0] {
			case "scan":
				out, err := runner.WifiScan(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			default:
				return runner.WifiEnable(cmd.Context(), args[0] == "on")
			}
		},
	}
}

func newAssistTorchCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "torch on|off",
		Short:     "Switch the torch",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"on", "off"},
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, _, err := openRunner()
			if err != nil {
				return err
			}
			return runner.Torch(cmd.Context(), args[0] == "on")
		},
	}
}

func newAssistBrightnessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "brightness [level]",
		Short: "Show the screen brightness, or set it (0-255) when a level is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, _, err := openRunner()
			if err != nil {
				return err
			}
			if len(args) == 0 {
				out, err := runner.Brightness(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			}
			level, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid brightness level %q: enter a number between 0 and 255", args[0])
			}
			return runner.SetBrightness(cmd.Context(), level)
		},
	}
}

func newAssistVolumeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "volume <stream> <percent>",
		Short: "Set a stream's volume percentage (0-100)",
		Long:  "Set a stream's volume percentage. Streams: " + strings.Join(termux.VolumeStreams(), ", ") + ".",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			stream := args[0]
			if !slices.Contains(termux.VolumeStreams(), stream) {
				return fmt.Errorf("unknown stream %q: use one of %s", stream, strings.Join(termux.VolumeStreams(), ", "))
			}
			percent, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid percentage %q: enter a number between 0 and 100", args[1])
			}
			runner, _, err := openRunner()
			if err != nil {
				return err
			}
			return runner.SetVolume(cmd.Context(), stream, percent)
		},
	}
}

func newAssistToastCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toast <text>...",
		Short: "Pop a short message on the screen",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, _, err := openRunner()
			if err != nil {
				return err
			}
			return runner.Toast(cmd.Context(), strings.Join(args, " "))
		},
	}
}

func newAssistClipboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clipboard [text]",
		Short: "Get the clipboard, or set it when text is given",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, _, err := openRunner()
			if err != nil {
				return err
			}
			if len(args) > 0 {
				return runner.SetClipboard(cmd.Context(), strings.Join(args, " "))
			}
			out, err := runner.Clipboard(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newAssistVibrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vibrate",
		Short: "Pulse the device",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, pulse, err := openRunner()
			if err != nil {
				return err
			}
			runner.Vibrate(cmd.Context(), pulse)
			return nil
		},
	}
}

func newAssistOverviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Show battery, wifi and clipboard at once",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, _, err := openRunner()
			if err != nil {
				return err
			}
			ov, err := runner.DeviceOverview(cmd.Context())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, ui.Header.Render("Battery"))
			fmt.Fprintln(w, ov.Battery)
			fmt.Fprintln(w, ui.Header.Render("Wifi"))
			fmt.Fprintln(w, ov.Wifi)
			fmt.Fprintln(w, ui.Header.Render("Clipboard"))
			fmt.Fprintln(w, ov.Clipboard)
			return nil
		},
	}
}
