// Package termux shells out to the termux-api command wrappers. The
// device is optional: every failure is reported or logged, never fatal
// to the interactive flow that triggered it.
package termux

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	applog "deen/internal/log"
)

const commandTimeout = 5 * time.Second

// runFunc executes one external command; swapped out in tests.
type runFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

type Runner struct {
	binDir string
	logger *applog.Logger
	run    runFunc
}

// Overview aggregates the device status queries.
type Overview struct {
	Battery   string
	Wifi      string
	Clipboard string
}

func NewRunner(binDir string, logger *applog.Logger) *Runner {
	if logger == nil {
		logger = applog.New(applog.DefaultConfig())
	}
	return &Runner{
		binDir: binDir,
		logger: logger.WithComponent(applog.ComponentTermux),
		run:    execRun,
	}
}

func execRun(ctx context.Context, name string, args ...string) ([]byte, error) {
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %s", filepath.Base(name), err, strings.TrimSpace(string(out)))
	}
	return out, nil
}

func (r *Runner) command(name string) string {
	return filepath.Join(r.binDir, "termux-"+name)
}

func (r *Runner) output(ctx context.Context, name string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	out, err := r.run(ctx, r.command(name), args...)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// Vibrate pulses the device. Fire and forget: a missing termux-api or
// a failed call is logged and swallowed so counting flows never abort.
func (r *Runner) Vibrate(ctx context.Context, d time.Duration) {
	ms := strconv.Itoa(int(d.Milliseconds()))
	if _, err := r.output(ctx, "vibrate", "-f", "-d", ms); err != nil {
		r.logger.Debug("vibrate failed",
			applog.FieldOperation, applog.OpExec,
			applog.FieldError, err.Error())
	}
}

// BatteryStatus returns the raw termux-battery-status JSON.
func (r *Runner) BatteryStatus(ctx context.Context) (string, error) {
	return r.output(ctx, "battery-status")
}

// WifiInfo returns the raw termux-wifi-connectioninfo JSON.
func (r *Runner) WifiInfo(ctx context.Context) (string, error) {
	return r.output(ctx, "wifi-connectioninfo")
}

// Torch switches the torch on or off.
func (r *Runner) Torch(ctx context.Context, on bool) error {
	state := "off"
	if on {
		state = "on"
	}
	_, err := r.output(ctx, "torch", state)
	return err
}

// Brightness returns the current screen brightness JSON.
func (r *Runner) Brightness(ctx context.Context) (string, error) {
	return r.output(ctx, "brightness")
}

// SetBrightness sets the screen brightness level, 0-255.
func (r *Runner) SetBrightness(ctx context.Context, level int) error {
	if level < 0 || level > 255 {
		return fmt.Errorf("brightness level %d out of range 0-255", level)
	}
	_, err := r.output(ctx, "brightness", strconv.Itoa(level))
	return err
}

// VolumeStreams lists the audio streams termux-volume can adjust.
func VolumeStreams() []string {
	return []string{"alarm", "media", "ring", "system", "voice_call"}
}

// SetVolume sets the stream's volume percentage, 0-100.
func (r *Runner) SetVolume(ctx context.Context, stream string, percent int) error {
	if percent < 0 || percent > 100 {
		return fmt.Errorf("volume percentage %d out of range 0-100", percent)
	}
	_, err := r.output(ctx, "volume", stream, strconv.Itoa(percent))
	return err
}

// WifiEnable switches the wifi radio on or off.
func (r *Runner) WifiEnable(ctx context.Context, on bool) error {
	_, err := r.output(ctx, "wifi-enable", strconv.FormatBool(on))
	return err
}

// WifiScan returns the raw termux-wifi-scaninfo JSON.
func (r *Runner) WifiScan(ctx context.Context) (string, error) {
	return r.output(ctx, "wifi-scaninfo")
}

// Toast pops a short message at the bottom of the screen. Doubles as
// the audible-feedback stand-in; termux-api has no beep command.
func (r *Runner) Toast(ctx context.Context, text string) error {
	_, err := r.output(ctx, "toast", text, "-g", "bottom")
	return err
}

// Clipboard returns the device clipboard contents.
func (r *Runner) Clipboard(ctx context.Context) (string, error) {
	return r.output(ctx, "clipboard-get")
}

// SetClipboard replaces the device clipboard contents.
func (r *Runner) SetClipboard(ctx context.Context, text string) error {
	_, err := r.output(ctx, "clipboard-set", text)
	return err
}

// DeviceOverview gathers the status queries concurrently. Individual
// failures become placeholder text; only a cancelled context aborts.
func (r *Runner) DeviceOverview(ctx context.Context) (Overview, error) {
	var ov Overview
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		ov.Battery = r.orUnavailable(r.BatteryStatus(ctx))
		return ctx.Err()
	})
	g.Go(func() error {
		ov.Wifi = r.orUnavailable(r.WifiInfo(ctx))
		return ctx.Err()
	})
	g.Go(func() error {
		ov.Clipboard = r.orUnavailable(r.Clipboard(ctx))
		return ctx.Err()
	})

	if err := g.Wait(); err != nil {
		return Overview{}, err
	}
	return ov, nil
}

func (r *Runner) orUnavailable(out string, err error) string {
	if err != nil {
		r.logger.Debug("device query failed",
			applog.FieldOperation, applog.OpExec,
			applog.FieldError, err.Error())
		return "unavailable"
	}
	return out
}
