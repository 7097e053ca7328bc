package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/tzclock"
	"github.com/phanxgames/tzclock/host"
	"github.com/phanxgames/tzclock/internal/config"
	"github.com/phanxgames/tzclock/internal/logging"
)

type flags struct {
	configFile    string
	styleFile     string
	logLevel      string
	logFormat     string
	title         string
	scale         float64
	showFPS       bool
	screenshotDir string
	script        string
}

func newRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "tzclock",
		Short: "Analog clock for a chosen city's time zone",
		Long: `tzclock opens a small window with a city dropdown and an analog clock
showing the current time in the selected city. The face updates once a second.

Keys:
  Up/Down   change city
  N         stamp the current local time into the datetime field
  S         save a screenshot`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.configFile, "config", "", "YAML config file")
	fl.StringVar(&f.styleFile, "style", "", "YAML stylesheet merged over the built-in one")
	fl.StringVar(&f.logLevel, "log-level", config.DefaultLogLevel, "log level (trace, debug, info, warn, error)")
	fl.StringVar(&f.logFormat, "log-format", config.DefaultLogFormat, "log format (console or json)")
	fl.StringVar(&f.title, "title", config.DefaultWindowTitle, "window title")
	fl.Float64Var(&f.scale, "scale", config.DefaultWindowScale, "window scale factor")
	fl.BoolVar(&f.showFPS, "fps", false, "show the FPS overlay")
	fl.StringVar(&f.screenshotDir, "screenshot-dir", config.DefaultScreenshotDir, "directory for screenshots")
	fl.StringVar(&f.script, "script", "", "JSON script to play, then exit")
	return cmd
}

// applyFlags copies explicitly set flags over cfg.
func applyFlags(cmd *cobra.Command, f flags, cfg *config.Config) error {
	fl := cmd.Flags()
	if fl.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if fl.Changed("log-format") {
		cfg.LogFormat = f.logFormat
	}
	if fl.Changed("title") {
		cfg.WindowTitle = f.title
	}
	if fl.Changed("scale") {
		cfg.WindowScale = f.scale
	}
	if fl.Changed("fps") {
		cfg.ShowFPS = f.showFPS
	}
	if fl.Changed("screenshot-dir") {
		cfg.ScreenshotDir = f.screenshotDir
	}
	if fl.Changed("script") {
		cfg.Script = f.script
	}
	return cfg.Validate()
}

func run(cmd *cobra.Command, f flags) error {
	cfg, err := config.Load(f.configFile)
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, f, cfg); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if err != nil {
		return err
	}

	opts := host.Options{
		Title:         cfg.WindowTitle,
		Scale:         cfg.WindowScale,
		ShowFPS:       cfg.ShowFPS,
		ScreenshotDir: cfg.ScreenshotDir,
		Logger:        log.With().Str("component", "host").Logger(),
	}
	if f.styleFile != "" {
		data, err := os.ReadFile(f.styleFile)
		if err != nil {
			return fmt.Errorf("read style: %w", err)
		}
		st, err := host.MergeStyle(host.DefaultStyle(), data)
		if err != nil {
			return err
		}
		opts.Style = &st
	}
	if cfg.Script != "" {
		if opts.Script, err = host.LoadScriptFile(cfg.Script); err != nil {
			return err
		}
	}

	ctl := tzclock.NewClockControl(tzclock.WithLogger(log.With().Str("component", "clock").Logger()))
	log.Info().Str("control_id", ctl.ID()).Str("title", cfg.WindowTitle).Msg("starting")
	if err := host.Run(ctl, opts); err != nil {
		return err
	}
	log.Info().Msg("bye")
	return nil
}
