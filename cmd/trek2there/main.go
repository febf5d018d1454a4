// trek2there projects sighted targets into camera screen coordinates.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Esri/Trek2There/internal/config"
	"github.com/Esri/Trek2There/internal/logger"
	"github.com/Esri/Trek2There/internal/overlay"
	"github.com/Esri/Trek2There/pkg/camera"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	args := config.Args()
	if len(args) < 1 {
		printUsage(os.Stderr)
		os.Exit(1)
	}
	switch args[0] {
	case "help", "-h", "--help":
		printUsage(os.Stdout)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Log.Debug("config loaded", zap.Any("camera", cfg.Camera), zap.Int("targets", len(cfg.Targets)))

	if err := run(os.Stdout, logger.Log, cfg, args); err != nil {
		logger.Log.Error("command failed", zap.String("command", args[0]), zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `trek2there - project sighted targets onto the camera image

Usage:
  trek2there [flags] <command>

Commands:
  project        Print screen positions of the configured targets
  horizon        Print effective field of view and visible ground distances
  init [path]    Write a default config (to the user config dir if no path)

Flags:
  -config file   Config file (default ./config.yaml or user config dir)
  -debug         Enable debug logging
  -height m      Camera height above the observer
  -yaw deg       Camera heading, degrees from north
  -pitch deg     Camera pitch, positive up
  -roll deg      Camera roll
  -zoom level    Digital zoom level

Examples:
  trek2there -config trail.yaml project
  trek2there -pitch -30 -height 1.7 horizon
  trek2there init ./config.yaml`)
}

func run(w io.Writer, log *zap.Logger, cfg *config.Config, args []string) error {
	switch args[0] {
	case "project":
		return cmdProject(w, log, cfg)
	case "horizon":
		return cmdHorizon(w, cfg)
	case "init":
		return cmdInit(w, args[1:])
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func newTracker(log *zap.Logger, cfg *config.Config) *overlay.Tracker {
	return overlay.New(log.Named("overlay"), cfg.Camera.FieldOfView(),
		overlay.WithZoom(cfg.Camera.Zoom),
		overlay.WithMargin(cfg.Overlay.Margin),
	)
}

func cmdProject(w io.Writer, log *zap.Logger, cfg *config.Config) error {
	if len(cfg.Targets) == 0 {
		return fmt.Errorf("no targets configured")
	}

	tracker := newTracker(log, cfg)
	tracker.Update(cfg.Observer.Coordinate(), cfg.Camera.Pose())

	targets := make([]overlay.Target, 0, len(cfg.Targets))
	for _, t := range cfg.Targets {
		targets = append(targets, overlay.Target{Name: t.Name, Coordinate: t.Coordinate()})
	}

	markers := tracker.Place(targets)

	fmt.Fprintf(w, "%-20s %8s %8s %8s %10s\n", "TARGET", "X", "Y", "AZIMUTH", "DISTANCE")
	for _, m := range markers {
		fmt.Fprintf(w, "%-20s %8.4f %8.4f %8.2f %10.1f\n", m.Name, m.Screen.X, m.Screen.Y, m.Azimuth, m.Distance)
	}
	fmt.Fprintf(w, "%d of %d targets visible\n", len(markers), len(targets))

	log.Info("targets projected", zap.Int("visible", len(markers)), zap.Int("total", len(targets)))
	return nil
}

func cmdHorizon(w io.Writer, cfg *config.Config) error {
	pose := cfg.Camera.Pose()
	fov := newTracker(zap.NewNop(), cfg).FieldOfView()

	effX := camera.EffectiveFieldOfViewX(pose.Roll, fov.X, fov.Y)
	effY := camera.EffectiveFieldOfViewY(pose.Roll, fov.X, fov.Y)
	minD := camera.MinDistanceVisibleInNearPlane(pose.Height, pose.Pitch, pose.Roll, fov.X, fov.Y)
	maxD := camera.MaxDistanceVisibleInNearPlane(pose.Height, pose.Pitch, pose.Roll, fov.X, fov.Y)

	fmt.Fprintf(w, "Field of view:  %.2f x %.2f deg (zoom %.2f)\n", fov.X, fov.Y, cfg.Camera.Zoom)
	fmt.Fprintf(w, "Effective:      %.2f x %.2f deg (roll %.2f)\n", effX, effY, pose.Roll)
	fmt.Fprintf(w, "Min distance:   %.1f m\n", minD)
	fmt.Fprintf(w, "Max distance:   %.1f m\n", maxD)
	fmt.Fprintf(w, "Horizon:        %.1f m\n", camera.DistanceToHorizon(pose.Height))
	return nil
}

func cmdInit(w io.Writer, args []string) error {
	cfg := config.Default()

	path := filepath.Join(config.ConfigDir(), "config.yaml")
	if len(args) > 0 {
		path = args[0]
	}
	if err := cfg.SaveTo(path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	fmt.Fprintf(w, "Wrote %s\n", path)
	return nil
}
