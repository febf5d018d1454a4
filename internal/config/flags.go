package config

import (
	"flag"
	"math"
)

var (
	flagConfig = flag.String("config", "", "Path to config file")
	flagDebug  = flag.Bool("debug", false, "Enable debug logging")
	flagHeight = flag.Float64("height", math.NaN(), "Camera height above the observer in meters")
	flagYaw    = flag.Float64("yaw", math.NaN(), "Camera yaw in degrees")
	flagPitch  = flag.Float64("pitch", math.NaN(), "Camera pitch in degrees, positive up")
	flagRoll   = flag.Float64("roll", math.NaN(), "Camera roll in degrees")
	flagZoom   = flag.Float64("zoom", 0, "Digital zoom level")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the non-flag arguments left after ParseFlags.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config. Unset angle flags
// hold NaN so that 0 remains a valid override.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if !math.IsNaN(*flagHeight) {
		cfg.Camera.Height = *flagHeight
	}
	if !math.IsNaN(*flagYaw) {
		cfg.Camera.Yaw = *flagYaw
	}
	if !math.IsNaN(*flagPitch) {
		cfg.Camera.Pitch = *flagPitch
	}
	if !math.IsNaN(*flagRoll) {
		cfg.Camera.Roll = *flagRoll
	}
	if *flagZoom > 0 {
		cfg.Camera.Zoom = *flagZoom
	}
}
