// Package config handles sighting configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Esri/Trek2There/pkg/camera"
	"github.com/Esri/Trek2There/pkg/geo"
)

// Config holds all sighting settings.
type Config struct {
	Camera   CameraConfig   `yaml:"camera"`
	Observer PositionConfig `yaml:"observer"`
	Targets  []TargetConfig `yaml:"targets"`
	Overlay  OverlayConfig  `yaml:"overlay"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// CameraConfig holds the device pose and optics. Angles are in degrees.
type CameraConfig struct {
	Height float64 `yaml:"height"` // meters above the observer position
	Yaw    float64 `yaml:"yaw"`
	Pitch  float64 `yaml:"pitch"`
	Roll   float64 `yaml:"roll"`
	FovX   float64 `yaml:"fov_x"`
	FovY   float64 `yaml:"fov_y"`
	Zoom   float64 `yaml:"zoom"`
}

// PositionConfig is a WGS84 position. A nil altitude means unknown.
type PositionConfig struct {
	Latitude  float64  `yaml:"latitude"`
	Longitude float64  `yaml:"longitude"`
	Altitude  *float64 `yaml:"altitude,omitempty"`
}

// TargetConfig is a named position to sight.
type TargetConfig struct {
	Name           string `yaml:"name"`
	PositionConfig `yaml:",inline"`
}

// OverlayConfig holds culling settings for placed markers.
type OverlayConfig struct {
	Margin float64 `yaml:"margin"` // fraction of the screen kept beyond each edge
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Camera: CameraConfig{
			Height: 1.5,
			FovX:   60,
			FovY:   45,
			Zoom:   1,
		},
		Overlay: OverlayConfig{
			Margin: 0,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Coordinate converts the position to a geo.Coordinate.
func (p PositionConfig) Coordinate() geo.Coordinate {
	c := geo.NewCoordinate(p.Latitude, p.Longitude)
	if p.Altitude != nil {
		c.Altitude = *p.Altitude
	}
	return c
}

// Pose returns the camera pose.
func (c CameraConfig) Pose() camera.Pose {
	return camera.Pose{Height: c.Height, Yaw: c.Yaw, Pitch: c.Pitch, Roll: c.Roll}
}

// FieldOfView returns the unzoomed field of view.
func (c CameraConfig) FieldOfView() camera.FieldOfView {
	return camera.FieldOfView{X: c.FovX, Y: c.FovY}
}

// Validate checks the preconditions the projection model does not enforce.
func (c *Config) Validate() error {
	var errs []error
	if c.Camera.FovX <= 0 || c.Camera.FovX >= 180 {
		errs = append(errs, fmt.Errorf("camera.fov_x %v outside (0, 180)", c.Camera.FovX))
	}
	if c.Camera.FovY <= 0 || c.Camera.FovY >= 180 {
		errs = append(errs, fmt.Errorf("camera.fov_y %v outside (0, 180)", c.Camera.FovY))
	}
	if c.Camera.Zoom <= 0 {
		errs = append(errs, fmt.Errorf("camera.zoom %v must be positive", c.Camera.Zoom))
	}
	if c.Overlay.Margin < 0 {
		errs = append(errs, fmt.Errorf("overlay.margin %v must not be negative", c.Overlay.Margin))
	}
	if !c.Observer.Coordinate().Valid() {
		errs = append(errs, fmt.Errorf("observer position (%v, %v) is invalid", c.Observer.Latitude, c.Observer.Longitude))
	}
	for i, t := range c.Targets {
		if !t.Coordinate().Valid() {
			errs = append(errs, fmt.Errorf("targets[%d] %q position (%v, %v) is invalid", i, t.Name, t.Latitude, t.Longitude))
		}
	}
	return errors.Join(errs...)
}
