// Package config loads the HUD runtime configuration from a JSON file.
// All fields are optional pointers so a partial file only overrides what it
// names; the Get* methods supply the defaults for everything else.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// HudConfig represents the root configuration for the HUD process.
type HudConfig struct {
	// Distribution server params
	ListenAddr    *string `json:"listen_addr,omitempty"`
	StreamWorkers *int    `json:"stream_workers,omitempty"`

	// Detection feed params. The front and rear cameras have separate
	// inference links, so each has its own gRPC target.
	FeedTarget     *string `json:"feed_target,omitempty"`
	RearFeedTarget *string `json:"rear_feed_target,omitempty"`
	FeedRedial     *string `json:"feed_redial,omitempty"` // duration string like "1s"

	// Camera params
	FrontDevice *string `json:"front_device,omitempty"`
	RearDevice  *string `json:"rear_device,omitempty"`

	// Battery gauge params
	BatteryPort *string `json:"battery_port,omitempty"`

	// Ride log params
	RideLogPath *string `json:"ride_log_path,omitempty"`

	// Overlay timing params (optional)
	InsetHold   *string  `json:"inset_hold,omitempty"`   // duration string like "3s"
	AlertHold   *string  `json:"alert_hold,omitempty"`   // duration string like "3s"
	BlinkPeriod *string  `json:"blink_period,omitempty"` // duration string like "600ms"
	Deadband    *float64 `json:"deadband,omitempty"`

	// Display params
	DisplayEnabled *bool `json:"display_enabled,omitempty"`
}

// EmptyHudConfig returns a HudConfig with all fields set to nil.
func EmptyHudConfig() *HudConfig {
	return &HudConfig{}
}

// LoadHudConfig loads a HudConfig from a JSON file. Fields omitted from the
// file retain their defaults, so partial configs are safe.
func LoadHudConfig(path string) (*HudConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyHudConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration values are valid.
func (c *HudConfig) Validate() error {
	if c.StreamWorkers != nil {
		if *c.StreamWorkers < 1 {
			return fmt.Errorf("stream_workers must be at least 1, got %d", *c.StreamWorkers)
		}
	}

	if c.Deadband != nil {
		if *c.Deadband < 0 || *c.Deadband >= 0.5 {
			return fmt.Errorf("deadband must be in [0, 0.5), got %f", *c.Deadband)
		}
	}

	for name, field := range map[string]*string{
		"feed_redial":  c.FeedRedial,
		"inset_hold":   c.InsetHold,
		"alert_hold":   c.AlertHold,
		"blink_period": c.BlinkPeriod,
	} {
		if field != nil && *field != "" {
			if _, err := time.ParseDuration(*field); err != nil {
				return fmt.Errorf("invalid %s '%s': %w", name, *field, err)
			}
		}
	}

	return nil
}

// GetListenAddr returns the listen_addr value or the default.
func (c *HudConfig) GetListenAddr() string {
	if c.ListenAddr == nil || *c.ListenAddr == "" {
		return "0.0.0.0:50055" // default
	}
	return *c.ListenAddr
}

// GetStreamWorkers returns the stream_workers value or the default.
func (c *HudConfig) GetStreamWorkers() int {
	if c.StreamWorkers == nil {
		return 4 // default
	}
	return *c.StreamWorkers
}

// GetFeedTarget returns the feed_target value or the default.
func (c *HudConfig) GetFeedTarget() string {
	if c.FeedTarget == nil || *c.FeedTarget == "" {
		return "AipexFW.local:50051" // default: compute unit on the local link
	}
	return *c.FeedTarget
}

// GetRearFeedTarget returns the rear_feed_target value or the default.
func (c *HudConfig) GetRearFeedTarget() string {
	if c.RearFeedTarget == nil || *c.RearFeedTarget == "" {
		return "AipexFW.local:50052" // default: rear link on the next port
	}
	return *c.RearFeedTarget
}

// GetFeedRedial parses and returns the FeedRedial as a time.Duration.
func (c *HudConfig) GetFeedRedial() time.Duration {
	if c.FeedRedial == nil || *c.FeedRedial == "" {
		return time.Second // default
	}
	d, err := time.ParseDuration(*c.FeedRedial)
	if err != nil {
		return time.Second // default on parse error
	}
	return d
}

// GetFrontDevice returns the front_device value or the default.
func (c *HudConfig) GetFrontDevice() string {
	if c.FrontDevice == nil {
		return "/dev/video0" // default
	}
	return *c.FrontDevice
}

// GetRearDevice returns the rear_device value or the default. An empty
// string disables the rear camera.
func (c *HudConfig) GetRearDevice() string {
	if c.RearDevice == nil {
		return "/dev/video2" // default
	}
	return *c.RearDevice
}

// GetBatteryPort returns the battery_port value or the default. An empty
// string disables the battery gauge.
func (c *HudConfig) GetBatteryPort() string {
	if c.BatteryPort == nil {
		return "/dev/ttyUSB0" // default
	}
	return *c.BatteryPort
}

// GetRideLogPath returns the ride_log_path value or the default. An explicit
// empty string disables the ride log.
func (c *HudConfig) GetRideLogPath() string {
	if c.RideLogPath == nil {
		return "ridelog.db" // default
	}
	return *c.RideLogPath
}

// GetInsetHold parses and returns the InsetHold as a time.Duration.
func (c *HudConfig) GetInsetHold() time.Duration {
	if c.InsetHold == nil || *c.InsetHold == "" {
		return 3 * time.Second // default
	}
	d, err := time.ParseDuration(*c.InsetHold)
	if err != nil {
		return 3 * time.Second // default on parse error
	}
	return d
}

// GetAlertHold parses and returns the AlertHold as a time.Duration.
func (c *HudConfig) GetAlertHold() time.Duration {
	if c.AlertHold == nil || *c.AlertHold == "" {
		return 3 * time.Second // default
	}
	d, err := time.ParseDuration(*c.AlertHold)
	if err != nil {
		return 3 * time.Second // default on parse error
	}
	return d
}

// GetBlinkPeriod parses and returns the BlinkPeriod as a time.Duration.
func (c *HudConfig) GetBlinkPeriod() time.Duration {
	if c.BlinkPeriod == nil || *c.BlinkPeriod == "" {
		return 600 * time.Millisecond // default
	}
	d, err := time.ParseDuration(*c.BlinkPeriod)
	if err != nil {
		return 600 * time.Millisecond // default on parse error
	}
	return d
}

// GetDeadband returns the deadband value or the default.
func (c *HudConfig) GetDeadband() float64 {
	if c.Deadband == nil {
		return 0.05 // default
	}
	return *c.Deadband
}

// GetDisplayEnabled returns the display_enabled value or the default.
func (c *HudConfig) GetDisplayEnabled() bool {
	if c.DisplayEnabled == nil {
		return true // default
	}
	return *c.DisplayEnabled
}
