package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmptyConfigDefaults(t *testing.T) {
	cfg := EmptyHudConfig()

	if cfg.GetListenAddr() != "0.0.0.0:50055" {
		t.Errorf("GetListenAddr() = %q, want 0.0.0.0:50055", cfg.GetListenAddr())
	}
	if cfg.GetStreamWorkers() != 4 {
		t.Errorf("GetStreamWorkers() = %d, want 4", cfg.GetStreamWorkers())
	}
	if cfg.GetFeedTarget() != "AipexFW.local:50051" {
		t.Errorf("GetFeedTarget() = %q, want AipexFW.local:50051", cfg.GetFeedTarget())
	}
	if cfg.GetFeedRedial() != time.Second {
		t.Errorf("GetFeedRedial() = %v, want 1s", cfg.GetFeedRedial())
	}
	if cfg.GetInsetHold() != 3*time.Second {
		t.Errorf("GetInsetHold() = %v, want 3s", cfg.GetInsetHold())
	}
	if cfg.GetAlertHold() != 3*time.Second {
		t.Errorf("GetAlertHold() = %v, want 3s", cfg.GetAlertHold())
	}
	if cfg.GetBlinkPeriod() != 600*time.Millisecond {
		t.Errorf("GetBlinkPeriod() = %v, want 600ms", cfg.GetBlinkPeriod())
	}
	if cfg.GetDeadband() != 0.05 {
		t.Errorf("GetDeadband() = %f, want 0.05", cfg.GetDeadband())
	}
	if !cfg.GetDisplayEnabled() {
		t.Error("GetDisplayEnabled() = false, want true")
	}
	if cfg.GetRideLogPath() != "ridelog.db" {
		t.Errorf("GetRideLogPath() = %q, want ridelog.db", cfg.GetRideLogPath())
	}
}

func TestLoadHudConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "hud.json")

	testJSON := `{
  "listen_addr": "0.0.0.0:60055",
  "stream_workers": 2,
  "feed_target": "192.168.4.10:50051",
  "front_device": "/dev/video1",
  "rear_device": "",
  "blink_period": "400ms",
  "deadband": 0.1,
  "display_enabled": false
}`
	if err := os.WriteFile(configPath, []byte(testJSON), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadHudConfig(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.GetListenAddr() != "0.0.0.0:60055" {
		t.Errorf("GetListenAddr() = %q, want 0.0.0.0:60055", cfg.GetListenAddr())
	}
	if cfg.GetStreamWorkers() != 2 {
		t.Errorf("GetStreamWorkers() = %d, want 2", cfg.GetStreamWorkers())
	}
	if cfg.GetFeedTarget() != "192.168.4.10:50051" {
		t.Errorf("GetFeedTarget() = %q", cfg.GetFeedTarget())
	}
	if cfg.GetRearFeedTarget() != "AipexFW.local:50052" {
		t.Errorf("GetRearFeedTarget() = %q, want default", cfg.GetRearFeedTarget())
	}
	if cfg.GetFrontDevice() != "/dev/video1" {
		t.Errorf("GetFrontDevice() = %q, want /dev/video1", cfg.GetFrontDevice())
	}
	// An explicit empty rear_device disables the rear camera, unlike the
	// nil default.
	if cfg.GetRearDevice() != "" {
		t.Errorf("GetRearDevice() = %q, want empty", cfg.GetRearDevice())
	}
	if cfg.GetBlinkPeriod() != 400*time.Millisecond {
		t.Errorf("GetBlinkPeriod() = %v, want 400ms", cfg.GetBlinkPeriod())
	}
	if cfg.GetDeadband() != 0.1 {
		t.Errorf("GetDeadband() = %f, want 0.1", cfg.GetDeadband())
	}
	if cfg.GetDisplayEnabled() {
		t.Error("GetDisplayEnabled() = true, want false")
	}

	// Fields omitted from the file keep their defaults.
	if cfg.GetBatteryPort() != "/dev/ttyUSB0" {
		t.Errorf("GetBatteryPort() = %q, want default", cfg.GetBatteryPort())
	}
	if cfg.GetInsetHold() != 3*time.Second {
		t.Errorf("GetInsetHold() = %v, want default 3s", cfg.GetInsetHold())
	}
}

func TestLoadHudConfig_Invalid(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name string
		json string
	}{
		{"zero workers", `{"stream_workers": 0}`},
		{"deadband too wide", `{"deadband": 0.5}`},
		{"negative deadband", `{"deadband": -0.1}`},
		{"bad blink period", `{"blink_period": "fast"}`},
		{"bad feed redial", `{"feed_redial": "soon"}`},
		{"bad inset hold", `{"inset_hold": "3 sec"}`},
		{"malformed json", `{"listen_addr": `},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(tmpDir, "bad.json")
			if err := os.WriteFile(path, []byte(tt.json), 0644); err != nil {
				t.Fatalf("Failed to write test config: %v", err)
			}
			if _, err := LoadHudConfig(path); err == nil {
				t.Error("expected load error")
			}
		})
	}
}

func TestLoadHudConfig_RequiresJSONExtension(t *testing.T) {
	if _, err := LoadHudConfig("hud.yaml"); err == nil {
		t.Error("expected extension error")
	}
}
