package hostcanvas

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/gpucontext"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestParseConfig(t *testing.T) {
	data := []byte(`
device_pixel_ratio = 3.0
primary = "per-event"
debug = true

[builder]
active_pressure = 0.75

[builder.buttons]
move_button = -1
active_buttons = 1
`)
	cfg, err := ParseConfig(data)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DevicePixelRatio != 3 || cfg.Primary != PrimaryPerEvent || !cfg.Debug {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Builder.ActivePressure != 0.75 {
		t.Errorf("pressure = %v", cfg.Builder.ActivePressure)
	}
	// Unset fields keep their defaults.
	if cfg.UserAgent != defaultUserAgent || cfg.PlaceholderWidth != defaultPlaceholderWidth {
		t.Error("defaults lost")
	}
	if cfg.Builder.PointerType != gpucontext.PointerTypeTouch || cfg.Builder.Buttons.Start.Buttons != gpucontext.ButtonsLeft {
		t.Error("builder defaults lost")
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"syntax", `primary = `, "parse config"},
		{"ratio", `device_pixel_ratio = 0.0`, "device_pixel_ratio"},
		{"policy", `primary = "always"`, "primary policy"},
		{"pressure", "[builder]\nactive_pressure = 2.0", "active_pressure"},
		{"placeholder", `placeholder_width = 0`, "placeholder"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.data))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hostcanvas.toml")
	if err := os.WriteFile(path, []byte(`max_touch_points = 5`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaxTouchPoints != 5 {
		t.Errorf("MaxTouchPoints = %d", cfg.MaxTouchPoints)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil || !strings.Contains(err.Error(), "load config") {
		t.Errorf("missing file err = %v", err)
	}
}
