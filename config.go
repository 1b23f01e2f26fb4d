package hostcanvas

import (
	"fmt"
	"os"
	"time"

	"github.com/gogpu/gpucontext"
	"github.com/pelletier/go-toml/v2"
)

const (
	defaultUserAgent      = "Mozilla/5.0 (hostcanvas) AppleWebKit/537.36 (KHTML, like Gecko) Mobile"
	defaultMaxTouchPoints = 10
	defaultActivePressure = 0.5
	defaultContactSize    = 1
)

// PrimaryPolicy selects how the primary pointer of a gesture is chosen.
type PrimaryPolicy string

const (
	// PrimaryFrozen picks the first contact of the full contact list when a
	// gesture begins and keeps it until every contact has lifted.
	PrimaryFrozen PrimaryPolicy = "frozen"
	// PrimaryPerEvent recomputes the primary contact from the full contact
	// list on every event.
	PrimaryPerEvent PrimaryPolicy = "per-event"
)

// ButtonState is the button/buttons pair reported for a phase.
type ButtonState struct {
	Button  gpucontext.Button  `toml:"button"`
	Buttons gpucontext.Buttons `toml:"buttons"`
}

// ButtonTable derives button fields from the gesture phase. Move events
// report MoveButton and, for a tracked contact, ActiveButtons.
type ButtonTable struct {
	Start         ButtonState        `toml:"start"`
	Release       ButtonState        `toml:"release"`
	MoveButton    gpucontext.Button  `toml:"move_button"`
	ActiveButtons gpucontext.Buttons `toml:"active_buttons"`
}

// DefaultButtonTable follows the pointer-events convention for a primary
// touch contact.
func DefaultButtonTable() ButtonTable {
	return ButtonTable{
		Start:         ButtonState{Button: gpucontext.ButtonLeft, Buttons: gpucontext.ButtonsLeft},
		Release:       ButtonState{Button: gpucontext.ButtonLeft, Buttons: gpucontext.ButtonsNone},
		MoveButton:    gpucontext.ButtonNone,
		ActiveButtons: gpucontext.ButtonsLeft,
	}
}

// BuilderConfig configures the synthetic event builder.
type BuilderConfig struct {
	// PointerType is reported on every event (1 = touch).
	PointerType gpucontext.PointerType `toml:"pointer_type"`
	// ActivePressure is reported while a contact is down. The host does not
	// measure pressure.
	ActivePressure float32 `toml:"active_pressure"`
	// ContactSize is reported as the contact width and height.
	ContactSize float32     `toml:"contact_size"`
	Buttons     ButtonTable `toml:"buttons"`

	// Clock returns event timestamps. Defaults to time since the builder was created.
	Clock func() time.Duration `toml:"-"`
}

// Config holds the adapter settings. Zero values are not meaningful; start
// from DefaultConfig.
type Config struct {
	DevicePixelRatio  float64       `toml:"device_pixel_ratio"`
	UserAgent         string        `toml:"user_agent"`
	MaxTouchPoints    int           `toml:"max_touch_points"`
	PlaceholderWidth  int           `toml:"placeholder_width"`
	PlaceholderHeight int           `toml:"placeholder_height"`
	Primary           PrimaryPolicy `toml:"primary"`
	Builder           BuilderConfig `toml:"builder"`
	Debug             bool          `toml:"debug"`
}

// DefaultConfig returns the settings used when none are supplied.
func DefaultConfig() Config {
	return Config{
		DevicePixelRatio:  1,
		UserAgent:         defaultUserAgent,
		MaxTouchPoints:    defaultMaxTouchPoints,
		PlaceholderWidth:  defaultPlaceholderWidth,
		PlaceholderHeight: defaultPlaceholderHeight,
		Primary:           PrimaryFrozen,
		Builder: BuilderConfig{
			PointerType:    gpucontext.PointerTypeTouch,
			ActivePressure: defaultActivePressure,
			ContactSize:    defaultContactSize,
			Buttons:        DefaultButtonTable(),
		},
	}
}

// ParseConfig decodes TOML settings on top of DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// LoadConfig reads TOML settings from path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return ParseConfig(data)
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	switch {
	case c.DevicePixelRatio <= 0:
		return fmt.Errorf("device_pixel_ratio must be positive, got %v", c.DevicePixelRatio)
	case c.PlaceholderWidth <= 0 || c.PlaceholderHeight <= 0:
		return fmt.Errorf("placeholder size must be positive, got %dx%d", c.PlaceholderWidth, c.PlaceholderHeight)
	case c.Primary != PrimaryFrozen && c.Primary != PrimaryPerEvent:
		return fmt.Errorf("unknown primary policy %q", c.Primary)
	case c.Builder.ActivePressure <= 0 || c.Builder.ActivePressure > 1:
		return fmt.Errorf("active_pressure must be in (0, 1], got %v", c.Builder.ActivePressure)
	}
	return nil
}
