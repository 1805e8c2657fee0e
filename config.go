package mystify

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("mystify: invalid config")

// Config holds the engine constants. DefaultConfig returns the compiled-in
// values; hosts may override them from a TOML file before building an Engine.
type Config struct {
	Width  int // screen width in pixels
	Height int // screen height in pixels

	Compounds int // number of independently animated polygons
	Vertices  int // vertices per polygon

	// HistoryLength is the inclusive range each compound draws its trail
	// length from. The history buffer holds HistoryLength*Interval shapes.
	HistoryLength IntRange
	// Interval is the sampling stride used when drawing the trail.
	Interval int

	// Speed is the half-open range of per-axis speeds, in pixels per tick.
	Speed Range
	// SpeedPrecision quantizes speeds to 1/SpeedPrecision. Zero disables it.
	SpeedPrecision int

	HueStep   float64 // degrees added to the hue every tick
	Thickness float64 // line thickness passed to the canvas
}

// DefaultConfig returns the compiled-in constants.
func DefaultConfig() Config {
	return Config{
		Width:          1920,
		Height:         1080,
		Compounds:      2,
		Vertices:       4,
		HistoryLength:  IntRange{Min: 7, Max: 15},
		Interval:       2,
		Speed:          Range{Min: 1, Max: 7},
		SpeedPrecision: 100,
		HueStep:        0.1,
		Thickness:      1,
	}
}

// Bounds returns the screen rectangle vertices are confined to.
func (c Config) Bounds() Rect {
	return Rect{Width: float64(c.Width), Height: float64(c.Height)}
}

// Validate reports the first constraint c violates.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: screen %dx%d must be positive", ErrInvalidConfig, c.Width, c.Height)
	case c.Compounds < 0:
		return fmt.Errorf("%w: compounds %d is negative", ErrInvalidConfig, c.Compounds)
	case c.Vertices < 2:
		return fmt.Errorf("%w: vertices %d, need at least 2", ErrInvalidConfig, c.Vertices)
	case c.HistoryLength.Min < 1 || c.HistoryLength.Max < c.HistoryLength.Min:
		return fmt.Errorf("%w: history length [%d, %d]", ErrInvalidConfig, c.HistoryLength.Min, c.HistoryLength.Max)
	case c.Interval < 1:
		return fmt.Errorf("%w: interval %d must be at least 1", ErrInvalidConfig, c.Interval)
	case c.Speed.Min <= 0 || c.Speed.Max < c.Speed.Min:
		return fmt.Errorf("%w: speed [%g, %g)", ErrInvalidConfig, c.Speed.Min, c.Speed.Max)
	case c.SpeedPrecision < 0:
		return fmt.Errorf("%w: speed precision %d is negative", ErrInvalidConfig, c.SpeedPrecision)
	case c.HueStep < 0 || c.HueStep >= 360:
		return fmt.Errorf("%w: hue step %g outside [0, 360)", ErrInvalidConfig, c.HueStep)
	case c.Thickness < 0:
		return fmt.Errorf("%w: thickness %g is negative", ErrInvalidConfig, c.Thickness)
	}
	return nil
}

// fileConfig mirrors Config with TOML keys. Fields left out of the file keep
// their default values.
type fileConfig struct {
	Width          int     `toml:"width"`
	Height         int     `toml:"height"`
	Compounds      int     `toml:"compounds"`
	Vertices       int     `toml:"vertices"`
	HistoryMin     int     `toml:"history_min"`
	HistoryMax     int     `toml:"history_max"`
	Interval       int     `toml:"interval"`
	SpeedMin       float64 `toml:"speed_min"`
	SpeedMax       float64 `toml:"speed_max"`
	SpeedPrecision int     `toml:"speed_precision"`
	HueStep        float64 `toml:"hue_step"`
	Thickness      float64 `toml:"thickness"`
}

func toFileConfig(c Config) fileConfig {
	return fileConfig{
		Width:          c.Width,
		Height:         c.Height,
		Compounds:      c.Compounds,
		Vertices:       c.Vertices,
		HistoryMin:     c.HistoryLength.Min,
		HistoryMax:     c.HistoryLength.Max,
		Interval:       c.Interval,
		SpeedMin:       c.Speed.Min,
		SpeedMax:       c.Speed.Max,
		SpeedPrecision: c.SpeedPrecision,
		HueStep:        c.HueStep,
		Thickness:      c.Thickness,
	}
}

func (f fileConfig) config() Config {
	return Config{
		Width:          f.Width,
		Height:         f.Height,
		Compounds:      f.Compounds,
		Vertices:       f.Vertices,
		HistoryLength:  IntRange{Min: f.HistoryMin, Max: f.HistoryMax},
		Interval:       f.Interval,
		Speed:          Range{Min: f.SpeedMin, Max: f.SpeedMax},
		SpeedPrecision: f.SpeedPrecision,
		HueStep:        f.HueStep,
		Thickness:      f.Thickness,
	}
}

// DecodeConfig parses TOML data over DefaultConfig and validates the result.
func DecodeConfig(data []byte) (Config, error) {
	fc := toFileConfig(DefaultConfig())
	if _, err := toml.Decode(string(data), &fc); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg := fc.config()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads the TOML file at path over DefaultConfig and validates
// the result.
func LoadConfig(path string) (Config, error) {
	fc := toFileConfig(DefaultConfig())
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	cfg := fc.config()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}
