package config

import (
	"errors"
	"fmt"

	"github.com/benoitkugler/svgsmooth/svgin"
	"github.com/benoitkugler/svgsmooth/svgstyle"
	"github.com/kelseyhightower/envconfig"
)

// Prefix of the environment variables, such as SVGSMOOTH_MODE.
const Prefix = "svgsmooth"

const (
	ModeSmooth = "smooth"
	ModeFilter = "filter"
)

type Config struct {
	Mode        string  `envconfig:"MODE" default:"smooth"`
	MinAngle    float64 `envconfig:"MIN_ANGLE" default:"45"`
	Factor      float64 `envconfig:"FACTOR" default:"0.001"`
	Margin      float64 `envconfig:"MARGIN" default:"0"`
	Stroke      string  `envconfig:"STROKE" default:"black"`
	StrokeWidth float64 `envconfig:"STROKE_WIDTH" default:"1"`
	Markers     bool    `envconfig:"MARKERS" default:"false"`
	KeepViewBox bool    `envconfig:"KEEP_VIEWBOX" default:"false"`
	ErrorMode   string  `envconfig:"ERROR_MODE" default:"warn"`
	PNGWidth    int     `envconfig:"PNG_WIDTH" default:"512"`
	Debug       bool    `envconfig:"DEBUG" default:"false"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the values which can not be
// expressed by the field types.
func (cfg Config) Validate() error {
	if cfg.Mode != ModeSmooth && cfg.Mode != ModeFilter {
		return fmt.Errorf("config: invalid mode %q (expected %s or %s)", cfg.Mode, ModeSmooth, ModeFilter)
	}
	if _, err := cfg.StrokeColor(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := cfg.SVGErrorMode(); err != nil {
		return err
	}
	if cfg.PNGWidth <= 0 {
		return errors.New("config: PNG width must be positive")
	}
	return nil
}

// StrokeColor parses the Stroke field.
func (cfg Config) StrokeColor() (svgstyle.Color, error) { return svgstyle.ParseColor(cfg.Stroke) }

// SVGErrorMode parses the ErrorMode field.
func (cfg Config) SVGErrorMode() (svgin.ErrorMode, error) {
	switch cfg.ErrorMode {
	case "ignore":
		return svgin.IgnoreErrorMode, nil
	case "warn":
		return svgin.WarnErrorMode, nil
	case "strict":
		return svgin.StrictErrorMode, nil
	default:
		return 0, fmt.Errorf("config: invalid error mode %q", cfg.ErrorMode)
	}
}
