package config

import (
	"testing"

	"github.com/benoitkugler/svgsmooth/svgin"
	"github.com/benoitkugler/svgsmooth/svgstyle"
	"github.com/google/go-cmp/cmp"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	want := &Config{
		Mode:        ModeSmooth,
		MinAngle:    45,
		Factor:      0.001,
		Stroke:      "black",
		StrokeWidth: 1,
		ErrorMode:   "warn",
		PNGWidth:    512,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("unexpected config (-want +got):\n%s", diff)
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("SVGSMOOTH_MODE", "filter")
	t.Setenv("SVGSMOOTH_MIN_ANGLE", "120")
	t.Setenv("SVGSMOOTH_STROKE", "#00ff00")
	t.Setenv("SVGSMOOTH_ERROR_MODE", "strict")
	t.Setenv("SVGSMOOTH_MARKERS", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Mode != ModeFilter || cfg.MinAngle != 120 || !cfg.Markers {
		t.Errorf("unexpected config %+v", cfg)
	}
	if c, _ := cfg.StrokeColor(); c != (svgstyle.RGB{0, 255, 0}) {
		t.Errorf("unexpected stroke %v", c)
	}
	if m, _ := cfg.SVGErrorMode(); m != svgin.StrictErrorMode {
		t.Errorf("unexpected error mode %v", m)
	}
}

func TestLoadInvalid(t *testing.T) {
	for key, value := range map[string]string{
		"SVGSMOOTH_MODE":       "sharpen",
		"SVGSMOOTH_STROKE":     "not-a-color",
		"SVGSMOOTH_ERROR_MODE": "loud",
		"SVGSMOOTH_PNG_WIDTH":  "0",
		"SVGSMOOTH_FACTOR":     "abc",
	} {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			if _, err := Load(); err == nil {
				t.Errorf("%s=%s: expected an error", key, value)
			}
		})
	}
}
