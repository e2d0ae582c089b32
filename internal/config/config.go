// Package config handles hoverkit configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/hoverkit/internal/engine/frame"
	"github.com/Faultbox/hoverkit/internal/engine/highlight"
	"github.com/Faultbox/hoverkit/internal/engine/slider"
)

// Config holds all settings.
type Config struct {
	Interaction InteractionConfig `yaml:"interaction"`
	Slider      SliderConfig      `yaml:"slider"`
	Viewer      ViewerConfig      `yaml:"viewer"`
	Scenario    ScenarioConfig    `yaml:"scenario"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// InteractionConfig holds highlight and selection tuning.
type InteractionConfig struct {
	HighlightDistanceMin float32 `yaml:"highlight_distance_min"`
	HighlightDistanceMax float32 `yaml:"highlight_distance_max"`
	SelectionSeconds     float32 `yaml:"selection_seconds"`
	SliderEasePower      float32 `yaml:"slider_ease_power"`
	FadeSeconds          float32 `yaml:"fade_seconds"`
}

// SliderConfig holds arc slider geometry.
type SliderConfig struct {
	AngleInset      float32 `yaml:"angle_inset"`
	HandleAngleHalf float32 `yaml:"handle_angle_half"`
	InnerRadius     float32 `yaml:"inner_radius"`
	OuterRadius     float32 `yaml:"outer_radius"`
	StepsPerPi      float32 `yaml:"steps_per_pi"`
	TickInnerRadius float32 `yaml:"tick_inner_radius"`
	TickOuterRadius float32 `yaml:"tick_outer_radius"`
}

// ViewerConfig holds display settings for the interactive viewer.
type ViewerConfig struct {
	Width         int    `yaml:"width"`
	Height        int    `yaml:"height"`
	Fullscreen    bool   `yaml:"fullscreen"`
	VSync         bool   `yaml:"vsync"`
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// ScenarioConfig selects the scripted scenario and how long to run it.
type ScenarioConfig struct {
	Path    string  `yaml:"path"`
	Frames  int     `yaml:"frames"`
	FrameDT float32 `yaml:"frame_dt"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	hs := highlight.DefaultSettings()
	fs := frame.DefaultSettings()
	sc := slider.DefaultConfig()

	return &Config{
		Interaction: InteractionConfig{
			HighlightDistanceMin: hs.DistanceMin,
			HighlightDistanceMax: hs.DistanceMax,
			SelectionSeconds:     fs.SelectionDuration,
			SliderEasePower:      fs.EasePower,
			FadeSeconds:          fs.FadeSeconds,
		},
		Slider: SliderConfig{
			AngleInset:      sc.AngleInset,
			HandleAngleHalf: sc.HandleAngleHalf,
			InnerRadius:     sc.InnerRadius,
			OuterRadius:     sc.OuterRadius,
			StepsPerPi:      sc.StepsPerPi,
			TickInnerRadius: sc.TickInnerRadius,
			TickOuterRadius: sc.TickOuterRadius,
		},
		Viewer: ViewerConfig{
			Width:         1280,
			Height:        720,
			VSync:         true,
			ScreenshotDir: "screenshots",
		},
		Scenario: ScenarioConfig{
			Frames:  240,
			FrameDT: 1.0 / 60,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// HighlightSettings converts the interaction section for the highlight engine.
func (c *Config) HighlightSettings() highlight.Settings {
	return highlight.Settings{
		DistanceMin: c.Interaction.HighlightDistanceMin,
		DistanceMax: c.Interaction.HighlightDistanceMax,
	}
}

// FrameSettings converts the interaction section for the frame updater.
func (c *Config) FrameSettings() frame.Settings {
	return frame.Settings{
		EasePower:         c.Interaction.SliderEasePower,
		SelectionDuration: c.Interaction.SelectionSeconds,
		FadeSeconds:       c.Interaction.FadeSeconds,
	}
}

// SliderLayoutConfig converts the slider section.
func (c *Config) SliderLayoutConfig() slider.Config {
	s := c.Slider
	return slider.Config{
		AngleInset:      s.AngleInset,
		HandleAngleHalf: s.HandleAngleHalf,
		InnerRadius:     s.InnerRadius,
		OuterRadius:     s.OuterRadius,
		StepsPerPi:      s.StepsPerPi,
		TickInnerRadius: s.TickInnerRadius,
		TickOuterRadius: s.TickOuterRadius,
	}
}

// Validate reports settings that would make the engine misbehave.
func (c *Config) Validate() error {
	var errs []error

	in := c.Interaction
	if in.HighlightDistanceMin < 0 || in.HighlightDistanceMax <= in.HighlightDistanceMin {
		errs = append(errs, fmt.Errorf("interaction: need 0 <= highlight_distance_min < highlight_distance_max, got %v, %v",
			in.HighlightDistanceMin, in.HighlightDistanceMax))
	}
	if in.SliderEasePower <= 0 {
		errs = append(errs, fmt.Errorf("interaction: slider_ease_power must be positive, got %v", in.SliderEasePower))
	}
	if c.Slider.InnerRadius <= 0 || c.Slider.OuterRadius <= c.Slider.InnerRadius {
		errs = append(errs, fmt.Errorf("slider: need 0 < inner_radius < outer_radius, got %v, %v",
			c.Slider.InnerRadius, c.Slider.OuterRadius))
	}
	if c.Slider.StepsPerPi <= 0 {
		errs = append(errs, fmt.Errorf("slider: steps_per_pi must be positive, got %v", c.Slider.StepsPerPi))
	}
	if c.Scenario.FrameDT <= 0 {
		errs = append(errs, fmt.Errorf("scenario: frame_dt must be positive, got %v", c.Scenario.FrameDT))
	}

	return errors.Join(errs...)
}
