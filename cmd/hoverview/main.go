// Package main opens a scenario in an interactive window.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/hoverkit/internal/config"
	"github.com/Faultbox/hoverkit/internal/logger"
	"github.com/Faultbox/hoverkit/internal/scenario"
	"github.com/Faultbox/hoverkit/internal/viewer"
)

const windowTitle = "hoverkit"

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== hoverkit viewer ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	runner, title, err := loadScenario(cfg)
	if err != nil {
		logger.Error("failed to load scenario", zap.Error(err))
		os.Exit(1)
	}

	v, err := viewer.New(viewer.Config{
		Title:      title,
		Width:      cfg.Viewer.Width,
		Height:     cfg.Viewer.Height,
		Fullscreen: cfg.Viewer.Fullscreen,
		VSync:      cfg.Viewer.VSync,

		ScreenshotDir: cfg.Viewer.ScreenshotDir,
	}, runner)
	if err != nil {
		logger.Error("failed to create viewer", zap.Error(err))
		os.Exit(1)
	}
	defer v.Close()

	if err := v.Run(); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
}

// loadScenario builds the configured scenario. Without one the viewer opens
// an empty scene that only the mouse cursor moves through.
func loadScenario(cfg *config.Config) (*scenario.Runner, string, error) {
	sc := &scenario.Scenario{Name: "empty"}
	if cfg.Scenario.Path != "" {
		var err error
		if sc, err = scenario.Load(cfg.Scenario.Path); err != nil {
			return nil, "", err
		}
	}

	hs := cfg.HighlightSettings()
	runner, err := scenario.NewRunner(sc, &hs, cfg.FrameSettings(), cfg.SliderLayoutConfig(), logger.Named("frame"))
	if err != nil {
		return nil, "", err
	}
	return runner, windowTitle + " - " + sc.Name, nil
}
