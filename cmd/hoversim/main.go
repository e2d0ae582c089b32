// Package main runs a scenario headless and reports what the cursors did.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/Faultbox/hoverkit/internal/config"
	"github.com/Faultbox/hoverkit/internal/engine/frame"
	"github.com/Faultbox/hoverkit/internal/logger"
	"github.com/Faultbox/hoverkit/internal/scenario"
)

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

	if cfg.Scenario.Path == "" {
		logger.Error("no scenario given; pass -scenario or set scenario.path")
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		logger.Error("simulation failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	sc, err := scenario.Load(cfg.Scenario.Path)
	if err != nil {
		return err
	}

	hs := cfg.HighlightSettings()
	r, err := scenario.NewRunner(sc, &hs, cfg.FrameSettings(), cfg.SliderLayoutConfig(), logger.Named("frame"))
	if err != nil {
		return err
	}

	logger.Info("running scenario",
		zap.String("name", sc.Name),
		zap.Int("items", len(sc.Items)),
		zap.Int("cursors", len(sc.Cursors)),
		zap.Int("frames", cfg.Scenario.Frames),
		zap.Float32("dt", cfg.Scenario.FrameDT))

	for _, c := range sc.InitialCursors() {
		logger.Debug("cursor",
			zap.String("type", string(c.Type)),
			zap.Bool("raycast", c.IsRaycast),
			zap.Bool("selects", c.CanCauseSelections))
	}

	var last []frame.Visual
	selections := 0
	err = r.Run(cfg.Scenario.Frames, cfg.Scenario.FrameDT, func(n int, visuals []frame.Visual) {
		for _, v := range visuals {
			if v.Selected {
				selections++
				logger.Info("selected",
					zap.Int("frame", n),
					zap.Float32("time", r.Time()),
					zap.String("item", v.ID))
			}
		}
		last = visuals
	})
	if err != nil {
		return err
	}

	logger.Info("scenario finished",
		zap.Float32("time", r.Time()),
		zap.Int("selections", selections),
		zap.Bool("done", r.Done()))

	return report(last)
}

func report(visuals []frame.Visual) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ITEM\tLABEL\tICON\tENABLED\tHIGHLIGHT\tEDGE\tVALUE")
	for _, v := range visuals {
		value := "-"
		if v.Slider != nil {
			value = fmt.Sprintf("%.3f", v.Slider.Value)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%t\t%.2f\t%t\t%s\n",
			v.ID, v.Label, v.Icon, v.Enabled, v.HighlightProgress, v.ShowEdge, value)
	}
	return w.Flush()
}
