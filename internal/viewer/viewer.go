// Package viewer shows a running scenario in an SDL2 window. The mouse acts
// as an extra raycast cursor so items can be tried by hand.
package viewer

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/hoverkit/internal/engine/camera"
	"github.com/Faultbox/hoverkit/internal/engine/debug"
	"github.com/Faultbox/hoverkit/internal/engine/frame"
	"github.com/Faultbox/hoverkit/internal/engine/highlight"
	"github.com/Faultbox/hoverkit/internal/engine/input"
	"github.com/Faultbox/hoverkit/internal/engine/renderer"
	"github.com/Faultbox/hoverkit/internal/engine/style"
	"github.com/Faultbox/hoverkit/internal/engine/window"
	"github.com/Faultbox/hoverkit/internal/logger"
	"github.com/Faultbox/hoverkit/internal/scenario"
	"github.com/Faultbox/hoverkit/pkg/math"
)

// MouseCursor is the cursor type the mouse pointer drives.
const MouseCursor highlight.CursorType = "mouse"

// maxStep caps dt so a stalled frame does not teleport scripted cursors.
const maxStep = 0.1

// Config holds viewer configuration.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool

	// ScreenshotDir receives F12 captures.
	ScreenshotDir string
}

// Viewer is the interactive scenario window.
type Viewer struct {
	config   Config
	running  bool
	paused   bool
	useMouse bool
	capture  bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	camera   *camera.OrbitCamera
	palette  style.Palette
	shots    *debug.Screenshots

	runner  *scenario.Runner
	scene   *scene
	visuals []frame.Visual
	title   string

	log *zap.Logger
}

// New opens the window and prepares to play runner.
func New(cfg Config, runner *scenario.Runner) (*Viewer, error) {
	v := &Viewer{
		config:   cfg,
		useMouse: true,
		runner:   runner,
		palette:  style.DefaultPalette(),
		shots:    debug.NewScreenshots(cfg.ScreenshotDir, "hoverkit"),
		log:      logger.Named("viewer"),
	}
	v.log.Info("initializing viewer",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
	)

	var err error
	v.window, err = window.New(window.Config{
		Title:      cfg.Title,
		Width:      cfg.Width,
		Height:     cfg.Height,
		Fullscreen: cfg.Fullscreen,
		VSync:      cfg.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The renderer needs the GL context the window just created.
	dw, dh := v.window.DrawableSize()
	v.renderer, err = renderer.New(renderer.Config{Width: dw, Height: dh})
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	v.renderer.SetClearColor(v.palette.Background.Vec4())

	v.input = input.New()
	v.scene = newScene(runner.Updater.Items())
	v.camera = camera.NewOrbitCamera(math.Vec3{})
	if lo, hi, ok := v.scene.bounds(); ok {
		v.camera.FitToBounds(lo, hi)
	}

	v.log.Info("viewer initialized", zap.Int("items", len(v.scene.items)))
	return v, nil
}

// Run plays the scenario until the window closes.
func (v *Viewer) Run() error {
	v.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	v.log.Info("starting viewer loop")

	for v.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		if v.input.Update() {
			v.running = false
			break
		}
		v.handleEvents()

		if err := v.update(min(dt, maxStep)); err != nil {
			return fmt.Errorf("update error: %w", err)
		}
		v.render()
		if v.capture {
			v.capture = false
			v.saveScreenshot()
		}
		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			stats := v.renderer.Stats()
			v.log.Debug("fps",
				zap.Int("count", frameCount),
				zap.Int("draws", stats.Draws),
				zap.Int("triangles", stats.Triangles),
				zap.Float32("scenario_time", v.runner.Time()))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close frees the window and GPU resources.
func (v *Viewer) Close() {
	v.log.Info("closing viewer")

	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}

func (v *Viewer) handleEvents() {
	for _, event := range v.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			v.renderer.Resize(v.window.DrawableSize())
		case input.EventKeyDown:
			switch event.Key {
			case sdl.SCANCODE_ESCAPE:
				v.running = false
			case sdl.SCANCODE_SPACE:
				v.paused = !v.paused
				v.log.Info("pause toggled", zap.Bool("paused", v.paused))
			case sdl.SCANCODE_F12:
				v.capture = true
			case sdl.SCANCODE_M:
				v.useMouse = !v.useMouse
				v.log.Info("mouse cursor toggled", zap.Bool("enabled", v.useMouse))
			}
		}
	}

	mouse := v.input.Mouse()
	if mouse.DragX != 0 || mouse.DragY != 0 {
		v.camera.HandleDrag(float32(mouse.DragX), float32(mouse.DragY))
	}
	if mouse.WheelY != 0 {
		v.camera.HandleZoom(mouse.WheelY)
	}
}

func (v *Viewer) update(dt float32) error {
	if v.paused {
		dt = 0
	}

	var extra []highlight.Cursor
	if c, ok := v.mouseCursor(); ok {
		extra = append(extra, c)
	}

	visuals, err := v.runner.StepWith(dt, extra)
	if err != nil {
		return err
	}
	v.visuals = visuals

	if title := v.windowTitle(); title != v.title {
		v.title = title
		v.window.SetTitle(title)
	}
	return nil
}

// mouseCursor casts the pointer into the scene. Orbiting with the right
// button held keeps the ray from selecting anything.
func (v *Viewer) mouseCursor() (highlight.Cursor, bool) {
	mouse := v.input.Mouse()
	if !v.useMouse || !mouse.Inside {
		return highlight.Cursor{}, false
	}

	w, h := v.window.Size()
	ray := v.camera.ScreenRay(float32(mouse.X), float32(mouse.Y), w, h)
	return highlight.Cursor{
		Type:                  MouseCursor,
		WorldPosition:         ray.Origin,
		WorldRotation:         math.QuatIdentity(),
		IsRaycast:             true,
		RaycastLocalDirection: ray.Direction,
		CanCauseSelections:    !mouse.RightDown,
	}, true
}

// windowTitle names the scenario and the item closest to any cursor.
func (v *Viewer) windowTitle() string {
	best := -1
	for i, vis := range v.visuals {
		if !vis.ShowEdge {
			continue
		}
		if best < 0 || vis.HighlightProgress > v.visuals[best].HighlightProgress {
			best = i
		}
	}

	title := v.config.Title
	if v.paused {
		title += " (paused)"
	}
	if best >= 0 {
		title += " - " + v.visuals[best].Label
	}
	return title
}

func (v *Viewer) render() {
	dw, dh := v.window.DrawableSize()
	v.renderer.Begin(v.camera.ViewProjection(dw, dh))
	v.scene.draw(v.renderer, v.visuals, v.palette)
	v.renderer.End()
}

func (v *Viewer) saveScreenshot() {
	pixels, w, h := v.renderer.ReadPixels()
	name, err := v.shots.Save(pixels, w, h)
	if err != nil {
		v.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	v.log.Info("screenshot saved", zap.String("file", name))
}
