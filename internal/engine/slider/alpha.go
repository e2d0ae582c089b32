package slider

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/Faultbox/hoverkit/pkg/math"
)

// DisabledAlphaScale dims a disabled slider.
const DisabledAlphaScale = 0.333

// ArcAlpha is the opacity of an arc menu given how strongly it is shown and
// how strongly it is being grabbed.
func ArcAlpha(strength, grabStrength float32) float32 {
	alpha := 1 - math.Pow(1-strength, 2)
	alpha -= math.Pow(grabStrength, 2)
	return max(0, alpha)
}

// FadeAlpha is the opacity at progress p of a fade-in (or fade-out).
func FadeAlpha(fadeIn bool, p float32) float32 {
	a := ease.OutCubic(math.Clamp01(p), 0, 1, 1)
	if fadeIn {
		return a
	}
	return 1 - a
}

// Fader animates FadeAlpha over time.
type Fader struct {
	tween  *gween.Tween
	fadeIn bool
	alpha  float32
	done   bool
}

// NewFader starts a fade lasting duration seconds.
func NewFader(fadeIn bool, duration float32) *Fader {
	f := &Fader{
		tween:  gween.New(0, 1, duration, ease.Linear),
		fadeIn: fadeIn,
	}
	f.alpha = FadeAlpha(fadeIn, 0)
	return f
}

// Update advances the fade by dt seconds and returns the current alpha.
func (f *Fader) Update(dt float32) float32 {
	if f.done {
		return f.alpha
	}
	p, finished := f.tween.Update(dt)
	f.alpha = FadeAlpha(f.fadeIn, p)
	f.done = finished
	return f.alpha
}

// Alpha returns the last computed alpha.
func (f *Fader) Alpha() float32 {
	return f.alpha
}

// Done reports whether the fade has finished.
func (f *Fader) Done() bool {
	return f.done
}
