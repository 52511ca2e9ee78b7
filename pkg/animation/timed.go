package animation

import "time"

// Source yields progress as time advances.
type Source interface {
	// Next advances the source by dt and returns the new progress and
	// whether the source has finished.
	Next(dt time.Duration) (progress float64, done bool)
}

// Easing maps linear time in [0, 1] to progress.
type Easing func(t float64) float64

// Linear returns t unchanged.
func Linear(t float64) float64 { return t }

// EaseInOut is a cubic curve that starts and ends slowly.
func EaseInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

// EaseOut is a cubic curve that starts fast and ends slowly.
func EaseOut(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// Timed runs from 0 to 1 over Duration along Easing. With Reverse set it
// runs from 1 to 0.
type Timed struct {
	Duration time.Duration
	Easing   Easing // nil means Linear
	Reverse  bool

	elapsed time.Duration
}

var _ Source = (*Timed)(nil)

// Progress returns the progress after elapsed time without changing state.
func (t *Timed) Progress(elapsed time.Duration) float64 {
	x := 1.0
	if t.Duration > 0 {
		x = min(max(float64(elapsed)/float64(t.Duration), 0), 1)
	}
	ease := t.Easing
	if ease == nil {
		ease = Linear
	}
	p := ease(x)
	if t.Reverse {
		return 1 - p
	}
	return p
}

// Next advances the clock by dt.
func (t *Timed) Next(dt time.Duration) (float64, bool) {
	t.elapsed += dt
	return t.Progress(t.elapsed), t.elapsed >= t.Duration
}

// Reset rewinds the clock.
func (t *Timed) Reset() { t.elapsed = 0 }
