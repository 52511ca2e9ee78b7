package animation

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

const (
	// DefaultFPS is the simulation rate of a Spring.
	DefaultFPS = 60

	restEpsilon = 1e-3
)

// Spring moves progress from From to To with a damped harmonic spring.
// Under-damped springs overshoot To before settling.
type Spring struct {
	From, To float64

	spring harmonica.Spring
	frame  time.Duration
	pos    float64
	vel    float64
	done   bool
}

var _ Source = (*Spring)(nil)

// NewSpring creates a spring from 0 to 1 with the given angular frequency
// and damping ratio.
func NewSpring(frequency, damping float64) *Spring {
	return NewSpringBetween(0, 1, frequency, damping)
}

// NewSpringBetween creates a spring from from to to.
func NewSpringBetween(from, to, frequency, damping float64) *Spring {
	return &Spring{
		From:   from,
		To:     to,
		spring: harmonica.NewSpring(harmonica.FPS(DefaultFPS), frequency, damping),
		frame:  time.Second / DefaultFPS,
		pos:    from,
	}
}

// Step advances one simulation frame. Once the spring is at rest the
// position snaps to To and done is true.
func (s *Spring) Step() (progress float64, done bool) {
	if s.done {
		return s.To, true
	}
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.To)
	if math.Abs(s.To-s.pos) < restEpsilon && math.Abs(s.vel) < restEpsilon {
		s.pos, s.vel, s.done = s.To, 0, true
	}
	return s.pos, s.done
}

// Next runs as many frames as fit in dt, at least one.
func (s *Spring) Next(dt time.Duration) (float64, bool) {
	frames := max(int(dt/s.frame), 1)
	var p float64
	var done bool
	for range frames {
		if p, done = s.Step(); done {
			break
		}
	}
	return p, done
}

// Position returns the current progress.
func (s *Spring) Position() float64 { return s.pos }

// Velocity returns the current velocity in progress units per second.
func (s *Spring) Velocity() float64 { return s.vel }
