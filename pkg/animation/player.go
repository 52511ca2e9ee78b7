package animation

import (
	"time"

	"github.com/wqcharts/bizchart/pkg/chart"
)

// Player drives a Transformable from a Source.
type Player struct {
	target   chart.Transformable
	source   Source
	progress float64
	done     bool
}

// NewPlayer binds source to target. Nothing is applied until the first Tick.
func NewPlayer(target chart.Transformable, source Source) *Player {
	return &Player{target: target, source: source}
}

// Tick advances the source by dt and applies the progress to the target.
// When the source finishes, the final progress is applied and the target's
// transforms are cleared. Tick returns false once the player is done.
func (p *Player) Tick(dt time.Duration) bool {
	if p.done {
		return false
	}
	p.progress, p.done = p.source.Next(dt)
	p.target.NextTransform(p.progress)
	if p.done {
		p.target.ClearTransforms()
	}
	return !p.done
}

// Progress returns the last applied progress.
func (p *Player) Progress() float64 { return p.progress }

// Done reports whether the source has finished.
func (p *Player) Done() bool { return p.done }
