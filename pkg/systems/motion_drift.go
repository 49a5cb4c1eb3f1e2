package systems

import (
	"image/color"

	"github.com/decker502/herofx/pkg/components"
	"github.com/decker502/herofx/pkg/config"
)

// Linear drift ("data flow") seeding ranges.
const (
	driftSpeedMin = 0.5
	driftSpeedMax = 2.5
	driftSizeMin  = 1.0
	driftSizeMax  = 4.0

	driftRedMin   = 0.0
	driftRedMax   = 100.0
	driftGreenMin = 100.0
	driftGreenMax = 200.0
	driftAlphaMin = 0.5
	driftAlphaMax = 1.0
)

// DriftMotion moves particles straight up and recycles them at the bottom
// edge once they leave the top.
type DriftMotion struct{}

func (DriftMotion) Kind() config.MotionModelKind { return config.MotionDrift }

// Seed scatters particles uniformly over the canvas with a fixed color each.
func (DriftMotion) Seed(count int, scene components.Scene, rng RandSource) []components.Particle {
	particles := make([]components.Particle, count)
	for i := range particles {
		p := &particles[i]
		p.X = uniform(rng, 0, scene.Width)
		p.Y = uniform(rng, 0, scene.Height)
		p.Speed = uniform(rng, driftSpeedMin, driftSpeedMax)
		p.Size = uniform(rng, driftSizeMin, driftSizeMax)
		p.Color = color.NRGBA{
			R: uint8(uniform(rng, driftRedMin, driftRedMax)),
			G: uint8(uniform(rng, driftGreenMin, driftGreenMax)),
			B: 255,
			A: uint8(255 * uniform(rng, driftAlphaMin, driftAlphaMax)),
		}
	}
	return particles
}

// Update moves p up by its speed; past the top edge it re-enters just below
// the bottom edge at a fresh x.
func (DriftMotion) Update(p *components.Particle, scene components.Scene, rng RandSource) {
	p.Y -= p.Speed
	if p.Y < -p.Size {
		p.Y = scene.Height + p.Size
		p.X = uniform(rng, 0, scene.Width)
	}
}

func (DriftMotion) Color(p *components.Particle, _ components.Scene) color.NRGBA {
	return p.Color
}
