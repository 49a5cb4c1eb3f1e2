package systems

import (
	"fmt"
	"image/color"

	"github.com/decker502/herofx/pkg/components"
	"github.com/decker502/herofx/pkg/config"
)

// RandSource is the uniform generator injected into seeding and respawn.
// *math/rand.Rand satisfies it; tests supply scripted sequences.
type RandSource interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
}

// MotionModel is the per-frame rule that advances one particle and decides
// when and where to respawn it.
//
// A model is selected once when the engine is built and never swapped while
// mounted. Implementations hold no per-particle state of their own.
type MotionModel interface {
	// Kind returns the configured model tag.
	Kind() config.MotionModelKind

	// Seed creates count particles for the scene.
	Seed(count int, scene components.Scene, rng RandSource) []components.Particle

	// Update advances p by one frame, respawning it when it leaves its bound.
	Update(p *components.Particle, scene components.Scene, rng RandSource)

	// Color returns the draw color of p for the current frame.
	Color(p *components.Particle, scene components.Scene) color.NRGBA
}

// NewMotionModel returns the strategy for the given model tag.
func NewMotionModel(kind config.MotionModelKind) (MotionModel, error) {
	switch kind {
	case config.MotionRadial:
		return RadialMotion{}, nil
	case config.MotionDrift:
		return DriftMotion{}, nil
	case config.MotionStatic:
		return StaticMotion{}, nil
	default:
		return nil, fmt.Errorf("unknown motion model '%s'", kind)
	}
}

// InitializeParticles creates the fixed-size particle store for one engine.
func InitializeParticles(model MotionModel, count int, scene components.Scene, rng RandSource) []components.Particle {
	if count < 0 {
		count = 0
	}
	return model.Seed(count, scene, rng)
}

// UpdateParticles advances every particle of the store by one frame.
func UpdateParticles(model MotionModel, particles []components.Particle, scene components.Scene, rng RandSource) {
	for i := range particles {
		model.Update(&particles[i], scene, rng)
	}
}

// uniform returns a value in [lo, hi).
func uniform(rng RandSource, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// StaticMotion backs the static-image preset: no particles, nothing moves.
type StaticMotion struct{}

func (StaticMotion) Kind() config.MotionModelKind { return config.MotionStatic }

func (StaticMotion) Seed(int, components.Scene, RandSource) []components.Particle {
	return []components.Particle{}
}

func (StaticMotion) Update(*components.Particle, components.Scene, RandSource) {}

func (StaticMotion) Color(p *components.Particle, _ components.Scene) color.NRGBA {
	return p.Color
}
