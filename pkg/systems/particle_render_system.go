package systems

import (
	"github.com/decker502/herofx/pkg/components"
	"github.com/decker502/herofx/pkg/render"
)

// ParticleRenderSystem draws every particle as a filled circle.
type ParticleRenderSystem struct {
	Model MotionModel
}

// NewParticleRenderSystem creates a ParticleRenderSystem colored by model.
func NewParticleRenderSystem(model MotionModel) *ParticleRenderSystem {
	return &ParticleRenderSystem{Model: model}
}

// Draw renders particles in store order.
func (rs *ParticleRenderSystem) Draw(surface render.Surface, particles []components.Particle, scene components.Scene) {
	for i := range particles {
		p := &particles[i]
		surface.FillCircle(p.X, p.Y, p.Size, rs.Model.Color(p, scene))
	}
}
