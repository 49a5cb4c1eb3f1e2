package systems

import (
	"image/color"
	"math"

	"github.com/decker502/herofx/pkg/components"
	"github.com/decker502/herofx/pkg/render"
)

const (
	// ConnectionMaxOpacity is the stroke opacity of two coincident particles.
	ConnectionMaxOpacity = 0.2

	connectionLineWidth = 0.5
)

var connectionColor = color.NRGBA{R: 100, G: 150, B: 255, A: 255}

// ConnectionRenderSystem draws proximity edges between particles.
//
// Every unordered pair is checked, so the cost grows quadratically with the
// particle count. The presets keep the drift store at about 100 particles.
type ConnectionRenderSystem struct {
	Threshold float64
	LineWidth float64
	Color     color.NRGBA
}

// NewConnectionRenderSystem creates a ConnectionRenderSystem with the given cutoff.
func NewConnectionRenderSystem(threshold float64) *ConnectionRenderSystem {
	return &ConnectionRenderSystem{
		Threshold: threshold,
		LineWidth: connectionLineWidth,
		Color:     connectionColor,
	}
}

// ConnectionOpacity returns the stroke opacity 0.2·(1 − d/threshold) for a
// pair at distance d, and false when no line should be drawn (d >= threshold).
func ConnectionOpacity(distance, threshold float64) (float64, bool) {
	if threshold <= 0 || math.IsNaN(distance) || distance >= threshold {
		return 0, false
	}
	if distance < 0 {
		distance = 0
	}
	return ConnectionMaxOpacity * (1 - distance/threshold), true
}

// Draw strokes one line per close pair and returns the number of lines drawn.
func (cs *ConnectionRenderSystem) Draw(surface render.Surface, particles []components.Particle) int {
	lines := 0
	for i := 0; i < len(particles); i++ {
		a := &particles[i]
		for j := i + 1; j < len(particles); j++ {
			b := &particles[j]
			d := math.Hypot(a.X-b.X, a.Y-b.Y)
			opacity, ok := ConnectionOpacity(d, cs.Threshold)
			if !ok {
				continue
			}
			surface.StrokeLine(a.X, a.Y, b.X, b.Y, cs.LineWidth, render.WithAlpha(cs.Color, opacity))
			lines++
		}
	}
	return lines
}
