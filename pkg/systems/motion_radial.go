package systems

import (
	"image/color"
	"math"

	"github.com/decker502/herofx/pkg/components"
	"github.com/decker502/herofx/pkg/config"
	"github.com/decker502/herofx/pkg/render"
)

// Radial attraction ("black hole") constants.
const (
	// RadialPullStrength is the numerator of the inverse-distance pull.
	RadialPullStrength = 10.0
	// RadialPullFloor keeps far particles drifting inward.
	RadialPullFloor = 0.1

	// Seed distance range and respawn ring, as fractions of the canvas width.
	RadialSeedMinFraction = 0.2
	RadialSeedMaxFraction = 0.8
	RadialRespawnFraction = 0.8

	radialSizeMin  = 1.0
	radialSizeMax  = 3.0
	radialSpeedMin = 0.2
	radialSpeedMax = 0.7

	// radialColorOffset softens the brightness ramp near the center.
	radialColorOffset = 50.0
)

var (
	radialFarColor  = color.NRGBA{R: 255, G: 140, B: 60, A: 255}
	radialNearColor = color.NRGBA{R: 210, G: 225, B: 255, A: 255}
)

// RadialMotion pulls particles toward the scene center and respawns them on
// the outer ring once they cross the event horizon.
type RadialMotion struct{}

func (RadialMotion) Kind() config.MotionModelKind { return config.MotionRadial }

// Seed places particles at a uniform angle and a uniform distance in
// [0.2·W, 0.8·W) from the center.
func (RadialMotion) Seed(count int, scene components.Scene, rng RandSource) []components.Particle {
	particles := make([]components.Particle, count)
	for i := range particles {
		angle := uniform(rng, 0, 2*math.Pi)
		distance := uniform(rng, RadialSeedMinFraction*scene.Width, RadialSeedMaxFraction*scene.Width)
		p := &particles[i]
		p.Angle = angle
		p.Distance = distance
		p.X = scene.CenterX + math.Cos(angle)*distance
		p.Y = scene.CenterY + math.Sin(angle)*distance
		p.Size = uniform(rng, radialSizeMin, radialSizeMax)
		p.Speed = uniform(rng, radialSpeedMin, radialSpeedMax)
	}
	return particles
}

// Update moves p toward the center by speed·pull, or respawns it when it is
// already inside the event horizon.
func (RadialMotion) Update(p *components.Particle, scene components.Scene, rng RandSource) {
	dx := scene.CenterX - p.X
	dy := scene.CenterY - p.Y
	distance := math.Hypot(dx, dy)

	if distance < scene.EventHorizonRadius {
		respawnRadial(p, scene, rng)
		return
	}

	pull := Pull(distance)
	angle := math.Atan2(dy, dx)
	p.X += math.Cos(angle) * p.Speed * pull
	p.Y += math.Sin(angle) * p.Speed * pull
}

// Color derives the particle color from its current distance to the center.
func (RadialMotion) Color(p *components.Particle, scene components.Scene) color.NRGBA {
	return RadialColor(math.Hypot(scene.CenterX-p.X, scene.CenterY-p.Y))
}

// respawnRadial puts p back on the outer ring, keeping size and speed.
func respawnRadial(p *components.Particle, scene components.Scene, rng RandSource) {
	angle := uniform(rng, 0, 2*math.Pi)
	distance := RadialRespawnFraction * scene.Width
	p.Angle = angle
	p.Distance = distance
	p.X = scene.CenterX + math.Cos(angle)*distance
	p.Y = scene.CenterY + math.Sin(angle)*distance
}

// Pull returns the inverse-distance attraction max(0.1, 10/(d+1)).
//
//	Pull(0) = 10
//	Pull(9) = 1
//	Pull(d) = 0.1 for d >= 99
func Pull(distance float64) float64 {
	if distance < 0 || math.IsNaN(distance) {
		distance = 0
	}
	return math.Max(RadialPullFloor, RadialPullStrength/(distance+1))
}

// RadialColor maps a distance to a color ramp from warm and dim (far) to
// bright blue-white (near). intensity = min(1, 255/(d+50)).
func RadialColor(distance float64) color.NRGBA {
	if distance < 0 || math.IsNaN(distance) {
		distance = 0
	}
	intensity := math.Min(1, 255/(distance+radialColorOffset))

	c := render.BlendNRGBA(radialFarColor, radialNearColor, intensity)
	return color.NRGBA{
		R: uint8(float64(c.R) * intensity),
		G: uint8(float64(c.G) * intensity),
		B: uint8(float64(c.B) * intensity),
		A: uint8(255 * (0.4 + 0.6*intensity)),
	}
}
