package components

import "image/color"

// Particle represents one animated point of the hero banner.
//
// Particles live in a fixed-size slice owned by a single engine; the motion
// model mutates them in place during a step and nothing else writes to them.
//
// This is a pure data component following ECS principles - it contains no methods.
type Particle struct {
	// Position (画布坐标)
	X float64
	Y float64

	// Size is the draw radius (像素, > 0)
	Size float64

	// Speed is the per-frame displacement magnitude (> 0)
	Speed float64

	// Color is fixed at creation by the drift model.
	// The radial model derives color from distance every frame and leaves this zero.
	Color color.NRGBA

	// Polar placement (径向模型专用)
	// Set at seed and respawn time, not re-derived every frame.
	Angle    float64 // radians
	Distance float64 // distance from scene center
}
