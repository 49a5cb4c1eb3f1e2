package components

// Scene holds the geometry shared by particles and field drawing.
//
// A Scene is a value: resizing builds a new one instead of mutating fields.
type Scene struct {
	// Canvas size (像素)
	Width  float64
	Height float64

	// Center point (画布中心)
	CenterX float64
	CenterY float64

	// Characteristic radii (径向模型)
	EventHorizonRadius  float64
	AccretionDiskRadius float64
}

// NewScene builds a scene centered on a width x height canvas.
func NewScene(width, height int, eventHorizonRadius, accretionDiskRadius float64) Scene {
	return Scene{
		Width:               float64(width),
		Height:              float64(height),
		CenterX:             float64(width) / 2,
		CenterY:             float64(height) / 2,
		EventHorizonRadius:  eventHorizonRadius,
		AccretionDiskRadius: accretionDiskRadius,
	}
}

// Degenerate reports whether the canvas has no drawable area.
func (s Scene) Degenerate() bool {
	return s.Width <= 0 || s.Height <= 0
}
