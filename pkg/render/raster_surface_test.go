package render

import (
	"errors"
	"image/color"
	"testing"
)

func TestRasterSurfaceFillCircle(t *testing.T) {
	s, err := NewRasterSurface(40, 40)
	if err != nil {
		t.Fatalf("NewRasterSurface: %v", err)
	}

	s.FillCircle(20, 20, 8, color.NRGBA{R: 255, A: 255})

	center := s.Image().RGBAAt(20, 20)
	if center.R < 250 || center.A < 250 {
		t.Errorf("circle center not filled: %+v", center)
	}
	corner := s.Image().RGBAAt(1, 1)
	if corner.A != 0 {
		t.Errorf("corner should stay transparent: %+v", corner)
	}

	s.Clear()
	if got := s.Image().RGBAAt(20, 20); got.A != 0 {
		t.Errorf("Clear left pixel %+v", got)
	}
}

func TestRasterSurfaceStrokeLine(t *testing.T) {
	s, _ := NewRasterSurface(20, 20)
	s.StrokeLine(0, 10, 20, 10, 2, color.NRGBA{G: 255, A: 255})

	if got := s.Image().RGBAAt(10, 10); got.G < 200 {
		t.Errorf("line pixel not drawn: %+v", got)
	}
	if got := s.Image().RGBAAt(10, 2); got.A != 0 {
		t.Errorf("pixel away from line drawn: %+v", got)
	}

	// 零长度线段不绘制
	s.Clear()
	s.StrokeLine(5, 5, 5, 5, 4, color.NRGBA{G: 255, A: 255})
	if got := s.Image().RGBAAt(5, 5); got.A != 0 {
		t.Errorf("zero-length line drew %+v", got)
	}
}

func TestRasterSurfaceRadialGradient(t *testing.T) {
	s, _ := NewRasterSurface(60, 60)
	s.FillRadialGradient(RadialGradient{
		CenterX: 30, CenterY: 30, RadiusX: 25, RadiusY: 25,
		Stops: []GradientStop{
			{Offset: 0, Color: color.NRGBA{R: 255, A: 255}},
			{Offset: 1, Color: color.NRGBA{B: 255, A: 255}},
		},
	})

	center := s.Image().RGBAAt(30, 30)
	if center.R < 230 || center.B > 30 {
		t.Errorf("gradient center should be red: %+v", center)
	}
	edge := s.Image().RGBAAt(53, 30)
	if edge.B < center.B {
		t.Errorf("gradient edge should be bluer than center: edge=%+v center=%+v", edge, center)
	}
	if got := s.Image().RGBAAt(2, 2); got.A != 0 {
		t.Errorf("outside ellipse drawn: %+v", got)
	}
}

func TestRasterSurfaceDegenerate(t *testing.T) {
	if _, err := NewRasterSurface(0, 0); !errors.Is(err, ErrSurfaceUnavailable) {
		t.Errorf("expected ErrSurfaceUnavailable, got %v", err)
	}
	factory := NewRasterSurfaceFactory()
	if _, err := factory(-5, 5); err == nil {
		t.Error("factory should reject negative width")
	}
	surf, err := factory(8, 4)
	if err != nil {
		t.Fatalf("factory: %v", err)
	}
	if w, h := surf.Size(); w != 8 || h != 4 {
		t.Errorf("Size() = %dx%d, want 8x4", w, h)
	}
}
