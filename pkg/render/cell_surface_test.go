package render

import (
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("failed to init simulation screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func TestFitCells(t *testing.T) {
	tests := []struct {
		name               string
		width, height      int
		screenW, screenH   int
		wantCols, wantRows int
	}{
		{"宽度受限", 300, 300, 60, 100, 60, 30},
		{"高度受限", 256, 256, 200, 32, 64, 32},
		{"退化画布", 0, 300, 80, 24, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cols, rows := FitCells(tt.width, tt.height, tt.screenW, tt.screenH)
			if cols != tt.wantCols || rows != tt.wantRows {
				t.Errorf("FitCells = %dx%d, want %dx%d", cols, rows, tt.wantCols, tt.wantRows)
			}
		})
	}
}

func TestCellSurfaceDrawAndPresent(t *testing.T) {
	screen := newTestScreen(t, 20, 10)
	s, err := NewCellSurface(screen, 200, 100, 20, 10, 0, 0)
	if err != nil {
		t.Fatalf("NewCellSurface: %v", err)
	}

	s.FillCircle(105, 55, 1, color.NRGBA{R: 255, A: 255})
	if r, _, _ := s.CellColor(10, 5); r != 255 {
		t.Errorf("circle cell red = %d, want 255", r)
	}

	s.StrokeLine(0, 5, 195, 5, 1, color.NRGBA{G: 255, A: 255})
	for col := 0; col < 20; col++ {
		if _, g, _ := s.CellColor(col, 0); g != 255 {
			t.Fatalf("line cell %d green = %d, want 255", col, g)
		}
	}

	s.Present()
	_, _, style, _ := screen.GetContent(10, 5)
	_, bg, _ := style.Decompose()
	r, g, b := bg.RGB()
	if r != 255 || g != 0 || b != 0 {
		t.Errorf("presented cell background = (%d,%d,%d), want (255,0,0)", r, g, b)
	}

	s.Clear()
	if r, g, b := s.CellColor(10, 5); r != 0 || g != 0 || b != 0 {
		t.Errorf("Clear left (%d,%d,%d)", r, g, b)
	}
}

func TestCellSurfaceGradientBlend(t *testing.T) {
	screen := newTestScreen(t, 10, 10)
	s, _ := NewCellSurface(screen, 100, 100, 10, 10, 0, 0)

	s.FillRadialGradient(RadialGradient{
		CenterX: 50, CenterY: 50, RadiusX: 30, RadiusY: 30,
		Stops: []GradientStop{{Offset: 0, Color: color.NRGBA{B: 200, A: 128}}},
	})

	_, _, b := s.CellColor(5, 5)
	if b < 95 || b > 105 {
		t.Errorf("half-alpha blend over black = %d, want ~100", b)
	}
	if _, _, b := s.CellColor(0, 0); b != 0 {
		t.Errorf("cell outside gradient = %d, want 0", b)
	}
}

func TestCellSurfaceFactory(t *testing.T) {
	if _, err := NewCellSurfaceFactory(nil)(10, 10); err == nil {
		t.Error("nil screen should be unavailable")
	}

	screen := newTestScreen(t, 80, 24)
	surf, err := NewCellSurfaceFactory(screen)(300, 300)
	if err != nil {
		t.Fatalf("factory: %v", err)
	}
	cs := surf.(*CellSurface)
	cols, rows := cs.Cells()
	if cols != 48 || rows != 24 {
		t.Errorf("cells = %dx%d, want 48x24", cols, rows)
	}
	if _, err := NewCellSurfaceFactory(screen)(0, 300); err == nil {
		t.Error("degenerate canvas should be rejected")
	}
}
