package systems

import (
	"math"
	"testing"

	"github.com/decker502/herofx/pkg/components"
	"github.com/decker502/herofx/pkg/render"
)

func TestConnectionOpacity(t *testing.T) {
	tests := []struct {
		name      string
		distance  float64
		threshold float64
		want      float64
		wantOK    bool
	}{
		{"重合", 0, 70, 0.2, true},
		{"半程", 35, 70, 0.1, true},
		{"等于阈值不连线", 70, 70, 0, false},
		{"超过阈值", 100, 70, 0, false},
		{"阈值为0", 10, 0, 0, false},
		{"NaN", math.NaN(), 70, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ConnectionOpacity(tt.distance, tt.threshold)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("opacity = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConnectionRenderSystemDraw(t *testing.T) {
	particles := []components.Particle{
		{X: 10, Y: 10},
		{X: 50, Y: 10},
		{X: 200, Y: 200},
		{X: 290, Y: 290},
	}
	rec := render.NewRecorder(300, 300)
	cs := NewConnectionRenderSystem(70)

	lines := cs.Draw(rec, particles)
	if lines != 1 {
		t.Fatalf("expected exactly one line, got %d", lines)
	}
	ops := rec.Filter(render.OpLine)
	if len(ops) != 1 {
		t.Fatalf("recorder saw %d lines", len(ops))
	}
	op := ops[0]
	if op.X0 != 10 || op.X1 != 50 || op.Y0 != 10 || op.Y1 != 10 {
		t.Errorf("line endpoints = (%v,%v)-(%v,%v)", op.X0, op.Y0, op.X1, op.Y1)
	}
	if op.Color.A == 0 || op.Color.A > 51 {
		t.Errorf("line alpha %d outside (0, 0.2·255]", op.Color.A)
	}
}

func TestConnectionRenderSystemAllPairs(t *testing.T) {
	// 三个重合的粒子两两连线
	particles := []components.Particle{{X: 5, Y: 5}, {X: 5, Y: 5}, {X: 5, Y: 5}}
	rec := render.NewRecorder(10, 10)
	if got := NewConnectionRenderSystem(70).Draw(rec, particles); got != 3 {
		t.Errorf("expected 3 lines, got %d", got)
	}
}
