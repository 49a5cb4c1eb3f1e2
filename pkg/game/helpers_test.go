package game

import "github.com/decker502/herofx/pkg/render"

// scriptedRand 按顺序返回预设值，用尽后循环
type scriptedRand struct {
	values []float64
	next   int
}

func (r *scriptedRand) Float64() float64 {
	v := r.values[r.next%len(r.values)]
	r.next++
	return v
}

func failingFactory(int, int) (render.Surface, error) {
	return nil, render.ErrSurfaceUnavailable
}

// flakySurface 在前 failures 次清屏时 panic，之后正常工作
type flakySurface struct {
	*render.Recorder
	failures *int
}

func (s flakySurface) Clear() {
	if *s.failures > 0 {
		*s.failures--
		panic("surface lost")
	}
	s.Recorder.Clear()
}

// flakyFactory 返回前 failures 次清屏会 panic 的表面
func flakyFactory(failures int) render.SurfaceFactory {
	return func(w, h int) (render.Surface, error) {
		return flakySurface{Recorder: render.NewRecorder(w, h), failures: &failures}, nil
	}
}
