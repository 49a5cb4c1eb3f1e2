package game

import "testing"

func TestFrameLoopAdvanceRunsPendingBatch(t *testing.T) {
	loop := NewFrameLoop(800, 600)

	var order []string
	loop.RequestFrame(func() {
		order = append(order, "a")
		// 绘制过程中预约的回调等到下一次绘制
		loop.RequestFrame(func() { order = append(order, "c") })
	})
	loop.RequestFrame(func() { order = append(order, "b") })

	if n := loop.Advance(); n != 2 {
		t.Fatalf("first Advance ran %d callbacks, want 2", n)
	}
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("unexpected order after first paint: %v", order)
	}
	if loop.PendingCount() != 1 {
		t.Fatalf("expected 1 pending callback, got %d", loop.PendingCount())
	}

	if n := loop.Advance(); n != 1 || order[2] != "c" {
		t.Fatalf("second Advance ran %d callbacks, order %v", n, order)
	}
	if n := loop.Advance(); n != 0 {
		t.Errorf("idle Advance ran %d callbacks", n)
	}
	if loop.Frames() != 2 {
		t.Errorf("Frames() = %d, want 2", loop.Frames())
	}
}

func TestFrameLoopCancel(t *testing.T) {
	loop := NewFrameLoop(800, 600)
	ran := false
	h := loop.RequestFrame(func() { ran = true })
	loop.CancelFrame(h)
	loop.CancelFrame(h)
	loop.CancelFrame(FrameHandle(999))

	loop.Advance()
	if ran {
		t.Error("cancelled callback ran")
	}
}

func TestFrameLoopHidden(t *testing.T) {
	loop := NewFrameLoop(800, 600)
	count := 0
	loop.RequestFrame(func() { count++ })

	loop.SetHidden(true)
	if n := loop.Advance(); n != 0 || count != 0 {
		t.Fatalf("hidden loop delivered %d frames", n)
	}

	loop.SetHidden(false)
	if n := loop.Advance(); n != 1 || count != 1 {
		t.Errorf("resumed loop delivered %d frames, count %d", n, count)
	}
}

func TestFrameLoopResizeListeners(t *testing.T) {
	loop := NewFrameLoop(800, 600)

	var got [][2]int
	remove := loop.AddResizeListener(func(w, h int) { got = append(got, [2]int{w, h}) })
	if loop.ListenerCount() != 1 {
		t.Fatalf("ListenerCount() = %d, want 1", loop.ListenerCount())
	}

	loop.SetViewport(800, 600) // 尺寸未变
	loop.SetViewport(1024, 768)
	if len(got) != 1 || got[0] != [2]int{1024, 768} {
		t.Fatalf("unexpected notifications: %v", got)
	}
	if w, h := loop.Viewport(); w != 1024 || h != 768 {
		t.Errorf("Viewport() = %dx%d", w, h)
	}

	other := loop.AddResizeListener(func(int, int) {})
	remove()
	remove()
	if loop.ListenerCount() != 1 {
		t.Errorf("double remove should drop exactly one listener, count = %d", loop.ListenerCount())
	}
	other()
	if loop.ListenerCount() != 0 {
		t.Errorf("ListenerCount() = %d, want 0", loop.ListenerCount())
	}

	loop.SetViewport(640, 480)
	if len(got) != 1 {
		t.Error("removed listener was notified")
	}
}
