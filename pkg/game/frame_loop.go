package game

// FrameHandle identifies one requested frame callback.
// The zero handle is never issued.
type FrameHandle uint64

// FrameHost is the paint clock an engine is driven by.
//
// It mirrors a browser's requestAnimationFrame: a callback requested now
// runs once on the next paint, callbacks requested while a paint is running
// wait for the following one, and a hidden host delivers nothing.
type FrameHost interface {
	// RequestFrame schedules fn for the next paint.
	RequestFrame(fn func()) FrameHandle
	// CancelFrame drops a pending callback; unknown handles are ignored.
	CancelFrame(h FrameHandle)
	// Viewport returns the current viewport size in pixels.
	Viewport() (width, height int)
	// AddResizeListener registers fn for viewport changes and returns its remover.
	AddResizeListener(fn func(width, height int)) (remove func())
}

type pendingFrame struct {
	handle FrameHandle
	fn     func()
}

type resizeListener struct {
	id uint64
	fn func(width, height int)
}

// FrameLoop is a FrameHost driven by explicit Advance calls.
//
// The ebiten app advances it once per Draw, the terminal host on its ticker,
// the snapshot command in a plain loop and tests by hand. It is not safe for
// concurrent use.
type FrameLoop struct {
	width  int
	height int
	hidden bool

	nextHandle FrameHandle
	pending    []pendingFrame

	nextListener uint64
	listeners    []resizeListener

	frames int
}

// NewFrameLoop creates a loop with the given viewport size.
func NewFrameLoop(width, height int) *FrameLoop {
	return &FrameLoop{width: width, height: height}
}

func (l *FrameLoop) RequestFrame(fn func()) FrameHandle {
	l.nextHandle++
	l.pending = append(l.pending, pendingFrame{handle: l.nextHandle, fn: fn})
	return l.nextHandle
}

func (l *FrameLoop) CancelFrame(h FrameHandle) {
	for i, p := range l.pending {
		if p.handle == h {
			l.pending = append(l.pending[:i], l.pending[i+1:]...)
			return
		}
	}
}

func (l *FrameLoop) Viewport() (int, int) {
	return l.width, l.height
}

func (l *FrameLoop) AddResizeListener(fn func(width, height int)) func() {
	l.nextListener++
	id := l.nextListener
	l.listeners = append(l.listeners, resizeListener{id: id, fn: fn})

	removed := false
	return func() {
		if removed {
			return
		}
		removed = true
		for i, rl := range l.listeners {
			if rl.id == id {
				l.listeners = append(l.listeners[:i], l.listeners[i+1:]...)
				return
			}
		}
	}
}

// Advance runs one paint: every callback pending at call time runs once.
// It returns the number of callbacks run, 0 while hidden.
func (l *FrameLoop) Advance() int {
	if l.hidden || len(l.pending) == 0 {
		return 0
	}

	batch := l.pending
	l.pending = nil
	for _, p := range batch {
		p.fn()
	}
	l.frames++
	return len(batch)
}

// SetViewport changes the viewport and notifies resize listeners.
// Setting the current size again is a no-op.
func (l *FrameLoop) SetViewport(width, height int) {
	if width == l.width && height == l.height {
		return
	}
	l.width = width
	l.height = height

	listeners := make([]resizeListener, len(l.listeners))
	copy(listeners, l.listeners)
	for _, rl := range listeners {
		rl.fn(width, height)
	}
}

// SetHidden pauses (true) or resumes (false) frame delivery.
func (l *FrameLoop) SetHidden(hidden bool) {
	l.hidden = hidden
}

// Hidden reports whether frame delivery is paused.
func (l *FrameLoop) Hidden() bool {
	return l.hidden
}

// ListenerCount returns the number of registered resize listeners.
func (l *FrameLoop) ListenerCount() int {
	return len(l.listeners)
}

// PendingCount returns the number of callbacks waiting for the next paint.
func (l *FrameLoop) PendingCount() int {
	return len(l.pending)
}

// Frames returns how many paints delivered at least one callback.
func (l *FrameLoop) Frames() int {
	return l.frames
}
