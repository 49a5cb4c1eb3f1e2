package game

import (
	"log"

	"github.com/decker502/herofx/pkg/render"
)

// SchedulerState 调度器状态
type SchedulerState int

const (
	// StateStopped 未运行：不持有帧回调、监听器和表面
	StateStopped SchedulerState = iota
	// StateRunning 运行中：每次绘制推进一步
	StateRunning
)

func (s SchedulerState) String() string {
	switch s {
	case StateStopped:
		return "Stopped"
	case StateRunning:
		return "Running"
	default:
		return "Unknown"
	}
}

// FrameScheduler 驱动单个引擎的帧循环
//
// 是唯一的主动驱动者：帧由 FrameHost 投递，调度器在回调内同步完成
// 模拟、绘制和提交，然后预约下一帧。
type FrameScheduler struct {
	host    FrameHost
	engine  *Engine
	factory render.SurfaceFactory

	state   SchedulerState
	surface render.Surface

	pending    FrameHandle
	hasPending bool

	removeResize func()

	ticks   int
	skipped int
}

// NewFrameScheduler 创建调度器（初始为 Stopped）
//
// 参数:
//   - host: 帧时钟和视口来源
//   - engine: 被驱动的引擎
//   - factory: 绘制表面工厂
func NewFrameScheduler(host FrameHost, engine *Engine, factory render.SurfaceFactory) *FrameScheduler {
	return &FrameScheduler{
		host:    host,
		engine:  engine,
		factory: factory,
		state:   StateStopped,
	}
}

// Start 挂载引擎并预约第一帧
//
// 获取绘制表面失败时记录警告并保持 Stopped，不向调用方返回错误。
// 已经在运行时调用无效果。
func (fs *FrameScheduler) Start() {
	if fs.state == StateRunning {
		return
	}

	width, height := fs.engine.Config().CanvasSize(fs.host.Viewport())
	fs.engine.Mount(width, height)

	if !fs.engine.Scene().Degenerate() {
		surface, err := fs.factory(width, height)
		if err != nil {
			log.Printf("[FrameScheduler] Warning: Failed to acquire %dx%d surface: %v (animation disabled)", width, height, err)
			fs.engine.Unmount()
			return
		}
		fs.surface = surface
	}

	if fs.engine.Resizable() {
		fs.removeResize = fs.host.AddResizeListener(fs.handleResize)
	}

	fs.state = StateRunning
	fs.requestNext()
	log.Printf("[FrameScheduler] Started: %s model, canvas %dx%d", fs.engine.Model().Kind(), width, height)
}

// Stop 取消待执行的帧、注销监听器并卸载引擎
//
// 重复调用无效果。
func (fs *FrameScheduler) Stop() {
	if fs.state == StateStopped {
		return
	}

	if fs.hasPending {
		fs.host.CancelFrame(fs.pending)
		fs.hasPending = false
	}
	if fs.removeResize != nil {
		fs.removeResize()
		fs.removeResize = nil
	}

	fs.surface = nil
	fs.engine.Unmount()
	fs.state = StateStopped
	log.Printf("[FrameScheduler] Stopped after %d ticks (%d skipped)", fs.ticks, fs.skipped)
}

func (fs *FrameScheduler) requestNext() {
	fs.pending = fs.host.RequestFrame(fs.tick)
	fs.hasPending = true
}

func (fs *FrameScheduler) tick() {
	fs.hasPending = false
	if fs.state != StateRunning {
		return
	}
	fs.requestNext()

	// 失败的帧不绘制，已预约的下一帧照常执行
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[FrameScheduler] Warning: tick failed: %v (frame dropped)", r)
			fs.skipped++
		}
	}()

	if fs.surface == nil || fs.engine.Scene().Degenerate() {
		fs.skipped++
		return
	}

	fs.engine.Step()
	fs.engine.Render(fs.surface)
	fs.surface.Present()
	fs.ticks++
}

func (fs *FrameScheduler) handleResize(viewportWidth, viewportHeight int) {
	if fs.state != StateRunning {
		return
	}

	width, height := fs.engine.Config().CanvasSize(viewportWidth, viewportHeight)
	fs.engine.Resize(width, height)

	if fs.engine.Scene().Degenerate() {
		fs.surface = nil
		return
	}
	if fs.surface != nil {
		if w, h := fs.surface.Size(); w == width && h == height {
			return
		}
	}

	surface, err := fs.factory(width, height)
	if err != nil {
		log.Printf("[FrameScheduler] Warning: Failed to resize surface to %dx%d: %v", width, height, err)
		fs.surface = nil
		return
	}
	fs.surface = surface
}

// State 返回当前状态
func (fs *FrameScheduler) State() SchedulerState { return fs.state }

// Engine 返回被驱动的引擎
func (fs *FrameScheduler) Engine() *Engine { return fs.engine }

// Surface 返回当前绘制表面，未持有时为 nil
func (fs *FrameScheduler) Surface() render.Surface { return fs.surface }

// Ticks 返回实际绘制的帧数
func (fs *FrameScheduler) Ticks() int { return fs.ticks }

// Skipped 返回因退化尺寸或缺少表面而跳过的帧数
func (fs *FrameScheduler) Skipped() int { return fs.skipped }
