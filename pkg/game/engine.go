package game

import (
	"fmt"

	"github.com/decker502/herofx/pkg/components"
	"github.com/decker502/herofx/pkg/config"
	"github.com/decker502/herofx/pkg/render"
	"github.com/decker502/herofx/pkg/systems"
)

// FrameDuration 每个模拟步对应的时长（秒）
//
// 粒子按"每帧"移动而不是按真实时间；静态预设的入场动画用步数乘以该值换算时间。
const FrameDuration = 1.0 / 60.0

// Engine 单个预设的模拟与渲染核心
//
// 持有场景、粒子存储和运动模型，由 FrameScheduler 在每个 tick 内同步调用。
// Engine 不会自行计时，也不持有绘制表面。
type Engine struct {
	cfg   config.SceneConfig
	rng   systems.RandSource
	model systems.MotionModel

	scene     components.Scene
	particles []components.Particle
	mounted   bool
	seeded    bool

	rotation    float64
	steps       int
	connections int

	field    *systems.FieldRenderSystem
	links    *systems.ConnectionRenderSystem
	dots     *systems.ParticleRenderSystem
	backdrop *systems.BackdropRenderSystem
}

// NewEngine 根据场景配置创建引擎
//
// 参数:
//   - cfg: 场景配置（会先做验证）
//   - rng: 均匀随机源，用于初始化、重生和热点抖动
//
// 返回:
//   - *Engine: 尚未挂载的引擎
//   - error: 配置无效时返回错误
func NewEngine(cfg config.SceneConfig, rng systems.RandSource) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene config: %w", err)
	}
	if rng == nil {
		return nil, fmt.Errorf("engine needs a random source")
	}

	model, err := systems.NewMotionModel(cfg.Model)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:   cfg,
		rng:   rng,
		model: model,
		dots:  systems.NewParticleRenderSystem(model),
	}

	switch cfg.Model {
	case config.MotionRadial:
		e.field = systems.NewFieldRenderSystem()
	case config.MotionStatic:
		e.backdrop = systems.NewBackdropRenderSystem(cfg.FadeInSeconds)
	}
	if cfg.ConnectionThreshold > 0 {
		e.links = systems.NewConnectionRenderSystem(cfg.ConnectionThreshold)
	}

	return e, nil
}

// Mount 在给定画布尺寸上建立场景并初始化粒子
//
// 退化尺寸（宽或高 <= 0）下不初始化粒子，等到 Resize 得到有效尺寸后再初始化。
func (e *Engine) Mount(width, height int) {
	e.scene = components.NewScene(width, height, e.cfg.EventHorizonRadius, e.cfg.AccretionDiskRadius)
	e.particles = nil
	e.seeded = false
	e.rotation = 0
	e.steps = 0
	e.connections = 0
	e.mounted = true
	e.seed()
}

// Resize 替换场景（仅可变尺寸预设）
//
// 已有粒子保留原位置，下一次越界时按新尺寸重生。
func (e *Engine) Resize(width, height int) {
	if !e.mounted || !e.Resizable() {
		return
	}
	e.scene = components.NewScene(width, height, e.cfg.EventHorizonRadius, e.cfg.AccretionDiskRadius)
	e.seed()
}

// Unmount 丢弃场景和粒子
func (e *Engine) Unmount() {
	e.mounted = false
	e.seeded = false
	e.particles = nil
	e.scene = components.Scene{}
}

func (e *Engine) seed() {
	if e.seeded || e.scene.Degenerate() {
		return
	}
	e.particles = systems.InitializeParticles(e.model, e.cfg.ParticleCount, e.scene, e.rng)
	e.seeded = true
}

// Step 推进一帧：更新全部粒子并推进吸积盘旋转相位
func (e *Engine) Step() {
	if !e.mounted || e.scene.Degenerate() {
		return
	}
	systems.UpdateParticles(e.model, e.particles, e.scene, e.rng)
	e.rotation += e.cfg.RotationStep
	e.steps++
}

// Render 清空表面并按固定顺序绘制全部图层
//
// 径向：网格 → 吸积盘 → 事件视界 → 核心 → 透镜 → 粒子
// 漂移：粒子 → 连线
// 静态：背景图
func (e *Engine) Render(surface render.Surface) {
	surface.Clear()
	if !e.mounted || e.scene.Degenerate() {
		return
	}

	if e.field != nil {
		e.field.Draw(surface, e.scene, e.rotation, e.rng)
	}
	if e.backdrop != nil {
		e.backdrop.Draw(surface, e.scene, e.Elapsed())
	}
	e.dots.Draw(surface, e.particles, e.scene)
	if e.links != nil {
		e.connections = e.links.Draw(surface, e.particles)
	}
}

// Mounted 是否已挂载
func (e *Engine) Mounted() bool { return e.mounted }

// Resizable 是否随视口调整画布尺寸
func (e *Engine) Resizable() bool { return !e.cfg.FixedSize }

// Config 返回引擎的场景配置
func (e *Engine) Config() config.SceneConfig { return e.cfg }

// Model 返回运动模型
func (e *Engine) Model() systems.MotionModel { return e.model }

// Scene 返回当前场景
func (e *Engine) Scene() components.Scene { return e.scene }

// Particles 返回粒子存储（调用方不应修改）
func (e *Engine) Particles() []components.Particle { return e.particles }

// Rotation 返回吸积盘当前旋转相位
func (e *Engine) Rotation() float64 { return e.rotation }

// Steps 返回挂载后执行的模拟步数
func (e *Engine) Steps() int { return e.steps }

// Elapsed 返回挂载后经过的模拟时间（秒）
func (e *Engine) Elapsed() float64 { return float64(e.steps) * FrameDuration }

// Connections 返回上一帧绘制的连线数
func (e *Engine) Connections() int { return e.connections }
