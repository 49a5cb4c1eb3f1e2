package systems

import (
	"image/color"
	"math"

	"github.com/decker502/herofx/pkg/components"
	"github.com/decker502/herofx/pkg/render"
)

// Field rendering constants (径向模型背景层)
const (
	// GridDistortion 时空网格的扭曲强度
	GridDistortion = 100.0
	// GridDamping 网格位移阻尼
	GridDamping = 0.1

	gridSpacing   = 40.0
	gridSample    = 10.0
	gridLineWidth = 1.0

	// 吸积盘椭圆：长轴 = 1.8 × 吸积盘半径，短轴 = 0.35 × 长轴
	diskMajorFactor = 1.8
	diskFlattening  = 0.35

	// HotspotCount 吸积盘上的热点数量
	HotspotCount = 12
	// hotspotPhaseFactor 热点相位 = 2 × 旋转相位
	hotspotPhaseFactor = 2.0

	coreFactor    = 0.7
	lensingFactor = 2.0
)

var (
	gridColor    = color.NRGBA{R: 100, G: 120, B: 255, A: 38}
	horizonColor = color.NRGBA{R: 10, G: 8, B: 30, A: 255}
	coreColor    = color.NRGBA{A: 255}

	diskStops = []render.GradientStop{
		{Offset: 0, Color: color.NRGBA{R: 255, G: 160, B: 60, A: 230}},
		{Offset: 0.5, Color: color.NRGBA{R: 255, G: 235, B: 205, A: 140}},
		{Offset: 1, Color: color.NRGBA{R: 160, G: 100, B: 240, A: 25}},
	}

	lensingStops = []render.GradientStop{
		{Offset: 0, Color: color.NRGBA{R: 40, G: 20, B: 90, A: 150}},
		{Offset: 1, Color: color.NRGBA{R: 40, G: 20, B: 90, A: 0}},
	}
)

// FieldRenderSystem 绘制径向模型的非粒子背景
//
// 无状态：给定场景、旋转相位和随机源即可重绘一帧。
// 绘制顺序固定：网格 → 吸积盘（含热点）→ 事件视界 → 核心 → 引力透镜。
// 后绘制的层遮挡先绘制的层，粒子最后由 ParticleRenderSystem 绘制。
type FieldRenderSystem struct {
	GridSpacing float64
	GridSample  float64
	Distortion  float64
	Damping     float64
}

// NewFieldRenderSystem 创建使用默认参数的背景渲染系统
func NewFieldRenderSystem() *FieldRenderSystem {
	return &FieldRenderSystem{
		GridSpacing: gridSpacing,
		GridSample:  gridSample,
		Distortion:  GridDistortion,
		Damping:     GridDamping,
	}
}

// Draw 按固定顺序绘制全部背景层
func (fs *FieldRenderSystem) Draw(surface render.Surface, scene components.Scene, rotation float64, rng RandSource) {
	fs.DrawGrid(surface, scene)
	fs.DrawAccretionDisk(surface, scene, rotation, rng)
	fs.DrawEventHorizon(surface, scene)
	fs.DrawCore(surface, scene)
	fs.DrawLensing(surface, scene)
}

// Displace 返回网格采样点向中心弯曲后的位置
//
// displacement = distortion / (dist + distortion/10)，
// 偏移量 = 相对中心的偏移 × displacement × damping。
// displacement × damping 在 dist > 0 时小于 1，采样点不会越过中心。
//
// 参数:
//   - x, y: 直线上的原始采样点
//   - scene: 提供中心点
//
// 返回:
//   - 弯曲后的坐标
func (fs *FieldRenderSystem) Displace(x, y float64, scene components.Scene) (float64, float64) {
	if fs.Distortion <= 0 {
		return x, y
	}
	dx := x - scene.CenterX
	dy := y - scene.CenterY
	dist := math.Hypot(dx, dy)
	displacement := fs.Distortion / (dist + fs.Distortion/10)
	return x - dx*displacement*fs.Damping, y - dy*displacement*fs.Damping
}

// DrawGrid 绘制横竖两组弯曲的网格线
func (fs *FieldRenderSystem) DrawGrid(surface render.Surface, scene components.Scene) {
	if fs.GridSpacing <= 0 || fs.GridSample <= 0 {
		return
	}

	points := make([]render.Point, 0, int(math.Max(scene.Width, scene.Height)/fs.GridSample)+2)

	// 横线
	for y := 0.0; y <= scene.Height; y += fs.GridSpacing {
		points = points[:0]
		for x := 0.0; x <= scene.Width; x += fs.GridSample {
			px, py := fs.Displace(x, y, scene)
			points = append(points, render.Point{X: px, Y: py})
		}
		surface.StrokePolyline(points, gridLineWidth, gridColor)
	}

	// 竖线
	for x := 0.0; x <= scene.Width; x += fs.GridSpacing {
		points = points[:0]
		for y := 0.0; y <= scene.Height; y += fs.GridSample {
			px, py := fs.Displace(x, y, scene)
			points = append(points, render.Point{X: px, Y: py})
		}
		surface.StrokePolyline(points, gridLineWidth, gridColor)
	}
}

// DrawAccretionDisk 绘制旋转的扁平吸积盘和随机抖动的热点
func (fs *FieldRenderSystem) DrawAccretionDisk(surface render.Surface, scene components.Scene, rotation float64, rng RandSource) {
	disk := DiskGradient(scene, rotation)
	surface.FillRadialGradient(disk)

	for k := 0; k < HotspotCount; k++ {
		theta := float64(k)*2*math.Pi/HotspotCount + hotspotPhaseFactor*rotation
		r := uniform(rng, 0.55, 0.95)
		size := uniform(rng, 1.5, 3.0)
		alpha := uniform(rng, 180, 255)

		lx := math.Cos(theta) * disk.RadiusX * r
		ly := math.Sin(theta) * disk.RadiusY * r
		sin, cos := math.Sincos(rotation)
		x := scene.CenterX + lx*cos - ly*sin
		y := scene.CenterY + lx*sin + ly*cos

		surface.FillCircle(x, y, size, color.NRGBA{R: 255, G: 240, B: 200, A: uint8(alpha)})
	}
}

// DrawEventHorizon 绘制事件视界（纯色暗盘）
func (fs *FieldRenderSystem) DrawEventHorizon(surface render.Surface, scene components.Scene) {
	surface.FillCircle(scene.CenterX, scene.CenterY, scene.EventHorizonRadius, horizonColor)
}

// DrawCore 绘制黑洞核心（纯黑）
func (fs *FieldRenderSystem) DrawCore(surface render.Surface, scene components.Scene) {
	surface.FillCircle(scene.CenterX, scene.CenterY, scene.EventHorizonRadius*coreFactor, coreColor)
}

// DrawLensing 绘制引力透镜叠加层，半径为事件视界的两倍
func (fs *FieldRenderSystem) DrawLensing(surface render.Surface, scene components.Scene) {
	r := scene.EventHorizonRadius * lensingFactor
	surface.FillRadialGradient(render.RadialGradient{
		CenterX: scene.CenterX,
		CenterY: scene.CenterY,
		RadiusX: r,
		RadiusY: r,
		Stops:   lensingStops,
	})
}

// DiskGradient 返回给定旋转相位下的吸积盘渐变
func DiskGradient(scene components.Scene, rotation float64) render.RadialGradient {
	rx := scene.AccretionDiskRadius * diskMajorFactor
	return render.RadialGradient{
		CenterX:  scene.CenterX,
		CenterY:  scene.CenterY,
		RadiusX:  rx,
		RadiusY:  rx * diskFlattening,
		Rotation: rotation,
		Stops:    diskStops,
	}
}
