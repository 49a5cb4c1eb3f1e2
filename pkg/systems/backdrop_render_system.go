package systems

import (
	"image/color"
	"math"

	"github.com/decker502/herofx/pkg/components"
	"github.com/decker502/herofx/pkg/render"
	"github.com/decker502/herofx/pkg/utils"
)

const (
	// BackdropSlideDistance 光晕入场时的初始下移距离（像素）
	BackdropSlideDistance = 48.0

	backdropGlowFactor = 0.42
)

var (
	backdropBase = []render.GradientStop{
		{Offset: 0, Color: color.NRGBA{R: 12, G: 14, B: 22, A: 255}},
		{Offset: 0.5, Color: color.NRGBA{R: 12, G: 14, B: 22, A: 255}},
		{Offset: 1, Color: color.NRGBA{R: 26, G: 36, B: 64, A: 255}},
	}
	backdropGlow = []render.GradientStop{
		{Offset: 0, Color: color.NRGBA{R: 80, G: 120, B: 255, A: 40}},
		{Offset: 1, Color: color.NRGBA{R: 80, G: 120, B: 255, A: 0}},
	}
)

// BackdropRenderSystem 绘制静态预设的背景图
//
// 底层是从左下角向右上角变亮的渐变；中央光晕在挂载后 FadeIn 秒内
// 以 EaseOutCubic 曲线淡入并上移到位，之后保持静止。
type BackdropRenderSystem struct {
	FadeIn float64
	Slide  float64
}

// NewBackdropRenderSystem 创建背景渲染系统
func NewBackdropRenderSystem(fadeIn float64) *BackdropRenderSystem {
	return &BackdropRenderSystem{FadeIn: fadeIn, Slide: BackdropSlideDistance}
}

// Progress 返回入场动画进度（已缓动，∈ [0, 1]）
func (bs *BackdropRenderSystem) Progress(elapsed float64) float64 {
	if bs.FadeIn <= 0 {
		return 1
	}
	return utils.EaseOutCubic(utils.Clamp01(elapsed / bs.FadeIn))
}

// Draw 绘制背景，elapsed 为挂载后经过的秒数
func (bs *BackdropRenderSystem) Draw(surface render.Surface, scene components.Scene, elapsed float64) {
	diagonal := math.Hypot(scene.Width, scene.Height) * 1.05
	surface.FillRadialGradient(render.RadialGradient{
		CenterX: 0,
		CenterY: scene.Height,
		RadiusX: diagonal,
		RadiusY: diagonal,
		Stops:   backdropBase,
	})

	progress := bs.Progress(elapsed)
	if progress <= 0 {
		return
	}

	glow := make([]render.GradientStop, len(backdropGlow))
	for i, stop := range backdropGlow {
		glow[i] = render.GradientStop{Offset: stop.Offset, Color: render.WithAlpha(stop.Color, progress)}
	}

	r := math.Min(scene.Width, scene.Height) * backdropGlowFactor
	surface.FillRadialGradient(render.RadialGradient{
		CenterX: scene.CenterX,
		CenterY: scene.CenterY + utils.Lerp(bs.Slide, 0, progress),
		RadiusX: r,
		RadiusY: r,
		Stops:   glow,
	})
}
