package render

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// SampleGradient 在色标之间插值
//
// RGB 通道用 go-colorful 的 BlendRgb 混合，Alpha 线性插值。
// t 超出 [0, 1] 时取端点色标。
//
// 参数:
//   - stops: 按 Offset 升序排列的色标
//   - t: 归一化位置
//
// 返回:
//   - color.NRGBA: 插值颜色（无色标时为透明）
func SampleGradient(stops []GradientStop, t float64) color.NRGBA {
	if len(stops) == 0 {
		return color.NRGBA{}
	}
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if t >= last.Offset {
		return last.Color
	}

	for i := 1; i < len(stops); i++ {
		a, b := stops[i-1], stops[i]
		if t > b.Offset {
			continue
		}
		span := b.Offset - a.Offset
		if span <= 0 {
			return b.Color
		}
		return BlendNRGBA(a.Color, b.Color, (t-a.Offset)/span)
	}
	return last.Color
}

// BlendNRGBA 在两个颜色之间按 t 混合
func BlendNRGBA(a, b color.NRGBA, t float64) color.NRGBA {
	ca := toColorful(a)
	cb := toColorful(b)
	r, g, bl := ca.BlendRgb(cb, t).Clamped().RGB255()
	alpha := float64(a.A) + (float64(b.A)-float64(a.A))*t
	return color.NRGBA{R: r, G: g, B: bl, A: uint8(math.Round(alpha))}
}

// WithAlpha 返回按 factor 缩放 Alpha 后的颜色
func WithAlpha(c color.NRGBA, factor float64) color.NRGBA {
	if factor <= 0 {
		c.A = 0
		return c
	}
	if factor >= 1 {
		return c
	}
	c.A = uint8(math.Round(float64(c.A) * factor))
	return c
}

// gradientPosition 计算点在椭圆渐变中的归一化半径
// 返回值 > 1 表示在椭圆之外
func gradientPosition(g RadialGradient, x, y float64) float64 {
	if g.RadiusX <= 0 || g.RadiusY <= 0 {
		return math.Inf(1)
	}
	dx := x - g.CenterX
	dy := y - g.CenterY
	sin, cos := math.Sincos(-g.Rotation)
	lx := dx*cos - dy*sin
	ly := dx*sin + dy*cos
	u := lx / g.RadiusX
	v := ly / g.RadiusY
	return math.Sqrt(u*u + v*v)
}

// EllipsePoint 返回椭圆边上参数角 theta 处、归一化半径 t 处的点
func EllipsePoint(g RadialGradient, theta, t float64) (float64, float64) {
	lx := math.Cos(theta) * g.RadiusX * t
	ly := math.Sin(theta) * g.RadiusY * t
	sin, cos := math.Sincos(g.Rotation)
	return g.CenterX + lx*cos - ly*sin, g.CenterY + lx*sin + ly*cos
}

func toColorful(c color.NRGBA) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}
