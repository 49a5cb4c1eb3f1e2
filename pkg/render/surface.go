// Package render 提供动画引擎绘制所需的二维表面抽象
//
// 引擎只依赖 Surface 接口，宿主决定具体实现：
//   - ebitensurface.Surface: 桌面窗口（ebiten，独立子包）
//   - RasterSurface: 无头光栅化（golang.org/x/image/vector），用于导出 PNG
//   - CellSurface:   终端字符单元（tcell）
//   - Recorder:      测试用，记录绘制指令
package render

import (
	"errors"
	"image/color"
)

// ErrSurfaceUnavailable 表示宿主无法提供二维绘制表面
// 引擎收到此错误后静默放弃初始化
var ErrSurfaceUnavailable = errors.New("2d drawing surface unavailable")

// Point 画布坐标点
type Point struct {
	X, Y float64
}

// GradientStop 渐变色标
// Offset ∈ [0, 1]，0 为中心，1 为边缘
type GradientStop struct {
	Offset float64
	Color  color.NRGBA
}

// RadialGradient 椭圆径向渐变填充
//
// RadiusX/RadiusY 相等时为圆形；Rotation 为椭圆长轴的旋转角（弧度）。
// 边缘之外不绘制。
type RadialGradient struct {
	CenterX  float64
	CenterY  float64
	RadiusX  float64
	RadiusY  float64
	Rotation float64
	Stops    []GradientStop
}

// Surface 二维绘制表面
//
// 引擎在挂载期间独占绘制权。所有方法只在一次帧回调内同步调用。
type Surface interface {
	// Size 返回画布逻辑尺寸
	Size() (width, height int)

	// Clear 清空为透明
	Clear()

	// FillCircle 填充圆
	FillCircle(cx, cy, r float64, clr color.NRGBA)

	// StrokeLine 绘制线段
	StrokeLine(x0, y0, x1, y1, width float64, clr color.NRGBA)

	// StrokePolyline 绘制折线（相邻点依次相连）
	StrokePolyline(points []Point, width float64, clr color.NRGBA)

	// FillRadialGradient 填充椭圆径向渐变
	FillRadialGradient(g RadialGradient)

	// Present 一帧绘制完成，提交给宿主显示
	Present()
}

// SurfaceFactory 按尺寸创建绘制表面
// 尺寸非正或环境不支持二维绘制时返回错误
type SurfaceFactory func(width, height int) (Surface, error)
