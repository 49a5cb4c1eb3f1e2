package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// 圆和椭圆的多边形近似段数
const (
	circleSegments  = 24
	ellipseSegments = 64
)

// RasterSurface 无头光栅化表面
//
// 使用 golang.org/x/image/vector 的扫描线光栅化器把路径覆盖率合成到 image.RGBA，
// 不依赖任何图形驱动，供快照导出和服务端渲染使用。
type RasterSurface struct {
	img *image.RGBA
	z   *vector.Rasterizer
}

// NewRasterSurface 创建光栅化表面
func NewRasterSurface(width, height int) (*RasterSurface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("surface %dx%d: %w", width, height, ErrSurfaceUnavailable)
	}
	return &RasterSurface{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
		z:   vector.NewRasterizer(width, height),
	}, nil
}

// NewRasterSurfaceFactory 返回 SurfaceFactory
func NewRasterSurfaceFactory() SurfaceFactory {
	return func(width, height int) (Surface, error) {
		s, err := NewRasterSurface(width, height)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
}

// Image 返回当前帧图像
func (s *RasterSurface) Image() *image.RGBA {
	return s.img
}

func (s *RasterSurface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *RasterSurface) Clear() {
	draw.Draw(s.img, s.img.Bounds(), image.Transparent, image.Point{}, draw.Src)
}

func (s *RasterSurface) FillCircle(cx, cy, r float64, clr color.NRGBA) {
	if r <= 0 || clr.A == 0 {
		return
	}
	s.begin()
	for i := 0; i <= circleSegments; i++ {
		theta := 2 * math.Pi * float64(i) / circleSegments
		x := float32(cx + math.Cos(theta)*r)
		y := float32(cy + math.Sin(theta)*r)
		if i == 0 {
			s.z.MoveTo(x, y)
		} else {
			s.z.LineTo(x, y)
		}
	}
	s.z.ClosePath()
	s.fill(image.NewUniform(clr))
}

func (s *RasterSurface) StrokeLine(x0, y0, x1, y1, width float64, clr color.NRGBA) {
	if clr.A == 0 {
		return
	}
	dx := x1 - x0
	dy := y1 - y0
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	// 法向量，线宽的一半
	nx := -dy / length * width / 2
	ny := dx / length * width / 2

	s.begin()
	s.z.MoveTo(float32(x0+nx), float32(y0+ny))
	s.z.LineTo(float32(x1+nx), float32(y1+ny))
	s.z.LineTo(float32(x1-nx), float32(y1-ny))
	s.z.LineTo(float32(x0-nx), float32(y0-ny))
	s.z.ClosePath()
	s.fill(image.NewUniform(clr))
}

func (s *RasterSurface) StrokePolyline(points []Point, width float64, clr color.NRGBA) {
	for i := 1; i < len(points); i++ {
		s.StrokeLine(points[i-1].X, points[i-1].Y, points[i].X, points[i].Y, width, clr)
	}
}

func (s *RasterSurface) FillRadialGradient(g RadialGradient) {
	if g.RadiusX <= 0 || g.RadiusY <= 0 || len(g.Stops) == 0 {
		return
	}
	s.begin()
	for i := 0; i <= ellipseSegments; i++ {
		theta := 2 * math.Pi * float64(i) / ellipseSegments
		x, y := EllipsePoint(g, theta, 1)
		if i == 0 {
			s.z.MoveTo(float32(x), float32(y))
		} else {
			s.z.LineTo(float32(x), float32(y))
		}
	}
	s.z.ClosePath()
	s.fill(&gradientImage{g: g, bounds: s.img.Bounds()})
}

// Present 帧图像已在 img 中，导出由调用方负责
func (s *RasterSurface) Present() {}

func (s *RasterSurface) begin() {
	b := s.img.Bounds()
	s.z.Reset(b.Dx(), b.Dy())
	s.z.DrawOp = draw.Over
}

func (s *RasterSurface) fill(src image.Image) {
	s.z.Draw(s.img, s.img.Bounds(), src, image.Point{})
}

// gradientImage 把 RadialGradient 暴露为 image.Image，逐像素采样
type gradientImage struct {
	g      RadialGradient
	bounds image.Rectangle
}

func (gi *gradientImage) ColorModel() color.Model { return color.NRGBAModel }

func (gi *gradientImage) Bounds() image.Rectangle { return gi.bounds }

func (gi *gradientImage) At(x, y int) color.Color {
	t := gradientPosition(gi.g, float64(x)+0.5, float64(y)+0.5)
	if t > 1 {
		return color.NRGBA{}
	}
	return SampleGradient(gi.g.Stops, t)
}
