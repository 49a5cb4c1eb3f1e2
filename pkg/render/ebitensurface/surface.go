// Package ebitensurface 提供基于 ebiten 离屏图像的 render.Surface 实现
//
// 单独成包，终端和无头命令不需要链接 ebiten 的图形驱动。
package ebitensurface

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/herofx/pkg/render"
)

// 渐变网格细分参数
const (
	gradientRings    = 16
	gradientSegments = 48
)

var (
	whiteImageOnce sync.Once
	whiteSubImage  *ebiten.Image
)

// whitePixel 返回 1x1 白色纹理，DrawTriangles 的顶点颜色直接决定输出颜色
func whitePixel() *ebiten.Image {
	whiteImageOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSubImage
}

// Surface 基于 ebiten 离屏图像的绘制表面
//
// 圆和线段使用 ebiten/v2/vector；径向渐变构建为同心环三角网格，
// 由顶点颜色插值完成着色。
type Surface struct {
	image    *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

// New 创建离屏绘制表面
//
// ebiten 在图形驱动不可用时会 panic，这里恢复为 render.ErrSurfaceUnavailable，
// 保证宿主页面不会因装饰性动画而崩溃。
func New(width, height int) (s *Surface, err error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("surface %dx%d: %w", width, height, render.ErrSurfaceUnavailable)
	}

	defer func() {
		if r := recover(); r != nil {
			s = nil
			err = fmt.Errorf("ebiten image: %v: %w", r, render.ErrSurfaceUnavailable)
		}
	}()

	return &Surface{image: ebiten.NewImage(width, height)}, nil
}

// NewFactory 返回 SurfaceFactory
func NewFactory() render.SurfaceFactory {
	return func(width, height int) (render.Surface, error) {
		s, err := New(width, height)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
}

// Image 返回离屏图像，宿主在 Draw 中把它绘制到屏幕
func (s *Surface) Image() *ebiten.Image {
	return s.image
}

func (s *Surface) Size() (int, int) {
	b := s.image.Bounds()
	return b.Dx(), b.Dy()
}

func (s *Surface) Clear() {
	s.image.Clear()
}

func (s *Surface) FillCircle(cx, cy, r float64, clr color.NRGBA) {
	if r <= 0 || clr.A == 0 {
		return
	}
	vector.DrawFilledCircle(s.image, float32(cx), float32(cy), float32(r), clr, true)
}

func (s *Surface) StrokeLine(x0, y0, x1, y1, width float64, clr color.NRGBA) {
	if clr.A == 0 {
		return
	}
	vector.StrokeLine(s.image, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, true)
}

func (s *Surface) StrokePolyline(points []render.Point, width float64, clr color.NRGBA) {
	if clr.A == 0 {
		return
	}
	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		vector.StrokeLine(s.image, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(width), clr, true)
	}
}

// FillRadialGradient 以中心点 + gradientRings 个同心环构建三角网格
func (s *Surface) FillRadialGradient(g render.RadialGradient) {
	if g.RadiusX <= 0 || g.RadiusY <= 0 || len(g.Stops) == 0 {
		return
	}

	s.vertices = s.vertices[:0]
	s.indices = s.indices[:0]

	s.vertices = append(s.vertices, gradientVertex(g.CenterX, g.CenterY, render.SampleGradient(g.Stops, 0)))
	for ring := 1; ring <= gradientRings; ring++ {
		t := float64(ring) / gradientRings
		clr := render.SampleGradient(g.Stops, t)
		for seg := 0; seg < gradientSegments; seg++ {
			theta := 2 * math.Pi * float64(seg) / gradientSegments
			x, y := render.EllipsePoint(g, theta, t)
			s.vertices = append(s.vertices, gradientVertex(x, y, clr))
		}
	}

	ringStart := func(ring int) uint16 {
		return uint16(1 + (ring-1)*gradientSegments)
	}

	// 中心扇形
	for seg := 0; seg < gradientSegments; seg++ {
		next := (seg + 1) % gradientSegments
		s.indices = append(s.indices, 0, ringStart(1)+uint16(seg), ringStart(1)+uint16(next))
	}
	// 环间四边形
	for ring := 2; ring <= gradientRings; ring++ {
		inner := ringStart(ring - 1)
		outer := ringStart(ring)
		for seg := 0; seg < gradientSegments; seg++ {
			next := uint16((seg + 1) % gradientSegments)
			cur := uint16(seg)
			s.indices = append(s.indices,
				inner+cur, outer+cur, outer+next,
				inner+cur, outer+next, inner+next,
			)
		}
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	s.image.DrawTriangles(s.vertices, s.indices, whitePixel(), op)
}

// Present 离屏图像由宿主在 Draw 阶段提交
func (s *Surface) Present() {}

func gradientVertex(x, y float64, clr color.NRGBA) ebiten.Vertex {
	return ebiten.Vertex{
		DstX:   float32(x),
		DstY:   float32(y),
		SrcX:   1,
		SrcY:   1,
		ColorR: float32(clr.R) / 255,
		ColorG: float32(clr.G) / 255,
		ColorB: float32(clr.B) / 255,
		ColorA: float32(clr.A) / 255,
	}
}

var _ render.Surface = (*Surface)(nil)
