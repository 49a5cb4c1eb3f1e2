package render

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

// cellRGB 单元格累积颜色（不透明，底色为黑）
type cellRGB struct {
	r, g, b float64
}

// CellSurface 终端字符单元表面
//
// 画布逻辑坐标按比例映射到 cols x rows 个单元格，每个单元格用背景色着色。
// 所有绘制先写入缓冲区，Present 时一次性提交给 tcell 屏幕。
type CellSurface struct {
	screen  tcell.Screen
	width   int
	height  int
	cols    int
	rows    int
	offsetX int
	offsetY int
	cells   []cellRGB
}

// NewCellSurface 创建终端表面
//
// 参数:
//   - screen: 已初始化的 tcell 屏幕
//   - width, height: 画布逻辑尺寸
//   - cols, rows: 占用的终端单元格数
//   - offsetX, offsetY: 左上角单元格位置
func NewCellSurface(screen tcell.Screen, width, height, cols, rows, offsetX, offsetY int) (*CellSurface, error) {
	if screen == nil || width <= 0 || height <= 0 || cols <= 0 || rows <= 0 {
		return nil, ErrSurfaceUnavailable
	}
	return &CellSurface{
		screen:  screen,
		width:   width,
		height:  height,
		cols:    cols,
		rows:    rows,
		offsetX: offsetX,
		offsetY: offsetY,
		cells:   make([]cellRGB, cols*rows),
	}, nil
}

// NewCellSurfaceFactory 返回把画布居中放入终端的 SurfaceFactory
//
// 终端单元格高约为宽的两倍，纵向按半比例映射以保持画面比例。
func NewCellSurfaceFactory(screen tcell.Screen) SurfaceFactory {
	return func(width, height int) (Surface, error) {
		if screen == nil {
			return nil, ErrSurfaceUnavailable
		}
		screenW, screenH := screen.Size()
		cols, rows := FitCells(width, height, screenW, screenH)
		s, err := NewCellSurface(screen, width, height, cols, rows, (screenW-cols)/2, (screenH-rows)/2)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
}

// FitCells 计算画布在终端中占用的单元格数
func FitCells(width, height, screenW, screenH int) (int, int) {
	if width <= 0 || height <= 0 || screenW <= 0 || screenH <= 0 {
		return 0, 0
	}
	scale := math.Min(float64(screenW)/float64(width), float64(screenH)*2/float64(height))
	cols := int(float64(width) * scale)
	rows := int(float64(height) * scale / 2)
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return cols, rows
}

func (s *CellSurface) Size() (int, int) { return s.width, s.height }

func (s *CellSurface) Clear() {
	for i := range s.cells {
		s.cells[i] = cellRGB{}
	}
}

func (s *CellSurface) FillCircle(cx, cy, r float64, clr color.NRGBA) {
	if clr.A == 0 {
		return
	}
	col, row := s.toCell(cx, cy)
	// 粒子通常小于一个单元格，至少着色中心单元格
	rc := int(r * float64(s.cols) / float64(s.width))
	rr := int(r * float64(s.rows) / float64(s.height))
	for dy := -rr; dy <= rr; dy++ {
		for dx := -rc; dx <= rc; dx++ {
			s.blend(col+dx, row+dy, clr)
		}
	}
}

func (s *CellSurface) StrokeLine(x0, y0, x1, y1, width float64, clr color.NRGBA) {
	if clr.A == 0 {
		return
	}
	c0, r0 := s.toCell(x0, y0)
	c1, r1 := s.toCell(x1, y1)
	steps := max(abs(c1-c0), abs(r1-r0))
	if steps == 0 {
		s.blend(c0, r0, clr)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		s.blend(
			c0+int(math.Round(float64(c1-c0)*t)),
			r0+int(math.Round(float64(r1-r0)*t)),
			clr,
		)
	}
}

func (s *CellSurface) StrokePolyline(points []Point, width float64, clr color.NRGBA) {
	for i := 1; i < len(points); i++ {
		s.StrokeLine(points[i-1].X, points[i-1].Y, points[i].X, points[i].Y, width, clr)
	}
}

func (s *CellSurface) FillRadialGradient(g RadialGradient) {
	if g.RadiusX <= 0 || g.RadiusY <= 0 || len(g.Stops) == 0 {
		return
	}
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			x, y := s.toCanvas(col, row)
			t := gradientPosition(g, x, y)
			if t > 1 {
				continue
			}
			s.blend(col, row, SampleGradient(g.Stops, t))
		}
	}
}

// Present 把缓冲区写入 tcell 屏幕并刷新
func (s *CellSurface) Present() {
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			c := s.cells[row*s.cols+col]
			bg := tcell.NewRGBColor(int32(c.r), int32(c.g), int32(c.b))
			s.screen.SetContent(s.offsetX+col, s.offsetY+row, ' ', nil, tcell.StyleDefault.Background(bg))
		}
	}
	s.screen.Show()
}

// CellColor 返回单元格当前颜色（测试与调试用）
func (s *CellSurface) CellColor(col, row int) (r, g, b uint8) {
	if col < 0 || row < 0 || col >= s.cols || row >= s.rows {
		return 0, 0, 0
	}
	c := s.cells[row*s.cols+col]
	return uint8(c.r), uint8(c.g), uint8(c.b)
}

// Cells 返回占用的单元格数
func (s *CellSurface) Cells() (cols, rows int) {
	return s.cols, s.rows
}

func (s *CellSurface) toCell(x, y float64) (int, int) {
	col := int(math.Floor(x * float64(s.cols) / float64(s.width)))
	row := int(math.Floor(y * float64(s.rows) / float64(s.height)))
	return col, row
}

func (s *CellSurface) toCanvas(col, row int) (float64, float64) {
	x := (float64(col) + 0.5) * float64(s.width) / float64(s.cols)
	y := (float64(row) + 0.5) * float64(s.height) / float64(s.rows)
	return x, y
}

// blend 按 Alpha 把颜色叠加到单元格上（source-over）
func (s *CellSurface) blend(col, row int, clr color.NRGBA) {
	if col < 0 || row < 0 || col >= s.cols || row >= s.rows {
		return
	}
	a := float64(clr.A) / 255
	c := &s.cells[row*s.cols+col]
	c.r = c.r*(1-a) + float64(clr.R)*a
	c.g = c.g*(1-a) + float64(clr.G)*a
	c.b = c.b*(1-a) + float64(clr.B)*a
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
