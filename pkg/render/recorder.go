package render

import "image/color"

// OpKind 绘制指令类型
type OpKind int

const (
	OpClear OpKind = iota
	OpCircle
	OpLine
	OpPolyline
	OpGradient
	OpPresent
)

// String 返回指令名称，便于测试输出
func (k OpKind) String() string {
	switch k {
	case OpClear:
		return "clear"
	case OpCircle:
		return "circle"
	case OpLine:
		return "line"
	case OpPolyline:
		return "polyline"
	case OpGradient:
		return "gradient"
	case OpPresent:
		return "present"
	default:
		return "unknown"
	}
}

// Op 一条被记录的绘制指令
type Op struct {
	Kind     OpKind
	X0, Y0   float64
	X1, Y1   float64
	Radius   float64
	Width    float64
	Color    color.NRGBA
	Points   []Point
	Gradient RadialGradient
}

// Recorder 记录绘制指令的 Surface 实现
//
// 不做任何光栅化，供测试断言绘制顺序和数量。
type Recorder struct {
	Width  int
	Height int
	Ops    []Op
}

// NewRecorder 创建指定尺寸的记录表面
func NewRecorder(width, height int) *Recorder {
	return &Recorder{Width: width, Height: height}
}

// RecorderFactory 返回总是创建新 Recorder 的工厂，并通过 last 暴露最近一次创建的实例
func RecorderFactory(last **Recorder) SurfaceFactory {
	return func(width, height int) (Surface, error) {
		if width <= 0 || height <= 0 {
			return nil, ErrSurfaceUnavailable
		}
		r := NewRecorder(width, height)
		if last != nil {
			*last = r
		}
		return r, nil
	}
}

func (r *Recorder) Size() (int, int) { return r.Width, r.Height }

func (r *Recorder) Clear() {
	r.Ops = append(r.Ops, Op{Kind: OpClear})
}

func (r *Recorder) FillCircle(cx, cy, radius float64, clr color.NRGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpCircle, X0: cx, Y0: cy, Radius: radius, Color: clr})
}

func (r *Recorder) StrokeLine(x0, y0, x1, y1, width float64, clr color.NRGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, X0: x0, Y0: y0, X1: x1, Y1: y1, Width: width, Color: clr})
}

func (r *Recorder) StrokePolyline(points []Point, width float64, clr color.NRGBA) {
	pts := make([]Point, len(points))
	copy(pts, points)
	r.Ops = append(r.Ops, Op{Kind: OpPolyline, Points: pts, Width: width, Color: clr})
}

func (r *Recorder) FillRadialGradient(g RadialGradient) {
	r.Ops = append(r.Ops, Op{Kind: OpGradient, Gradient: g})
}

func (r *Recorder) Present() {
	r.Ops = append(r.Ops, Op{Kind: OpPresent})
}

// Reset 丢弃已记录的指令
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// Count 统计指定类型的指令数量
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Filter 返回指定类型的指令（保持顺序）
func (r *Recorder) Filter(kind OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// IndexOf 返回第 n 个（从 0 开始）指定类型指令在记录中的下标，不存在返回 -1
func (r *Recorder) IndexOf(kind OpKind, n int) int {
	for i, op := range r.Ops {
		if op.Kind != kind {
			continue
		}
		if n == 0 {
			return i
		}
		n--
	}
	return -1
}
