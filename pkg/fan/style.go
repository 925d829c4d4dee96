package fan

import "github.com/decker502/fanmenu/pkg/config"

// ButtonStyle 某一时刻按钮的视觉状态
// 动画过程中也用作弹簧的目标值
type ButtonStyle struct {
	Width  float64
	Height float64
	Top    float64
	Left   float64
	Rotate float64 // 度
	Scale  float64
}

// CenterX 按钮中心 X 坐标
func (s ButtonStyle) CenterX() float64 {
	return s.Left + s.Width/2
}

// CenterY 按钮中心 Y 坐标
func (s ButtonStyle) CenterY() float64 {
	return s.Top + s.Height/2
}

// Contains 判断点是否落在按钮的圆形区域内（考虑缩放）
func (s ButtonStyle) Contains(x, y float64) bool {
	r := s.Width / 2 * s.Scale
	dx := x - s.CenterX()
	dy := y - s.CenterY()
	return dx*dx+dy*dy <= r*r
}

// FrameStyles 一帧中全部子按钮的样式，按子按钮索引升序排列
type FrameStyles []ButtonStyle

// Clone 复制一帧
func (f FrameStyles) Clone() FrameStyles {
	out := make(FrameStyles, len(f))
	copy(out, f)
	return out
}

// Scales 提取每个按钮的缩放值
func (f FrameStyles) Scales() []float64 {
	scales := make([]float64, len(f))
	for i, s := range f {
		scales[i] = s.Scale
	}
	return scales
}

// CollapsedStyle 收起状态：子按钮居中叠放在主按钮中心
func (g Geometry) CollapsedStyle() ButtonStyle {
	return ButtonStyle{
		Width:  g.ChildDiameter,
		Height: g.ChildDiameter,
		Top:    g.CenterY - g.ChildDiameter/2,
		Left:   g.CenterX - g.ChildDiameter/2,
		Rotate: config.ChildCollapsedRotation,
		Scale:  config.ChildCollapsedScale,
	}
}

// ExpandedStyle 展开状态：第 index 个子按钮位于扇形弧上
func (g Geometry) ExpandedStyle(index int) (ButtonStyle, error) {
	if err := g.CheckIndex(index); err != nil {
		return ButtonStyle{}, err
	}
	return g.expandedStyle(index), nil
}

func (g Geometry) expandedStyle(index int) ButtonStyle {
	d := g.finalDelta(index)
	return ButtonStyle{
		Width:  g.ChildDiameter,
		Height: g.ChildDiameter,
		Top:    g.CenterY - d.DeltaY,
		Left:   g.CenterX + d.DeltaX,
		Rotate: config.ChildExpandedRotation,
		Scale:  config.ChildExpandedScale,
	}
}

// MainButtonStyle 主按钮的固定样式
func (g Geometry) MainButtonStyle() ButtonStyle {
	return ButtonStyle{
		Width:  g.MainDiameter,
		Height: g.MainDiameter,
		Top:    g.CenterY - g.MainDiameter/2,
		Left:   g.CenterX - g.MainDiameter/2,
		Scale:  1,
	}
}

// InitialFrame 挂载时的初始帧：所有子按钮处于收起状态
func (g Geometry) InitialFrame() FrameStyles {
	frame := make(FrameStyles, g.NumChildren)
	for i := range frame {
		frame[i] = g.CollapsedStyle()
	}
	return frame
}

// TargetFrame 给定菜单状态下每个子按钮的最终样式
func (g Geometry) TargetFrame(open bool) FrameStyles {
	if !open {
		return g.InitialFrame()
	}
	frame := make(FrameStyles, g.NumChildren)
	for i := range frame {
		frame[i] = g.expandedStyle(i)
	}
	return frame
}
