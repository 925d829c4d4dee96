// Package fan 实现浮动操作按钮（FAB）扇形菜单的核心逻辑
//
// 包含三部分：
//   - 布局计算：子按钮在扇形弧上的目标偏移（纯三角函数）
//   - 菜单状态机：打开/关闭两种状态以及每个子按钮的起止样式
//   - 交错序列器：逐帧决定哪些子按钮可以朝目标样式移动，形成依次展开/收起的效果
//
// 本包不负责弹簧积分与渲染，只输出目标样式与放行决策。
// 所有函数都是纯函数，可在无窗口环境下使用。
package fan

import (
	"errors"
	"fmt"
	"math"

	"github.com/decker502/fanmenu/pkg/config"
)

// ErrIndexOutOfRange 子按钮索引超出 [0, N)
var ErrIndexOutOfRange = errors.New("child index out of range")

// ErrInvalidGeometry 几何参数不合法
var ErrInvalidGeometry = errors.New("invalid geometry")

// Geometry 扇形菜单的固定几何参数
type Geometry struct {
	MainDiameter    float64 // 主按钮直径
	ChildDiameter   float64 // 子按钮直径
	NumChildren     int     // 子按钮数量
	CenterX         float64 // 主按钮中心 X
	CenterY         float64 // 主按钮中心 Y
	FlyOutRadius    float64 // 展开半径
	SeparationAngle float64 // 相邻子按钮夹角（度）
}

// Delta 子按钮展开后相对主按钮中心的偏移
type Delta struct {
	DeltaX float64
	DeltaY float64
}

// DefaultGeometry 返回默认几何配置
func DefaultGeometry() Geometry {
	return Geometry{
		MainDiameter:    config.MainButtonDiameter,
		ChildDiameter:   config.ChildButtonDiameter,
		NumChildren:     config.NumChildren,
		CenterX:         config.MainButtonCenterX,
		CenterY:         config.MainButtonCenterY,
		FlyOutRadius:    config.FlyOutRadius,
		SeparationAngle: config.SeparationAngle,
	}
}

// Validate 检查几何参数
func (g Geometry) Validate() error {
	if g.NumChildren < 1 {
		return fmt.Errorf("%w: NumChildren must be >= 1, got %d", ErrInvalidGeometry, g.NumChildren)
	}
	if g.ChildDiameter <= 0 || g.MainDiameter <= 0 {
		return fmt.Errorf("%w: diameters must be positive", ErrInvalidGeometry)
	}
	return nil
}

// FanAngle 整个扇形的张角（度）
func (g Geometry) FanAngle() float64 {
	return float64(g.NumChildren-1) * g.SeparationAngle
}

// BaseAngle 第 0 个子按钮的角度（度），使扇形关于 90° 对称
func (g Geometry) BaseAngle() float64 {
	return (180 - g.FanAngle()) / 2
}

// Angle 返回第 index 个子按钮的角度（度）
func (g Geometry) Angle(index int) float64 {
	return g.BaseAngle() + float64(index)*g.SeparationAngle
}

// CheckIndex 校验子按钮索引
func (g Geometry) CheckIndex(index int) error {
	if index < 0 || index >= g.NumChildren {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, g.NumChildren)
	}
	return nil
}

// FinalDelta 计算第 index 个子按钮展开后的偏移
//
// 公式：
//
//	deltaX = R·cos(angle) − d/2
//	deltaY = R·sin(angle) + d/2
//
// 加减半个子按钮直径，使按钮中心（而不是左上角）落在弧上
func (g Geometry) FinalDelta(index int) (Delta, error) {
	if err := g.CheckIndex(index); err != nil {
		return Delta{}, err
	}
	return g.finalDelta(index), nil
}

func (g Geometry) finalDelta(index int) Delta {
	angle := toRadians(g.Angle(index))
	return Delta{
		DeltaX: g.FlyOutRadius*math.Cos(angle) - g.ChildDiameter/2,
		DeltaY: g.FlyOutRadius*math.Sin(angle) + g.ChildDiameter/2,
	}
}

// FinalDelta 使用默认几何配置计算偏移
func FinalDelta(index int) (Delta, error) {
	return DefaultGeometry().FinalDelta(index)
}

func toRadians(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}
