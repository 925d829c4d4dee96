package utils

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/decker502/fanmenu/pkg/config"
	"github.com/decker502/fanmenu/pkg/fan"
)

// Spring Physics (弹簧动画)
//
// 弹簧参数以刚度/阻尼（质量为 1）描述，内部换算为 harmonica 使用的
// 角频率与阻尼比：
//
//	ω = √k
//	ζ = c / (2√k)
//
// 每次 Step 推进固定的 1/FPS 秒。

// SpringConfig 弹簧参数
type SpringConfig struct {
	Stiffness float64 // 刚度 k
	Damping   float64 // 阻尼 c
}

// ChildSpringConfig 子按钮弹簧参数（400/28）
func ChildSpringConfig() SpringConfig {
	return SpringConfig{Stiffness: config.ChildSpringStiffness, Damping: config.ChildSpringDamping}
}

// MainSpringConfig 主按钮旋转弹簧参数（500/30）
func MainSpringConfig() SpringConfig {
	return SpringConfig{Stiffness: config.MainSpringStiffness, Damping: config.MainSpringDamping}
}

// AngularFrequency 角频率 ω
func (c SpringConfig) AngularFrequency() float64 {
	return math.Sqrt(c.Stiffness)
}

// DampingRatio 阻尼比 ζ
func (c SpringConfig) DampingRatio() float64 {
	return c.Damping / (2 * math.Sqrt(c.Stiffness))
}

// Spring 单个数值的弹簧
type Spring struct {
	spring   harmonica.Spring
	Value    float64
	Velocity float64
}

// NewSpring 创建弹簧，初始值为 initial、速度为 0
func NewSpring(cfg SpringConfig, fps int, initial float64) *Spring {
	return &Spring{
		spring: harmonica.NewSpring(harmonica.FPS(fps), cfg.AngularFrequency(), cfg.DampingRatio()),
		Value:  initial,
	}
}

// Step 朝 target 推进一帧并返回新值
// 位置误差与速度都小于 SpringSettleEpsilon 时吸附到 target
func (s *Spring) Step(target float64) float64 {
	s.Value, s.Velocity = s.spring.Update(s.Value, s.Velocity, target)
	if math.Abs(s.Value-target) < config.SpringSettleEpsilon && math.Abs(s.Velocity) < config.SpringSettleEpsilon {
		s.Value = target
		s.Velocity = 0
	}
	return s.Value
}

// Settled 是否已停在 target
func (s *Spring) Settled(target float64) bool {
	return s.Value == target && s.Velocity == 0
}

// SnapTo 直接跳到 value 并清零速度
func (s *Spring) SnapTo(value float64) {
	s.Value = value
	s.Velocity = 0
}

// StyleSpring 按钮样式弹簧
// Top/Left/Rotate/Scale 由弹簧驱动，Width/Height 直接取目标值
type StyleSpring struct {
	top    *Spring
	left   *Spring
	rotate *Spring
	scale  *Spring
	width  float64
	height float64
}

// NewStyleSpring 创建样式弹簧，初始样式为 initial
func NewStyleSpring(cfg SpringConfig, fps int, initial fan.ButtonStyle) *StyleSpring {
	return &StyleSpring{
		top:    NewSpring(cfg, fps, initial.Top),
		left:   NewSpring(cfg, fps, initial.Left),
		rotate: NewSpring(cfg, fps, initial.Rotate),
		scale:  NewSpring(cfg, fps, initial.Scale),
		width:  initial.Width,
		height: initial.Height,
	}
}

// Current 当前插值样式
func (s *StyleSpring) Current() fan.ButtonStyle {
	return fan.ButtonStyle{
		Width:  s.width,
		Height: s.height,
		Top:    s.top.Value,
		Left:   s.left.Value,
		Rotate: s.rotate.Value,
		Scale:  s.scale.Value,
	}
}

// Step 朝 target 推进一帧并返回新的插值样式
func (s *StyleSpring) Step(target fan.ButtonStyle) fan.ButtonStyle {
	s.width = target.Width
	s.height = target.Height
	s.top.Step(target.Top)
	s.left.Step(target.Left)
	s.rotate.Step(target.Rotate)
	s.scale.Step(target.Scale)
	return s.Current()
}

// Settled 所有分量是否都已停在 target
func (s *StyleSpring) Settled(target fan.ButtonStyle) bool {
	return s.width == target.Width &&
		s.height == target.Height &&
		s.top.Settled(target.Top) &&
		s.left.Settled(target.Left) &&
		s.rotate.Settled(target.Rotate) &&
		s.scale.Settled(target.Scale)
}

// SnapTo 直接跳到 style
func (s *StyleSpring) SnapTo(style fan.ButtonStyle) {
	s.width = style.Width
	s.height = style.Height
	s.top.SnapTo(style.Top)
	s.left.SnapTo(style.Left)
	s.rotate.SnapTo(style.Rotate)
	s.scale.SnapTo(style.Scale)
}
