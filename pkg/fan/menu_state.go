package fan

import "github.com/decker502/fanmenu/pkg/config"

// State 菜单状态
type State int

const (
	// StateClosed 关闭（初始状态）
	StateClosed State = iota
	// StateOpen 打开
	StateOpen
)

// String 返回状态名称
func (s State) String() string {
	switch s {
	case StateClosed:
		return "CLOSED"
	case StateOpen:
		return "OPEN"
	default:
		return "UNKNOWN"
	}
}

// MenuState 菜单状态机
// 菜单的唯一状态来源，所有派生样式都是该布尔值的纯函数
//
// 转换：
//   - Toggle：CLOSED ⇄ OPEN（主按钮点击）
//   - Close：OPEN → CLOSED，已关闭时为空操作（外部点击）
type MenuState struct {
	isOpen bool
}

// NewMenuState 创建处于 CLOSED 状态的菜单
func NewMenuState() *MenuState {
	return &MenuState{}
}

// IsOpen 菜单是否打开
func (m *MenuState) IsOpen() bool {
	return m.isOpen
}

// State 当前状态
func (m *MenuState) State() State {
	if m.isOpen {
		return StateOpen
	}
	return StateClosed
}

// Toggle 切换打开/关闭，返回切换后的 isOpen
func (m *MenuState) Toggle() bool {
	m.isOpen = !m.isOpen
	return m.isOpen
}

// Close 关闭菜单，返回状态是否发生变化
func (m *MenuState) Close() bool {
	if !m.isOpen {
		return false
	}
	m.isOpen = false
	return true
}

// Transition 子按钮在一次状态切换中的起止样式
type Transition struct {
	Initial ButtonStyle
	Final   ButtonStyle
}

// StylesFor 返回第 index 个子按钮在给定状态下的起止样式
// 打开时从收起样式过渡到展开样式；关闭时相反
func (g Geometry) StylesFor(index int, open bool) (Transition, error) {
	expanded, err := g.ExpandedStyle(index)
	if err != nil {
		return Transition{}, err
	}
	collapsed := g.CollapsedStyle()

	if open {
		return Transition{Initial: collapsed, Final: expanded}, nil
	}
	return Transition{Initial: expanded, Final: collapsed}, nil
}

// MainButtonRotation 主按钮图标的目标旋转角度
func MainButtonRotation(open bool) float64 {
	if open {
		return config.MainButtonOpenRotation
	}
	return config.MainButtonClosedRotation
}
