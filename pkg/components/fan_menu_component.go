package components

import (
	"github.com/decker502/fanmenu/pkg/config"
	"github.com/decker502/fanmenu/pkg/fan"
)

// FanMenuComponent 扇形菜单组件（单例）
// 挂在菜单根实体上，持有菜单唯一的状态来源与固定参数
//
// 设计原则：
//   - 纯数据组件，状态转换由 FanInputSystem 驱动
//   - 子按钮样式都是 State 的派生值，不在此处缓存
type FanMenuComponent struct {
	// State 打开/关闭状态机
	State *fan.MenuState
	// Geometry 扇形几何参数
	Geometry fan.Geometry
	// Sequencer 交错阈值
	Sequencer fan.Sequencer
	// Theme 图标与配色
	Theme *config.Theme

	// HoveredChild 当前悬停的子按钮索引，-1 表示无
	HoveredChild int

	// OnToggle 状态切换回调（参数为切换后的 isOpen）
	OnToggle func(open bool)
	// OnSelect 子按钮点击回调
	OnSelect func(index int, icon string)
}
