package components

import "github.com/decker502/fanmenu/pkg/utils"

// FanMainButtonComponent 主按钮组件
// 主按钮位置固定，只有图标旋转角度由弹簧驱动
type FanMainButtonComponent struct {
	// Icon 主按钮字符
	Icon string
	// Rotation 图标旋转弹簧（度）
	Rotation *utils.Spring
}
