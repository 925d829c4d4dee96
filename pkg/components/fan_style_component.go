package components

import "github.com/decker502/fanmenu/pkg/utils"

// FanStyleComponent 子按钮的插值样式
// Spring.Current() 即当前帧的 ButtonStyle，也是下一帧交错计算的"上一帧"
type FanStyleComponent struct {
	Spring *utils.StyleSpring
}
