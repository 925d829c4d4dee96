package components

// FanChildComponent 子按钮组件
// Index 决定其在扇形中的位置与交错顺序
type FanChildComponent struct {
	// Index 子按钮索引 [0, N)
	Index int
	// Icon 按钮上显示的字符
	Icon string
}
