package config

// 扇形菜单布局与动画常量
// 所有坐标使用屏幕坐标系（相对于窗口左上角），角度单位为度

// 窗口配置
const (
	// GameWindowWidth 逻辑屏幕宽度（像素）
	GameWindowWidth = 980

	// GameWindowHeight 逻辑屏幕高度（像素）
	GameWindowHeight = 600

	// WindowTitle 窗口标题
	WindowTitle = "Fan Menu"

	// TargetFPS 逻辑帧率，弹簧积分器按此步长推进
	TargetFPS = 60
)

// 主按钮与子按钮几何配置
const (
	// MainButtonDiameter 主按钮直径（像素）
	MainButtonDiameter = 90.0

	// ChildButtonDiameter 子按钮直径（像素）
	ChildButtonDiameter = 48.0

	// NumChildren 子按钮数量
	NumChildren = 7

	// MainButtonCenterX 主按钮中心 X 坐标
	MainButtonCenterX = 490.0

	// MainButtonCenterY 主按钮中心 Y 坐标
	MainButtonCenterY = 450.0

	// FlyOutRadius 子按钮展开后距主按钮中心的距离（像素）
	FlyOutRadius = 130.0

	// SeparationAngle 相邻子按钮之间的夹角（度）
	SeparationAngle = 40.0
)

// 子按钮收起/展开状态的视觉参数
const (
	// ChildCollapsedScale 收起状态缩放
	ChildCollapsedScale = 0.5

	// ChildExpandedScale 展开状态缩放
	ChildExpandedScale = 1.0

	// ChildCollapsedRotation 收起状态旋转角度
	ChildCollapsedRotation = -180.0

	// ChildExpandedRotation 展开状态旋转角度
	ChildExpandedRotation = 0.0

	// MainButtonOpenRotation 菜单打开时主按钮图标旋转角度
	MainButtonOpenRotation = 0.0

	// MainButtonClosedRotation 菜单关闭时主按钮图标旋转角度
	MainButtonClosedRotation = -135.0
)

// 交错动画配置
const (
	// StaggerOffset 前驱按钮需要越过的缩放阈值
	// 展开时：前驱缩放 >= ChildCollapsedScale + StaggerOffset
	// 收起时：前驱缩放 <= ChildExpandedScale - StaggerOffset
	StaggerOffset = 0.05
)

// 弹簧参数（质量为 1）
const (
	// ChildSpringStiffness 子按钮弹簧刚度
	ChildSpringStiffness = 400.0
	// ChildSpringDamping 子按钮弹簧阻尼
	ChildSpringDamping = 28.0

	// MainSpringStiffness 主按钮旋转弹簧刚度
	MainSpringStiffness = 500.0
	// MainSpringDamping 主按钮旋转弹簧阻尼
	MainSpringDamping = 30.0

	// SpringSettleEpsilon 判定弹簧收敛的误差阈值
	// 位置与速度均小于该值时直接吸附到目标值
	SpringSettleEpsilon = 0.001
)
