package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents one screen of the application (e.g., the fan menu demo).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Unmountable 是一个可选接口，场景被切换掉或程序退出时调用
//
// 用于释放场景挂载期间注册的监听（如扇形菜单的外部点击监听）
type Unmountable interface {
	Unmount()
}
