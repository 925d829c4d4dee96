//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 仅在 -tags mobile 下编译，ebitenmobile 加载包时会调用 init()：
//
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.fanmenu -o build/android/fanmenu.aar ./mobile
//	ebitenmobile bind -target ios -tags mobile -o build/ios/FanMenu.xcframework ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/fanmenu/pkg/app"
)

func init() {
	// 移动端没有命令行参数，主题与音效来自已保存的偏好
	fanApp, err := app.NewApp(app.Config{Verbose: true})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	mobile.SetGame(fanApp)
}

// Dummy 空导出函数，确保包被 ebitenmobile 识别
func Dummy() {}
