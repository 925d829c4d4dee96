package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/fanmenu/pkg/app"
	"github.com/decker502/fanmenu/pkg/config"
)

var (
	verboseFlag   = flag.Bool("verbose", false, "Enable verbose logging")
	themeFlag     = flag.String("theme", "", "Built-in theme: "+strings.Join(config.BuiltinThemeNames(), ", "))
	themeFileFlag = flag.String("theme-file", "", "Path to a YAML theme file (overrides --theme)")
	muteFlag      = flag.Bool("mute", false, "Disable the toggle click sound")
)

func main() {
	flag.Parse()

	fanApp, err := app.NewApp(app.Config{
		Verbose:   *verboseFlag,
		Theme:     *themeFlag,
		ThemeFile: *themeFileFlag,
		Mute:      *muteFlag,
	})
	if err != nil {
		// 日志可能已被静默，错误直接输出到 stderr
		fmt.Fprintf(os.Stderr, "初始化失败: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetTPS(config.TargetFPS)

	// 窗口关闭或出错时都要卸载场景并保存设置
	runErr := ebiten.RunGame(fanApp)
	fanApp.Shutdown()
	if runErr != nil {
		log.Fatal(runErr)
	}
}
