// Package app 提供扇形菜单应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来：日志、设置存储、主题解析、
// 音频上下文和场景管理器都在 NewApp 中完成。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/fanmenu/pkg/config"
	"github.com/decker502/fanmenu/pkg/game"
	"github.com/decker502/fanmenu/pkg/scenes"
	"github.com/decker502/fanmenu/pkg/utils"
)

// StorageAppName gdata 存储使用的应用名
const StorageAppName = "fanmenu"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Theme 内置主题名称，为空则使用存储的偏好
	Theme string
	// ThemeFile YAML 主题文件路径，优先级高于 Theme
	ThemeFile string
	// Mute 关闭点击音效（会写入偏好设置）
	Mute bool
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
}

// NewApp 创建并初始化应用
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 存储打开失败时以降级模式运行
	storage, err := game.OpenStorage(StorageAppName)
	if err != nil {
		log.Printf("[App] Warning: %v (settings will not persist)", err)
	}
	settingsManager, err := game.NewSettingsManager(storage)
	if err != nil {
		return nil, fmt.Errorf("设置初始化失败: %w", err)
	}

	theme, err := resolveTheme(cfg, settingsManager)
	if err != nil {
		return nil, fmt.Errorf("主题加载失败: %w", err)
	}
	log.Printf("[App] Using theme %q", theme.Name)

	if cfg.Mute {
		settingsManager.SetSoundEnabled(false)
	}
	if err := settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}

	audioManager := game.NewAudioManager(audio.NewContext(game.SampleRate), settingsManager)

	scene, err := scenes.NewFanMenuScene(theme, audioManager, utils.EbitenPointer{})
	if err != nil {
		return nil, fmt.Errorf("场景创建失败: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scene)

	if !utils.IsMobile() && settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
	}, nil
}

// resolveTheme 按 ThemeFile > Theme > 已保存偏好 的顺序选择主题
// 命令行指定的内置主题会写回偏好设置
func resolveTheme(cfg Config, sm *game.SettingsManager) (*config.Theme, error) {
	if cfg.ThemeFile != "" {
		return config.LoadThemeFile(cfg.ThemeFile, config.NumChildren)
	}

	if cfg.Theme != "" {
		theme, err := config.BuiltinTheme(cfg.Theme)
		if err != nil {
			return nil, err
		}
		sm.SetTheme(cfg.Theme)
		return theme, nil
	}

	theme, err := config.BuiltinTheme(sm.GetSettings().Theme)
	if err != nil {
		// 保存的主题名已失效，回退到默认主题
		log.Printf("[App] Warning: %v, falling back to %q", err, config.DefaultThemeName)
		sm.SetTheme(config.DefaultThemeName)
		return config.BuiltinTheme(config.DefaultThemeName)
	}
	return theme, nil
}

// Update 更新逻辑，每个 tick 调用一次（60 TPS）
func (a *App) Update() error {
	// F11 切换全屏（移动端始终全屏，没有键盘）
	if !utils.IsMobile() && inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		fullscreen := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(fullscreen)
		a.settingsManager.SetFullscreen(fullscreen)
	}

	a.sceneManager.Update(1.0 / float64(config.TargetFPS))
	return nil
}

// Draw 绘制画面，每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Shutdown 卸载场景并保存偏好设置
func (a *App) Shutdown() {
	a.sceneManager.Shutdown()
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings on exit: %v", err)
	}
}
