package scenes

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/fanmenu/pkg/components"
	"github.com/decker502/fanmenu/pkg/config"
	"github.com/decker502/fanmenu/pkg/ecs"
	"github.com/decker502/fanmenu/pkg/entities"
	"github.com/decker502/fanmenu/pkg/fan"
	"github.com/decker502/fanmenu/pkg/game"
	"github.com/decker502/fanmenu/pkg/systems"
	"github.com/decker502/fanmenu/pkg/utils"
)

// FanMenuScene 扇形菜单场景
//
// 生命周期：
//   - 创建时菜单为 CLOSED，输入系统挂载外部点击监听
//   - 每帧依次执行输入 → 动画，Draw 时渲染
//   - Unmount 时卸载外部点击监听
type FanMenuScene struct {
	entityManager *ecs.EntityManager
	menu          entities.FanMenuEntities

	inputSystem     *systems.FanInputSystem
	animationSystem *systems.FanAnimationSystem
	renderSystem    *systems.FanRenderSystem
}

// NewFanMenuScene 创建扇形菜单场景
//
// 参数：
//   - theme: 图标与配色
//   - audioManager: 切换提示音，可为 nil
//   - pointer: 指针输入来源
func NewFanMenuScene(theme *config.Theme, audioManager *game.AudioManager, pointer utils.PointerSource) (*FanMenuScene, error) {
	em := ecs.NewEntityManager()

	menu, err := entities.NewFanMenu(em, fan.DefaultGeometry(), theme)
	if err != nil {
		return nil, fmt.Errorf("failed to create fan menu: %w", err)
	}

	renderSystem, err := systems.NewFanRenderSystem(em, menu.Menu)
	if err != nil {
		return nil, err
	}

	menuComp, _ := ecs.GetComponent[*components.FanMenuComponent](em, menu.Menu)
	menuComp.OnToggle = func(open bool) {
		if audioManager != nil {
			audioManager.PlayToggle(open)
		}
	}
	menuComp.OnSelect = func(index int, icon string) {
		log.Printf("[FanMenuScene] Selected child %d (%s)", index, icon)
	}

	s := &FanMenuScene{
		entityManager:   em,
		menu:            menu,
		inputSystem:     systems.NewFanInputSystem(em, menu.Menu, pointer),
		animationSystem: systems.NewFanAnimationSystem(em, menu.Menu),
		renderSystem:    renderSystem,
	}
	s.inputSystem.Attach()

	log.Printf("[FanMenuScene] Mounted with theme %q (%d children)", theme.Name, len(menu.Children))
	return s, nil
}

// Update 更新输入与动画
func (s *FanMenuScene) Update(deltaTime float64) {
	s.inputSystem.Update(deltaTime)
	s.animationSystem.Update(deltaTime)
}

// Draw 渲染菜单
func (s *FanMenuScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen)
}

// Unmount 卸载外部点击监听
func (s *FanMenuScene) Unmount() {
	s.inputSystem.Detach()
	log.Printf("[FanMenuScene] Unmounted")
}

// IsOpen 菜单当前是否打开
func (s *FanMenuScene) IsOpen() bool {
	menu, ok := ecs.GetComponent[*components.FanMenuComponent](s.entityManager, s.menu.Menu)
	return ok && menu.State.IsOpen()
}

// IsAnimating 是否仍有按钮在运动
func (s *FanMenuScene) IsAnimating() bool {
	return !s.animationSystem.Settled()
}
