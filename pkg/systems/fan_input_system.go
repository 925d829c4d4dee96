package systems

import (
	"log"

	"github.com/decker502/fanmenu/pkg/components"
	"github.com/decker502/fanmenu/pkg/ecs"
	"github.com/decker502/fanmenu/pkg/utils"
)

// ClickAction 一次点击产生的菜单动作
type ClickAction int

const (
	// ClickNone 点击未改变菜单
	ClickNone ClickAction = iota
	// ClickToggle 点击主按钮，切换打开/关闭
	ClickToggle
	// ClickSelect 点击了可见的子按钮（随后菜单关闭）
	ClickSelect
	// ClickClose 点击菜单外部，菜单关闭
	ClickClose
)

// String 返回动作名称
func (a ClickAction) String() string {
	switch a {
	case ClickToggle:
		return "toggle"
	case ClickSelect:
		return "select"
	case ClickClose:
		return "close"
	default:
		return "none"
	}
}

// FanInputSystem 扇形菜单输入系统
//
// 职责：
//   - 主按钮点击：Toggle，并消费该事件（不再触发外部点击的 Close）
//   - 打开状态下点击子按钮：触发 OnSelect 回调，然后关闭菜单
//   - 其他位置点击：Close（已关闭时为空操作）
//   - 每帧更新主按钮/子按钮的悬停状态，被点中的按钮在点击当帧为按下状态
//
// Attach/Detach 对应菜单的挂载与卸载；卸载后忽略所有点击。
type FanInputSystem struct {
	entityManager *ecs.EntityManager
	menuEntity    ecs.EntityID
	pointer       utils.PointerSource
	attached      bool
}

// NewFanInputSystem 创建输入系统（初始为未挂载状态）
func NewFanInputSystem(em *ecs.EntityManager, menuEntity ecs.EntityID, pointer utils.PointerSource) *FanInputSystem {
	return &FanInputSystem{
		entityManager: em,
		menuEntity:    menuEntity,
		pointer:       pointer,
	}
}

// Attach 挂载外部点击监听
func (s *FanInputSystem) Attach() {
	s.attached = true
}

// Detach 卸载外部点击监听
func (s *FanInputSystem) Detach() {
	s.attached = false
}

// IsAttached 是否已挂载
func (s *FanInputSystem) IsAttached() bool {
	return s.attached
}

// Update 读取指针输入并分发
func (s *FanInputSystem) Update(deltaTime float64) {
	if !s.attached || s.pointer == nil {
		return
	}

	x, y := s.pointer.Position()
	s.UpdateHover(float64(x), float64(y))

	if pressed, px, py := s.pointer.JustPressed(); pressed {
		s.HandleClick(float64(px), float64(py))
	}
}

// HandleClick 处理一次点击
//
// 参数：
//   - x, y: 点击位置（屏幕坐标）
//
// 返回：
//   - ClickAction: 本次点击产生的动作
func (s *FanInputSystem) HandleClick(x, y float64) ClickAction {
	if !s.attached {
		return ClickNone
	}

	menu, ok := ecs.GetComponent[*components.FanMenuComponent](s.entityManager, s.menuEntity)
	if !ok {
		return ClickNone
	}

	// 主按钮点击在此处结束传播，同一次点击不会再触发 Close
	if menu.Geometry.MainButtonStyle().Contains(x, y) {
		open := menu.State.Toggle()
		s.markMainPressed()
		log.Printf("[FanInputSystem] Main button clicked, menu %s", menu.State.State())
		if menu.OnToggle != nil {
			menu.OnToggle(open)
		}
		return ClickToggle
	}

	if menu.State.IsOpen() {
		if id, index, icon, hit := s.childAt(x, y); hit {
			setUIState(s.entityManager, id, components.UIClicked)
			log.Printf("[FanInputSystem] Child %d (%s) selected", index, icon)
			if menu.OnSelect != nil {
				menu.OnSelect(index, icon)
			}
			s.close(menu)
			return ClickSelect
		}
	}

	if s.close(menu) {
		return ClickClose
	}
	return ClickNone
}

// close 执行外部点击的关闭转换
func (s *FanInputSystem) close(menu *components.FanMenuComponent) bool {
	if !menu.State.Close() {
		return false
	}
	log.Printf("[FanInputSystem] Menu closed")
	if menu.OnToggle != nil {
		menu.OnToggle(false)
	}
	return true
}

// childAt 查找点击位置下的子按钮
// 多个子按钮重叠时取索引最大的（最后绘制、位于最上层）
func (s *FanInputSystem) childAt(x, y float64) (ecs.EntityID, int, string, bool) {
	var entity ecs.EntityID
	index, icon, hit := -1, "", false

	entities := ecs.GetEntitiesWith2[*components.FanChildComponent, *components.FanStyleComponent](s.entityManager)
	for _, id := range entities {
		child, _ := ecs.GetComponent[*components.FanChildComponent](s.entityManager, id)
		style, _ := ecs.GetComponent[*components.FanStyleComponent](s.entityManager, id)

		if style.Spring.Current().Contains(x, y) && child.Index > index {
			entity, index, icon, hit = id, child.Index, child.Icon, true
		}
	}
	return entity, index, icon, hit
}

// markMainPressed 主按钮进入按下状态，下一帧 UpdateHover 会恢复
func (s *FanInputSystem) markMainPressed() {
	for _, id := range ecs.GetEntitiesWith1[*components.FanMainButtonComponent](s.entityManager) {
		setUIState(s.entityManager, id, components.UIClicked)
	}
}

func setUIState(em *ecs.EntityManager, id ecs.EntityID, state components.UIState) {
	if ui, ok := ecs.GetComponent[*components.UIComponent](em, id); ok {
		ui.State = state
	}
}

// UpdateHover 根据指针位置更新悬停状态
func (s *FanInputSystem) UpdateHover(x, y float64) {
	menu, ok := ecs.GetComponent[*components.FanMenuComponent](s.entityManager, s.menuEntity)
	if !ok {
		return
	}

	menu.HoveredChild = -1
	if menu.State.IsOpen() {
		if _, index, _, hit := s.childAt(x, y); hit {
			menu.HoveredChild = index
		}
	}

	mainHovered := menu.Geometry.MainButtonStyle().Contains(x, y)
	for _, id := range ecs.GetEntitiesWith1[*components.UIComponent](s.entityManager) {
		ui, _ := ecs.GetComponent[*components.UIComponent](s.entityManager, id)

		if _, isMain := ecs.GetComponent[*components.FanMainButtonComponent](s.entityManager, id); isMain {
			ui.State = hoverState(mainHovered)
			continue
		}
		if child, isChild := ecs.GetComponent[*components.FanChildComponent](s.entityManager, id); isChild {
			if !menu.State.IsOpen() {
				ui.State = components.UIDisabled
				continue
			}
			ui.State = hoverState(child.Index == menu.HoveredChild)
		}
	}
}

func hoverState(hovered bool) components.UIState {
	if hovered {
		return components.UIHovered
	}
	return components.UINormal
}
