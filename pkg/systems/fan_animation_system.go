package systems

import (
	"log"
	"sort"

	"github.com/decker502/fanmenu/pkg/components"
	"github.com/decker502/fanmenu/pkg/ecs"
	"github.com/decker502/fanmenu/pkg/fan"
)

// FanAnimationSystem 扇形菜单动画系统
//
// 每帧执行：
//  1. 从各子按钮的弹簧读取当前插值样式，组成上一帧 FrameStyles
//  2. 根据菜单状态计算目标帧，交给 Sequencer 决定本帧放行哪些按钮
//  3. 放行的子按钮弹簧朝目标推进一帧，被冻结的按钮停在当前样式且速度清零
//  4. 主按钮图标旋转弹簧朝 0°/−135° 推进一帧
//
// 帧严格按顺序推进；动画中途切换状态只改变目标与阈值方向。
type FanAnimationSystem struct {
	entityManager *ecs.EntityManager
	menuEntity    ecs.EntityID
}

// NewFanAnimationSystem 创建动画系统
func NewFanAnimationSystem(em *ecs.EntityManager, menuEntity ecs.EntityID) *FanAnimationSystem {
	return &FanAnimationSystem{
		entityManager: em,
		menuEntity:    menuEntity,
	}
}

// childStyles 按子按钮索引升序返回样式组件
func (s *FanAnimationSystem) childStyles() []*components.FanStyleComponent {
	type entry struct {
		index int
		style *components.FanStyleComponent
	}

	entities := ecs.GetEntitiesWith2[*components.FanChildComponent, *components.FanStyleComponent](s.entityManager)
	entries := make([]entry, 0, len(entities))
	for _, id := range entities {
		child, _ := ecs.GetComponent[*components.FanChildComponent](s.entityManager, id)
		style, _ := ecs.GetComponent[*components.FanStyleComponent](s.entityManager, id)
		entries = append(entries, entry{index: child.Index, style: style})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].index < entries[j].index })

	styles := make([]*components.FanStyleComponent, len(entries))
	for i, e := range entries {
		styles[i] = e.style
	}
	return styles
}

// CurrentFrame 当前帧所有子按钮的插值样式（按索引升序）
func (s *FanAnimationSystem) CurrentFrame() fan.FrameStyles {
	styles := s.childStyles()
	frame := make(fan.FrameStyles, len(styles))
	for i, st := range styles {
		frame[i] = st.Spring.Current()
	}
	return frame
}

// Update 推进一帧动画
func (s *FanAnimationSystem) Update(deltaTime float64) {
	menu, ok := ecs.GetComponent[*components.FanMenuComponent](s.entityManager, s.menuEntity)
	if !ok {
		return
	}
	open := menu.State.IsOpen()

	styles := s.childStyles()
	prev := make(fan.FrameStyles, len(styles))
	for i, st := range styles {
		prev[i] = st.Spring.Current()
	}

	gated, err := menu.Sequencer.NextFrame(prev, open, menu.Geometry.TargetFrame(open))
	if err != nil {
		log.Printf("[FanAnimationSystem] Skipping frame: %v", err)
	} else {
		for i, st := range styles {
			// 被冻结的按钮停在原样式，速度清零
			if gated[i] == prev[i] {
				st.Spring.SnapTo(prev[i])
				continue
			}
			st.Spring.Step(gated[i])
		}
	}

	for _, id := range ecs.GetEntitiesWith1[*components.FanMainButtonComponent](s.entityManager) {
		main, _ := ecs.GetComponent[*components.FanMainButtonComponent](s.entityManager, id)
		main.Rotation.Step(fan.MainButtonRotation(open))
	}
}

// Settled 所有子按钮与主按钮是否都已到达当前状态的目标
func (s *FanAnimationSystem) Settled() bool {
	menu, ok := ecs.GetComponent[*components.FanMenuComponent](s.entityManager, s.menuEntity)
	if !ok {
		return true
	}
	open := menu.State.IsOpen()
	targets := menu.Geometry.TargetFrame(open)

	styles := s.childStyles()
	if len(styles) != len(targets) {
		return false
	}
	for i, st := range styles {
		if !st.Spring.Settled(targets[i]) {
			return false
		}
	}

	for _, id := range ecs.GetEntitiesWith1[*components.FanMainButtonComponent](s.entityManager) {
		main, _ := ecs.GetComponent[*components.FanMainButtonComponent](s.entityManager, id)
		if !main.Rotation.Settled(fan.MainButtonRotation(open)) {
			return false
		}
	}
	return true
}
