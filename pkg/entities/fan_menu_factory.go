package entities

import (
	"errors"
	"fmt"

	"github.com/decker502/fanmenu/pkg/components"
	"github.com/decker502/fanmenu/pkg/config"
	"github.com/decker502/fanmenu/pkg/ecs"
	"github.com/decker502/fanmenu/pkg/fan"
	"github.com/decker502/fanmenu/pkg/utils"
)

// ErrNoTheme 创建菜单时未提供主题
var ErrNoTheme = errors.New("fan menu requires a theme")

// FanMenuEntities 扇形菜单创建出的实体
type FanMenuEntities struct {
	Menu     ecs.EntityID   // 菜单根实体（FanMenuComponent）
	Main     ecs.EntityID   // 主按钮
	Children []ecs.EntityID // 子按钮，按索引升序
}

// NewFanMenu 创建扇形菜单实体
//
// 菜单以 CLOSED 状态创建，所有子按钮处于收起样式（叠放在主按钮中心），
// 主按钮图标处于关闭角度。
//
// 参数：
//   - em: 实体管理器
//   - geometry: 几何参数
//   - theme: 图标与配色，子按钮图标数量必须与 geometry.NumChildren 一致
//
// 返回：
//   - FanMenuEntities: 创建出的实体ID
//   - error: 参数不合法时返回错误
func NewFanMenu(em *ecs.EntityManager, geometry fan.Geometry, theme *config.Theme) (FanMenuEntities, error) {
	if err := geometry.Validate(); err != nil {
		return FanMenuEntities{}, err
	}
	if theme == nil {
		return FanMenuEntities{}, fmt.Errorf("create fan menu: %w", ErrNoTheme)
	}
	if err := theme.Validate(geometry.NumChildren); err != nil {
		return FanMenuEntities{}, err
	}

	state := fan.NewMenuState()
	result := FanMenuEntities{Children: make([]ecs.EntityID, 0, geometry.NumChildren)}

	result.Menu = em.CreateEntity()
	ecs.AddComponent(em, result.Menu, &components.FanMenuComponent{
		State:        state,
		Geometry:     geometry,
		Sequencer:    fan.DefaultSequencer(),
		Theme:        theme,
		HoveredChild: -1,
	})

	childSpring := utils.ChildSpringConfig()
	collapsed := geometry.CollapsedStyle()
	for i := 0; i < geometry.NumChildren; i++ {
		id := em.CreateEntity()
		ecs.AddComponent(em, id, &components.FanChildComponent{
			Index: i,
			Icon:  theme.ChildIcons[i],
		})
		ecs.AddComponent(em, id, &components.FanStyleComponent{
			Spring: utils.NewStyleSpring(childSpring, config.TargetFPS, collapsed),
		})
		ecs.AddComponent(em, id, &components.UIComponent{State: components.UIDisabled})
		result.Children = append(result.Children, id)
	}

	// 主按钮最后创建
	result.Main = em.CreateEntity()
	ecs.AddComponent(em, result.Main, &components.FanMainButtonComponent{
		Icon:     theme.MainIcon,
		Rotation: utils.NewSpring(utils.MainSpringConfig(), config.TargetFPS, fan.MainButtonRotation(state.IsOpen())),
	})
	ecs.AddComponent(em, result.Main, &components.UIComponent{State: components.UINormal})

	return result, nil
}
