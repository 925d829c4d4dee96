package systems

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/decker502/fanmenu/pkg/components"
	"github.com/decker502/fanmenu/pkg/ecs"
	"github.com/decker502/fanmenu/pkg/fan"
)

const (
	// childIconSize 子按钮图标字号
	childIconSize = 22.0
	// mainIconSize 主按钮图标字号
	mainIconSize = 44.0
	// hoverTint 悬停时颜色提亮比例
	hoverTint = 0.2
	// pressShade 按下时颜色压暗比例
	pressShade = 0.15
	// outlineWidth 按钮描边宽度
	outlineWidth = 2.0
)

// FanRenderSystem 扇形菜单渲染系统
//
// 绘制顺序：先子按钮（按索引升序），后主按钮，主按钮始终位于最上层，
// 收起的子按钮被主按钮遮住。
type FanRenderSystem struct {
	entityManager *ecs.EntityManager
	menuEntity    ecs.EntityID
	childFace     *text.GoTextFace
	mainFace      *text.GoTextFace
}

// NewFanRenderSystem 创建渲染系统并加载图标字体
func NewFanRenderSystem(em *ecs.EntityManager, menuEntity ecs.EntityID) (*FanRenderSystem, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load icon font: %w", err)
	}

	return &FanRenderSystem{
		entityManager: em,
		menuEntity:    menuEntity,
		childFace:     &text.GoTextFace{Source: source, Size: childIconSize},
		mainFace:      &text.GoTextFace{Source: source, Size: mainIconSize},
	}, nil
}

// Draw 绘制背景、子按钮和主按钮
func (s *FanRenderSystem) Draw(screen *ebiten.Image) {
	menu, ok := ecs.GetComponent[*components.FanMenuComponent](s.entityManager, s.menuEntity)
	if !ok || menu.Theme == nil {
		return
	}

	screen.Fill(menu.Theme.Background)

	for _, id := range s.sortedChildren() {
		child, _ := ecs.GetComponent[*components.FanChildComponent](s.entityManager, id)
		style, _ := ecs.GetComponent[*components.FanStyleComponent](s.entityManager, id)

		fill := s.stateFill(id, menu.Theme.ChildColor)
		s.drawButton(screen, style.Spring.Current(), fill, menu.Theme.IconColor, child.Icon, s.childFace)
	}

	for _, id := range ecs.GetEntitiesWith1[*components.FanMainButtonComponent](s.entityManager) {
		main, _ := ecs.GetComponent[*components.FanMainButtonComponent](s.entityManager, id)

		fill := s.stateFill(id, menu.Theme.MainColor)

		style := menu.Geometry.MainButtonStyle()
		style.Rotate = main.Rotation.Value
		s.drawButton(screen, style, fill, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, main.Icon, s.mainFace)
	}
}

// sortedChildren 按子按钮索引升序返回实体
func (s *FanRenderSystem) sortedChildren() []ecs.EntityID {
	entities := ecs.GetEntitiesWith2[*components.FanChildComponent, *components.FanStyleComponent](s.entityManager)
	index := func(id ecs.EntityID) int {
		child, _ := ecs.GetComponent[*components.FanChildComponent](s.entityManager, id)
		return child.Index
	}
	sort.Slice(entities, func(i, j int) bool { return index(entities[i]) < index(entities[j]) })
	return entities
}

// drawButton 绘制一个圆形按钮及其旋转/缩放后的图标
func (s *FanRenderSystem) drawButton(screen *ebiten.Image, style fan.ButtonStyle, fill, iconColor color.RGBA, icon string, face *text.GoTextFace) {
	cx := float32(style.CenterX())
	cy := float32(style.CenterY())
	r := float32(style.Width / 2 * style.Scale)
	if r <= 0 {
		return
	}

	vector.DrawFilledCircle(screen, cx, cy, r, fill, true)
	vector.StrokeCircle(screen, cx, cy, r, outlineWidth, color.RGBA{A: 0x40}, true)

	if icon == "" || face == nil {
		return
	}

	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter   // 水平居中
	op.LayoutOptions.SecondaryAlign = text.AlignCenter // 垂直居中
	op.GeoM.Scale(style.Scale, style.Scale)
	op.GeoM.Rotate(style.Rotate * math.Pi / 180)
	op.GeoM.Translate(style.CenterX(), style.CenterY())
	op.ColorScale.ScaleWithColor(iconColor)
	text.Draw(screen, icon, face, op)
}

// stateFill 根据交互状态调整按钮底色
func (s *FanRenderSystem) stateFill(id ecs.EntityID, base color.RGBA) color.RGBA {
	ui, ok := ecs.GetComponent[*components.UIComponent](s.entityManager, id)
	if !ok {
		return base
	}
	switch ui.State {
	case components.UIHovered:
		return tint(base, hoverTint)
	case components.UIClicked:
		return shade(base, pressShade)
	default:
		return base
	}
}

// tint 将颜色向白色混合 amount（0~1），保留原不透明度
func tint(c color.RGBA, amount float64) color.RGBA {
	return blend(c, colorful.Color{R: 1, G: 1, B: 1}, amount)
}

// shade 将颜色向黑色混合 amount（0~1），保留原不透明度
func shade(c color.RGBA, amount float64) color.RGBA {
	return blend(c, colorful.Color{}, amount)
}

func blend(c color.RGBA, toward colorful.Color, amount float64) color.RGBA {
	base, ok := colorful.MakeColor(c)
	if !ok {
		return c
	}
	r, g, b := base.BlendRgb(toward, amount).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: c.A}
}
