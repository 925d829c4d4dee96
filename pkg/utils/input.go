// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerSource 指针输入来源
// 统一鼠标与触摸输入，系统通过该接口读取输入，测试可替换为假实现
type PointerSource interface {
	// JustPressed 本帧是否刚发生点击/触摸，以及位置
	JustPressed() (bool, int, int)
	// Position 当前指针位置（用于悬停检测）
	Position() (int, int)
}

// EbitenPointer 基于 Ebitengine 的指针输入
type EbitenPointer struct{}

// JustPressed 实现 PointerSource
func (EbitenPointer) JustPressed() (bool, int, int) {
	return IsJustTouchedOrClicked()
}

// Position 实现 PointerSource
func (EbitenPointer) Position() (int, int) {
	return GetPointerPosition()
}

// IsJustTouchedOrClicked 检查是否刚刚发生点击或触摸
// 返回是否点击以及点击位置，优先检测触摸
func IsJustTouchedOrClicked() (bool, int, int) {
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// GetPointerPosition 获取当前指针位置（触摸或鼠标）
// 优先返回触摸位置，如果没有触摸则返回鼠标位置
func GetPointerPosition() (int, int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		return ebiten.TouchPosition(touchIDs[0])
	}
	return ebiten.CursorPosition()
}
