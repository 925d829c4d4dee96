//go:build !mobile

// Package mobile 非移动端构建时的占位包，实际入口见 mobile.go
package mobile

// Dummy 空导出函数，保证包在桌面构建下也能被引用
func Dummy() {}
