//go:build !mobile

package utils

import "os"

// MobileEmulateEnv 桌面端强制启用移动模式的环境变量
const MobileEmulateEnv = "FANMENU_MOBILE_EMULATE"

// IsMobile 是否以移动端模式运行
// 桌面端默认返回 false，设置 FANMENU_MOBILE_EMULATE=1 可在本地模拟移动端（无键盘、无悬停）
func IsMobile() bool {
	return os.Getenv(MobileEmulateEnv) == "1"
}
