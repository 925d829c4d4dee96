//go:build android

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnsureStorageDir 在打开 gdata 之前准备 Android 上的偏好目录
// gdata 使用 /data/data/{package}/ 作为根目录，但不会创建应用子目录
//
// 参数：
//   - appName: gdata 使用的应用名
//
// 返回：
//   - error: 无法识别包名或目录不可写时返回错误
func EnsureStorageDir(appName string) error {
	root := GetStoragePath()
	if root == "" {
		return fmt.Errorf("cannot detect android package name")
	}

	dir := filepath.Join(root, appName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create storage dir %s: %w", dir, err)
	}

	testFile := filepath.Join(dir, ".write_test")
	if err := os.WriteFile(testFile, nil, 0644); err != nil {
		return fmt.Errorf("storage dir %s is not writable: %w", dir, err)
	}
	return os.Remove(testFile)
}

// GetStoragePath 返回 /data/data/{package}，无法识别时返回空字符串
func GetStoragePath() string {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return ""
	}

	// cmdline 以 NUL 分隔，第一段是进程名（即包名）
	pkg, _, _ := strings.Cut(string(data), "\x00")
	pkg = strings.TrimSpace(pkg)
	if pkg == "" {
		return ""
	}
	return filepath.Join("/data/data", pkg)
}
