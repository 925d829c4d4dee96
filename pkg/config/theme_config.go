package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// 主题配置
// 图标字符与配色以配置的形式注入，同一套布局/交错逻辑可以渲染不同外观的菜单

var (
	// ErrUnknownTheme 未找到指定名称的内置主题
	ErrUnknownTheme = errors.New("unknown theme")
	// ErrInvalidTheme 主题文件内容不合法
	ErrInvalidTheme = errors.New("invalid theme")
)

// DefaultThemeName 默认主题名称
const DefaultThemeName = "classic"

// Theme 菜单主题
type Theme struct {
	// Name 主题名称
	Name string
	// MainIcon 主按钮上的字符
	MainIcon string
	// ChildIcons 子按钮字符，长度必须等于子按钮数量
	ChildIcons []string

	MainColor  color.RGBA // 主按钮底色
	ChildColor color.RGBA // 子按钮底色
	IconColor  color.RGBA // 图标字符颜色
	Background color.RGBA // 背景色
}

// themeFile YAML 主题文件的结构
type themeFile struct {
	Name       string   `yaml:"name"`
	MainIcon   string   `yaml:"mainIcon"`
	ChildIcons []string `yaml:"childIcons"`
	Colors     struct {
		Main       string `yaml:"main"`
		Child      string `yaml:"child"`
		Icon       string `yaml:"icon"`
		Background string `yaml:"background"`
	} `yaml:"colors"`
}

var builtinThemes = map[string]Theme{
	"classic": {
		Name:       "classic",
		MainIcon:   "N",
		ChildIcons: []string{"!", "s", "k", "n", "a", "h", "T"},
		MainColor:  color.RGBA{R: 0xEF, G: 0x53, B: 0x50, A: 0xFF},
		ChildColor: color.RGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF},
		IconColor:  color.RGBA{R: 0x42, G: 0x42, B: 0x42, A: 0xFF},
		Background: color.RGBA{R: 0x26, G: 0x32, B: 0x38, A: 0xFF},
	},
	"glyph": {
		Name:       "glyph",
		MainIcon:   "+",
		ChildIcons: []string{"A", "B", "C", "D", "E", "F", "G"},
		MainColor:  color.RGBA{R: 0x29, G: 0x79, B: 0xFF, A: 0xFF},
		ChildColor: color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		IconColor:  color.RGBA{R: 0x15, G: 0x65, B: 0xC0, A: 0xFF},
		Background: color.RGBA{R: 0xFA, G: 0xFA, B: 0xFA, A: 0xFF},
	},
}

// BuiltinTheme 返回指定名称的内置主题（返回副本，调用者可自由修改）
func BuiltinTheme(name string) (*Theme, error) {
	theme, ok := builtinThemes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	theme.ChildIcons = append([]string(nil), theme.ChildIcons...)
	return &theme, nil
}

// BuiltinThemeNames 返回所有内置主题名称（按字母排序）
func BuiltinThemeNames() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadThemeFile 从 YAML 文件加载主题
//
// 参数：
//   - path: 主题文件路径
//   - numChildren: 子按钮数量，用于校验图标数量
//
// 返回：
//   - *Theme: 解析后的主题
//   - error: 读取、解析或校验失败时返回错误
func LoadThemeFile(path string, numChildren int) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file %s: %w", path, err)
	}
	return ParseTheme(data, numChildren)
}

// ParseTheme 解析 YAML 格式的主题数据
// 未提供的颜色字段沿用默认主题的配色
func ParseTheme(data []byte, numChildren int) (*Theme, error) {
	var file themeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse theme: %w", err)
	}

	theme, _ := BuiltinTheme(DefaultThemeName)
	if file.Name != "" {
		theme.Name = file.Name
	}
	if file.MainIcon != "" {
		theme.MainIcon = file.MainIcon
	}
	if file.ChildIcons != nil {
		theme.ChildIcons = file.ChildIcons
	}

	colors := []struct {
		field string
		value string
		dst   *color.RGBA
	}{
		{"main", file.Colors.Main, &theme.MainColor},
		{"child", file.Colors.Child, &theme.ChildColor},
		{"icon", file.Colors.Icon, &theme.IconColor},
		{"background", file.Colors.Background, &theme.Background},
	}
	for _, c := range colors {
		if c.value == "" {
			continue
		}
		parsed, err := ParseHexColor(c.value)
		if err != nil {
			return nil, fmt.Errorf("%w: colors.%s: %v", ErrInvalidTheme, c.field, err)
		}
		*c.dst = parsed
	}

	if err := theme.Validate(numChildren); err != nil {
		return nil, err
	}
	return theme, nil
}

// Validate 校验主题与子按钮数量是否匹配
func (t *Theme) Validate(numChildren int) error {
	if len(t.ChildIcons) != numChildren {
		return fmt.Errorf("%w: %d child icons for %d children", ErrInvalidTheme, len(t.ChildIcons), numChildren)
	}
	return nil
}

// ParseHexColor 解析 #RGB、#RRGGBB 或 #RRGGBBAA 格式的颜色（# 可省略）
// RGB 部分由 colorful.Hex 解析，AA 后缀为不透明度
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")

	alpha := uint8(0xFF)
	if len(hex) == 8 {
		a, err := strconv.ParseUint(hex[6:], 16, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("bad color %q: %w", s, err)
		}
		alpha = uint8(a)
		hex = hex[:6]
	}

	// colorful.Hex 不校验长度，多余或缺失的字符需在此拦截
	if len(hex) != 3 && len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("bad color %q: want #RGB, #RRGGBB or #RRGGBBAA", s)
	}

	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad color %q: want #RGB, #RRGGBB or #RRGGBBAA: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: alpha}, nil
}
