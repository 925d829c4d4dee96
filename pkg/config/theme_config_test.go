package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

// TestBuiltinTheme 测试内置主题查询
func TestBuiltinTheme(t *testing.T) {
	for _, name := range BuiltinThemeNames() {
		t.Run(name, func(t *testing.T) {
			theme, err := BuiltinTheme(name)
			if err != nil {
				t.Fatalf("BuiltinTheme(%q) error: %v", name, err)
			}
			if theme.Name != name {
				t.Errorf("Name: got %q, want %q", theme.Name, name)
			}
			if err := theme.Validate(NumChildren); err != nil {
				t.Errorf("built-in theme should match NumChildren: %v", err)
			}
		})
	}

	if _, err := BuiltinTheme("missing"); !errors.Is(err, ErrUnknownTheme) {
		t.Errorf("expected ErrUnknownTheme, got %v", err)
	}
}

// TestBuiltinThemeReturnsCopy 修改返回值不应影响内置主题
func TestBuiltinThemeReturnsCopy(t *testing.T) {
	theme, _ := BuiltinTheme("classic")
	theme.ChildIcons[0] = "?"

	again, _ := BuiltinTheme("classic")
	if again.ChildIcons[0] != "!" {
		t.Errorf("built-in theme was mutated: got %q", again.ChildIcons[0])
	}
}

// TestParseTheme 测试 YAML 主题解析
func TestParseTheme(t *testing.T) {
	data := []byte(`
name: night
mainIcon: "x"
childIcons: ["1", "2", "3"]
colors:
  main: "#102030"
  icon: "#FFFFFF80"
`)

	theme, err := ParseTheme(data, 3)
	if err != nil {
		t.Fatalf("ParseTheme() error: %v", err)
	}

	if theme.Name != "night" || theme.MainIcon != "x" {
		t.Errorf("unexpected name/icon: %q %q", theme.Name, theme.MainIcon)
	}
	if len(theme.ChildIcons) != 3 {
		t.Errorf("ChildIcons: got %d, want 3", len(theme.ChildIcons))
	}
	if theme.MainColor != (color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xFF}) {
		t.Errorf("MainColor: got %v", theme.MainColor)
	}
	if theme.IconColor != (color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0x80}) {
		t.Errorf("IconColor: got %v", theme.IconColor)
	}

	// 未指定的颜色沿用默认主题
	classic, _ := BuiltinTheme(DefaultThemeName)
	if theme.ChildColor != classic.ChildColor {
		t.Errorf("ChildColor should fall back to default, got %v", theme.ChildColor)
	}
}

// TestParseThemeErrors 测试非法主题
func TestParseThemeErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"图标数量不匹配", `childIcons: ["a", "b"]`},
		{"颜色格式错误", "colors:\n  main: \"#12\""},
		{"颜色非十六进制", "colors:\n  main: \"#GGGGGG\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTheme([]byte(tt.data), NumChildren)
			if !errors.Is(err, ErrInvalidTheme) {
				t.Errorf("expected ErrInvalidTheme, got %v", err)
			}
		})
	}

	if _, err := ParseTheme([]byte("name: [unclosed"), NumChildren); err == nil {
		t.Error("expected YAML syntax error")
	}
}

// TestLoadThemeFile 测试从文件加载主题
func TestLoadThemeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	content := "name: file\nchildIcons: [a, b, c, d, e, f, g]\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write theme file: %v", err)
	}

	theme, err := LoadThemeFile(path, NumChildren)
	if err != nil {
		t.Fatalf("LoadThemeFile() error: %v", err)
	}
	if theme.Name != "file" {
		t.Errorf("Name: got %q, want %q", theme.Name, "file")
	}

	if _, err := LoadThemeFile(filepath.Join(t.TempDir(), "missing.yaml"), NumChildren); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}

// TestParseHexColor 测试颜色解析
func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input   string
		want    color.RGBA
		wantErr bool
	}{
		{"#000000", color.RGBA{A: 0xFF}, false},
		{"#FF8000", color.RGBA{R: 0xFF, G: 0x80, A: 0xFF}, false},
		{"ff800040", color.RGBA{R: 0xFF, G: 0x80, A: 0x40}, false},
		{"#FFF", color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, false},
		{"#12345", color.RGBA{}, true},
		{"#1234567", color.RGBA{}, true},
		{"#GG0000", color.RGBA{}, true},
		{"#FF0000ZZ", color.RGBA{}, true},
		{"", color.RGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseHexColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHexColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseHexColor(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
