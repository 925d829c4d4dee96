package utils

import (
	"math"
	"testing"

	"github.com/decker502/fanmenu/pkg/fan"
)

// TestSpringConfigConversion 测试刚度/阻尼到角频率/阻尼比的换算
func TestSpringConfigConversion(t *testing.T) {
	tests := []struct {
		name      string
		cfg       SpringConfig
		wantOmega float64
		wantZeta  float64
	}{
		{"子按钮", ChildSpringConfig(), 20, 0.7},
		{"主按钮", MainSpringConfig(), math.Sqrt(500), 30 / (2 * math.Sqrt(500))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if math.Abs(tt.cfg.AngularFrequency()-tt.wantOmega) > 1e-9 {
				t.Errorf("AngularFrequency() = %v, 期望 %v", tt.cfg.AngularFrequency(), tt.wantOmega)
			}
			if math.Abs(tt.cfg.DampingRatio()-tt.wantZeta) > 1e-9 {
				t.Errorf("DampingRatio() = %v, 期望 %v", tt.cfg.DampingRatio(), tt.wantZeta)
			}
		})
	}
}

// TestSpringConverges 弹簧最终精确停在目标值
func TestSpringConverges(t *testing.T) {
	s := NewSpring(ChildSpringConfig(), 60, 0)

	for i := 0; i < 600 && !s.Settled(100); i++ {
		s.Step(100)
	}

	if !s.Settled(100) {
		t.Fatalf("spring did not settle: value=%v velocity=%v", s.Value, s.Velocity)
	}
	if s.Value != 100 {
		t.Errorf("Value = %v, 期望 100", s.Value)
	}
}

// TestSpringMovesTowardTarget 第一帧朝目标方向移动
func TestSpringMovesTowardTarget(t *testing.T) {
	s := NewSpring(ChildSpringConfig(), 60, 0.5)
	v := s.Step(1)

	if v <= 0.5 || v >= 1 {
		t.Errorf("first step = %v, 期望在 (0.5, 1) 之间", v)
	}
}

// TestSpringHoldsAtRest 目标等于当前值且速度为 0 时保持不动
func TestSpringHoldsAtRest(t *testing.T) {
	s := NewSpring(ChildSpringConfig(), 60, 42)
	for i := 0; i < 10; i++ {
		if v := s.Step(42); v != 42 {
			t.Fatalf("frame %d: value = %v, 期望 42", i, v)
		}
	}
}

// TestStyleSpring 测试样式弹簧
func TestStyleSpring(t *testing.T) {
	g := fan.DefaultGeometry()
	collapsed := g.CollapsedStyle()
	expanded, _ := g.ExpandedStyle(0)

	s := NewStyleSpring(ChildSpringConfig(), 60, collapsed)
	if s.Current() != collapsed {
		t.Fatalf("Current() = %+v, 期望 %+v", s.Current(), collapsed)
	}

	for i := 0; i < 600 && !s.Settled(expanded); i++ {
		s.Step(expanded)
	}
	if s.Current() != expanded {
		t.Errorf("style did not settle: %+v", s.Current())
	}

	s.SnapTo(collapsed)
	if !s.Settled(collapsed) {
		t.Error("SnapTo should leave the spring settled")
	}
}
