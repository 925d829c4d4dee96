package fan

import (
	"errors"
	"math"
	"testing"
)

const epsilon = 1e-9

// TestFanAngles 测试扇形张角与起始角
func TestFanAngles(t *testing.T) {
	g := DefaultGeometry()

	if got := g.FanAngle(); got != 240 {
		t.Errorf("FanAngle() = %v, 期望 240", got)
	}
	if got := g.BaseAngle(); got != -30 {
		t.Errorf("BaseAngle() = %v, 期望 -30", got)
	}
	if got := g.Angle(g.NumChildren - 1); got != 210 {
		t.Errorf("Angle(N-1) = %v, 期望 210", got)
	}
}

// TestFinalDeltaClosedForm 测试偏移与闭式公式一致
func TestFinalDeltaClosedForm(t *testing.T) {
	g := DefaultGeometry()

	for i := 0; i < g.NumChildren; i++ {
		d, err := g.FinalDelta(i)
		if err != nil {
			t.Fatalf("FinalDelta(%d) error: %v", i, err)
		}

		angle := (g.BaseAngle() + float64(i)*g.SeparationAngle) * math.Pi / 180
		wantX := g.FlyOutRadius*math.Cos(angle) - g.ChildDiameter/2
		wantY := g.FlyOutRadius*math.Sin(angle) + g.ChildDiameter/2

		if math.Abs(d.DeltaX-wantX) > epsilon || math.Abs(d.DeltaY-wantY) > epsilon {
			t.Errorf("FinalDelta(%d) = %+v, 期望 (%v, %v)", i, d, wantX, wantY)
		}

		// 重复调用结果一致
		again, _ := g.FinalDelta(i)
		if again != d {
			t.Errorf("FinalDelta(%d) 不确定: %+v != %+v", i, again, d)
		}
	}
}

// TestFinalDeltaSymmetry 首尾按钮关于扇形中线（90°）对称
func TestFinalDeltaSymmetry(t *testing.T) {
	g := DefaultGeometry()
	half := g.ChildDiameter / 2

	first, _ := g.FinalDelta(0)
	last, _ := g.FinalDelta(g.NumChildren - 1)

	// 去掉半径偏移后，X 互为相反数，Y 相等
	if math.Abs((first.DeltaX+half)+(last.DeltaX+half)) > epsilon {
		t.Errorf("X 不对称: first=%v last=%v", first.DeltaX, last.DeltaX)
	}
	if math.Abs(first.DeltaY-last.DeltaY) > epsilon {
		t.Errorf("Y 不对称: first=%v last=%v", first.DeltaY, last.DeltaY)
	}

	// 中间按钮正好在 90°
	mid, _ := g.FinalDelta(g.NumChildren / 2)
	if math.Abs(mid.DeltaX+half) > epsilon {
		t.Errorf("中间按钮 deltaX = %v, 期望 %v", mid.DeltaX, -half)
	}
	if math.Abs(mid.DeltaY-(g.FlyOutRadius+half)) > epsilon {
		t.Errorf("中间按钮 deltaY = %v, 期望 %v", mid.DeltaY, g.FlyOutRadius+half)
	}
}

// TestFinalDeltaOutOfRange 测试越界索引
func TestFinalDeltaOutOfRange(t *testing.T) {
	g := DefaultGeometry()

	for _, index := range []int{-1, g.NumChildren, 100} {
		if _, err := g.FinalDelta(index); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("FinalDelta(%d) error = %v, 期望 ErrIndexOutOfRange", index, err)
		}
	}

	if _, err := FinalDelta(0); err != nil {
		t.Errorf("FinalDelta(0) error: %v", err)
	}
}

// TestGeometryValidate 测试几何参数校验
func TestGeometryValidate(t *testing.T) {
	g := DefaultGeometry()
	if err := g.Validate(); err != nil {
		t.Errorf("默认几何配置应合法: %v", err)
	}

	g.NumChildren = 0
	if err := g.Validate(); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("expected ErrInvalidGeometry, got %v", err)
	}

	g = DefaultGeometry()
	g.ChildDiameter = 0
	if err := g.Validate(); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("expected ErrInvalidGeometry, got %v", err)
	}
}

// TestSingleChildGeometry N=1 时唯一按钮位于 90°
func TestSingleChildGeometry(t *testing.T) {
	g := DefaultGeometry()
	g.NumChildren = 1

	if g.BaseAngle() != 90 {
		t.Errorf("BaseAngle() = %v, 期望 90", g.BaseAngle())
	}
	if _, err := g.FinalDelta(1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}
}
