package fan

import (
	"errors"
	"fmt"

	"github.com/decker502/fanmenu/pkg/config"
)

// ErrFrameLength 帧长度与目标长度不一致或为空
var ErrFrameLength = errors.New("frame length mismatch")

// Sequencer 交错序列器
//
// 每帧调用一次 NextFrame，根据上一帧各按钮的缩放值决定本帧哪些按钮可以
// 朝目标样式移动：
//   - 展开时按索引升序处理，0 号按钮领头
//   - 收起时按索引降序处理（逆序），N-1 号按钮领头
//   - 处理顺序中的第一个按钮无条件放行
//   - 其余按钮仅当前驱（处理顺序中的上一个）的缩放越过阈值时才放行，
//     否则保持上一帧样式不变
//
// 帧终止由外部弹簧积分器的收敛决定，与本函数无关。
type Sequencer struct {
	Offset         float64 // 阈值偏移
	CollapsedScale float64 // 收起缩放（展开起点）
	ExpandedScale  float64 // 展开缩放（收起起点）
}

// DefaultSequencer 返回默认阈值的序列器
func DefaultSequencer() Sequencer {
	return Sequencer{
		Offset:         config.StaggerOffset,
		CollapsedScale: config.ChildCollapsedScale,
		ExpandedScale:  config.ChildExpandedScale,
	}
}

// NextFrame 计算下一帧每个按钮的目标样式
//
// 参数：
//   - prev: 上一帧的样式（按索引升序），不会被修改
//   - open: 菜单是否打开
//   - targets: 当前状态下每个按钮的最终样式（按索引升序）
//
// 返回：
//   - FrameStyles: 本帧目标（按索引升序）；被冻结的按钮保持 prev 中的样式
//   - error: prev 为空或与 targets 长度不一致时返回 ErrFrameLength
func (s Sequencer) NextFrame(prev FrameStyles, open bool, targets FrameStyles) (FrameStyles, error) {
	n := len(prev)
	if n == 0 || n != len(targets) {
		return nil, fmt.Errorf("%w: prev=%d targets=%d", ErrFrameLength, len(prev), len(targets))
	}

	// 收起时逆序处理，再逆序写回，保持调用方的索引语义
	order := func(pos int) int {
		if open {
			return pos
		}
		return n - 1 - pos
	}

	next := make(FrameStyles, n)
	for pos := 0; pos < n; pos++ {
		idx := order(pos)
		if pos == 0 {
			next[idx] = targets[idx]
			continue
		}

		prevScale := prev[order(pos-1)].Scale
		if s.shouldAdvance(prevScale, open) {
			next[idx] = targets[idx]
		} else {
			next[idx] = prev[idx]
		}
	}
	return next, nil
}

// shouldAdvance 前驱是否已经越过阈值（非严格比较）
func (s Sequencer) shouldAdvance(prevScale float64, open bool) bool {
	if open {
		return prevScale >= s.CollapsedScale+s.Offset
	}
	return prevScale <= s.ExpandedScale-s.Offset
}

// NextFrame 使用默认阈值计算下一帧
func NextFrame(prev FrameStyles, open bool, targets FrameStyles) (FrameStyles, error) {
	return DefaultSequencer().NextFrame(prev, open, targets)
}
