// Package main provides a headless verification tool for the fan menu
// stagger sequencing.
//
// Usage:
//
//	go run ./cmd/verify_stagger [flags]
//
// Flags:
//
//	--children <n>   Number of child buttons (default: 7)
//	--frames <n>     Maximum frames per direction (default: 600)
//	--every <n>      Print one row every n frames (default: 1)
//	--verbose        Enable verbose logging
//
// The tool opens the menu, runs the sequencer and child springs until every
// button settles, then closes it the same way. Each printed row lists the
// per-child scale; a cascade is visible as scales leaving 0.50 (or 1.00)
// one column at a time. It exits non-zero if a direction fails to settle or
// the close does not return every child to its collapsed style exactly.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/decker502/fanmenu/pkg/config"
	"github.com/decker502/fanmenu/pkg/fan"
	"github.com/decker502/fanmenu/pkg/utils"
)

var (
	childrenFlag = flag.Int("children", config.NumChildren, "Number of child buttons")
	framesFlag   = flag.Int("frames", 600, "Maximum frames per direction")
	everyFlag    = flag.Int("every", 1, "Print one row every n frames")
	verboseFlag  = flag.Bool("verbose", false, "Enable verbose logging")
)

type simulation struct {
	geometry  fan.Geometry
	sequencer fan.Sequencer
	springs   []*utils.StyleSpring
}

func newSimulation(g fan.Geometry) *simulation {
	s := &simulation{
		geometry:  g,
		sequencer: fan.DefaultSequencer(),
		springs:   make([]*utils.StyleSpring, g.NumChildren),
	}
	for i := range s.springs {
		s.springs[i] = utils.NewStyleSpring(utils.ChildSpringConfig(), config.TargetFPS, g.CollapsedStyle())
	}
	return s
}

func (s *simulation) frame() fan.FrameStyles {
	frame := make(fan.FrameStyles, len(s.springs))
	for i, sp := range s.springs {
		frame[i] = sp.Current()
	}
	return frame
}

func (s *simulation) settled(targets fan.FrameStyles) bool {
	for i, sp := range s.springs {
		if !sp.Settled(targets[i]) {
			return false
		}
	}
	return true
}

// run 推进一个方向直到收敛，返回使用的帧数
func (s *simulation) run(open bool, maxFrames, every int) (int, error) {
	targets := s.geometry.TargetFrame(open)
	for f := 1; f <= maxFrames; f++ {
		prev := s.frame()
		gated, err := s.sequencer.NextFrame(prev, open, targets)
		if err != nil {
			return f, err
		}
		for i, sp := range s.springs {
			if gated[i] == prev[i] {
				sp.SnapTo(prev[i])
				continue
			}
			sp.Step(gated[i])
		}

		if every > 0 && f%every == 0 {
			printRow(f, s.frame())
		}
		if s.settled(targets) {
			return f, nil
		}
	}
	return maxFrames, fmt.Errorf("did not settle within %d frames", maxFrames)
}

func printRow(frame int, styles fan.FrameStyles) {
	cols := make([]string, len(styles))
	for i, scale := range styles.Scales() {
		cols[i] = fmt.Sprintf("%.2f", scale)
	}
	fmt.Printf("%4d | %s\n", frame, strings.Join(cols, " "))
}

func main() {
	flag.Parse()
	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	g := fan.DefaultGeometry()
	g.NumChildren = *childrenFlag
	if err := g.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid geometry: %v\n", err)
		os.Exit(1)
	}

	sim := newSimulation(g)
	initial := sim.frame()

	for _, open := range []bool{true, false} {
		label := "close"
		if open {
			label = "open"
		}
		fmt.Printf("== %s (%d children)\n", label, g.NumChildren)

		frames, err := sim.run(open, *framesFlag, *everyFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", label, err)
			os.Exit(1)
		}
		log.Printf("[verify_stagger] %s settled after %d frames", label, frames)
		fmt.Printf("== %s settled after %d frames\n", label, frames)
	}

	final := sim.frame()
	for i := range final {
		if final[i] != initial[i] {
			fmt.Fprintf(os.Stderr, "child %d did not return to its collapsed style: %+v\n", i, final[i])
			os.Exit(1)
		}
	}
	fmt.Println("OK: every child returned to its collapsed style")
}
