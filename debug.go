package sprig

import (
	"fmt"
	"os"
	"time"

	"github.com/shirou/gopsutil/v3/process"
)

// debugStats holds per-frame timing and tree metrics.
// Only populated when Scene.debug is true.
type debugStats struct {
	updateTime time.Duration
	drawTime   time.Duration
	nodeCount  int
	tweenCount int
}

// debugMemEvery is how often, in frames, process memory is sampled.
const debugMemEvery = 60

// debugLog prints timing and tree stats to stderr.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[sprig] frame %d | update: %v | draw: %v | total: %v\n",
		s.frame, stats.updateTime, stats.drawTime, stats.updateTime+stats.drawTime)
	_, _ = fmt.Fprintf(os.Stderr,
		"[sprig] nodes: %d | tweens: %d\n", stats.nodeCount, stats.tweenCount)
	if s.frame%debugMemEvery == 0 {
		s.debugLogMemory()
	}
}

// debugLogMemory prints the resident set size of the current process.
func (s *Scene) debugLogMemory() {
	if s.proc == nil {
		p, err := process.NewProcess(int32(os.Getpid()))
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[sprig] memory stats unavailable: %v\n", err)
			return
		}
		s.proc = p
	}
	mi, err := s.proc.MemoryInfo()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[sprig] memory stats unavailable: %v\n", err)
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[sprig] rss: %.1f MiB\n", float64(mi.RSS)/(1<<20))
}

// countTree walks e and everything it holds, counting nodes and queued
// tweens.
func countTree(e Element, stats *debugStats) {
	stats.nodeCount++
	if a, ok := e.(Animated); ok {
		stats.tweenCount += a.Animator().Len()
	}
	switch n := e.(type) {
	case holder:
		for _, c := range n.members().items {
			countTree(c, stats)
		}
	case *Trace:
		if n.leader != nil {
			countTree(n.leader, stats)
		}
	}
}

// debugCheckFrameDepth warns on stderr if a frame chain grows deeper than
// the threshold.
const debugMaxFrameDepth = 32

func debugCheckFrameDepth(f Frame) {
	if d := Depth(f); d > debugMaxFrameDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[sprig] warning: frame depth %d exceeds %d (%s)\n",
			d, debugMaxFrameDepth, frameName(f))
	}
}

// debugCheckChildCount warns on stderr if a node has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(h holder) {
	if n := len(h.members().items); n > debugMaxChildCount {
		_, _ = fmt.Fprintf(os.Stderr, "[sprig] warning: %s has %d children (threshold %d)\n",
			frameName(h), n, debugMaxChildCount)
	}
}

func frameName(f Frame) string {
	if n, ok := f.(named); ok && n.NodeName() != "" {
		return fmt.Sprintf("%q", n.NodeName())
	}
	return fmt.Sprintf("%T", f)
}
