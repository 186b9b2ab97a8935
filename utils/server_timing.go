package utils

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// StageTimer records named stage durations for the Server-Timing header.
// Safe for use from concurrent stages.
type StageTimer struct {
	mu     sync.Mutex
	start  time.Time
	stages []stage
}

type stage struct {
	name string
	dur  time.Duration
}

func NewStageTimer() *StageTimer {
	return &StageTimer{start: time.Now()}
}

// Track runs fn and records how long it took under name
func (t *StageTimer) Track(name string, fn func() error) error {
	started := time.Now()
	err := fn()
	t.Record(name, time.Since(started))
	return err
}

func (t *StageTimer) Record(name string, d time.Duration) {
	t.mu.Lock()
	t.stages = append(t.stages, stage{name: name, dur: d})
	t.mu.Unlock()
}

func (t *StageTimer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// ElapsedMs is the total wall time in whole milliseconds
func (t *StageTimer) ElapsedMs() int64 {
	return t.Elapsed().Milliseconds()
}

// Header renders e.g. `cache;dur=0.41, prefix;dur=3.20, total;dur=4.02`
func (t *StageTimer) Header() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	parts := make([]string, 0, len(t.stages)+1)
	for _, s := range t.stages {
		parts = append(parts, formatTiming(s.name, s.dur))
	}
	parts = append(parts, formatTiming("total", time.Since(t.start)))
	return strings.Join(parts, ", ")
}

func formatTiming(name string, d time.Duration) string {
	return fmt.Sprintf("%s;dur=%.2f", name, float64(d.Microseconds())/1000)
}
