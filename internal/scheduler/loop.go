package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"okxpos/internal/logger"
)

// DefaultMinInterval is the shortest wait accepted between two cycles.
const DefaultMinInterval = time.Second

// ErrIntervalTooShort is returned by SetInterval for values under the minimum.
var ErrIntervalTooShort = errors.New("refresh interval too short")

// State is the lifecycle of an IntervalLoop.
type State int32

const (
	StateIdle State = iota
	StateRunning
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

// IntervalLoop runs a task, sleeps for the current interval, and repeats.
// Cycles never overlap and at most one loop goroutine exists at a time.
// The interval is read once per sleep, when the sleep starts.
type IntervalLoop struct {
	Name string

	interval    atomic.Int64
	minInterval time.Duration

	mu     sync.Mutex
	state  State
	cancel context.CancelFunc
	done   chan struct{}
}

// LoopOption customises an IntervalLoop.
type LoopOption func(*IntervalLoop)

// WithMinInterval lowers or raises the SetInterval floor.
func WithMinInterval(d time.Duration) LoopOption {
	return func(l *IntervalLoop) {
		if d > 0 {
			l.minInterval = d
		}
	}
}

func NewIntervalLoop(name string, interval time.Duration, opts ...LoopOption) *IntervalLoop {
	l := &IntervalLoop{Name: name, minInterval: DefaultMinInterval}
	for _, opt := range opts {
		opt(l)
	}
	if interval < l.minInterval {
		interval = l.minInterval
	}
	l.interval.Store(int64(interval))
	return l
}

// Interval returns the wait applied after the next completed cycle.
func (l *IntervalLoop) Interval() time.Duration {
	return time.Duration(l.interval.Load())
}

// SetInterval changes the wait. A sleep already in progress keeps its length.
func (l *IntervalLoop) SetInterval(d time.Duration) error {
	if d < l.minInterval {
		return fmt.Errorf("%w: %s < %s", ErrIntervalTooShort, d, l.minInterval)
	}
	l.interval.Store(int64(d))
	return nil
}

func (l *IntervalLoop) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

func (l *IntervalLoop) Running() bool {
	return l.State() == StateRunning
}

// Start launches the loop unless it is already running, in which case it
// returns false and leaves the running loop untouched.
func (l *IntervalLoop) Start(parent context.Context, task func(context.Context)) bool {
	if task == nil {
		logger.Warnf("%s: task is nil, not starting", l.prefix())
		return false
	}
	if parent == nil {
		parent = context.Background()
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state == StateRunning {
		return false
	}
	ctx, cancel := context.WithCancel(parent)
	done := make(chan struct{})
	l.state = StateRunning
	l.cancel = cancel
	l.done = done
	go l.run(ctx, task, done)
	return true
}

// Stop cancels the loop, including an in-flight task, and waits for it to exit.
// It reports whether a running loop was stopped.
func (l *IntervalLoop) Stop() bool {
	l.mu.Lock()
	cancel, done := l.cancel, l.done
	l.mu.Unlock()
	if cancel == nil {
		return false
	}
	cancel()
	<-done
	return true
}

// Done is closed when the current loop exits. It is nil before the first Start.
func (l *IntervalLoop) Done() <-chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.done
}

func (l *IntervalLoop) run(ctx context.Context, task func(context.Context), done chan struct{}) {
	startAt := time.Now()
	logger.Infof("%s: started interval=%s", l.prefix(), l.Interval())
	defer func() {
		l.mu.Lock()
		if l.done == done {
			l.state = StateStopped
			l.cancel = nil
		}
		l.mu.Unlock()
		close(done)
		logger.Infof("%s: stopped uptime=%s", l.prefix(), time.Since(startAt).Truncate(time.Second))
	}()

	for {
		task(ctx)
		if ctx.Err() != nil {
			return
		}
		wait := l.Interval()
		logger.Debugf("%s: next cycle in %s", l.prefix(), wait)
		if !sleep(ctx, wait) {
			return
		}
	}
}

func (l *IntervalLoop) prefix() string {
	if l.Name == "" {
		return "IntervalLoop"
	}
	return "IntervalLoop[" + l.Name + "]"
}

func sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
