package clock

import (
	"sync"
	"sync/atomic"
	"time"
)

// DefaultTickInterval is the discrete sampling cadence when none is given
const DefaultTickInterval = time.Second

// Scheduler delivers engine samples on a fixed tick
// Deadlines are drift-corrected so long callbacks do not accumulate skew;
// when the loop falls more than two intervals behind it re-anchors instead of
// bursting catch-up ticks
type Scheduler struct {
	engine   *Engine
	tp       TimeProvider
	interval time.Duration
	onSample func(Sample)

	nextDeadline time.Time
	tickCount    atomic.Uint64

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewScheduler creates a scheduler ticking every interval
// A non-positive interval falls back to DefaultTickInterval
func NewScheduler(engine *Engine, tp TimeProvider, interval time.Duration, onSample func(Sample)) *Scheduler {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &Scheduler{
		engine:   engine,
		tp:       tp,
		interval: interval,
		onSample: onSample,
		stopChan: make(chan struct{}),
	}
}

// Start begins the tick loop
func (s *Scheduler) Start() {
	if s.running.CompareAndSwap(false, true) {
		s.wg.Add(1)
		go s.loop()
	}
}

// Stop halts the tick loop; idempotent and safe to call on a never-started scheduler
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopChan)
		if s.running.CompareAndSwap(true, false) {
			s.wg.Wait()
		}
	})
}

// TickCount returns the number of samples delivered so far
func (s *Scheduler) TickCount() uint64 {
	return s.tickCount.Load()
}

func (s *Scheduler) loop() {
	defer s.wg.Done()

	s.nextDeadline = s.tp.Now().Add(s.interval)

	timer := time.NewTimer(s.interval)
	defer timer.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-timer.C:
		}

		s.onSample(s.engine.Sample())
		s.tickCount.Add(1)

		now := s.tp.Now()
		s.nextDeadline = s.nextDeadline.Add(s.interval)
		if now.Sub(s.nextDeadline) > 2*s.interval {
			s.nextDeadline = now.Add(s.interval)
		}

		sleep := s.nextDeadline.Sub(now)
		if sleep < 0 {
			sleep = 0
		}
		timer.Reset(sleep)
	}
}
