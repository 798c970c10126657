package gesture

import "time"

// tapSequencer implements the debounce-commit pattern: touches accumulate
// silently and the count fires after a quiet window or immediately at max
type tapSequencer struct {
	window time.Duration
	max    int

	count    int
	lastTap  time.Time
	deadline time.Time
	active   bool
}

// touch registers one tap at now
// Returns (count, true) when the sequence commits immediately (max reached)
func (t *tapSequencer) touch(now time.Time) (int, bool) {
	if t.active && now.Sub(t.lastTap) < t.window {
		t.count++
	} else {
		t.count = 1
	}
	// Unconditional, even when max commits below
	t.lastTap = now
	t.deadline = now.Add(t.window)
	t.active = true

	if t.count >= t.max {
		c := t.count
		t.reset()
		return c, true
	}
	return 0, false
}

// tick commits a stalled sequence once its quiet window elapses
func (t *tapSequencer) tick(now time.Time) (int, bool) {
	if !t.active || now.Before(t.deadline) {
		return 0, false
	}
	c := t.count
	t.reset()
	return c, true
}

func (t *tapSequencer) reset() {
	t.count = 0
	t.active = false
}

// ClickCounter is the accessibility fallback for pointer devices without
// touch: an independently-clocked counter over plain clicks, reusing the same
// debounce-commit algorithm and the same max threshold, committing the same
// reveal signal. It shares no state with the touch tap sequencer
type ClickCounter struct {
	seq  tapSequencer
	sink Sink
}

// NewClickCounter creates a counter committing to sink at max clicks
func NewClickCounter(window time.Duration, max int, sink Sink) *ClickCounter {
	if window <= 0 {
		window = 500 * time.Millisecond
	}
	if max <= 0 {
		max = 6
	}
	return &ClickCounter{
		seq:  tapSequencer{window: window, max: max},
		sink: sink,
	}
}

// Click registers one click at now
func (c *ClickCounter) Click(now time.Time) {
	if _, ok := c.seq.touch(now); ok {
		c.sink.HandleGesture(Event{Type: EventReveal})
	}
}

// Tick expires a stalled click run; counts below max commit nothing
func (c *ClickCounter) Tick(now time.Time) {
	c.seq.tick(now)
}

// Reset clears any accumulated clicks
func (c *ClickCounter) Reset() {
	c.seq.reset()
}
