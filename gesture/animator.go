package gesture

import "time"

// Animator eases the zoom scale toward a target over a fixed duration
// Retargeting cancels the in-flight animation and replaces it (last request
// wins, no queueing). Single-goroutine, driven by Update calls
type Animator struct {
	current  float64
	from     float64
	to       float64
	start    time.Time
	duration time.Duration
	active   bool
}

// NewAnimator creates an animator resting at initial
func NewAnimator(initial float64) *Animator {
	return &Animator{current: initial}
}

// AnimateTo starts easing from the current value toward target
// A non-positive duration snaps immediately
func (a *Animator) AnimateTo(target float64, now time.Time, duration time.Duration) {
	if duration <= 0 {
		a.Snap(target)
		return
	}
	a.from = a.current
	a.to = target
	a.start = now
	a.duration = duration
	a.active = true
}

// Snap cancels any animation and jumps to value
func (a *Animator) Snap(value float64) {
	a.current = value
	a.active = false
}

// Update advances the animation to now and returns the current value
func (a *Animator) Update(now time.Time) float64 {
	if !a.active {
		return a.current
	}

	p := float64(now.Sub(a.start)) / float64(a.duration)
	if p >= 1 {
		a.current = a.to
		a.active = false
		return a.current
	}
	if p < 0 {
		p = 0
	}

	a.current = a.from + (a.to-a.from)*easeOutCubic(p)
	return a.current
}

// Value returns the last computed value without advancing
func (a *Animator) Value() float64 {
	return a.current
}

// Active reports whether an animation is in flight
func (a *Animator) Active() bool {
	return a.active
}

func easeOutCubic(p float64) float64 {
	q := 1 - p
	return 1 - q*q*q
}
