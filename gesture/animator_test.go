package gesture

import (
	"math"
	"testing"
	"time"
)

func TestAnimatorEasesTowardTarget(t *testing.T) {
	a := NewAnimator(1.0)
	a.AnimateTo(2.0, t0, 250*time.Millisecond)

	if !a.Active() {
		t.Fatal("animator not active after AnimateTo")
	}

	prev := a.Update(t0)
	for ms := 25; ms <= 225; ms += 25 {
		cur := a.Update(t0.Add(time.Duration(ms) * time.Millisecond))
		if cur < prev {
			t.Fatalf("value regressed at %dms: %v < %v", ms, cur, prev)
		}
		if cur < 1.0 || cur > 2.0 {
			t.Fatalf("value %v escaped [from,to] at %dms", cur, ms)
		}
		prev = cur
	}

	got := a.Update(t0.Add(300 * time.Millisecond))
	if got != 2.0 {
		t.Errorf("final value = %v, want exactly 2.0", got)
	}
	if a.Active() {
		t.Error("animator still active after completion")
	}
}

func TestAnimatorEaseOutShape(t *testing.T) {
	// Cubic ease-out covers more than half the distance by the midpoint
	a := NewAnimator(0)
	a.AnimateTo(1.0, t0, 200*time.Millisecond)
	mid := a.Update(t0.Add(100 * time.Millisecond))
	if mid <= 0.5 {
		t.Errorf("midpoint value = %v, want > 0.5 for ease-out", mid)
	}
}

func TestAnimatorRetargetReplaces(t *testing.T) {
	a := NewAnimator(1.0)
	a.AnimateTo(4.0, t0, 200*time.Millisecond)
	a.Update(t0.Add(100 * time.Millisecond))
	atRetarget := a.Value()

	// Last request wins: the new animation starts from the current value
	a.AnimateTo(1.0, t0.Add(100*time.Millisecond), 200*time.Millisecond)
	first := a.Update(t0.Add(110 * time.Millisecond))
	if first > atRetarget {
		t.Errorf("retargeted animation moved away from new target: %v > %v", first, atRetarget)
	}

	final := a.Update(t0.Add(400 * time.Millisecond))
	if math.Abs(final-1.0) > 1e-9 {
		t.Errorf("final = %v, want retargeted 1.0", final)
	}
}

func TestAnimatorSnap(t *testing.T) {
	a := NewAnimator(1.0)
	a.AnimateTo(3.0, t0, time.Second)
	a.Snap(2.5)

	if a.Active() {
		t.Error("Snap left the animation active")
	}
	if got := a.Update(t0.Add(2 * time.Second)); got != 2.5 {
		t.Errorf("value after Snap = %v, want 2.5", got)
	}
}

func TestAnimatorZeroDurationSnaps(t *testing.T) {
	a := NewAnimator(1.0)
	a.AnimateTo(2.0, t0, 0)
	if a.Active() || a.Value() != 2.0 {
		t.Errorf("zero duration: active=%v value=%v, want immediate 2.0", a.Active(), a.Value())
	}
}
