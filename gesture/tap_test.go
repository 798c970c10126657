package gesture

import (
	"testing"
	"time"
)

func TestClickCounterRevealsAtMax(t *testing.T) {
	sink := &recordingSink{}
	c := NewClickCounter(500*time.Millisecond, 6, sink)

	at := t0
	for i := 0; i < 6; i++ {
		c.Click(at)
		at = at.Add(150 * time.Millisecond)
	}

	reveals := sink.ofType(EventReveal)
	if len(reveals) != 1 {
		t.Fatalf("reveal events = %d, want 1", len(reveals))
	}

	// Counter reset after commit: five more clicks commit nothing
	for i := 0; i < 5; i++ {
		c.Click(at)
		at = at.Add(150 * time.Millisecond)
	}
	c.Tick(at.Add(time.Second))
	if got := sink.ofType(EventReveal); len(got) != 1 {
		t.Errorf("reveals after reset = %d, want still 1", len(got))
	}
}

func TestClickCounterStallCommitsNothing(t *testing.T) {
	sink := &recordingSink{}
	c := NewClickCounter(500*time.Millisecond, 6, sink)

	for i := 0; i < 5; i++ {
		c.Click(t0.Add(time.Duration(i) * 100 * time.Millisecond))
	}
	c.Tick(t0.Add(5 * time.Second))

	if len(sink.events) != 0 {
		t.Errorf("stalled click run emitted %+v, want nothing below max", sink.events)
	}
}

func TestClickCounterWindowRestart(t *testing.T) {
	sink := &recordingSink{}
	c := NewClickCounter(500*time.Millisecond, 3, sink)

	c.Click(t0)
	c.Click(t0.Add(200 * time.Millisecond))
	// Gap exceeds the window: restart, so three more are needed
	c.Click(t0.Add(time.Second))
	c.Click(t0.Add(1200 * time.Millisecond))
	if len(sink.ofType(EventReveal)) != 0 {
		t.Fatal("reveal fired before a full fresh run")
	}
	c.Click(t0.Add(1400 * time.Millisecond))
	if len(sink.ofType(EventReveal)) != 1 {
		t.Error("reveal missing after fresh run of 3")
	}
}

func TestClickCounterIndependentOfRecognizer(t *testing.T) {
	// The touch sequencer and the click counter never share state: taps on
	// one must not advance the other
	touchSink := &recordingSink{}
	clickSink := &recordingSink{}
	r := NewRecognizer(DefaultOptions(), touchSink)
	c := NewClickCounter(500*time.Millisecond, 6, clickSink)

	at := t0
	for i := 0; i < 3; i++ {
		tapAt(r, at)
		c.Click(at)
		at = at.Add(150 * time.Millisecond)
	}
	for i := 0; i < 3; i++ {
		c.Click(at)
		at = at.Add(150 * time.Millisecond)
	}

	if got := clickSink.ofType(EventReveal); len(got) != 1 {
		t.Errorf("click counter reveals = %d, want 1 from its own six clicks", len(got))
	}
	if got := touchSink.ofType(EventTap); len(got) != 0 {
		t.Errorf("recognizer committed %+v with only 3 touches and no tick", got)
	}
}
