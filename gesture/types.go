package gesture

import "time"

// PointerKind distinguishes pointer event categories
type PointerKind uint8

const (
	PointerStart PointerKind = iota
	PointerMove
	PointerEnd
)

// TouchPoint is one active pointer
type TouchPoint struct {
	ID int
	X  float64
	Y  float64
}

// PointerEvent is one frame of the raw pointer stream
// Points is the authoritative set of currently-down pointers after the
// transition; the recognizer trusts it over any remembered continuity.
// Timestamps must be monotonic; the source may be touch or emulated mouse
type PointerEvent struct {
	Kind   PointerKind
	Points []TouchPoint
	At     time.Time
}

// State is the continuously-updated gesture output
type State struct {
	Scale       float64
	TranslateX  float64
	TranslateY  float64
	RotationDeg float64
}

// EventType discriminates committed gesture events
type EventType uint8

const (
	EventNone EventType = iota

	// EventTap commits a debounced tap sequence; TapCount carries 1..MaxTapCount
	EventTap

	// EventSwipe commits a single-finger flick that cleared both the distance
	// and velocity thresholds
	EventSwipe

	// EventLongPress commits a held single finger with no intervening motion
	EventLongPress

	// EventReveal is the opaque "reveal configuration surface" signal
	// Emitted by the mouse-click fallback counter; the touch path reaches it
	// through the launcher's tap(6) binding
	EventReveal
)

// SwipeDirection is the dominant axis of a committed swipe
type SwipeDirection uint8

const (
	SwipeNone SwipeDirection = iota
	SwipeLeft
	SwipeRight
	SwipeUp
	SwipeDown
)

func (d SwipeDirection) String() string {
	switch d {
	case SwipeLeft:
		return "Left"
	case SwipeRight:
		return "Right"
	case SwipeUp:
		return "Up"
	case SwipeDown:
		return "Down"
	}
	return "None"
}

// Event is a committed gesture
// Pure data struct with no engine dependencies
type Event struct {
	Type          EventType
	TapCount      int
	Direction     SwipeDirection
	Distance      float64
	VelocityPerMs float64
}

// Sink receives committed gesture events
// Called synchronously from Handle/Tick on the event-loop goroutine
type Sink interface {
	HandleGesture(ev Event)
}

// SinkFunc adapts a plain function to the Sink interface
type SinkFunc func(ev Event)

func (f SinkFunc) HandleGesture(ev Event) {
	f(ev)
}

// Options are the recognizer thresholds and feature switches
type Options struct {
	MultiTapWindow time.Duration
	LongPress      time.Duration
	MaxTapCount    int

	MinScale       float64
	MaxScale       float64
	PinchThreshold float64 // minimum inter-finger distance delta before scaling

	SwipeMinDistance float64
	SwipeMinVelocity float64 // scene units per millisecond
	LongPressSlop    float64 // motion beyond this cancels the press

	RotateThresholdDeg float64
	PanThreshold       float64

	SwipeEnabled     bool
	LongPressEnabled bool
	RotateEnabled    bool
	PanEnabled       bool
}

// DefaultOptions is the canonical threshold set
func DefaultOptions() Options {
	return Options{
		MultiTapWindow:     500 * time.Millisecond,
		LongPress:          600 * time.Millisecond,
		MaxTapCount:        6,
		MinScale:           0.5,
		MaxScale:           4.0,
		PinchThreshold:     1.0,
		SwipeMinDistance:   8.0,
		SwipeMinVelocity:   0.02,
		LongPressSlop:      4.0,
		RotateThresholdDeg: 0.5,
		PanThreshold:       0.5,
		SwipeEnabled:       true,
		LongPressEnabled:   true,
		RotateEnabled:      true,
		PanEnabled:         true,
	}
}
