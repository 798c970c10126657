package gesture

import (
	"math"
	"time"
)

// trackState is the finger-count state machine position
type trackState uint8

const (
	stateIdle     trackState = iota // no pointers down
	stateOneTouch                   // single pointer: tap/swipe/long-press territory
	stateTwoTouch                   // two pointers: pinch/rotate/pan tracking
)

// Recognizer derives gesture state and committed events from a raw pointer
// stream. All methods are synchronous and must run on one goroutine; the
// state machine is re-derived from each frame's authoritative point set, so
// garbled frames (lost fingers, stale ids) degrade instead of corrupting
type Recognizer struct {
	opts Options
	sink Sink

	state trackState
	gs    State

	// One-touch tracking
	startPoint TouchPoint
	lastPoint  TouchPoint
	startTime  time.Time

	swipeArmed        bool
	longPressArmed    bool
	longPressFired    bool
	longPressDeadline time.Time

	// Two-touch baselines, rolled forward incrementally
	baseID1, baseID2 int
	baseDistance     float64
	baseAngle        float64
	baseCentroidX    float64
	baseCentroidY    float64

	taps   tapSequencer
	closed bool
}

// NewRecognizer creates a recognizer committing to sink
func NewRecognizer(opts Options, sink Sink) *Recognizer {
	if opts.MaxTapCount <= 0 {
		opts.MaxTapCount = 6
	}
	if opts.MultiTapWindow <= 0 {
		opts.MultiTapWindow = 500 * time.Millisecond
	}
	if opts.MaxScale <= opts.MinScale {
		opts.MinScale, opts.MaxScale = 0.5, 4.0
	}
	return &Recognizer{
		opts: opts,
		sink: sink,
		gs:   State{Scale: 1},
		taps: tapSequencer{window: opts.MultiTapWindow, max: opts.MaxTapCount},
	}
}

// State returns the current gesture state snapshot
func (r *Recognizer) State() State {
	return r.gs
}

// SetScale sets the zoom level, clamped to the configured bounds
func (r *Recognizer) SetScale(s float64) {
	r.gs.Scale = r.clampScale(s)
}

// Recenter zeroes the pan translation
func (r *Recognizer) Recenter() {
	r.gs.TranslateX = 0
	r.gs.TranslateY = 0
}

// ResetRotation zeroes the two-finger rotation
func (r *Recognizer) ResetRotation() {
	r.gs.RotationDeg = 0
}

// Close cancels all pending deadlines and sequences
// Further events are ignored
func (r *Recognizer) Close() {
	r.closed = true
	r.taps.reset()
	r.longPressArmed = false
	r.swipeArmed = false
	r.state = stateIdle
}

// Handle processes one pointer frame synchronously
func (r *Recognizer) Handle(ev PointerEvent) {
	if r.closed {
		return
	}

	switch ev.Kind {
	case PointerStart:
		r.onStart(ev)
	case PointerMove:
		r.onMove(ev)
	case PointerEnd:
		r.onEnd(ev)
	}
}

// Tick fires deadlines that are due: stalled tap commits and long presses
// Drive this from the animation tick or any steady timer
func (r *Recognizer) Tick(now time.Time) {
	if r.closed {
		return
	}

	if c, ok := r.taps.tick(now); ok {
		r.sink.HandleGesture(Event{Type: EventTap, TapCount: c})
	}

	if r.longPressArmed && !r.longPressFired && r.state == stateOneTouch && !now.Before(r.longPressDeadline) {
		r.longPressFired = true
		r.sink.HandleGesture(Event{Type: EventLongPress})
	}
}

func (r *Recognizer) onStart(ev PointerEvent) {
	switch len(ev.Points) {
	case 0:
		// Garbled start with no points: nothing to track
		r.state = stateIdle

	case 1:
		p := ev.Points[0]
		r.state = stateOneTouch
		r.startPoint = p
		r.lastPoint = p
		r.startTime = ev.At

		r.swipeArmed = r.opts.SwipeEnabled
		r.longPressFired = false
		if r.opts.LongPressEnabled {
			r.longPressArmed = true
			r.longPressDeadline = ev.At.Add(r.opts.LongPress)
		}

		if c, ok := r.taps.touch(ev.At); ok {
			r.sink.HandleGesture(Event{Type: EventTap, TapCount: c})
		}

	default:
		r.enterTwoTouch(ev.Points)
	}
}

func (r *Recognizer) onMove(ev PointerEvent) {
	switch len(ev.Points) {
	case 0:
		r.state = stateIdle

	case 1:
		p := ev.Points[0]
		if r.state == stateTwoTouch {
			// Finger lost without a matching end event: fall back cleanly,
			// baselines discarded so the next pinch starts fresh
			r.state = stateOneTouch
			r.resetBaselines()
			r.startPoint = p
			r.startTime = ev.At
			r.swipeArmed = false
			r.longPressArmed = false
		}
		r.lastPoint = p

		if r.longPressArmed && !r.longPressFired {
			if dist(p.X-r.startPoint.X, p.Y-r.startPoint.Y) > r.opts.LongPressSlop {
				r.longPressArmed = false
			}
		}

	default:
		if r.state != stateTwoTouch || !r.sameBaselinePair(ev.Points) {
			// Late or inconsistent frame: re-derive baselines rather than
			// trusting deltas against a different finger pair
			r.enterTwoTouch(ev.Points)
			return
		}
		r.trackTwoTouch(ev.Points)
	}
}

func (r *Recognizer) onEnd(ev PointerEvent) {
	switch len(ev.Points) {
	case 0:
		if r.state == stateOneTouch {
			r.commitSwipe(ev.At)
		}
		r.state = stateIdle
		r.resetBaselines()
		r.longPressArmed = false
		r.longPressFired = false
		r.swipeArmed = false

	case 1:
		// Two fingers down to one: pinch over, no residual scale drift
		r.state = stateOneTouch
		r.resetBaselines()
		r.lastPoint = ev.Points[0]
		// The surviving finger does not restart swipe or long-press; the
		// gesture was a pinch
		r.swipeArmed = false
		r.longPressArmed = false

	default:
		r.enterTwoTouch(ev.Points)
	}
}

func (r *Recognizer) enterTwoTouch(points []TouchPoint) {
	a, b := points[0], points[1]
	r.state = stateTwoTouch
	r.baseID1, r.baseID2 = a.ID, b.ID
	r.baseDistance = dist(b.X-a.X, b.Y-a.Y)
	r.baseAngle = angleBetween(a, b)
	r.baseCentroidX = (a.X + b.X) / 2
	r.baseCentroidY = (a.Y + b.Y) / 2
	r.longPressArmed = false
	r.swipeArmed = false
}

func (r *Recognizer) trackTwoTouch(points []TouchPoint) {
	a, b := points[0], points[1]

	// Pinch: incremental scaling with baseline roll-forward prevents jump
	// discontinuities when the threshold gates small deltas
	d := dist(b.X-a.X, b.Y-a.Y)
	if r.baseDistance > 0 && math.Abs(d-r.baseDistance) > r.opts.PinchThreshold {
		r.gs.Scale = r.clampScale(r.gs.Scale * d / r.baseDistance)
		r.baseDistance = d
	}

	if r.opts.RotateEnabled {
		ang := angleBetween(a, b)
		delta := normDelta(ang - r.baseAngle)
		if math.Abs(delta) > r.opts.RotateThresholdDeg {
			r.gs.RotationDeg += delta
			r.baseAngle = ang
		}
	}

	if r.opts.PanEnabled {
		cx := (a.X + b.X) / 2
		cy := (a.Y + b.Y) / 2
		dx := cx - r.baseCentroidX
		dy := cy - r.baseCentroidY
		if dist(dx, dy) > r.opts.PanThreshold {
			r.gs.TranslateX += dx
			r.gs.TranslateY += dy
			r.baseCentroidX = cx
			r.baseCentroidY = cy
		}
	}
}

func (r *Recognizer) commitSwipe(at time.Time) {
	if !r.swipeArmed {
		return
	}
	r.swipeArmed = false

	dx := r.lastPoint.X - r.startPoint.X
	dy := r.lastPoint.Y - r.startPoint.Y
	d := dist(dx, dy)
	if d <= r.opts.SwipeMinDistance {
		return
	}

	elapsedMs := float64(at.Sub(r.startTime)) / float64(time.Millisecond)
	if elapsedMs <= 0 {
		return
	}
	v := d / elapsedMs
	if v <= r.opts.SwipeMinVelocity {
		return
	}

	r.sink.HandleGesture(Event{
		Type:          EventSwipe,
		Direction:     swipeDirection(dx, dy),
		Distance:      d,
		VelocityPerMs: v,
	})
}

func (r *Recognizer) sameBaselinePair(points []TouchPoint) bool {
	a, b := points[0].ID, points[1].ID
	return (a == r.baseID1 && b == r.baseID2) || (a == r.baseID2 && b == r.baseID1)
}

func (r *Recognizer) resetBaselines() {
	r.baseDistance = 0
	r.baseAngle = 0
	r.baseCentroidX = 0
	r.baseCentroidY = 0
	r.baseID1, r.baseID2 = 0, 0
}

func (r *Recognizer) clampScale(s float64) float64 {
	if s < r.opts.MinScale {
		return r.opts.MinScale
	}
	if s > r.opts.MaxScale {
		return r.opts.MaxScale
	}
	return s
}

func dist(dx, dy float64) float64 {
	return math.Hypot(dx, dy)
}

// angleBetween returns the inter-finger angle in degrees
func angleBetween(a, b TouchPoint) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X) * 180 / math.Pi
}

// normDelta maps an angle difference into (-180,180]
func normDelta(d float64) float64 {
	for d > 180 {
		d -= 360
	}
	for d <= -180 {
		d += 360
	}
	return d
}

// swipeDirection picks the dominant axis; Y grows downward
func swipeDirection(dx, dy float64) SwipeDirection {
	if math.Abs(dx) >= math.Abs(dy) {
		if dx > 0 {
			return SwipeRight
		}
		return SwipeLeft
	}
	if dy > 0 {
		return SwipeDown
	}
	return SwipeUp
}
