package launcher

import (
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/megameng/launcher/asset"
	"github.com/megameng/launcher/clock"
	"github.com/megameng/launcher/compose"
	"github.com/megameng/launcher/config"
	"github.com/megameng/launcher/gesture"
)

// Frame is the per-tick view handed to the presentation layer: the
// displayable items with their transforms plus the current gesture state
type Frame struct {
	Items   []compose.RenderItem
	Gesture gesture.State
}

// RevealFunc receives the opaque "reveal configuration surface" signal
// No payload beyond the trigger
type RevealFunc func()

// Core wires the clock engine, transform composer and gesture recognizer
// together and owns the tap-count action bindings. Methods are safe for
// concurrent use; internally everything runs under one lock, so gesture
// callbacks observe a consistent snapshot
type Core struct {
	mu sync.Mutex

	log      zerolog.Logger
	settings config.Settings

	tp     clock.TimeProvider
	engine *clock.Engine

	recognizer *gesture.Recognizer
	clicks     *gesture.ClickCounter
	zoom       *gesture.Animator

	reveal  RevealFunc
	forward gesture.Sink // optional: committed events beyond the built-in bindings

	scheduler *clock.Scheduler

	// Pre-filtered at construction: visible, resolved, z-ascending
	displayable []asset.ResolvedItem

	closed bool
}

// Option configures optional Core collaborators
type Option func(*Core)

// WithForwardSink forwards every committed gesture event (taps, swipes, long
// presses) to sink after the built-in bindings run
func WithForwardSink(sink gesture.Sink) Option {
	return func(c *Core) { c.forward = sink }
}

// New builds a launcher core from loaded settings and a populated registry
func New(settings config.Settings, reg *asset.Registry, tp clock.TimeProvider, reveal RevealFunc, log zerolog.Logger, opts ...Option) *Core {
	c := &Core{
		log:      log,
		settings: settings,
		tp:       tp,
		engine:   clock.NewEngine(tp),
		zoom:     gesture.NewAnimator(1.0),
		reveal:   reveal,
	}

	gopts := gesture.DefaultOptions()
	gopts.MultiTapWindow = time.Duration(settings.MultiTapWindowMs) * time.Millisecond
	gopts.LongPress = time.Duration(settings.LongPressMs) * time.Millisecond
	gopts.MaxTapCount = settings.MaxTapCount
	gopts.MinScale = settings.MinScale
	gopts.MaxScale = settings.MaxScale
	gopts.PinchThreshold = settings.PinchThreshold
	gopts.SwipeMinDistance = settings.SwipeMinDistance
	gopts.SwipeMinVelocity = settings.SwipeMinVelocity

	c.recognizer = gesture.NewRecognizer(gopts, gesture.SinkFunc(c.handleGesture))
	c.clicks = gesture.NewClickCounter(gopts.MultiTapWindow, gopts.MaxTapCount, gesture.SinkFunc(c.handleGesture))

	c.displayable = displayableItems(reg)
	for _, o := range opts {
		o(c)
	}

	log.Info().
		Int("items", len(reg.Items())).
		Int("displayable", len(c.displayable)).
		Msg("launcher core ready")

	return c
}

// displayableItems filters and z-sorts once per configuration load
// Unresolved or invisible items never reach the composer; duplicate layers
// keep configuration order (stable sort)
func displayableItems(reg *asset.Registry) []asset.ResolvedItem {
	var out []asset.ResolvedItem
	for _, it := range reg.Items() {
		if it.Visible && it.Resolved {
			out = append(out, it)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Layer < out[j].Layer
	})
	return out
}

// HandlePointer feeds one pointer frame into the recognizer
func (c *Core) HandlePointer(ev gesture.PointerEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.recognizer.Handle(ev)
}

// Click feeds the mouse-click fallback counter
func (c *Core) Click(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.clicks.Click(now)
}

// Frame advances timers to now and returns the current view
// Call once per display refresh for continuous motion, or from the scheduler
// callback in discrete mode
func (c *Core) Frame(now time.Time) Frame {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.recognizer.Tick(now)
	c.clicks.Tick(now)
	if c.zoom.Active() {
		c.recognizer.SetScale(c.zoom.Update(now))
	}

	sample := clock.SampleAt(now)
	hourAngle := func(zone config.TimezoneSpec) float64 {
		return clock.HourAngleShiftedAt(now, zone.UTCOffsetHours, zone.Use24HourFace)
	}

	items := make([]compose.RenderItem, 0, len(c.displayable))
	for _, it := range c.displayable {
		items = append(items, compose.Compose(it, sample, hourAngle))
	}

	return Frame{Items: items, Gesture: c.recognizer.State()}
}

// Start begins discrete-mode ticking: onFrame is invoked with a fresh view at
// the configured fixed interval until Close
func (c *Core) Start(onFrame func(Frame)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.scheduler != nil {
		return
	}

	interval := time.Duration(c.settings.TickIntervalMs) * time.Millisecond
	c.scheduler = clock.NewScheduler(c.engine, c.tp, interval, func(clock.Sample) {
		onFrame(c.Frame(c.tp.Now()))
	})
	c.scheduler.Start()
}

// Close cancels all pending timers and in-flight animations
// No gesture state survives teardown
func (c *Core) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	sched := c.scheduler
	c.recognizer.Close()
	c.clicks.Reset()
	c.zoom.Snap(c.zoom.Value())
	c.mu.Unlock()

	// Stop outside the lock: the scheduler callback takes it via Frame
	if sched != nil {
		sched.Stop()
	}
	c.log.Info().Msg("launcher core closed")
}

// handleGesture runs the built-in tap bindings
// Invoked synchronously by the recognizer and click counter while the Core
// lock is already held; must not relock
func (c *Core) handleGesture(ev gesture.Event) {
	switch ev.Type {
	case gesture.EventTap:
		c.applyTap(ev.TapCount)

	case gesture.EventReveal:
		// Mouse-click fallback path
		c.fireReveal()

	case gesture.EventSwipe:
		c.log.Debug().
			Stringer("direction", ev.Direction).
			Float64("distance", ev.Distance).
			Msg("swipe")

	case gesture.EventLongPress:
		c.log.Debug().Msg("long press")
	}

	if c.forward != nil {
		c.forward.HandleGesture(ev)
	}
}

// applyTap maps committed tap counts to actions
// Counts outside the bound range commit nothing but still reset the sequence
func (c *Core) applyTap(count int) {
	now := c.tp.Now()
	animDur := time.Duration(c.settings.ZoomAnimationMs) * time.Millisecond

	switch count {
	case 2:
		// Toggle between rest and the double-tap zoom level, animated
		target := c.settings.DoubleTapScale
		if c.recognizer.State().Scale != 1 {
			target = 1
		}
		c.zoom.Snap(c.recognizer.State().Scale)
		c.zoom.AnimateTo(target, now, animDur)

	case 3:
		c.recognizer.Recenter()

	case 4:
		c.zoom.Snap(1)
		c.recognizer.SetScale(1)

	case 5:
		c.zoom.Snap(1)
		c.recognizer.SetScale(1)
		c.recognizer.Recenter()
		c.recognizer.ResetRotation()

	case 6:
		c.fireReveal()
	}
}

func (c *Core) fireReveal() {
	c.log.Info().Msg("reveal configuration surface")
	if c.reveal != nil {
		c.reveal()
	}
}
