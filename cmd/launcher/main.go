// Terminal front-end for the clock-face launcher core.
// Left mouse button emulates a touch pointer (press/drag/release become
// pointer frames), the right button feeds the click-fallback counter, and the
// wheel zooms. The spin descriptors emitted by the composer are animated here,
// on the renderer's own timeline; only the hands are recomputed per frame.
package main

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/megameng/launcher/asset"
	"github.com/megameng/launcher/clock"
	"github.com/megameng/launcher/compose"
	"github.com/megameng/launcher/config"
	"github.com/megameng/launcher/gesture"
	"github.com/megameng/launcher/launcher"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

type App struct {
	screen        tcell.Screen
	core          *launcher.Core
	log           zerolog.Logger
	width, height int

	startedAt time.Time

	// Mouse-as-touch state
	buttonDown bool

	// Reveal banner flash
	revealUntil time.Time

	audioInit bool
}

func newApp(log zerolog.Logger) (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()

	a := &App{
		screen:    screen,
		log:       log,
		startedAt: time.Now(),
	}
	a.width, a.height = screen.Size()

	settings, err := config.Load(".", log)
	if err != nil {
		screen.Fini()
		return nil, err
	}

	// Terminal assets are glyphs; every reference resolves to a marker rune
	resolver := asset.ResolverFunc(func(ref string) (asset.Handle, bool) {
		return markerFor(ref), true
	})
	reg := asset.NewRegistry(settings.Items, resolver, log)

	a.core = launcher.New(settings, reg, clock.NewSystemTime(), a.onReveal, log,
		launcher.WithForwardSink(gesture.SinkFunc(a.onGesture)))

	if err := a.initAudio(); err != nil {
		// Non-fatal, the launcher runs silent
		log.Warn().Err(err).Msg("audio initialization failed")
	}

	return a, nil
}

func markerFor(ref string) rune {
	switch ref {
	case "moon.png":
		return 'o'
	case "comet.png":
		return '*'
	case "cap.png":
		return '@'
	}
	return '.'
}

func (a *App) initAudio() error {
	sampleRate := beep.SampleRate(44100)
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err == nil {
		a.audioInit = true
	}
	return err
}

func (a *App) playTone(freq float64, d time.Duration) {
	if !a.audioInit {
		return
	}
	sampleRate := beep.SampleRate(44100)
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}

func (a *App) onReveal() {
	a.revealUntil = time.Now().Add(2 * time.Second)
	a.playTone(880, 120*time.Millisecond)
}

func (a *App) onGesture(ev gesture.Event) {
	switch ev.Type {
	case gesture.EventTap:
		a.playTone(440+float64(ev.TapCount)*60, 40*time.Millisecond)
	case gesture.EventSwipe:
		a.playTone(330, 60*time.Millisecond)
	case gesture.EventLongPress:
		a.playTone(220, 150*time.Millisecond)
	}
}

func (a *App) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}

	case *tcell.EventResize:
		a.width, a.height = a.screen.Size()
		a.screen.Sync()

	case *tcell.EventMouse:
		a.handleMouse(ev)
	}
	return true
}

// handleMouse adapts terminal mouse events into pointer frames
// A terminal reports one pointer at most, so pinch never occurs here; taps,
// swipes and long presses all work from button timing alone
func (a *App) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	now := time.Now()
	point := gesture.TouchPoint{ID: 1, X: float64(x), Y: float64(y)}

	switch {
	case ev.Buttons()&tcell.Button1 != 0:
		kind := gesture.PointerMove
		if !a.buttonDown {
			kind = gesture.PointerStart
			a.buttonDown = true
		}
		a.core.HandlePointer(gesture.PointerEvent{
			Kind:   kind,
			Points: []gesture.TouchPoint{point},
			At:     now,
		})

	case ev.Buttons()&tcell.Button2 != 0:
		// Right button: the no-touch fallback counter
		a.core.Click(now)

	case ev.Buttons()&tcell.WheelUp != 0:
		a.nudgeZoom(1.1)

	case ev.Buttons()&tcell.WheelDown != 0:
		a.nudgeZoom(1 / 1.1)

	default:
		if a.buttonDown {
			a.buttonDown = false
			a.core.HandlePointer(gesture.PointerEvent{Kind: gesture.PointerEnd, At: now})
		}
	}
}

// nudgeZoom emulates a pinch with a synthetic two-pointer frame pair
func (a *App) nudgeZoom(factor float64) {
	now := time.Now()
	base := 100.0
	a.core.HandlePointer(gesture.PointerEvent{
		Kind: gesture.PointerStart,
		Points: []gesture.TouchPoint{
			{ID: 8, X: 0, Y: 0}, {ID: 9, X: base, Y: 0},
		},
		At: now,
	})
	a.core.HandlePointer(gesture.PointerEvent{
		Kind: gesture.PointerMove,
		Points: []gesture.TouchPoint{
			{ID: 8, X: 0, Y: 0}, {ID: 9, X: base * factor, Y: 0},
		},
		At: now.Add(time.Millisecond),
	})
	a.core.HandlePointer(gesture.PointerEvent{Kind: gesture.PointerEnd, At: now.Add(2 * time.Millisecond)})
}

// spinAngle advances a descriptor on the renderer's timeline
func (a *App) spinAngle(spin *compose.SpinDescriptor, now time.Time) float64 {
	if spin.PeriodSeconds <= 0 {
		return spin.FromDeg
	}
	elapsed := now.Sub(a.startedAt).Seconds()
	turn := elapsed / spin.PeriodSeconds * 360
	if spin.Direction == config.CounterClockwise {
		turn = -turn
	}
	return spin.FromDeg + turn
}

func (a *App) draw(frame launcher.Frame, now time.Time) {
	a.screen.Clear()

	cx := float64(a.width)/2 + frame.Gesture.TranslateX
	cy := float64(a.height)/2 + frame.Gesture.TranslateY
	radius := math.Min(float64(a.width)/4, float64(a.height)/2) - 1
	radius *= frame.Gesture.Scale
	if radius < 2 {
		radius = 2
	}

	// Items arrive z-ascending: later draws paint over earlier ones
	for _, item := range frame.Items {
		marker, _ := item.Handle.(rune)
		for _, layer := range item.Layers {
			deg := layer.Placement.RotateDeg
			if layer.Spin != nil {
				deg = a.spinAngle(layer.Spin, now)
			}
			deg += frame.Gesture.RotationDeg

			if layer.Spin == nil && item.Code != "dial" && item.Code != "cap" {
				a.drawRay(cx, cy, radius*item.SizePercent/100, deg, rayRune(item.Code))
			} else {
				a.drawOrbitMarker(cx, cy, radius, deg, layer, marker)
			}
		}
	}

	a.drawStatus(frame, now)
	a.screen.Show()
}

// drawRay renders a hand as a line of cells from the center outward
// Angle 0 points up (12 o'clock), clockwise positive
func (a *App) drawRay(cx, cy, length, deg float64, r rune) {
	rad := (deg - 90) * math.Pi / 180
	steps := int(length)
	for i := 1; i <= steps; i++ {
		f := float64(i)
		// Cells are roughly twice as tall as wide
		x := int(cx + math.Cos(rad)*f*2)
		y := int(cy + math.Sin(rad)*f)
		if x >= 0 && x < a.width && y >= 0 && y < a.height {
			a.screen.SetContent(x, y, r, nil, tcell.StyleDefault.Foreground(tcell.ColorWhite))
		}
	}
}

func (a *App) drawOrbitMarker(cx, cy, radius, deg float64, layer compose.Layer, marker rune) {
	rad := (deg - 90) * math.Pi / 180
	r := radius * 0.9
	x := int(cx + math.Cos(rad)*r*2 + layer.Placement.TranslateX/100*radius)
	y := int(cy + math.Sin(rad)*r + layer.Placement.TranslateY/100*radius/2)
	if x >= 0 && x < a.width && y >= 0 && y < a.height {
		a.screen.SetContent(x, y, marker, nil, tcell.StyleDefault.Foreground(tcell.ColorYellow))
	}
}

func rayRune(code string) rune {
	switch code {
	case "hand-second":
		return '·'
	case "hand-minute":
		return '|'
	}
	return '█'
}

func (a *App) drawStatus(frame launcher.Frame, now time.Time) {
	status := fmt.Sprintf(" %s  scale %.2f ", now.Format("15:04:05"), frame.Gesture.Scale)
	for i, r := range status {
		if i < a.width {
			a.screen.SetContent(i, a.height-1, r, nil, tcell.StyleDefault.Foreground(tcell.ColorGray))
		}
	}

	if now.Before(a.revealUntil) {
		banner := " CONFIGURATION SURFACE REQUESTED "
		x0 := (a.width - len(banner)) / 2
		for i, r := range banner {
			if x0+i >= 0 && x0+i < a.width {
				a.screen.SetContent(x0+i, 0, r, nil,
					tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow))
			}
		}
	}
}

func (a *App) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- a.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !a.handleInput(ev) {
				return
			}

		case <-ticker.C:
			now := time.Now()
			a.draw(a.core.Frame(now), now)
		}
	}
}

func (a *App) cleanup() {
	a.core.Close()
	if a.audioInit {
		speaker.Close()
	}
	a.screen.Fini()
}

func newLogger() zerolog.Logger {
	path := os.Getenv("LAUNCHER_LOG")
	if path == "" {
		return zerolog.Nop()
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop()
	}
	return zerolog.New(f).With().Timestamp().Logger()
}

func main() {
	app, err := newApp(newLogger())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer app.cleanup()

	app.run()
}
