package clock

import (
	"time"

	"github.com/megameng/launcher/angle"
)

// Sample is one reading of the three hand angles, each normalized to [0,360)
// Minute and second angles are identical worldwide under the fixed-offset
// timezone model; only the hour angle is ever zone-shifted
type Sample struct {
	HourDeg   float64
	MinuteDeg float64
	SecondDeg float64
}

// Engine produces clock samples from an injected time source
// Pure computation, no scheduling; pair with Scheduler for discrete ticks or
// call Sample once per display-refresh callback for continuous motion
type Engine struct {
	tp TimeProvider
}

// NewEngine creates a clock engine reading from tp
func NewEngine(tp TimeProvider) *Engine {
	return &Engine{tp: tp}
}

// Sample returns the device-local sample for the current instant
func (e *Engine) Sample() Sample {
	return SampleAt(e.tp.Now())
}

// HourAngleShifted returns the hour angle for the current instant shifted by
// a fixed UTC offset, on a 24-hour or 12-hour face
func (e *Engine) HourAngleShifted(utcOffsetHours float64, use24HourFace bool) float64 {
	return HourAngleShiftedAt(e.tp.Now(), utcOffsetHours, use24HourFace)
}

// SampleAt returns the device-local sample for instant t
func SampleAt(t time.Time) Sample {
	h, m, s := t.Clock()
	ms := t.Nanosecond() / int(time.Millisecond)
	return Sample{
		HourDeg:   angle.HourAngle24(h, m, s, ms),
		MinuteDeg: angle.MinuteAngle(m, s, ms),
		SecondDeg: angle.SecondAngle(s, ms),
	}
}

const (
	millisPerHour = 3_600_000
	millisPerDay  = 86_400_000
)

// HourAngleShiftedAt computes a fixed-offset hour angle for instant t
// The instant's UTC epoch millis are shifted by utcOffsetHours, then the
// hour-of-day of the shifted instant feeds the face formula. Offsets outside
// [-12,12] are accepted as-is and simply land outside the realistic range
func HourAngleShiftedAt(t time.Time, utcOffsetHours float64, use24HourFace bool) float64 {
	shifted := t.UnixMilli() + int64(utcOffsetHours*millisPerHour)
	msOfDay := shifted % millisPerDay
	if msOfDay < 0 {
		msOfDay += millisPerDay
	}

	h := int(msOfDay / millisPerHour)
	rem := msOfDay % millisPerHour
	m := int(rem / 60_000)
	rem %= 60_000
	s := int(rem / 1000)
	ms := int(rem % 1000)

	if use24HourFace {
		return angle.HourAngle24(h, m, s, ms)
	}
	return angle.HourAngle12(h, m, s, ms)
}
