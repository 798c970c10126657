package compose

import (
	"github.com/megameng/launcher/angle"
	"github.com/megameng/launcher/asset"
	"github.com/megameng/launcher/clock"
	"github.com/megameng/launcher/config"
)

// Placement is the final 2D placement of one transform layer
// Translate is percent of the scene, pivot is percent of the item's own box
type Placement struct {
	TranslateX float64
	TranslateY float64
	RotateDeg  float64
	PivotX     float64
	PivotY     float64
}

// SpinDescriptor is continuous-animation metadata for the render adapter
// One signed full revolution every PeriodSeconds starting from FromDeg; the
// adapter turns this into a native animation timeline, the composer never
// recomputes spinning layers per frame
type SpinDescriptor struct {
	FromDeg       float64
	PeriodSeconds float64
	Direction     config.Direction // Clockwise or CounterClockwise, never Static
}

// Layer is one transform layer of an item
// Hands and static slots carry only a placement; decorative spinning slots
// additionally carry a descriptor
type Layer struct {
	Placement Placement
	Spin      *SpinDescriptor
}

// EffectDirective is an additive visual effect for the render adapter
type EffectDirective uint8

const (
	EffectShadow EffectDirective = iota
	EffectGlow
	EffectTransparent
	EffectPulse
)

func (e EffectDirective) String() string {
	switch e {
	case EffectShadow:
		return "Shadow"
	case EffectGlow:
		return "Glow"
	case EffectTransparent:
		return "Transparent"
	case EffectPulse:
		return "Pulse"
	}
	return "Unknown"
}

// RenderItem is the composed output for one displayable item
// Layers holds one entry for a plain item, two when a second rotation or a
// hand-plus-decoration pairing is active. Z ascending is farther back
type RenderItem struct {
	Code        string
	Handle      asset.Handle
	SizePercent float64
	Z           int
	Layers      []Layer
	Effects     []EffectDirective
}

// HourAngleFunc resolves the timezone-shifted hour angle for an enabled zone
// Wired to the clock engine by the launcher; compose stays clock-agnostic
type HourAngleFunc func(zone config.TimezoneSpec) float64

// Compose builds the render output for one item against the current sample
// The caller filters invisible and unresolved items; Compose assumes the item
// is displayable
func Compose(item asset.ResolvedItem, sample clock.Sample, hourAngle HourAngleFunc) RenderItem {
	out := RenderItem{
		Code:        item.Code,
		Handle:      item.Handle,
		SizePercent: item.SizePercent,
		Z:           item.Layer,
		Layers:      make([]Layer, 0, 2),
	}

	if item.Hand.Kind != config.HandNone {
		bound := item.BoundSlot()
		out.Layers = append(out.Layers, handLayer(&item, bound, sample, hourAngle))

		// The unbound slot can still spin decoratively
		if other := otherSlot(&item.ItemConfig, bound); other.Enabled {
			out.Layers = append(out.Layers, decorativeLayer(other))
		}
	} else {
		out.Layers = append(out.Layers, decorativeLayer(&item.Slot1))
		if item.Slot2.Enabled {
			out.Layers = append(out.Layers, decorativeLayer(&item.Slot2))
		}
	}

	if item.EffectsEnabled {
		out.Effects = effectDirectives(item.Effects)
	}

	return out
}

// handLayer places a live clock hand
// The slot's PeriodSeconds and Direction are never read here
func handLayer(item *asset.ResolvedItem, slot *config.RotationSlot, sample clock.Sample, hourAngle HourAngleFunc) Layer {
	var a float64
	switch item.Hand.Kind {
	case config.HandHour:
		if item.Timezone.Enabled && hourAngle != nil {
			a = hourAngle(item.Timezone)
		} else {
			a = sample.HourDeg
		}
	case config.HandMinute:
		a = sample.MinuteDeg
	case config.HandSecond:
		a = sample.SecondDeg
	}

	return Layer{Placement: Placement{
		TranslateX: slot.PosX,
		TranslateY: slot.PosY,
		RotateDeg:  angle.Normalize360(slot.TiltDeg + a),
		PivotX:     slot.AxisX,
		PivotY:     slot.AxisY,
	}}
}

// decorativeLayer places a non-hand slot and, for enabled non-Static slots,
// attaches the continuous-animation descriptor
func decorativeLayer(slot *config.RotationSlot) Layer {
	l := Layer{Placement: Placement{
		TranslateX: slot.PosX,
		TranslateY: slot.PosY,
		RotateDeg:  angle.Normalize360(slot.TiltDeg),
		PivotX:     slot.AxisX,
		PivotY:     slot.AxisY,
	}}

	if slot.Enabled && slot.Direction != config.Static {
		l.Spin = &SpinDescriptor{
			FromDeg:       angle.Normalize360(slot.TiltDeg),
			PeriodSeconds: slot.PeriodSeconds,
			Direction:     slot.Direction,
		}
	}

	return l
}

func otherSlot(item *config.ItemConfig, bound *config.RotationSlot) *config.RotationSlot {
	if bound == &item.Slot1 {
		return &item.Slot2
	}
	return &item.Slot1
}

func effectDirectives(e config.Effects) []EffectDirective {
	var out []EffectDirective
	if e.Shadow {
		out = append(out, EffectShadow)
	}
	if e.Glow {
		out = append(out, EffectGlow)
	}
	if e.Transparent {
		out = append(out, EffectTransparent)
	}
	if e.Pulse {
		out = append(out, EffectPulse)
	}
	return out
}
