package compose

import (
	"math"
	"testing"

	"github.com/megameng/launcher/asset"
	"github.com/megameng/launcher/clock"
	"github.com/megameng/launcher/config"
)

func resolved(c config.ItemConfig) asset.ResolvedItem {
	return asset.ResolvedItem{ItemConfig: c, Resolved: true, Handle: c.AssetRef}
}

func TestComposeHand(t *testing.T) {
	sample := clock.Sample{HourDeg: 90, MinuteDeg: 180, SecondDeg: 270}

	tests := []struct {
		name string
		kind config.HandKind
		tilt float64
		want float64
	}{
		{"Hour", config.HandHour, 0, 90},
		{"Minute", config.HandMinute, 0, 180},
		{"Second", config.HandSecond, 0, 270},
		{"Tilt adds", config.HandMinute, 30, 210},
		{"Tilt wraps", config.HandSecond, 100, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := resolved(config.ItemConfig{
				Code:  "hand",
				Layer: 10,
				Hand:  config.HandBinding{Kind: tt.kind, Source: config.Slot1},
				Slot1: config.RotationSlot{
					Enabled: true,
					TiltDeg: tt.tilt,
					AxisX:   50, AxisY: 100,
					PosX: 5, PosY: -5,
					// Period and direction must be ignored on the hand path
					PeriodSeconds: 1,
					Direction:     config.Clockwise,
				},
			})

			out := Compose(item, sample, nil)
			if len(out.Layers) != 1 {
				t.Fatalf("layers = %d, want 1", len(out.Layers))
			}
			l := out.Layers[0]
			if math.Abs(l.Placement.RotateDeg-tt.want) > 1e-9 {
				t.Errorf("RotateDeg = %v, want %v", l.Placement.RotateDeg, tt.want)
			}
			if l.Spin != nil {
				t.Error("hand layer emitted a spin descriptor")
			}
			if l.Placement.PivotX != 50 || l.Placement.PivotY != 100 {
				t.Errorf("pivot = (%v,%v), want slot axis", l.Placement.PivotX, l.Placement.PivotY)
			}
			if l.Placement.TranslateX != 5 || l.Placement.TranslateY != -5 {
				t.Errorf("translate = (%v,%v), want slot pos", l.Placement.TranslateX, l.Placement.TranslateY)
			}
			if out.Z != 10 {
				t.Errorf("Z = %d, want layer 10", out.Z)
			}
		})
	}
}

func TestComposeHourHandTimezone(t *testing.T) {
	sample := clock.Sample{HourDeg: 90}
	zoneAngle := func(zone config.TimezoneSpec) float64 {
		return 90 + zone.UTCOffsetHours/24*360
	}

	item := resolved(config.ItemConfig{
		Hand:     config.HandBinding{Kind: config.HandHour, Source: config.Slot1},
		Timezone: config.TimezoneSpec{Enabled: true, UTCOffsetHours: 2, Use24HourFace: true},
		Slot1:    config.RotationSlot{Enabled: true, AxisX: 50, AxisY: 100},
	})

	out := Compose(item, sample, zoneAngle)
	if got := out.Layers[0].Placement.RotateDeg; math.Abs(got-120) > 1e-9 {
		t.Errorf("zoned hour RotateDeg = %v, want 120", got)
	}

	// Disabled zone degrades to the device-local hour angle
	item.Timezone.Enabled = false
	out = Compose(item, sample, zoneAngle)
	if got := out.Layers[0].Placement.RotateDeg; math.Abs(got-90) > 1e-9 {
		t.Errorf("local hour RotateDeg = %v, want 90", got)
	}
}

func TestComposeDecorative(t *testing.T) {
	item := resolved(config.ItemConfig{
		Slot1: config.RotationSlot{
			Enabled:       true,
			TiltDeg:       45,
			AxisX:         50,
			AxisY:         400,
			PosY:          -35,
			PeriodSeconds: 90,
			Direction:     config.Clockwise,
		},
	})

	out := Compose(item, clock.Sample{}, nil)
	if len(out.Layers) != 1 {
		t.Fatalf("layers = %d, want 1", len(out.Layers))
	}
	l := out.Layers[0]
	if l.Spin == nil {
		t.Fatal("enabled clockwise slot must emit a spin descriptor")
	}
	if l.Spin.PeriodSeconds != 90 || l.Spin.Direction != config.Clockwise {
		t.Errorf("descriptor = %+v", *l.Spin)
	}
	if l.Spin.FromDeg != 45 || l.Placement.RotateDeg != 45 {
		t.Errorf("initial frame tilt: from=%v rotate=%v, want 45", l.Spin.FromDeg, l.Placement.RotateDeg)
	}
}

// A Static slot never yields a descriptor, enabled or not
func TestComposeStaticNeverSpins(t *testing.T) {
	for _, enabled := range []bool{true, false} {
		item := resolved(config.ItemConfig{
			Slot1: config.RotationSlot{
				Enabled:       enabled,
				TiltDeg:       10,
				PeriodSeconds: 5,
				Direction:     config.Static,
			},
		})
		out := Compose(item, clock.Sample{}, nil)
		if out.Layers[0].Spin != nil {
			t.Errorf("enabled=%v: Static slot emitted a descriptor", enabled)
		}
		if out.Layers[0].Placement.RotateDeg != 10 {
			t.Errorf("enabled=%v: RotateDeg = %v, want tilt 10", enabled, out.Layers[0].Placement.RotateDeg)
		}
	}
}

func TestComposeDualSlots(t *testing.T) {
	item := resolved(config.ItemConfig{
		Slot1: config.RotationSlot{
			Enabled: true, PeriodSeconds: 6, Direction: config.Clockwise,
			AxisX: 50, AxisY: 50,
		},
		Slot2: config.RotationSlot{
			Enabled: true, PeriodSeconds: 45, Direction: config.CounterClockwise,
			AxisX: 50, AxisY: 300, PosY: -25,
		},
	})

	out := Compose(item, clock.Sample{}, nil)
	if len(out.Layers) != 2 {
		t.Fatalf("layers = %d, want 2 independent rotations", len(out.Layers))
	}
	if out.Layers[0].Spin == nil || out.Layers[1].Spin == nil {
		t.Fatal("both enabled slots must spin")
	}
	if out.Layers[1].Spin.Direction != config.CounterClockwise {
		t.Errorf("slot2 direction = %v", out.Layers[1].Spin.Direction)
	}
}

// Hand binding plus an independently enabled second slot: both layers emitted
func TestComposeHandPlusDecoration(t *testing.T) {
	item := resolved(config.ItemConfig{
		Hand:  config.HandBinding{Kind: config.HandSecond, Source: config.Slot1},
		Slot1: config.RotationSlot{Enabled: true, AxisX: 50, AxisY: 100},
		Slot2: config.RotationSlot{
			Enabled: true, PeriodSeconds: 10, Direction: config.Clockwise,
			AxisX: 50, AxisY: 50, PosX: 40,
		},
	})

	out := Compose(item, clock.Sample{SecondDeg: 42}, nil)
	if len(out.Layers) != 2 {
		t.Fatalf("layers = %d, want hand + decoration", len(out.Layers))
	}
	if out.Layers[0].Spin != nil {
		t.Error("hand layer must not spin")
	}
	if out.Layers[0].Placement.RotateDeg != 42 {
		t.Errorf("hand RotateDeg = %v, want 42", out.Layers[0].Placement.RotateDeg)
	}
	if out.Layers[1].Spin == nil {
		t.Error("unbound enabled slot must keep its decorative spin")
	}
}

func TestComposeEffects(t *testing.T) {
	item := resolved(config.ItemConfig{
		EffectsEnabled: true,
		Effects:        config.Effects{Glow: true, Pulse: true},
	})
	out := Compose(item, clock.Sample{}, nil)
	if len(out.Effects) != 2 || out.Effects[0] != EffectGlow || out.Effects[1] != EffectPulse {
		t.Errorf("effects = %v, want [Glow Pulse]", out.Effects)
	}

	// Master switch off suppresses all directives
	item.EffectsEnabled = false
	out = Compose(item, clock.Sample{}, nil)
	if len(out.Effects) != 0 {
		t.Errorf("effects = %v, want none with master switch off", out.Effects)
	}
}
