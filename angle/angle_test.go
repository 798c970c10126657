package angle

import (
	"math"
	"testing"
)

func TestNormalize360(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"Zero", 0, 0},
		{"In range", 123.5, 123.5},
		{"Exact wrap", 360, 0},
		{"Above range", 450, 90},
		{"Negative", -90, 270},
		{"Large negative", -1080, 0},
		{"Multiple wraps", 725, 5},
		{"Fractional negative", -0.5, 359.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize360(tt.in)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Normalize360(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalize360Range(t *testing.T) {
	// Sweep a wide range and verify codomain plus congruence mod 360
	for x := -7200.0; x < 7200.0; x += 17.31 {
		got := Normalize360(x)
		if got < 0 || got >= 360 {
			t.Fatalf("Normalize360(%v) = %v, outside [0,360)", x, got)
		}
		diff := math.Mod(got-x, 360)
		if diff < 0 {
			diff += 360
		}
		if diff > 1e-6 && math.Abs(diff-360) > 1e-6 {
			t.Fatalf("Normalize360(%v) = %v, not congruent mod 360", x, got)
		}
	}
}

func TestHourAngle24(t *testing.T) {
	tests := []struct {
		name                            string
		hours, minutes, seconds, millis int
		want                            float64
	}{
		{"Noon", 12, 0, 0, 0, 0},
		{"Midnight", 0, 0, 0, 0, 180},
		{"Dusk", 18, 0, 0, 0, 90},
		{"Dawn", 6, 0, 0, 0, 270},
		{"One past noon", 13, 0, 0, 0, 15},
		{"Half hour", 12, 30, 0, 0, 7.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HourAngle24(tt.hours, tt.minutes, tt.seconds, tt.millis)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("HourAngle24(%d,%d,%d,%d) = %v, want %v",
					tt.hours, tt.minutes, tt.seconds, tt.millis, got, tt.want)
			}
		})
	}
}

func TestHourAngle12(t *testing.T) {
	tests := []struct {
		name                            string
		hours, minutes, seconds, millis int
		want                            float64
	}{
		{"Twelve", 12, 0, 0, 0, 0},
		{"Three", 3, 0, 0, 0, 90},
		{"Fifteen hundred", 15, 0, 0, 0, 90},
		{"Six", 6, 0, 0, 0, 180},
		{"Half past nine", 9, 30, 0, 0, 285},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HourAngle12(tt.hours, tt.minutes, tt.seconds, tt.millis)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("HourAngle12(%d,%d,%d,%d) = %v, want %v",
					tt.hours, tt.minutes, tt.seconds, tt.millis, got, tt.want)
			}
		})
	}
}

func TestMinuteAndSecondAngle(t *testing.T) {
	if got := MinuteAngle(0, 30, 0); math.Abs(got-3) > 1e-9 {
		t.Errorf("MinuteAngle(0,30,0) = %v, want 3", got)
	}
	if got := MinuteAngle(15, 0, 0); math.Abs(got-90) > 1e-9 {
		t.Errorf("MinuteAngle(15,0,0) = %v, want 90", got)
	}
	if got := SecondAngle(15, 0); math.Abs(got-90) > 1e-9 {
		t.Errorf("SecondAngle(15,0) = %v, want 90", got)
	}
	if got := SecondAngle(59, 999); got >= 360 || got < 354 {
		t.Errorf("SecondAngle(59,999) = %v, want just under 360", got)
	}
}

func TestSubSecondSmoothing(t *testing.T) {
	// Angle must advance monotonically within one second
	prev := SecondAngle(30, 0)
	for ms := 100; ms < 1000; ms += 100 {
		cur := SecondAngle(30, ms)
		if cur <= prev {
			t.Fatalf("SecondAngle(30,%d) = %v, not greater than %v", ms, cur, prev)
		}
		prev = cur
	}
}
