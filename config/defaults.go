package config

// DefaultItems returns the built-in face: three hands, a dial plate, and a
// handful of decorative layers. The full product shipped twenty layers; the
// built-in set keeps one representative of every behavior so the engine paths
// are all exercised without a config file
func DefaultItems() []ItemConfig {
	centered := RotationSlot{
		Enabled: true,
		AxisX:   50,
		AxisY:   50,
	}

	return []ItemConfig{
		{
			Code:        "dial",
			DisplayName: "Dial plate",
			AssetRef:    "dial.png",
			Layer:       1,
			SizePercent: 100,
			Visible:     true,
			Slot1:       centered, // enabled but Static: fixed placement only
		},
		{
			Code:        "orbit-moon",
			DisplayName: "Orbiting moon",
			AssetRef:    "moon.png",
			Layer:       3,
			SizePercent: 12,
			Visible:     true,
			Slot1: RotationSlot{
				Enabled:       true,
				AxisX:         50,
				AxisY:         400, // pivots well below its own box: an orbit
				PosY:          -35,
				PeriodSeconds: 90,
				Direction:     Clockwise,
			},
		},
		{
			Code:        "spinner",
			DisplayName: "Counter-rotating ring",
			AssetRef:    "ring.png",
			Layer:       4,
			SizePercent: 80,
			Visible:     true,
			EffectsEnabled: true,
			Effects:        Effects{Glow: true, Transparent: true},
			Slot1: RotationSlot{
				Enabled:       true,
				AxisX:         50,
				AxisY:         50,
				PeriodSeconds: 120,
				Direction:     CounterClockwise,
			},
		},
		{
			// Two simultaneously enabled slots: spin in place plus orbit
			Code:        "comet",
			DisplayName: "Comet",
			AssetRef:    "comet.png",
			Layer:       5,
			SizePercent: 8,
			Visible:     true,
			Slot1: RotationSlot{
				Enabled:       true,
				AxisX:         50,
				AxisY:         50,
				PeriodSeconds: 6,
				Direction:     Clockwise,
			},
			Slot2: RotationSlot{
				Enabled:       true,
				AxisX:         50,
				AxisY:         300,
				PosY:          -25,
				PeriodSeconds: 45,
				Direction:     CounterClockwise,
			},
		},
		{
			Code:        "hand-hour",
			DisplayName: "Hour hand",
			AssetRef:    "hand_hour.png",
			Layer:       10,
			SizePercent: 60,
			Visible:     true,
			Hand:        HandBinding{Kind: HandHour, Source: Slot1},
			Slot1: RotationSlot{
				Enabled: true,
				AxisX:   50,
				AxisY:   100, // rotate about the hand's base
			},
		},
		{
			Code:        "hand-hour-delhi",
			DisplayName: "Second timezone hour hand",
			AssetRef:    "hand_hour_alt.png",
			Layer:       11,
			SizePercent: 45,
			Visible:     true,
			Timezone:    TimezoneSpec{Enabled: true, UTCOffsetHours: 5.5, Use24HourFace: false},
			Hand:        HandBinding{Kind: HandHour, Source: Slot1},
			Slot1: RotationSlot{
				Enabled: true,
				AxisX:   50,
				AxisY:   100,
			},
		},
		{
			Code:        "hand-minute",
			DisplayName: "Minute hand",
			AssetRef:    "hand_minute.png",
			Layer:       12,
			SizePercent: 80,
			Visible:     true,
			Hand:        HandBinding{Kind: HandMinute, Source: Slot1},
			Slot1: RotationSlot{
				Enabled: true,
				AxisX:   50,
				AxisY:   100,
			},
		},
		{
			// Hand binding on slot1 plus an independent decorative spin on
			// slot2: hands and decoration are not mutually exclusive
			Code:        "hand-second",
			DisplayName: "Second hand",
			AssetRef:    "hand_second.png",
			Layer:       13,
			SizePercent: 90,
			Visible:     true,
			Hand:        HandBinding{Kind: HandSecond, Source: Slot1},
			Slot1: RotationSlot{
				Enabled: true,
				AxisX:   50,
				AxisY:   100,
			},
			Slot2: RotationSlot{
				Enabled:       true,
				AxisX:         50,
				AxisY:         50,
				PosX:          40,
				PosY:          -40,
				PeriodSeconds: 10,
				Direction:     Clockwise,
			},
		},
		{
			Code:        "cap",
			DisplayName: "Center cap",
			AssetRef:    "cap.png",
			Layer:       14,
			SizePercent: 6,
			Visible:     true,
			Slot1:       centered,
		},
		{
			Code:        "hidden-badge",
			DisplayName: "Hidden badge",
			AssetRef:    "badge.png",
			Layer:       20,
			SizePercent: 10,
			Visible:     false, // never displayable until toggled by settings
			Slot1:       centered,
		},
	}
}
