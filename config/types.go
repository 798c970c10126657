package config

// Direction is the rotation sense of a slot
// The historical configuration format stored this as '+' / '-' / 'no' / ''
// (or absent); ParseDirection collapses those at the ingestion boundary so
// nothing downstream ever sees string sentinels
type Direction uint8

const (
	Static Direction = iota
	Clockwise
	CounterClockwise
)

func (d Direction) String() string {
	switch d {
	case Clockwise:
		return "Clockwise"
	case CounterClockwise:
		return "CounterClockwise"
	case Static:
		return "Static"
	}
	return "Unknown"
}

// ParseDirection normalizes the historical tri-state direction encoding
// Unknown values degrade to Static rather than erroring
func ParseDirection(s string) Direction {
	switch s {
	case "+", "cw", "clockwise":
		return Clockwise
	case "-", "ccw", "counterclockwise":
		return CounterClockwise
	}
	return Static
}

// HandKind declares which clock hand an item renders as
type HandKind uint8

const (
	HandNone HandKind = iota
	HandHour
	HandMinute
	HandSecond
)

func (k HandKind) String() string {
	switch k {
	case HandHour:
		return "Hour"
	case HandMinute:
		return "Minute"
	case HandSecond:
		return "Second"
	case HandNone:
		return "None"
	}
	return "Unknown"
}

// ParseHandKind maps the configuration string to a HandKind
func ParseHandKind(s string) HandKind {
	switch s {
	case "hour":
		return HandHour
	case "minute":
		return HandMinute
	case "second":
		return HandSecond
	}
	return HandNone
}

// SlotRef selects which rotation slot supplies a hand's placement
type SlotRef uint8

const (
	SlotNone SlotRef = iota
	Slot1
	Slot2
)

// ParseSlotRef maps the configuration string to a SlotRef
func ParseSlotRef(s string) SlotRef {
	switch s {
	case "slot1", "1":
		return Slot1
	case "slot2", "2":
		return Slot2
	}
	return SlotNone
}

// RotationSlot is one of two independent motion descriptors an item carries
// Axis is the pivot point in percent of the item's own bounding box; Pos is
// the offset from the scene center in percent of the scene
type RotationSlot struct {
	Enabled       bool
	TiltDeg       float64
	AxisX         float64 // [0,100]
	AxisY         float64 // [0,100]
	PosX          float64 // [-100,100]
	PosY          float64 // [-100,100]
	PeriodSeconds float64
	Direction     Direction
}

// TimezoneSpec is a fixed UTC-offset clock
// Deliberately not an IANA zone: no DST, no political rules. Offsets outside
// [-12,12] are accepted and produce angles outside the realistic range
type TimezoneSpec struct {
	Enabled        bool
	UTCOffsetHours float64
	Use24HourFace  bool
}

// HandBinding declares an item as a live clock hand and names the slot that
// supplies its placement. The bound slot's PeriodSeconds and Direction are
// ignored; its axis, position and tilt remain authoritative
type HandBinding struct {
	Kind   HandKind
	Source SlotRef
}

// Effects are the per-item visual effect toggles
// Independent of rotation math; composed into directives only when the item's
// EffectsEnabled master switch is on
type Effects struct {
	Shadow      bool
	Glow        bool
	Transparent bool
	Pulse       bool
}

// ItemConfig is the declarative description of one layer of the face
type ItemConfig struct {
	Code           string
	DisplayName    string
	AssetRef       string
	Layer          int // z-order, ascending is farther back
	SizePercent    float64
	Visible        bool
	Effects        Effects
	EffectsEnabled bool
	Timezone       TimezoneSpec
	Hand           HandBinding
	Slot1          RotationSlot
	Slot2          RotationSlot
}

// BoundSlot returns the slot a hand binding selects
// Falls back to Slot1 when the binding is a hand but names no slot, so a
// half-filled configuration still places the hand somewhere sensible
func (c *ItemConfig) BoundSlot() *RotationSlot {
	if c.Hand.Source == Slot2 {
		return &c.Slot2
	}
	return &c.Slot1
}
