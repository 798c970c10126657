package config

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Settings holds everything the launcher core needs at construction
// One explicit default set is documented here; the historical snapshots of
// the product disagreed on several of these values and the defaults below are
// the canonical choice
type Settings struct {
	// Gesture timing and bounds
	MultiTapWindowMs  int
	LongPressMs       int
	MaxTapCount       int
	DoubleTapScale    float64
	MinScale          float64
	MaxScale          float64
	SwipeMinDistance  float64 // in scene units
	SwipeMinVelocity  float64 // scene units per millisecond
	ZoomAnimationMs   int
	PinchThreshold    float64

	// Clock
	TickIntervalMs int

	Items []ItemConfig
}

// Wire format for file-provided items. Direction, hand kind and slot
// references arrive as strings and are normalized on conversion
type slotFile struct {
	Enabled       bool    `json:"enabled" mapstructure:"enabled"`
	TiltDeg       float64 `json:"tiltDeg" mapstructure:"tiltDeg"`
	AxisX         float64 `json:"axisX" mapstructure:"axisX"`
	AxisY         float64 `json:"axisY" mapstructure:"axisY"`
	PosX          float64 `json:"posX" mapstructure:"posX"`
	PosY          float64 `json:"posY" mapstructure:"posY"`
	PeriodSeconds float64 `json:"periodSeconds" mapstructure:"periodSeconds"`
	Direction     string  `json:"direction" mapstructure:"direction"`
}

type timezoneFile struct {
	Enabled        bool    `json:"enabled" mapstructure:"enabled"`
	UTCOffsetHours float64 `json:"utcOffsetHours" mapstructure:"utcOffsetHours"`
	Use24HourFace  bool    `json:"use24HourFace" mapstructure:"use24HourFace"`
}

type itemFile struct {
	Code           string       `json:"code" mapstructure:"code"`
	DisplayName    string       `json:"displayName" mapstructure:"displayName"`
	AssetRef       string       `json:"assetRef" mapstructure:"assetRef"`
	Layer          int          `json:"layer" mapstructure:"layer"`
	SizePercent    float64      `json:"sizePercent" mapstructure:"sizePercent"`
	Visible        bool         `json:"visible" mapstructure:"visible"`
	Shadow         bool         `json:"shadow" mapstructure:"shadow"`
	Glow           bool         `json:"glow" mapstructure:"glow"`
	Transparent    bool         `json:"transparent" mapstructure:"transparent"`
	Pulse          bool         `json:"pulse" mapstructure:"pulse"`
	EffectsEnabled bool         `json:"effectsEnabled" mapstructure:"effectsEnabled"`
	Timezone       timezoneFile `json:"timezone" mapstructure:"timezone"`
	Hand           string       `json:"hand" mapstructure:"hand"`
	HandSlot       string       `json:"handSlot" mapstructure:"handSlot"`
	Slot1          slotFile     `json:"slot1" mapstructure:"slot1"`
	Slot2          slotFile     `json:"slot2" mapstructure:"slot2"`
}

func (f *itemFile) toConfig() ItemConfig {
	return ItemConfig{
		Code:        f.Code,
		DisplayName: f.DisplayName,
		AssetRef:    f.AssetRef,
		Layer:       f.Layer,
		SizePercent: f.SizePercent,
		Visible:     f.Visible,
		Effects: Effects{
			Shadow:      f.Shadow,
			Glow:        f.Glow,
			Transparent: f.Transparent,
			Pulse:       f.Pulse,
		},
		EffectsEnabled: f.EffectsEnabled,
		Timezone: TimezoneSpec{
			Enabled:        f.Timezone.Enabled,
			UTCOffsetHours: f.Timezone.UTCOffsetHours,
			Use24HourFace:  f.Timezone.Use24HourFace,
		},
		Hand: HandBinding{
			Kind:   ParseHandKind(f.Hand),
			Source: ParseSlotRef(f.HandSlot),
		},
		Slot1: f.Slot1.toSlot(),
		Slot2: f.Slot2.toSlot(),
	}
}

func (f *slotFile) toSlot() RotationSlot {
	return RotationSlot{
		Enabled:       f.Enabled,
		TiltDeg:       f.TiltDeg,
		AxisX:         f.AxisX,
		AxisY:         f.AxisY,
		PosX:          f.PosX,
		PosY:          f.PosY,
		PeriodSeconds: f.PeriodSeconds,
		Direction:     ParseDirection(f.Direction),
	}
}

// Load reads settings from launcher.cfg.json in configDir, falling back to
// built-in defaults for every absent key. A missing config file is not an
// error; the built-in face is used. Items are not validated here: duplicate
// layers or codes degrade downstream (stacking ties break by array order)
func Load(configDir string, log zerolog.Logger) (Settings, error) {
	v := viper.New()

	v.SetDefault("gesture.multiTapWindowMs", 500)
	v.SetDefault("gesture.longPressMs", 600)
	v.SetDefault("gesture.maxTapCount", 6)
	v.SetDefault("gesture.doubleTapScale", 2.0)
	v.SetDefault("gesture.minScale", 0.5)
	v.SetDefault("gesture.maxScale", 4.0)
	v.SetDefault("gesture.swipeMinDistance", 8.0)
	v.SetDefault("gesture.swipeMinVelocity", 0.02)
	v.SetDefault("gesture.zoomAnimationMs", 250)
	v.SetDefault("gesture.pinchThreshold", 1.0)
	v.SetDefault("clock.tickIntervalMs", 1000)

	v.SetConfigName("launcher.cfg")
	v.SetConfigType("json")
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("error reading config file: %w", err)
		}
		log.Debug().Str("dir", configDir).Msg("no config file, using built-in defaults")
	} else {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("loaded config file")
	}

	s := Settings{
		MultiTapWindowMs: v.GetInt("gesture.multiTapWindowMs"),
		LongPressMs:      v.GetInt("gesture.longPressMs"),
		MaxTapCount:      v.GetInt("gesture.maxTapCount"),
		DoubleTapScale:   v.GetFloat64("gesture.doubleTapScale"),
		MinScale:         v.GetFloat64("gesture.minScale"),
		MaxScale:         v.GetFloat64("gesture.maxScale"),
		SwipeMinDistance: v.GetFloat64("gesture.swipeMinDistance"),
		SwipeMinVelocity: v.GetFloat64("gesture.swipeMinVelocity"),
		ZoomAnimationMs:  v.GetInt("gesture.zoomAnimationMs"),
		PinchThreshold:   v.GetFloat64("gesture.pinchThreshold"),
		TickIntervalMs:   v.GetInt("clock.tickIntervalMs"),
	}

	if v.IsSet("items") {
		var files []itemFile
		if err := v.UnmarshalKey("items", &files); err != nil {
			return Settings{}, fmt.Errorf("error decoding items: %w", err)
		}
		s.Items = make([]ItemConfig, 0, len(files))
		for i := range files {
			s.Items = append(s.Items, files[i].toConfig())
		}
		log.Info().Int("count", len(s.Items)).Msg("items loaded from config")
	} else {
		s.Items = DefaultItems()
		log.Debug().Int("count", len(s.Items)).Msg("using built-in default face")
	}

	return s, nil
}
