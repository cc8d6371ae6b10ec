package reorder

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"gopkg.in/yaml.v3"
)

// Options tunes the look and feel of a Grid.
type Options struct {
	// CellSize is the size of every slot in the grid.
	CellSize fyne.Size `yaml:"cell_size"`

	// LiftScale is the visual scale of a picked up cell.
	LiftScale float32 `yaml:"lift_scale"`
	// LiftDuration is how long the pick up and put down scale takes.
	LiftDuration time.Duration `yaml:"lift_duration"`
	// SettleDuration is how long a released cell takes to fly back into its slot.
	SettleDuration time.Duration `yaml:"settle_duration"`
	// MoveDuration is how long displaced cells take to reach their new slots.
	MoveDuration time.Duration `yaml:"move_duration"`

	// WiggleAngle is the idle sway amplitude in radians.
	WiggleAngle float64 `yaml:"wiggle_angle"`
	// WigglePeriod is the duration of one sway from side to side.
	WigglePeriod time.Duration `yaml:"wiggle_period"`

	// LongPressDelay is how long a press must be held to start a drag.
	LongPressDelay time.Duration `yaml:"long_press_delay"`
	// PressSlop is how far a press may wander before it stops counting as a hold.
	PressSlop float32 `yaml:"press_slop"`

	// AutoScrollMargin is the extra room kept visible above and below a
	// dragged cell.
	AutoScrollMargin float32 `yaml:"auto_scroll_margin"`
}

// DefaultOptions returns the options a Grid starts with.
func DefaultOptions() Options {
	return Options{
		CellSize:         fyne.NewSquareSize(defaultCellSize),
		LiftScale:        defaultLiftScale,
		LiftDuration:     defaultLiftDuration,
		SettleDuration:   defaultSettleDuration,
		MoveDuration:     defaultMoveDuration,
		WiggleAngle:      defaultWiggleAngle,
		WigglePeriod:     defaultWigglePeriod,
		LongPressDelay:   defaultLongPressDelay,
		PressSlop:        defaultPressSlop,
		AutoScrollMargin: defaultAutoScrollMargin,
	}
}

// Validate reports the first setting that cannot be used.
func (o Options) Validate() error {
	switch {
	case o.CellSize.Width <= 0 || o.CellSize.Height <= 0:
		return fmt.Errorf("cell_size must be positive, got %vx%v", o.CellSize.Width, o.CellSize.Height)
	case o.LiftScale < 1:
		return fmt.Errorf("lift_scale must be at least 1, got %v", o.LiftScale)
	case o.LiftDuration <= 0:
		return errors.New("lift_duration must be positive")
	case o.SettleDuration <= 0:
		return errors.New("settle_duration must be positive")
	case o.MoveDuration <= 0:
		return errors.New("move_duration must be positive")
	case o.WigglePeriod <= 0:
		return errors.New("wiggle_period must be positive")
	case o.WiggleAngle < 0:
		return fmt.Errorf("wiggle_angle must not be negative, got %v", o.WiggleAngle)
	case o.LongPressDelay <= 0:
		return errors.New("long_press_delay must be positive")
	case o.PressSlop < 0:
		return fmt.Errorf("press_slop must not be negative, got %v", o.PressSlop)
	case o.AutoScrollMargin < 0:
		return fmt.Errorf("auto_scroll_margin must not be negative, got %v", o.AutoScrollMargin)
	}
	return nil
}

// LoadOptions reads YAML options from r on top of DefaultOptions.
// Unknown keys are rejected. Durations use Go syntax, e.g. "150ms".
func LoadOptions(r io.Reader) (Options, error) {
	opts := DefaultOptions()

	data, err := io.ReadAll(r)
	if err != nil {
		return opts, fmt.Errorf("read options: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return opts, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		return DefaultOptions(), fmt.Errorf("parse options: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return DefaultOptions(), fmt.Errorf("invalid options: %w", err)
	}
	return opts, nil
}

// LoadOptionsFile is LoadOptions for the file at path.
func LoadOptionsFile(path string) (Options, error) {
	f, err := os.Open(path)
	if err != nil {
		return DefaultOptions(), fmt.Errorf("open options: %w", err)
	}
	defer f.Close()

	opts, err := LoadOptions(f)
	if err != nil {
		return opts, fmt.Errorf("%s: %w", path, err)
	}
	return opts, nil
}

// OptionsFromPreferences overlays the values an application stored in its
// preferences on top of base. Missing or unusable values keep the base value.
func OptionsFromPreferences(p fyne.Preferences, base Options) Options {
	if p == nil {
		return base
	}

	opts := base
	opts.LiftScale = float32(p.FloatWithFallback(liftScaleKey, float64(base.LiftScale)))
	opts.LiftDuration = prefDuration(p, liftDurationKey, base.LiftDuration)
	opts.SettleDuration = prefDuration(p, settleDurationKey, base.SettleDuration)
	opts.LongPressDelay = prefDuration(p, longPressDelayKey, base.LongPressDelay)
	opts.WiggleAngle = p.FloatWithFallback(wiggleAngleKey, base.WiggleAngle)

	if err := opts.Validate(); err != nil {
		fyne.LogError("ignoring reorder preferences", err)
		return base
	}
	return opts
}

// SaveToPreferences stores the settings OptionsFromPreferences reads.
func (o Options) SaveToPreferences(p fyne.Preferences) {
	if p == nil {
		return
	}
	p.SetFloat(liftScaleKey, float64(o.LiftScale))
	p.SetInt(liftDurationKey, int(o.LiftDuration/time.Millisecond))
	p.SetInt(settleDurationKey, int(o.SettleDuration/time.Millisecond))
	p.SetInt(longPressDelayKey, int(o.LongPressDelay/time.Millisecond))
	p.SetFloat(wiggleAngleKey, o.WiggleAngle)
}

func prefDuration(p fyne.Preferences, key string, fallback time.Duration) time.Duration {
	ms := p.IntWithFallback(key, int(fallback/time.Millisecond))
	return time.Duration(ms) * time.Millisecond
}
