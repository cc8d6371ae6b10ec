package reorder

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
)

func TestDefaultOptions_Valid(t *testing.T) {
	opts := DefaultOptions()
	if err := opts.Validate(); err != nil {
		t.Fatalf("expected default options to be valid: %v", err)
	}
	if opts.LiftScale != 1.2 || opts.LiftDuration != 100*time.Millisecond || opts.SettleDuration != 300*time.Millisecond {
		t.Fatalf("unexpected lift and settle defaults: %+v", opts)
	}
}

func TestLoadOptions_OverlaysDefaults(t *testing.T) {
	opts, err := LoadOptions(strings.NewReader(`
cell_size:
  width: 64
  height: 80
lift_scale: 1.5
settle_duration: 450ms
`))
	if err != nil {
		t.Fatalf("expected options to load: %v", err)
	}
	if opts.CellSize != fyne.NewSize(64, 80) {
		t.Fatalf("expected cell size 64x80, got %v", opts.CellSize)
	}
	if opts.LiftScale != 1.5 || opts.SettleDuration != 450*time.Millisecond {
		t.Fatalf("expected overrides to apply, got %+v", opts)
	}
	if opts.LiftDuration != defaultLiftDuration || opts.LongPressDelay != defaultLongPressDelay {
		t.Fatalf("expected unspecified settings to keep defaults, got %+v", opts)
	}
}

func TestLoadOptions_Empty(t *testing.T) {
	opts, err := LoadOptions(strings.NewReader("  \n"))
	if err != nil {
		t.Fatalf("expected empty input to load: %v", err)
	}
	if opts != DefaultOptions() {
		t.Fatalf("expected defaults, got %+v", opts)
	}
}

func TestLoadOptions_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"unknown key", "lift_scal: 1.5\n", "parse options"},
		{"bad duration", "lift_duration: soon\n", "parse options"},
		{"shrinking lift", "lift_scale: 0.5\n", "lift_scale"},
		{"negative margin", "auto_scroll_margin: -1\n", "auto_scroll_margin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := LoadOptions(strings.NewReader(tt.in))
			if err == nil {
				t.Fatalf("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error to mention %q, got %v", tt.want, err)
			}
			if opts != DefaultOptions() {
				t.Fatalf("expected defaults alongside the error, got %+v", opts)
			}
		})
	}
}

func TestLoadOptionsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reorder.yaml")
	if err := os.WriteFile(path, []byte("long_press_delay: 300ms\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	opts, err := LoadOptionsFile(path)
	if err != nil {
		t.Fatalf("expected options to load: %v", err)
	}
	if opts.LongPressDelay != 300*time.Millisecond {
		t.Fatalf("expected long press delay 300ms, got %v", opts.LongPressDelay)
	}

	if _, err := LoadOptionsFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}

func TestOptionsPreferences(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	p := a.Preferences()
	if got := OptionsFromPreferences(p, DefaultOptions()); got != DefaultOptions() {
		t.Fatalf("expected base options without stored preferences, got %+v", got)
	}

	saved := DefaultOptions()
	saved.LiftScale = 1.4
	saved.LiftDuration = 120 * time.Millisecond
	saved.LongPressDelay = 350 * time.Millisecond
	saved.SaveToPreferences(p)

	got := OptionsFromPreferences(p, DefaultOptions())
	if got.LiftScale != saved.LiftScale || got.LiftDuration != saved.LiftDuration || got.LongPressDelay != saved.LongPressDelay {
		t.Fatalf("expected stored preferences to apply, got %+v", got)
	}

	p.SetInt(settleDurationKey, 0)
	if got := OptionsFromPreferences(p, DefaultOptions()); got != DefaultOptions() {
		t.Fatalf("expected unusable preferences to be ignored, got %+v", got)
	}
}
