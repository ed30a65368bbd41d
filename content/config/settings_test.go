package config

import (
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	if s.Joystick.Diameter != 80 {
		t.Errorf("expected diameter 80, got %f", s.Joystick.Diameter)
	}
	if s.Joystick.Limit != 0 {
		t.Errorf("expected limit 0 (derived from diameter), got %f", s.Joystick.Limit)
	}
	if s.Joystick.MaxSpeed != 200 {
		t.Errorf("expected max speed 200, got %f", s.Joystick.MaxSpeed)
	}
	if s.Joystick.CapForce {
		t.Error("force cap should be off by default")
	}
	if fixed := s.Validate(); len(fixed) != 0 {
		t.Errorf("defaults should validate cleanly, fixed %v", fixed)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "joystick.yaml")
	data := []byte(`
joystick:
  x: 120
  diameter: 100
  limit: 30
  cap_force: true
  anchor:
    x: 0.25
    y: 0.75
debug: true
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if s.Joystick.X != 120 {
		t.Errorf("expected x 120, got %f", s.Joystick.X)
	}
	if s.Joystick.Y != ScreenHeight-DefaultDiameter {
		t.Errorf("expected default y to survive, got %f", s.Joystick.Y)
	}
	if s.Joystick.Diameter != 100 || s.Joystick.Limit != 30 {
		t.Errorf("expected diameter 100 limit 30, got %f %f", s.Joystick.Diameter, s.Joystick.Limit)
	}
	if !s.Joystick.CapForce || !s.Debug {
		t.Error("expected cap_force and debug to be set")
	}
	if s.Joystick.Anchor == nil || s.Joystick.Anchor.X != 0.25 || s.Joystick.Anchor.Y != 0.75 {
		t.Errorf("unexpected anchor %+v", s.Joystick.Anchor)
	}
	if s.Joystick.BaseColor != DefaultBaseColor {
		t.Errorf("expected default base color, got %s", s.Joystick.BaseColor)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("joystick: [1, 2"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	s := DefaultSettings()
	s.Joystick.Limit = 25
	s.Player.Speed = 3

	if err := Save(path, s); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got.Joystick.Limit != 25 || got.Player.Speed != 3 {
		t.Errorf("round trip lost values: %+v", got)
	}
}

func TestValidate(t *testing.T) {
	s := DefaultSettings()
	s.Joystick.Diameter = -5
	s.Joystick.Limit = -1
	s.Joystick.BaseColor = "red"
	s.Joystick.MinSpeed = 50
	s.Joystick.MaxSpeed = 10
	s.Joystick.Anchor = &Anchor{X: 2, Y: 0.5}
	s.Player.Speed = 0

	fixed := s.Validate()
	if len(fixed) != 6 {
		t.Errorf("expected 6 corrected fields, got %v", fixed)
	}
	if s.Joystick.Diameter != DefaultDiameter {
		t.Errorf("expected diameter reset, got %f", s.Joystick.Diameter)
	}
	if s.Joystick.Limit != 0 {
		t.Errorf("expected limit reset, got %f", s.Joystick.Limit)
	}
	if s.Joystick.BaseColor != DefaultBaseColor {
		t.Errorf("expected base color reset, got %s", s.Joystick.BaseColor)
	}
	if s.Joystick.MaxSpeed != DefaultMaxSpeed {
		t.Errorf("expected max speed %d, got %f", DefaultMaxSpeed, s.Joystick.MaxSpeed)
	}
	if s.Joystick.Anchor != nil {
		t.Error("expected out of range anchor to be dropped")
	}
	if s.Player.Speed != DefaultPlayerSpeed {
		t.Errorf("expected player speed reset, got %f", s.Player.Speed)
	}
}

func TestValidate_NaN(t *testing.T) {
	s := DefaultSettings()
	s.Joystick.MinSpeed = math.NaN()
	s.Joystick.MaxSpeed = math.NaN()
	s.Joystick.Anchor = &Anchor{X: math.NaN(), Y: 0.5}
	s.Player.Speed = math.NaN()

	fixed := s.Validate()
	want := []string{"joystick.min_speed", "joystick.max_speed", "joystick.anchor", "player.speed"}
	if len(fixed) != len(want) {
		t.Fatalf("expected %v, got %v", want, fixed)
	}
	for i := range want {
		if fixed[i] != want[i] {
			t.Errorf("expected %v, got %v", want, fixed)
		}
	}
	if s.Joystick.MinSpeed != DefaultMinSpeed || s.Joystick.MaxSpeed != DefaultMaxSpeed {
		t.Errorf("expected speeds reset, got %f/%f", s.Joystick.MinSpeed, s.Joystick.MaxSpeed)
	}
	if s.Joystick.Anchor != nil {
		t.Error("expected NaN anchor to be dropped")
	}
	if s.Player.Speed != DefaultPlayerSpeed {
		t.Errorf("expected player speed reset, got %f", s.Player.Speed)
	}
}

func TestLoad_NaNSpeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nan.yaml")
	if err := os.WriteFile(path, []byte("joystick:\n  max_speed: .nan\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	s.Validate()
	if s.Joystick.MaxSpeed != DefaultMaxSpeed {
		t.Errorf("expected max speed reset, got %f", s.Joystick.MaxSpeed)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#00ff00ff", color.RGBA{0, 255, 0, 255}, false},
		{"#00ff00", color.RGBA{0, 255, 0, 255}, false},
		{"#ff000080", color.RGBA{128, 0, 0, 128}, false},
		{"ffffff00", color.RGBA{0, 0, 0, 0}, false},
		{"#fff", color.RGBA{}, true},
		{"#gg0000", color.RGBA{}, true},
		{"", color.RGBA{}, true},
	}

	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("%q: expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: unexpected error %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%q: expected %v, got %v", tt.in, tt.want, got)
		}
	}
}
