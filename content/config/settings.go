package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

type Settings struct {
	Joystick JoystickSettings `yaml:"joystick"`
	Player   PlayerSettings   `yaml:"player"`
	Debug    bool             `yaml:"debug"`
}

type JoystickSettings struct {
	X          float64 `yaml:"x"`
	Y          float64 `yaml:"y"`
	Anchor     *Anchor `yaml:"anchor,omitempty"` // 屏幕比例坐标，设置后覆盖 x/y
	Diameter   float64 `yaml:"diameter"`
	Limit      float64 `yaml:"limit"` // 0 表示使用 diameter/2
	BaseColor  string  `yaml:"base_color"`
	StickColor string  `yaml:"stick_color"`
	MinSpeed   float64 `yaml:"min_speed"`
	MaxSpeed   float64 `yaml:"max_speed"`
	CapForce   bool    `yaml:"cap_force"`
}

type Anchor struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type PlayerSettings struct {
	Speed float64 `yaml:"speed"`
}

func DefaultSettings() *Settings {
	return &Settings{
		Joystick: JoystickSettings{
			X:          DefaultDiameter,
			Y:          ScreenHeight - DefaultDiameter,
			Diameter:   DefaultDiameter,
			BaseColor:  DefaultBaseColor,
			StickColor: DefaultStickColor,
			MinSpeed:   DefaultMinSpeed,
			MaxSpeed:   DefaultMaxSpeed,
		},
		Player: PlayerSettings{
			Speed: DefaultPlayerSpeed,
		},
	}
}

// Load 读取 yaml 配置，未出现的字段保留默认值
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read settings %s: %w", path, err)
	}
	s := DefaultSettings()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", path, err)
	}
	return s, nil
}

func Save(path string, s *Settings) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate 将非法字段重置为默认值，返回被修正的字段名
func (s *Settings) Validate() []string {
	var fixed []string
	j := &s.Joystick

	if !(j.Diameter > 0) || math.IsInf(j.Diameter, 0) {
		j.Diameter = DefaultDiameter
		fixed = append(fixed, "joystick.diameter")
	}
	if !(j.Limit >= 0) || math.IsInf(j.Limit, 0) {
		j.Limit = 0
		fixed = append(fixed, "joystick.limit")
	}
	if _, err := ParseColor(j.BaseColor); err != nil {
		j.BaseColor = DefaultBaseColor
		fixed = append(fixed, "joystick.base_color")
	}
	if _, err := ParseColor(j.StickColor); err != nil {
		j.StickColor = DefaultStickColor
		fixed = append(fixed, "joystick.stick_color")
	}
	if !(j.MinSpeed >= 0) || math.IsInf(j.MinSpeed, 0) {
		j.MinSpeed = DefaultMinSpeed
		fixed = append(fixed, "joystick.min_speed")
	}
	if !(j.MaxSpeed >= j.MinSpeed) || math.IsInf(j.MaxSpeed, 0) {
		j.MaxSpeed = math.Max(DefaultMaxSpeed, j.MinSpeed)
		fixed = append(fixed, "joystick.max_speed")
	}
	if j.Anchor != nil && !(j.Anchor.X >= 0 && j.Anchor.X <= 1 && j.Anchor.Y >= 0 && j.Anchor.Y <= 1) {
		j.Anchor = nil
		fixed = append(fixed, "joystick.anchor")
	}
	if !(s.Player.Speed > 0) || math.IsInf(s.Player.Speed, 0) {
		s.Player.Speed = DefaultPlayerSpeed
		fixed = append(fixed, "player.speed")
	}

	return fixed
}
