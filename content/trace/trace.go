// Package trace 回放脚本化的指针事件，用于在没有渲染环境时观察摇杆输出。
package trace

import (
	"fmt"
	"math"
	"os"

	"golang.org/x/image/math/f64"
	"gopkg.in/yaml.v3"

	"virtual-joystick/content/config"
	"virtual-joystick/content/joystick"
)

const (
	EventDown = "down"
	EventMove = "move"
	EventUp   = "up"
)

type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type Event struct {
	Type string  `yaml:"type"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

type Script struct {
	Base     Point   `yaml:"base"`
	Diameter float64 `yaml:"diameter"`
	Limit    float64 `yaml:"limit"` // 0 表示使用 diameter/2
	MinSpeed float64 `yaml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed"`
	CapForce bool    `yaml:"cap_force"`
	Events   []Event `yaml:"events"`
}

// Frame 每个事件处理后的摇杆状态
type Frame struct {
	Index    int
	Event    Event
	State    joystick.State
	Angle    float64
	Distance float64
	Force    float64
	Nub      f64.Vec2
	Delta    f64.Vec2
	Velocity f64.Vec2
}

func (f Frame) Speed() float64 {
	return math.Hypot(f.Velocity[0], f.Velocity[1])
}

func DefaultScript() *Script {
	return &Script{
		Diameter: config.DefaultDiameter,
		MinSpeed: config.DefaultMinSpeed,
		MaxSpeed: config.DefaultMaxSpeed,
	}
}

func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script %s: %w", path, err)
	}
	s := DefaultScript()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse script %s: %w", path, err)
	}
	return s, nil
}

func (s *Script) options() []joystick.Option {
	opts := []joystick.Option{joystick.WithDiameter(s.Diameter)}
	if s.Limit > 0 {
		opts = append(opts, joystick.WithLimit(s.Limit))
	}
	if s.CapForce {
		opts = append(opts, joystick.WithForceCap())
	}
	return opts
}

// Replay 依次把事件交给一个不渲染的摇杆，返回每个事件后的状态
func Replay(s *Script) ([]Frame, error) {
	c := joystick.New(nil)
	c.Init(s.Base.X, s.Base.Y, s.options()...)

	frames := make([]Frame, 0, len(s.Events))
	for i, ev := range s.Events {
		pos := f64.Vec2{ev.X, ev.Y}
		switch ev.Type {
		case EventDown:
			c.StartDrag(pos)
		case EventMove:
			c.Move(pos)
		case EventUp:
			c.StopDrag()
		default:
			return nil, fmt.Errorf("event %d: unknown type %q", i, ev.Type)
		}
		c.Update()

		snap := c.Snapshot()
		frames = append(frames, Frame{
			Index:    i,
			Event:    ev,
			State:    snap.State,
			Angle:    snap.Angle,
			Distance: snap.Distance,
			Force:    snap.Force,
			Nub:      snap.Nub,
			Delta:    snap.Delta,
			Velocity: c.Velocity(s.MinSpeed, s.MaxSpeed),
		})
	}

	return frames, nil
}
