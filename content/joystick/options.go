package joystick

import (
	"image/color"
	"math"

	"virtual-joystick/content/config"
)

type options struct {
	diameter   float64
	limit      float64 // 小于 0 表示未设置
	baseColor  color.Color
	stickColor color.Color
	capForce   bool
}

type Option func(o *options)

func defaultOptions() options {
	return options{
		diameter:   config.DefaultDiameter,
		limit:      -1,
		baseColor:  config.MustParseColor(config.DefaultBaseColor),
		stickColor: config.MustParseColor(config.DefaultStickColor),
	}
}

// WithDiameter 底座直径，非正数时使用默认值 80
func WithDiameter(d float64) Option {
	return func(o *options) {
		if d > 0 && !math.IsInf(d, 0) {
			o.diameter = d
		}
	}
}

// WithLimit 摇杆头可移动的最大半径，默认 diameter/2
func WithLimit(limit float64) Option {
	return func(o *options) {
		if limit >= 0 && !math.IsInf(limit, 0) {
			o.limit = limit
		}
	}
}

func WithBaseColor(c color.Color) Option {
	return func(o *options) {
		if c != nil {
			o.baseColor = c
		}
	}
}

func WithStickColor(c color.Color) Option {
	return func(o *options) {
		if c != nil {
			o.stickColor = c
		}
	}
}

// WithForceCap 将 force 截断到 1，默认不截断
func WithForceCap() Option {
	return func(o *options) {
		o.capForce = true
	}
}
