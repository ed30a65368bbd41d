package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ParseColor 解析 "#rrggbb" 或 "#rrggbbaa" 格式的颜色
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: want #rrggbb or #rrggbbaa", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}

	// ebiten 使用预乘 alpha 的颜色
	r, g, b, a := uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)
	return color.RGBA{
		R: premultiply(r, a),
		G: premultiply(g, a),
		B: premultiply(b, a),
		A: a,
	}, nil
}

func premultiply(c, a uint8) uint8 {
	return uint8(uint16(c) * uint16(a) / 0xff)
}

// MustParseColor 用于已知合法的默认颜色
func MustParseColor(s string) color.RGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}
