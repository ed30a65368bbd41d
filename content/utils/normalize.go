package utils

import "virtual-joystick/content/config"

// Normalize 将屏幕像素坐标转换为屏幕比例
func Normalize(x, y float64) (float64, float64) {
	return x / config.ScreenWidth, y / config.ScreenHeight
}

// ReNormalize 将屏幕比例转换为像素坐标
func ReNormalize(x, y float64) (float64, float64) {
	return x * config.ScreenWidth, y * config.ScreenHeight
}
