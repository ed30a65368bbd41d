package utils

import "math"

// GetAngle 返回从 (x1, y1) 指向 (x2, y2) 的角度（度），范围 (-180, 180]
func GetAngle(x1, y1, x2, y2 float64) float64 {
	return math.Atan2(y2-y1, x2-x1) * 180 / math.Pi
}

// WrapAngle 将角度归一化到 [0, 360)
func WrapAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	// 浮点误差可能得到 360
	if deg >= 360 {
		deg = 0
	}
	return deg
}

func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// CircumferencePoint 返回以 (cx, cy) 为圆心、半径为 r 的圆上 deg 角度处的点
func CircumferencePoint(cx, cy, r, deg float64) (float64, float64) {
	rad := DegToRad(deg)
	return cx + r*math.Cos(rad), cy + r*math.Sin(rad)
}
