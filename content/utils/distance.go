package utils

import "math"

func GetDistance(x1, y1, x2, y2 float64) float64 {
	return math.Sqrt(
		math.Pow(x1-x2, 2) + math.Pow(y1-y2, 2),
	)
}

// Percent 计算 a 占 b 的比例，b 为 0 时返回 0，结果不做上限截断
func Percent(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
