package utils

// GetDirectionIdxByAngle 将角度映射为朝向：0 右，1 下，2 左，3 上（屏幕坐标 y 轴向下）
func GetDirectionIdxByAngle(deg float64) int {
	return int(WrapAngle(deg+45)/90) % 4
}
