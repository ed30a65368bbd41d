package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

var (
	audioContext *audio.Context
	// 与 utils.GetDirectionIdxByAngle 的朝向编号一致
	directions = []struct {
		dx, dy float64
		key    ebiten.Key
	}{
		{1, 0, ebiten.KeyArrowRight}, // 右
		{0, 1, ebiten.KeyArrowDown},  // 下
		{-1, 0, ebiten.KeyArrowLeft}, // 左
		{0, -1, ebiten.KeyArrowUp},   // 上
	}
)
