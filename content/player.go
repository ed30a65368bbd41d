package main

import (
	"virtual-joystick/content/config"
	"virtual-joystick/content/utils"
)

type Player struct {
	count     int
	x, y      float64 // 人物在屏幕上的位置（左上角）
	speed     float64 // 键盘控制时每帧的位移
	directIdx int     // 人物的方向
	moving    bool    // 本帧是否移动
}

func (p *Player) Move(dx, dy float64) {
	p.x += dx
	p.y += dy
	p.x = utils.Clamp(p.x, -config.FrameWidth/2, config.ScreenWidth-config.FrameWidth/2)
	p.y = utils.Clamp(p.y, -config.FrameHeight/2, config.ScreenHeight-config.FrameHeight/2)
	if dx != 0 || dy != 0 {
		p.moving = true
	}
}

// Center 人物中心点
func (p *Player) Center() (float64, float64) {
	return p.x + config.FrameWidth/2, p.y + config.FrameHeight/2
}
