package joystick

import (
	"image/color"

	"golang.org/x/image/math/f64"
)

// Visual 宿主渲染出的图形句柄，锚点在圆心
type Visual interface {
	Position() f64.Vec2
	SetPosition(pos f64.Vec2)
}

// Host 摇杆依赖的宿主引擎：负责绘制圆形并投递指针事件
type Host interface {
	// NewCircle 创建一个以 pos 为圆心的实心圆
	NewCircle(pos f64.Vec2, radius float64, clr color.Color) Visual
	// OnInput 注册限定在 v 点击区域内的按下/抬起回调
	OnInput(v Visual, onDown, onUp func(pos f64.Vec2))
	// OnMove 注册全局指针移动回调，不限区域
	OnMove(fn func(pos f64.Vec2))
	// Release 释放图形以及绑定在其上的回调
	Release(v Visual)
}

// point 无渲染环境下使用的图形，只记录位置
type point struct {
	pos f64.Vec2
}

func (p *point) Position() f64.Vec2 {
	return p.pos
}

func (p *point) SetPosition(pos f64.Vec2) {
	p.pos = pos
}

// headless 不绘制也不投递事件，事件由调用方直接调用 Controller 的方法
type headless struct{}

func (headless) NewCircle(pos f64.Vec2, _ float64, _ color.Color) Visual {
	return &point{pos: pos}
}

func (headless) OnInput(Visual, func(f64.Vec2), func(f64.Vec2)) {}

func (headless) OnMove(func(f64.Vec2)) {}

func (headless) Release(Visual) {}
