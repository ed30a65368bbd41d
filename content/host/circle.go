package host

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/math/f64"

	"virtual-joystick/content/pointer"
)

// Circle 实心圆图形，位置为圆心
type Circle struct {
	img    *ebiten.Image // 第一次绘制时创建
	clr    color.Color
	pos    f64.Vec2
	radius float64
}

func NewCircle(pos f64.Vec2, radius float64, clr color.Color) *Circle {
	return &Circle{
		clr:    clr,
		pos:    pos,
		radius: radius,
	}
}

func (c *Circle) Position() f64.Vec2 {
	return c.pos
}

func (c *Circle) SetPosition(pos f64.Vec2) {
	c.pos = pos
}

// Contains 点击区域跟随圆的当前位置
func (c *Circle) Contains(pos f64.Vec2) bool {
	return pointer.Circle{Center: c.pos, Radius: c.radius}.Contains(pos)
}

func (c *Circle) image() *ebiten.Image {
	if c.img != nil {
		return c.img
	}
	size := int(math.Ceil(c.radius * 2))
	if size < 1 {
		size = 1
	}
	c.img = ebiten.NewImage(size, size)
	r := float32(c.radius)
	vector.DrawFilledCircle(c.img, r, r, r, c.clr, true)
	return c.img
}

func (c *Circle) Draw(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	// 锚点在圆心
	op.GeoM.Translate(c.pos[0]-c.radius, c.pos[1]-c.radius)
	screen.DrawImage(c.image(), op)
}

func (c *Circle) Dispose() {
	if c.img != nil {
		c.img.Deallocate()
		c.img = nil
	}
}
