// Package joystick 实现屏幕虚拟摇杆：固定的底座和可拖动的摇杆头，
// 摇杆头相对底座的偏移给出方向和力度，游戏循环据此计算实体速度。
package joystick

import (
	"math"

	"golang.org/x/image/math/f64"

	"virtual-joystick/content/config"
	"virtual-joystick/content/utils"
)

type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	}
	return "unknown"
}

// Snapshot 摇杆某一时刻的全部可观测状态
type Snapshot struct {
	State    State
	Base     f64.Vec2
	Limit    float64
	Pointer  f64.Vec2 // 最近一次指针位置
	Nub      f64.Vec2 // 限制在 Limit 半径内的摇杆头位置
	Angle    float64  // 角度，[0, 360)
	Distance float64  // 底座到指针的距离
	Force    float64  // Distance / Limit
	Delta    f64.Vec2 // 方向单位向量
}

type Controller struct {
	host Host

	basePos  f64.Vec2
	diameter float64
	limit    float64
	capForce bool

	base      Visual
	nub       Visual
	moveBound bool

	state      State
	location   f64.Vec2
	limitPoint f64.Vec2
	angle      float64
	distance   float64
	force      float64
	delta      f64.Vec2
}

// New 创建摇杆，host 为 nil 时不渲染
func New(host Host) *Controller {
	if host == nil {
		host = headless{}
	}
	return &Controller{host: host}
}

// Init 设置底座位置和外观，重新创建图形并重置拖动状态
func (c *Controller) Init(x, y float64, opts ...Option) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.limit < 0 {
		o.limit = math.Floor(o.diameter / 2)
	}

	c.basePos = f64.Vec2{x, y}
	c.diameter = o.diameter
	c.limit = o.limit
	c.capForce = o.capForce

	radius := math.Floor(o.diameter / 2)
	nr := math.Max(radius-config.NubInset, 1)

	if c.base != nil {
		c.host.Release(c.base)
	}
	if c.nub != nil {
		c.host.Release(c.nub)
	}
	c.base = c.host.NewCircle(c.basePos, radius, o.baseColor)
	c.nub = c.host.NewCircle(c.basePos, nr, o.stickColor)

	c.host.OnInput(c.nub, c.StartDrag, func(f64.Vec2) {
		c.StopDrag()
	})
	if !c.moveBound {
		c.host.OnMove(c.Move)
		c.moveBound = true
	}

	c.state = Idle
	c.location = c.basePos
	c.limitPoint = c.basePos
	c.angle = 0
	c.distance = 0
	c.force = 0
	c.delta = f64.Vec2{}
}

// StartDrag 指针在摇杆头上按下；摇杆头的位置在 Move 中更新
func (c *Controller) StartDrag(pos f64.Vec2) {
	c.state = Dragging
	c.measure(pos)
}

// StopDrag 指针抬起，所有输出归零，摇杆头回到底座。重复调用结果相同
func (c *Controller) StopDrag() {
	c.state = Idle

	c.distance = 0
	c.angle = 0
	c.force = 0
	c.delta = f64.Vec2{}

	c.limitPoint = c.basePos
	if c.nub != nil {
		c.nub.SetPosition(c.basePos)
	}
}

// Move 指针移动，未拖动时忽略
func (c *Controller) Move(pos f64.Vec2) {
	if c.state != Dragging {
		return
	}

	c.measure(pos)

	if c.distance < c.limit {
		c.limitPoint = c.location
	} else {
		x, y := utils.CircumferencePoint(c.basePos[0], c.basePos[1], c.limit, c.angle)
		c.limitPoint = f64.Vec2{x, y}
	}

	if c.nub != nil {
		c.nub.SetPosition(c.limitPoint)
	}
}

// measure 根据指针位置计算角度、距离、力度和方向
func (c *Controller) measure(pos f64.Vec2) {
	c.location = pos
	c.distance = utils.GetDistance(c.basePos[0], c.basePos[1], pos[0], pos[1])

	// 指针指向底座的角度加 180，即底座指向指针的角度。
	// 指针正好在圆心时 atan2(0, 0) 为 0，角度为 180
	c.angle = utils.WrapAngle(utils.GetAngle(pos[0], pos[1], c.basePos[0], c.basePos[1]) + 180)

	switch {
	case c.distance == 0:
		c.force = 0
	case c.limit == 0:
		// 限制半径为 0 时任何偏移都算满力度
		c.force = 1
	default:
		c.force = utils.Percent(c.distance, c.limit)
		if c.capForce {
			c.force = math.Min(c.force, 1)
		}
	}

	rad := utils.DegToRad(c.angle)
	c.delta = f64.Vec2{math.Cos(rad), math.Sin(rad)}
}

// Velocity 根据当前力度计算速度，由调用方设置到自己的实体上
func (c *Controller) Velocity(minSpeed, maxSpeed float64) f64.Vec2 {
	if c.force == 0 && minSpeed == 0 {
		return f64.Vec2{}
	}
	speed := minSpeed + (maxSpeed-minSpeed)*c.force
	return f64.Vec2{c.delta[0] * speed, c.delta[1] * speed}
}

func (c *Controller) DefaultVelocity() f64.Vec2 {
	return c.Velocity(config.DefaultMinSpeed, config.DefaultMaxSpeed)
}

// Update 每帧调用，目前没有需要处理的逻辑
func (c *Controller) Update() {}

func (c *Controller) Base() f64.Vec2 {
	return c.basePos
}

func (c *Controller) Limit() float64 {
	return c.limit
}

func (c *Controller) Diameter() float64 {
	return c.diameter
}

func (c *Controller) State() State {
	return c.state
}

func (c *Controller) IsDragging() bool {
	return c.state == Dragging
}

func (c *Controller) Angle() float64 {
	return c.angle
}

func (c *Controller) Distance() float64 {
	return c.distance
}

func (c *Controller) Force() float64 {
	return c.force
}

func (c *Controller) Delta() f64.Vec2 {
	return c.delta
}

func (c *Controller) Pointer() f64.Vec2 {
	return c.location
}

// NubPosition 摇杆头当前应绘制的位置
func (c *Controller) NubPosition() f64.Vec2 {
	if c.nub != nil {
		return c.nub.Position()
	}
	return c.limitPoint
}

func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		State:    c.state,
		Base:     c.basePos,
		Limit:    c.limit,
		Pointer:  c.location,
		Nub:      c.NubPosition(),
		Angle:    c.angle,
		Distance: c.distance,
		Force:    c.force,
		Delta:    c.delta,
	}
}
