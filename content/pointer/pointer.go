// Package pointer 将每帧采集到的指针位置转换为按下、抬起和移动回调。
//
// 同一时间只捕获一个指针，不支持多点触控。
package pointer

import "golang.org/x/image/math/f64"

// MouseID 鼠标的指针编号，触摸点从 1 开始
const MouseID = 0

// Sample 某一帧中处于按下状态的指针
type Sample struct {
	ID  int
	Pos f64.Vec2
}

// HitArea 点击区域
type HitArea interface {
	Contains(pos f64.Vec2) bool
}

// Circle 圆形点击区域，边界算作命中
type Circle struct {
	Center f64.Vec2
	Radius float64
}

func (c Circle) Contains(pos f64.Vec2) bool {
	dx := pos[0] - c.Center[0]
	dy := pos[1] - c.Center[1]
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

type Handler func(pos f64.Vec2)

type inputHandler struct {
	id     uint32
	area   HitArea
	onDown Handler
	onUp   Handler
}

type moveHandler struct {
	id uint32
	fn Handler
}

type Dispatcher struct {
	inputs []inputHandler
	moves  []moveHandler
	nextID uint32

	last     map[int]f64.Vec2 // 上一帧的指针
	captured int              // 被捕获的指针编号
	capture  uint32           // 捕获该指针的 inputHandler，0 表示没有
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		last: make(map[int]f64.Vec2),
	}
}

// Handle 用于注销回调
type Handle struct {
	id uint32
	d  *Dispatcher
}

// Remove 注销回调；若该回调正捕获指针，捕获一并解除且不会再收到抬起事件
func (h Handle) Remove() {
	if h.d == nil {
		return
	}
	d := h.d
	for i := range d.inputs {
		if d.inputs[i].id == h.id {
			d.inputs = append(d.inputs[:i], d.inputs[i+1:]...)
			if d.capture == h.id {
				d.capture = 0
			}
			return
		}
	}
	for i := range d.moves {
		if d.moves[i].id == h.id {
			d.moves = append(d.moves[:i], d.moves[i+1:]...)
			return
		}
	}
}

// OnInput 注册限定在 area 内的按下回调；按下时捕获指针，指针抬起时调用 onUp
func (d *Dispatcher) OnInput(area HitArea, onDown, onUp Handler) Handle {
	d.nextID++
	d.inputs = append(d.inputs, inputHandler{id: d.nextID, area: area, onDown: onDown, onUp: onUp})
	return Handle{id: d.nextID, d: d}
}

// OnMove 注册全局移动回调，新出现或位置变化的指针都会触发
func (d *Dispatcher) OnMove(fn Handler) Handle {
	d.nextID++
	d.moves = append(d.moves, moveHandler{id: d.nextID, fn: fn})
	return Handle{id: d.nextID, d: d}
}

// Dispatch 处理一帧的指针，顺序为：抬起、按下、移动
func (d *Dispatcher) Dispatch(samples []Sample) {
	current := make(map[int]f64.Vec2, len(samples))
	for _, s := range samples {
		current[s.ID] = s.Pos
	}

	// 抬起
	if d.capture != 0 {
		if _, ok := current[d.captured]; !ok {
			h, found := d.findInput(d.capture)
			d.capture = 0
			if found && h.onUp != nil {
				h.onUp(d.last[d.captured])
			}
		}
	}

	// 按下
	for _, s := range samples {
		if _, ok := d.last[s.ID]; ok {
			continue
		}
		if d.capture != 0 {
			continue
		}
		// 后注册的区域在上层，优先命中
		for i := len(d.inputs) - 1; i >= 0; i-- {
			h := d.inputs[i]
			if h.area == nil || !h.area.Contains(s.Pos) {
				continue
			}
			d.capture = h.id
			d.captured = s.ID
			if h.onDown != nil {
				h.onDown(s.Pos)
			}
			break
		}
	}

	// 移动
	moves := append([]moveHandler(nil), d.moves...)
	for _, s := range samples {
		if prev, ok := d.last[s.ID]; ok && prev == s.Pos {
			continue
		}
		for _, m := range moves {
			m.fn(s.Pos)
		}
	}

	d.last = current
}

// Captured 返回当前被捕获的指针编号
func (d *Dispatcher) Captured() (int, bool) {
	return d.captured, d.capture != 0
}

func (d *Dispatcher) findInput(id uint32) (inputHandler, bool) {
	for _, h := range d.inputs {
		if h.id == id {
			return h, true
		}
	}
	return inputHandler{}, false
}
