// Package host 基于 ebiten 实现摇杆所需的宿主：绘制圆形、采集鼠标和触摸输入。
package host

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/math/f64"

	"virtual-joystick/content/joystick"
	"virtual-joystick/content/pointer"
)

type Host struct {
	dispatcher *pointer.Dispatcher
	visuals    []*Circle
	handles    map[*Circle][]pointer.Handle
	touchIDs   []ebiten.TouchID
	samples    []pointer.Sample
}

var _ joystick.Host = (*Host)(nil)

func New() *Host {
	return &Host{
		dispatcher: pointer.NewDispatcher(),
		handles:    make(map[*Circle][]pointer.Handle),
	}
}

func (h *Host) NewCircle(pos f64.Vec2, radius float64, clr color.Color) joystick.Visual {
	c := NewCircle(pos, radius, clr)
	h.visuals = append(h.visuals, c)
	return c
}

func (h *Host) OnInput(v joystick.Visual, onDown, onUp func(pos f64.Vec2)) {
	c, ok := v.(*Circle)
	if !ok {
		return
	}
	handle := h.dispatcher.OnInput(c, onDown, onUp)
	h.handles[c] = append(h.handles[c], handle)
}

func (h *Host) OnMove(fn func(pos f64.Vec2)) {
	h.dispatcher.OnMove(fn)
}

func (h *Host) Release(v joystick.Visual) {
	c, ok := v.(*Circle)
	if !ok {
		return
	}
	for _, handle := range h.handles[c] {
		handle.Remove()
	}
	delete(h.handles, c)
	for i, visual := range h.visuals {
		if visual == c {
			h.visuals = append(h.visuals[:i], h.visuals[i+1:]...)
			break
		}
	}
	c.Dispose()
}

// Update 每帧调用，采集指针并分发事件
func (h *Host) Update() {
	h.dispatcher.Dispatch(h.poll())
}

// poll 鼠标左键编号为 0，触摸点编号从 1 开始
func (h *Host) poll() []pointer.Sample {
	h.samples = h.samples[:0]

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		h.samples = append(h.samples, pointer.Sample{
			ID:  pointer.MouseID,
			Pos: f64.Vec2{float64(x), float64(y)},
		})
	}

	h.touchIDs = ebiten.AppendTouchIDs(h.touchIDs[:0])
	for _, id := range h.touchIDs {
		x, y := ebiten.TouchPosition(id)
		h.samples = append(h.samples, pointer.Sample{
			ID:  int(id) + 1,
			Pos: f64.Vec2{float64(x), float64(y)},
		})
	}

	return h.samples
}

// Draw 按创建顺序绘制，后创建的在上层
func (h *Host) Draw(screen *ebiten.Image) {
	for _, c := range h.visuals {
		c.Draw(screen)
	}
}
