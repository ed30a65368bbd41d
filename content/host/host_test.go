package host

import (
	"image/color"
	"testing"

	"golang.org/x/image/math/f64"

	"virtual-joystick/content/joystick"
	"virtual-joystick/content/pointer"
)

func TestCircleContains(t *testing.T) {
	c := NewCircle(f64.Vec2{10, 10}, 5, color.White)
	if !c.Contains(f64.Vec2{15, 10}) {
		t.Error("expected boundary point inside")
	}

	// 点击区域跟随移动
	c.SetPosition(f64.Vec2{100, 100})
	if c.Contains(f64.Vec2{10, 10}) || !c.Contains(f64.Vec2{102, 100}) {
		t.Errorf("expected hit area to follow position %v", c.Position())
	}
}

func TestRelease(t *testing.T) {
	h := New()
	base := h.NewCircle(f64.Vec2{50, 50}, 20, color.White)
	nub := h.NewCircle(f64.Vec2{50, 50}, 16, color.Black)

	var events []string
	h.OnInput(nub, func(f64.Vec2) { events = append(events, "down") }, func(f64.Vec2) { events = append(events, "up") })

	h.dispatcher.Dispatch([]pointer.Sample{{ID: pointer.MouseID, Pos: f64.Vec2{50, 50}}})
	if len(events) != 1 || events[0] != "down" {
		t.Fatalf("expected down, got %v", events)
	}

	h.Release(nub)

	if len(h.visuals) != 1 || h.visuals[0] != base {
		t.Errorf("expected only base left in draw list, got %d visuals", len(h.visuals))
	}
	if _, ok := h.handles[nub.(*Circle)]; ok {
		t.Error("expected handles of released visual to be dropped")
	}
	if _, ok := h.dispatcher.Captured(); ok {
		t.Error("expected capture cleared with released visual")
	}

	h.dispatcher.Dispatch(nil)
	h.dispatcher.Dispatch([]pointer.Sample{{ID: pointer.MouseID, Pos: f64.Vec2{50, 50}}})
	if len(events) != 1 {
		t.Errorf("expected no events after release, got %v", events)
	}

	// 释放未知图形不影响已有图形
	h.Release(nil)
	if len(h.visuals) != 1 {
		t.Errorf("expected draw list unchanged, got %d visuals", len(h.visuals))
	}
}

func TestControllerReinit(t *testing.T) {
	h := New()
	c := joystick.New(h)
	c.Init(100, 100, joystick.WithDiameter(100), joystick.WithLimit(50))

	h.dispatcher.Dispatch([]pointer.Sample{{ID: 1, Pos: f64.Vec2{110, 100}}})
	if !c.IsDragging() {
		t.Fatal("expected dragging after press on nub")
	}
	h.dispatcher.Dispatch([]pointer.Sample{{ID: 1, Pos: f64.Vec2{200, 100}}})
	if c.NubPosition() != (f64.Vec2{150, 100}) {
		t.Errorf("expected nub clamped to (150, 100), got %v", c.NubPosition())
	}

	c.Init(300, 200)
	if len(h.visuals) != 2 || len(h.handles) != 1 {
		t.Errorf("expected 2 visuals and 1 handled visual, got %d and %d", len(h.visuals), len(h.handles))
	}

	// 旧摇杆头已释放，只有新位置能开始拖动
	h.dispatcher.Dispatch(nil)
	h.dispatcher.Dispatch([]pointer.Sample{{ID: 1, Pos: f64.Vec2{100, 100}}})
	if c.IsDragging() {
		t.Error("expected released nub to ignore presses")
	}
	h.dispatcher.Dispatch(nil)
	h.dispatcher.Dispatch([]pointer.Sample{{ID: 1, Pos: f64.Vec2{300, 200}}})
	if !c.IsDragging() {
		t.Error("expected new nub to start a drag")
	}
}
