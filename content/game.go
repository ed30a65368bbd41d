package main

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	raudio "github.com/hajimehoshi/ebiten/v2/examples/resources/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"virtual-joystick/content/config"
	"virtual-joystick/content/host"
	"virtual-joystick/content/joystick"
	"virtual-joystick/content/utils"
)

type Game struct {
	mode      config.Mode
	settings  *config.Settings
	host      *host.Host
	joystick  *joystick.Controller
	player    *Player
	hitPlayer *audio.Player
	atLimit   bool           // 摇杆头是否已经到达限制圆
	lastState joystick.State // 上一帧的拖动状态，用于调试日志
	touchIDs  []ebiten.TouchID
}

func NewGame(s *config.Settings) *Game {
	g := &Game{settings: s}
	g.init()
	return g
}

func (g *Game) init() {
	g.mode = config.ModeTitle
	g.player = &Player{
		x:     config.ScreenWidth/2 - config.FrameWidth/2,
		y:     config.ScreenHeight/2 - config.FrameHeight/2,
		speed: g.settings.Player.Speed,
	}

	g.host = host.New()
	g.joystick = joystick.New(g.host)
	g.initJoystick()
	g.lastState = joystick.Idle
	g.atLimit = false

	if audioContext == nil {
		audioContext = audio.NewContext(48000)
	}
	jabD, err := wav.DecodeWithoutResampling(bytes.NewReader(raudio.Jab_wav))
	if err != nil {
		log.Fatal(err)
	}
	g.hitPlayer, err = audioContext.NewPlayer(jabD)
	if err != nil {
		log.Fatal(err)
	}
}

func (g *Game) initJoystick() {
	js := g.settings.Joystick

	x, y := js.X, js.Y
	if js.Anchor != nil {
		x, y = utils.ReNormalize(js.Anchor.X, js.Anchor.Y)
	}

	opts := []joystick.Option{
		joystick.WithDiameter(js.Diameter),
		joystick.WithBaseColor(config.MustParseColor(js.BaseColor)),
		joystick.WithStickColor(config.MustParseColor(js.StickColor)),
	}
	if js.Limit > 0 {
		opts = append(opts, joystick.WithLimit(js.Limit))
	}
	if js.CapForce {
		opts = append(opts, joystick.WithForceCap())
	}

	g.joystick.Init(x, y, opts...)
}

func (g *Game) Update() error {
	switch g.mode {
	case config.ModeTitle:
		if g.startPressed() {
			g.mode = config.ModeGame
		}
	case config.ModeGame:
		if err := g.resolveModeGame(); err != nil {
			return err
		}
	}

	return nil
}

// startPressed 空格、鼠标或触摸都可以开始游戏
func (g *Game) startPressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return true
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
	return len(g.touchIDs) > 0
}

func (g *Game) resolveModeGame() error {
	g.player.count++
	g.player.moving = false

	// 分发指针事件，驱动摇杆
	g.host.Update()
	g.joystick.Update()

	g.resolveJoystick()

	g.resolveKeyPressed()

	if err := g.resolveLimitFeedback(); err != nil {
		return err
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.joystick.StopDrag()
		g.mode = config.ModeTitle
	}

	return nil
}

func (g *Game) resolveJoystick() {
	state := g.joystick.State()
	if g.settings.Debug && state != g.lastState {
		s := g.joystick.Snapshot()
		log.Printf("joystick %s -> %s pointer=(%.1f, %.1f) angle=%.1f force=%.2f",
			g.lastState, state, s.Pointer[0], s.Pointer[1], s.Angle, s.Force)
	}
	g.lastState = state

	if !g.joystick.IsDragging() {
		return
	}

	// 速度单位为像素每秒，换算到每帧
	v := g.joystick.Velocity(g.settings.Joystick.MinSpeed, g.settings.Joystick.MaxSpeed)
	tps := float64(ebiten.TPS())
	g.player.Move(v[0]/tps, v[1]/tps)

	if g.joystick.Force() > 0 {
		g.player.directIdx = utils.GetDirectionIdxByAngle(g.joystick.Angle())
	}
}

func (g *Game) resolveKeyPressed() {
	// 检查键盘输入，人物移动
	for idx, d := range directions {
		if ebiten.IsKeyPressed(d.key) {
			g.player.Move(d.dx*g.player.speed, d.dy*g.player.speed)
			g.player.directIdx = idx
		}
	}
}

// resolveLimitFeedback 拖动中摇杆头第一次到达限制圆时播放音效
func (g *Game) resolveLimitFeedback() error {
	reached := g.joystick.IsDragging() && g.joystick.Distance() >= g.joystick.Limit()
	if reached && !g.atLimit {
		if err := g.hitPlayer.Rewind(); err != nil {
			return err
		}
		g.hitPlayer.Play()
	}
	g.atLimit = reached
	return nil
}

// Draw 每次绘制都会调用这个函数，重新设置画面元素的内容
func (g *Game) Draw(screen *ebiten.Image) {
	if g.mode == config.ModeTitle {
		drawText(screen, "Virtual Joystick", config.ScreenWidth/2, 5*config.TitleFontSize, config.TitleFontSize, text.AlignCenter)
		drawText(screen, "TOUCH OR PRESS SPACE", config.ScreenWidth/2, 7*config.TitleFontSize, config.FontSize, text.AlignCenter)
		return
	}

	// 绘制角色，向左时水平翻转
	op := &ebiten.DrawImageOptions{}
	if directions[g.player.directIdx].dx < 0 {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(config.FrameWidth, 0)
	}
	op.GeoM.Translate(g.player.x, g.player.y)
	i := 0
	if g.player.moving {
		i = (g.player.count / 5) % config.FrameCount
	}
	sx, sy := config.FrameOX+i*config.FrameWidth, config.FrameOY
	screen.DrawImage(runnerImage.SubImage(image.Rect(sx, sy, sx+config.FrameWidth, sy+config.FrameHeight)).(*ebiten.Image), op)

	// 绘制摇杆
	g.host.Draw(screen)

	if g.settings.Debug && g.joystick.IsDragging() {
		base, p := g.joystick.Base(), g.joystick.Pointer()
		ebitenutil.DrawLine(screen, base[0], base[1], p[0], p[1], color.RGBA{255, 255, 255, 128})

		// 人物中心画出每秒速度的四分之一
		cx, cy := g.player.Center()
		v := g.joystick.Velocity(g.settings.Joystick.MinSpeed, g.settings.Joystick.MaxSpeed)
		ebitenutil.DrawLine(screen, cx, cy, cx+v[0]/4, cy+v[1]/4, color.RGBA{255, 255, 0, 160})
	}

	// 绘制摇杆输出
	hud := fmt.Sprintf("Angle: %3.0f  Force: %.2f", g.joystick.Angle(), g.joystick.Force())
	drawText(screen, hud, 3, 3, config.FontSize, text.AlignStart)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}
