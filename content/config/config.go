package config

type Mode int

const (
	ModeTitle Mode = iota
	ModeGame
)

const (
	ScreenWidth   = 480
	ScreenHeight  = 320
	FrameOX       = 0
	FrameOY       = 32
	FrameWidth    = 32
	FrameHeight   = 32
	FrameCount    = 8
	TitleFontSize = FontSize * 1.5
	FontSize      = 8
)

// 摇杆默认参数
const (
	DefaultDiameter    = 80
	DefaultMinSpeed    = 0
	DefaultMaxSpeed    = 200
	DefaultBaseColor   = "#ff000080" // 半透明红色
	DefaultStickColor  = "#00ff00ff" // 不透明绿色
	DefaultPlayerSpeed = 2.0         // 键盘移动时每帧的位移
)

const (
	NubInset = 4 // 摇杆头比底座小的像素数
)
