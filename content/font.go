package main

import (
	"bytes"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var (
	arcadeFaceSource *text.GoTextFaceSource
)

func InitFont() {
	// 加载字体
	s, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.PressStart2P_ttf))
	if err != nil {
		log.Fatal(err)
	}
	arcadeFaceSource = s
}

// drawText 在 (x, y) 处绘制白色文字
func drawText(screen *ebiten.Image, str string, x, y, size float64, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(color.White)
	op.LineSpacing = size
	op.PrimaryAlign = align
	text.Draw(screen, str, &text.GoTextFace{
		Source: arcadeFaceSource,
		Size:   size,
	}, op)
}
