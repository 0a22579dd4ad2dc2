package main

import (
	"github.com/hajimehoshi/bitmapfont/v3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
)

// helpMessage is shown once a game starts.
const helpMessage = "←→ move  ↑ rotate  ↓ drop  C hold"

// hudFont covers Latin, kana and kanji, so queries, the help line and the
// game over notice all render.
var hudFont font.Face = bitmapfont.Face

var hudFace = text.NewGoXFace(hudFont)

func drawText(dst *ebiten.Image, s string, x, y int) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	text.Draw(dst, s, hudFace, op)
}
