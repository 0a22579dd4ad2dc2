package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// searchBox is a single-line text field fed by Ebiten's character input.
type searchBox struct {
	text    []rune
	pending []rune
	ticks   int
}

// update consumes this tick's typing and reports whether Enter was pressed.
func (b *searchBox) update() bool {
	b.ticks++
	b.pending = ebiten.AppendInputChars(b.pending[:0])
	b.text = append(b.text, b.pending...)

	if len(b.text) > 0 && repeating(ebiten.KeyBackspace) {
		b.text = b.text[:len(b.text)-1]
	}
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter)
}

func (b *searchBox) display() string {
	cursor := ""
	if b.ticks/30%2 == 0 {
		cursor = "_"
	}
	return string(b.text) + cursor
}
