package main

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/searchtris/debugui"
	debugui_ebiten "github.com/plus3/searchtris/debugui/ebiten"
	"github.com/plus3/searchtris/play"
	"github.com/plus3/searchtris/render"
	renderebiten "github.com/plus3/searchtris/render/ebiten"
	"github.com/plus3/searchtris/tetris"
)

const (
	margin      = 16
	headerLines = 4
	lineHeight  = 16

	// key repeat, in ticks, matching a browser's keydown autorepeat
	repeatDelay    = 15
	repeatInterval = 3
)

var gameKeys = []ebiten.Key{
	ebiten.KeyArrowLeft,
	ebiten.KeyArrowRight,
	ebiten.KeyArrowDown,
	ebiten.KeyArrowUp,
	ebiten.KeyC,
}

type hostConfig struct {
	renderer *render.Renderer
	session  tetris.Options
	logger   *log.Logger
}

// host plays the part of the web page: a search box that launches the game
// and the canvas it is drawn on.
type host struct {
	cfg     hostConfig
	search  searchBox
	trigger *play.Trigger
	game    *play.Game
	start   time.Time
	notice  string

	imguiBackend    *debugui_ebiten.ImguiBackend
	newDebugSystems func(*play.Game) (*debugui.ImguiSystem, *debugui.PerformanceStats)
	imguiSystem     *debugui.ImguiSystem
}

func newHost(cfg hostConfig) *host {
	h := &host{cfg: cfg}
	h.trigger = play.NewTrigger(h.launch)
	return h
}

func (h *host) screenSize() (int, int) {
	rows, cols := h.cfg.session.Rows, h.cfg.session.Cols
	if rows <= 0 || cols <= 0 {
		rows, cols = tetris.DefaultRows, tetris.DefaultCols
	}
	w, bh := h.cfg.renderer.Size(tetris.NewBoard(rows, cols))
	return w + 2*margin, bh + 2*margin + headerLines*lineHeight
}

func (h *host) launch() {
	h.game = play.NewGame(play.Config{
		Session:    h.cfg.session,
		Logger:     h.cfg.logger,
		OnGameOver: h.gameOver,
	})
	if h.newDebugSystems != nil {
		imguiSystem, perf := h.newDebugSystems(h.game)
		h.game.Scheduler.Register(perf)
		h.game.Scheduler.Register(imguiSystem)
		h.imguiSystem = imguiSystem
	}
	h.start = time.Now()
	h.notice = helpMessage
}

func (h *host) gameOver() {
	h.notice = play.GameOverMessage
	st := h.game.Session.Stats()
	h.cfg.logger.Printf("%s: game %s, %d lines, %d pieces", play.GameOverMessage, h.game.ID, st.LinesCleared, st.Locked)
}

func (h *host) submit() {
	query := string(h.search.text)
	err := h.trigger.Submit(query)
	switch {
	case err == nil:
	case errors.Is(err, play.ErrAlreadyStarted):
		h.cfg.logger.Printf("ignoring %q: %v", query, err)
	case errors.Is(err, play.ErrNotTrigger):
		h.notice = fmt.Sprintf("search: %s", query)
		h.cfg.logger.Printf("search %q", query)
	}
	h.search.text = h.search.text[:0]
}

func (h *host) keyboardCaptured() bool {
	return h.imguiSystem != nil && h.imguiSystem.InputState.WantCaptureKeyboard
}

func (h *host) Update() error {
	if h.imguiBackend != nil {
		h.imguiBackend.BeginFrame()
		defer h.imguiBackend.EndFrame()
	}

	// the canvas has focus while a game is running
	searchFocused := h.game == nil || h.game.Over()
	if searchFocused && !h.keyboardCaptured() && h.search.update() {
		h.submit()
	}

	if h.game == nil {
		return nil
	}

	if h.game.Over() {
		// the loop has stopped; keep the inspector visible
		if h.imguiSystem != nil {
			for _, item := range h.imguiSystem.Items {
				item.Render()
			}
		}
		return nil
	}

	if !h.keyboardCaptured() {
		for _, key := range gameKeys {
			if repeating(key) {
				h.game.Press(key.String())
			}
		}
	}
	h.game.Frame(time.Since(h.start))
	return nil
}

func repeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0
}

func (h *host) Draw(screen *ebiten.Image) {
	y := margin
	drawText(screen, "Search: "+h.search.display(), margin, y)
	y += lineHeight
	if h.game != nil {
		drawText(screen, h.game.Status.Hold, margin, y)
		drawText(screen, h.game.Status.Status, margin, y+lineHeight)
	}
	drawText(screen, h.notice, margin, y+2*lineHeight)

	if h.game != nil {
		top := float32(margin + headerLines*lineHeight)
		h.cfg.renderer.Draw(renderebiten.NewCanvas(screen, margin, top), h.game.Session)
	}

	if h.imguiBackend != nil {
		h.imguiBackend.Draw(screen)
	}
}

func (h *host) Layout(outsideWidth, outsideHeight int) (int, int) {
	if h.imguiBackend != nil {
		h.imguiBackend.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return h.screenSize()
}
