package ebiten_test

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/searchtris/debugui"
	debugui_ebiten "github.com/plus3/searchtris/debugui/ebiten"
	"github.com/plus3/searchtris/play"
	"github.com/plus3/searchtris/tetris"
)

// Game implements ebiten.Game and draws the inspector over the session.
type Game struct {
	game         *play.Game
	imguiBackend *debugui_ebiten.ImguiBackend
	clock        int
}

func (g *Game) Update() error {
	// Begin ImGui frame before executing systems
	g.imguiBackend.BeginFrame()

	g.clock++
	g.game.Frame(time.Duration(g.clock) * time.Second / time.Duration(ebiten.TPS()))

	// End ImGui frame after systems complete
	g.imguiBackend.EndFrame()

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw game content to screen
	// ...

	// Draw ImGui overlay on top
	g.imguiBackend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.imguiBackend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	backend := debugui_ebiten.NewImguiBackend("searchtris inspector", 1280, 720)

	game := play.NewGame(play.Config{Session: tetris.DefaultOptions()})
	imguiSystem, perf := debugui.NewDebugSystems(game)
	game.Scheduler.Register(perf)
	game.Scheduler.Register(imguiSystem)

	if err := ebiten.RunGame(&Game{game: game, imguiBackend: backend}); err != nil {
		panic(err)
	}
}
