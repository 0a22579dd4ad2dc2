package ebiten_test

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/searchtris/render"
	renderebiten "github.com/plus3/searchtris/render/ebiten"
	"github.com/plus3/searchtris/tetris"
)

// Game paints a running session every frame.
type Game struct {
	session  *tetris.Session
	renderer *render.Renderer
}

func (g *Game) Update() error {
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(renderebiten.NewCanvas(screen, 16, 16), g.session)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func Example() {
	session := tetris.NewSession(tetris.DefaultOptions())
	session.Start()

	game := &Game{
		session:  session,
		renderer: render.NewRenderer(render.DefaultOptions()),
	}

	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}
