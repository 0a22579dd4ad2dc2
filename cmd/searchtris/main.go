package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/searchtris/debugui"
	debugui_ebiten "github.com/plus3/searchtris/debugui/ebiten"
	"github.com/plus3/searchtris/render"
	"github.com/plus3/searchtris/tetris"
)

func registerFlags(fs *flag.FlagSet) {
	fs.String("env", ".env", "Optional dotenv file with SEARCHTRIS_* variables.")
	fs.String("config", "", "Optional YAML, TOML or JSON file with settings and theme colors.")
	fs.Int("cell", render.DefaultCellSize, "Size of one board cell in pixels.")
	fs.Duration("drop", tetris.DefaultDropInterval, "Time between automatic drops.")
	fs.String("query", "", "Submit this search query on startup.")
	fs.Bool("debug", false, "Show the Dear ImGui inspector windows.")
	fs.Bool("no-ghost", false, "Do not draw the landing outline.")
}

func main() {
	registerFlags(flag.CommandLine)
	flag.Parse()

	if err := loadDotEnv(flag.Lookup("env").Value.String()); err != nil {
		log.Fatalf("config: %v", err)
	}
	cfg, err := loadSettings(newConfig(), flag.Lookup("config").Value.String(), flag.CommandLine)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := log.New(os.Stderr, "searchtris: ", log.LstdFlags)

	sessionOpts := tetris.DefaultOptions()
	sessionOpts.DropInterval = cfg.drop

	host := newHost(hostConfig{
		renderer: render.NewRenderer(cfg.render),
		session:  sessionOpts,
		logger:   logger,
	})

	width, height := host.screenSize()
	if cfg.debug {
		host.imguiBackend = debugui_ebiten.NewImguiBackend("searchtris", width+600, height)
		host.newDebugSystems = debugui.NewDebugSystems
	} else {
		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowTitle("searchtris")
	}

	if cfg.query != "" {
		host.search.text = []rune(cfg.query)
		host.submit()
	}

	logger.Println("type テトリス or tetris into the search box and press Enter")
	if err := ebiten.RunGame(host); err != nil {
		logger.Fatalf("run: %v", err)
	}
}
