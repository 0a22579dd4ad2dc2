package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/plus3/searchtris/render"
	"github.com/plus3/searchtris/tetris"
	"github.com/spf13/viper"
)

const envPrefix = "searchtris"

// settings is the resolved configuration: defaults, then the optional config
// file, then SEARCHTRIS_* environment variables, then explicitly set flags.
type settings struct {
	cellSize  int
	drop      time.Duration
	debug     bool
	hideGhost bool
	query     string
	render    render.Options
}

// loadDotEnv exports the variables in path unless they are already set.
// A missing file is not an error.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func newConfig() *viper.Viper {
	conf := viper.New()
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("cell", render.DefaultCellSize)
	conf.SetDefault("drop", tetris.DefaultDropInterval)
	conf.SetDefault("debug", false)
	conf.SetDefault("no-ghost", false)
	conf.SetDefault("query", "")
	conf.SetDefault("colors.background", render.DefaultBackground)
	conf.SetDefault("colors.grid", render.DefaultGridLine)
	conf.SetDefault("colors.border", render.DefaultBorder)
	conf.SetDefault("colors.ghost", render.DefaultGhost)

	conf.SetEnvPrefix(envPrefix)
	conf.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	conf.AutomaticEnv()
	return conf
}

// loadSettings reads path (if any) into conf and overlays the flags the user
// actually passed on the command line.
func loadSettings(conf *viper.Viper, path string, fs *flag.FlagSet) (settings, error) {
	if path != "" {
		conf.SetConfigFile(path)
		if err := conf.ReadInConfig(); err != nil {
			return settings{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name != "config" && f.Name != "env" {
			conf.Set(f.Name, f.Value.String())
		}
	})

	s := settings{
		cellSize:  conf.GetInt("cell"),
		drop:      conf.GetDuration("drop"),
		debug:     conf.GetBool("debug"),
		hideGhost: conf.GetBool("no-ghost"),
		query:     conf.GetString("query"),
		render:    render.DefaultOptions(),
	}
	if s.cellSize < 4 {
		return settings{}, fmt.Errorf("invalid cell size %d: must be at least 4", s.cellSize)
	}
	if s.drop <= 0 {
		return settings{}, fmt.Errorf("invalid drop interval %s: must be positive", s.drop)
	}

	s.render.CellSize = s.cellSize
	s.render.HideGhost = s.hideGhost
	for key, dst := range map[string]*color.Color{
		"colors.background": &s.render.Background,
		"colors.grid":       &s.render.GridLine,
		"colors.border":     &s.render.Border,
		"colors.ghost":      &s.render.Ghost,
	} {
		c, err := render.ParseHex(conf.GetString(key))
		if err != nil {
			return settings{}, fmt.Errorf("%s: %w", key, err)
		}
		*dst = c
	}
	return s, nil
}
