package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/searchtris/frame"
	"github.com/plus3/searchtris/play"
	"github.com/plus3/searchtris/tetris"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total wall-clock duration the soak should run for.")
	seed := flag.Uint64("seed", 1, "Seed for piece dealing and random input.")
	interval := flag.Duration("interval", 16*time.Millisecond, "Simulated time between frames.")
	inputRate := flag.Float64("input-rate", 0.3, "Probability of a random key press on each frame.")
	verbose := flag.Bool("v", false, "Log every session's game over.")
	flag.Parse()

	if *interval <= 0 {
		log.Fatalf("-interval must be positive, got %s", *interval)
	}
	if *inputRate < 0 || *inputRate > 1 {
		log.Fatalf("-input-rate must be within [0, 1], got %v", *inputRate)
	}

	log.Println("Starting tetris soak test...")

	rng := rand.New(rand.NewPCG(*seed, *seed^0x9e3779b97f4a7c15))
	var sessionLogger *log.Logger
	if *verbose {
		sessionLogger = log.New(os.Stderr, "session: ", log.LstdFlags)
	}

	report := NewReport(*duration, *seed, *interval, *inputRate)
	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running sessions for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var game *play.Game
	var input *RandomInputSystem
	var now time.Duration

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			if game == nil {
				opts := tetris.DefaultOptions()
				opts.Rand = rng
				input = &RandomInputSystem{Rand: rng, Rate: *inputRate}
				game = play.NewGame(play.Config{
					Session: opts,
					Before:  []frame.System{input},
					Logger:  sessionLogger,
				})
				input.Queue = game.Input
				now = 0
			}

			frameStart := time.Now()
			running := game.Frame(now)
			report.FrameTime.Record(time.Since(frameStart))
			now += *interval

			if !running {
				report.AddSession(game, input.Pushed)
				game = nil
			}
		}
	}
	if game != nil {
		report.AddSession(game, input.Pushed)
	}

	report.TotalTime = time.Since(startTime)
	report.FrameTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Soak finished.")

	fmt.Println("\n\n--- Soak Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}
