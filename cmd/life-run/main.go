// Command life-run evolves a board without a window: a fixed number of
// generations with a progress bar, or a timed throughput benchmark driven
// through the same engine loop the GUI uses.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"os"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/gernest/wow"
	"github.com/gernest/wow/spin"

	"golife/internal/app"
	"golife/internal/engine"
	"golife/internal/game"
	"golife/internal/life"
	"golife/internal/snapshot"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	gens := flag.Int("gens", 100, "generations to run")
	loadPath := flag.String("load", "", "state file to start from (default: random board)")
	savePath := flag.String("save", "", "state file to write when done")
	seed := flag.Int64("seed", 42, "seed for the random starting pattern")
	bench := flag.Bool("bench", false, "measure generation throughput for -duration instead of -gens")
	duration := flag.Duration("duration", 5*time.Second, "how long to run in bench mode")
	flag.Parse()

	if *bench {
		// A zero period advances one generation per tick.
		cfg.StepMS = 0
	}

	board, err := startingBoard(cfg, *loadPath, *seed)
	if err != nil {
		log.Fatal(err)
	}

	if *bench {
		runBench(board, cfg, *duration)
	} else {
		runGenerations(board, *gens)
	}

	if *savePath != "" {
		if err := snapshot.Save(snapshot.DiskStore{}, snapshot.FixedPath(*savePath), board); err != nil {
			log.Fatal(err)
		}
	}
}

func startingBoard(cfg *app.Config, loadPath string, seed int64) (*life.Board, error) {
	if loadPath != "" {
		b, err := snapshot.Load(snapshot.DiskStore{}, snapshot.FixedPath(loadPath), cfg.Period())
		if err != nil {
			return nil, err
		}
		b.SetWorkers(cfg.Workers)
		return b, nil
	}
	b := cfg.NewBoard()
	if err := b.Randomize(seed, cfg.Density); err != nil {
		return nil, err
	}
	return b, nil
}

func runGenerations(board *life.Board, gens int) {
	bar := pb.StartNew(gens)
	for i := 0; i < gens; i++ {
		board.Advance()
		bar.Increment()
	}
	bar.Finish()
	fmt.Printf("%d generations, population %d\n", board.Generation(), board.Population())
}

// runBench hosts the board in the real engine loop with a null renderer and
// an input source that quits at the deadline.
func runBench(board *life.Board, cfg *app.Config, d time.Duration) {
	g := game.New(board, snapshot.DiskStore{}, snapshot.FixedPath(""), cfg.Density)
	board.SetRunning(true)

	spinner := wow.New(os.Stdout, spin.Get(spin.Dots), " evolving")
	spinner.Start()

	loop := &engine.Loop{
		Renderer: nullRenderer{},
		Input:    &deadlineInput{deadline: time.Now().Add(d)},
		Clock:    &engine.TickClock{},
	}
	start := time.Now()
	err := loop.Run(g)
	spinner.Stop()
	if err != nil {
		log.Fatal(err)
	}

	elapsed := time.Since(start)
	fmt.Printf("\n%d generations in %s (%.0f gen/s), population %d\n",
		board.Generation(), elapsed.Round(time.Millisecond),
		float64(board.Generation())/elapsed.Seconds(), board.Population())
}

type nullRenderer struct{}

func (nullRenderer) Clear(color.Color)                     {}
func (nullRenderer) FillRect(image.Rectangle, color.Color) {}
func (nullRenderer) Present()                              {}

// deadlineInput emits a quit event once the deadline passes.
type deadlineInput struct {
	deadline time.Time
}

func (d *deadlineInput) Poll() []engine.Event {
	if time.Now().After(d.deadline) {
		return []engine.Event{engine.Quit()}
	}
	return nil
}
