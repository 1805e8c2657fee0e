// Command mystify runs the Mystify screensaver in a window, in the terminal,
// or renders a single frame to a PNG file.
//
//	mystify                          # window
//	mystify -mode term               # terminal, Esc or q to quit
//	mystify -mode png -frames 600    # write mystify.png
//	mystify -config mystify.toml -seed 42 -debug
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/mystify"
	"github.com/phanxgames/mystify/ebitenhost"
	"github.com/phanxgames/mystify/rasterhost"
	"github.com/phanxgames/mystify/termhost"
)

func main() {
	mode := flag.String("mode", "window", "output: window, term or png")
	configPath := flag.String("config", "", "TOML file overriding the default config")
	seed := flag.Uint64("seed", 0, "random seed; 0 picks one")
	frames := flag.Int("frames", 600, "updates before the frame is saved (png mode)")
	out := flag.String("out", "mystify.png", "output file (png mode)")
	scale := flag.Float64("scale", 0.5, "window size relative to the screen (window mode)")
	tps := flag.Int("tps", 60, "ticks per second")
	fadeIn := flag.Float64("fade", 1.5, "fade-in seconds (window mode)")
	showFPS := flag.Bool("fps", false, "show FPS (window mode)")
	debug := flag.Bool("debug", false, "log per-frame stats to stderr")
	flag.Parse()

	setupLogging(*mode, *debug)

	cfg := mystify.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = mystify.LoadConfig(*configPath); err != nil {
			log.Fatal(err)
		}
	}

	var opts []mystify.Option
	if *seed != 0 {
		opts = append(opts, mystify.WithSeed(*seed))
	}
	engine := mystify.NewEngine(cfg, nil, opts...)
	engine.SetDebugMode(*debug)

	var err error
	switch *mode {
	case "window":
		err = ebitenhost.Run(engine, ebitenhost.RunConfig{
			Title:   "Mystify",
			Scale:   *scale,
			TPS:     *tps,
			ShowFPS: *showFPS,
			FadeIn:  float32(*fadeIn),
		})
	case "term":
		err = runTerm(engine, *tps)
	case "png":
		err = rasterhost.RenderPNG(engine, *frames, *out)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal(err)
	}
}

// setupLogging installs a stderr logger. The terminal host owns the screen,
// so it only logs when debugging.
func setupLogging(mode string, debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	} else if mode == "term" {
		return
	}
	mystify.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func runTerm(engine *mystify.Engine, tps int) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return termhost.Run(ctx, screen, engine, termhost.WithTPS(tps))
}
