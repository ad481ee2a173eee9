package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"platformgen/pkg/engine/input"
	"platformgen/pkg/engine/noise"
	"platformgen/pkg/engine/terminal"
	"platformgen/pkg/game/config"
	"platformgen/pkg/game/devtools"
	"platformgen/pkg/game/generator"
	"platformgen/pkg/game/level"
	"platformgen/pkg/game/renderer"
	ebitenrenderer "platformgen/pkg/game/renderer/ebiten"
	"platformgen/pkg/game/renderer/tui"
)

func initGotext(cfg *config.Config) {
	gotext.Configure(cfg.LocaleDir, cfg.Language, "default")
}

// loadConfig reads path, or returns the defaults when path is empty
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func main() {
	seedFlag := flag.String("seed", "", "level seed: an integer, any text, or empty for a random seed")
	width := flag.Int("width", 0, "grid width in cells")
	height := flag.Int("height", 0, "grid height in cells")
	configPath := flag.String("config", "", "JSON config file")
	gen := flag.String("generator", "", "grid generator: noise or chunks")
	chunkDir := flag.String("chunks", "", "directory of JSON chunks for the chunks generator")
	noiseKind := flag.String("noise", "", "noise field: perlin or simplex")
	rendererName := flag.String("renderer", "", "preview: tui, ebiten, or none")
	dumpPath := flag.String("dump", "", "write a debug dump of the first level to this file")
	lang := flag.String("lang", "", "language code for UI text")
	flag.Parse()

	logger := log.New(os.Stderr, "platformgen: ", 0)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Fatalf("could not load config: %v", err)
	}

	// Flags given on the command line override the file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "generator":
			cfg.Generator = generator.Kind(*gen)
		case "chunks":
			cfg.ChunkDir = *chunkDir
		case "noise":
			cfg.Noise = noise.Kind(*noiseKind)
		case "renderer":
			cfg.Renderer = *rendererName
		case "lang":
			cfg.Language = *lang
		}
	})

	initGotext(cfg)

	builder, err := level.FromConfig(cfg, logger)
	if err != nil {
		logger.Fatalf("%v", err)
	}

	lvl := builder.Build(*seedFlag)

	if *dumpPath != "" {
		path, err := devtools.DumpLevelToPath(lvl, *dumpPath)
		if err != nil {
			logger.Fatalf("could not write dump: %v", err)
		}
		logger.Printf("wrote dump to %s", path)
	}

	switch cfg.Renderer {
	case config.RendererNone:
		printPlain(lvl)
	case config.RendererEbiten:
		if err := runEbiten(cfg, builder, lvl, logger); err != nil {
			logger.Fatalf("preview window failed: %v", err)
		}
	default:
		runTUI(builder, lvl, logger)
	}
}

// printPlain writes the level as text for piping into other tools
func printPlain(lvl *level.Level) {
	color.Yellow.Printf("%s %d (%s)\n", gotext.Get("SEED_LABEL"), lvl.Seed, gotext.Get(lvl.Origin.String()))
	fmt.Print(lvl.Grid.String())
	for _, p := range lvl.Placements {
		fmt.Printf("%s %.1f %.1f\n", p.Kind, p.Position.X, p.Position.Y)
	}
}

// runTUI shows the level in the terminal. Without an interactive terminal the
// level is printed once.
func runTUI(builder *level.Builder, lvl *level.Level, logger *log.Logger) {
	r := tui.New()
	renderer.SetRenderer(r)
	renderer.Init()

	if !terminal.IsTerminal(os.Stdin) || !terminal.IsTerminal(os.Stdout) {
		renderer.RenderLevel(lvl)
		return
	}

	message := ""
	for {
		renderer.Clear()
		renderer.RenderLevel(lvl)
		if message != "" {
			renderer.ShowMessage(message)
			message = ""
		}

		raw, err := input.ReadKey()
		if err != nil {
			logger.Printf("could not read key: %v", err)
			return
		}

		switch input.MapToAction(raw) {
		case input.ActionQuit:
			return
		case input.ActionRegenerate:
			lvl = builder.Build("")
		case input.ActionScrollLeft:
			r.Scroll(-1)
		case input.ActionScrollRight:
			r.Scroll(1)
		case input.ActionDump:
			path, err := devtools.DumpLevelToFile(lvl)
			if err != nil {
				message = renderer.FormatText("GT{DUMP_FAILED}")
				logger.Printf("dump failed: %v", err)
			} else {
				message = gotext.Get("DUMP_WRITTEN", path)
			}
		}
	}
}

// runEbiten opens the preview window and blocks until it is closed
func runEbiten(cfg *config.Config, builder *level.Builder, lvl *level.Level, logger *log.Logger) error {
	r := ebitenrenderer.New(cfg.TileSize, logger)
	r.OnRegenerate(func() *level.Level {
		return builder.Build("")
	})
	r.OnDump(devtools.DumpLevelToFile)

	renderer.SetRenderer(r)
	renderer.Init()
	renderer.RenderLevel(lvl)

	logger.Printf("%s", gotext.Get("WINDOW_HELP"))

	return r.Run()
}
