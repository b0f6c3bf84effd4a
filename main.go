package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/leonelquinteros/gotext"

	"cavegen/pkg/engine/terminal"
	"cavegen/pkg/game/devtools"
	"cavegen/pkg/game/level"
	"cavegen/pkg/game/mesh"
	"cavegen/pkg/game/renderer"
	ebitenrenderer "cavegen/pkg/game/renderer/ebiten"
	"cavegen/pkg/game/renderer/tui"
	"cavegen/pkg/game/state"
)

func initGettext(dir, lang string) {
	gotext.Configure(dir, lang, "default")
}

// parseFlags builds the level configuration from the command line
func parseFlags(fs *flag.FlagSet, args []string) (level.Config, string, error) {
	cfg := level.DefaultConfig()

	fs.IntVar(&cfg.Width, "width", cfg.Width, "grid width in tiles")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "grid height in tiles")
	fs.StringVar(&cfg.Seed, "seed", cfg.Seed, "seed string (ignored with -random)")
	fs.BoolVar(&cfg.UseRandomSeed, "random", cfg.UseRandomSeed, "use a time based seed for every pass")
	fs.IntVar(&cfg.FillPercent, "fill", cfg.FillPercent, "initial wall chance, 0-100")
	fs.IntVar(&cfg.SmoothLevel, "smooth", cfg.SmoothLevel, "smoothing iterations")
	fs.IntVar(&cfg.WallThreshold, "wall-threshold", cfg.WallThreshold, "remove wall regions smaller than this")
	fs.IntVar(&cfg.RoomThreshold, "room-threshold", cfg.RoomThreshold, "fill rooms smaller than this")
	fs.IntVar(&cfg.PassageWidth, "passage-width", cfg.PassageWidth, "passage radius in tiles")
	fs.IntVar(&cfg.BorderSize, "border", cfg.BorderSize, "static border thickness in tiles")
	fs.Float64Var(&cfg.SquareSize, "square-size", cfg.SquareSize, "mesh square edge length")
	fs.Float64Var(&cfg.WallHeight, "wall-height", cfg.WallHeight, "extruded wall height")
	fs.BoolVar(&cfg.Mesh2D, "2d", cfg.Mesh2D, "build a 2D mesh with edge colliders instead of walls")
	saddle := fs.String("saddle", cfg.Saddle.String(), "saddle triangulation: split or bridge")
	mode := fs.String("renderer", "tui", "viewer: tui, ebiten or dump")

	if err := fs.Parse(args); err != nil {
		return cfg, "", err
	}

	s, err := mesh.ParseSaddleMode(*saddle)
	if err != nil {
		return cfg, "", err
	}
	cfg.Saddle = s
	if cfg.Seed == "" && !cfg.UseRandomSeed {
		cfg.UseRandomSeed = true
	}
	return cfg, *mode, cfg.Validate()
}

func main() {
	localeDir := flag.String("locales", "locales", "directory holding gettext catalogues")
	lang := flag.String("lang", "en", "message language")
	cfg, mode, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	initGettext(*localeDir, *lang)

	session := state.NewSession(cfg)

	switch mode {
	case "dump":
		lvl, err := session.Regenerate()
		if err != nil {
			log.Fatalf("Generation failed: %v", err)
		}
		if err := devtools.WriteDump(os.Stdout, lvl); err != nil {
			log.Fatalf("Dump failed: %v", err)
		}
		return
	case "tui":
		if !terminal.IsTerminal() {
			log.Fatalf("The tui renderer needs an interactive terminal; use -renderer dump")
		}
		renderer.SetRenderer(tui.New())
	case "ebiten":
		renderer.SetRenderer(ebitenrenderer.New())
	default:
		fmt.Fprintf(os.Stderr, "unknown renderer %q\n", mode)
		os.Exit(2)
	}

	renderer.Init()
	if err := renderer.Run(session); err != nil {
		log.Fatalf("Renderer stopped: %v", err)
	}
}
