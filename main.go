package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/leonelquinteros/gotext"

	"deepdelve/pkg/engine/input"
	"deepdelve/pkg/engine/terminal"
	"deepdelve/pkg/game/dungeon"
	"deepdelve/pkg/game/renderer"
	"deepdelve/pkg/game/renderer/ebitenview"
	"deepdelve/pkg/game/renderer/tui"
	"deepdelve/pkg/game/state"
)

func initGettext() {
	gotext.Configure("mo", "en_GB.utf8", "default")
}

// buildSettings resolves the generation settings: defaults, then the
// optional TOML config file, then any flags the user set explicitly.
func buildSettings() (dungeon.GenerationSettings, error) {
	configPath := flag.Lookup("config").Value.String()

	settings := dungeon.DefaultSettings()
	if configPath != "" {
		loaded, err := dungeon.LoadSettings(configPath)
		if err != nil {
			return settings, err
		}
		settings = loaded
	}

	var visitErr error
	flag.Visit(func(f *flag.Flag) {
		var err error
		switch f.Name {
		case "seed":
			_, err = fmt.Sscanf(f.Value.String(), "%d", &settings.Seed)
		case "width":
			_, err = fmt.Sscanf(f.Value.String(), "%d", &settings.Width)
		case "height":
			_, err = fmt.Sscanf(f.Value.String(), "%d", &settings.Height)
		case "min-room":
			_, err = fmt.Sscanf(f.Value.String(), "%d", &settings.MinRoomSize)
		case "max-room":
			_, err = fmt.Sscanf(f.Value.String(), "%d", &settings.MaxRoomSize)
		case "door":
			_, err = fmt.Sscanf(f.Value.String(), "%d", &settings.DoorSize)
		case "prune":
			_, err = fmt.Sscanf(f.Value.String(), "%g", &settings.PruneFraction)
		}
		if err != nil && visitErr == nil {
			visitErr = fmt.Errorf("flag -%s: %w", f.Name, err)
		}
	})
	if visitErr != nil {
		return settings, visitErr
	}

	return settings, settings.Validate()
}

func main() {
	flag.String("config", "", "path to a TOML settings file")
	flag.Int64("seed", dungeon.DefaultSettings().Seed, "generation seed")
	flag.Int("width", dungeon.DefaultSettings().Width, "map width in tiles")
	flag.Int("height", dungeon.DefaultSettings().Height, "map height in tiles")
	flag.Int("min-room", dungeon.DefaultSettings().MinRoomSize, "minimum room size")
	flag.Int("max-room", dungeon.DefaultSettings().MaxRoomSize, "maximum room size")
	flag.Int("door", dungeon.DefaultSettings().DoorSize, "door size in tiles")
	flag.Float64("prune", dungeon.DefaultSettings().PruneFraction, "fraction of rooms to try to prune")

	rendererName := flag.String("renderer", "tui", "renderer backend: tui or ebiten")
	stepMode := flag.Bool("step", false, "step through generation stage by stage")
	dumpPath := flag.String("dump", "", "write an ASCII map to this file and exit")
	dotPath := flag.String("dot", "", "write the room graph in DOT format to this file and exit")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	initGettext()

	settings, err := buildSettings()
	if err != nil {
		log.Fatal("Invalid settings", "error", err)
	}

	// Batch exports run headless: generate, write, exit.
	if *dumpPath != "" || *dotPath != "" {
		runBatch(settings, *dumpPath, *dotPath)
		return
	}

	g, err := state.New(settings, *stepMode)
	if err != nil {
		log.Fatal("Cannot start", "error", err)
	}

	switch *rendererName {
	case "ebiten":
		if err := ebitenview.Run(g); err != nil {
			log.Fatal("Renderer failed", "error", err)
		}
	case "tui":
		if !terminal.IsInteractive() {
			log.Fatal("The tui renderer needs an interactive terminal; use -dump or -dot for batch output")
		}
		renderer.SetRenderer(tui.New())
		renderer.Init()
		for {
			mainLoop(g)
		}
	default:
		log.Fatal("Unknown renderer", "name", *rendererName)
	}
}

func runBatch(settings dungeon.GenerationSettings, dumpPath, dotPath string) {
	gen, err := dungeon.NewGenerator(settings)
	if err != nil {
		log.Fatal("Cannot start", "error", err)
	}
	d := gen.Generate()

	if dumpPath != "" {
		if err := d.WriteMapFile(dumpPath); err != nil {
			log.Fatal("Map export failed", "error", err)
		}
		log.Info("Wrote map", "path", dumpPath)
	}
	if dotPath != "" {
		if err := d.WriteDOTFile(dotPath); err != nil {
			log.Fatal("Graph export failed", "error", err)
		}
		log.Info("Wrote graph", "path", dotPath)
	}
}

func mainLoop(g *state.Game) {
	renderer.Clear()
	renderer.RenderFrame(g)

	intent := renderer.GetInput()
	switch intent.Action {
	case input.ActionAdvance:
		g.Advance()
	case input.ActionRegenerate:
		if err := g.Regenerate(); err != nil {
			log.Fatal("Regeneration failed", "error", err)
		}
	case input.ActionNewPath:
		g.RandomPath()
	case input.ActionToggleStrategy:
		g.ToggleStrategy()
	case input.ActionQuit:
		fmt.Println(gotext.Get("Goodbye"))
		os.Exit(0)
	}
}
