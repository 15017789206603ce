// Package state holds the mutable application state shared between the
// renderers and the input loop.
package state

import (
	"fmt"
	"math/rand"

	"deepdelve/pkg/engine/graph"
	"deepdelve/pkg/engine/world"
	"deepdelve/pkg/game/dungeon"
	"deepdelve/pkg/game/nav"
)

// Game is the viewer's state: one generation run, the navigation graph
// derived from it and the most recent path query overlay.
type Game struct {
	Settings dungeon.GenerationSettings

	Gen     *dungeon.Generator
	Dungeon *dungeon.Dungeon
	Nav     *graph.Graph[world.Position]

	Strategy  nav.Strategy
	Path      []world.Position
	PathStart world.Position
	PathGoal  world.Position

	// StepMode pauses after every pipeline stage and waits for an
	// advance signal instead of generating in one go.
	StepMode bool

	Messages []string

	rng *rand.Rand
}

// New creates a game for the given settings. Outside step mode the
// dungeon is generated to completion immediately.
func New(settings dungeon.GenerationSettings, stepMode bool) (*Game, error) {
	g := &Game{
		Settings: settings,
		StepMode: stepMode,
		rng:      rand.New(rand.NewSource(settings.Seed)),
	}
	if err := g.restart(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) restart() error {
	gen, err := dungeon.NewGenerator(g.Settings)
	if err != nil {
		return err
	}
	g.Gen = gen
	g.Nav = nil
	g.Path = nil

	if g.StepMode {
		g.Dungeon = gen.Dungeon()
		g.AddMessage(fmt.Sprintf("Seed %d: press space to run '%s'", g.Settings.Seed, dungeon.StagePartition))
		return nil
	}

	g.Dungeon = gen.Generate()
	g.Nav = nav.BuildGraph(g.Dungeon.Tiles)
	g.AddMessage(fmt.Sprintf("Seed %d: %d rooms, %d doors", g.Settings.Seed, len(g.Dungeon.Rooms), len(g.Dungeon.Doors)))
	return nil
}

// Complete reports whether generation and the nav-graph build are done.
func (g *Game) Complete() bool {
	return g.Gen.Done() && g.Nav != nil
}

// Advance runs the next pipeline stage, or builds the navigation graph
// once the pipeline is finished. Outside step mode it is a no-op.
func (g *Game) Advance() {
	if g.Complete() {
		g.AddMessage("Generation already complete")
		return
	}

	if !g.Gen.Done() {
		stage, _ := g.Gen.Step()
		g.Dungeon = g.Gen.Dungeon()
		g.AddMessage(fmt.Sprintf("Stage '%s' done (%d rooms, %d doors)", stage, len(g.Dungeon.Rooms), len(g.Dungeon.Doors)))
		return
	}

	g.Nav = nav.BuildGraph(g.Dungeon.Tiles)
	g.AddMessage(fmt.Sprintf("Navigation graph built: %d cells", g.Nav.NodeCount()))
}

// Regenerate starts a fresh run with a new seed.
func (g *Game) Regenerate() error {
	g.Settings.Seed++
	g.ClearMessages()
	return g.restart()
}

// RandomPath runs a path query between two random walkable cells and
// stores the result for the renderers to overlay.
func (g *Game) RandomPath() {
	if !g.Complete() {
		g.AddMessage("Finish generation before querying paths")
		return
	}
	nodes := g.Nav.Nodes()
	if len(nodes) == 0 {
		g.AddMessage("No walkable cells")
		return
	}

	g.PathStart = nodes[g.rng.Intn(len(nodes))]
	g.PathGoal = nodes[g.rng.Intn(len(nodes))]
	g.Path = nav.FindPath(g.Nav, g.PathStart, g.PathGoal, g.Strategy)

	if len(g.Path) == 0 {
		g.AddMessage(fmt.Sprintf("No path from (%d,%d) to (%d,%d)", g.PathStart.X, g.PathStart.Y, g.PathGoal.X, g.PathGoal.Y))
		return
	}
	g.AddMessage(fmt.Sprintf("%s path: %d waypoints", g.Strategy, len(g.Path)))
}

// ToggleStrategy flips between A* and the greedy fallback and re-runs
// the current query if there is one.
func (g *Game) ToggleStrategy() {
	if g.Strategy == nav.StrategyAStar {
		g.Strategy = nav.StrategyGreedy
	} else {
		g.Strategy = nav.StrategyAStar
	}
	g.AddMessage(fmt.Sprintf("Search strategy: %s", g.Strategy))

	if g.Complete() && len(g.Path) > 0 {
		g.Path = nav.FindPath(g.Nav, g.PathStart, g.PathGoal, g.Strategy)
	}
}

// CurrentTiles returns the tiles to draw: the finished tile map when
// rasterization has run, otherwise a preview of the rooms so far.
func (g *Game) CurrentTiles() *world.TileMap {
	if g.Dungeon != nil && g.Dungeon.Tiles != nil {
		return g.Dungeon.Tiles
	}
	return g.Gen.Preview()
}

// OnPath reports whether a tile is on the current path overlay.
func (g *Game) OnPath(x, y int) bool {
	for _, p := range g.Path {
		if p.X == x && p.Y == y {
			return true
		}
	}
	return false
}

// AddMessage appends to the message log, keeping only the most recent
// few entries.
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears the message log.
func (g *Game) ClearMessages() {
	g.Messages = g.Messages[:0]
}
