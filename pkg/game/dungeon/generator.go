package dungeon

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"

	"deepdelve/pkg/engine/graph"
	"deepdelve/pkg/engine/world"
)

// Stage identifies one step of the generation pipeline. Stages run in
// declaration order; each runs to completion before the next starts.
type Stage int

// Pipeline stages.
const (
	StagePartition Stage = iota
	StageConnect
	StagePrune
	StageReconnect
	StageDoors
	StageRasterize
	StageMarkers

	stageCount
)

// String returns the stage name.
func (s Stage) String() string {
	switch s {
	case StagePartition:
		return "partition"
	case StageConnect:
		return "connect"
	case StagePrune:
		return "prune"
	case StageReconnect:
		return "reconnect"
	case StageDoors:
		return "doors"
	case StageRasterize:
		return "rasterize"
	case StageMarkers:
		return "markers"
	default:
		return "done"
	}
}

// StageHook is called after each completed stage. UIs that want to
// animate generation install one; batch callers leave it nil.
type StageHook func(stage Stage, d *Dungeon)

// Generator runs the generation pipeline for one settings value. All
// randomness comes from a single seeded source, so a given seed always
// reproduces an identical dungeon. A Generator is single-use: create a
// new one per run.
type Generator struct {
	settings GenerationSettings
	rng      *rand.Rand
	arena    *RoomArena

	// Hook, when set, is invoked at every stage boundary.
	Hook StageHook

	toSplit     []RoomID
	toDraw      []RoomID
	deleted     []RoomID
	unreachable []RoomID
	doors       []RoomID
	graph       *graph.Graph[RoomID]
	start       RoomID
	tiles       *world.TileMap
	startCell   world.Position
	exitCell    world.Position

	next Stage
}

// NewGenerator validates the settings and prepares a generation run.
func NewGenerator(settings GenerationSettings) (*Generator, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("dungeon generator: %w", err)
	}
	return &Generator{
		settings: settings,
		rng:      rand.New(rand.NewSource(settings.Seed)),
		arena:    NewRoomArena(),
		graph:    newRoomGraph(),
		start:    NoRoom,
	}, nil
}

func newRoomGraph() *graph.Graph[RoomID] {
	return graph.New[RoomID]()
}

// Done reports whether every stage has run.
func (g *Generator) Done() bool {
	return g.next >= stageCount
}

// Step runs the next pipeline stage and reports which stage ran and
// whether more remain. Calling Step on a finished generator is a no-op.
func (g *Generator) Step() (Stage, bool) {
	if g.Done() {
		return stageCount, false
	}

	stage := g.next
	switch stage {
	case StagePartition:
		g.partition()
	case StageConnect:
		g.connect()
	case StagePrune:
		g.prune()
	case StageReconnect:
		// The adjacency graph is re-derived for the surviving room set;
		// pruning mutated the old one in place.
		g.connect()
	case StageDoors:
		g.placeDoors()
	case StageRasterize:
		g.rasterize()
	case StageMarkers:
		g.placeMarkers()
	}
	g.next++

	log.Debug("generation stage complete",
		"stage", stage.String(),
		"rooms", len(g.toDraw),
		"doors", len(g.doors))

	if g.Hook != nil {
		g.Hook(stage, g.Dungeon())
	}

	return stage, !g.Done()
}

// Generate runs every remaining stage to completion and returns the
// finished dungeon.
func (g *Generator) Generate() *Dungeon {
	for !g.Done() {
		g.Step()
	}
	return g.Dungeon()
}

// Preview rasterizes the current room and door set without touching the
// pipeline, so step-mode UIs can draw intermediate results.
func (g *Generator) Preview() *world.TileMap {
	return Rasterize(g.arena, g.toDraw, g.doors, g.settings.Width, g.settings.Height)
}

// Dungeon returns a snapshot of the run's current output. After the
// final stage this is the finished dungeon; earlier it reflects however
// far the pipeline has got.
func (g *Generator) Dungeon() *Dungeon {
	return &Dungeon{
		Settings:    g.settings,
		arena:       g.arena,
		Rooms:       append([]RoomID(nil), g.toDraw...),
		Doors:       append([]RoomID(nil), g.doors...),
		Unreachable: append([]RoomID(nil), g.unreachable...),
		Graph:       g.graph,
		Start:       g.start,
		Tiles:       g.tiles,
		StartCell:   g.startCell,
		ExitCell:    g.exitCell,
	}
}

// Dungeon is the immutable output of a generation run: the surviving
// rooms, the carved doors, the spanning-tree room-door graph and the
// rasterized tile map. It must not be mutated while path searches read
// from it.
type Dungeon struct {
	Settings    GenerationSettings
	Rooms       []RoomID
	Doors       []RoomID
	Unreachable []RoomID
	Graph       *graph.Graph[RoomID]
	Start       RoomID
	Tiles       *world.TileMap
	StartCell   world.Position
	ExitCell    world.Position

	arena *RoomArena
}

// Room resolves a handle against the run's arena.
func (d *Dungeon) Room(id RoomID) *Room {
	return d.arena.Room(id)
}
