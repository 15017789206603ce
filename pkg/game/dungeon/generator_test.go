// Package dungeon tests the generation pipeline: partitioning bounds,
// adjacency, pruning, spanning-tree door placement, rasterization and
// seed determinism.
package dungeon

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"deepdelve/pkg/engine/geometry"
	"deepdelve/pkg/engine/graph"
	"deepdelve/pkg/engine/world"
)

func testSettings(seed int64) GenerationSettings {
	s := DefaultSettings()
	s.Seed = seed
	return s
}

// countReachable returns the number of nodes reachable from start.
func countReachable(g *graph.Graph[RoomID], start RoomID) int {
	visited := map[RoomID]bool{start: true}
	queue := []RoomID{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		neighbours, ok := g.Neighbours(current)
		if !ok {
			continue
		}
		for _, n := range neighbours {
			if !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}
	return len(visited)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*GenerationSettings)
		wantOK bool
	}{
		{"defaults", func(s *GenerationSettings) {}, true},
		{"zero width", func(s *GenerationSettings) { s.Width = 0 }, false},
		{"min room too small", func(s *GenerationSettings) { s.MinRoomSize = 2 }, false},
		{"max not above min", func(s *GenerationSettings) { s.MaxRoomSize = s.MinRoomSize }, false},
		{"door too big", func(s *GenerationSettings) { s.DoorSize = MaxDoorSize + 1 }, false},
		{"door too small", func(s *GenerationSettings) { s.DoorSize = MinDoorSize - 1 }, false},
		{"prune fraction one", func(s *GenerationSettings) { s.PruneFraction = 1.0 }, false},
		{"prune fraction zero", func(s *GenerationSettings) { s.PruneFraction = 0 }, true},
	}

	for _, c := range cases {
		s := DefaultSettings()
		c.mutate(&s)
		err := s.Validate()
		if (err == nil) != c.wantOK {
			t.Errorf("%s: Validate() error = %v, want ok=%v", c.name, err, c.wantOK)
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	genA, err := NewGenerator(testSettings(42))
	if err != nil {
		t.Fatal(err)
	}
	genB, _ := NewGenerator(testSettings(42))

	a := genA.Generate()
	b := genB.Generate()

	if a.DumpMap() != b.DumpMap() {
		t.Error("same seed produced different maps")
	}
	if len(a.Rooms) != len(b.Rooms) || len(a.Doors) != len(b.Doors) {
		t.Errorf("same seed produced different room/door counts: %d/%d vs %d/%d",
			len(a.Rooms), len(a.Doors), len(b.Rooms), len(b.Doors))
	}

	genC, _ := NewGenerator(testSettings(43))
	if c := genC.Generate(); c.DumpMap() == a.DumpMap() {
		t.Error("different seeds produced identical maps")
	}
}

func TestGenerate_RoomsWithinBoundsAndMinSize(t *testing.T) {
	gen, err := NewGenerator(testSettings(7))
	if err != nil {
		t.Fatal(err)
	}
	d := gen.Generate()

	if len(d.Rooms) == 0 {
		t.Fatal("no rooms generated")
	}

	for _, id := range d.Rooms {
		dim := d.Room(id).Dimensions
		if dim.XMin() < 0 || dim.YMin() < 0 ||
			dim.XMax() > d.Settings.Width || dim.YMax() > d.Settings.Height {
			t.Errorf("room %d dimensions %+v escape the %dx%d map",
				id, dim, d.Settings.Width, d.Settings.Height)
		}
		if dim.Width < d.Settings.MinRoomSize || dim.Height < d.Settings.MinRoomSize {
			t.Errorf("room %d is %dx%d, below min room size %d",
				id, dim.Width, dim.Height, d.Settings.MinRoomSize)
		}
	}
}

func TestPartition_RoomsTileTheWholeMap(t *testing.T) {
	gen, err := NewGenerator(testSettings(42))
	if err != nil {
		t.Fatal(err)
	}
	gen.Step() // partition only

	// Split halves overlap on their shared boundary, so before pruning
	// every tile of the map belongs to at least one room.
	for x := 0; x < gen.settings.Width; x++ {
		for y := 0; y < gen.settings.Height; y++ {
			covered := false
			for _, id := range gen.toDraw {
				if gen.arena.Room(id).Dimensions.Contains(x, y) {
					covered = true
					break
				}
			}
			if !covered {
				t.Fatalf("tile (%d,%d) not covered by any room after partitioning", x, y)
			}
		}
	}
}

func TestGenerate_RoomDoorGraphIsSpanningTree(t *testing.T) {
	gen, err := NewGenerator(testSettings(42))
	if err != nil {
		t.Fatal(err)
	}
	d := gen.Generate()

	nodes := d.Graph.NodeCount()
	edges := d.Graph.EdgeCount()
	wantNodes := len(d.Rooms) + len(d.Doors)

	if nodes != wantNodes {
		t.Errorf("graph has %d nodes, want %d (rooms+doors)", nodes, wantNodes)
	}
	if edges != nodes-1 {
		t.Errorf("graph has %d edges for %d nodes, want %d for a tree", edges, nodes, nodes-1)
	}
	if got := countReachable(d.Graph, d.Start); got != nodes {
		t.Errorf("only %d of %d graph nodes reachable from the start room", got, nodes)
	}
}

func TestGenerate_ExactlyOneDoorPerDiscoveredRoom(t *testing.T) {
	gen, err := NewGenerator(testSettings(42))
	if err != nil {
		t.Fatal(err)
	}
	d := gen.Generate()

	// A spanning tree over rooms places one door per room except the start.
	if len(d.Doors) != len(d.Rooms)-1 {
		t.Errorf("%d doors for %d rooms, want rooms-1", len(d.Doors), len(d.Rooms))
	}
	for _, id := range d.Doors {
		if !d.Room(id).Door {
			t.Errorf("door handle %d does not resolve to a door room", id)
		}
	}
}

func TestGenerate_StartingRoomMarked(t *testing.T) {
	gen, err := NewGenerator(testSettings(42))
	if err != nil {
		t.Fatal(err)
	}
	d := gen.Generate()

	if d.Start == NoRoom {
		t.Fatal("no starting room selected")
	}
	if !d.Room(d.Start).StartingRoom {
		t.Error("starting room handle not flagged StartingRoom")
	}

	marked := 0
	for _, id := range d.Rooms {
		if d.Room(id).StartingRoom {
			marked++
		}
	}
	if marked != 1 {
		t.Errorf("%d rooms flagged StartingRoom, want exactly 1", marked)
	}
}

func TestGenerate_UnreachableRoomsAreDropped(t *testing.T) {
	gen, err := NewGenerator(testSettings(42))
	if err != nil {
		t.Fatal(err)
	}
	d := gen.Generate()

	drawn := map[RoomID]bool{}
	for _, id := range d.Rooms {
		drawn[id] = true
	}
	for _, id := range d.Unreachable {
		if drawn[id] {
			t.Errorf("room %d is both drawn and unreachable", id)
		}
	}
}

func TestPrune_StopsAtFirstRefusedRoom(t *testing.T) {
	settings := testSettings(1)
	settings.PruneFraction = 0.75 // limit of 3 on four rooms

	gen, err := NewGenerator(settings)
	if err != nil {
		t.Fatal(err)
	}

	// Hand-built layout, smallest area first: a removable leaf, a cut
	// vertex, a shielded leaf and the anchor.
	leaf := gen.arena.NewRoom(geometry.NewRect(0, 0, 3, 3))
	cutVertex := gen.arena.NewRoom(geometry.NewRect(0, 0, 4, 4))
	shielded := gen.arena.NewRoom(geometry.NewRect(0, 0, 5, 5))
	anchor := gen.arena.NewRoom(geometry.NewRect(0, 0, 10, 10))

	gen.toDraw = []RoomID{leaf, cutVertex, shielded, anchor}
	for _, id := range gen.toDraw {
		gen.graph.AddNode(id)
	}
	gen.graph.AddEdge(leaf, anchor)
	gen.graph.AddEdge(shielded, cutVertex)
	gen.graph.AddEdge(cutVertex, anchor)

	gen.prune()

	if gen.graph.Has(leaf) {
		t.Error("removable leaf survived pruning")
	}
	if !gen.graph.Has(cutVertex) {
		t.Error("cut vertex was pruned; removal would disconnect the graph")
	}
	// The refused cut vertex ends the pass: later candidates stay even
	// when they would be safe to remove.
	if !gen.graph.Has(shielded) {
		t.Error("candidate behind the refused room was pruned")
	}

	nodes := gen.graph.NodeCount()
	if got := countReachable(gen.graph, anchor); got != nodes {
		t.Errorf("adjacency graph disconnected after pruning: %d of %d reachable", got, nodes)
	}
}

func TestRasterize_DoorsPunctureWalls(t *testing.T) {
	gen, err := NewGenerator(testSettings(42))
	if err != nil {
		t.Fatal(err)
	}
	d := gen.Generate()

	for _, id := range d.Doors {
		dim := d.Room(id).Dimensions
		for x := dim.XMin(); x < dim.XMax(); x++ {
			for y := dim.YMin(); y < dim.YMax(); y++ {
				if code := d.Tiles.At(x, y); code != world.TileDoorH && code != world.TileDoorV {
					t.Fatalf("door %d tile (%d,%d) = %d, want a door code", id, x, y, code)
				}
			}
		}
	}
}

func TestGenerate_MarkersAreWalkableAndDistinct(t *testing.T) {
	gen, err := NewGenerator(testSettings(42))
	if err != nil {
		t.Fatal(err)
	}
	d := gen.Generate()

	if !d.Tiles.Walkable(d.StartCell.X, d.StartCell.Y) {
		t.Errorf("start cell %+v is not walkable", d.StartCell)
	}
	if !d.Tiles.Walkable(d.ExitCell.X, d.ExitCell.Y) {
		t.Errorf("exit cell %+v is not walkable", d.ExitCell)
	}
	if d.StartCell == d.ExitCell {
		t.Error("start and exit cells coincide")
	}
}

func TestStep_ReportsStagesInOrder(t *testing.T) {
	gen, err := NewGenerator(testSettings(1))
	if err != nil {
		t.Fatal(err)
	}

	want := []Stage{StagePartition, StageConnect, StagePrune, StageReconnect, StageDoors, StageRasterize, StageMarkers}
	for i, wantStage := range want {
		stage, more := gen.Step()
		if stage != wantStage {
			t.Fatalf("step %d ran %v, want %v", i, stage, wantStage)
		}
		if more != (i < len(want)-1) {
			t.Errorf("step %d more = %v", i, more)
		}
	}
	if !gen.Done() {
		t.Error("generator not done after all stages")
	}
}

func TestGenerate_StageHookSeesEveryStage(t *testing.T) {
	gen, err := NewGenerator(testSettings(1))
	if err != nil {
		t.Fatal(err)
	}

	var seen []Stage
	gen.Hook = func(stage Stage, d *Dungeon) {
		seen = append(seen, stage)
		if d == nil {
			t.Error("hook received nil dungeon")
		}
	}
	gen.Generate()

	if len(seen) != int(stageCount) {
		t.Errorf("hook fired %d times, want %d", len(seen), stageCount)
	}
}

func TestDumpMap_ContainsMarkers(t *testing.T) {
	gen, err := NewGenerator(testSettings(42))
	if err != nil {
		t.Fatal(err)
	}
	d := gen.Generate()

	dump := d.DumpMap()
	if !strings.Contains(dump, "@") {
		t.Error("map dump missing start marker '@'")
	}
	if !strings.Contains(dump, ">") {
		t.Error("map dump missing exit marker '>'")
	}
	if lines := strings.Count(dump, "\n"); lines != d.Settings.Height {
		t.Errorf("map dump has %d lines, want %d", lines, d.Settings.Height)
	}
}

func TestToDOT_ListsRoomsAndEdges(t *testing.T) {
	gen, err := NewGenerator(testSettings(42))
	if err != nil {
		t.Fatal(err)
	}
	d := gen.Generate()

	dot := d.ToDOT()
	if !strings.HasPrefix(dot, "graph dungeon {") {
		t.Error("DOT output missing graph header")
	}
	if !strings.Contains(dot, "palegreen") {
		t.Error("DOT output missing the highlighted start room")
	}
	if strings.Count(dot, " -- ") != d.Graph.EdgeCount() {
		t.Errorf("DOT output has %d edges, want %d", strings.Count(dot, " -- "), d.Graph.EdgeCount())
	}
}

func TestLoadSettings_PartialFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	content := "seed = 99\nwidth = 80\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	settings, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings() error: %v", err)
	}
	if settings.Seed != 99 || settings.Width != 80 {
		t.Errorf("overrides not applied: %+v", settings)
	}
	if settings.Height != DefaultSettings().Height {
		t.Errorf("unset field lost its default: height = %d", settings.Height)
	}
}

func TestLoadSettings_RejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	if err := os.WriteFile(path, []byte("door_size = 99\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSettings(path); err == nil {
		t.Error("LoadSettings() accepted an out-of-range door size")
	}
}
