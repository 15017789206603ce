package state

import (
	"testing"

	"deepdelve/pkg/game/dungeon"
	"deepdelve/pkg/game/nav"
)

func testSettings() dungeon.GenerationSettings {
	s := dungeon.DefaultSettings()
	s.Seed = 42
	return s
}

func TestNew_ImmediateModeCompletes(t *testing.T) {
	g, err := New(testSettings(), false)
	if err != nil {
		t.Fatal(err)
	}

	if !g.Complete() {
		t.Error("game not complete after immediate-mode start")
	}
	if g.Dungeon == nil || g.Dungeon.Tiles == nil {
		t.Fatal("no finished dungeon")
	}
	if g.Nav == nil || g.Nav.NodeCount() == 0 {
		t.Error("navigation graph missing or empty")
	}
}

func TestAdvance_StepModeWalksThePipeline(t *testing.T) {
	g, err := New(testSettings(), true)
	if err != nil {
		t.Fatal(err)
	}

	if g.Complete() {
		t.Fatal("step-mode game complete before any advance")
	}

	// Seven pipeline stages plus the nav-graph build.
	for i := 0; i < 8; i++ {
		if g.Complete() {
			t.Fatalf("complete after %d advances, want 8", i)
		}
		g.Advance()
	}

	if !g.Complete() {
		t.Error("game not complete after advancing through every stage")
	}
	if g.Nav == nil {
		t.Error("navigation graph not built by the final advance")
	}
}

func TestRandomPath_ProducesOverlay(t *testing.T) {
	g, err := New(testSettings(), false)
	if err != nil {
		t.Fatal(err)
	}

	g.RandomPath()
	// Start and goal live in the same walkable component on a
	// spanning-tree dungeon, so the query must succeed.
	if len(g.Path) == 0 {
		t.Fatalf("RandomPath() produced no path from %+v to %+v", g.PathStart, g.PathGoal)
	}
	if g.Path[0] != g.PathStart || g.Path[len(g.Path)-1] != g.PathGoal {
		t.Error("stored path does not run between the stored endpoints")
	}

	waypoint := g.Path[0]
	if !g.OnPath(waypoint.X, waypoint.Y) {
		t.Error("OnPath() = false for a path waypoint")
	}
}

func TestToggleStrategy(t *testing.T) {
	g, err := New(testSettings(), false)
	if err != nil {
		t.Fatal(err)
	}

	if g.Strategy != nav.StrategyAStar {
		t.Fatalf("default strategy = %v, want A*", g.Strategy)
	}
	g.ToggleStrategy()
	if g.Strategy != nav.StrategyGreedy {
		t.Errorf("strategy after toggle = %v, want greedy", g.Strategy)
	}
	g.ToggleStrategy()
	if g.Strategy != nav.StrategyAStar {
		t.Errorf("strategy after second toggle = %v, want A*", g.Strategy)
	}
}

func TestRegenerate_AdvancesSeed(t *testing.T) {
	g, err := New(testSettings(), false)
	if err != nil {
		t.Fatal(err)
	}
	before := g.Settings.Seed
	firstDump := g.Dungeon.DumpMap()

	if err := g.Regenerate(); err != nil {
		t.Fatal(err)
	}
	if g.Settings.Seed != before+1 {
		t.Errorf("seed after regenerate = %d, want %d", g.Settings.Seed, before+1)
	}
	if g.Dungeon.DumpMap() == firstDump {
		t.Error("regenerated dungeon identical to the previous one")
	}
	if len(g.Path) != 0 {
		t.Error("stale path overlay survived regeneration")
	}
}

func TestAddMessage_KeepsOnlyRecent(t *testing.T) {
	g, err := New(testSettings(), false)
	if err != nil {
		t.Fatal(err)
	}
	g.ClearMessages()

	for i := 0; i < 10; i++ {
		g.AddMessage("msg")
	}
	if len(g.Messages) != 5 {
		t.Errorf("message log holds %d entries, want 5", len(g.Messages))
	}
}
