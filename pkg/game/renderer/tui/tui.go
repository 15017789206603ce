package tui

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"deepdelve/pkg/engine/input"
	"deepdelve/pkg/engine/terminal"
	"deepdelve/pkg/engine/world"
	"deepdelve/pkg/game/state"
)

// Icon constants for the map view
const (
	IconWall  = "▒"
	IconFloor = "·"
	IconDoor  = "□"
	IconVoid  = " "
	IconPath  = "*"
	IconStart = "@"
	IconExit  = ">"
)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	colorWall   color.Style
	colorFloor  color.Style
	colorDoor   color.Style
	colorPath   color.Style
	colorStart  color.Style
	colorExit   color.Style
	colorAction color.Style
	colorKey    color.Style
	colorSubtle color.Style
}

// New creates a new TUI renderer
func New() *TUIRenderer {
	return &TUIRenderer{}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.colorWall = color.Style{color.FgGray}
	t.colorFloor = color.Style{color.FgGray, color.OpBold}
	t.colorDoor = color.Style{color.FgYellow, color.OpBold}
	t.colorPath = color.Style{color.FgMagenta, color.OpBold}
	t.colorStart = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	t.colorExit = color.Style{color.FgRed, color.OpBold}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorKey = color.Style{color.FgMagenta, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	c := exec.Command("clear")
	c.Stdout = os.Stdout
	c.Run()
}

// GetInput gets user input from the terminal and returns a high-level Intent.
func (t *TUIRenderer) GetInput() input.Intent {
	return input.GetIntent()
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Println(msg)
}

// RenderFrame renders a complete frame
func (t *TUIRenderer) RenderFrame(g *state.Game) {
	t.colorAction.Printf("%s\n\n", gotext.Get("Deep Delve"))

	t.printMap(g)
	t.printStatusBar(g)
	t.printActions()
	t.printMessagesPane(g)

	fmt.Printf("\n> ")
}

// renderTile returns the string representation of one tile
func (t *TUIRenderer) renderTile(g *state.Game, x, y, code int) string {
	d := g.Dungeon
	if d != nil && d.Tiles != nil {
		pos := world.Position{X: x, Y: y}
		switch pos {
		case d.StartCell:
			return t.colorStart.Sprint(IconStart)
		case d.ExitCell:
			return t.colorExit.Sprint(IconExit)
		}
	}
	if g.OnPath(x, y) {
		return t.colorPath.Sprint(IconPath)
	}

	switch code {
	case world.TileFloor:
		return t.colorFloor.Sprint(IconFloor)
	case world.TileWall:
		return t.colorWall.Sprint(IconWall)
	case world.TileDoorH, world.TileDoorV:
		return t.colorDoor.Sprint(IconDoor)
	default:
		return IconVoid
	}
}

// printMap renders the whole tile map, centered horizontally
func (t *TUIRenderer) printMap(g *state.Game) {
	tiles := g.CurrentTiles()
	if tiles == nil {
		return
	}

	termWidth := terminal.GetWidth()
	centerIndent := (termWidth - tiles.Width()) / 2
	if centerIndent < 0 {
		centerIndent = 0
	}
	indent := strings.Repeat(" ", centerIndent)

	for y := 0; y < tiles.Height(); y++ {
		fmt.Print(indent)
		for x := 0; x < tiles.Width(); x++ {
			fmt.Print(t.renderTile(g, x, y, tiles.At(x, y)))
		}
		fmt.Print("\n")
	}
	fmt.Println("")
}

// printStatusBar renders the generation and pathfinding status line
func (t *TUIRenderer) printStatusBar(g *state.Game) {
	parts := []string{
		fmt.Sprintf("%s %d", gotext.Get("Seed"), g.Settings.Seed),
	}

	if g.Dungeon != nil {
		parts = append(parts,
			fmt.Sprintf("%s %d", gotext.Get("Rooms"), len(g.Dungeon.Rooms)),
			fmt.Sprintf("%s %d", gotext.Get("Doors"), len(g.Dungeon.Doors)))
	}

	parts = append(parts, fmt.Sprintf("%s %s", gotext.Get("Strategy"), g.Strategy))

	if len(g.Path) > 0 {
		parts = append(parts, fmt.Sprintf("%s %d", gotext.Get("Path"), len(g.Path)))
	}

	fmt.Println(t.colorSubtle.Sprint(strings.Join(parts, " | ")))
}

// printActions prints the key help line
func (t *TUIRenderer) printActions() {
	help := []string{}
	for _, binding := range []struct {
		key   string
		label string
	}{
		{"space", gotext.Get("advance")},
		{"r", gotext.Get("regenerate")},
		{"p", gotext.Get("new path")},
		{"t", gotext.Get("strategy")},
		{"q", gotext.Get("quit")},
	} {
		help = append(help, t.colorKey.Sprint(binding.key)+" "+t.colorAction.Sprint(binding.label))
	}
	fmt.Println(strings.Join(help, t.colorSubtle.Sprint("  ")))
}

// printMessagesPane renders the messages log pane
func (t *TUIRenderer) printMessagesPane(g *state.Game) {
	width := terminal.GetWidth()

	label := " " + gotext.Get("Messages") + " "
	labelLen := len([]rune(label))
	sideLen := (width - labelLen) / 2
	if sideLen < 1 {
		sideLen = 1
	}

	leftDashes := strings.Repeat("─", sideLen)
	rightDashes := strings.Repeat("─", width-sideLen-labelLen)

	fmt.Println()
	fmt.Println(t.colorSubtle.Sprint(leftDashes + label + rightDashes))

	if len(g.Messages) == 0 {
		fmt.Println(t.colorSubtle.Sprint("  (no messages)"))
	} else {
		for _, msg := range g.Messages {
			fmt.Printf("  %s\n", msg)
		}
	}

	fmt.Println(t.colorSubtle.Sprint(strings.Repeat("─", width)))
}
