// Package ebitenview is the Ebiten-based graphical viewer: the dungeon
// is drawn as filled tiles with a path overlay, and the keyboard drives
// the same intents as the terminal renderer.
package ebitenview

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"deepdelve/pkg/engine/world"
	"deepdelve/pkg/game/state"
)

const (
	tileSize  = 12
	topMargin = 32 // status text area above the map
)

var (
	colorBackground = color.RGBA{0x10, 0x10, 0x14, 0xff}
	colorFloor      = color.RGBA{0x2e, 0x2e, 0x38, 0xff}
	colorWall       = color.RGBA{0x6b, 0x6b, 0x78, 0xff}
	colorDoor       = color.RGBA{0xc8, 0xa0, 0x32, 0xff}
	colorPath       = color.RGBA{0xc0, 0x40, 0xc0, 0xff}
	colorStart      = color.RGBA{0x40, 0xc0, 0x40, 0xff}
	colorExit       = color.RGBA{0xc0, 0x40, 0x40, 0xff}
)

// Viewer implements ebiten.Game over the shared viewer state.
type Viewer struct {
	game *state.Game
}

// Run opens the window and blocks until the user quits.
func Run(g *state.Game) error {
	v := &Viewer{game: g}
	ebiten.SetWindowSize(g.Settings.Width*tileSize, g.Settings.Height*tileSize+topMargin)
	ebiten.SetWindowTitle("Deep Delve")
	return ebiten.RunGame(v)
}

// Update handles one tick of keyboard input.
func (v *Viewer) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		if v.game.StepMode {
			v.game.Advance()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyN):
		if err := v.game.Regenerate(); err != nil {
			return err
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		v.game.RandomPath()
	case inpututil.IsKeyJustPressed(ebiten.KeyT):
		v.game.ToggleStrategy()
	}
	return nil
}

// Draw renders the current tiles, the path overlay and the status text.
func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	tiles := v.game.CurrentTiles()
	if tiles != nil {
		tiles.ForEachTile(func(x, y, code int) {
			c, ok := v.tileColor(x, y, code)
			if !ok {
				return
			}
			vector.DrawFilledRect(screen,
				float32(x*tileSize), float32(y*tileSize+topMargin),
				tileSize, tileSize, c, false)
		})
	}

	ebitenutil.DebugPrint(screen, v.statusText())
}

// Layout fixes the logical screen size to the map dimensions.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.game.Settings.Width * tileSize, v.game.Settings.Height*tileSize + topMargin
}

func (v *Viewer) tileColor(x, y, code int) (color.Color, bool) {
	d := v.game.Dungeon
	if d != nil && d.Tiles != nil {
		pos := world.Position{X: x, Y: y}
		switch pos {
		case d.StartCell:
			return colorStart, true
		case d.ExitCell:
			return colorExit, true
		}
	}
	if v.game.OnPath(x, y) {
		return colorPath, true
	}

	switch code {
	case world.TileFloor:
		return colorFloor, true
	case world.TileWall:
		return colorWall, true
	case world.TileDoorH, world.TileDoorV:
		return colorDoor, true
	default:
		return nil, false
	}
}

func (v *Viewer) statusText() string {
	status := fmt.Sprintf("seed %d  strategy %s", v.game.Settings.Seed, v.game.Strategy)
	if v.game.Dungeon != nil {
		status += fmt.Sprintf("  rooms %d  doors %d", len(v.game.Dungeon.Rooms), len(v.game.Dungeon.Doors))
	}
	if len(v.game.Path) > 0 {
		status += fmt.Sprintf("  path %d", len(v.game.Path))
	}
	if len(v.game.Messages) > 0 {
		status += "\n" + v.game.Messages[len(v.game.Messages)-1]
	}
	return status
}
