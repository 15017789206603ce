package dungeon

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Door clearance bounds: a door needs DoorSize tiles plus one tile of
// margin on each side of the shared wall segment it sits in.
const (
	MinDoorSize = 2
	MaxDoorSize = 5
)

// GenerationSettings is the immutable configuration of one generation
// run. A given settings value always reproduces the same dungeon.
type GenerationSettings struct {
	Seed          int64   `toml:"seed"`
	Width         int     `toml:"width"`
	Height        int     `toml:"height"`
	MinRoomSize   int     `toml:"min_room_size"`
	MaxRoomSize   int     `toml:"max_room_size"`
	DoorSize      int     `toml:"door_size"`
	PruneFraction float64 `toml:"prune_fraction"`
}

// DefaultSettings returns a playable mid-size configuration.
func DefaultSettings() GenerationSettings {
	return GenerationSettings{
		Seed:          42,
		Width:         60,
		Height:        40,
		MinRoomSize:   8,
		MaxRoomSize:   12,
		DoorSize:      3,
		PruneFraction: 0.1,
	}
}

// Validate checks the settings for values the pipeline cannot work with.
func (s GenerationSettings) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("dungeon size must be positive, got %dx%d", s.Width, s.Height)
	}
	if s.MinRoomSize < 3 {
		return fmt.Errorf("min room size must be at least 3, got %d", s.MinRoomSize)
	}
	if s.MaxRoomSize <= s.MinRoomSize {
		return fmt.Errorf("max room size %d must exceed min room size %d", s.MaxRoomSize, s.MinRoomSize)
	}
	if s.Width < s.MinRoomSize || s.Height < s.MinRoomSize {
		return fmt.Errorf("dungeon %dx%d is smaller than min room size %d", s.Width, s.Height, s.MinRoomSize)
	}
	if s.DoorSize < MinDoorSize || s.DoorSize > MaxDoorSize {
		return fmt.Errorf("door size must be in [%d,%d], got %d", MinDoorSize, MaxDoorSize, s.DoorSize)
	}
	if s.PruneFraction < 0 || s.PruneFraction >= 1 {
		return fmt.Errorf("prune fraction must be in [0,1), got %v", s.PruneFraction)
	}
	return nil
}

// clearance is the minimum overlap length two rooms need for a door to
// legally fit between them.
func (s GenerationSettings) clearance() int {
	return s.DoorSize + 2
}

// LoadSettings reads a TOML settings file over the defaults, so a file
// only needs to name the values it changes.
func LoadSettings(path string) (GenerationSettings, error) {
	settings := DefaultSettings()
	if _, err := toml.DecodeFile(path, &settings); err != nil {
		return GenerationSettings{}, fmt.Errorf("load settings %s: %w", path, err)
	}
	if err := settings.Validate(); err != nil {
		return GenerationSettings{}, fmt.Errorf("settings %s: %w", path, err)
	}
	return settings, nil
}
