package input

import (
	"sort"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
)

// Action represents a high-level intent in the viewer.
type Action int

const (
	ActionNone Action = iota

	ActionAdvance        // Run the next generation stage (step mode)
	ActionRegenerate     // Regenerate with a fresh seed
	ActionNewPath        // Query a new random path
	ActionToggleStrategy // Switch between search strategies
	ActionQuit
)

// Intent is the 4th-layer, high-level description of what the user wants
// to do.
type Intent struct {
	Action Action
}

// RawInput is the 1st-layer event emitted directly from an input device.
// Code is a device-specific identifier (e.g. "space", "r", "escape").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd-layer representation after deduplication.
// Terminal raw mode and Ebiten's just-pressed queries already debounce
// for us, but the distinct type keeps the layering explicit.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	"space": ActionAdvance,
	"enter": ActionAdvance,

	"r": ActionRegenerate,
	"n": ActionRegenerate,

	"p": ActionNewPath,

	"t": ActionToggleStrategy,

	"q":      ActionQuit,
	"escape": ActionQuit,
	"ctrl_c": ActionQuit,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high-level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionAdvance:
		return "Advance"
	case ActionRegenerate:
		return "Regenerate"
	case ActionNewPath:
		return "New Path"
	case ActionToggleStrategy:
		return "Toggle Strategy"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action,
// with the codes sorted so help text renders stably.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
