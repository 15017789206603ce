package input

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"
)

// ReadKey reads one keypress from stdin in raw mode and returns its
// code ("space", "enter", "escape", "ctrl_c", or the literal character).
// Unbound keys and escape sequences come back with an empty code.
func ReadKey() RawInput {
	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		log.Fatal("Cannot set terminal to raw mode", "error", err)
	}
	defer term.Restore(int(os.Stdin.Fd()), oldState)

	// Raw mode delivers an arrow key's whole CSI sequence in one read,
	// while a bare ESC arrives alone, so a 3-byte read tells them apart.
	buf := make([]byte, 3)
	n, err := os.Stdin.Read(buf)
	if err != nil || n == 0 {
		log.Fatal("Cannot read stdin", "error", err)
	}

	raw := RawInput{Device: DeviceTerminal, Timestamp: time.Now()}

	b := buf[0]
	switch {
	case b == 0x1b && n == 1:
		raw.Code = "escape"
	case b == 0x1b:
		// Arrow or function key sequence; nothing is bound to these.
	case b == 3:
		raw.Code = "ctrl_c"
	case b == ' ':
		raw.Code = "space"
	case b == '\n' || b == '\r':
		raw.Code = "enter"
	case b >= 32 && b < 127:
		raw.Code = string(b)
	}

	return raw
}

// GetIntent reads one keypress and runs it through the full input
// pipeline: raw event, debounce, bindings, intent.
func GetIntent() Intent {
	return MapToIntent(NewDebouncedInput(ReadKey()))
}
