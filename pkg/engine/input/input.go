// Package input turns raw device codes from the terminal or a window into preview actions.
package input

import (
	"os"

	"golang.org/x/term"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
)

// Action represents a high-level intent in the level preview.
type Action int

const (
	ActionNone Action = iota
	ActionRegenerate
	ActionScrollLeft
	ActionScrollRight
	ActionDump
	ActionQuit
)

// String returns the string representation of an action
func (a Action) String() string {
	switch a {
	case ActionRegenerate:
		return "Regenerate"
	case ActionScrollLeft:
		return "ScrollLeft"
	case ActionScrollRight:
		return "ScrollRight"
	case ActionDump:
		return "Dump"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// RawInput is an event emitted directly from an input device.
// Code is a device-specific identifier (e.g. "KeyR", "arrow_left", "q").
type RawInput struct {
	Device Device
	Code   string
}

// bindings maps raw codes to actions. Multiple codes may point to the same Action.
var bindings = map[string]Action{
	"r":           ActionRegenerate,
	"KeyR":        ActionRegenerate,
	"arrow_left":  ActionScrollLeft,
	"h":           ActionScrollLeft,
	"KeyLeft":     ActionScrollLeft,
	"arrow_right": ActionScrollRight,
	"l":           ActionScrollRight,
	"KeyRight":    ActionScrollRight,
	"d":           ActionDump,
	"KeyD":        ActionDump,
	"q":           ActionQuit,
	"ctrl_c":      ActionQuit,
	"escape":      ActionQuit,
	"KeyEscape":   ActionQuit,
}

// MapToAction resolves a raw input to an action. Unknown codes map to ActionNone.
func MapToAction(raw RawInput) Action {
	if a, ok := bindings[raw.Code]; ok {
		return a
	}
	return ActionNone
}

// readByte reads a single byte from stdin in raw mode
func readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := os.Stdin.Read(buf)
	return buf[0], err
}

// decodeKey converts the bytes of a single key press into a code.
// next is called to fetch the rest of an escape sequence.
func decodeKey(first byte, next func() (byte, error)) string {
	switch first {
	case 3:
		return "ctrl_c"
	case '\r', '\n':
		return "enter"
	}
	if first != 0x1b {
		return string([]byte{first})
	}

	b2, err := next()
	if err != nil {
		return "escape"
	}
	// CSI (ESC [) and SS3 (ESC O) sequences carry the arrow code in the third byte
	if b2 != '[' && b2 != 'O' {
		return "escape"
	}
	b3, err := next()
	if err != nil {
		return "escape"
	}
	switch b3 {
	case 'A':
		return "arrow_up"
	case 'B':
		return "arrow_down"
	case 'C':
		return "arrow_right"
	case 'D':
		return "arrow_left"
	}
	return ""
}

// ReadKey reads a single key press from the terminal in raw mode.
func ReadKey() (RawInput, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return RawInput{}, err
	}
	defer term.Restore(fd, oldState)

	b, err := readByte()
	if err != nil {
		return RawInput{}, err
	}
	return RawInput{Device: DeviceTerminal, Code: decodeKey(b, readByte)}, nil
}
