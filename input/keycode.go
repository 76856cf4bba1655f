// Package input implements the terminal input decoder and an
// asynchronous reader that feeds decoded keys down a channel, so the
// finder (§4.7) can poll for a pending keystroke without blocking the
// main dispatch loop.
//
// Grounded on original_source/editor.c's get_input/input_is_pending and
// on the teacher's garaekz-tfx/runfx/keyreader.go goroutine-plus-channel
// shape for turning a blocking read into something pollable.
package input

// KeyCode is the editor's logical key set, drawn 1:1 from
// original_source/editor.c's KeyCode enum (spec.md §6).
type KeyCode int

const (
	KeyNone KeyCode = iota
	KeyUnknown

	KeyTab        KeyCode = 9
	KeyEnter      KeyCode = 10
	KeyEscape     KeyCode = 27
	KeyDelete     KeyCode = 127
	KeyCtrlDelete KeyCode = 8

	KeyCtrlC KeyCode = 3
	KeyCtrlG KeyCode = 7
	KeyCtrlN KeyCode = 14
	KeyCtrlQ KeyCode = 17
	KeyCtrlS KeyCode = 19
	KeyCtrlX KeyCode = 24
	KeyCtrlV KeyCode = 22
	KeyCtrlR KeyCode = 18
	KeyCtrlD KeyCode = 4
	KeyCtrlB KeyCode = 2
	KeyCtrlO KeyCode = 15
	KeyCtrlE KeyCode = 5
	KeyCtrlU KeyCode = 21
	KeyCtrlF KeyCode = 6

	KeyPrintableStart KeyCode = 32
	KeyPrintableEnd   KeyCode = 126
)

// The virtual keys produced by recognized CSI sequences start numbering
// past the ASCII range, matching the enum's KeyCodeAsciiEnd + 1 offset.
const (
	KeyUp KeyCode = iota + 256
	KeyDown
	KeyLeft
	KeyRight
	KeyEnd
	KeyHome

	KeyShiftUp
	KeyShiftDown
	KeyShiftLeft
	KeyShiftRight
	KeyShiftEnd
	KeyShiftHome

	KeyCtrlUp
	KeyCtrlDown
	KeyCtrlLeft
	KeyCtrlRight
)

// User-facing keybindings, named by the action they trigger rather than
// the raw code, per original_source/editor.c's UserKey* aliases.
const (
	UserKeyFocusNext     = KeyShiftRight
	UserKeyFocusPrevious = KeyShiftLeft
	UserKeyPageUp        = KeyShiftUp
	UserKeyPageDown      = KeyShiftDown
	UserKeyExit          = KeyCtrlQ
	UserKeyOpen          = KeyCtrlG
	UserKeyNew           = KeyCtrlN
	UserKeySave          = KeyCtrlS
	UserKeyCommand       = KeyCtrlR
	UserKeyMark          = KeyCtrlB
	UserKeyCopy          = KeyCtrlC
	UserKeyPaste         = KeyCtrlV
	UserKeyCut           = KeyCtrlX
)

// IsPrintable reports whether k is a single printable ASCII byte that
// should be inserted into a buffer verbatim.
func (k KeyCode) IsPrintable() bool {
	return k >= KeyPrintableStart && k <= KeyPrintableEnd
}

// Byte returns k as a raw byte for printable keys.
func (k KeyCode) Byte() byte { return byte(k) }

// MinibarMode identifies which prompt a pane's minibar is running.
type MinibarMode int

const (
	MinibarModeOpen MinibarMode = iota
	MinibarModeNew
	MinibarModeCommand
	MinibarModeFind
)

// Prompt returns the minibar's display prefix for m.
func (m MinibarMode) Prompt() string {
	switch m {
	case MinibarModeOpen:
		return "open: "
	case MinibarModeNew:
		return "new: "
	case MinibarModeCommand:
		return "command: "
	case MinibarModeFind:
		return "find: "
	default:
		return ""
	}
}
