// Package input defines strut's canonical input model and the pure
// translation rules hosts use to produce it: pointer buttons,
// modifier flags, key-as-text filtering, and logical-pointer touch
// tracking. Nothing in this package talks to a platform; pkg/platform
// feeds it from real events.
package input

import "strings"

// PointerButton identifies a pointer (mouse) button.
type PointerButton int

const (
	// ButtonPrimary is the left mouse button, or a touch contact.
	ButtonPrimary PointerButton = iota
	// ButtonSecondary is the right mouse button.
	ButtonSecondary
	// ButtonMiddle is the wheel button.
	ButtonMiddle
	// ButtonExtra1 is the first extra button (often "back").
	ButtonExtra1
	// ButtonExtra2 is the second extra button (often "forward").
	ButtonExtra2
)

// ButtonFromHost maps a host button index (0 = left, 1 = middle,
// 2 = right, 3/4 = extras) to a PointerButton. Unknown indices are
// rejected.
func ButtonFromHost(index int) (PointerButton, bool) {
	switch index {
	case 0:
		return ButtonPrimary, true
	case 1:
		return ButtonMiddle, true
	case 2:
		return ButtonSecondary, true
	case 3:
		return ButtonExtra1, true
	case 4:
		return ButtonExtra2, true
	default:
		return 0, false
	}
}

// Modifiers holds the state of the keyboard modifier keys for an
// event. The same structure is used for mouse, wheel, and keyboard
// events.
type Modifiers struct {
	Alt   bool
	Ctrl  bool
	Shift bool
	// Meta is the platform key: Cmd on macOS, Win on Windows.
	Meta bool
}

// Command reports the derived "command" flag: Ctrl on most platforms,
// Cmd on macOS. Without knowing the platform, ctrl-or-meta is the
// conventional approximation.
func (m Modifiers) Command() bool {
	return m.Ctrl || m.Meta
}

// controlKeys are key names that never produce text input.
var controlKeys = map[string]struct{}{
	"Alt":         {},
	"ArrowDown":   {},
	"ArrowLeft":   {},
	"ArrowRight":  {},
	"ArrowUp":     {},
	"Backspace":   {},
	"CapsLock":    {},
	"ContextMenu": {},
	"Control":     {},
	"Delete":      {},
	"End":         {},
	"Enter":       {},
	"Esc":         {},
	"Escape":      {},
	"GroupNext":   {},
	"Help":        {},
	"Home":        {},
	"Insert":      {},
	"Meta":        {},
	"NumLock":     {},
	"PageDown":    {},
	"PageUp":      {},
	"Pause":       {},
	"ScrollLock":  {},
	"Shift":       {},
	"Tab":         {},
}

// TextFromKey reports the text a key press should input, if any.
// Hosts deliver keys as names ("X", "ArrowLeft", "F5"), so it is up
// to us to decide whether a name is real text or a control key.
func TextFromKey(key string) (string, bool) {
	if isFunctionKey(key) {
		return "", false
	}
	if _, ok := controlKeys[key]; ok {
		return "", false
	}
	return key, true
}

func isFunctionKey(key string) bool {
	return strings.HasPrefix(key, "F") && len(key) > 1
}
