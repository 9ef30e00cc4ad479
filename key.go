package pronto

import "strconv"

// Key identifies a keyboard key. The key space is finite; backends map
// anything they cannot identify to KeyUnknown.
type Key int

// Keyboard keys.
const (
	KeyUnknown Key = iota
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyEscape
	KeySpace
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyShift
	KeyControl
	KeyAlt
	KeyComma
	KeyPeriod
	KeySlash
	KeyBackslash
	KeySemicolon
	KeyQuote
	KeyMinus
	KeyEqual
	KeyLeftBracket
	KeyRightBracket
	KeyGrave
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	keyCount
)

var keyNames = [...]string{
	KeyUnknown:      "Unknown",
	KeyEscape:       "Escape",
	KeySpace:        "Space",
	KeyEnter:        "Enter",
	KeyTab:          "Tab",
	KeyBackspace:    "Backspace",
	KeyDelete:       "Delete",
	KeyInsert:       "Insert",
	KeyHome:         "Home",
	KeyEnd:          "End",
	KeyPageUp:       "PageUp",
	KeyPageDown:     "PageDown",
	KeyLeft:         "Left",
	KeyRight:        "Right",
	KeyUp:           "Up",
	KeyDown:         "Down",
	KeyShift:        "Shift",
	KeyControl:      "Control",
	KeyAlt:          "Alt",
	KeyComma:        "Comma",
	KeyPeriod:       "Period",
	KeySlash:        "Slash",
	KeyBackslash:    "Backslash",
	KeySemicolon:    "Semicolon",
	KeyQuote:        "Quote",
	KeyMinus:        "Minus",
	KeyEqual:        "Equal",
	KeyLeftBracket:  "LeftBracket",
	KeyRightBracket: "RightBracket",
	KeyGrave:        "Grave",
}

// String returns the key name, e.g. "A", "7", "Escape" or "F5".
func (k Key) String() string {
	switch {
	case k >= KeyA && k <= KeyZ:
		return string(rune('A' + int(k-KeyA)))
	case k >= Key0 && k <= Key9:
		return string(rune('0' + int(k-Key0)))
	case k >= KeyF1 && k <= KeyF12:
		return "F" + strconv.Itoa(int(k-KeyF1)+1)
	case k >= 0 && int(k) < len(keyNames) && keyNames[k] != "":
		return keyNames[k]
	}
	return "Unknown"
}

// Valid reports whether k is a known key other than KeyUnknown.
func (k Key) Valid() bool {
	return k > KeyUnknown && k < keyCount
}

// KeyForRune maps a printable character to its key, ignoring case.
// Characters without a dedicated key map to KeyUnknown.
func KeyForRune(r rune) Key {
	switch {
	case r >= 'a' && r <= 'z':
		return KeyA + Key(r-'a')
	case r >= 'A' && r <= 'Z':
		return KeyA + Key(r-'A')
	case r >= '0' && r <= '9':
		return Key0 + Key(r-'0')
	}
	switch r {
	case ' ':
		return KeySpace
	case '\n', '\r':
		return KeyEnter
	case '\t':
		return KeyTab
	case '\b':
		return KeyBackspace
	case 0x1b:
		return KeyEscape
	case 0x7f:
		return KeyDelete
	case ',', '<':
		return KeyComma
	case '.', '>':
		return KeyPeriod
	case '/', '?':
		return KeySlash
	case '\\', '|':
		return KeyBackslash
	case ';', ':':
		return KeySemicolon
	case '\'', '"':
		return KeyQuote
	case '-', '_':
		return KeyMinus
	case '=', '+':
		return KeyEqual
	case '[', '{':
		return KeyLeftBracket
	case ']', '}':
		return KeyRightBracket
	case '`', '~':
		return KeyGrave
	}
	return KeyUnknown
}

// Button identifies a mouse button. Buttons a backend cannot identify are
// reported as ButtonUnknown rather than folded into another button.
type Button int

// Mouse buttons.
const (
	ButtonUnknown Button = iota
	ButtonLeft
	ButtonRight
	ButtonMiddle
	ButtonX1
	ButtonX2
)

var buttonNames = [...]string{
	ButtonUnknown: "Unknown",
	ButtonLeft:    "Left",
	ButtonRight:   "Right",
	ButtonMiddle:  "Middle",
	ButtonX1:      "X1",
	ButtonX2:      "X2",
}

// String returns the button name.
func (b Button) String() string {
	if b >= 0 && int(b) < len(buttonNames) {
		return buttonNames[b]
	}
	return "Unknown"
}
