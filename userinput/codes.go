// This file is part of Minuet.
//
// Minuet is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Minuet is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Minuet.  If not, see <https://www.gnu.org/licenses/>.

package userinput

import "fmt"

// Code identifies a key or a button. Keyboard codes are USB HID usage IDs.
// Button codes are small integers and only have meaning in the pointer
// device class.
type Code int

// List of keyboard codes. Only keys that the program refers to by name are
// listed. Other keys are still buffered and reconciled.
const (
	KeyA Code = 4
	KeyB Code = 5
	KeyC Code = 6
	KeyD Code = 7
	KeyE Code = 8
	KeyF Code = 9
	KeyG Code = 10
	KeyH Code = 11
	KeyI Code = 12
	KeyJ Code = 13
	KeyK Code = 14
	KeyL Code = 15
	KeyM Code = 16
	KeyN Code = 17
	KeyO Code = 18
	KeyP Code = 19
	KeyQ Code = 20
	KeyR Code = 21
	KeyS Code = 22
	KeyT Code = 23
	KeyU Code = 24
	KeyV Code = 25
	KeyW Code = 26
	KeyX Code = 27
	KeyY Code = 28
	KeyZ Code = 29

	Key1 Code = 30
	Key2 Code = 31
	Key3 Code = 32
	Key4 Code = 33
	Key5 Code = 34
	Key6 Code = 35
	Key7 Code = 36
	Key8 Code = 37
	Key9 Code = 38
	Key0 Code = 39

	KeyReturn    Code = 40
	KeyEscape    Code = 41
	KeyBackspace Code = 42
	KeyTab       Code = 43
	KeySpace     Code = 44

	KeyF1  Code = 58
	KeyF2  Code = 59
	KeyF3  Code = 60
	KeyF4  Code = 61
	KeyF5  Code = 62
	KeyF6  Code = 63
	KeyF7  Code = 64
	KeyF8  Code = 65
	KeyF9  Code = 66
	KeyF10 Code = 67
	KeyF11 Code = 68
	KeyF12 Code = 69

	KeyRight Code = 79
	KeyLeft  Code = 80
	KeyDown  Code = 81
	KeyUp    Code = 82

	KeyLeftCtrl   Code = 224
	KeyLeftShift  Code = 225
	KeyLeftAlt    Code = 226
	KeyLeftGUI    Code = 227
	KeyRightCtrl  Code = 228
	KeyRightShift Code = 229
	KeyRightAlt   Code = 230
	KeyRightGUI   Code = 231
)

// List of pointer button codes.
const (
	ButtonLeft   Code = 0
	ButtonRight  Code = 1
	ButtonMiddle Code = 2
	ButtonOther  Code = 3
)

var names = map[Code]string{
	KeyReturn:     "Return",
	KeyEscape:     "Escape",
	KeyBackspace:  "Backspace",
	KeyTab:        "Tab",
	KeySpace:      "Space",
	KeyRight:      "Right",
	KeyLeft:       "Left",
	KeyDown:       "Down",
	KeyUp:         "Up",
	KeyLeftCtrl:   "LeftCtrl",
	KeyLeftShift:  "LeftShift",
	KeyLeftAlt:    "LeftAlt",
	KeyLeftGUI:    "LeftGUI",
	KeyRightCtrl:  "RightCtrl",
	KeyRightShift: "RightShift",
	KeyRightAlt:   "RightAlt",
	KeyRightGUI:   "RightGUI",
}

func (c Code) String() string {
	switch {
	case c >= KeyA && c <= KeyZ:
		return string(rune('A' + c - KeyA))
	case c >= Key1 && c <= Key9:
		return string(rune('1' + c - Key1))
	case c == Key0:
		return "0"
	case c >= KeyF1 && c <= KeyF12:
		return fmt.Sprintf("F%d", c-KeyF1+1)
	}
	if n, ok := names[c]; ok {
		return n
	}
	return fmt.Sprintf("code(%d)", int(c))
}

// KeyFromRune returns the code for printable characters that have a key of
// their own. Letters are case insensitive. The second return value is false
// if there is no key for the rune.
func KeyFromRune(r rune) (Code, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return KeyA + Code(r-'a'), true
	case r >= 'A' && r <= 'Z':
		return KeyA + Code(r-'A'), true
	case r >= '1' && r <= '9':
		return Key1 + Code(r-'1'), true
	case r == '0':
		return Key0, true
	case r == ' ':
		return KeySpace, true
	case r == '\r' || r == '\n':
		return KeyReturn, true
	case r == '\t':
		return KeyTab, true
	case r == 0x1b:
		return KeyEscape, true
	case r == 0x7f || r == 0x08:
		return KeyBackspace, true
	}
	return 0, false
}
