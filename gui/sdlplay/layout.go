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

package sdlplay

import (
	"github.com/veandco/go-sdl2/sdl"

	"minuet/gui"
	"minuet/userinput"
)

// layout of the window in screen coordinates. the scene is on the left and
// the panel, if there is one, on the right.
type layout struct {
	width  int
	height int
	panel  int
}

// scene returns the size of the scene area. the panel never covers more than
// the width of the window.
func (l layout) scene() (int, int) {
	if l.width <= 0 || l.height <= 0 {
		return 0, 0
	}
	return max(l.width-l.panel, 0), l.height
}

// viewport returns the size of the viewport for the scene area.
func (l layout) viewport(scale float64) (int, int) {
	w, h := l.scene()
	if w == 0 || h == 0 {
		return 0, 0
	}
	return max(int(float64(w)*scale), 1), max(int(float64(h)*scale), 1)
}

// hotkeyRequest returns the feature request associated with a function key.
// Hotkeys are serviced before the key reaches imgui or the input buffers.
func hotkeyRequest(sc sdl.Scancode) (gui.FeatureReq, bool) {
	switch sc {
	case sdl.SCANCODE_F9:
		return gui.ReqScreenshot, true
	case sdl.SCANCODE_F10:
		return gui.ReqOverlay, true
	case sdl.SCANCODE_F11:
		return gui.ReqFullScreen, true
	}
	return "", false
}

// keyCode converts an SDL scancode to a keyboard code. SDL scancodes are USB
// HID usage IDs so the conversion is direct. The second return value is false
// for scancodes that SDL reserves or doesn't know about.
func keyCode(sc sdl.Scancode) (userinput.Code, bool) {
	if sc == sdl.SCANCODE_UNKNOWN || sc >= sdl.NUM_SCANCODES {
		return 0, false
	}
	return userinput.Code(sc), true
}

// buttonCode converts an SDL mouse button to a pointer button code.
func buttonCode(b uint8) userinput.Code {
	switch b {
	case sdl.BUTTON_LEFT:
		return userinput.ButtonLeft
	case sdl.BUTTON_RIGHT:
		return userinput.ButtonRight
	case sdl.BUTTON_MIDDLE:
		return userinput.ButtonMiddle
	}
	return userinput.ButtonOther
}
