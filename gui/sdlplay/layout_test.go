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
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"minuet/gui"
	"minuet/test"
	"minuet/userinput"
)

func TestLayout(t *testing.T) {
	l := layout{width: 1260, height: 780}
	w, h := l.scene()
	test.ExpectEquality(t, w, 1260)
	test.ExpectEquality(t, h, 780)

	w, h = l.viewport(0.5)
	test.ExpectEquality(t, w, 630)
	test.ExpectEquality(t, h, 390)

	l.panel = 300
	w, h = l.scene()
	test.ExpectEquality(t, w, 960)
	test.ExpectEquality(t, h, 780)

	w, h = l.viewport(0.5)
	test.ExpectEquality(t, w, 480)
	test.ExpectEquality(t, h, 390)
}

func TestLayoutEmpty(t *testing.T) {
	// a panel wider than the window leaves no scene
	l := layout{width: 200, height: 100, panel: 300}
	w, h := l.viewport(1)
	test.ExpectEquality(t, w, 0)
	test.ExpectEquality(t, h, 0)

	// minimised window
	l = layout{}
	w, h = l.viewport(1)
	test.ExpectEquality(t, w, 0)
	test.ExpectEquality(t, h, 0)

	// a small scene never scales to nothing
	l = layout{width: 1, height: 3}
	w, h = l.viewport(0.25)
	test.ExpectEquality(t, w, 1)
	test.ExpectEquality(t, h, 1)
}

func TestKeyCode(t *testing.T) {
	c, ok := keyCode(sdl.SCANCODE_W)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, c, userinput.KeyW)

	c, ok = keyCode(sdl.SCANCODE_ESCAPE)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, c, userinput.KeyEscape)

	c, ok = keyCode(sdl.SCANCODE_F12)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, c, userinput.KeyF12)

	c, ok = keyCode(sdl.SCANCODE_UP)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, c, userinput.KeyUp)

	c, ok = keyCode(sdl.SCANCODE_LSHIFT)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, c, userinput.KeyLeftShift)

	_, ok = keyCode(sdl.SCANCODE_UNKNOWN)
	test.ExpectFailure(t, ok)
}

func TestButtonCode(t *testing.T) {
	test.ExpectEquality(t, buttonCode(sdl.BUTTON_LEFT), userinput.ButtonLeft)
	test.ExpectEquality(t, buttonCode(sdl.BUTTON_RIGHT), userinput.ButtonRight)
	test.ExpectEquality(t, buttonCode(sdl.BUTTON_MIDDLE), userinput.ButtonMiddle)
	test.ExpectEquality(t, buttonCode(sdl.BUTTON_X1), userinput.ButtonOther)
}

func TestHotkeyRequest(t *testing.T) {
	req, ok := hotkeyRequest(sdl.SCANCODE_F9)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, req, gui.ReqScreenshot)

	req, ok = hotkeyRequest(sdl.SCANCODE_F10)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, req, gui.ReqOverlay)

	req, ok = hotkeyRequest(sdl.SCANCODE_F11)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, req, gui.ReqFullScreen)

	// F12 is left for the application
	_, ok = hotkeyRequest(sdl.SCANCODE_F12)
	test.ExpectFailure(t, ok)
	_, ok = hotkeyRequest(sdl.SCANCODE_W)
	test.ExpectFailure(t, ok)
}

func TestSavePNG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.Pix[0] = 0x80

	fn := filepath.Join(t.TempDir(), "screenshot.png")
	test.DemandSuccess(t, savePNG(img, fn))

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	saved, err := png.Decode(f)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, saved.Bounds(), img.Bounds())

	// every pixel is opaque
	r, _, _, a := saved.At(0, 0).RGBA()
	test.ExpectEquality(t, r>>8, uint32(0x80))
	test.ExpectEquality(t, a>>8, uint32(0xff))
	_, _, _, a = saved.At(2, 1).RGBA()
	test.ExpectEquality(t, a>>8, uint32(0xff))

	err = savePNG(img, filepath.Join(t.TempDir(), "missing", "screenshot.png"))
	test.ExpectFailure(t, err)
}

func TestMoveCursor(t *testing.T) {
	var c userinput.Cursor

	moveCursor(&c, &sdl.MouseMotionEvent{X: 100, Y: 50, XRel: 3, YRel: 4}, false)
	test.ExpectEquality(t, c.X, 100)
	test.ExpectEquality(t, c.Y, 50)

	// a captured mouse keeps moving even though the absolute position in
	// the event is pinned
	for range 3 {
		moveCursor(&c, &sdl.MouseMotionEvent{X: 0, Y: 0, XRel: -10, YRel: 2}, true)
	}
	test.ExpectEquality(t, c.X, 70)
	test.ExpectEquality(t, c.Y, 56)
}
