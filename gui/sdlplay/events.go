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
	"bytes"

	"github.com/veandco/go-sdl2/sdl"

	"minuet/curated"
	"minuet/gui"
	"minuet/logger"
	"minuet/paths"
	"minuet/userinput"
)

// Pump implements the gui.InputSource interface. All pending SDL events are
// serviced. Input that the overlay wants is given to imgui and not to the
// input buffers.
func (sp *SdlPlay) Pump(in *userinput.Input) error {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			sp.closeRequested = true

		case *sdl.WindowEvent:
			switch ev.Event {
			case sdl.WINDOWEVENT_SIZE_CHANGED:
				sp.resize()
			case sdl.WINDOWEVENT_CLOSE:
				sp.closeRequested = true
			}

		case *sdl.TextInputEvent:
			if !sp.captured {
				text := ev.Text[:]
				if n := bytes.IndexByte(text, 0); n >= 0 {
					text = text[:n]
				}
				sp.io.AddInputCharacters(string(text))
			}

		case *sdl.KeyboardEvent:
			sp.serviceKeyboard(in, ev)

		case *sdl.MouseMotionEvent:
			moveCursor(&in.Cursor, ev, sp.captured)

		case *sdl.MouseButtonEvent:
			down := ev.Type == sdl.MOUSEBUTTONDOWN
			button := buttonCode(ev.Button)

			if down && button != userinput.ButtonOther {
				sp.plt.buttonsDown[button] = true
			}

			// release events always go to the input buffer so that a
			// button pressed in the scene is not left down
			if down && sp.overlayWantsMouse() {
				continue
			}
			in.PushButton(button, down)

		case *sdl.MouseWheelEvent:
			dx, dy := float32(ev.X), float32(ev.Y)
			if ev.Direction == sdl.MOUSEWHEEL_FLIPPED {
				dx, dy = -dx, -dy
			}
			if sp.overlayWantsMouse() {
				sp.io.AddMouseWheelDelta(dx, dy)
			} else {
				in.Cursor.AddScroll(dx, dy)
			}
		}
	}

	return nil
}

// moveCursor updates the cursor from a motion event. a captured mouse is in
// relative mode and the absolute position in the event is meaningless, so
// the relative motion is accumulated instead.
func moveCursor(c *userinput.Cursor, ev *sdl.MouseMotionEvent, captured bool) {
	if captured {
		c.SetPosition(c.X+float32(ev.XRel), c.Y+float32(ev.YRel))
	} else {
		c.SetPosition(float32(ev.X), float32(ev.Y))
	}
}

func (sp *SdlPlay) overlayVisible() bool {
	return sp.overlay != nil && sp.showOverlay
}

func (sp *SdlPlay) overlayWantsMouse() bool {
	return !sp.captured && sp.overlayVisible() && sp.io.WantCaptureMouse()
}

func (sp *SdlPlay) serviceKeyboard(in *userinput.Input, ev *sdl.KeyboardEvent) {
	down := ev.Type == sdl.KEYDOWN

	if down {
		sp.io.KeyPress(int(ev.Keysym.Scancode))
	} else {
		sp.io.KeyRelease(int(ev.Keysym.Scancode))
	}
	sp.plt.updateKeyModifier()

	if down && ev.Repeat == 0 {
		if req, ok := hotkeyRequest(ev.Keysym.Scancode); ok {
			if err := sp.hotkey(req); err != nil {
				logger.Log(logger.Allow, "sdlplay", err)
			}
		}
	}

	if down && sp.overlayVisible() && sp.io.WantCaptureKeyboard() {
		return
	}

	if c, ok := keyCode(ev.Keysym.Scancode); ok {
		in.PushKey(c, down, down && ev.Repeat != 0)
	}
}

// hotkey services the request returned by hotkeyRequest(). The overlay and
// full screen requests toggle the current state.
func (sp *SdlPlay) hotkey(req gui.FeatureReq) error {
	switch req {
	case gui.ReqOverlay:
		return sp.SetFeature(gui.ReqOverlay, !sp.showOverlay)
	case gui.ReqFullScreen:
		return sp.SetFeature(gui.ReqFullScreen, !sp.fullScreen)
	case gui.ReqScreenshot:
		fn, err := paths.ResourcePath("screenshots", paths.UniqueFilename("screenshot", "png"))
		if err != nil {
			return err
		}
		return sp.SetFeature(gui.ReqScreenshot, fn)
	}
	return curated.Errorf(gui.UnsupportedGuiFeature, req)
}
