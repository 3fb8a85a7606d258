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
	"runtime"
	"time"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/veandco/go-sdl2/sdl"

	"minuet/curated"
	"minuet/logger"
)

// Sentinel error patterns.
const (
	SDLFailed = "sdl: %v"
	GLFailed  = "gl21: %v"
)

type platform struct {
	imguiIO imgui.IO

	window    *sdl.Window
	glContext sdl.GLContext
	mode      sdl.DisplayMode

	time        uint64
	buttonsDown [3]bool
}

// newPlatform is the preferred method of initialisation for the platform type.
func newPlatform(io imgui.IO, title string, width, height int) (*platform, error) {
	// the SDL package calls LockOSThread() but we call it here too. it can't
	// hurt and we never unlock it in any case
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf(SDLFailed, err)
	}

	for _, a := range []struct {
		attr  sdl.GLattr
		value int
	}{
		{attr: sdl.GL_CONTEXT_MAJOR_VERSION, value: 2},
		{attr: sdl.GL_CONTEXT_MINOR_VERSION, value: 1},
		{attr: sdl.GL_DOUBLEBUFFER, value: 1},
	} {
		err = sdl.GLSetAttribute(a.attr, a.value)
		if err != nil {
			sdl.Quit()
			return nil, curated.Errorf(SDLFailed, err)
		}
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	plt := &platform{
		imguiIO: io,
	}

	plt.mode, err = sdl.GetCurrentDisplayMode(0)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf(SDLFailed, err)
	}
	logger.Logf(logger.Allow, "sdl", "refresh rate: %dHz", plt.mode.RefreshRate)

	plt.window, err = sdl.CreateWindow(title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(min(width, int(plt.mode.W))), int32(min(height, int(plt.mode.H))),
		sdl.WINDOW_OPENGL|sdl.WINDOW_ALLOW_HIGHDPI|sdl.WINDOW_RESIZABLE)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf(SDLFailed, err)
	}

	plt.glContext, err = plt.window.GLCreateContext()
	if err != nil {
		plt.destroy()
		return nil, curated.Errorf(SDLFailed, err)
	}
	err = plt.window.GLMakeCurrent(plt.glContext)
	if err != nil {
		plt.destroy()
		return nil, curated.Errorf(SDLFailed, err)
	}

	// the vsync gate paces the loop so we don't want the buffer swap to
	// block as well
	err = sdl.GLSetSwapInterval(0)
	if err != nil {
		logger.Logf(logger.Allow, "sdl", "GLSetSwapInterval(0): %v", err)
	}

	plt.setKeyMapping()

	return plt, nil
}

// destroy cleans up the resources.
func (plt *platform) destroy() {
	if plt.glContext != nil {
		sdl.GLDeleteContext(plt.glContext)
		plt.glContext = nil
	}
	if plt.window != nil {
		err := plt.window.Destroy()
		if err != nil {
			logger.Log(logger.Allow, "sdl", err)
		}
		plt.window = nil
	}
	sdl.Quit()
}

func (plt *platform) setKeyMapping() {
	keys := map[int]int{
		imgui.KeyTab:        sdl.SCANCODE_TAB,
		imgui.KeyLeftArrow:  sdl.SCANCODE_LEFT,
		imgui.KeyRightArrow: sdl.SCANCODE_RIGHT,
		imgui.KeyUpArrow:    sdl.SCANCODE_UP,
		imgui.KeyDownArrow:  sdl.SCANCODE_DOWN,
		imgui.KeyPageUp:     sdl.SCANCODE_PAGEUP,
		imgui.KeyPageDown:   sdl.SCANCODE_PAGEDOWN,
		imgui.KeyHome:       sdl.SCANCODE_HOME,
		imgui.KeyEnd:        sdl.SCANCODE_END,
		imgui.KeyInsert:     sdl.SCANCODE_INSERT,
		imgui.KeyDelete:     sdl.SCANCODE_DELETE,
		imgui.KeyBackspace:  sdl.SCANCODE_BACKSPACE,
		imgui.KeySpace:      sdl.SCANCODE_SPACE,
		imgui.KeyEnter:      sdl.SCANCODE_RETURN,
		imgui.KeyEscape:     sdl.SCANCODE_ESCAPE,
		imgui.KeyA:          sdl.SCANCODE_A,
		imgui.KeyC:          sdl.SCANCODE_C,
		imgui.KeyV:          sdl.SCANCODE_V,
		imgui.KeyX:          sdl.SCANCODE_X,
		imgui.KeyY:          sdl.SCANCODE_Y,
		imgui.KeyZ:          sdl.SCANCODE_Z,
	}

	// imgui uses these indices to peek into the io.KeysDown[] array
	for imguiKey, nativeKey := range keys {
		plt.imguiIO.KeyMap(imguiKey, nativeKey)
	}
}

func (plt *platform) updateKeyModifier() {
	modState := sdl.GetModState()
	mapModifier := func(lMask sdl.Keymod, lKey int, rMask sdl.Keymod, rKey int) (lResult int, rResult int) {
		if (modState & lMask) != 0 {
			lResult = lKey
		}
		if (modState & rMask) != 0 {
			rResult = rKey
		}
		return
	}
	plt.imguiIO.KeyShift(mapModifier(sdl.KMOD_LSHIFT, sdl.SCANCODE_LSHIFT, sdl.KMOD_RSHIFT, sdl.SCANCODE_RSHIFT))
	plt.imguiIO.KeyCtrl(mapModifier(sdl.KMOD_LCTRL, sdl.SCANCODE_LCTRL, sdl.KMOD_RCTRL, sdl.SCANCODE_RCTRL))
	plt.imguiIO.KeyAlt(mapModifier(sdl.KMOD_LALT, sdl.SCANCODE_LALT, sdl.KMOD_RALT, sdl.SCANCODE_RALT))
}

// windowSize returns the size of the window in screen coordinates.
func (plt *platform) windowSize() (int, int) {
	w, h := plt.window.GetSize()
	return int(w), int(h)
}

// framebufferSize returns the size of the framebuffer in pixels. this will be
// larger than the window size on high DPI displays.
func (plt *platform) framebufferSize() (int, int) {
	w, h := plt.window.GLGetDrawableSize()
	return int(w), int(h)
}

// newFrame forwards the current state of the window and mouse to imgui. the
// cursor is ignored by imgui when it has been captured.
func (plt *platform) newFrame(captured bool) {
	w, h := plt.windowSize()
	plt.imguiIO.SetDisplaySize(imgui.Vec2{X: float32(w), Y: float32(h)})

	// SDL_GetTicks() only has millisecond resolution
	frequency := sdl.GetPerformanceFrequency()
	currentTime := sdl.GetPerformanceCounter()
	if plt.time > 0 {
		plt.imguiIO.SetDeltaTime(float32(currentTime-plt.time) / float32(frequency))
	} else {
		plt.imguiIO.SetDeltaTime(1.0 / 60.0)
	}
	plt.time = currentTime

	if captured {
		plt.imguiIO.SetMousePosition(imgui.Vec2{X: -1, Y: -1})
		for i := range plt.buttonsDown {
			plt.imguiIO.SetMouseButtonDown(i, false)
			plt.buttonsDown[i] = false
		}
		return
	}

	// a press and release within the same frame is passed to imgui as the
	// button being held for the frame
	x, y, state := sdl.GetMouseState()
	plt.imguiIO.SetMousePosition(imgui.Vec2{X: float32(x), Y: float32(y)})
	for i, button := range []uint32{sdl.BUTTON_LEFT, sdl.BUTTON_RIGHT, sdl.BUTTON_MIDDLE} {
		plt.imguiIO.SetMouseButtonDown(i, plt.buttonsDown[i] || (state&sdl.Button(button)) != 0)
		plt.buttonsDown[i] = false
	}
}

// setFullScreen toggles the full screen state of the window.
func (plt *platform) setFullScreen(fullScreen bool) error {
	var err error
	if fullScreen {
		err = plt.window.SetFullscreen(sdl.WINDOW_FULLSCREEN_DESKTOP)
	} else {
		err = plt.window.SetFullscreen(0)
	}
	if err != nil {
		return curated.Errorf(SDLFailed, err)
	}

	// a short delay gives the system time to make the change
	<-time.After(100 * time.Millisecond)
	return nil
}

// setCapture grabs the mouse and hides the cursor. relative mouse mode means
// that motion is still reported when the pointer would be at the edge of the
// window.
func (plt *platform) setCapture(set bool) {
	plt.window.SetGrab(set)

	if sdl.SetRelativeMouseMode(set) != 0 {
		logger.Log(logger.Allow, "sdl", sdl.GetError())
	}

	err := sdl.CaptureMouse(set)
	if err != nil {
		logger.Log(logger.Allow, "sdl", err)
	}

	if set {
		_, err = sdl.ShowCursor(sdl.DISABLE)
	} else {
		_, err = sdl.ShowCursor(sdl.ENABLE)
	}
	if err != nil {
		logger.Log(logger.Allow, "sdl", err)
	}
}
