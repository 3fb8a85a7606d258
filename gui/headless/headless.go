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

package headless

import (
	"image"
	"image/png"
	"os"
	"sync/atomic"

	"golang.org/x/image/draw"

	"minuet/curated"
	"minuet/gui"
	"minuet/logger"
	"minuet/userinput"
	"minuet/viewport"
)

// Sentinel error patterns.
const (
	NothingPresented = "headless: nothing has been presented"
	ScreenshotFailed = "headless: screenshot: %v"
)

// Headless implements the gui.InputSource, gui.Presentable, gui.Platform and
// gui.GUI interfaces without a display.
type Headless struct {
	kb *Keyboard

	dims    *viewport.Dimensions
	refresh float64

	// presented frames are scaled onto the surface. the surface is the size
	// of the viewport
	surface   *image.RGBA
	presented int

	cursorHidden bool
	quit         atomic.Bool
}

// NewHeadless is the preferred method of initialisation for the Headless
// type. The keyboard can be nil, in which case there will be no input.
func NewHeadless(kb *Keyboard, dims *viewport.Dimensions, refresh float64) *Headless {
	hl := &Headless{
		kb:      kb,
		dims:    dims,
		refresh: refresh,
	}
	vp := dims.Get()
	hl.Resize(vp.Width, vp.Height)
	return hl
}

// Resize implements the gui.Resizable interface. The surface is resized and
// the new size is published to the viewport dimensions.
func (hl *Headless) Resize(width, height int) {
	hl.dims.Set(width, height)
	vp := hl.dims.Get()
	hl.surface = image.NewRGBA(image.Rect(0, 0, vp.Width, vp.Height))
}

// Pump implements the gui.InputSource interface.
func (hl *Headless) Pump(in *userinput.Input) error {
	if hl.kb == nil {
		return nil
	}
	return hl.kb.Pump(in)
}

// CloseRequested implements the gui.InputSource interface.
func (hl *Headless) CloseRequested() bool {
	if hl.quit.Load() {
		return true
	}
	return hl.kb != nil && hl.kb.CloseRequested()
}

// Present implements the gui.Presentable interface. The buffer is scaled to
// the size of the surface.
func (hl *Headless) Present(buf *gui.PixelBuffer) error {
	if !buf.Valid() {
		return curated.Errorf(gui.InvalidFeatureArgs, "pixel buffer")
	}

	src := buf.Image()
	draw.BiLinear.Scale(hl.surface, hl.surface.Bounds(), src, src.Bounds(), draw.Src, nil)

	// the fourth byte of a pixel buffer is not guaranteed to be opaque
	for i := 3; i < len(hl.surface.Pix); i += 4 {
		hl.surface.Pix[i] = 0xff
	}

	hl.presented++
	return nil
}

// Presented returns the number of frames that have been presented.
func (hl *Headless) Presented() int {
	return hl.presented
}

// Surface returns the most recently presented frame. The image will be
// overwritten by the next call to Present().
func (hl *Headless) Surface() *image.RGBA {
	return hl.surface
}

// Screenshot saves the most recently presented frame as a PNG file.
func (hl *Headless) Screenshot(filename string) error {
	if hl.presented == 0 {
		return curated.Errorf(NothingPresented)
	}

	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf(ScreenshotFailed, err)
	}
	defer f.Close()

	err = png.Encode(f, hl.surface)
	if err != nil {
		return curated.Errorf(ScreenshotFailed, err)
	}

	logger.Logf(logger.Allow, "headless", "screenshot saved to %s", filename)

	return nil
}

// HideCursor implements the gui.CursorControl interface. There is no cursor
// but the state is kept for the benefit of the caller.
func (hl *Headless) HideCursor() {
	hl.cursorHidden = true
}

// ShowCursor implements the gui.CursorControl interface.
func (hl *Headless) ShowCursor() {
	hl.cursorHidden = false
}

// Quit implements the gui.Platform interface.
func (hl *Headless) Quit() {
	hl.quit.Store(true)
}

// SetFeature implements the gui.GUI interface.
func (hl *Headless) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	switch request {
	case gui.ReqScreenshot:
		if len(args) != 1 {
			return curated.Errorf(gui.InvalidFeatureArgs, request)
		}
		fn, ok := args[0].(string)
		if !ok {
			return curated.Errorf(gui.InvalidFeatureArgs, request)
		}
		return hl.Screenshot(fn)
	case gui.ReqOverlay, gui.ReqFullScreen:
		// there is no window so these requests are accepted and ignored
		return nil
	}
	return curated.Errorf(gui.UnsupportedGuiFeature, request)
}

// GetFeature implements the gui.GUI interface.
func (hl *Headless) GetFeature(request gui.FeatureReq) (gui.FeatureReqData, error) {
	switch request {
	case gui.ReqRefreshRate:
		return hl.refresh, nil
	case gui.ReqOverlay, gui.ReqFullScreen:
		return false, nil
	}
	return nil, curated.Errorf(gui.UnsupportedGuiFeature, request)
}
