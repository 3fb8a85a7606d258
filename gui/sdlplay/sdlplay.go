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
	"github.com/inkyblackness/imgui-go/v4"

	"minuet/curated"
	"minuet/gui"
	"minuet/viewport"
)

// Drawer is implemented by the overlay. Draw() is called between the start
// and end of an imgui frame with the area of the window it can use.
type Drawer interface {
	Draw(x, y, width, height float32)
}

// Options for NewSdlPlay.
type Options struct {
	Title  string
	Width  int
	Height int

	// the viewport is the size of the scene area multiplied by Scale
	Scale float64

	FullScreen bool
}

// SdlPlay is the windowed GUI.
type SdlPlay struct {
	context *imgui.Context
	io      imgui.IO

	plt *platform
	rnd *gl21

	dims  *viewport.Dimensions
	scale float64

	// views are told about the size of the window whenever it changes. the
	// scene view is always the first in the list
	views     *gui.Registry
	resizable []gui.ViewID

	overlay      Drawer
	overlayWidth int
	showOverlay  bool

	fullScreen     bool
	captured       bool
	closeRequested bool
}

// NewSdlPlay is the preferred method of initialisation for the SdlPlay type.
// The viewport dimensions are set immediately to the initial size of the
// scene area.
//
// MUST ONLY be called from the main thread.
func NewSdlPlay(opts Options, dims *viewport.Dimensions) (*SdlPlay, error) {
	sp := &SdlPlay{
		context: imgui.CreateContext(nil),
		io:      imgui.CurrentIO(),
		dims:    dims,
		scale:   opts.Scale,
		views:   gui.NewRegistry(),
	}

	if sp.scale <= 0 || sp.scale > 1 {
		sp.scale = 1
	}

	// we don't want to load or save an imgui ini file
	sp.io.SetIniFilename("")

	var err error

	sp.plt, err = newPlatform(sp.io, opts.Title, opts.Width, opts.Height)
	if err != nil {
		sp.context.Destroy()
		return nil, err
	}

	sp.rnd, err = newRenderer(sp.io.Fonts())
	if err != nil {
		sp.plt.destroy()
		sp.context.Destroy()
		return nil, err
	}

	sp.AddView(&sceneView{sp: sp})

	if opts.FullScreen {
		err = sp.SetFeature(gui.ReqFullScreen, true)
		if err != nil {
			sp.Destroy()
			return nil, err
		}
	}

	sp.resize()

	return sp, nil
}

// Destroy releases the window and the GL context.
//
// MUST ONLY be called from the main thread.
func (sp *SdlPlay) Destroy() {
	sp.rnd.destroy()
	sp.plt.destroy()
	sp.context.Destroy()
}

// SetOverlay sets the overlay and the width of the panel it is drawn in. The
// overlay is not shown until requested with gui.ReqOverlay.
func (sp *SdlPlay) SetOverlay(ov Drawer, width int) {
	sp.overlay = ov
	sp.overlayWidth = max(width, 0)
	sp.resize()
}

// AddView adds a view that is told about changes to the window size. The
// returned ViewID can be used to remove the view.
func (sp *SdlPlay) AddView(v gui.Resizable) gui.ViewID {
	id := sp.views.Add(v)
	sp.resizable = append(sp.resizable, id)
	return id
}

// RemoveView removes a view added with AddView().
func (sp *SdlPlay) RemoveView(id gui.ViewID) {
	sp.views.Remove(id)
}

// RefreshRate returns the refresh rate of the display the window was opened
// on. The value will be zero if SDL doesn't know what it is.
func (sp *SdlPlay) RefreshRate() float64 {
	return float64(sp.plt.mode.RefreshRate)
}

func (sp *SdlPlay) layout() layout {
	w, h := sp.plt.windowSize()
	l := layout{width: w, height: h}
	if sp.overlay != nil && sp.showOverlay {
		l.panel = sp.overlayWidth
	}
	return l
}

// resize tells the views the size of the window. views that have been
// removed are forgotten.
func (sp *SdlPlay) resize() {
	w, h := sp.plt.windowSize()

	n := 0
	for _, id := range sp.resizable {
		if r, ok := gui.Resolve[gui.Resizable](sp.views, id); ok {
			r.Resize(w, h)
			sp.resizable[n] = id
			n++
		}
	}
	sp.resizable = sp.resizable[:n]
}

// sceneView publishes the viewport dimensions for the scene area.
type sceneView struct {
	sp *SdlPlay
}

// Resize implements the gui.Resizable interface.
func (v *sceneView) Resize(width, height int) {
	l := v.sp.layout()
	l.width = width
	l.height = height
	v.sp.dims.Set(l.viewport(v.sp.scale))
}

// Present implements the gui.Presentable interface.
func (sp *SdlPlay) Present(buf *gui.PixelBuffer) error {
	if !buf.Valid() {
		return curated.Errorf(gui.InvalidFeatureArgs, "pixel buffer")
	}
	sp.rnd.scene.upload(buf)
	sp.render()
	return nil
}

func (sp *SdlPlay) render() {
	winw, winh := sp.plt.windowSize()
	fbw, fbh := sp.plt.framebufferSize()

	sp.rnd.preRender(fbw, fbh)

	l := sp.layout()
	sw, sh := l.scene()
	sp.rnd.renderScene(0, 0, sw, sh, winw, winh, fbw, fbh)

	if l.panel > 0 {
		sp.plt.newFrame(sp.captured)
		imgui.NewFrame()
		sp.overlay.Draw(float32(sw), 0, float32(winw-sw), float32(winh))
		imgui.Render()
		sp.rnd.renderOverlay(winw, winh, fbw, fbh)
	}

	sp.plt.window.GLSwap()
}

// CloseRequested implements the gui.InputSource interface.
func (sp *SdlPlay) CloseRequested() bool {
	return sp.closeRequested
}

// HideCursor implements the gui.CursorControl interface. The mouse is
// captured while the cursor is hidden.
func (sp *SdlPlay) HideCursor() {
	if sp.captured {
		return
	}
	sp.captured = true
	sp.plt.setCapture(true)
}

// ShowCursor implements the gui.CursorControl interface.
func (sp *SdlPlay) ShowCursor() {
	if !sp.captured {
		return
	}
	sp.captured = false
	sp.plt.setCapture(false)
}

// Quit implements the gui.Platform interface.
func (sp *SdlPlay) Quit() {
	sp.closeRequested = true
}
