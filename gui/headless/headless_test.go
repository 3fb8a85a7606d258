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

package headless_test

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"minuet/curated"
	"minuet/gui"
	"minuet/gui/headless"
	"minuet/test"
	"minuet/userinput"
	"minuet/viewport"
)

func TestKeyboard(t *testing.T) {
	in, err := userinput.NewInput(16, 4)
	test.DemandSuccess(t, err)

	var r bytes.Buffer
	kb := headless.NewKeyboard(&r, time.Hour)

	// nothing to read is not an error
	test.ExpectSuccess(t, kb.Pump(in))

	r.WriteString("w")
	test.ExpectSuccess(t, kb.Pump(in))
	in.Reconcile()
	test.ExpectSuccess(t, in.Keyboard.Pressed(userinput.KeyW))
	test.ExpectFailure(t, kb.CloseRequested())
	in.EndFrame()

	kb.Release(in)
	in.Reconcile()
	test.ExpectSuccess(t, in.Keyboard.Released(userinput.KeyW))
	in.EndFrame()

	// more bytes than the internal buffer
	r.WriteString(string(bytes.Repeat([]byte{'x'}, 100)) + "\x03")
	test.ExpectSuccess(t, kb.Pump(in))
	test.ExpectSuccess(t, kb.CloseRequested())

	// keys are not left down after an interrupt
	in.Reconcile()
	test.ExpectFailure(t, in.Keyboard.IsDown(userinput.KeyX))
}

func TestPresent(t *testing.T) {
	dims := viewport.NewDimensions(8, 6)
	hl := headless.NewHeadless(nil, dims, 60)

	test.ExpectSuccess(t, hl.Pump(nil))
	test.ExpectFailure(t, hl.CloseRequested())

	// screenshot before any presentation
	err := hl.Screenshot(filepath.Join(t.TempDir(), "none.png"))
	test.ExpectSuccess(t, curated.Is(err, headless.NothingPresented))

	buf := gui.NewPixelBuffer(2, 2)
	for y := range 2 {
		for x := range 2 {
			buf.Set(x, y, 10, 20, 30)
		}
	}
	test.DemandSuccess(t, hl.Present(buf))
	test.ExpectEquality(t, hl.Presented(), 1)

	// solid colour is unchanged by scaling
	img := hl.Surface()
	test.ExpectEquality(t, img.Bounds().Dx(), 8)
	test.ExpectEquality(t, img.Bounds().Dy(), 6)
	for _, p := range [][2]int{{0, 0}, {7, 5}, {3, 2}} {
		r, g, b, a := img.At(p[0], p[1]).RGBA()
		test.ExpectEquality(t, r>>8, uint32(10), p)
		test.ExpectEquality(t, g>>8, uint32(20), p)
		test.ExpectEquality(t, b>>8, uint32(30), p)
		test.ExpectEquality(t, a>>8, uint32(0xff), p)
	}

	test.ExpectFailure(t, hl.Present(&gui.PixelBuffer{Width: 2, Height: 2}))

	// resize changes the surface and the viewport
	hl.Resize(4, 4)
	test.ExpectEquality(t, dims.Get(), viewport.Viewport{Width: 4, Height: 4})
	test.DemandSuccess(t, hl.Present(buf))
	test.ExpectEquality(t, hl.Surface().Bounds().Dx(), 4)
}

func TestScreenshot(t *testing.T) {
	hl := headless.NewHeadless(nil, viewport.NewDimensions(5, 3), 60)
	test.DemandSuccess(t, hl.Present(gui.NewPixelBuffer(10, 6)))

	fn := filepath.Join(t.TempDir(), "shot.png")
	test.DemandSuccess(t, hl.SetFeature(gui.ReqScreenshot, fn))

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds().Dx(), 5)
	test.ExpectEquality(t, img.Bounds().Dy(), 3)
}

func TestFeatures(t *testing.T) {
	hl := headless.NewHeadless(nil, viewport.NewDimensions(5, 3), 59.94)

	v, err := hl.GetFeature(gui.ReqRefreshRate)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, gui.FeatureReqData(59.94))

	test.ExpectSuccess(t, hl.SetFeature(gui.ReqOverlay, false))
	test.ExpectSuccess(t, curated.Is(hl.SetFeature(gui.ReqScreenshot), gui.InvalidFeatureArgs))
	test.ExpectSuccess(t, curated.Is(hl.SetFeature(gui.ReqScreenshot, 10), gui.InvalidFeatureArgs))
	test.ExpectSuccess(t, curated.Is(hl.SetFeature("ReqUnknown"), gui.UnsupportedGuiFeature))

	_, err = hl.GetFeature(gui.ReqScreenshot)
	test.ExpectSuccess(t, curated.Is(err, gui.UnsupportedGuiFeature))

	// platform
	var p gui.Platform = hl
	p.HideCursor()
	p.ShowCursor()
	p.Quit()
	test.ExpectSuccess(t, hl.CloseRequested())
}
