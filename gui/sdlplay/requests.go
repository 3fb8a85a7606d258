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

	"github.com/go-gl/gl/v2.1/gl"

	"minuet/curated"
	"minuet/gui"
	"minuet/logger"
)

// Sentinel error patterns.
const (
	RequestPanic     = "sdlplay: %v: %v"
	NothingPresented = "sdlplay: nothing has been presented"
	ScreenshotFailed = "sdlplay: screenshot: %v"
)

// SetFeature implements the gui.GUI interface.
func (sp *SdlPlay) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) (returnedErr error) {
	// lazy (but clear) handling of type assertion errors
	defer func() {
		if r := recover(); r != nil {
			returnedErr = curated.Errorf(RequestPanic, request, r)
		}
	}()

	switch request {
	case gui.ReqFullScreen:
		err := sp.plt.setFullScreen(args[0].(bool))
		if err != nil {
			return err
		}
		sp.fullScreen = args[0].(bool)
		sp.resize()

	case gui.ReqOverlay:
		sp.showOverlay = args[0].(bool)
		sp.resize()

	case gui.ReqScreenshot:
		return sp.screenshot(args[0].(string))

	default:
		return curated.Errorf(gui.UnsupportedGuiFeature, request)
	}

	return nil
}

// GetFeature implements the gui.GUI interface.
func (sp *SdlPlay) GetFeature(request gui.FeatureReq) (gui.FeatureReqData, error) {
	switch request {
	case gui.ReqFullScreen:
		return sp.fullScreen, nil
	case gui.ReqOverlay:
		return sp.showOverlay, nil
	case gui.ReqRefreshRate:
		return sp.RefreshRate(), nil
	}
	return nil, curated.Errorf(gui.UnsupportedGuiFeature, request)
}

// screenshot saves the contents of the scene texture as a PNG file. the
// image is the size of the viewport, not the size of the window.
func (sp *SdlPlay) screenshot(filename string) error {
	tex := sp.rnd.scene
	if tex.width == 0 || tex.height == 0 {
		return curated.Errorf(NothingPresented)
	}

	img := image.NewRGBA(image.Rect(0, 0, tex.width, tex.height))
	gl.BindTexture(gl.TEXTURE_2D, tex.id)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.GetTexImage(gl.TEXTURE_2D, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))

	err := savePNG(img, filename)
	if err != nil {
		return err
	}

	logger.Logf(logger.Allow, "sdlplay", "screenshot saved to %s", filename)

	return nil
}

// savePNG writes the image to a new file. the image is made opaque first
// because the fourth byte of a pixel buffer is not guaranteed to be 0xff.
func savePNG(img *image.RGBA, filename string) error {
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
	}

	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf(ScreenshotFailed, err)
	}
	defer f.Close()

	err = png.Encode(f, img)
	if err != nil {
		return curated.Errorf(ScreenshotFailed, err)
	}

	return nil
}
