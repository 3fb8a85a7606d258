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

package gui

import (
	"image"
)

// PixelBuffer is a rectangle of pixels produced by a renderer. There are four
// bytes per pixel in the order red, green, blue and a fourth byte that is
// unused. Presenters should treat every pixel as opaque.
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []byte
}

// NewPixelBuffer is the preferred method of initialisation for the
// PixelBuffer type.
func NewPixelBuffer(width, height int) *PixelBuffer {
	return &PixelBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*4),
	}
}

// Valid returns true if the length of the pixel data is consistent with the
// width and height.
func (buf *PixelBuffer) Valid() bool {
	return buf.Width > 0 && buf.Height > 0 && len(buf.Pix) == buf.Width*buf.Height*4
}

// Set the pixel at x, y.
func (buf *PixelBuffer) Set(x, y int, r, g, b uint8) {
	i := (y*buf.Width + x) * 4
	buf.Pix[i] = r
	buf.Pix[i+1] = g
	buf.Pix[i+2] = b
	buf.Pix[i+3] = 0xff
}

// Image returns an image.RGBA that shares the pixel data of the buffer. The
// unused byte is not changed and so the alpha channel of the image may not be
// meaningful.
func (buf *PixelBuffer) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    buf.Pix,
		Stride: buf.Width * 4,
		Rect:   image.Rect(0, 0, buf.Width, buf.Height),
	}
}
