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

// Package viewport holds the size of the drawable area. The size is written
// by the GUI when the window is resized and read once per frame by the main
// loop.
//
// There is no notification of a change. Consumers compare the value they read
// with the value they read last time.
package viewport

import (
	"fmt"
	"sync"
)

// Viewport is the size of the drawable area in pixels.
type Viewport struct {
	Width  int
	Height int
}

func (vp Viewport) String() string {
	return fmt.Sprintf("%dx%d", vp.Width, vp.Height)
}

// Empty returns true if there are no pixels in the viewport.
func (vp Viewport) Empty() bool {
	return vp.Width <= 0 || vp.Height <= 0
}

// Dimensions is a Viewport that can be shared between goroutines.
type Dimensions struct {
	crit sync.Mutex
	vp   Viewport
}

// NewDimensions is the preferred method of initialisation for the Dimensions
// type.
func NewDimensions(width, height int) *Dimensions {
	return &Dimensions{
		vp: Viewport{Width: width, Height: height},
	}
}

// Set the dimensions. Negative values are treated as zero.
func (dim *Dimensions) Set(width, height int) {
	dim.crit.Lock()
	defer dim.crit.Unlock()
	dim.vp.Width = max(width, 0)
	dim.vp.Height = max(height, 0)
}

// Resize implements the gui.Resizable interface.
func (dim *Dimensions) Resize(width, height int) {
	dim.Set(width, height)
}

// Get the dimensions. Width and height are always read together.
func (dim *Dimensions) Get() Viewport {
	dim.crit.Lock()
	defer dim.crit.Unlock()
	return dim.vp
}
