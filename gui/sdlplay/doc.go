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

// Package sdlplay is the windowed GUI implementation. It uses SDL for the
// window and for input and draws with OpenGL 2.1. The rendered image fills
// the window except for an optional overlay panel on the right.
//
// The SdlPlay type implements the gui.InputSource, gui.Presentable,
// gui.Platform and gui.GUI interfaces. All functions must be called from the
// main thread.
//
// Resizing the window changes the viewport dimensions. The size of the
// viewport is the size of the scene area multiplied by the render scale. The
// image is stretched to fit the scene area when presented.
package sdlplay
