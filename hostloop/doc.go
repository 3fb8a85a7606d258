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

// Package hostloop is the main loop of the program. It paces a renderer to the
// display refresh rate and gives it a stable view of the user input for each
// frame.
//
// Each iteration of the loop:
//
//  1. pumps the GUI events into the input buffers
//  2. reconciles the buffered events into the per-frame snapshots
//  3. checks for the exit condition
//  4. reads the viewport and advances the frame clock
//  5. resizes and updates the camera
//  6. resizes the renderer and renders the scene
//  7. waits for the refresh signal
//  8. presents the rendered image
//  9. clears the per-frame edges and scroll
//
// If the renderer produces no image the previous image stays on screen. If
// waiting for the refresh signal fails the error is logged and the iteration
// continues without waiting.
//
// The loop must run on the main thread. The only other goroutine is the one
// that produces the refresh signal. When the loop ends that goroutine is
// stopped before the vsync.Gate is stopped.
package hostloop
