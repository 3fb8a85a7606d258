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

// Package vsync is the handshake between the goroutine that receives the
// display refresh signal and the main loop that waits for it.
//
// The refresh signal goroutine should do nothing except call Gate.Signal().
// The main loop calls Gate.Wait() once per frame, before presenting. On
// shutdown the signal source must be stopped before Gate.Stop() is called so
// that no Signal() races with the teardown.
package vsync
