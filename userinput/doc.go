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

// Package userinput turns the raw, possibly repeated and possibly bursty key
// and button transitions delivered by the GUI implementation into stable
// per-frame query results.
//
// Raw transitions are pushed into a Buffer as they arrive. Once per frame the
// Buffer is drained and the events are folded into a Snapshot. The Snapshot
// can then be queried for the rest of the frame:
//
//	IsDown()    the key is down at the end of the frame
//	WentDown()  the key was up and is now down, regardless of repeat
//	Pressed()   a fresh, non-repeat press occurred this frame
//	Released()  the key was down and is now up
//	HadRepeat() the OS re-delivered a down event for a held key
//
// Pressed() and WentDown() differ only in how they treat key repeat. A
// consumer that wants debounced edges should use Pressed().
//
// The edges are valid only for the frame in which they were computed. They
// are cleared by the next call to Reconcile() and by the explicit end of frame
// reset, ClearEdges().
//
// The Input type bundles a Buffer and Snapshot for each device class
// (keyboard and pointer buttons) with the Cursor state. It is the type
// passed around by the rest of the program.
//
// Nothing in this package is safe for concurrent use. Input should be owned by
// the goroutine that pumps the GUI events, which is normally the main thread.
//
// The GUI implementation in use during development was SDL and so there will
// be a bias towards that system. In particular, keyboard codes are USB HID
// usage IDs, which is what SDL uses for scancodes.
package userinput
