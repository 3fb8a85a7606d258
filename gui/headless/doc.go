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

// Package headless is a GUI implementation that needs no display. Input is
// read from a terminal in raw mode and presented frames are scaled onto an
// off-screen surface, which can be saved as a PNG file.
//
// Terminals do not report key releases. A key is considered to be held for as
// long as the terminal keeps sending it (ie. the auto-repeat of the terminal)
// and released when nothing has been received for that key for the release
// timeout.
package headless
