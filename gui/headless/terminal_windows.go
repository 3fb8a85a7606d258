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

//go:build windows

package headless

import (
	"os"

	"minuet/curated"
)

// NoTerminal is returned by OpenTerminal() if the file is not a terminal.
const NoTerminal = "headless: not a terminal: %v"

// Terminal is not supported on windows.
type Terminal struct{}

// OpenTerminal always fails on windows.
func OpenTerminal(input *os.File) (*Terminal, error) {
	return nil, curated.Errorf(NoTerminal, "raw terminal input not supported on windows")
}

// Read implements the io.Reader interface.
func (trm *Terminal) Read(p []byte) (int, error) {
	return 0, nil
}

// Close does nothing.
func (trm *Terminal) Close() error {
	return nil
}
