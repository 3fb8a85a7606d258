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

//go:build !windows

package headless

import (
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"

	"minuet/curated"
)

// NoTerminal is returned by OpenTerminal() if the file is not a terminal.
const NoTerminal = "headless: not a terminal: %v"

// Terminal is a terminal in raw, non-blocking mode. It satisfies the reader
// requirements of the Keyboard type.
type Terminal struct {
	input *os.File
	fd    int

	canAttr unix.Termios
	rawAttr unix.Termios
}

// OpenTerminal puts the terminal into raw mode. Close() must be called to
// return the terminal to its previous state.
func OpenTerminal(input *os.File) (*Terminal, error) {
	trm := &Terminal{
		input: input,
		fd:    int(input.Fd()),
	}

	err := termios.Tcgetattr(input.Fd(), &trm.canAttr)
	if err != nil {
		return nil, curated.Errorf(NoTerminal, err)
	}

	trm.rawAttr = trm.canAttr
	termios.Cfmakeraw(&trm.rawAttr)

	// raw mode turns off output processing. we still want newlines to be
	// translated so that log output is readable
	trm.rawAttr.Oflag |= unix.OPOST

	err = termios.Tcsetattr(input.Fd(), termios.TCIFLUSH, &trm.rawAttr)
	if err != nil {
		return nil, curated.Errorf(NoTerminal, err)
	}

	err = unix.SetNonblock(trm.fd, true)
	if err != nil {
		_ = termios.Tcsetattr(input.Fd(), termios.TCIFLUSH, &trm.canAttr)
		return nil, curated.Errorf(NoTerminal, err)
	}

	return trm, nil
}

// Read implements the io.Reader interface. It never blocks. Zero bytes and a
// nil error are returned if there is nothing to read.
func (trm *Terminal) Read(p []byte) (int, error) {
	n, err := unix.Read(trm.fd, p)
	if err != nil {
		if err == unix.EAGAIN || err == unix.EWOULDBLOCK || err == unix.EINTR {
			return 0, nil
		}
		return 0, err
	}
	return n, nil
}

// Close returns the terminal to the state it was in before OpenTerminal().
func (trm *Terminal) Close() error {
	_ = unix.SetNonblock(trm.fd, false)
	return termios.Tcsetattr(trm.input.Fd(), termios.TCIFLUSH, &trm.canAttr)
}
