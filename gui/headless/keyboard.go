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

package headless

import (
	"errors"
	"io"
	"time"

	"minuet/curated"
	"minuet/logger"
	"minuet/userinput"
)

// DefaultReleaseTimeout is longer than the initial auto-repeat delay of most
// terminals.
const DefaultReleaseTimeout = 600 * time.Millisecond

// KeyboardFailed is returned by Pump() if the reader fails.
const KeyboardFailed = "headless: keyboard: %v"

// Keyboard is an InputSource that reads key presses from a non-blocking
// reader. A reader with nothing to read should return zero bytes and either a
// nil error or io.EOF.
type Keyboard struct {
	r   io.Reader
	buf []byte
	tr  *tracker

	// time source. replaced for testing
	now func() time.Time

	interrupted bool
}

// NewKeyboard is the preferred method of initialisation for the Keyboard type.
func NewKeyboard(r io.Reader, releaseTimeout time.Duration) *Keyboard {
	return &Keyboard{
		r:   r,
		buf: make([]byte, 64),
		tr:  newTracker(releaseTimeout),
		now: time.Now,
	}
}

// Pump implements the gui.InputSource interface.
func (kb *Keyboard) Pump(in *userinput.Input) error {
	var data []byte

	for {
		n, err := kb.r.Read(kb.buf)
		data = append(data, kb.buf[:n]...)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break // for loop
			}
			return curated.Errorf(KeyboardFailed, err)
		}
		if n < len(kb.buf) {
			break // for loop
		}
	}

	d := decode(data)
	if d.interrupt && !kb.interrupted {
		logger.Log(logger.Allow, "headless", "interrupted from keyboard")
		kb.interrupted = true
		kb.Release(in)
		return nil
	}

	kb.tr.update(in, d.codes, kb.now())

	return nil
}

// CloseRequested implements the gui.InputSource interface. Returns true once
// ctrl-c has been typed.
func (kb *Keyboard) CloseRequested() bool {
	return kb.interrupted
}

// Release sends an up event for every held key.
func (kb *Keyboard) Release(in *userinput.Input) {
	kb.tr.releaseAll(in)
}
