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
	"time"

	"minuet/userinput"
)

// control bytes sent by a terminal in raw mode
const (
	ctrlC     = 0x03
	tab       = 0x09
	lineFeed  = 0x0a
	carriage  = 0x0d
	escape    = 0x1b
	backspace = 0x7f
)

// decoded is the result of decoding bytes from the terminal.
type decoded struct {
	codes     []userinput.Code
	interrupt bool
}

// decode the bytes read from a terminal in raw mode. an escape byte on its
// own is the escape key. escape sequences for the arrow keys are recognised
// and all other escape sequences are ignored.
func decode(b []byte) decoded {
	var d decoded

	for i := 0; i < len(b); i++ {
		switch c := b[i]; c {
		case ctrlC:
			d.interrupt = true
		case tab:
			d.codes = append(d.codes, userinput.KeyTab)
		case lineFeed, carriage:
			d.codes = append(d.codes, userinput.KeyReturn)
		case backspace:
			d.codes = append(d.codes, userinput.KeyBackspace)
		case escape:
			if i+1 >= len(b) || (b[i+1] != '[' && b[i+1] != 'O') {
				d.codes = append(d.codes, userinput.KeyEscape)
				continue // for loop
			}

			// skip the CSI and find the final byte of the sequence
			j := i + 2
			for j < len(b) && (b[j] < 0x40 || b[j] > 0x7e) {
				j++
			}
			if j >= len(b) {
				i = len(b)
				continue // for loop
			}

			switch b[j] {
			case 'A':
				d.codes = append(d.codes, userinput.KeyUp)
			case 'B':
				d.codes = append(d.codes, userinput.KeyDown)
			case 'C':
				d.codes = append(d.codes, userinput.KeyRight)
			case 'D':
				d.codes = append(d.codes, userinput.KeyLeft)
			}
			i = j
		default:
			if code, ok := userinput.KeyFromRune(rune(c)); ok {
				d.codes = append(d.codes, code)
			}
		}
	}

	return d
}

// tracker turns the stream of key codes from a terminal into down, repeat
// and up events.
type tracker struct {
	timeout time.Duration
	held    map[userinput.Code]time.Time
}

func newTracker(timeout time.Duration) *tracker {
	return &tracker{
		timeout: timeout,
		held:    make(map[userinput.Code]time.Time),
	}
}

// update the tracker with the codes received at time now. releases are sent
// before presses.
func (tr *tracker) update(in *userinput.Input, codes []userinput.Code, now time.Time) {
	for code, t := range tr.held {
		if now.Sub(t) >= tr.timeout {
			delete(tr.held, code)
			in.PushKey(code, false, false)
		}
	}

	for _, code := range codes {
		_, repeat := tr.held[code]
		tr.held[code] = now
		in.PushKey(code, true, repeat)
	}
}

// releaseAll sends an up event for every held key.
func (tr *tracker) releaseAll(in *userinput.Input) {
	for code := range tr.held {
		in.PushKey(code, false, false)
	}
	clear(tr.held)
}
