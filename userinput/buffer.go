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

package userinput

import (
	"fmt"

	"minuet/curated"
)

// Event is a single raw transition of a key or button.
type Event struct {
	Code   Code
	Down   bool
	Repeat bool
}

func (ev Event) String() string {
	s := "up"
	if ev.Down {
		s = "down"
		if ev.Repeat {
			s = "repeat"
		}
	}
	return fmt.Sprintf("%s %s", ev.Code, s)
}

// InvalidCapacity is returned by NewBuffer() when asked for a buffer that can
// hold no events.
const InvalidCapacity = "userinput: invalid buffer capacity (%d)"

// Buffer is a fixed capacity ring of events. When the buffer is full, pushing
// another event evicts the oldest. Only the most recent Cap() transitions
// since the last Drain() are guaranteed to be preserved.
type Buffer struct {
	ring []Event

	// index of the oldest event in the ring and the number of events held
	head   int
	length int

	// number of events evicted since the last drain
	dropped int
}

// NewBuffer is the preferred method of initialisation for the Buffer type.
func NewBuffer(capacity int) (*Buffer, error) {
	if capacity <= 0 {
		return nil, curated.Errorf(InvalidCapacity, capacity)
	}
	return &Buffer{
		ring: make([]Event, capacity),
	}, nil
}

// Push adds an event to the buffer, overwriting the oldest event if the
// buffer is full.
func (b *Buffer) Push(ev Event) {
	if b.length == len(b.ring) {
		b.ring[b.head] = ev
		b.head = (b.head + 1) % len(b.ring)
		b.dropped++
		return
	}
	b.ring[(b.head+b.length)%len(b.ring)] = ev
	b.length++
}

// Drain returns the events pushed since the previous drain, oldest first, and
// empties the buffer. The returned slice belongs to the caller.
func (b *Buffer) Drain() []Event {
	evs := make([]Event, b.length)
	for i := range evs {
		evs[i] = b.ring[(b.head+i)%len(b.ring)]
	}
	b.head = 0
	b.length = 0
	b.dropped = 0
	return evs
}

// Len returns the number of events waiting to be drained.
func (b *Buffer) Len() int {
	return b.length
}

// Cap returns the capacity of the buffer.
func (b *Buffer) Cap() int {
	return len(b.ring)
}

// Dropped returns the number of events that have been overwritten since the
// last drain.
func (b *Buffer) Dropped() int {
	return b.dropped
}
