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

// Package clock measures the time between frames.
package clock

import (
	"time"
)

// FrameClock returns the time elapsed between successive calls to Tick().
type FrameClock struct {
	now     func() time.Time
	last    time.Time
	started bool
}

// NewFrameClock is the preferred method of initialisation for the FrameClock
// type. The clock reads the monotonic time from time.Now().
func NewFrameClock() *FrameClock {
	return NewFrameClockWith(time.Now)
}

// NewFrameClockWith creates a FrameClock that reads time from the supplied
// function. Useful for testing.
func NewFrameClockWith(now func() time.Time) *FrameClock {
	return &FrameClock{
		now: now,
	}
}

// TickDuration returns the time since the previous tick. The first tick
// returns zero. A clock that appears to go backwards also returns zero.
func (clk *FrameClock) TickDuration() time.Duration {
	t := clk.now()
	if !clk.started {
		clk.started = true
		clk.last = t
		return 0
	}

	d := t.Sub(clk.last)
	clk.last = t
	return max(d, 0)
}

// Tick returns the time since the previous tick in seconds.
func (clk *FrameClock) Tick() float64 {
	return clk.TickDuration().Seconds()
}
