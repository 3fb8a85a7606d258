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

package vsync

import (
	"sync"

	"minuet/curated"
)

// State of the Gate.
type State int

// List of valid State values.
const (
	Idle State = iota
	Running
	Stopped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	}
	return "unknown"
}

// Sentinel error patterns returned by the Gate.
const (
	NotRunning  = "vsync: gate is not running (%v)"
	NotStarting = "vsync: gate cannot be started (%v)"
)

// Gate paces a single waiting goroutine to a periodic signal that arrives on
// another goroutine. Every call to Signal() advances a generation counter and
// Wait() returns once the counter has moved past the value it last saw.
//
// Several signals arriving while the waiter is busy are coalesced into a
// single return from Wait(). A signal that arrives before the waiter calls
// Wait() is not lost.
type Gate struct {
	crit sync.Mutex
	cond *sync.Cond

	state State

	// generation is advanced by every Signal(). observed is the generation
	// that the waiter saw on its last return from Wait()
	generation uint64
	observed   uint64
}

// NewGate is the preferred method of initialisation for the Gate type. The
// Gate begins in the Idle state.
func NewGate() *Gate {
	g := &Gate{}
	g.cond = sync.NewCond(&g.crit)
	return g
}

// Start moves the Gate from Idle to Running. Starting a gate that is already
// running or that has been stopped is an error.
func (g *Gate) Start() error {
	g.crit.Lock()
	defer g.crit.Unlock()

	if g.state != Idle {
		return curated.Errorf(NotStarting, g.state)
	}
	g.state = Running

	return nil
}

// Signal advances the generation and wakes the waiter. It never blocks for
// longer than it takes to update the counter. Signalling a gate that is not
// running does nothing and returns an error.
func (g *Gate) Signal() error {
	g.crit.Lock()
	defer g.crit.Unlock()

	if g.state != Running {
		return curated.Errorf(NotRunning, g.state)
	}
	g.generation++
	g.cond.Signal()

	return nil
}

// Wait blocks until the generation has advanced since the last return from
// Wait(). It returns an error without blocking if the gate is not running and
// returns an error if Stop() is called while waiting.
//
// Only one goroutine should call Wait().
func (g *Gate) Wait() error {
	g.crit.Lock()
	defer g.crit.Unlock()

	for g.state == Running && g.generation == g.observed {
		g.cond.Wait()
	}

	if g.state != Running {
		return curated.Errorf(NotRunning, g.state)
	}
	g.observed = g.generation

	return nil
}

// Stop moves the Gate to the Stopped state and releases a waiting goroutine.
// It is safe to call Stop() more than once.
func (g *Gate) Stop() {
	g.crit.Lock()
	defer g.crit.Unlock()
	g.state = Stopped
	g.cond.Broadcast()
}

// State returns the current state of the Gate.
func (g *Gate) State() State {
	g.crit.Lock()
	defer g.crit.Unlock()
	return g.state
}

// Generation returns the number of signals received since the gate was
// started.
func (g *Gate) Generation() uint64 {
	g.crit.Lock()
	defer g.crit.Unlock()
	return g.generation
}
