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

// Package limiter provides the periodic signal that paces the main loop to
// the display refresh rate.
//
// A new Source is created with the rate and the target of the signal (error
// handling removed for clarity):
//
//	gate := vsync.NewGate()
//	src, _ := limiter.NewSource(60, gate)
//	src.Start()
//
// The Source runs its own goroutine and does nothing on that goroutine except
// call Signal() on the target. Stop() does not return until the goroutine has
// finished so that the target can be torn down safely afterwards.
package limiter

import (
	"sync"
	"sync/atomic"
	"time"

	"minuet/curated"
)

// Signaller is the target of a Source. vsync.Gate satisfies this interface.
type Signaller interface {
	Signal() error
}

// Sentinel error patterns.
const (
	InvalidRate    = "limiter: invalid rate (%.2fHz)"
	NoTarget       = "limiter: no signal target"
	AlreadyStarted = "limiter: source already started"
)

// Source calls Signal() on its target at a fixed rate.
type Source struct {
	target Signaller

	crit    sync.Mutex
	hz      float64
	running bool

	quit chan bool
	done chan bool
	rate chan time.Duration

	// number of times the target has been signalled and the number of times
	// the signal was refused
	ticks   atomic.Uint64
	refused atomic.Uint64
}

// NewSource is the preferred method of initialisation for the Source type.
func NewSource(hz float64, target Signaller) (*Source, error) {
	if hz <= 0 {
		return nil, curated.Errorf(InvalidRate, hz)
	}
	if target == nil {
		return nil, curated.Errorf(NoTarget)
	}
	return &Source{
		target: target,
		hz:     hz,
	}, nil
}

func period(hz float64) time.Duration {
	return time.Duration(float64(time.Second) / hz)
}

// Start the goroutine that signals the target. A Source can only be started
// once.
func (src *Source) Start() error {
	src.crit.Lock()
	defer src.crit.Unlock()

	if src.running || src.done != nil {
		return curated.Errorf(AlreadyStarted)
	}

	src.running = true
	src.quit = make(chan bool)
	src.done = make(chan bool)
	src.rate = make(chan time.Duration, 1)

	go func(p time.Duration) {
		defer close(src.done)

		t := time.NewTicker(p)
		defer t.Stop()

		for {
			select {
			case <-src.quit:
				return
			case p := <-src.rate:
				t.Reset(p)
			case <-t.C:
				src.ticks.Add(1)
				if src.target.Signal() != nil {
					src.refused.Add(1)
				}
			}
		}
	}(period(src.hz))

	return nil
}

// Stop the goroutine and wait for it to finish. It is safe to call Stop()
// more than once and on a Source that was never started.
func (src *Source) Stop() {
	src.crit.Lock()
	defer src.crit.Unlock()

	if !src.running {
		return
	}
	src.running = false

	close(src.quit)
	<-src.done
}

// SetRate changes the rate of the signal. It can be called whether or not the
// Source is running.
func (src *Source) SetRate(hz float64) error {
	if hz <= 0 {
		return curated.Errorf(InvalidRate, hz)
	}

	src.crit.Lock()
	defer src.crit.Unlock()

	src.hz = hz
	if src.running {
		// drop any rate change that the goroutine hasn't seen yet
		select {
		case <-src.rate:
		default:
		}
		src.rate <- period(hz)
	}

	return nil
}

// Rate returns the rate of the signal in Hz.
func (src *Source) Rate() float64 {
	src.crit.Lock()
	defer src.crit.Unlock()
	return src.hz
}

// Ticks returns the number of times the target has been signalled and the
// number of those signals that were refused by the target.
func (src *Source) Ticks() (uint64, uint64) {
	return src.ticks.Load(), src.refused.Load()
}
