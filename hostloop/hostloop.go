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

package hostloop

import (
	"sync/atomic"
	"time"

	"minuet/assert"
	"minuet/clock"
	"minuet/curated"
	"minuet/gui"
	"minuet/logger"
	"minuet/userinput"
	"minuet/viewport"
	"minuet/vsync"
)

// Camera is the simulation step of the loop. It is given the input and the
// elapsed time once per frame.
type Camera interface {
	Resize(width int, height int)
	Update(in *userinput.Input, elapsed float64)
}

// Renderer produces an image of the scene S as seen by the camera C. Render()
// returns nil if there is no image to show.
type Renderer[S any, C Camera] interface {
	Resize(width int, height int)
	Render(scene S, camera C) *gui.PixelBuffer
}

// Timer is the source of the refresh signal. limiter.Source satisfies this
// interface.
type Timer interface {
	Start() error
	Stop()
}

// ExitCondition returns true if the loop should end.
type ExitCondition func(in *userinput.Input) bool

// EscapePressed is an ExitCondition that is true when the escape key is
// pressed.
func EscapePressed(in *userinput.Input) bool {
	return in.Keyboard.Pressed(userinput.KeyEscape)
}

// Frame is a summary of a single iteration of the loop.
type Frame struct {
	Number   uint64
	Elapsed  float64
	Viewport viewport.Viewport

	// the time taken to render the image
	RenderTime time.Duration

	// the renderer produced an image and it was presented
	Presented bool

	// the refresh signal could not be waited for
	Unthrottled bool
}

// Stats are accumulated over the lifetime of the loop.
type Stats struct {
	Frames      uint64
	Presented   uint64
	Retained    uint64
	Unthrottled uint64
}

// Collaborators of the Loop. Every field is required except OnFrame.
type Collaborators[S any, C Camera] struct {
	Input     *userinput.Input
	Source    gui.InputSource
	Presenter gui.Presentable
	Dims      *viewport.Dimensions
	Clock     *clock.FrameClock
	Gate      *vsync.Gate
	Timer     Timer
	Camera    C
	Renderer  Renderer[S, C]
	Scene     S

	// exit condition tested every frame after the input is reconciled. if
	// nil EscapePressed is used
	Exit ExitCondition

	// called on the main thread at the end of every frame
	OnFrame func(Frame)
}

// Loop is the main loop.
type Loop[S any, C Camera] struct {
	Collaborators[S, C]

	closeRequest atomic.Bool
	stats        Stats
}

// Sentinel error patterns.
const (
	MissingCollaborator = "hostloop: missing collaborator (%s)"
	StartFailed         = "hostloop: cannot start: %v"
	InputFailed         = "hostloop: input: %v"
)

// NewLoop is the preferred method of initialisation for the Loop type.
func NewLoop[S any, C Camera](c Collaborators[S, C]) (*Loop[S, C], error) {
	switch {
	case c.Input == nil:
		return nil, curated.Errorf(MissingCollaborator, "input")
	case c.Source == nil:
		return nil, curated.Errorf(MissingCollaborator, "input source")
	case c.Presenter == nil:
		return nil, curated.Errorf(MissingCollaborator, "presenter")
	case c.Dims == nil:
		return nil, curated.Errorf(MissingCollaborator, "dimensions")
	case c.Clock == nil:
		return nil, curated.Errorf(MissingCollaborator, "clock")
	case c.Gate == nil:
		return nil, curated.Errorf(MissingCollaborator, "gate")
	case c.Timer == nil:
		return nil, curated.Errorf(MissingCollaborator, "timer")
	case c.Renderer == nil:
		return nil, curated.Errorf(MissingCollaborator, "renderer")
	}

	if c.Exit == nil {
		c.Exit = EscapePressed
	}

	return &Loop[S, C]{Collaborators: c}, nil
}

// RequestClose asks the loop to end at the next exit check. Safe to call from
// any goroutine.
func (l *Loop[S, C]) RequestClose() {
	l.closeRequest.Store(true)
}

// Stats returns the statistics for the loop. Should only be called from the
// goroutine that called Run() or after Run() has returned.
func (l *Loop[S, C]) Stats() Stats {
	return l.stats
}

// Run the loop until the exit condition is met. An error is returned if the
// loop cannot start or if the input source fails.
func (l *Loop[S, C]) Run() error {
	assert.MainThread()

	if err := l.Gate.Start(); err != nil {
		return curated.Errorf(StartFailed, err)
	}
	if err := l.Timer.Start(); err != nil {
		l.Gate.Stop()
		return curated.Errorf(StartFailed, err)
	}

	// the timer must have finished before the gate is stopped so that there
	// is no signal racing with the shutdown
	defer func() {
		l.Timer.Stop()
		l.Gate.Stop()
	}()

	for {
		assert.MainThread()

		if err := l.Source.Pump(l.Input); err != nil {
			return curated.Errorf(InputFailed, err)
		}
		l.Input.Reconcile()

		if l.closeRequest.Load() || l.Source.CloseRequested() || l.Exit(l.Input) {
			return nil
		}

		l.iterate()
		l.Input.EndFrame()
	}
}

func (l *Loop[S, C]) iterate() {
	l.stats.Frames++
	f := Frame{Number: l.stats.Frames}

	f.Viewport = l.Dims.Get()
	f.Elapsed = l.Clock.Tick()

	l.Camera.Resize(f.Viewport.Width, f.Viewport.Height)
	l.Camera.Update(l.Input, f.Elapsed)

	l.Renderer.Resize(f.Viewport.Width, f.Viewport.Height)
	start := time.Now()
	buf := l.Renderer.Render(l.Scene, l.Camera)
	f.RenderTime = time.Since(start)

	if err := l.Gate.Wait(); err != nil {
		logger.Log(logger.Allow, "hostloop", err)
		f.Unthrottled = true
		l.stats.Unthrottled++
	}

	if buf != nil {
		if err := l.Presenter.Present(buf); err != nil {
			logger.Log(logger.Allow, "hostloop", err)
		} else {
			f.Presented = true
		}
	}

	if f.Presented {
		l.stats.Presented++
	} else {
		l.stats.Retained++
	}

	if l.OnFrame != nil {
		l.OnFrame(f)
	}
}
