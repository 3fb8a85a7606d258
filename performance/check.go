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

package performance

import (
	"fmt"
	"io"
	"time"

	"minuet/clock"
	"minuet/curated"
	"minuet/gui"
	"minuet/hostloop"
	"minuet/performance/limiter"
	"minuet/raytrace"
	"minuet/userinput"
	"minuet/viewport"
	"minuet/vsync"
)

// Failed is the pattern for all errors returned by the package.
const Failed = "performance: %v"

// CheckOptions are the arguments to Check().
type CheckOptions struct {
	Width   int
	Height  int
	Refresh float64

	// duration of the measurement. parsed with time.ParseDuration()
	Duration string

	// time to run before measuring. allows the framerate to settle down
	Leadtime time.Duration
}

// there is no input in a performance check
type nullSource struct{}

func (nullSource) Pump(_ *userinput.Input) error {
	return nil
}

func (nullSource) CloseRequested() bool {
	return false
}

// the presented image is discarded
type nullPresenter struct{}

func (nullPresenter) Present(_ *gui.PixelBuffer) error {
	return nil
}

// Check the performance of the host loop with the reference renderer and the
// default scene.
//
// The loop will run for the specified duration and will create a cpu or
// memory profile (or both) as defined by the Profile argument.
func Check(output io.Writer, profile Profile, opts CheckOptions) error {
	dur, err := time.ParseDuration(opts.Duration)
	if err != nil {
		return curated.Errorf(Failed, err)
	}

	in, err := userinput.NewInput(userinput.DefaultKeyboardCapacity, userinput.DefaultPointerCapacity)
	if err != nil {
		return curated.Errorf(Failed, err)
	}

	gate := vsync.NewGate()
	src, err := limiter.NewSource(opts.Refresh, gate)
	if err != nil {
		return curated.Errorf(Failed, err)
	}

	meter := NewMeter(int(opts.Refresh))

	// setup trigger that expires when duration has elapsed. signals true
	// when duration has expired. signals false to indicate that performance
	// measurement should start
	timerChan := make(chan bool, 2)
	time.AfterFunc(opts.Leadtime, func() {
		timerChan <- false
		time.AfterFunc(dur, func() {
			timerChan <- true
		})
	})

	var frames uint64
	var startFrame uint64
	var startTime time.Time
	var measured time.Duration

	loop, err := hostloop.NewLoop(hostloop.Collaborators[*raytrace.Scene, *raytrace.Camera]{
		Input:     in,
		Source:    nullSource{},
		Presenter: nullPresenter{},
		Dims:      viewport.NewDimensions(opts.Width, opts.Height),
		Clock:     clock.NewFrameClock(),
		Gate:      gate,
		Timer:     src,
		Camera:    raytrace.NewCamera(45, 0.1, 100, nil),
		Renderer:  raytrace.NewRenderer(),
		Scene:     raytrace.DefaultScene(),
		Exit: func(_ *userinput.Input) bool {
			select {
			case v := <-timerChan:
				if v {
					measured = time.Since(startTime)
					return true
				}

				// leadtime has concluded. record the start frame
				startFrame = frames
				startTime = time.Now()
				meter.Reset()
			default:
			}
			return false
		},
		OnFrame: func(f hostloop.Frame) {
			frames = f.Number
			meter.Record(f)
		},
	})
	if err != nil {
		return curated.Errorf(Failed, err)
	}

	err = RunProfiler(profile, "performance", loop.Run)
	if err != nil {
		return curated.Errorf(Failed, err)
	}

	numFrames := int(frames - startFrame)
	fps, accuracy := CalcFPS(src.Rate(), numFrames, measured.Seconds())
	fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, measured.Seconds(), accuracy)
	fmt.Fprintf(output, "%s unthrottled %d\n", meter.Summary(), meter.Summary().Unthrottled)

	return nil
}
