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
	"time"

	"minuet/hostloop"
)

// Summary of the frames recorded by a Meter. Times are averages over the
// window.
type Summary struct {
	FPS        float64
	FrameTime  time.Duration
	RenderTime time.Duration

	// totals since the meter was created or reset
	Frames      uint64
	Presented   uint64
	Unthrottled uint64
}

func (s Summary) String() string {
	return fmt.Sprintf("%.1f fps (frame %.2fms, render %.2fms)",
		s.FPS,
		float64(s.FrameTime)/float64(time.Millisecond),
		float64(s.RenderTime)/float64(time.Millisecond))
}

type sample struct {
	elapsed float64
	render  time.Duration
}

// Meter keeps a rolling window of frame times. It is intended to be fed by
// the OnFrame callback of the host loop. Not safe for concurrent use.
type Meter struct {
	window []sample
	next   int
	count  int

	frames      uint64
	presented   uint64
	unthrottled uint64
}

// NewMeter is the preferred method of initialisation for the Meter type. The
// size argument is the number of frames in the rolling window.
func NewMeter(size int) *Meter {
	return &Meter{
		window: make([]sample, max(size, 1)),
	}
}

// Record a frame. Frames with no elapsed time, such as the first frame of a
// loop, are counted but are not added to the window.
func (m *Meter) Record(f hostloop.Frame) {
	m.frames++
	if f.Presented {
		m.presented++
	}
	if f.Unthrottled {
		m.unthrottled++
	}

	if f.Elapsed <= 0 {
		return
	}

	m.window[m.next] = sample{elapsed: f.Elapsed, render: f.RenderTime}
	m.next = (m.next + 1) % len(m.window)
	m.count = min(m.count+1, len(m.window))
}

// Reset the meter.
func (m *Meter) Reset() {
	clear(m.window)
	m.next = 0
	m.count = 0
	m.frames = 0
	m.presented = 0
	m.unthrottled = 0
}

// Summary of the frames in the window.
func (m *Meter) Summary() Summary {
	s := Summary{
		Frames:      m.frames,
		Presented:   m.presented,
		Unthrottled: m.unthrottled,
	}

	if m.count == 0 {
		return s
	}

	var elapsed float64
	var render time.Duration
	for _, v := range m.window[:m.count] {
		elapsed += v.elapsed
		render += v.render
	}

	s.FPS = float64(m.count) / elapsed
	s.FrameTime = time.Duration(elapsed / float64(m.count) * float64(time.Second))
	s.RenderTime = render / time.Duration(m.count)

	return s
}

// FrameTimes appends the frame times in the window, in milliseconds, to the
// dst slice. The oldest value is first. Suitable for plotting.
func (m *Meter) FrameTimes(dst []float32) []float32 {
	start := m.next - m.count
	if start < 0 {
		start += len(m.window)
	}
	for i := range m.count {
		v := m.window[(start+i)%len(m.window)]
		dst = append(dst, float32(v.elapsed*1000))
	}
	return dst
}
