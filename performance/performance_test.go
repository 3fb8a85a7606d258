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

package performance_test

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"minuet/curated"
	"minuet/hostloop"
	"minuet/performance"
	"minuet/test"
)

func TestCalcFPS(t *testing.T) {
	fps, acc := performance.CalcFPS(60, 300, 5)
	test.ExpectApproximate(t, fps, 60.0, 0.0001)
	test.ExpectApproximate(t, acc, 100.0, 0.0001)

	fps, acc = performance.CalcFPS(60, 150, 5)
	test.ExpectApproximate(t, fps, 30.0, 0.0001)
	test.ExpectApproximate(t, acc, 50.0, 0.0001)

	fps, acc = performance.CalcFPS(60, 150, 0)
	test.ExpectEquality(t, fps, 0.0)
	test.ExpectEquality(t, acc, 0.0)
}

func TestMeter(t *testing.T) {
	m := performance.NewMeter(4)

	s := m.Summary()
	test.ExpectEquality(t, s.FPS, 0.0)
	test.ExpectEquality(t, s.Frames, uint64(0))

	// first frame of a loop has no elapsed time
	m.Record(hostloop.Frame{Number: 1, Presented: true})
	test.ExpectEquality(t, m.Summary().FPS, 0.0)
	test.ExpectEquality(t, len(m.FrameTimes(nil)), 0)

	for i := range 6 {
		m.Record(hostloop.Frame{
			Number:     uint64(i + 2),
			Elapsed:    0.0625,
			RenderTime: 5 * time.Millisecond,
			Presented:  i%2 == 0,
		})
	}

	s = m.Summary()
	test.ExpectApproximate(t, s.FPS, 16.0, 0.0001)
	test.ExpectEquality(t, s.FrameTime, 62500*time.Microsecond)
	test.ExpectEquality(t, s.RenderTime, 5*time.Millisecond)
	test.ExpectEquality(t, s.Frames, uint64(7))
	test.ExpectEquality(t, s.Presented, uint64(4))
	test.ExpectEquality(t, s.String(), "16.0 fps (frame 62.50ms, render 5.00ms)")

	// window is limited to four frames
	ft := m.FrameTimes(nil)
	test.DemandEquality(t, len(ft), 4)
	for _, v := range ft {
		test.ExpectApproximate(t, v, 62.5, 0.001)
	}

	m.Reset()
	test.ExpectEquality(t, m.Summary(), performance.Summary{})
}

func TestMeterOrder(t *testing.T) {
	m := performance.NewMeter(3)
	for i := range 5 {
		m.Record(hostloop.Frame{Elapsed: float64(i+1) / 1000, Unthrottled: true})
	}

	ft := m.FrameTimes(nil)
	test.DemandEquality(t, len(ft), 3)
	test.ExpectApproximate(t, ft[0], 3.0, 0.001)
	test.ExpectApproximate(t, ft[1], 4.0, 0.001)
	test.ExpectApproximate(t, ft[2], 5.0, 0.001)
	test.ExpectEquality(t, m.Summary().Unthrottled, uint64(5))
}

func TestParseProfile(t *testing.T) {
	p, err := performance.ParseProfile("cpu")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU)

	p, err = performance.ParseProfile("CPU, mem")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileAll)
	test.ExpectEquality(t, p.String(), "all")

	p, err = performance.ParseProfile("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)

	_, err = performance.ParseProfile("trace")
	test.ExpectSuccess(t, curated.Is(err, performance.UnknownProfile))
}

func TestRunProfiler(t *testing.T) {
	header := filepath.Join(t.TempDir(), "test")

	var ran bool
	err := performance.RunProfiler(performance.ProfileAll, header, func() error {
		ran = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ran)

	for _, p := range []performance.Profile{performance.ProfileCPU, performance.ProfileMem} {
		_, err := os.Stat(performance.ProfileFilename(header, p))
		test.ExpectSuccess(t, err, p)
	}

	// error from the run function is returned
	err = performance.RunProfiler(performance.ProfileNone, header, func() error {
		return curated.Errorf(performance.Failed, "test")
	})
	test.ExpectSuccess(t, curated.Is(err, performance.Failed))
}

func TestCheck(t *testing.T) {
	var w strings.Builder
	err := performance.Check(&w, performance.ProfileNone, performance.CheckOptions{
		Width:    8,
		Height:   6,
		Refresh:  100,
		Duration: "200ms",
	})
	test.DemandSuccess(t, err)

	lines := strings.Split(strings.TrimSpace(w.String()), "\n")
	test.DemandEquality(t, len(lines), 2)
	test.ExpectSuccess(t, regexp.MustCompile(`^\d+\.\d\d fps \(\d+ frames in \d+\.\d\d seconds\) \d+\.\d%$`).MatchString(lines[0]), lines[0])
	test.ExpectSuccess(t, strings.HasSuffix(lines[1], "unthrottled 0"), lines[1])
}

func TestCheckArguments(t *testing.T) {
	var w strings.Builder
	err := performance.Check(&w, performance.ProfileNone, performance.CheckOptions{
		Width:    8,
		Height:   6,
		Refresh:  100,
		Duration: "five seconds",
	})
	test.ExpectSuccess(t, curated.Is(err, performance.Failed))

	err = performance.Check(&w, performance.ProfileNone, performance.CheckOptions{
		Width:    8,
		Height:   6,
		Refresh:  0,
		Duration: "1s",
	})
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, w.Len(), 0)
}
