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

package overlay

import (
	"testing"
	"time"

	"github.com/inkyblackness/imgui-go/v4"

	"minuet/hostloop"
	"minuet/performance"
	"minuet/raytrace"
	"minuet/test"
)

func TestStatistics(t *testing.T) {
	m := performance.NewMeter(4)
	m.Record(hostloop.Frame{Elapsed: 0.0625, Presented: true})
	m.Record(hostloop.Frame{Elapsed: 0.0625, Unthrottled: true})

	s := statistics(m.Summary(), 3, 1500*time.Microsecond)
	test.DemandEquality(t, len(s), 6)
	test.ExpectEquality(t, s[0], "16.0 fps")
	test.ExpectEquality(t, s[1], "frame 62.50ms")
	test.ExpectEquality(t, s[2], "render 0.00ms (last 1.50ms)")
	test.ExpectEquality(t, s[3], "frames 2 (presented 1)")
	test.ExpectEquality(t, s[4], "unthrottled 1")
	test.ExpectEquality(t, s[5], "samples per pixel 3")
}

func TestDraw(t *testing.T) {
	ctx := imgui.CreateContext(nil)
	defer ctx.Destroy()

	io := imgui.CurrentIO()
	io.SetIniFilename("")
	io.SetDisplaySize(imgui.Vec2{X: 800, Y: 600})
	_ = io.Fonts().TextureDataRGBA32()

	m := performance.NewMeter(8)
	m.Record(hostloop.Frame{Elapsed: 0.02})
	rnd := raytrace.NewRenderer()
	cam := raytrace.NewCamera(45, 0.1, 100, nil)
	ov := NewOverlay(m, rnd, cam)

	for range 2 {
		imgui.NewFrame()
		ov.Draw(500, 0, PanelWidth, 600)
		imgui.Render()
	}
	test.ExpectSuccess(t, len(imgui.RenderedDrawData().CommandLists()) > 0)
	test.ExpectEquality(t, len(ov.plot), 1)

	// nothing has been rendered so there are no samples to report
	lines := statistics(m.Summary(), rnd.Samples(), rnd.LastRenderTime())
	test.ExpectEquality(t, lines[5], "samples per pixel 0")

	// nothing in the window was clicked
	test.ExpectSuccess(t, rnd.Settings.Accumulate)
	test.ExpectEquality(t, rnd.Settings.Bounces, 5)
}
