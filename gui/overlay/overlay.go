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
	"fmt"
	"time"

	"github.com/inkyblackness/imgui-go/v4"

	"minuet/performance"
	"minuet/raytrace"
)

const overlayTitle = "Minuet"

// PanelWidth is the width in pixels the overlay needs to the side of the
// rendered image.
const PanelWidth = 300

// limits of the settings sliders.
const (
	minBounces     = 1
	maxBounces     = 10
	minCameraSpeed = 0.5
	maxCameraSpeed = 20.0
)

// Overlay draws the window. The renderer and camera are changed directly from
// the window so Draw() must be called on the same goroutine as the host loop.
type Overlay struct {
	meter    *performance.Meter
	renderer *raytrace.Renderer
	camera   *raytrace.Camera

	// frame times are copied to plot every frame
	plot []float32
}

// NewOverlay is the preferred method of initialisation for the Overlay type.
func NewOverlay(meter *performance.Meter, renderer *raytrace.Renderer, camera *raytrace.Camera) *Overlay {
	return &Overlay{
		meter:    meter,
		renderer: renderer,
		camera:   camera,
	}
}

// statistics returns the lines of text shown at the top of the window.
func statistics(s performance.Summary, samples uint32, lastRender time.Duration) []string {
	return []string{
		fmt.Sprintf("%.1f fps", s.FPS),
		fmt.Sprintf("frame %.2fms", milliseconds(s.FrameTime)),
		fmt.Sprintf("render %.2fms (last %.2fms)", milliseconds(s.RenderTime), milliseconds(lastRender)),
		fmt.Sprintf("frames %d (presented %d)", s.Frames, s.Presented),
		fmt.Sprintf("unthrottled %d", s.Unthrottled),
		fmt.Sprintf("samples per pixel %d", samples),
	}
}

func milliseconds(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000
}

// Draw the window in the area given. Must be called between imgui.NewFrame()
// and imgui.Render().
func (ov *Overlay) Draw(x, y, width, height float32) {
	imgui.SetNextWindowPosV(imgui.Vec2{X: x, Y: y}, imgui.ConditionAlways, imgui.Vec2{})
	imgui.SetNextWindowSizeV(imgui.Vec2{X: width, Y: height}, imgui.ConditionAlways)
	flags := imgui.WindowFlagsNoMove | imgui.WindowFlagsNoResize | imgui.WindowFlagsNoCollapse
	if imgui.BeginV(overlayTitle, nil, flags) {
		ov.drawStatistics()
		imgui.Separator()
		ov.drawSettings()
	}
	imgui.End()
}

func (ov *Overlay) drawStatistics() {
	for _, s := range statistics(ov.meter.Summary(), ov.renderer.Samples(), ov.renderer.LastRenderTime()) {
		imgui.Text(s)
	}

	ov.plot = ov.meter.FrameTimes(ov.plot[:0])
	imgui.PushItemWidth(-1)
	imgui.PlotLines("##frametimes", ov.plot)
	imgui.PopItemWidth()
}

func (ov *Overlay) drawSettings() {
	settings := &ov.renderer.Settings

	if imgui.Checkbox("Accumulate", &settings.Accumulate) {
		ov.renderer.ResetFrameIndex()
	}
	if imgui.Checkbox("Sky light", &settings.SkyLight) {
		ov.renderer.ResetFrameIndex()
	}
	imgui.Checkbox("Parallel", &settings.Parallel)

	bounces := int32(settings.Bounces)
	if imgui.SliderInt("Bounces", &bounces, minBounces, maxBounces) {
		settings.Bounces = int(bounces)
		ov.renderer.ResetFrameIndex()
	}

	imgui.SliderFloat("Speed", &ov.camera.Speed, minCameraSpeed, maxCameraSpeed)

	if imgui.Button("Reset") {
		ov.renderer.ResetFrameIndex()
	}
}
