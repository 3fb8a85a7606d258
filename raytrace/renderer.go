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

package raytrace

import (
	"math"
	"runtime"
	"sync"
	"time"

	"minuet/gui"
)

// Settings for the Renderer. Settings can be changed between frames.
type Settings struct {
	// accumulate samples over successive frames while the camera is still
	Accumulate bool

	// rays that miss every sphere collect light from the sky
	SkyLight bool

	// maximum number of bounces per ray
	Bounces int

	// render rows of the image on more than one goroutine
	Parallel bool
}

var skyColor = Vec3{0.6, 0.7, 0.9}

// Renderer is a simple path tracer. Each frame it adds one sample per pixel
// to an accumulation buffer and produces an image of the average.
type Renderer struct {
	Settings Settings

	width  int
	height int

	image *gui.PixelBuffer
	accum []Vec3

	// frameIndex is the number of samples in the accumulation buffer,
	// including the one being rendered. a value of one means that the
	// accumulation buffer is cleared before rendering
	frameIndex uint32

	// the version of the camera used for the previous frame
	cameraVersion uint64

	// number of samples in each pixel of the most recent image
	samples uint32

	lastRenderTime time.Duration
}

// NewRenderer is the preferred method of initialisation for the Renderer
// type.
func NewRenderer() *Renderer {
	return &Renderer{
		Settings: Settings{
			Accumulate: true,
			SkyLight:   true,
			Bounces:    5,
			Parallel:   true,
		},
		frameIndex: 1,
	}
}

// Resize the image. Nothing happens if the size hasn't changed.
func (rnd *Renderer) Resize(width, height int) {
	if width == rnd.width && height == rnd.height {
		return
	}
	rnd.width = width
	rnd.height = height
	rnd.frameIndex = 1
	rnd.samples = 0

	if width <= 0 || height <= 0 {
		rnd.image = nil
		rnd.accum = nil
		return
	}

	rnd.image = gui.NewPixelBuffer(width, height)
	rnd.accum = make([]Vec3, width*height)
}

// ResetFrameIndex discards the accumulated samples.
func (rnd *Renderer) ResetFrameIndex() {
	rnd.frameIndex = 1
}

// FrameIndex returns the number of samples that will be in the accumulation
// buffer after the next frame is rendered.
func (rnd *Renderer) FrameIndex() uint32 {
	return rnd.frameIndex
}

// Samples returns the number of samples accumulated in each pixel of the
// image returned by the most recent call to Render(). Zero if nothing has
// been rendered since the last resize.
func (rnd *Renderer) Samples() uint32 {
	return rnd.samples
}

// LastRenderTime returns the time taken by the most recent call to Render().
func (rnd *Renderer) LastRenderTime() time.Duration {
	return rnd.lastRenderTime
}

// Render the scene from the point of view of the camera. Returns nil if there
// is nothing to render, either because the image is empty or because the
// camera hasn't been resized to match the renderer.
func (rnd *Renderer) Render(scene *Scene, camera *Camera) *gui.PixelBuffer {
	start := time.Now()
	defer func() {
		rnd.lastRenderTime = time.Since(start)
	}()

	if rnd.image == nil || len(camera.RayDirections()) != rnd.width*rnd.height {
		return nil
	}

	if camera.Version() != rnd.cameraVersion {
		rnd.cameraVersion = camera.Version()
		rnd.frameIndex = 1
	}

	if rnd.frameIndex == 1 {
		clear(rnd.accum)
	}

	if rnd.Settings.Parallel {
		bands := min(runtime.GOMAXPROCS(0), rnd.height)
		var wg sync.WaitGroup
		for b := range bands {
			wg.Add(1)
			go func(top, bottom int) {
				defer wg.Done()
				for y := top; y < bottom; y++ {
					rnd.renderRow(scene, camera, y)
				}
			}(b*rnd.height/bands, (b+1)*rnd.height/bands)
		}
		wg.Wait()
	} else {
		for y := range rnd.height {
			rnd.renderRow(scene, camera, y)
		}
	}

	rnd.samples = rnd.frameIndex
	if rnd.Settings.Accumulate {
		rnd.frameIndex++
	} else {
		rnd.frameIndex = 1
	}

	return rnd.image
}

func toByte(v float32) uint8 {
	return uint8(min(max(v, 0), 1) * 255)
}

func (rnd *Renderer) renderRow(scene *Scene, camera *Camera, y int) {
	rays := camera.RayDirections()
	n := float32(rnd.frameIndex)
	for x := range rnd.width {
		i := x + y*rnd.width
		rnd.accum[i] = rnd.accum[i].Add(rnd.perPixel(scene, camera, rays[i], uint32(i)))
		c := rnd.accum[i].Scale(1 / n)
		rnd.image.Set(x, y, toByte(c.X), toByte(c.Y), toByte(c.Z))
	}
}

// hit is the result of tracing a single ray.
type hit struct {
	distance float32
	sphere   int
	position Vec3
	normal   Vec3
}

func (rnd *Renderer) perPixel(scene *Scene, camera *Camera, direction Vec3, seed uint32) Vec3 {
	var light Vec3
	origin := camera.Position()
	contribution := Vec3{1, 1, 1}

	seed *= rnd.frameIndex

	// the clipping planes only apply to the primary ray
	near, far := camera.NearClip, camera.FarClip

	for i := range rnd.Settings.Bounces {
		seed += uint32(i)

		h, ok := traceRay(scene, origin, direction, near, far)
		if !ok {
			if rnd.Settings.SkyLight {
				light = light.Add(skyColor.Mul(contribution))
			}
			break
		}

		mat := scene.Materials[scene.Spheres[h.sphere].Material]
		contribution = contribution.Mul(mat.Albedo)
		light = light.Add(mat.Emission().Mul(contribution))

		origin = h.position.Add(h.normal.Scale(0.0001))
		direction = h.normal.Add(randomInUnitSphere(&seed)).Normalize()
		near, far = 0, math.MaxFloat32
	}

	return light
}

// traceRay returns the closest intersection with a sphere between the near
// and far distances.
func traceRay(scene *Scene, origin Vec3, direction Vec3, near float32, far float32) (hit, bool) {
	closest := -1
	distance := far

	for i, s := range scene.Spheres {
		o := origin.Sub(s.Position)
		a := direction.Dot(direction)
		b := 2 * o.Dot(direction)
		c := o.Dot(o) - s.Radius*s.Radius

		disc := b*b - 4*a*c
		if disc < 0 {
			continue
		}

		t := (-b - float32(math.Sqrt(float64(disc)))) / (2 * a)
		if t > near && t < distance {
			distance = t
			closest = i
		}
	}

	if closest < 0 {
		return hit{distance: -1}, false
	}

	s := scene.Spheres[closest]
	p := origin.Sub(s.Position).Add(direction.Scale(distance))
	return hit{
		distance: distance,
		sphere:   closest,
		normal:   p.Normalize(),
		position: p.Add(s.Position),
	}, true
}
