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

	"minuet/gui"
	"minuet/userinput"
)

// scale applied to the pointer movement before it is used for rotation.
const pointerScale = 0.002

var worldUp = Vec3{0, 1, 0}

// Camera is a fly-through camera. It is controlled only while the right
// pointer button is held down: W/S move forwards and backwards, A/D move left
// and right, Q/E move down and up, and moving the pointer turns the camera.
type Camera struct {
	VerticalFOV float32
	NearClip    float32
	FarClip     float32

	// Speed is in units per second. RotationSpeed is applied to the scaled
	// pointer movement
	Speed         float32
	RotationSpeed float32

	position Vec3
	forward  Vec3

	width  int
	height int

	// one ray direction per pixel in the viewport
	rays []Vec3

	// version is incremented whenever the ray directions change
	version uint64

	lastX, lastY float32

	platform gui.CursorControl
	hidden   bool
}

// NewCamera is the preferred method of initialisation for the Camera type.
// The platform argument can be nil.
func NewCamera(verticalFOV, nearClip, farClip float32, platform gui.CursorControl) *Camera {
	return &Camera{
		VerticalFOV:   verticalFOV,
		NearClip:      nearClip,
		FarClip:       farClip,
		Speed:         5,
		RotationSpeed: 0.3,
		position:      Vec3{0, 0, 20},
		forward:       Vec3{0, 0, -1},
		platform:      platform,
	}
}

// Position returns the position of the camera.
func (cam *Camera) Position() Vec3 {
	return cam.position
}

// Forward returns the unit vector in the direction the camera is facing.
func (cam *Camera) Forward() Vec3 {
	return cam.forward
}

// RayDirections returns the direction of the ray for every pixel in the
// viewport. The slice is indexed by x + y*width with y zero at the top of
// the viewport. The slice must not be modified.
func (cam *Camera) RayDirections() []Vec3 {
	return cam.rays
}

// Version changes whenever the ray directions change.
func (cam *Camera) Version() uint64 {
	return cam.version
}

// Resize the viewport. The ray directions are only recalculated if the size
// has changed.
func (cam *Camera) Resize(width, height int) {
	if width == cam.width && height == cam.height {
		return
	}
	cam.width = width
	cam.height = height
	cam.recalculate()
}

func (cam *Camera) setCursor(hidden bool) {
	if cam.hidden == hidden {
		return
	}
	cam.hidden = hidden
	if cam.platform == nil {
		return
	}
	if hidden {
		cam.platform.HideCursor()
	} else {
		cam.platform.ShowCursor()
	}
}

// Update the camera from the user input. The elapsed time is in seconds.
func (cam *Camera) Update(in *userinput.Input, elapsed float64) {
	dx := (in.Cursor.X - cam.lastX) * pointerScale
	dy := (in.Cursor.Y - cam.lastY) * pointerScale
	cam.lastX = in.Cursor.X
	cam.lastY = in.Cursor.Y

	if !in.Pointer.IsDown(userinput.ButtonRight) {
		cam.setCursor(false)
		return
	}
	cam.setCursor(true)

	right := cam.forward.Cross(worldUp).Normalize()
	step := cam.Speed * float32(elapsed)
	moved := false

	kb := &in.Keyboard
	if kb.IsDown(userinput.KeyW) {
		cam.position = cam.position.Add(cam.forward.Scale(step))
		moved = true
	} else if kb.IsDown(userinput.KeyS) {
		cam.position = cam.position.Sub(cam.forward.Scale(step))
		moved = true
	}
	if kb.IsDown(userinput.KeyA) {
		cam.position = cam.position.Sub(right.Scale(step))
		moved = true
	} else if kb.IsDown(userinput.KeyD) {
		cam.position = cam.position.Add(right.Scale(step))
		moved = true
	}
	if kb.IsDown(userinput.KeyQ) {
		cam.position = cam.position.Sub(worldUp.Scale(step))
		moved = true
	} else if kb.IsDown(userinput.KeyE) {
		cam.position = cam.position.Add(worldUp.Scale(step))
		moved = true
	}

	if dx != 0 || dy != 0 {
		pitch := dy * cam.RotationSpeed
		yaw := dx * cam.RotationSpeed
		q := axisAngle(-pitch, right).mul(axisAngle(-yaw, worldUp)).normalize()
		cam.forward = q.rotate(cam.forward).Normalize()
		moved = true
	}

	if moved {
		cam.recalculate()
	}
}

func (cam *Camera) recalculate() {
	cam.version++

	n := cam.width * cam.height
	if n <= 0 {
		cam.rays = cam.rays[:0]
		return
	}
	if cap(cam.rays) < n {
		cam.rays = make([]Vec3, n)
	}
	cam.rays = cam.rays[:n]

	tanHalf := float32(math.Tan(float64(cam.VerticalFOV) * math.Pi / 360))
	aspect := float32(cam.width) / float32(cam.height)

	right := cam.forward.Cross(worldUp).Normalize()
	up := right.Cross(cam.forward)

	for y := range cam.height {
		vy := (1 - float32(y)/float32(cam.height)*2) * tanHalf
		for x := range cam.width {
			vx := (float32(x)/float32(cam.width)*2 - 1) * tanHalf * aspect
			d := right.Scale(vx).Add(up.Scale(vy)).Add(cam.forward)
			cam.rays[x+y*cam.width] = d.Normalize()
		}
	}
}
