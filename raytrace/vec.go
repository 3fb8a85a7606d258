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

import "math"

// Vec3 is a three component vector of float32.
type Vec3 struct {
	X, Y, Z float32
}

// Add returns v+w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Sub returns v-w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Scale returns v*s.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Mul returns the component-wise product of v and w.
func (v Vec3) Mul(w Vec3) Vec3 {
	return Vec3{v.X * w.X, v.Y * w.Y, v.Z * w.Z}
}

// Dot product.
func (v Vec3) Dot(w Vec3) float32 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross product.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

// Length of the vector.
func (v Vec3) Length() float32 {
	return float32(math.Sqrt(float64(v.Dot(v))))
}

// Normalize returns the unit vector in the direction of v. The zero vector is
// returned unchanged.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// quat is a rotation quaternion.
type quat struct {
	w float32
	v Vec3
}

// axisAngle returns the rotation of angle radians about the axis. The axis
// must be a unit vector.
func axisAngle(angle float32, axis Vec3) quat {
	s, c := math.Sincos(float64(angle) / 2)
	return quat{w: float32(c), v: axis.Scale(float32(s))}
}

func (q quat) mul(r quat) quat {
	return quat{
		w: q.w*r.w - q.v.Dot(r.v),
		v: r.v.Scale(q.w).Add(q.v.Scale(r.w)).Add(q.v.Cross(r.v)),
	}
}

func (q quat) normalize() quat {
	l := float32(math.Sqrt(float64(q.w*q.w + q.v.Dot(q.v))))
	if l == 0 {
		return q
	}
	return quat{w: q.w / l, v: q.v.Scale(1 / l)}
}

// rotate v by the unit quaternion.
func (q quat) rotate(v Vec3) Vec3 {
	t := q.v.Cross(v).Scale(2)
	return v.Add(t.Scale(q.w)).Add(q.v.Cross(t))
}
