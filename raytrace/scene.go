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

// Material describes how a surface interacts with light.
type Material struct {
	Albedo    Vec3
	Roughness float32
	Metallic  float32

	EmissionColor Vec3
	EmissionPower float32
}

// Emission returns the light emitted by the material.
func (m Material) Emission() Vec3 {
	return m.EmissionColor.Scale(m.EmissionPower)
}

// Sphere is the only primitive supported by the renderer.
type Sphere struct {
	Position Vec3
	Radius   float32
	Material int
}

// Scene is a list of spheres and the materials they refer to.
type Scene struct {
	Spheres   []Sphere
	Materials []Material
}

// DefaultScene returns a pink sphere resting on a very large blue sphere.
func DefaultScene() *Scene {
	return &Scene{
		Materials: []Material{
			{Albedo: Vec3{1, 0, 1}, Roughness: 0},
			{Albedo: Vec3{0.2, 0.3, 1}, Roughness: 0.1},
		},
		Spheres: []Sphere{
			{Position: Vec3{0, 0, 0}, Radius: 1, Material: 0},
			{Position: Vec3{1, -101, 0}, Radius: 100, Material: 1},
		},
	}
}
