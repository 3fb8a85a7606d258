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

// pcgHash is the PCG hash function. It is used as a fast, stateless random
// number generator in the per-pixel loop where a shared generator would need
// locking.
func pcgHash(input uint32) uint32 {
	state := input*747796405 + 2891336453
	word := ((state >> ((state >> 28) + 4)) ^ state) * 277803737
	return (word >> 22) ^ word
}

// randomFloat updates the seed and returns a value in the range 0 to 1.
func randomFloat(seed *uint32) float32 {
	*seed = pcgHash(*seed)
	return float32(*seed) / float32(^uint32(0))
}

// randomInUnitSphere returns a random unit vector.
func randomInUnitSphere(seed *uint32) Vec3 {
	return Vec3{
		randomFloat(seed)*2 - 1,
		randomFloat(seed)*2 - 1,
		randomFloat(seed)*2 - 1,
	}.Normalize()
}
