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

package userinput

// Cursor is the pointer position and the scroll accumulated since the last
// end of frame reset.
type Cursor struct {
	X float32
	Y float32

	ScrollX float32
	ScrollY float32
}

// SetPosition overwrites the pointer position.
func (c *Cursor) SetPosition(x, y float32) {
	c.X = x
	c.Y = y
}

// AddScroll accumulates a scroll delta.
func (c *Cursor) AddScroll(dx, dy float32) {
	c.ScrollX += dx
	c.ScrollY += dy
}

// ResetScroll zeroes the accumulated scroll. The position is unchanged.
func (c *Cursor) ResetScroll() {
	c.ScrollX = 0
	c.ScrollY = 0
}
