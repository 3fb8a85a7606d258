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

//go:build !statsview

package statsview

import (
	"io"

	"minuet/curated"
)

// Launch is a stub. It always returns the NotAvailable error.
func Launch(_ io.Writer) (func(), error) {
	return func() {}, curated.Errorf(NotAvailable)
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return false
}
