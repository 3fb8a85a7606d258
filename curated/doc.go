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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are the errors we expect to happen and know how to talk
// about. Anything else is uncurated and probably a bug.
//
// Curated errors are created with the Errorf() function. It takes a
// formatting pattern and placeholder values, much like fmt.Errorf(), but the
// pattern is retained so that the error can be identified later:
//
//	const NotRunning = "vsync: gate is not running (%s)"
//	e := curated.Errorf(NotRunning, "stopped")
//
//	if curated.Is(e, NotRunning) {
//		fmt.Println("true")
//	}
//
// Packages that return curated errors export their patterns as string
// constants for this purpose.
//
// The Has() function is similar to Is() but looks for the pattern anywhere in
// the error chain. A chain is formed when a curated error is used as a value
// for another curated error:
//
//	f := curated.Errorf("hostloop: %v", e)
//	curated.Is(f, NotRunning)  // false
//	curated.Has(f, NotRunning) // true
//
// The IsAny() function answers whether the error was created by Errorf() at
// all.
//
// The Error() implementation normalises the message by removing duplicate
// adjacent parts of the chain. This means that a function can wrap an error
// with its own prefix without worrying whether the callee has already done
// so. For example, "window: window: cannot create context" is printed as
// "window: cannot create context".
package curated
