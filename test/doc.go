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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report a failed test with t.Errorf() and allow the
// test to continue. The Demand*() functions report a failed test with
// t.Fatalf() and should be used when later parts of the test depend on the
// value being correct. For example, testing that the length of a slice is
// correct before indexing into it.
//
// ExpectSuccess() and ExpectFailure() test for success and failure under
// generic conditions. Success for a bool is true and success for an error is
// nil.
//
// It is worth describing how these functions handle the nil type because it
// is not obvious. The nil type is considered a success and consequently will
// cause ExpectFailure() to fail and ExpectSuccess() to succeed. This may not
// be how we want to interpret nil in all situations but because of how errors
// usually work (nil to indicate no error) we need to interpret nil in this
// way.
//
// CompareWriter and RingWriter implement the io.Writer interface and should be
// used to capture output. The captured output can then be compared against
// expected strings.
package test
