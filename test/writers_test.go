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

package test_test

import (
	"fmt"
	"testing"

	"minuet/test"
)

func TestRingWriter(t *testing.T) {
	r, err := test.NewRingWriter(10)
	test.DemandSuccess(t, err)

	fmt.Fprint(r, "hello")
	test.ExpectEquality(t, r.String(), "hello")

	fmt.Fprint(r, "world")
	test.ExpectEquality(t, r.String(), "helloworld")

	fmt.Fprint(r, "12")
	test.ExpectEquality(t, r.String(), "lloworld12")

	fmt.Fprint(r, "abcdefghijklm")
	test.ExpectEquality(t, r.String(), "defghijklm")

	r.Reset()
	test.ExpectEquality(t, r.String(), "")

	_, err = test.NewRingWriter(0)
	test.ExpectFailure(t, err)
}

func TestCompareWriter(t *testing.T) {
	var w test.CompareWriter
	fmt.Fprintf(&w, "frame %d", 1)
	test.ExpectSuccess(t, w.Compare("frame 1"))
	w.Clear()
	test.ExpectSuccess(t, w.Compare(""))
}

func TestExpectations(t *testing.T) {
	test.ExpectSuccess(t, true)
	test.ExpectSuccess(t, nil)
	test.ExpectFailure(t, false)
	test.ExpectFailure(t, fmt.Errorf("error"))
	test.ExpectApproximate(t, 0.1+0.2, 0.3, 0.0001)
	test.ExpectInequality(t, 1, 2)
}
