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

package viewport_test

import (
	"sync"
	"testing"

	"minuet/test"
	"minuet/viewport"
)

func TestDimensions(t *testing.T) {
	dim := viewport.NewDimensions(960, 780)
	test.ExpectEquality(t, dim.Get(), viewport.Viewport{Width: 960, Height: 780})
	test.ExpectEquality(t, dim.Get().String(), "960x780")
	test.ExpectFailure(t, dim.Get().Empty())

	dim.Set(0, 780)
	test.ExpectSuccess(t, dim.Get().Empty())

	dim.Resize(-10, 100)
	test.ExpectEquality(t, dim.Get(), viewport.Viewport{Width: 0, Height: 100})
}

func TestNoTornReads(t *testing.T) {
	dim := viewport.NewDimensions(0, 0)

	// writer always sets width and height to the same value. a reader must
	// never see them differ
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := range 10000 {
			dim.Set(i, i)
		}
	}()

	for range 10000 {
		vp := dim.Get()
		if vp.Width != vp.Height {
			t.Fatalf("torn read: %s", vp)
		}
	}

	wg.Wait()
	test.ExpectEquality(t, dim.Get(), viewport.Viewport{Width: 9999, Height: 9999})
}
