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

package userinput_test

import (
	"testing"

	"minuet/test"
	"minuet/userinput"
)

const keyA = userinput.KeyA

func down(c userinput.Code) userinput.Event {
	return userinput.Event{Code: c, Down: true}
}

func repeat(c userinput.Code) userinput.Event {
	return userinput.Event{Code: c, Down: true, Repeat: true}
}

func up(c userinput.Code) userinput.Event {
	return userinput.Event{Code: c, Down: false}
}

func TestPressRepeatRelease(t *testing.T) {
	s := userinput.NewSnapshot()

	// fresh press
	s.Reconcile([]userinput.Event{down(keyA)})
	test.ExpectSuccess(t, s.IsDown(keyA))
	test.ExpectSuccess(t, s.Pressed(keyA))
	test.ExpectSuccess(t, s.WentDown(keyA))
	test.ExpectFailure(t, s.Released(keyA))
	test.ExpectFailure(t, s.HadRepeat(keyA))

	// key held and OS repeat delivered
	s.Reconcile([]userinput.Event{repeat(keyA)})
	test.ExpectSuccess(t, s.IsDown(keyA))
	test.ExpectFailure(t, s.Pressed(keyA))
	test.ExpectFailure(t, s.WentDown(keyA))
	test.ExpectSuccess(t, s.HadRepeat(keyA))

	// release
	s.Reconcile([]userinput.Event{up(keyA)})
	test.ExpectFailure(t, s.IsDown(keyA))
	test.ExpectSuccess(t, s.Released(keyA))
	test.ExpectFailure(t, s.Pressed(keyA))
	test.ExpectFailure(t, s.WentDown(keyA))

	// nothing this frame. the released edge is gone
	s.Reconcile(nil)
	test.ExpectFailure(t, s.IsDown(keyA))
	test.ExpectFailure(t, s.Released(keyA))
	test.ExpectEquality(t, s.Len(), 0)
}

func TestHeldKeyKeepsState(t *testing.T) {
	s := userinput.NewSnapshot()

	s.Reconcile([]userinput.Event{down(keyA)})
	s.ClearEdges()
	test.ExpectSuccess(t, s.IsDown(keyA))
	test.ExpectFailure(t, s.Pressed(keyA))
	test.ExpectFailure(t, s.WentDown(keyA))

	// frames with no events leave the key down with no edges
	for range 3 {
		s.Reconcile(nil)
		test.ExpectEquality(t, s.Record(keyA), userinput.KeyRecord{IsDown: true})
	}
}

func TestRepeatOnlyTransition(t *testing.T) {
	s := userinput.NewSnapshot()

	// a repeat event for a key we never saw go down. this can happen if the
	// original down event was overwritten in the buffer
	s.Reconcile([]userinput.Event{repeat(keyA)})
	test.ExpectSuccess(t, s.IsDown(keyA))
	test.ExpectSuccess(t, s.WentDown(keyA))
	test.ExpectFailure(t, s.Pressed(keyA))
	test.ExpectFailure(t, s.HadRepeat(keyA))
}

func TestTapWithinFrame(t *testing.T) {
	s := userinput.NewSnapshot()

	// press and release in the same frame. the edges survive even though the
	// key is now up
	s.Reconcile([]userinput.Event{down(keyA), up(keyA)})
	test.ExpectFailure(t, s.IsDown(keyA))
	test.ExpectSuccess(t, s.Pressed(keyA))
	test.ExpectSuccess(t, s.WentDown(keyA))
	test.ExpectSuccess(t, s.Released(keyA))

	// release and press again in the same frame
	s.Reconcile([]userinput.Event{down(keyA)})
	s.Reconcile([]userinput.Event{up(keyA), down(keyA)})
	test.ExpectSuccess(t, s.IsDown(keyA))
	test.ExpectSuccess(t, s.Released(keyA))
	test.ExpectSuccess(t, s.Pressed(keyA))
}

func TestReconcileRederivesEdges(t *testing.T) {
	s := userinput.NewSnapshot()

	s.Reconcile([]userinput.Event{down(keyA)})
	test.ExpectSuccess(t, s.Pressed(keyA))

	// a second reconcile without an end of frame reset loses the edge
	s.Reconcile([]userinput.Event{})
	test.ExpectFailure(t, s.Pressed(keyA))
	test.ExpectSuccess(t, s.IsDown(keyA))
}

func TestIsDownFollowsLastEvent(t *testing.T) {
	b, err := userinput.NewBuffer(8)
	test.DemandSuccess(t, err)
	s := userinput.NewSnapshot()

	seqs := [][]userinput.Event{
		{down(keyA), up(keyA), down(keyA)},
		{up(keyA)},
		{down(userinput.KeyB), repeat(userinput.KeyB), repeat(userinput.KeyB), up(userinput.KeyB)},
		{down(keyA), down(userinput.KeyB), up(keyA)},
	}

	for i, seq := range seqs {
		last := make(map[userinput.Code]bool)
		for _, ev := range seq {
			b.Push(ev)
			last[ev.Code] = ev.Down
		}
		s.Reconcile(b.Drain())
		for c, d := range last {
			test.ExpectEquality(t, s.IsDown(c), d, i, c)
		}
	}
}

func TestWentDownIgnoresRepeat(t *testing.T) {
	s := userinput.NewSnapshot()

	s.Reconcile([]userinput.Event{down(keyA), repeat(keyA), repeat(keyA)})
	test.ExpectSuccess(t, s.WentDown(keyA))
	test.ExpectSuccess(t, s.Pressed(keyA))
	test.ExpectSuccess(t, s.HadRepeat(keyA))

	s.Reconcile([]userinput.Event{repeat(keyA), repeat(keyA)})
	test.ExpectFailure(t, s.WentDown(keyA))
	test.ExpectFailure(t, s.Pressed(keyA))
	test.ExpectSuccess(t, s.HadRepeat(keyA))
	test.ExpectSuccess(t, s.IsDown(keyA))
}

func TestSparseSnapshot(t *testing.T) {
	s := userinput.NewSnapshot()

	s.Reconcile([]userinput.Event{down(keyA), down(userinput.KeyB), up(userinput.KeyB)})
	test.ExpectEquality(t, s.Len(), 2)

	// KeyB is up with no edges after the reset so it is pruned
	s.ClearEdges()
	test.ExpectEquality(t, s.Len(), 1)
	test.ExpectEquality(t, s.Record(userinput.KeyB), userinput.KeyRecord{})
}
