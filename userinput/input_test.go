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
	"strings"
	"testing"

	"minuet/test"
	"minuet/userinput"
)

func TestInput(t *testing.T) {
	in, err := userinput.NewInput(userinput.DefaultKeyboardCapacity, userinput.DefaultPointerCapacity)
	test.DemandSuccess(t, err)

	in.PushKey(userinput.KeyW, true, false)
	in.PushButton(userinput.ButtonRight, true)
	in.Cursor.SetPosition(100, 50)
	in.Cursor.AddScroll(0, 1)
	in.Cursor.AddScroll(0.5, 1)

	in.Reconcile()
	test.ExpectSuccess(t, in.Keyboard.Pressed(userinput.KeyW))
	test.ExpectSuccess(t, in.Pointer.Pressed(userinput.ButtonRight))

	// codes are scoped to the device class
	test.ExpectFailure(t, in.Keyboard.IsDown(userinput.ButtonRight))

	test.ExpectApproximate(t, in.Cursor.ScrollX, 0.5, 0.0001)
	test.ExpectApproximate(t, in.Cursor.ScrollY, 2.0, 0.0001)

	in.EndFrame()
	test.ExpectFailure(t, in.Keyboard.Pressed(userinput.KeyW))
	test.ExpectSuccess(t, in.Keyboard.IsDown(userinput.KeyW))
	test.ExpectSuccess(t, in.Pointer.IsDown(userinput.ButtonRight))
	test.ExpectEquality(t, in.Cursor.ScrollX, 0)
	test.ExpectEquality(t, in.Cursor.ScrollY, 0)

	// position is not reset at the end of the frame
	test.ExpectEquality(t, in.Cursor.X, 100)
	test.ExpectEquality(t, in.Cursor.Y, 50)
}

func TestInputDropped(t *testing.T) {
	in, err := userinput.NewInput(2, 1)
	test.DemandSuccess(t, err)

	in.PushButton(userinput.ButtonLeft, true)
	in.PushButton(userinput.ButtonLeft, false)
	in.Reconcile()
	test.ExpectEquality(t, in.Pointer.Dropped, 1)

	// the down event was lost so there is no released edge
	test.ExpectFailure(t, in.Pointer.Released(userinput.ButtonLeft))
	test.ExpectFailure(t, in.Pointer.IsDown(userinput.ButtonLeft))

	_, err = userinput.NewInput(0, 1)
	test.ExpectFailure(t, err)
}

func TestInputDevice(t *testing.T) {
	in, err := userinput.NewInput(4, 4)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, in.Device(userinput.Keyboard), &in.Keyboard)
	test.ExpectEquality(t, in.Device(userinput.Pointer), &in.Pointer)
	test.ExpectSuccess(t, in.Device(userinput.DeviceClass(99)) == nil)
}

func TestCodeNames(t *testing.T) {
	test.ExpectEquality(t, userinput.KeyA.String(), "A")
	test.ExpectEquality(t, userinput.Key0.String(), "0")
	test.ExpectEquality(t, userinput.KeyF12.String(), "F12")
	test.ExpectEquality(t, userinput.KeyEscape.String(), "Escape")
	test.ExpectEquality(t, userinput.Code(1000).String(), "code(1000)")

	c, ok := userinput.KeyFromRune('w')
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, c, userinput.KeyW)

	_, ok = userinput.KeyFromRune('~')
	test.ExpectFailure(t, ok)
}

func TestDump(t *testing.T) {
	in, err := userinput.NewInput(4, 4)
	test.DemandSuccess(t, err)
	in.PushKey(userinput.KeyA, true, false)
	in.Reconcile()

	var w strings.Builder
	in.Dump(&w)
	test.ExpectSuccess(t, strings.Contains(w.String(), "digraph"))
}
