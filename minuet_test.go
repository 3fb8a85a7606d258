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

package main

import (
	"testing"

	"minuet/test"
)

func TestLaunchHelp(t *testing.T) {
	test.ExpectEquality(t, launch([]string{"-help"}), 0)
	test.ExpectEquality(t, launch([]string{"PERFORMANCE", "-help"}), 0)
}

func TestLaunchErrors(t *testing.T) {
	test.ExpectEquality(t, launch([]string{"PERFORMANCE", "-foo"}), exitModeError)
	test.ExpectEquality(t, launch([]string{"PERFORMANCE", "-profile", "gpu"}), exitModeError)
}

func TestInterruptHandler(t *testing.T) {
	var called bool
	stop := interruptHandler(func() { called = true })
	stop()
	test.ExpectFailure(t, called)
}
