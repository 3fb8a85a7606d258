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

//go:build assertions

package assert

import (
	"fmt"
	"sync/atomic"
)

var mainThread atomic.Uint64

// RegisterMainThread records the calling goroutine as the main thread.
func RegisterMainThread() {
	mainThread.Store(GetGoRoutineID())
}

// MainThread panics if it is not called from the goroutine registered with
// RegisterMainThread(). Does nothing if no goroutine has been registered.
func MainThread() {
	m := mainThread.Load()
	if m == 0 {
		return
	}
	if id := GetGoRoutineID(); id != m {
		panic(fmt.Sprintf("assert: main thread expected (goroutine %d is not %d)", id, m))
	}
}
