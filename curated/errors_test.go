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

package curated_test

import (
	"errors"
	"fmt"
	"testing"

	"minuet/curated"
	"minuet/test"
)

const testError = "test error: %s"
const testErrorB = "test error B: %s"

func TestDuplicateErrors(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	test.ExpectEquality(t, e.Error(), "test error: foo")

	// packing errors of the same type next to each other causes
	// one of them to be dropped
	f := curated.Errorf(testError, e)
	test.ExpectEquality(t, f.Error(), "test error: foo")

	g := curated.Errorf("window: %v", curated.Errorf("window: %v", "cannot create context"))
	test.ExpectEquality(t, g.Error(), "window: cannot create context")
}

func TestIs(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	test.ExpectSuccess(t, curated.Is(e, testError))

	// Has() should fail because we haven't included testErrorB anywhere in the error
	test.ExpectFailure(t, curated.Has(e, testErrorB))

	// packing errors of the same type next to each other causes
	// one of them to be dropped
	f := curated.Errorf(testErrorB, e)
	test.ExpectFailure(t, curated.Is(f, testError))
	test.ExpectSuccess(t, curated.Is(f, testErrorB))
	test.ExpectSuccess(t, curated.Has(f, testError))
	test.ExpectSuccess(t, curated.Has(f, testErrorB))

	// IsAny should return true for these errors also
	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectSuccess(t, curated.IsAny(f))
}

func TestPlainErrors(t *testing.T) {
	// test plain errors that haven't been curated
	e := fmt.Errorf("plain test error")
	test.ExpectFailure(t, curated.IsAny(e))

	const testError = "test error: %s"

	test.ExpectFailure(t, curated.Has(e, testError))
	test.ExpectFailure(t, curated.Is(nil, testError))
	test.ExpectFailure(t, curated.IsAny(nil))
}

func TestUnwrap(t *testing.T) {
	e := fmt.Errorf("plain test error")
	f := curated.Errorf("wrapped: %v", e)
	test.ExpectSuccess(t, errors.Is(f, e))
}
