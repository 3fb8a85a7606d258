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

package prefs_test

import (
	"testing"

	"minuet/prefs"
	"minuet/test"
)

func TestCommandLineStackValues(t *testing.T) {
	// empty on start
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// single value
	prefs.PushCommandLineStack("foo::bar")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")

	// single value but with additional space
	prefs.PushCommandLineStack("   foo:: bar ")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")

	// remaining string is sorted by key
	prefs.PushCommandLineStack("foo::bar; baz::qux")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux; foo::bar")

	// invalid prefs strings
	prefs.PushCommandLineStack("foo_bar")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
	prefs.PushCommandLineStack("foo::bar::baz")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
	prefs.PushCommandLineStack("::bar")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// partially invalid prefs string
	prefs.PushCommandLineStack("foo_bar;baz::qux")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux")

	// values are removed once they have been retrieved
	prefs.PushCommandLineStack("foo::bar;baz_qux")
	ok, _ := prefs.GetCommandLinePref("baz")
	test.ExpectFailure(t, ok)
	ok, v := prefs.GetCommandLinePref("foo")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, prefs.Value("bar"))
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}

func TestCommandLineStack(t *testing.T) {
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)

	prefs.PushCommandLineStack("foo::bar")
	prefs.PushCommandLineStack("baz::qux")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 2)

	// only the top group is visible
	ok, _ := prefs.GetCommandLinePref("foo")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}
