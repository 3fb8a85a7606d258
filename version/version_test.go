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

package version

import (
	"runtime/debug"
	"testing"

	"minuet/test"
)

func TestParse(t *testing.T) {
	inf := parse(nil, false, "")
	test.ExpectEquality(t, inf.version, "local")
	test.ExpectEquality(t, inf.revision, "no revision information")
	test.ExpectFailure(t, inf.release)

	bi := &debug.BuildInfo{
		Settings: []debug.BuildSetting{
			{Key: "vcs", Value: "git"},
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.modified", Value: "true"},
		},
	}
	inf = parse(bi, true, "")
	test.ExpectEquality(t, inf.version, "unreleased")
	test.ExpectEquality(t, inf.revision, "abc123+dirty")
	test.ExpectFailure(t, inf.release)

	inf = parse(bi, true, "v0.1.0")
	test.ExpectEquality(t, inf.version, "v0.1.0")
	test.ExpectSuccess(t, inf.release)
}

func TestTitle(t *testing.T) {
	current = info{version: "v0.1.0", release: true}
	test.ExpectEquality(t, Title(), "Minuet v0.1.0")
	current = info{version: "local"}
	test.ExpectEquality(t, Title(), "Minuet (local)")
}
