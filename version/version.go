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

// Package version reports the application name and the version information
// compiled into the executable.
package version

import (
	"fmt"
	"runtime/debug"
)

// The name to use when referring to the application
const ApplicationName = "Minuet"

// if number is empty then the project was probably not built using the
// makefile. set with -ldflags "-X minuet/version.number=v0.1.0"
var number string

// the result of parsing the build information. set once by init()
var current info

type info struct {
	// if version is "unreleased" then it means that the project has been
	// manually built (ie. not with the makefile). if version is "local" then
	// there is no version number and no vcs information. this can happen when
	// compiling/running with "go run ."
	version string

	// the vcs revision. suffixed with "+dirty" if the source has been
	// modified but not committed
	revision string

	release bool
}

func parse(bi *debug.BuildInfo, ok bool, number string) info {
	var vcs bool
	var vcsRevision string
	var vcsModified bool

	if ok {
		for _, v := range bi.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				vcsRevision = v.Value
			case "vcs.modified":
				vcsModified = v.Value == "true"
			}
		}
	}

	var inf info

	if vcsRevision == "" {
		inf.revision = "no revision information"
	} else {
		inf.revision = vcsRevision
		if vcsModified {
			inf.revision = fmt.Sprintf("%s+dirty", inf.revision)
		}
	}

	switch {
	case number != "":
		inf.version = number
		inf.release = true
	case vcs:
		inf.version = "unreleased"
	default:
		inf.version = "local"
	}

	return inf
}

func init() {
	bi, ok := debug.ReadBuildInfo()
	current = parse(bi, ok, number)
}

// Version returns the version string, the revision string and whether this is a
// numbered "release" version. if release is true then the revision information
// should be used sparingly
func Version() (string, string, bool) {
	return current.version, current.revision, current.release
}

// Title returns a string suitable for a window title.
func Title() string {
	if current.release {
		return fmt.Sprintf("%s %s", ApplicationName, current.version)
	}
	return fmt.Sprintf("%s (%s)", ApplicationName, current.version)
}
