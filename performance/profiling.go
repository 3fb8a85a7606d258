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

package performance

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"strings"

	"minuet/curated"
)

// Profile specifies which profiles should be created by RunProfiler().
type Profile int

// List of valid Profile values. Values can be combined.
const (
	ProfileNone Profile = 0
	ProfileCPU  Profile = 1 << iota
	ProfileMem
	ProfileAll = ProfileCPU | ProfileMem
)

func (p Profile) String() string {
	switch p {
	case ProfileNone:
		return "none"
	case ProfileCPU:
		return "cpu"
	case ProfileMem:
		return "mem"
	case ProfileAll:
		return "all"
	}
	return fmt.Sprintf("profile(%d)", int(p))
}

// UnknownProfile is returned by ParseProfile().
const UnknownProfile = "performance: unknown profile (%s)"

// ParseProfile converts a comma separated list of profile names into a
// Profile value. Valid names are "none", "cpu", "mem" and "all".
func ParseProfile(s string) (Profile, error) {
	var p Profile
	for _, n := range strings.Split(s, ",") {
		switch strings.ToLower(strings.TrimSpace(n)) {
		case "", "none":
		case "cpu":
			p |= ProfileCPU
		case "mem":
			p |= ProfileMem
		case "all":
			p |= ProfileAll
		default:
			return ProfileNone, curated.Errorf(UnknownProfile, n)
		}
	}
	return p, nil
}

// ProfileFilename returns the name of the file used for a single profile
// type. The filenameHeader can include a directory.
func ProfileFilename(filenameHeader string, p Profile) string {
	return filepath.Clean(fmt.Sprintf("%s_%s.profile", filenameHeader, p))
}

// RunProfiler runs the supplied function, creating the profiles specified by
// the profile argument. Profile files are named with the filenameHeader
// argument. The error returned by the run function takes precedence over any
// profiling error.
func RunProfiler(profile Profile, filenameHeader string, run func() error) error {
	if profile&ProfileCPU == ProfileCPU {
		f, err := os.Create(ProfileFilename(filenameHeader, ProfileCPU))
		if err != nil {
			return curated.Errorf(Failed, err)
		}
		defer f.Close()

		err = pprof.StartCPUProfile(f)
		if err != nil {
			return curated.Errorf(Failed, err)
		}
		defer pprof.StopCPUProfile()
	}

	err := run()

	if profile&ProfileMem == ProfileMem {
		memErr := memProfile(ProfileFilename(filenameHeader, ProfileMem))
		if err == nil {
			err = memErr
		}
	}

	return err
}

func memProfile(outFile string) error {
	f, err := os.Create(outFile)
	if err != nil {
		return curated.Errorf(Failed, err)
	}
	defer f.Close()

	runtime.GC()
	err = pprof.WriteHeapProfile(f)
	if err != nil {
		return curated.Errorf(Failed, err)
	}

	return nil
}
