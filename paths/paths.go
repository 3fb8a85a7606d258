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

package paths

import (
	"os"
	"path/filepath"

	"minuet/curated"
)

// the base path for all resources. note that we don't use this value directly
// except in the getBasePath() function. that function should be used instead.
const baseResourcePath = ".minuet"

// CannotCreate is returned by ResourcePath() if the directory for the
// resource cannot be created.
const CannotCreate = "paths: cannot create directory: %v"

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with operating system specific details. The first
// argument is the sub-directory of the resource and the second argument is
// the filename.
//
// The directory for the resource is created if it does not exist. The
// resource itself is not created.
func ResourcePath(subPth string, file string) (string, error) {
	dir := filepath.Join(getBasePath(), subPth)

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", curated.Errorf(CannotCreate, err)
	}

	return filepath.Join(dir, file), nil
}

// getBasePath() returns baseResourcePath if it is present in the current
// directory. Otherwise the user's config directory is used with the leading
// dot removed from baseResourcePath.
func getBasePath() string {
	if _, err := os.Stat(baseResourcePath); err == nil {
		return baseResourcePath
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return baseResourcePath
	}
	return filepath.Join(cnf, baseResourcePath[1:])
}
