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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"minuet/curated"
)

// WarningBoilerPlate is the first line of every preferences file.
const WarningBoilerPlate = "*** do not edit this file while Minuet is running ***"

// separates the key from the value in the preferences file.
const separator = " :: "

// Sentinel error patterns.
const (
	DiskError    = "prefs: %v"
	InvalidKey   = "prefs: invalid key (%s)"
	DuplicateKey = "prefs: duplicate key (%s)"
)

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, curated.Errorf(DiskError, "no path for preferences file")
	}
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

func (dsk *Disk) String() string {
	keys := dsk.keys()
	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, dsk.entries[k]))
	}
	return s.String()
}

func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Add preference value to list of values to store/load from Disk. The key
// value is used to identify the value in the preferences file.
func (dsk *Disk) Add(key string, p pref) error {
	key = strings.TrimSpace(key)
	if key == "" || strings.Contains(key, "::") || strings.ContainsAny(key, "\n;") {
		return curated.Errorf(InvalidKey, key)
	}
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p
	return nil
}

// HasEntry returns true if the key has been added to the Disk.
func (dsk *Disk) HasEntry(key string) bool {
	_, ok := dsk.entries[key]
	return ok
}

// Reset all entries to the zero value of their type. Hooks are called as
// normal.
func (dsk *Disk) Reset() error {
	for _, k := range dsk.keys() {
		if err := dsk.entries[k].Reset(); err != nil {
			return curated.Errorf(DiskError, err)
		}
	}
	return nil
}

// read the preferences file into a map of key/value strings. a file that
// doesn't exist is not an error.
func (dsk *Disk) read() (map[string]string, error) {
	data := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return data, nil
		}
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		k, v, ok := strings.Cut(scanner.Text(), separator)
		if !ok {
			continue
		}
		data[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}

	return data, scanner.Err()
}

// Save current preference values to disk. Values in the preferences file
// that are not in the Disk are preserved.
func (dsk *Disk) Save() error {
	data, err := dsk.read()
	if err != nil {
		return curated.Errorf(DiskError, err)
	}

	for k, p := range dsk.entries {
		data[k] = p.String()
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, data[k]))
	}

	err = os.WriteFile(dsk.path, []byte(s.String()), 0o600)
	if err != nil {
		return curated.Errorf(DiskError, err)
	}

	return nil
}

// Load preference values from disk. Values on the top of the command line
// stack take priority over values in the file.
//
// If the preferences file does not exist and saveOnFail is true, the
// current values are saved to a new file.
func (dsk *Disk) Load(saveOnFail bool) error {
	_, statErr := os.Stat(dsk.path)
	missing := errors.Is(statErr, fs.ErrNotExist)

	data, err := dsk.read()
	if err != nil {
		return curated.Errorf(DiskError, err)
	}

	for _, k := range dsk.keys() {
		v, found := data[k]
		if ok, cl := GetCommandLinePref(k); ok {
			v = fmt.Sprintf("%v", cl)
			found = true
		}
		if !found {
			continue
		}
		if err := dsk.entries[k].Set(v); err != nil {
			return curated.Errorf(DiskError, err)
		}
	}

	if missing && saveOnFail {
		return dsk.Save()
	}

	return nil
}
