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

// Package prefs facilitates the storage of preferential values in the Minuet
// system. It is intended to be used by other packages to store values that
// should persist between runs of the program.
//
// Preference values are created with the types in this package: Bool, Int,
// Float and String for single values, and Generic for anything else. A value
// is associated with a key when it is added to a Disk instance. Values are
// written to and read from the preferences file with the Save() and Load()
// functions.
//
// Values can also be specified on the command line. The command line stack is
// checked by Load() and will override values in the preferences file.
//
// The preferences file is a plain text file. Each line is a key and a value
// separated by a double colon:
//
//	window.size :: 1260,780
//
// Keys that are in the file but not in the Disk are ignored by Load() and
// preserved by Save().
package prefs
