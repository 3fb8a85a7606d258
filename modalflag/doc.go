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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes and
// allows different flags for each mode.
//
// Arguments are set with NewArgs() and then parsed, layer by layer, with
// Parse(). Flags for a layer are added with the Add*() functions before the
// call to Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "HEADLESS", "PERFORMANCE")
//	p, err := md.Parse()
//
// If the first argument after the flags matches one of the sub-modes then
// that becomes the selected mode, available from Mode(). Otherwise the first
// sub-mode in the list is selected. Sub-mode comparisons are case
// insensitive.
//
// Once the mode has been decided, NewMode() prepares the next layer of
// arguments:
//
//	switch md.Mode() {
//	case "HEADLESS":
//		md.NewMode()
//		width := md.AddInt("width", 320, "width of viewport")
//		p, err := md.Parse()
//		...
//	}
//
// Parse() prints help messages automatically when the -help flag is given
// and returns ParseHelp. The caller need do nothing more than return.
package modalflag
