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

package logger

import (
	"io"
	"strings"
)

const (
	penTag    = "\033[2m"
	penNormal = "\033[0m"
)

// Colorizer applies basic coloring rules to logging output. The tag part of
// each entry is dimmed.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method if initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (int, error) {
	s := string(p)

	tag, detail, ok := strings.Cut(s, ": ")
	if !ok {
		return c.out.Write(p)
	}

	_, err := io.WriteString(c.out, penTag+tag+":"+penNormal+" "+detail)
	if err != nil {
		return 0, err
	}

	return len(p), nil
}
