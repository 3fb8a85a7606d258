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

package modalflag

import (
	"fmt"
	"io"
	"strings"
)

// writeHelp amends the usage message produced by the flag package with the
// mode path, the list of sub-modes and any additional help.
func writeHelp(output io.Writer, usage string, banner string, subModes []string, additionalHelp string) {
	lines := strings.SplitN(usage, "\n", 2)

	// output "no help available" message if there is no flag information and no
	// sub-modes
	if usage == "Usage:\n" && len(subModes) == 0 && additionalHelp == "" {
		if banner != "" {
			fmt.Fprintf(output, "No help available for %s\n", banner)
		} else {
			io.WriteString(output, "No help available\n")
		}
		return
	}

	if banner != "" {
		fmt.Fprintf(output, "%s for %s mode\n", lines[0], banner)
	} else {
		fmt.Fprintf(output, "%s\n", lines[0])
	}

	var flags string
	if len(lines) > 1 {
		flags = lines[1]
		io.WriteString(output, flags)
	}

	if len(subModes) > 0 {
		if flags != "" {
			io.WriteString(output, "\n")
		}
		fmt.Fprintf(output, "  available sub-modes: %s\n", strings.Join(subModes, ", "))
		fmt.Fprintf(output, "    default: %s\n", subModes[0])
	}

	if additionalHelp != "" {
		fmt.Fprintf(output, "\n%s\n", additionalHelp)
	}
}
