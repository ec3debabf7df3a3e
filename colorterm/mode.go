// This file is part of Linkmap.
//
// Linkmap is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Linkmap is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Linkmap.  If not, see <https://www.gnu.org/licenses/>.

package colorterm

import (
	"os"
	"strings"

	"github.com/jetsetilly/linkmap/curated"
)

// UnknownMode is the error pattern returned by Enabled() for an unrecognised
// mode.
const UnknownMode = "colorterm: unknown color mode: %s"

// Enabled decides whether coloured output should be used for the file. The
// mode is one of AUTO, ON or OFF (case insensitive). AUTO enables colour if
// the file is a terminal.
func Enabled(mode string, f *os.File) (bool, error) {
	switch strings.ToUpper(mode) {
	case "AUTO", "":
		return IsTerminal(f), nil
	case "ON":
		return true, nil
	case "OFF":
		return false, nil
	}
	return false, curated.Errorf(UnknownMode, mode)
}
