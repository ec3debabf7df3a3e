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

//go:build windows

package colorterm

import "os"

// IsTerminal always returns false under windows. Colour output must be
// requested explicitly.
func IsTerminal(_ *os.File) bool {
	return false
}
