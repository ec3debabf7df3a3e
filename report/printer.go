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

package report

import (
	"fmt"
	"io"

	"github.com/jetsetilly/linkmap/colorterm"
)

// printer writes formatted output to an io.Writer. Once a write has failed
// nothing more is written and the error is kept for the caller.
type printer struct {
	w      io.Writer
	colour bool
	err    error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// paint returns s in the named pen if colour is enabled.
func (p *printer) paint(pen string, s string) string {
	return colorterm.Paint(p.colour, pen, s)
}
