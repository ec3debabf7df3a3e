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
	"io"

	"github.com/jetsetilly/linkmap/mapfile"
)

// Summary writes the number of records of each kind in the document.
func Summary(w io.Writer, doc *mapfile.Document) error {
	p := &printer{w: w}

	info := doc.Info()
	p.printf("references: %d\n", info.References)
	p.printf("discarded: %d\n", info.Discarded)
	p.printf("memories: %d\n", info.Memories)
	p.printf("files: %d\n", info.Files)
	p.printf("sections: %d\n", info.Sections)
	p.printf("symbols: %d\n", info.Symbols)
	p.printf("tail bytes: %d\n", info.TailBytes)

	return p.err
}
