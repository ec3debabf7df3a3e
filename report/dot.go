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

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/linkmap/mapfile"
)

// Dot writes the document value graph in the Graphviz dot format. The output
// is large for a real map file and is most useful for small ones.
func Dot(w io.Writer, doc *mapfile.Document) {
	memviz.Map(w, doc)
}
