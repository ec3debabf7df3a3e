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

	"github.com/jetsetilly/linkmap/colorterm"
	"github.com/jetsetilly/linkmap/mapfile"
)

// Tree writes the document as an indented tree. ANSI colour codes are used if
// colour is true.
func Tree(w io.Writer, doc *mapfile.Document, colour bool) error {
	p := &printer{w: w, colour: colour}

	heading := func(s string) {
		p.printf("%s\n", p.paint(colorterm.PenStyles["bold"], s))
	}
	addr := func(v uint64) string {
		return p.paint(colorterm.DimPens["cyan"], hex(v))
	}

	heading("archive references")
	for _, r := range doc.References {
		p.printf("  %s <- %s (%s)\n", r.Archive, r.Object, r.Symbol)
	}

	heading("discarded sections")
	for _, d := range doc.Discarded {
		p.printf("  %s %s %s %s\n", d.Group, addr(d.Address), hex(d.Size), d.Source)
	}

	heading("memory configuration")
	for _, m := range doc.Memory {
		p.printf("  %s %s %s", m.Name, addr(m.Origin), hex(m.Length))
		if m.HasAttributes {
			p.printf(" [%s]", m.Attributes)
		}
		p.printf("\n")
	}

	heading("loaded files")
	for _, f := range doc.Files {
		p.printf("  %s\n", f.Path)
	}

	heading("memory map")
	for _, s := range doc.Sections {
		if s.Header == nil {
			if s.Label != "" {
				p.printf("  [%s]\n", s.Label)
			} else {
				p.printf("  %s\n", p.paint(colorterm.DimPens["white"], "(no header)"))
			}
		} else {
			h := s.Header
			p.printf("  %s %s %s", p.paint(colorterm.Pens["yellow"], h.Name), addr(h.Address), hex(h.Size))
			if h.Source != "" {
				p.printf(" %s", h.Source)
			}
			if h.Label != "" && h.Label != h.Name {
				p.printf(" [%s]", h.Label)
			}
			p.printf("\n")
		}

		for _, sym := range s.Symbols {
			p.printf("    %s", addr(sym.Address))
			if sym.Name != "" {
				p.printf(" %s", p.paint(colorterm.Pens["green"], sym.Name))
			}
			p.printf(" %s\n", sym.Kind)
		}
	}

	if doc.HasTail() {
		p.printf("%s\n", p.paint(colorterm.Pens["red"], "unparsed tail"))
		p.printf("  %d bytes\n", len(doc.Tail))
	}

	return p.err
}
