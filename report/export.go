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

	"github.com/jetsetilly/linkmap/mapfile"
)

func hex(v uint64) string {
	return fmt.Sprintf("%#x", v)
}

// Export is a copy of a mapfile.Document suitable for encoding. Numbers are
// represented as hexadecimal strings, as they are in the map file.
type Export struct {
	References []ExportReference `yaml:"references,omitempty"`
	Discarded  []ExportDiscarded `yaml:"discarded,omitempty"`
	Memory     []ExportMemory    `yaml:"memory,omitempty"`
	Files      []string          `yaml:"files,omitempty"`
	Sections   []ExportSection   `yaml:"sections,omitempty"`
	Tail       string            `yaml:"tail,omitempty"`
}

type ExportReference struct {
	Archive string `yaml:"archive"`
	Object  string `yaml:"object"`
	Symbol  string `yaml:"symbol"`
}

type ExportDiscarded struct {
	Group   string `yaml:"group"`
	Address string `yaml:"address"`
	Size    string `yaml:"size"`
	Source  string `yaml:"source"`
}

type ExportMemory struct {
	Name       string  `yaml:"name"`
	Origin     string  `yaml:"origin"`
	Length     string  `yaml:"length"`
	Attributes *string `yaml:"attributes,omitempty"`
}

type ExportSection struct {
	Name    string         `yaml:"name,omitempty"`
	Label   string         `yaml:"label,omitempty"`
	Address string         `yaml:"address,omitempty"`
	Size    string         `yaml:"size,omitempty"`
	Source  string         `yaml:"source,omitempty"`
	Symbols []ExportSymbol `yaml:"symbols,omitempty"`
}

type ExportSymbol struct {
	Name    string `yaml:"name,omitempty"`
	Address string `yaml:"address"`

	// expression symbols
	Expression string `yaml:"expression,omitempty"`

	// object contributions
	Size   string `yaml:"size,omitempty"`
	Source string `yaml:"source,omitempty"`
}

// NewExport creates an Export from the document. The Export does not share
// memory with the buffer the document was parsed from.
func NewExport(doc *mapfile.Document) Export {
	doc = doc.Clone()

	var ex Export

	for _, r := range doc.References {
		ex.References = append(ex.References, ExportReference{
			Archive: r.Archive,
			Object:  r.Object,
			Symbol:  r.Symbol,
		})
	}

	for _, d := range doc.Discarded {
		ex.Discarded = append(ex.Discarded, ExportDiscarded{
			Group:   d.Group,
			Address: hex(d.Address),
			Size:    hex(d.Size),
			Source:  d.Source,
		})
	}

	for _, m := range doc.Memory {
		em := ExportMemory{
			Name:   m.Name,
			Origin: hex(m.Origin),
			Length: hex(m.Length),
		}
		if m.HasAttributes {
			a := m.Attributes
			em.Attributes = &a
		}
		ex.Memory = append(ex.Memory, em)
	}

	for _, f := range doc.Files {
		ex.Files = append(ex.Files, f.Path)
	}

	for _, s := range doc.Sections {
		var es ExportSection
		if s.Header != nil {
			es.Name = s.Header.Name
			es.Label = s.Header.Label
			es.Address = hex(s.Header.Address)
			es.Size = hex(s.Header.Size)
			es.Source = s.Header.Source
		} else {
			es.Label = s.Label
		}

		for _, sym := range s.Symbols {
			esym := ExportSymbol{
				Name:    sym.Name,
				Address: hex(sym.Address),
			}
			switch k := sym.Kind.(type) {
			case mapfile.ExpressionValue:
				esym.Expression = k.Text
			case mapfile.ObjectContribution:
				esym.Size = hex(k.Size)
				esym.Source = k.Source
			}
			es.Symbols = append(es.Symbols, esym)
		}

		ex.Sections = append(ex.Sections, es)
	}

	ex.Tail = doc.Tail

	return ex
}
