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

package mapfile

import "strings"

// Clone returns a copy of the document that does not refer to the input
// buffer. Spans in the copy still describe offsets in the original input.
func (doc *Document) Clone() *Document {
	return &Document{
		References: cloneList(doc.References, func(r ArchiveReference) ArchiveReference {
			r.Archive = strings.Clone(r.Archive)
			r.Object = strings.Clone(r.Object)
			r.Symbol = strings.Clone(r.Symbol)
			return r
		}),
		Discarded: cloneList(doc.Discarded, func(d DiscardedSection) DiscardedSection {
			d.Group = strings.Clone(d.Group)
			d.Source = strings.Clone(d.Source)
			return d
		}),
		Memory: cloneList(doc.Memory, func(m MemoryRegion) MemoryRegion {
			m.Name = strings.Clone(m.Name)
			m.Attributes = strings.Clone(m.Attributes)
			return m
		}),
		Files: cloneList(doc.Files, func(f LoadedFile) LoadedFile {
			f.Path = strings.Clone(f.Path)
			return f
		}),
		Sections: cloneList(doc.Sections, cloneSection),
		Tail:     strings.Clone(doc.Tail),
		prefix:   strings.Clone(doc.prefix),
	}
}

// cloneList preserves the difference between a nil and an empty list.
func cloneList[T any](l []T, clone func(T) T) []T {
	if l == nil {
		return nil
	}
	n := make([]T, len(l))
	for i := range l {
		n[i] = clone(l[i])
	}
	return n
}

func cloneSection(s SectionNode) SectionNode {
	if s.Header != nil {
		h := *s.Header
		h.Name = strings.Clone(h.Name)
		h.Source = strings.Clone(h.Source)
		h.Label = strings.Clone(h.Label)
		s.Header = &h
	}
	s.Label = strings.Clone(s.Label)
	s.Symbols = cloneList(s.Symbols, cloneSymbol)
	return s
}

func cloneSymbol(sym SymbolNode) SymbolNode {
	sym.Name = strings.Clone(sym.Name)
	switch k := sym.Kind.(type) {
	case ExpressionValue:
		sym.Kind = ExpressionValue{Text: strings.Clone(k.Text)}
	case ObjectContribution:
		sym.Kind = ObjectContribution{Size: k.Size, Source: strings.Clone(k.Source)}
	}
	return sym
}
