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

import (
	"fmt"
)

// Span locates a record in the input buffer.
type Span struct {
	Offset int
	Length int
}

// End returns the offset of the first byte after the span.
func (s Span) End() int {
	return s.Offset + s.Length
}

// ArchiveReference records why a member of an archive was pulled into the
// link. The member name itself is not kept.
type ArchiveReference struct {
	Archive string
	Object  string
	Symbol  string
	Span    Span
}

// DiscardedSection is an input section that the linker read but did not
// place in the output.
type DiscardedSection struct {
	Group   string
	Address uint64
	Size    uint64
	Source  string
	Span    Span
}

// MemoryRegion is one entry in the memory configuration.
type MemoryRegion struct {
	Name   string
	Origin uint64
	Length uint64

	// Attributes is only meaningful if HasAttributes is true. A region can have
	// an empty attributes field, which is not the same as having no field.
	Attributes    string
	HasAttributes bool

	Span Span
}

// LoadedFile is an object pulled into the link by a LOAD directive.
type LoadedFile struct {
	Path string
	Span Span
}

// SectionHeader describes where a section or object was placed.
type SectionHeader struct {
	Name    string
	Address uint64
	Size    uint64

	// Source is the empty string if the header has no source file
	Source string

	// Label is the label line that preceded the header line, if there was one.
	// For example "*(.text*)"
	Label string
}

// SectionNode is a placed section or object contribution. The Header field
// is nil for sections that are only a run of symbols with no header of their
// own, such as addresses defined in the linker script.
type SectionNode struct {
	Header *SectionHeader

	// label line of a section that has no header line. a label that is
	// followed by a header line is in the Label field of the header
	Label string

	Symbols []SymbolNode
	Span    Span
}

// SymbolNode is one entry in a section.
type SymbolNode struct {
	// the empty string if no continuation line named the symbol
	Name    string
	Address uint64

	// width of the indentation of the symbol line. tabs count as four. the
	// value has no effect on the structure of the document
	Indent int

	Kind SymbolKind
	Span Span
}

// SymbolKind is implemented by ExpressionValue and ObjectContribution.
type SymbolKind interface {
	fmt.Stringer
	symbolKind()
}

// ExpressionValue is a symbol or alias defined by the linker script. Text is
// the right-hand side as it appears in the map file.
type ExpressionValue struct {
	Text string
}

func (ExpressionValue) symbolKind() {}

func (v ExpressionValue) String() string {
	return v.Text
}

// ObjectContribution is code or data placed from an object file.
type ObjectContribution struct {
	Size uint64

	// the empty string if no source file was given
	Source string
}

func (ObjectContribution) symbolKind() {}

func (v ObjectContribution) String() string {
	if v.Source == "" {
		return fmt.Sprintf("%#x", v.Size)
	}
	return fmt.Sprintf("%#x %s", v.Size, v.Source)
}
