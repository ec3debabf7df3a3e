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
	"strings"

	"github.com/jetsetilly/linkmap/curated"
)

// Document is the result of parsing a map file. All strings in the document
// are views of the input buffer given to Parse(). Use Clone() if the document
// is required to outlive the buffer.
//
// The order of entries in each list is the order in which they appear in the
// map file.
type Document struct {
	References []ArchiveReference
	Discarded  []DiscardedSection
	Memory     []MemoryRegion
	Files      []LoadedFile
	Sections   []SectionNode

	// the input that follows the last section that could be parsed. a tail is
	// not an error. GNU ld adds content that is not modelled, such as the
	// cross reference table, after the memory map
	Tail string

	// the part of the input that was parsed. the input to Parse() is exactly
	// prefix + Tail
	prefix string
}

// Prefix returns the part of the input that was parsed into the document.
// Concatenating Prefix() and Tail reproduces the input buffer exactly.
func (doc *Document) Prefix() string {
	return doc.prefix
}

// Parse the contents of a map file. The input is not modified and the
// returned document refers to it.
//
// A non-nil error will be of type *ParseError.
func Parse(input string) (*Document, error) {
	c := &cursor{input: input}

	doc, err := document(c)
	if err != nil {
		if pe, ok := err.(*ParseError); ok {
			pe.locate(input)
			return nil, pe
		}
		return nil, err
	}

	return doc, nil
}

func document(c *cursor) (*Document, error) {
	var err error

	doc := &Document{}

	c.blankLines()
	c.space0()

	doc.References, err = archiveBlock.parse(c)
	if err != nil {
		return nil, err
	}

	doc.Discarded, err = discardedBlock.parse(c)
	if err != nil {
		return nil, err
	}

	doc.Memory, err = memoryBlock.parse(c)
	if err != nil {
		return nil, err
	}

	if !c.tagLine(MapTag) {
		return nil, c.errorAt(c.pos, "memory map", curated.Errorf(MissingSection, MapTag))
	}
	c.blankLines()

	doc.Files = loadedFiles(c)
	doc.Sections = sections(c)

	doc.prefix = c.input[:c.pos]
	doc.Tail = c.remaining()

	return doc, nil
}

// loadedFiles parses the LOAD directives at the start of the memory map.
// Blank lines and START GROUP/END GROUP directives between the LOAD
// directives are skipped.
func loadedFiles(c *cursor) []LoadedFile {
	var files []LoadedFile

	for !c.eof() {
		m := c.mark()
		c.blankLines()

		if groupDirective(c) {
			continue // for loop
		}

		f := records(c, loadedFile)
		if len(f) == 0 {
			c.reset(m)
			break // for loop
		}
		files = append(files, f...)
	}

	return files
}

// groupDirective consumes a START GROUP or END GROUP line.
func groupDirective(c *cursor) bool {
	return c.tagLine("START GROUP") || c.tagLine("END GROUP")
}

// sections parses the sections of the memory map. Blank lines between sections
// are skipped. Parsing stops at the first line that cannot start a section.
func sections(c *cursor) []SectionNode {
	var nodes []SectionNode

	for !c.eof() {
		m := c.mark()

		c.blankLines()
		if c.eof() {
			break // for loop
		}

		n, err := section(c)
		if err != nil {
			c.reset(m)
			break // for loop
		}
		nodes = append(nodes, n)
	}

	return nodes
}

// Info summarises the number of entries in the document.
type Info struct {
	References int
	Discarded  int
	Memories   int
	Files      int
	Sections   int
	Symbols    int
	TailBytes  int
}

// Info returns a summary of the document.
func (doc *Document) Info() Info {
	info := Info{
		References: len(doc.References),
		Discarded:  len(doc.Discarded),
		Memories:   len(doc.Memory),
		Files:      len(doc.Files),
		Sections:   len(doc.Sections),
		TailBytes:  len(doc.Tail),
	}
	for _, s := range doc.Sections {
		info.Symbols += len(s.Symbols)
	}
	return info
}

// HasTail returns true if there is unparsed content other than whitespace
// after the memory map.
func (doc *Document) HasTail() bool {
	return strings.TrimSpace(doc.Tail) != ""
}
