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
	"github.com/jetsetilly/linkmap/curated"
)

// the tag lines that introduce each block. the tag must be the only text on
// the line.
const (
	ArchiveTag   = "Archive member included to satisfy reference by file (symbol)"
	DiscardedTag = "Discarded input sections"
	MemoryTag    = "Memory Configuration"
	MapTag       = "Linker script and memory map"
)

// block describes one of the tagged blocks at the start of a map file.
type block[T any] struct {
	rule string
	tag  string

	// optional lines between the tag and the first record
	prelude func(c *cursor) error

	record func(c *cursor) (T, error)
}

// parse the block. the tag line is required. a record that fails to parse
// ends the list of records and is not an error.
func (b block[T]) parse(c *cursor) ([]T, error) {
	if !c.tagLine(b.tag) {
		return nil, c.errorAt(c.pos, b.rule, curated.Errorf(MissingSection, b.tag))
	}

	c.blankLines()

	if b.prelude != nil {
		if err := b.prelude(c); err != nil {
			return nil, err
		}
		c.blankLines()
	}

	r := records(c, b.record)

	c.blankLines()

	return r, nil
}

// records parses zero or more instances of a record, each terminated by a
// line ending (or the end of input). the cursor is left at the start of the
// first line that does not parse.
func records[T any](c *cursor, record func(c *cursor) (T, error)) []T {
	var r []T
	for !c.eof() {
		m := c.mark()
		v, err := record(c)
		if err == nil {
			err = c.endOfLine()
		}
		if err != nil {
			c.reset(m)
			break // for loop
		}
		r = append(r, v)
	}
	return r
}

var archiveBlock = block[ArchiveReference]{
	rule:   "archive references",
	tag:    ArchiveTag,
	record: archiveReference,
}

var discardedBlock = block[DiscardedSection]{
	rule:   "discarded sections",
	tag:    DiscardedTag,
	record: discardedSection,
}

var memoryBlock = block[MemoryRegion]{
	rule:    "memory configuration",
	tag:     MemoryTag,
	prelude: memoryHeader,
	record:  memoryRegion,
}
