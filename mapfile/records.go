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

// parenthesised consumes "(" text ")" where text is not empty and does not
// contain a closing parenthesis or line ending.
func (c *cursor) parenthesised(rule string) (string, error) {
	if !c.literal("(") {
		return "", c.mismatch(rule)
	}
	start := c.pos
	for !c.eof() && c.peek() != ')' && !isLineEnding(c.peek()) {
		c.pos++
	}
	if c.pos == start || !c.literal(")") {
		return "", c.errorAt(start, rule, curated.Errorf(EmptyToken))
	}
	return c.input[start : c.pos-1], nil
}

// archiveReference parses the two line group:
//
//	build/libfoo.a(foo.o)
//	                              build/main.o (foo)
//
// The name of the archive member is not kept.
func archiveReference(c *cursor) (ArchiveReference, error) {
	const rule = "archive reference"

	start := c.mark()

	for !c.eof() && c.peek() != '(' && !isLineEnding(c.peek()) {
		c.pos++
	}
	if c.pos == start {
		return ArchiveReference{}, c.errorAt(start, rule, curated.Errorf(EmptyToken))
	}
	archive := c.input[start:c.pos]

	if _, err := c.parenthesised(rule); err != nil {
		return ArchiveReference{}, err
	}
	if err := c.lineEnding(); err != nil {
		return ArchiveReference{}, c.fail(rule, err)
	}
	if err := c.space1(); err != nil {
		return ArchiveReference{}, c.fail(rule, err)
	}

	object, err := c.token()
	if err != nil {
		return ArchiveReference{}, c.fail(rule, err)
	}

	c.space0()

	var symbol string
	if c.peek() == '(' {
		symbol, err = c.parenthesised(rule)
		if err != nil {
			return ArchiveReference{}, err
		}
	} else {
		// there was no space between the object and the symbol so the token
		// has consumed both. the referencing object may itself be an archive
		// member so split at the last opening parenthesis
		i := strings.LastIndexByte(object, '(')
		if i <= 0 || !strings.HasSuffix(object, ")") || i == len(object)-2 {
			return ArchiveReference{}, c.mismatch(rule)
		}
		symbol = object[i+1 : len(object)-1]
		object = object[:i]
	}

	return ArchiveReference{
		Archive: archive,
		Object:  object,
		Symbol:  symbol,
		Span:    c.span(start),
	}, nil
}

// discardedSection parses a single entry in the discarded input sections
// block:
//
//	.text          0x0000000000000000        0x0 build/main.o
//
// Long group names are printed on a line of their own with the remainder of
// the entry on the following line:
//
//	.text.a_very_long_function_name
//	               0x0000000000000000       0x24 build/main.o
//
// The source is the remainder of the line after the single space that follows
// the size.
func discardedSection(c *cursor) (DiscardedSection, error) {
	const rule = "discarded section"

	start := c.mark()
	c.space0()

	group, err := c.token()
	if err != nil {
		return DiscardedSection{}, c.fail(rule, err)
	}

	if c.space0() == 0 || isLineEnding(c.peek()) {
		if err := c.lineEnding(); err != nil {
			return DiscardedSection{}, c.fail(rule, err)
		}
		if err := c.space1(); err != nil {
			return DiscardedSection{}, c.fail(rule, err)
		}
	}

	address, err := c.hex64()
	if err != nil {
		return DiscardedSection{}, c.fail(rule, err)
	}
	if err := c.space1(); err != nil {
		return DiscardedSection{}, c.fail(rule, err)
	}

	size, err := c.hex64()
	if err != nil {
		return DiscardedSection{}, c.fail(rule, err)
	}
	if !c.literal(" ") {
		return DiscardedSection{}, c.mismatch(rule)
	}

	source := c.restOfLine()
	if source == "" {
		return DiscardedSection{}, c.errorAt(c.pos, rule, curated.Errorf(EmptyToken))
	}

	return DiscardedSection{
		Group:   group,
		Address: address,
		Size:    size,
		Source:  source,
		Span:    c.span(start),
	}, nil
}

// memoryRegion parses a single entry in the memory configuration:
//
//	FLASH            0x0000000008000000 0x0000000000100000 xr
//	*default*        0x0000000000000000 0xffffffffffffffff
func memoryRegion(c *cursor) (MemoryRegion, error) {
	const rule = "memory region"

	start := c.mark()

	name, err := c.token()
	if err != nil {
		return MemoryRegion{}, c.fail(rule, err)
	}
	if err := c.space1(); err != nil {
		return MemoryRegion{}, c.fail(rule, err)
	}
	origin, err := c.hex64()
	if err != nil {
		return MemoryRegion{}, c.fail(rule, err)
	}
	if err := c.space1(); err != nil {
		return MemoryRegion{}, c.fail(rule, err)
	}
	length, err := c.hex64()
	if err != nil {
		return MemoryRegion{}, c.fail(rule, err)
	}

	mr := MemoryRegion{
		Name:   name,
		Origin: origin,
		Length: length,
	}

	// the attributes field is everything after the separating space. the
	// field is present, even if it is empty, if there is a separating space
	if c.space0() > 0 {
		mr.Attributes = c.restOfLine()
		mr.HasAttributes = true
	} else if !c.eof() && !isLineEnding(c.peek()) {
		return MemoryRegion{}, c.mismatch(rule)
	}

	mr.Span = c.span(start)
	return mr, nil
}

// memoryHeader parses the column headings of the memory configuration.
func memoryHeader(c *cursor) error {
	const rule = "memory configuration"

	for i, col := range []string{"Name", "Origin", "Length", "Attributes"} {
		if i > 0 {
			if err := c.space1(); err != nil {
				return c.fail(rule, err)
			}
		}
		if !c.literal(col) {
			return c.mismatch(rule)
		}
	}

	c.space0()
	if err := c.endOfLine(); err != nil {
		return c.fail(rule, err)
	}

	return nil
}

// loadedFile parses a LOAD directive:
//
//	LOAD build/main.o
func loadedFile(c *cursor) (LoadedFile, error) {
	const rule = "loaded file"

	start := c.mark()

	if !c.literal("LOAD") {
		return LoadedFile{}, c.mismatch(rule)
	}
	if err := c.space1(); err != nil {
		return LoadedFile{}, c.fail(rule, err)
	}
	path, err := c.token()
	if err != nil {
		return LoadedFile{}, c.fail(rule, err)
	}
	c.space0()

	return LoadedFile{
		Path: path,
		Span: c.span(start),
	}, nil
}
