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

// label parses a line that contains a single token which is not a hex
// literal. Labels are usually indented by one space. For example:
//
//	*(.vendorheader)
//	.rodata.str1.1
//
// The cursor is left at the end of the line, not including the line ending.
func label(c *cursor) (string, error) {
	const rule = "section label"

	start := c.mark()
	c.space0()

	if _, ok := c.hexField(); ok {
		c.reset(start)
		return "", c.mismatch(rule)
	}

	l, err := c.token()
	if err != nil {
		c.reset(start)
		return "", c.fail(rule, err)
	}

	c.space0()
	if !c.eof() && !isLineEnding(c.peek()) {
		c.reset(start)
		return "", c.mismatch(rule)
	}

	return l, nil
}

// sectionHeader parses a header line:
//
//	 .vendorheader  0x0000000008040000      0xa00 build/vendorheader.o
//	.isr_vector     0x0000000008000000      0x188
//
// If named is false the name may be missing, which is the case for the second
// line of a header that is split over two lines:
//
//	.rodata.str1.1
//	               0x0000000008120000     0xf9d8 build/frozen_mpy.o
//
// The source is everything after the size, with surrounding whitespace
// removed. Sources can contain spaces, such as "linker stubs".
//
// The cursor is left after the end of the line, not including the line
// ending.
func sectionHeader(c *cursor, named bool) (SectionHeader, error) {
	const rule = "section header"

	start := c.mark()
	c.space0()

	var hdr SectionHeader

	m := c.mark()
	if _, ok := c.hexField(); ok {
		if named {
			c.reset(start)
			return SectionHeader{}, c.mismatch(rule)
		}

		// there is no name. go back to the start of the literal so it can be
		// parsed as the address
		c.reset(m)
	} else {
		name, err := c.token()
		if err != nil {
			c.reset(start)
			return SectionHeader{}, c.fail(rule, err)
		}
		if err := c.space1(); err != nil {
			c.reset(start)
			return SectionHeader{}, c.fail(rule, err)
		}
		hdr.Name = name
	}

	var ok bool

	hdr.Address, ok = c.hexField()
	if !ok || c.space1() != nil {
		c.reset(start)
		return SectionHeader{}, c.mismatch(rule)
	}

	hdr.Size, ok = c.hexField()
	if !ok {
		c.reset(start)
		return SectionHeader{}, c.mismatch(rule)
	}

	hdr.Source = c.trailingField()

	if !c.eof() && !isLineEnding(c.peek()) {
		c.reset(start)
		return SectionHeader{}, c.mismatch(rule)
	}

	return hdr, nil
}

// resolveHeader tries, in order: a label line followed by a header line; a
// header line on its own; a label line on its own. The header is nil if there
// is no header line, in which case the label is returned instead. The cursor
// is not moved if neither a label nor a header is found.
//
// When a label and a header line are merged, fields in the header line are
// preferred. The label is used for the name only if the header line has no
// name of its own.
//
// A label on its own is what the linker prints for an input section pattern
// that matched nothing.
func resolveHeader(c *cursor) (*SectionHeader, string) {
	start := c.mark()

	if l, err := label(c); err == nil {
		end := c.mark()
		if c.lineEnding() == nil {
			hdr, err := sectionHeader(c, false)
			if err == nil {
				if hdr.Name == "" {
					hdr.Name = l
				}
				hdr.Label = l
				return &hdr, ""
			}
		}
		c.reset(end)
		return nil, l
	}

	if hdr, err := sectionHeader(c, true); err == nil {
		return &hdr, ""
	}

	c.reset(start)
	return nil, ""
}

// section parses a section header, which may be missing, followed by zero or
// more symbols. A section with neither a header nor a label must have at least
// one symbol.
//
// The cursor is left at the start of the first line that is not part of the
// section.
func section(c *cursor) (SectionNode, error) {
	const rule = "section"

	start := c.mark()

	var node SectionNode
	node.Header, node.Label = resolveHeader(c)

	end := c.pos

	if node.Header != nil || node.Label != "" {
		if err := c.endOfLine(); err != nil {
			c.reset(start)
			return SectionNode{}, c.fail(rule, err)
		}
	}

	for !c.eof() {
		sym, err := symbol(c)
		if err != nil {
			break // for loop
		}
		node.Symbols = append(node.Symbols, sym)
		end = sym.Span.End()
	}

	if node.Header == nil && node.Label == "" && len(node.Symbols) == 0 {
		c.reset(start)
		return SectionNode{}, c.mismatch(rule)
	}

	node.Span = Span{Offset: start, Length: end - start}

	return node, nil
}
