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

// hexField consumes a hex literal that forms a complete whitespace separated
// field. the cursor does not move if there is no such field.
//
// This is the only test used to tell symbol kinds apart. A symbol line with a
// second hex field after the address is an object contribution and any other
// symbol line is an expression value. The same test prevents an object
// contribution line from being taken as the continuation line of a symbol.
//
// Expression text beginning with a hex literal would be misclassified but GNU
// ld does not produce such lines.
func (c *cursor) hexField() (uint64, bool) {
	m := c.mark()
	v, err := c.hex64()
	if err != nil || !c.atFieldEnd() {
		c.reset(m)
		return 0, false
	}
	return v, true
}

// symbolKind parses the remainder of a symbol line after the address and the
// separating whitespace. The line ending is not consumed.
func symbolKind(c *cursor) (SymbolKind, error) {
	if size, ok := c.hexField(); ok {
		return ObjectContribution{
			Size:   size,
			Source: c.trailingField(),
		}, nil
	}

	text := c.restOfLine()
	if text == "" {
		return nil, c.errorAt(c.pos, "symbol", curated.Errorf(EmptyToken))
	}

	return ExpressionValue{Text: text}, nil
}

// symbol parses an indented symbol line and, if present, the continuation
// line that names it. For example, an object contribution named by the
// following line:
//
//	0x0000000008042108       0x30 build/norcow.o
//	0x0000000008042108                norcow_set
//
// Or an expression value:
//
//	0x0000000020030000                _estack = main_stack_base
//
// The cursor is left at the start of the next line.
func symbol(c *cursor) (SymbolNode, error) {
	const rule = "symbol"

	start := c.mark()
	indent := c.indent()

	address, err := c.hex64()
	if err != nil {
		c.reset(start)
		return SymbolNode{}, c.fail(rule, err)
	}
	if err := c.space1(); err != nil {
		c.reset(start)
		return SymbolNode{}, c.fail(rule, err)
	}

	kind, err := symbolKind(c)
	if err != nil {
		c.reset(start)
		return SymbolNode{}, err
	}

	sym := SymbolNode{
		Address: address,
		Indent:  indent,
		Kind:    kind,
	}

	// the span does not include the line ending of the last line
	end := c.pos

	if err := c.endOfLine(); err != nil {
		c.reset(start)
		return SymbolNode{}, c.fail(rule, err)
	}

	if name, e, ok := continuation(c, address); ok {
		sym.Name = name
		end = e
	}

	sym.Span = Span{Offset: start, Length: end - start}

	return sym, nil
}

// continuation looks ahead one line for a "bare address and name" line. The
// line is consumed only if the address matches the address of the preceding
// symbol. Otherwise the cursor is returned to the start of the line, leaving
// it to be parsed as a symbol or header in its own right.
//
// Returns the name and the offset of the end of the name line (before the line
// ending).
func continuation(c *cursor, address uint64) (string, int, bool) {
	m := c.mark()

	if c.space1() != nil {
		c.reset(m)
		return "", 0, false
	}

	a, ok := c.hexField()
	if !ok || a != address || c.space1() != nil {
		c.reset(m)
		return "", 0, false
	}

	// a second hex field makes this an object contribution line. a literal
	// that is too large for hexField() is still not a name
	if _, ok := c.hexField(); ok || strings.HasPrefix(c.remaining(), "0x") {
		c.reset(m)
		return "", 0, false
	}

	name, err := c.token()
	if err != nil {
		c.reset(m)
		return "", 0, false
	}
	c.space0()

	end := c.pos
	if c.endOfLine() != nil {
		c.reset(m)
		return "", 0, false
	}

	return name, end, true
}
