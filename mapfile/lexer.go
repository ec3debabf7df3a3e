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

// cursor is the read position in the input buffer. parsing functions advance
// the cursor as they consume input. backtracking is done by taking a mark()
// before an attempt and calling reset() with that mark on failure.
type cursor struct {
	input string
	pos   int
}

func (c *cursor) eof() bool {
	return c.pos >= len(c.input)
}

// remaining returns a view of the unconsumed input.
func (c *cursor) remaining() string {
	return c.input[c.pos:]
}

func (c *cursor) peek() byte {
	if c.eof() {
		return 0
	}
	return c.input[c.pos]
}

func (c *cursor) mark() int {
	return c.pos
}

func (c *cursor) reset(mark int) {
	c.pos = mark
}

// span returns the Span from mark to the current position.
func (c *cursor) span(mark int) Span {
	return Span{Offset: mark, Length: c.pos - mark}
}

// errorAt creates a ParseError for the named rule at the specified offset.
// line and column information is filled in by Parse() if the error is
// returned to the caller.
func (c *cursor) errorAt(offset int, rule string, err error) *ParseError {
	return &ParseError{
		Rule:      rule,
		Offset:    offset,
		Remaining: c.input[offset:],
		Err:       err,
	}
}

// fail returns err as a ParseError for the named rule. if err is already a
// ParseError it is returned unchanged because the innermost rule is the most
// useful one to report.
func (c *cursor) fail(rule string, err error) error {
	if pe, ok := err.(*ParseError); ok {
		return pe
	}
	return c.errorAt(c.pos, rule, err)
}

func (c *cursor) mismatch(rule string) error {
	return c.errorAt(c.pos, rule, curated.Errorf(GrammarMismatch, rule))
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t'
}

func isLineEnding(b byte) bool {
	return b == '\r' || b == '\n'
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// space0 consumes zero or more spaces or tabs and returns the number of
// characters consumed.
func (c *cursor) space0() int {
	start := c.pos
	for !c.eof() && isSpace(c.input[c.pos]) {
		c.pos++
	}
	return c.pos - start
}

// space1 consumes one or more spaces or tabs.
func (c *cursor) space1() error {
	if c.space0() == 0 {
		return c.mismatch("space")
	}
	return nil
}

// indent consumes leading spaces and tabs and returns the indentation width.
// a space counts as one and a tab counts as four.
func (c *cursor) indent() int {
	var n int
	for !c.eof() {
		switch c.input[c.pos] {
		case ' ':
			n++
		case '\t':
			n += 4
		default:
			return n
		}
		c.pos++
	}
	return n
}

// lineEnding consumes exactly one "\n" or "\r\n".
func (c *cursor) lineEnding() error {
	if strings.HasPrefix(c.remaining(), "\n") {
		c.pos++
		return nil
	}
	if strings.HasPrefix(c.remaining(), "\r\n") {
		c.pos += 2
		return nil
	}
	return c.mismatch("line ending")
}

// endOfLine is the same as lineEnding except that the end of the input is also
// accepted as the end of a line.
func (c *cursor) endOfLine() error {
	if c.eof() {
		return nil
	}
	return c.lineEnding()
}

// blankLines consumes any number of lines that are empty or contain only
// spaces and tabs.
func (c *cursor) blankLines() {
	for !c.eof() {
		m := c.mark()
		c.space0()
		if c.lineEnding() != nil {
			c.reset(m)
			return
		}
	}
}

// tagLine consumes a line consisting of exactly the tag text. no other content
// is permitted on the line.
func (c *cursor) tagLine(tag string) bool {
	m := c.mark()
	if !strings.HasPrefix(c.remaining(), tag) {
		return false
	}
	c.pos += len(tag)
	if c.endOfLine() != nil {
		c.reset(m)
		return false
	}
	return true
}

// literal consumes s if it is next in the input.
func (c *cursor) literal(s string) bool {
	if strings.HasPrefix(c.remaining(), s) {
		c.pos += len(s)
		return true
	}
	return false
}

// hex64 consumes a 0x prefixed hexadecimal number. the number must fit in
// 64 bits. the cursor does not move on failure.
func (c *cursor) hex64() (uint64, error) {
	start := c.pos
	if !strings.HasPrefix(c.remaining(), "0x") {
		return 0, c.errorAt(start, "hex", curated.Errorf(MalformedNumber, "missing 0x prefix"))
	}

	end := start + 2
	for end < len(c.input) && isHexDigit(c.input[end]) {
		end++
	}

	digits := c.input[start+2 : end]
	if len(digits) == 0 {
		return 0, c.errorAt(start, "hex", curated.Errorf(MalformedNumber, "no digits"))
	}

	// leading zeros do not count towards the 64 bit limit. GNU ld pads
	// addresses to sixteen digits
	significant := strings.TrimLeft(digits, "0")
	if len(significant) > 16 {
		return 0, c.errorAt(start, "hex", curated.Errorf(MalformedNumber, "out of range"))
	}

	var v uint64
	for i := 0; i < len(significant); i++ {
		v = v<<4 | uint64(hexValue(significant[i]))
	}

	c.pos = end
	return v, nil
}

func hexValue(b byte) byte {
	switch {
	case b >= '0' && b <= '9':
		return b - '0'
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10
	}
	return b - 'A' + 10
}

// token consumes the longest run of characters that are not a space, carriage
// return or line feed. file paths and identifiers are both tokens.
func (c *cursor) token() (string, error) {
	start := c.pos
	for !c.eof() {
		b := c.input[c.pos]
		if b == ' ' || isLineEnding(b) {
			break // for loop
		}
		c.pos++
	}
	if c.pos == start {
		return "", c.errorAt(start, "token", curated.Errorf(EmptyToken))
	}
	return c.input[start:c.pos], nil
}

// restOfLine consumes and returns everything up to but not including the line
// ending. the returned string may be empty.
func (c *cursor) restOfLine() string {
	start := c.pos
	for !c.eof() && !isLineEnding(c.input[c.pos]) {
		c.pos++
	}
	return c.input[start:c.pos]
}

// atFieldEnd returns true if the next character ends a whitespace separated
// field.
func (c *cursor) atFieldEnd() bool {
	return c.eof() || isSpace(c.peek()) || isLineEnding(c.peek())
}

// trailingField consumes optional whitespace followed by the remainder of the
// line. trailing whitespace is not included in the returned string. the empty
// string is returned if there is nothing but whitespace before the end of
// the line.
func (c *cursor) trailingField() string {
	c.space0()
	return strings.TrimRight(c.restOfLine(), " \t")
}
