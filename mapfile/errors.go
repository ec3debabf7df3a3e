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
	"strings"
)

// Error patterns used with the curated package. Errors returned by Parse()
// wrap one of these and can be tested for with curated.Has(), or with
// curated.Is() on the Err field of a ParseError.
const (
	// a 0x prefixed hexadecimal literal was missing, had no digits or was too
	// large for 64 bits.
	MalformedNumber = "malformed number: %s"

	// a required path or identifier was missing.
	EmptyToken = "empty token"

	// one of the mandatory blocks, or the start of the memory map, was not
	// where it was required. the value is the expected tag line.
	MissingSection = "missing section: %s"

	// none of the alternative shapes for the named rule matched.
	GrammarMismatch = "grammar mismatch: %s"
)

// ParseError is the error returned by Parse(). It identifies the innermost
// grammar rule that failed and where in the input the failure happened.
type ParseError struct {
	// the grammar rule being parsed. for example "memory configuration" or
	// "symbol"
	Rule string

	// byte offset into the input
	Offset int

	// line and column (both counted from one) of Offset
	Line   int
	Column int

	// view of the input from Offset to the end of the input
	Remaining string

	// the underlying curated error. one of the patterns above
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("mapfile: %s: line %d, column %d: %v", e.Rule, e.Line, e.Column, e.Err)
}

// Unwrap allows errors.Is() and errors.As() to see the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Snippet returns the first line of the remaining input. Useful when
// displaying the error to the user.
func (e *ParseError) Snippet() string {
	s := e.Remaining
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		s = s[:i]
	}
	return s
}

// locate sets the Line and Column fields from the Offset field.
func (e *ParseError) locate(input string) {
	before := input[:e.Offset]
	e.Line = strings.Count(before, "\n") + 1
	e.Column = e.Offset - strings.LastIndex(before, "\n")
}
