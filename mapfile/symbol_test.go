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
	"testing"

	"github.com/jetsetilly/linkmap/test"
)

func TestSymbolContribution(t *testing.T) {
	input := "   0x0000000008042108       0x30 build/firmware/vendor/trezor-storage/norcow.o\n" +
		"                0x0000000008042108                norcow_set\n"

	c := &cursor{input: input}
	sym, err := symbol(c)
	test.ExpectSuccess(t, err)
	test.ExpectDeepEquality(t, sym, SymbolNode{
		Name:    "norcow_set",
		Address: 0x08042108,
		Indent:  3,
		Kind: ObjectContribution{
			Size:   0x30,
			Source: "build/firmware/vendor/trezor-storage/norcow.o",
		},
		Span: Span{Offset: 0, Length: len(input) - 1},
	})
	test.ExpectSuccess(t, c.eof())
}

func TestSymbolExpression(t *testing.T) {
	c := &cursor{input: "                0x0000000020030000                main_stack_base = (ORIGIN (SRAM) + LENGTH (SRAM))"}
	sym, err := symbol(c)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, sym.Name, "")
	test.ExpectEquality(t, sym.Address, uint64(0x20030000))
	test.ExpectEquality(t, sym.Indent, 16)
	test.ExpectDeepEquality(t, sym.Kind, ExpressionValue{Text: "main_stack_base = (ORIGIN (SRAM) + LENGTH (SRAM))"})

	c = &cursor{input: "\t0x10 foo = 1\n"}
	sym, err = symbol(c)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, sym.Indent, 4)
	test.ExpectEquality(t, sym.Span, Span{Offset: 0, Length: 13})
}

func TestSymbolKind(t *testing.T) {
	tests := []struct {
		field string
		kind  SymbolKind
	}{
		{field: "0x10", kind: ObjectContribution{Size: 0x10}},
		{field: "0x10 x.o", kind: ObjectContribution{Size: 0x10, Source: "x.o"}},
		{field: "0x10   linker stubs  ", kind: ObjectContribution{Size: 0x10, Source: "linker stubs"}},
		{field: "0x10z", kind: ExpressionValue{Text: "0x10z"}},
		{field: "0x", kind: ExpressionValue{Text: "0x"}},
		{field: "foo = 1", kind: ExpressionValue{Text: "foo = 1"}},
		{field: "(size before relaxing)", kind: ExpressionValue{Text: "(size before relaxing)"}},
		{field: ". = ALIGN (0x4)", kind: ExpressionValue{Text: ". = ALIGN (0x4)"}},
	}

	for _, tt := range tests {
		c := &cursor{input: "0x0000000008040000 " + tt.field + "\n"}
		sym, err := symbol(c)
		if test.ExpectSuccess(t, err, tt.field) {
			test.ExpectDeepEquality(t, sym.Kind, tt.kind)
		}
	}
}

func TestSymbolFailure(t *testing.T) {
	for _, s := range []string{"0x10 \n", "0x10\n", "foo 0x10\n", "  .text 0x10 0x4\n", ""} {
		c := &cursor{input: s}
		_, err := symbol(c)
		test.ExpectFailure(t, err, s)
		test.ExpectEquality(t, c.pos, 0, s)
	}
}

func TestContinuation(t *testing.T) {
	// same address, bare name
	c := &cursor{input: "0x10 a = 1\n 0x10 b\n"}
	sym, err := symbol(c)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, sym.Name, "b")
	test.ExpectDeepEquality(t, sym.Kind, ExpressionValue{Text: "a = 1"})

	// leading zeros do not affect address equality
	c = &cursor{input: "0x0000000000000010 0x4 x.o\n 0x10 name"}
	sym, err = symbol(c)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, sym.Name, "name")
	test.ExpectEquality(t, sym.Span.End(), len(c.input))
	test.ExpectSuccess(t, c.eof())

	unmerged := []string{
		// different address
		"0x10 a = 1\n 0x20 b\n",
		// object contribution at the same address
		"0x10 foo\n 0x10 0x20 bar.o\n",
		// expression at the same address
		"0x10 a = 1\n 0x10 b = 2\n",
		// no indentation
		"0x10 a = 1\n0x10 b\n",
		// size before relaxing
		"0x10 0xf9d8 frozen.o\n                0xff3c (size before relaxing)\n",
		// hex literal that overflows
		"0x10 a = 1\n 0x10 0x1ffffffffffffffff\n",
	}

	for _, s := range unmerged {
		c = &cursor{input: s}
		sym, err = symbol(c)
		test.ExpectSuccess(t, err, s)
		test.ExpectEquality(t, sym.Name, "", s)

		// the second line is left for the next symbol
		test.ExpectEquality(t, c.pos, strings.IndexByte(s, '\n')+1, s)
		test.ExpectEquality(t, sym.Span.End(), strings.IndexByte(s, '\n'), s)
	}
}
