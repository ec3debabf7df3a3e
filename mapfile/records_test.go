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
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jetsetilly/linkmap/test"
)

var ignoreSpans = cmpopts.IgnoreTypes(Span{})

func TestMemoryRegion(t *testing.T) {
	c := &cursor{input: "FLASH            0x0000000008040000 0x00000000000c0000 xr\n"}
	mr, err := memoryRegion(c)
	test.ExpectSuccess(t, err)
	test.ExpectDeepEquality(t, mr, MemoryRegion{
		Name:          "FLASH",
		Origin:        0x08040000,
		Length:        0xc0000,
		Attributes:    "xr",
		HasAttributes: true,
		Span:          Span{Offset: 0, Length: 57},
	})
	test.ExpectEquality(t, c.remaining(), "\n")

	// absent attributes are not the same as empty attributes
	c = &cursor{input: "*default*        0x0000000000000000 0xffffffffffffffff\n"}
	mr, err = memoryRegion(c)
	test.ExpectSuccess(t, err)
	test.ExpectDeepEquality(t, mr, MemoryRegion{
		Name:   "*default*",
		Length: 0xffffffffffffffff,
	}, ignoreSpans)

	c = &cursor{input: "RAM 0x20000000 0x1000 \n"}
	mr, err = memoryRegion(c)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, mr.HasAttributes)
	test.ExpectEquality(t, mr.Attributes, "")

	c = &cursor{input: "SRAM 0x20000000 0x30000 xrw\r\n"}
	mr, err = memoryRegion(c)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, mr.Attributes, "xrw")

	for _, s := range []string{"FLASH 0x0 xr\n", "FLASH 08040000 0x1\n", "0x0 0x0\n", "FLASH 0x0 0x1xr\n"} {
		c = &cursor{input: s}
		_, err = memoryRegion(c)
		test.ExpectFailure(t, err, s)
	}
}

func TestMemoryHeader(t *testing.T) {
	c := &cursor{input: "Name             Origin             Length             Attributes\nFLASH"}
	test.ExpectSuccess(t, memoryHeader(c))
	test.ExpectEquality(t, c.remaining(), "FLASH")

	c = &cursor{input: "Name Origin Length\n"}
	test.ExpectFailure(t, memoryHeader(c))
}

func TestArchiveReference(t *testing.T) {
	c := &cursor{input: "build/something.a(something.0.rcgu.o)\n            build/something.o (some_symbol_name)\n"}
	ar, err := archiveReference(c)
	test.ExpectSuccess(t, err)
	test.ExpectDeepEquality(t, ar, ArchiveReference{
		Archive: "build/something.a",
		Object:  "build/something.o",
		Symbol:  "some_symbol_name",
	}, ignoreSpans)
	test.ExpectEquality(t, c.remaining(), "\n")
	test.ExpectEquality(t, ar.Span.Length, len(c.input)-1)

	// referencing object is itself an archive member
	c = &cursor{input: "libc.a(lib_a-memset.o)\n    libc.a(lib_a-malloc.o) (memset)"}
	ar, err = archiveReference(c)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ar.Object, "libc.a(lib_a-malloc.o)")
	test.ExpectEquality(t, ar.Symbol, "memset")

	// no space between object and symbol
	c = &cursor{input: "a.a(m.o)\n  b.a(c.o)(sym)"}
	ar, err = archiveReference(c)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ar.Archive, "a.a")
	test.ExpectEquality(t, ar.Object, "b.a(c.o)")
	test.ExpectEquality(t, ar.Symbol, "sym")

	for _, s := range []string{
		"a.a(m.o) b.o (sym)\n",
		"a.a(m.o)\nb.o (sym)\n",
		"a.a\n  b.o (sym)\n",
		"a.a(m.o)\n  b.o\n",
		"(m.o)\n  b.o (sym)\n",
	} {
		c = &cursor{input: s}
		_, err = archiveReference(c)
		test.ExpectFailure(t, err, s)
	}
}

func TestDiscardedSection(t *testing.T) {
	c := &cursor{input: " .group         0x0000000000000001        0xc build/something.o\r\n"}
	ds, err := discardedSection(c)
	test.ExpectSuccess(t, err)
	test.ExpectDeepEquality(t, ds, DiscardedSection{
		Group:   ".group",
		Address: 0x1,
		Size:    0xc,
		Source:  "build/something.o",
	}, ignoreSpans)
	test.ExpectEquality(t, c.remaining(), "\r\n")

	// long group names are printed on a line of their own
	c = &cursor{input: " .text.unused_helper\n                0x0000000000000000       0x24 build/util.o\n"}
	ds, err = discardedSection(c)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ds.Group, ".text.unused_helper")
	test.ExpectEquality(t, ds.Size, uint64(0x24))
	test.ExpectEquality(t, ds.Source, "build/util.o")

	// the source is the rest of the line
	c = &cursor{input: ".glue_7 0x0 0x0 linker stubs"}
	ds, err = discardedSection(c)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ds.Source, "linker stubs")

	for _, s := range []string{
		".g 0x1 0xc\n",
		".g 0x1 0xc \n",
		".g 0x1\n",
		".g\n0x1 0xc b.o\n",
		"Memory Configuration\n",
	} {
		c = &cursor{input: s}
		_, err = discardedSection(c)
		test.ExpectFailure(t, err, s)
	}
}

func TestLoadedFile(t *testing.T) {
	c := &cursor{input: "LOAD stm32/pendsv.o\n"}
	lf, err := loadedFile(c)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, lf.Path, "stm32/pendsv.o")
	test.ExpectEquality(t, lf.Span, Span{Offset: 0, Length: 19})

	for _, s := range []string{"LOAD\n", "LOADx.o\n", "START GROUP\n", "0x0 foo\n"} {
		c = &cursor{input: s}
		_, err = loadedFile(c)
		test.ExpectFailure(t, err, s)
	}
}
