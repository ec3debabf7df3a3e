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

package report_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/linkmap/colorterm"
	"github.com/jetsetilly/linkmap/mapfile"
	"github.com/jetsetilly/linkmap/report"
	"github.com/jetsetilly/linkmap/test"
	"gopkg.in/yaml.v3"
)

var minimal = strings.Join([]string{
	mapfile.ArchiveTag,
	"",
	"a.a(m.o)",
	"  b.o (sym)",
	"",
	mapfile.DiscardedTag,
	"",
	".g 0x1 0xc b.o",
	"",
	mapfile.MemoryTag,
	"",
	"Name Origin Length Attributes",
	"FLASH 0x08040000 0x000c0000 xr",
	"*default* 0x0 0xffffffffffffffff",
	"",
	mapfile.MapTag,
	"",
	"LOAD x.o",
	"0x20030000 base = (ORIGIN(SRAM))",
	".text 0x08040000 0x10",
	" .text.main 0x08040000 0x10 main.o",
	"                0x08040000                main",
	" *(.glue_7)",
	"OUTPUT(x.elf elf32-littlearm)",
	"",
}, "\n")

func parse(t *testing.T) *mapfile.Document {
	t.Helper()
	doc, err := mapfile.Parse(minimal)
	test.DemandSuccess(t, err)
	return doc
}

func TestSummary(t *testing.T) {
	w := &strings.Builder{}
	test.ExpectSuccess(t, report.Summary(w, parse(t)))
	test.ExpectEquality(t, w.String(), "references: 1\n"+
		"discarded: 1\n"+
		"memories: 2\n"+
		"files: 1\n"+
		"sections: 4\n"+
		"symbols: 2\n"+
		"tail bytes: 30\n")
}

func TestTree(t *testing.T) {
	w := &strings.Builder{}
	test.ExpectSuccess(t, report.Tree(w, parse(t), false))
	test.ExpectEquality(t, w.String(), "archive references\n"+
		"  a.a <- b.o (sym)\n"+
		"discarded sections\n"+
		"  .g 0x1 0xc b.o\n"+
		"memory configuration\n"+
		"  FLASH 0x8040000 0xc0000 [xr]\n"+
		"  *default* 0x0 0xffffffffffffffff\n"+
		"loaded files\n"+
		"  x.o\n"+
		"memory map\n"+
		"  (no header)\n"+
		"    0x20030000 base = (ORIGIN(SRAM))\n"+
		"  .text 0x8040000 0x10\n"+
		"  .text.main 0x8040000 0x10 main.o\n"+
		"    0x8040000 main\n"+
		"  [*(.glue_7)]\n"+
		"unparsed tail\n"+
		"  30 bytes\n")
}

func TestTreeColour(t *testing.T) {
	w := &strings.Builder{}
	test.ExpectSuccess(t, report.Tree(w, parse(t), true))
	test.ExpectSuccess(t, strings.Contains(w.String(), colorterm.Pens["yellow"]+".text.main"+colorterm.NormalPen))
	test.ExpectSuccess(t, strings.Contains(w.String(), colorterm.PenStyles["bold"]+"memory map"+colorterm.NormalPen))
}

func TestYAML(t *testing.T) {
	doc := parse(t)

	w := &strings.Builder{}
	test.ExpectSuccess(t, report.YAML(w, doc))
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "references:\n"))

	var ex report.Export
	test.DemandSuccess(t, yaml.Unmarshal([]byte(w.String()), &ex))
	test.ExpectDeepEquality(t, ex, report.NewExport(doc))

	test.ExpectEquality(t, ex.Memory[0].Origin, "0x8040000")
	test.DemandSuccess(t, ex.Memory[0].Attributes != nil)
	test.ExpectEquality(t, *ex.Memory[0].Attributes, "xr")
	test.ExpectSuccess(t, ex.Memory[1].Attributes == nil)
	test.ExpectEquality(t, ex.Sections[0].Name, "")
	test.ExpectEquality(t, ex.Sections[0].Symbols[0].Expression, "base = (ORIGIN(SRAM))")
	test.ExpectEquality(t, ex.Sections[2].Symbols[0].Name, "")
	test.ExpectEquality(t, ex.Sections[2].Symbols[0].Expression, "main")
	test.ExpectEquality(t, ex.Sections[3].Label, "*(.glue_7)")
	test.ExpectEquality(t, len(ex.Sections[3].Symbols), 0)
	test.ExpectEquality(t, ex.Tail, "OUTPUT(x.elf elf32-littlearm)\n")
}

func TestDot(t *testing.T) {
	w := &strings.Builder{}
	report.Dot(w, parse(t))
	test.ExpectSuccess(t, strings.Contains(w.String(), "digraph"))
}
