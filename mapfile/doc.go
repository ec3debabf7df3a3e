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

// Package mapfile parses the map file produced by GNU ld (and compatible
// linkers) with the -Map option. The result is a Document describing the
// archive members pulled into the link, the discarded input sections, the
// memory configuration, the loaded files and the placement of sections and
// symbols.
//
// The map file is a report meant for people and not a serialisation format.
// The grammar used by the package is therefore somewhat forgiving in places
// and strict in others. The overall shape of the file must be:
//
//	Archive member included to satisfy reference by file (symbol)
//	...
//	Discarded input sections
//	...
//	Memory Configuration
//
//	Name             Origin             Length             Attributes
//	...
//	Linker script and memory map
//
//	LOAD ...
//	...
//
// The four tag lines are required, in that order, even if the block they
// introduce is empty. A missing tag line is a parse error.
//
// The memory map itself is parsed as a list of sections. A section has an
// optional header followed by symbol lines. A header is a name, address and
// size, with an optional source file. The name may be on a line by itself,
// in which case the remainder of the header is on the next line.
//
// Symbol lines start with an address. If the address is followed by a second
// hex literal then the line is an object contribution (size and source file)
// otherwise it is the text of a linker script expression. A symbol line may
// be followed by a line consisting of the same address and a name. If so the
// name is given to the symbol.
//
// Indentation is recorded for each symbol but it has no effect on the
// structure of the document.
//
// Parsing stops at the first line of the memory map that cannot be parsed.
// The remainder of the input is kept in the Tail field of the document. This
// is not an error because GNU ld adds content that is not modelled by this
// package.
//
// Parsing is a pure function of the input. There is no shared state and
// different map files can be parsed concurrently.
package mapfile
