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

// Package colorterm provides ANSI pens for coloured terminal output and a way
// of deciding whether colour should be used at all.
//
// Whether an output file is a terminal is decided with the termios package
// from github.com/pkg/term. There is no terminal detection under windows and
// colour must be turned on explicitly.
package colorterm
