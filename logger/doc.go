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

// Package logger is the central log of the application. It is a bounded list
// of entries, each entry having a tag and a detail string. Repeated entries are
// collapsed into one entry with a repeat count.
//
//	logger.Log(logger.Allow, "linkmap", "parsing firmware.map")
//	logger.Logf(logger.Allow, "mapfile", "%d sections", n)
//
// The Permission argument decides whether the entry is made at all. Allow is
// always permitted and Verbose(v) is permitted when v is true.
//
// Entries are echoed as they are made with SetEcho(). Output can be coloured
// by wrapping the writer with NewColorizer().
package logger
