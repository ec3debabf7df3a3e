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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. For example:
//
//	e := curated.Errorf("missing section: %s", "Memory Configuration")
//
//	if curated.Is(e, "missing section: %s") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	f := curated.Errorf("mapfile: %v", e)
//
//	if curated.Has(f, "missing section: %s") {
//		fmt.Println("true")
//	}
//
// Patterns that are to be tested for in this way should be stored as exported
// const strings. The mapfile package does this for its error taxonomy.
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. For the purposes of this package we think of
// chains as being composed of parts separted by the sub-string ': ' as
// suggested on p239 of "The Go Programming Language" (Donovan, Kernighan).
// For example:
//
//	part 1: part 2: part 3
//
// Curated errors implement Unwrap() so they work with errors.Is() and
// errors.As() in the standard library. The unwrapped error is the first error
// value given to Errorf().
package curated
