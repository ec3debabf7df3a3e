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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectFailure and ExpectSuccess functions test for failure and success
// under generic conditions. Supported types are bool and error.
//
// It is worth describing how the "Expect" functions handle the nil type
// because it is not obvious. The nil type is considered a success and
// consequently will cause ExpectFailure to fail and ExpectSuccess to succeed.
// This is because of how errors usually work (nil to indicate no error).
//
// The "Demand" functions are the same as the "Expect" functions except that
// a failure is fatal to the test.
//
// ExpectDeepEquality compares composite values with the go-cmp package and
// reports a diff on failure. It is used for comparing parsed map documents.
//
// The CompareWriter type implements the io.Writer interface and should be
// used to capture output. The Compare() function can then be used to test for
// equality.
package test
