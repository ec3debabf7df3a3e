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

// Package modalflag parses command lines that select a mode of operation
// before the flags and arguments of that mode. It is built on the
// github.com/spf13/pflag package and flags are given in the GNU style, with
// two dashes.
//
// Arguments are given once with NewArgs(). Each mode then declares its flags
// and sub-modes and calls Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("summary", "tree", "check")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// Sub-mode names are case insensitive and Mode() always returns the upper
// case form. The first sub-mode is the default, which is selected when the
// first argument is not a sub-mode name. That argument is then left for the
// next mode to consume.
//
// The selected mode calls NewMode() to forget the previous flags and declares
// its own before parsing again:
//
//	case "TREE":
//		md.NewMode()
//		color := md.AddString("color", "AUTO", "use colour in output: AUTO, ON, OFF")
//		if p, err := md.Parse(); err != nil || p != modalflag.ParseContinue {
//			return err
//		}
//		tree(*color, md.GetArg(0))
//
// Flags must come before any other argument of the mode. Parsing stops at the
// first argument that is not a flag.
//
// Help is printed to the Output writer when the --help flag is given. It
// lists the flags and sub-modes of the current mode, followed by any text
// given to AdditionalHelp().
package modalflag
