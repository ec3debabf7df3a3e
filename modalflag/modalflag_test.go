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

package modalflag_test

import (
	"io"
	"strings"
	"testing"

	"github.com/jetsetilly/linkmap/modalflag"
	"github.com/jetsetilly/linkmap/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{Output: io.Discard}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
}

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{Output: io.Discard}
	md.NewArgs([]string{"--test", "1", "2"})
	testFlag := md.AddBool("test", false, "test flag")

	test.ExpectFailure(t, *testFlag)

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")

	test.ExpectSuccess(t, *testFlag)
	test.ExpectEquality(t, len(md.RemainingArgs()), 2)
	test.ExpectEquality(t, md.GetArg(1), "2")
}

func TestUnknownFlag(t *testing.T) {
	md := modalflag.Modes{Output: io.Discard}
	md.NewArgs([]string{"--unknown"})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
}

func TestNoHelpAvailable(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"--help"})

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, tw.Compare("No help available\n"))
}

func TestHelpFlags(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"--help"})
	md.AddBool("test", true, "test flag")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	help := tw.String()
	test.ExpectSuccess(t, strings.HasPrefix(help, "Usage:\n"))
	test.ExpectSuccess(t, strings.Contains(help, "--test"))
	test.ExpectSuccess(t, strings.Contains(help, "test flag (default true)"))
}

func TestHelpModes(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"--help"})
	md.AddSubModes("A", "B", "C")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  available sub-modes: A, B, C\n" +
		"    default: A\n"
	test.ExpectEquality(t, tw.String(), expectedHelp)
}

func TestHelpFlagsAndModes(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"--help"})
	md.AddBool("test", true, "test flag")
	md.AddSubModes("A", "B", "C")
	md.AdditionalHelp("more help")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	help := tw.String()
	test.ExpectSuccess(t, strings.Contains(help, "test flag (default true)"))
	test.ExpectSuccess(t, strings.Contains(help, "\n\n  available sub-modes: A, B, C\n    default: A\n"))
	test.ExpectSuccess(t, strings.HasSuffix(help, "\nmore help\n"))
}

func TestHelpForMode(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"check", "--help"})
	md.AddSubModes("SUMMARY", "CHECK")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)

	md.NewMode()
	md.AddBool("log", false, "echo log")
	md.AdditionalHelp("fails if there is unparsed content")

	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, err)

	help := tw.String()
	test.ExpectSuccess(t, strings.HasPrefix(help, "Usage for CHECK mode:\n"))
	test.ExpectSuccess(t, strings.Contains(help, "--log"))
	test.ExpectSuccess(t, strings.HasSuffix(help, "\nfails if there is unparsed content\n"))

	// no flags and no sub-modes
	tw.Clear()
	md.NewMode()
	p, _ = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectEquality(t, tw.String(), "No help available for CHECK\n")
}

func TestModes(t *testing.T) {
	md := modalflag.Modes{Output: io.Discard}
	md.NewArgs([]string{"tree", "--color", "ON", "firmware.map"})
	md.AddSubModes("SUMMARY", "TREE", "YAML")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "TREE")

	md.NewMode()
	color := md.AddString("color", "AUTO", "colour mode")
	tail := md.AddBool("tail", false, "print tail")
	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *color, "ON")
	test.ExpectFailure(t, *tail)
	test.ExpectEquality(t, md.GetArg(0), "firmware.map")
	test.ExpectEquality(t, md.Path(), "TREE")

	var visited []string
	md.Visit(func(f string) {
		visited = append(visited, f)
	})
	test.ExpectDeepEquality(t, visited, []string{"color"})
}

func TestDefaultMode(t *testing.T) {
	// first argument is not a sub-mode so the default is chosen and the
	// argument is left in place
	md := modalflag.Modes{Output: io.Discard}
	md.NewArgs([]string{"firmware.map"})
	md.AddSubModes("SUMMARY", "TREE")

	_, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "SUMMARY")

	md.NewMode()
	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.GetArg(0), "firmware.map")

	// flags for the default mode cause the default mode to be chosen
	md = modalflag.Modes{Output: io.Discard}
	md.NewArgs([]string{"--tail", "firmware.map"})
	md.AddSubModes("SUMMARY", "TREE")

	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "SUMMARY")

	md.NewMode()
	tail := md.AddBool("tail", false, "print tail")
	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, *tail)
	test.ExpectEquality(t, md.GetArg(0), "firmware.map")
}

func TestSubModeCase(t *testing.T) {
	md := modalflag.Modes{Output: io.Discard}
	md.NewArgs([]string{"Yaml"})
	md.AddSubModes("summary", "yaml")

	_, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "YAML")
	test.ExpectEquality(t, md.String(), "YAML")
}
