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

package modalflag

import (
	"errors"
	"io"
	"strings"

	"github.com/spf13/pflag"
)

const modeSeparator = "/"

// ParseResult is returned from the Parse() function.
type ParseResult int

// a list of valid ParseResult values.
const (
	// Continue with command line processing. If sub-modes were specified
	// before the call to Parse() then Mode() will return the selected mode.
	ParseContinue ParseResult = iota

	// Help was requested and has been printed.
	ParseHelp

	// an error has occurred and is returned as the second return value.
	ParseError
)

// Modes provides an easy way of handling command line arguments. The Output
// field should be specified before calling Parse() or you will not see any
// help messages.
type Modes struct {
	// where to print help messages
	Output io.Writer

	// flags for the current mode. replaced on every call to NewMode()
	flags *pflag.FlagSet

	// the arguments given to NewArgs(). idx is the first argument that has
	// not been consumed by a previous mode
	args []string
	idx  int

	// sub-modes for the current mode. the first entry is the default
	subModes []string

	// every mode that has been selected since NewArgs()
	path []string

	// text printed after the flag and sub-mode summary
	additionalHelp string
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the most recently selected mode.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns all the modes selected so far, separated by a slash.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// NewArgs starts processing a new list of arguments. The command line minus
// the program name for example.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.idx = 0
	md.path = md.path[:0]
	md.NewMode()
}

// NewMode indicates that further arguments should be considered part of a new
// mode. Flags and sub-modes from the previous mode are forgotten.
func (md *Modes) NewMode() {
	md.subModes = nil
	md.additionalHelp = ""

	md.flags = pflag.NewFlagSet("", pflag.ContinueOnError)
	md.flags.SetOutput(io.Discard)
	md.flags.Usage = func() {}

	// flags must come before the sub-mode. anything after the first non-flag
	// argument belongs to the sub-mode
	md.flags.SetInterspersed(false)
}

// AdditionalHelp sets text to be printed after the regular help on available
// flags and sub-modes.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// AddSubModes to the list of sub-modes for the next call to Parse(). The first
// sub-mode added is the default. Sub-mode comparisons are case insensitive.
func (md *Modes) AddSubModes(submodes ...string) {
	for _, s := range submodes {
		md.subModes = append(md.subModes, strings.ToUpper(s))
	}
}

// AddBool flag for next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// Visit calls fn with the name of every flag that was set on the command line,
// in lexicographical order.
func (md *Modes) Visit(fn func(flag string)) {
	md.flags.Visit(func(f *pflag.Flag) {
		fn(f.Name)
	})
}

// Parse the arguments for the current mode. The idiomatic usage is:
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		// help message has already been printed
//		return
//	case modalflag.ParseError:
//		printError(err)
//		return
//	}
//
// If sub-modes have been added, the first remaining argument is compared
// against them. If it does not match, or if there are flags that only the
// default sub-mode understands, the default sub-mode is selected and the
// argument is left in place for the next mode.
func (md *Modes) Parse() (ParseResult, error) {
	err := md.flags.Parse(md.args[md.idx:])

	if errors.Is(err, pflag.ErrHelp) {
		md.help()
		return ParseHelp, nil
	}

	if len(md.subModes) == 0 {
		if err != nil {
			return ParseError, err
		}
		return ParseContinue, nil
	}

	mode := md.subModes[0]
	if err == nil {
		arg := strings.ToUpper(md.flags.Arg(0))
		for _, s := range md.subModes {
			if s == arg {
				mode = s
				md.idx++
				break // for loop
			}
		}
	}
	md.path = append(md.path, mode)

	return ParseContinue, nil
}

// RemainingArgs returns the arguments that are not flags or a sub-mode. Only
// valid after a call to Parse().
func (md *Modes) RemainingArgs() []string {
	return md.flags.Args()
}

// GetArg returns the numbered argument that isn't a flag or sub-mode.
func (md *Modes) GetArg(i int) string {
	return md.flags.Arg(i)
}
