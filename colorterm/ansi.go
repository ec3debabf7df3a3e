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

package colorterm

import (
	"fmt"
	"strings"
)

// ansi color.
const (
	colBlack   = 0
	colRed     = 1
	colGreen   = 2
	colYellow  = 3
	colBlue    = 4
	colMagenta = 5
	colCyan    = 6
	colWhite   = 7
	colDefault = 9
)

// ansi target.
const (
	targetPen       = 3
	targetBrightPen = 9
)

// ansi attribute.
const (
	attrBold      = 1
	attrDim       = 2
	attrUnderline = 4
)

var colors = map[string]int{
	"BLACK":   colBlack,
	"RED":     colRed,
	"GREEN":   colGreen,
	"YELLOW":  colYellow,
	"BLUE":    colBlue,
	"MAGENTA": colMagenta,
	"CYAN":    colCyan,
	"WHITE":   colWhite,
	"NORMAL":  colDefault,
}

var attributes = map[string]int{
	"BOLD":      attrBold,
	"DIM":       attrDim,
	"UNDERLINE": attrUnderline,
}

// Pens is the table of colors to be used for text.
var Pens map[string]string

// DimPens is the table of pastel colors to be used for text.
var DimPens map[string]string

// PenStyles is the table of styles to be used for text.
var PenStyles map[string]string

// NormalPen is the CSI sequence for regular text.
var NormalPen string

func init() {
	Pens = make(map[string]string)
	DimPens = make(map[string]string)
	PenStyles = make(map[string]string)

	NormalPen, _ = ColorBuild("", "", false)

	for _, c := range []string{"red", "green", "yellow", "blue", "magenta", "cyan", "white"} {
		Pens[c], _ = ColorBuild(c, "", true)
		DimPens[c], _ = ColorBuild(c, "", false)
	}

	for _, a := range []string{"bold", "dim", "underline"} {
		PenStyles[a], _ = ColorBuild("", a, false)
	}
}

// ColorBuild creates the ANSI sequence to create the pen with the correct
// foreground color and attribute.
func ColorBuild(pen, attribute string, brightPen bool) (string, error) {
	s := strings.Builder{}
	s.Grow(16)
	s.WriteString("\033[")

	if pen != "" {
		c, ok := colors[strings.ToUpper(pen)]
		if !ok {
			return "", fmt.Errorf("unknown ANSI pen (%s)", pen)
		}
		t := targetPen
		if brightPen {
			t = targetBrightPen
		}
		s.WriteString(fmt.Sprintf("%d%d", t, c))
	}

	if attribute != "" {
		a, ok := attributes[strings.ToUpper(attribute)]
		if !ok {
			return "", fmt.Errorf("unknown ANSI attribute (%s)", attribute)
		}
		if s.Len() > 2 {
			s.WriteString(";")
		}
		s.WriteString(fmt.Sprintf("%d", a))
	}

	// terminate ANSI sequence
	s.WriteString("m")

	return s.String(), nil
}

// Paint returns s surrounded by the pen and the normal pen. If colour is false
// the string is returned unchanged.
func Paint(colour bool, pen string, s string) string {
	if !colour || pen == "" {
		return s
	}
	return pen + s + NormalPen
}
