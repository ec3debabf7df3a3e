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

package version

import (
	"fmt"
	"runtime/debug"
)

// The name to use when referring to the application
const ApplicationName = "Linkmap"

// if number is empty then the project was not built with a version number set
// by the linker. for example:
//
//	go build -ldflags "-X github.com/jetsetilly/linkmap/version.number=v0.1.0"
var number string

var revision string

var version string

// Version returns the version string, the revision string and whether this is a
// numbered "release" version.
//
// If the version string is "unreleased" then the project has been built
// without a version number but with vcs information. If the version string is
// "local" then there is neither.
func Version() (string, string, bool) {
	return version, revision, version == number
}

// String returns the application name and version in a form suitable for
// printing.
func String() string {
	v, r, release := Version()
	if release {
		return fmt.Sprintf("%s %s", ApplicationName, v)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, v, r)
}

func init() {
	set(debug.ReadBuildInfo())
}

func set(info *debug.BuildInfo, ok bool) {
	var vcs bool
	var vcsRevision string
	var vcsModified bool

	if ok {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				vcsRevision = v.Value
			case "vcs.modified":
				vcsModified = v.Value == "true"
			}
		}
	}

	if vcsRevision == "" {
		revision = "no revision information"
	} else {
		revision = vcsRevision
		if vcsModified {
			revision = fmt.Sprintf("%s+dirty", revision)
		}
	}

	if number == "" {
		if vcs {
			version = "unreleased"
		} else {
			version = "local"
		}
	} else {
		version = number
	}
}
