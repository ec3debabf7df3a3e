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

package maploader

import (
	"os"
	"path/filepath"

	"github.com/jetsetilly/linkmap/curated"
)

// Error patterns returned by Find().
const (
	NotFound  = "maploader: no map file found in %s"
	Ambiguous = "maploader: more than one map file in %s"
)

// the names given to map files by the build systems we know about. in order of
// preference
var conventionalNames = []string{"armcode.map", "custom2.map", "main.map"}

// sub-directories that are searched for a map file with a conventional name
var conventionalDirs = [][]string{
	{},
	{"main"},
	{"main", "bin"},
	{"custom", "bin"},
	{"arm"},
}

// Find resolves the path to a map file. If the path is a file or a remote URL
// then it is returned unchanged. If the path is a directory then the directory and some
// conventional sub-directories are searched for a map file with a conventional
// name. If nothing is found the directory itself is searched for exactly one
// file with the .map extension.
func Find(pth string) (string, error) {
	if IsRemote(pth) {
		return pth, nil
	}

	fi, err := os.Stat(pth)
	if err != nil {
		return "", curated.Errorf(LoadError, err)
	}

	if !fi.IsDir() {
		return pth, nil
	}

	for _, d := range conventionalDirs {
		for _, n := range conventionalNames {
			candidate := filepath.Join(append(append([]string{pth}, d...), n)...)
			if isFile(candidate) {
				return candidate, nil
			}
		}
	}

	matches, err := filepath.Glob(filepath.Join(pth, "*.map"))
	if err != nil {
		return "", curated.Errorf(LoadError, err)
	}

	var files []string
	for _, m := range matches {
		if isFile(m) {
			files = append(files, m)
		}
	}

	switch len(files) {
	case 0:
		return "", curated.Errorf(NotFound, pth)
	case 1:
		return files[0], nil
	}

	return "", curated.Errorf(Ambiguous, pth)
}

func isFile(pth string) bool {
	fi, err := os.Stat(pth)
	return err == nil && fi.Mode().IsRegular()
}
