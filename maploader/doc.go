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

// Package maploader is used to locate and load the map file that is to be
// parsed.
//
// The Find() function resolves a path to a map file. A directory is searched
// for the names used by common ARM build systems (armcode.map, custom2.map and
// main.map) in the directory and in the main, main/bin, custom/bin and arm
// sub-directories.
//
// The map file is read with the Load() function of the Loader type. Local
// files and data over HTTP are supported.
//
//	pth, err := maploader.Find("projects/demo")
//	if err != nil {
//		return err
//	}
//
//	ml := maploader.NewLoader(pth)
//	if err := ml.Load(); err != nil {
//		return err
//	}
//
// After loading, the Hash field contains the SHA1 hash of the data.
package maploader
