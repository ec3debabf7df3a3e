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
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/jetsetilly/linkmap/curated"
)

// Error patterns returned by the maploader package.
const (
	LoadError      = "maploader: %v"
	UnknownScheme  = "maploader: unsupported URL scheme (%s)"
	UnexpectedHash = "maploader: unexpected hash value (%s)"
)

// Loader is used to specify the map file to load.
type Loader struct {
	// filename of map file to load. can be a local file or a HTTP URL
	Filename string

	// expected hash of the loaded map file. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// ShortName returns a shortened version of the Loader filename.
func (ml Loader) ShortName() string {
	return strings.TrimSuffix(path.Base(ml.Filename), path.Ext(ml.Filename))
}

// HasLoaded returns true if Load() has been successfully called.
func (ml Loader) HasLoaded() bool {
	return ml.Data != nil
}

// String returns the loaded data as a string. The string shares no memory with
// the Data field.
func (ml Loader) String() string {
	return string(ml.Data)
}

// scheme returns the URL scheme of the filename. Filenames without a scheme,
// or that cannot be parsed as a URL, are local files.
func scheme(filename string) string {
	u, err := url.Parse(filename)
	if err != nil || u.Scheme == "" {
		return "file"
	}

	// windows volume names look like a single letter scheme
	if len(u.Scheme) == 1 {
		return "file"
	}

	return u.Scheme
}

// IsRemote returns true if the filename is a URL that Load() will fetch over
// HTTP.
func IsRemote(filename string) bool {
	s := scheme(filename)
	return s == "http" || s == "https"
}

// Load the map file data. Loader filenames with a valid scheme will use that
// method to load the data. Currently supported schemes are HTTP and local
// files.
func (ml *Loader) Load() error {
	if ml.HasLoaded() {
		return nil
	}

	var data []byte
	var err error

	switch s := scheme(ml.Filename); s {
	case "http":
		fallthrough
	case "https":
		resp, err := http.Get(ml.Filename)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf(LoadError, fmt.Errorf("%s: %s", ml.Filename, resp.Status))
		}

		data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}

	case "file":
		data, err = os.ReadFile(ml.Filename)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}

	default:
		return curated.Errorf(UnknownScheme, s)
	}

	// generate hash
	hash := fmt.Sprintf("%x", sha1.Sum(data))

	// check for hash consistency
	if ml.Hash != "" && ml.Hash != hash {
		return curated.Errorf(UnexpectedHash, hash)
	}

	ml.Hash = hash
	ml.Data = data

	return nil
}
