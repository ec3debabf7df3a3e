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

package report

import (
	"io"

	"github.com/jetsetilly/linkmap/curated"
	"github.com/jetsetilly/linkmap/mapfile"
	"gopkg.in/yaml.v3"
)

// EncodeError is the error pattern for encoding failures.
const EncodeError = "report: %v"

// YAML writes the document as a YAML document. See the Export type for the
// structure of the output.
func YAML(w io.Writer, doc *mapfile.Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(NewExport(doc)); err != nil {
		return curated.Errorf(EncodeError, err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf(EncodeError, err)
	}

	return nil
}
