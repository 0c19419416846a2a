// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package romloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// Sentinal error patterns.
const (
	FileError = "romloader: %v"
)

// Loader is used to specify the ROM to use when attaching to the interpreter.
type Loader struct {
	// filename of ROM to load
	Filename string

	// expected hash of the loaded ROM. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []byte

	loaded bool
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// ShortName returns a shortened version of the filename. Suitable for window
// titles.
func (ld Loader) ShortName() string {
	n := path.Base(ld.Filename)
	return strings.TrimSuffix(n, path.Ext(n))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return ld.loaded
}

// Load the ROM data. Loader filenames with a valid scheme will use that method
// to load the data. Currently supported schemes are HTTP and local files.
//
// The whole of the file is read. A file that cannot be read completely is an
// error. An empty file is not an error.
func (ld *Loader) Load() error {
	if ld.loaded {
		return nil
	}

	scheme := "file"

	u, err := url.Parse(ld.Filename)
	if err == nil {
		scheme = u.Scheme
	}

	switch scheme {
	case "http":
		fallthrough
	case "https":
		resp, err := http.Get(ld.Filename)
		if err != nil {
			return curated.Errorf(FileError, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf(FileError, fmt.Sprintf("%s (%s)", resp.Status, ld.Filename))
		}

		ld.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf(FileError, err)
		}

	case "file":
		fallthrough

	case "":
		f, err := os.Open(ld.Filename)
		if err != nil {
			return curated.Errorf(FileError, err)
		}
		defer f.Close()

		ld.Data, err = io.ReadAll(f)
		if err != nil {
			return curated.Errorf(FileError, err)
		}

	default:
		return curated.Errorf(FileError, fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	// generate hash
	hash := fmt.Sprintf("%x", sha1.Sum(ld.Data))

	// check for hash consistency
	if ld.Hash != "" && ld.Hash != hash {
		return curated.Errorf(FileError, "unexpected hash value")
	}

	ld.Hash = hash
	ld.loaded = true

	return nil
}
