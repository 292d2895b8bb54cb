// This file is part of Emu816.
//
// Emu816 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Emu816 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Emu816.  If not, see <https://www.gnu.org/licenses/>.

package firmwareloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/emu816/emu816/curated"
)

// Sentinal error patterns for the firmwareloader package.
const (
	LoadError         = "firmwareloader: %v"
	UnsupportedScheme = "firmwareloader: unsupported URL scheme (%s)"
	UnexpectedHash    = "firmwareloader: unexpected hash value (%s)"
	EmptyFirmware     = "firmwareloader: firmware is empty (%s)"
)

// Loader is used to specify the firmware to load into flash.
type Loader struct {
	// filename of the firmware to load. can be a http or https URL
	Filename string

	// expected hash of the loaded firmware. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
// The hash argument may be empty.
func NewLoader(filename string, hash string) Loader {
	return Loader{
		Filename: filename,
		Hash:     strings.ToLower(strings.TrimSpace(hash)),
	}
}

// ShortName returns a shortened version of the Loader filename.
func (fl Loader) ShortName() string {
	short := filepath.Base(fl.Filename)
	return strings.TrimSuffix(short, filepath.Ext(short))
}

// HasLoaded returns true if Load() has been successfully called.
func (fl Loader) HasLoaded() bool {
	return len(fl.Data) > 0
}

// Load the firmware data. Loader filenames with a valid scheme will use that
// method to load the data. Currently supported schemes are HTTP and local
// files.
//
// Calling Load() on a Loader that has already loaded its data does nothing.
func (fl *Loader) Load() error {
	if fl.HasLoaded() {
		return nil
	}

	scheme := "file"

	u, err := url.Parse(fl.Filename)
	if err == nil {
		scheme = u.Scheme
	}

	var data []byte

	switch scheme {
	case "http":
		fallthrough
	case "https":
		resp, err := http.Get(fl.Filename)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf(LoadError, resp.Status)
		}

		data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}

	case "file":
		fallthrough

	case "":
		data, err = os.ReadFile(fl.Filename)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}

	default:
		// a single letter scheme is a windows drive letter
		if len(scheme) != 1 {
			return curated.Errorf(UnsupportedScheme, scheme)
		}
		data, err = os.ReadFile(fl.Filename)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}
	}

	if len(data) == 0 {
		return curated.Errorf(EmptyFirmware, fl.Filename)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))

	// check for hash consistency
	if fl.Hash != "" && fl.Hash != hash {
		return curated.Errorf(UnexpectedHash, hash)
	}

	fl.Hash = hash
	fl.Data = data

	return nil
}
