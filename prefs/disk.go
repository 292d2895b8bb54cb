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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/emu816/emu816/curated"
)

// DefaultPrefsFile is the default filename of the preferences file.
const DefaultPrefsFile = "preferences"

// Sentinal error patterns for the Disk type.
const (
	NoPrefsFile  = "prefs: no preferences file (%s)"
	DuplicateKey = "prefs: duplicate key (%s)"
	DiskError    = "prefs: %v"
)

const keySep = " :: "

// the first line of the preferences file
const header = "*** emu816 preferences file ***"

// pref is implemented by all the types in the package
type pref interface {
	fmt.Stringer
	Set(v Value) error
	Get() Value
}

// Disk represents preference values as stored on disk.
type Disk struct {
	crit    sync.Mutex
	path    string
	entries map[string]pref

	// the values of the entries when they were added. used by Reset()
	defaults map[string]string

	// entries that were set from the command line. these are not changed by
	// Load()
	overrides map[string]bool
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:      path,
		entries:   make(map[string]pref),
		defaults:  make(map[string]string),
		overrides: make(map[string]bool),
	}, nil
}

func (dsk *Disk) String() string {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	s := strings.Builder{}
	for _, k := range sortedKeys(dsk.entries) {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, dsk.entries[k]))
	}
	return s.String()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Add preference value to the list of values to be stored on disk. The
// current value of the preference is taken as the default value for Reset().
//
// If the key is present in the command line stack the command line value is
// applied immediately.
func (dsk *Disk) Add(key string, p pref) error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p
	dsk.defaults[key] = p.String()

	if ok, v := GetCommandLinePref(key); ok {
		dsk.overrides[key] = true
		return p.Set(v)
	}
	return nil
}

// Reset all entries to their default values.
func (dsk *Disk) Reset() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	for k, p := range dsk.entries {
		if err := p.Set(dsk.defaults[k]); err != nil {
			return err
		}
	}
	return nil
}

// Save current preference values to disk. Entries in the file that have not
// been added to this Disk instance are preserved.
func (dsk *Disk) Save() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	values, err := dsk.read()
	if err != nil && !curated.Is(err, NoPrefsFile) {
		return err
	}
	for k, p := range dsk.entries {
		values[k] = p.String()
	}

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf(DiskError, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, header)
	for _, k := range sortedKeys(values) {
		fmt.Fprintf(w, "%s%s%s\n", k, keySep, values[k])
	}
	if err := w.Flush(); err != nil {
		return curated.Errorf(DiskError, err)
	}

	return nil
}

// Load preference values from disk. If limit is true then keys in the file
// that have not been added to this Disk instance are ignored. Otherwise an
// unknown key is an error.
func (dsk *Disk) Load(limit bool) error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	values, err := dsk.read()
	if err != nil {
		return err
	}

	for _, k := range sortedKeys(values) {
		p, ok := dsk.entries[k]
		if !ok {
			if limit {
				continue
			}
			return curated.Errorf(DiskError, fmt.Sprintf("unknown key (%s)", k))
		}
		if dsk.overrides[k] {
			continue
		}
		if err := p.Set(values[k]); err != nil {
			return err
		}
	}

	return nil
}

// read the preferences file into a map of key/value strings. the map is
// never nil
func (dsk *Disk) read() (map[string]string, error) {
	values := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return values, curated.Errorf(NoPrefsFile, dsk.path)
		}
		return values, curated.Errorf(DiskError, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	if !scanner.Scan() || scanner.Text() != header {
		return values, curated.Errorf(DiskError, fmt.Sprintf("not a preferences file (%s)", dsk.path))
	}

	for scanner.Scan() {
		k, v, ok := strings.Cut(scanner.Text(), keySep)
		if ok {
			values[strings.TrimSpace(k)] = strings.TrimSpace(v)
		}
	}
	if err := scanner.Err(); err != nil {
		return values, curated.Errorf(DiskError, err)
	}

	return values, nil
}
