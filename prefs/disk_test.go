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

package prefs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/emu816/emu816/curated"
	"github.com/emu816/emu816/prefs"
	"github.com/emu816/emu816/test"
)

func TestDisk(t *testing.T) {
	pth := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	var clock prefs.Float
	var echo prefs.Bool
	test.DemandSuccess(t, clock.Set(4.0))

	dsk, err := prefs.NewDisk(pth)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, dsk.Add("cpu.clock", &clock))
	test.ExpectSuccess(t, dsk.Add("uart.echo", &echo))
	test.ExpectSuccess(t, curated.Is(dsk.Add("uart.echo", &echo), prefs.DuplicateKey))

	// file does not exist yet
	err = dsk.Load(true)
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))

	test.DemandSuccess(t, clock.Set(2.0))
	test.DemandSuccess(t, echo.Set(true))
	test.DemandSuccess(t, dsk.Save())

	data, err := os.ReadFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(data), "*** emu816 preferences file ***\ncpu.clock :: 2.000\nuart.echo :: true\n")

	// reset returns values to the value they had when added
	test.ExpectSuccess(t, dsk.Reset())
	test.ExpectEquality(t, clock.Get().(float64), 4.0)
	test.ExpectEquality(t, echo.Get().(bool), false)

	test.ExpectSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, clock.Get().(float64), 2.0)
	test.ExpectEquality(t, echo.Get().(bool), true)
	test.ExpectEquality(t, dsk.String(), "cpu.clock :: 2.000\nuart.echo :: true\n")
}

func TestDiskUnknownKeys(t *testing.T) {
	pth := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)
	err := os.WriteFile(pth, []byte("*** emu816 preferences file ***\nmachine.batch :: 100\nother.key :: 1\n"), 0600)
	test.DemandSuccess(t, err)

	var batch prefs.Int
	dsk, _ := prefs.NewDisk(pth)
	test.DemandSuccess(t, dsk.Add("machine.batch", &batch))

	test.ExpectFailure(t, dsk.Load(false))
	test.ExpectSuccess(t, dsk.Load(true))
	test.ExpectEquality(t, batch.Get().(int), 100)

	// saving preserves keys that this instance doesn't know about
	test.DemandSuccess(t, batch.Set(200))
	test.DemandSuccess(t, dsk.Save())
	data, _ := os.ReadFile(pth)
	test.ExpectEquality(t, string(data), "*** emu816 preferences file ***\nmachine.batch :: 200\nother.key :: 1\n")
}

func TestDiskCommandLine(t *testing.T) {
	pth := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)
	err := os.WriteFile(pth, []byte("*** emu816 preferences file ***\ncpu.clock :: 2.0\n"), 0600)
	test.DemandSuccess(t, err)

	prefs.PushCommandLineStack("cpu.clock::8.0")
	defer prefs.PopCommandLineStack()

	var clock prefs.Float
	dsk, _ := prefs.NewDisk(pth)
	test.DemandSuccess(t, dsk.Add("cpu.clock", &clock))
	test.ExpectEquality(t, clock.Get().(float64), 8.0)

	// the command line value takes precedence over the value on disk
	test.ExpectSuccess(t, dsk.Load(true))
	test.ExpectEquality(t, clock.Get().(float64), 8.0)
}
