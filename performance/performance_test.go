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

package performance_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/emu816/emu816/curated"
	"github.com/emu816/emu816/hardware"
	"github.com/emu816/emu816/hardware/preferences"
	"github.com/emu816/emu816/performance"
	"github.com/emu816/emu816/test"
)

// a machine running a branch to itself forever
func loopingMachine(t *testing.T) *hardware.Machine {
	t.Helper()

	img := make([]uint8, 0x8000)
	img[0] = 0x80
	img[1] = 0xfe
	img[0x7ffc] = 0x00
	img[0x7ffd] = 0x80

	p, err := preferences.NewPreferences("")
	test.DemandSuccess(t, err)
	m, err := hardware.NewMachine(p, img, &test.Writer{})
	test.DemandSuccess(t, err)
	return m
}

func TestCalcSpeed(t *testing.T) {
	mhz, mips, accuracy := performance.CalcSpeed(8000000, 2000000, 2.0, 4.0)
	test.ExpectApproximate(t, mhz, 4.0, 0.001)
	test.ExpectApproximate(t, mips, 1.0, 0.001)
	test.ExpectApproximate(t, accuracy, 100.0, 0.001)

	mhz, mips, accuracy = performance.CalcSpeed(100, 10, 0, 4.0)
	test.ExpectEquality(t, mhz, 0.0)
	test.ExpectEquality(t, mips, 0.0)
	test.ExpectEquality(t, accuracy, 0.0)
}

func TestParseProfileString(t *testing.T) {
	p, err := performance.ParseProfileString("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)

	p, err = performance.ParseProfileString("cpu,MEM")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem)

	p, err = performance.ParseProfileString("all")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileAll)

	_, err = performance.ParseProfileString("cpu,disk")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, performance.UnknownProfile))
}

func TestRunProfiler(t *testing.T) {
	var ran bool
	err := performance.RunProfiler(performance.ProfileNone, "test", func() error {
		ran = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ran)

	sentinal := errors.New("test")
	err = performance.RunProfiler(performance.ProfileNone, "test", func() error {
		return sentinal
	})
	test.ExpectSuccess(t, errors.Is(err, sentinal))
}

func TestCheckUncapped(t *testing.T) {
	m := loopingMachine(t)
	out := &test.Writer{}

	err := performance.Check(out, performance.ProfileNone, m, true, "50ms")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(out.String(), "MIPS"))
	test.ExpectSuccess(t, m.Cycles > 0)
}

func TestCheckPaced(t *testing.T) {
	m := loopingMachine(t)
	out := &test.Writer{}

	err := performance.Check(out, performance.ProfileNone, m, false, "50ms")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(out.String(), "MHz"))
	test.ExpectSuccess(t, !strings.Contains(out.String(), "MIPS"))
}

func TestCheckDuration(t *testing.T) {
	m := loopingMachine(t)
	err := performance.Check(&test.Writer{}, performance.ProfileNone, m, true, "soon")
	test.ExpectFailure(t, err)
}
