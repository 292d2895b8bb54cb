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

package peripherals_test

import (
	"testing"

	"github.com/emu816/emu816/curated"
	"github.com/emu816/emu816/hardware/peripherals"
	"github.com/emu816/emu816/hardware/peripherals/uart"
	"github.com/emu816/emu816/logger"
	"github.com/emu816/emu816/test"
)

func TestDebugPort(t *testing.T) {
	io := peripherals.NewIO(uart.NewUART(&test.Writer{}))

	logger.Clear()
	test.ExpectSuccess(t, io.Write(0x03, 0x41))
	tw := &test.Writer{}
	logger.Tail(tw, 1)
	test.ExpectEquality(t, tw.String(), "io: 03: 41\n")

	_, err := io.Read(0x00)
	test.ExpectSuccess(t, curated.Is(err, peripherals.WriteOnly))

	// logging can be turned off
	io.Debug = logger.Deny
	logger.Clear()
	test.ExpectSuccess(t, io.Write(0x03, 0x42))
	test.ExpectEquality(t, len(logger.Entries()), 0)
}

func TestUARTPorts(t *testing.T) {
	tw := &test.Writer{}
	u := uart.NewUART(tw)
	io := peripherals.NewIO(u)

	// scratch pad register is port $17
	test.ExpectSuccess(t, io.Write(0x17, 0x5a))
	v, err := io.Read(0x17)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x5a)

	// port $18 is a mirror of RHR/THR
	test.ExpectSuccess(t, io.Write(0x18, 'A'))
	for i, n := 0, u.ByteCycles(); i < n; i++ {
		io.Tick()
	}
	test.ExpectEquality(t, tw.String(), "A")

	u.Receive('B')
	v, err = io.Peek(0x10)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 'B')
	v, err = io.Read(0x10)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 'B')
	v, _ = io.Read(0x15)
	test.ExpectEquality(t, v&uart.LSRDataReady, 0)
}

func TestUnmappedPort(t *testing.T) {
	io := peripherals.NewIO(uart.NewUART(&test.Writer{}))

	_, err := io.Read(0x19)
	test.ExpectSuccess(t, curated.Is(err, peripherals.UnmappedPort))
	err = io.Write(0xff, 0x00)
	test.ExpectSuccess(t, curated.Is(err, peripherals.UnmappedPort))
	test.ExpectEquality(t, err.Error(), "peripherals: unmapped port ff")
}
