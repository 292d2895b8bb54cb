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

package memory_test

import (
	"testing"

	"github.com/emu816/emu816/curated"
	"github.com/emu816/emu816/hardware/memory"
	"github.com/emu816/emu816/hardware/memory/bus"
	"github.com/emu816/emu816/hardware/memory/memorymap"
	"github.com/emu816/emu816/test"
)

// mockIO records the last write and returns the port number on read
type mockIO struct {
	port  uint8
	data  uint8
	reads int
}

func (io *mockIO) Read(port uint8) (uint8, error) {
	io.reads++
	return port, nil
}

func (io *mockIO) Peek(port uint8) (uint8, error) {
	return port, nil
}

func (io *mockIO) Write(port uint8, data uint8) error {
	io.port = port
	io.data = data
	return nil
}

func (io *mockIO) Tick() {}

func readData(t *testing.T, mem *memory.Memory, bank uint8, address uint16, expectedData uint8) {
	t.Helper()
	d, err := mem.Read(bank, address)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, d, expectedData)
}

func TestRAM(t *testing.T) {
	mem := memory.NewMemory(nil)

	test.ExpectSuccess(t, mem.Write(0x00, 0x0000, 0x12))
	test.ExpectSuccess(t, mem.Write(0x01, 0x0000, 0x34))
	test.ExpectSuccess(t, mem.Write(0x20, 0xffff, 0x56))
	test.ExpectSuccess(t, mem.Write(0x21, 0xffff, 0x78))

	readData(t, mem, 0x00, 0x0000, 0x12)
	readData(t, mem, 0x01, 0x0000, 0x34)
	readData(t, mem, 0x20, 0xffff, 0x56)
	readData(t, mem, 0x21, 0xffff, 0x78)
}

func TestFlash(t *testing.T) {
	mem := memory.NewMemory(nil)

	img := make([]uint8, 0x8000)
	img[0x7ffc] = 0x00
	img[0x7ffd] = 0x80
	test.DemandSuccess(t, mem.LoadFlash(img))
	readData(t, mem, 0x00, 0xfffc, 0x00)
	readData(t, mem, 0x00, 0xfffd, 0x80)

	// flash is read-only to the CPU
	err := mem.Write(0x00, 0x8000, 0xea)
	test.ExpectSuccess(t, curated.Is(err, bus.ReadOnly))
	test.ExpectEquality(t, err.Error(), "bus: write to read-only address 00:8000")

	// but can be changed with Poke()
	test.ExpectSuccess(t, mem.Poke(0x00, 0x8000, 0xea))
	readData(t, mem, 0x00, 0x8000, 0xea)

	err = mem.LoadFlash(make([]uint8, memorymap.FlashSize+1))
	test.ExpectSuccess(t, curated.Is(err, memory.FlashTooLarge))
}

func TestUnmapped(t *testing.T) {
	mem := memory.NewMemory(nil)

	_, err := mem.Read(0x40, 0x0000)
	test.ExpectSuccess(t, curated.Is(err, bus.Unmapped))

	_, err = mem.Read(0x10, 0x0000)
	test.ExpectSuccess(t, curated.Is(err, bus.Unmapped))

	err = mem.Write(0xff, 0x1234, 0x00)
	test.ExpectSuccess(t, curated.Is(err, bus.Unmapped))

	// no peripherals attached
	_, err = mem.Read(0x00, 0x7f00)
	test.ExpectSuccess(t, curated.Is(err, bus.Unmapped))
}

func TestIO(t *testing.T) {
	io := &mockIO{}
	mem := memory.NewMemory(io)

	test.ExpectSuccess(t, mem.Write(0x00, 0x7f10, 0x41))
	test.ExpectEquality(t, io.port, 0x10)
	test.ExpectEquality(t, io.data, 0x41)

	// IO page is mirrored in every low bank
	readData(t, mem, 0x05, 0x7f15, 0x15)
	test.ExpectEquality(t, io.reads, 1)

	// peek does not read from the peripheral
	v, err := mem.Peek(0x00, 0x7f15)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x15)
	test.ExpectEquality(t, io.reads, 1)
}
