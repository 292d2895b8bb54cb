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

package memory

import (
	"github.com/emu816/emu816/curated"
	"github.com/emu816/emu816/hardware/memory/bus"
	"github.com/emu816/emu816/hardware/memory/memorymap"
)

// Sentinal error patterns for the memory package.
const (
	FlashTooLarge = "memory: flash image too large (%d bytes, maximum is %d)"
)

// Memory is the complete memory of the machine.
type Memory struct {
	lowRAM  []uint8
	flash   []uint8
	highRAM []uint8

	io bus.PeripheralBus
}

// NewMemory is the preferred method of initialisation for Memory. The io
// argument can be nil, in which case the IO page is unmapped.
func NewMemory(io bus.PeripheralBus) *Memory {
	return &Memory{
		lowRAM:  make([]uint8, memorymap.LowRAMSize),
		flash:   make([]uint8, memorymap.FlashSize),
		highRAM: make([]uint8, memorymap.HighRAMSize),
		io:      io,
	}
}

// LoadFlash copies the image into flash memory. The image begins at the
// start of flash, which is bank 0 address $8000. Any remaining flash is
// cleared.
func (mem *Memory) LoadFlash(data []uint8) error {
	if len(data) > len(mem.flash) {
		return curated.Errorf(FlashTooLarge, len(data), len(mem.flash))
	}
	n := copy(mem.flash, data)
	clear(mem.flash[n:])
	return nil
}

// Read implements the bus.CPUBus interface.
func (mem *Memory) Read(bank uint8, address uint16) (uint8, error) {
	area, idx := memorymap.MapAddress(bank, address)
	switch area {
	case memorymap.LowRAM:
		return mem.lowRAM[idx], nil
	case memorymap.Flash:
		return mem.flash[idx], nil
	case memorymap.HighRAM:
		return mem.highRAM[idx], nil
	case memorymap.IO:
		if mem.io != nil {
			return mem.io.Read(uint8(idx))
		}
	}
	return 0, curated.Errorf(bus.Unmapped, bank, address)
}

// Write implements the bus.CPUBus interface.
func (mem *Memory) Write(bank uint8, address uint16, data uint8) error {
	area, idx := memorymap.MapAddress(bank, address)
	switch area {
	case memorymap.LowRAM:
		mem.lowRAM[idx] = data
		return nil
	case memorymap.Flash:
		return curated.Errorf(bus.ReadOnly, bank, address)
	case memorymap.HighRAM:
		mem.highRAM[idx] = data
		return nil
	case memorymap.IO:
		if mem.io != nil {
			return mem.io.Write(uint8(idx), data)
		}
	}
	return curated.Errorf(bus.Unmapped, bank, address)
}

// Peek implements the bus.DebuggerBus interface.
func (mem *Memory) Peek(bank uint8, address uint16) (uint8, error) {
	area, idx := memorymap.MapAddress(bank, address)
	if area == memorymap.IO {
		if mem.io != nil {
			return mem.io.Peek(uint8(idx))
		}
		return 0, curated.Errorf(bus.Unmapped, bank, address)
	}
	return mem.Read(bank, address)
}

// Poke implements the bus.DebuggerBus interface. Unlike Write(), Poke() can
// change the contents of flash.
func (mem *Memory) Poke(bank uint8, address uint16, value uint8) error {
	area, idx := memorymap.MapAddress(bank, address)
	if area == memorymap.Flash {
		mem.flash[idx] = value
		return nil
	}
	return mem.Write(bank, address, value)
}
