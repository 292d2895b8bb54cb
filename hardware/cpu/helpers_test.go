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

package cpu_test

import (
	"testing"

	"github.com/emu816/emu816/curated"
	"github.com/emu816/emu816/hardware/cpu"
	"github.com/emu816/emu816/hardware/memory/bus"
	"github.com/emu816/emu816/test"
)

// mockMem is a sparse 24bit address space. bank 0xfe is unmapped and can be
// used to test the propagation of bus errors
type mockMem struct {
	internal map[uint32]uint8
}

const unmappedBank = 0xfe

func newMockMem() *mockMem {
	return &mockMem{
		internal: make(map[uint32]uint8),
	}
}

func (mem *mockMem) Read(bank uint8, address uint16) (uint8, error) {
	if bank == unmappedBank {
		return 0, curated.Errorf(bus.Unmapped, bank, address)
	}
	return mem.internal[uint32(bank)<<16|uint32(address)], nil
}

func (mem *mockMem) Write(bank uint8, address uint16, data uint8) error {
	if bank == unmappedBank {
		return curated.Errorf(bus.Unmapped, bank, address)
	}
	mem.internal[uint32(bank)<<16|uint32(address)] = data
	return nil
}

func (mem *mockMem) get(bank uint8, address uint16) uint8 {
	return mem.internal[uint32(bank)<<16|uint32(address)]
}

// putInstructions writes the bytes to bank zero and returns the address after
// the last byte
func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.Write(0, origin+uint16(i), b)
	}
	return origin + uint16(len(bytes))
}

// newCPU returns a CPU with the reset vector pointing to origin
func newCPU(t *testing.T, origin uint16) (*cpu.CPU, *mockMem) {
	t.Helper()
	mem := newMockMem()
	mem.Write(0, cpu.ResetVector, uint8(origin))
	mem.Write(0, cpu.ResetVector+1, uint8(origin>>8))
	mc, err := cpu.NewCPU(mem)
	test.DemandSuccess(t, err)
	return mc, mem
}

// step executes one instruction, failing the test on error or an invalid
// result
func step(t *testing.T, mc *cpu.CPU) {
	t.Helper()
	_, err := mc.Step()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, mc.LastResult.IsValid())
}

// native switches the CPU to native mode with 16bit registers
func native(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	t.Helper()

	// CLC; XCE; REP #$30
	mem.putInstructions(mc.PC, 0x18, 0xfb, 0xc2, 0x30)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.DemandEquality(t, mc.E, false)
}
