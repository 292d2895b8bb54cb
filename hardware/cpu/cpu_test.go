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
	"github.com/emu816/emu816/hardware/cpu/registers"
	"github.com/emu816/emu816/hardware/memory/bus"
	"github.com/emu816/emu816/test"
)

func TestReset(t *testing.T) {
	mc, _ := newCPU(t, 0x8000)
	test.ExpectEquality(t, mc.PC, 0x8000)
	test.ExpectEquality(t, mc.PBR, 0)
	test.ExpectEquality(t, mc.DBR, 0)
	test.ExpectEquality(t, mc.D.Value(), 0)
	test.ExpectEquality(t, mc.S.Value(), 0x0100)
	test.ExpectEquality(t, mc.E, true)
	test.ExpectEquality(t, mc.Status.String(), "nvMXdIzc")
	test.ExpectEquality(t, mc.RunStatus, cpu.Running)
	test.ExpectEquality(t, mc.String(), "PC=00:8000 A=0000 X=0000 Y=0000 S=0100 D=0000 DBR=00 E=1 P=nvMXdIzc")
}

func TestSnapshot(t *testing.T) {
	mc, mem := newCPU(t, 0x8000)

	// LDA #$42
	mem.putInstructions(0x8000, 0xa9, 0x42)
	step(t, mc)

	s := mc.Snapshot()
	test.ExpectEquality(t, s.A.Value(), 0x42)
	test.ExpectEquality(t, s.PC, 0x8002)
	test.ExpectEquality(t, s.E, true)
	test.ExpectEquality(t, s.RunStatus, cpu.Running)
	test.ExpectEquality(t, s.LastResult.String(), "00:8000 LDA #$42")

	// the snapshot is a copy
	mc.A.Load(0x1234)
	test.ExpectEquality(t, s.A.Value(), 0x42)
}

func TestStopScenario(t *testing.T) {
	mc, mem := newCPU(t, 0x8000)

	// LDA #$42; STP
	mem.putInstructions(0x8000, 0xa9, 0x42, 0xdb)

	status, err := mc.Step()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, status, cpu.Running)
	test.ExpectEquality(t, mc.A.Value(), 0x42)
	test.ExpectEquality(t, mc.Status.Get(registers.Zero), false)
	test.ExpectEquality(t, mc.Status.Get(registers.Negative), false)
	test.ExpectEquality(t, mc.LastResult.String(), "00:8000 LDA #$42")

	status, err = mc.Step()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, status, cpu.Stopped)

	// further steps do nothing
	before := mc.String()
	status, err = mc.Step()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, status, cpu.Stopped)
	test.ExpectEquality(t, mc.String(), before)

	// reset returns the CPU to the running state
	test.ExpectSuccess(t, mc.Reset())
	test.ExpectEquality(t, mc.RunStatus, cpu.Running)
	test.ExpectEquality(t, mc.PC, 0x8000)
}

func TestWait(t *testing.T) {
	mc, mem := newCPU(t, 0x8000)

	// WAI; NOP
	mem.putInstructions(0x8000, 0xcb, 0xea)
	status, err := mc.Step()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, status, cpu.Waiting)
	status, err = mc.Step()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, status, cpu.Waiting)
	test.ExpectEquality(t, mc.PC, 0x8001)
}

func TestCycleCallback(t *testing.T) {
	mc, mem := newCPU(t, 0x8000)

	// LDA $1234 reads three bytes of instruction and one byte of data
	mem.putInstructions(0x8000, 0xad, 0x34, 0x12)

	cycles := 0
	err := mc.ExecuteInstruction(func() error {
		cycles++
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cycles, 4)
	test.ExpectEquality(t, mc.LastResult.Cycles, 4)
	test.ExpectEquality(t, mc.LastResult.ByteCount, 3)
}

func TestStatusInstructions(t *testing.T) {
	mc, mem := newCPU(t, 0x8000)

	// SEC; CLC; CLI; SEI; SED; CLD; CLV
	mem.putInstructions(0x8000, 0x38, 0x18, 0x58, 0x78, 0xf8, 0xd8, 0xb8)
	step(t, mc) // SEC
	test.ExpectEquality(t, mc.Status.String(), "nvMXdIzC")
	step(t, mc) // CLC
	test.ExpectEquality(t, mc.Status.String(), "nvMXdIzc")
	step(t, mc) // CLI
	test.ExpectEquality(t, mc.Status.String(), "nvMXdizc")
	step(t, mc) // SEI
	test.ExpectEquality(t, mc.Status.String(), "nvMXdIzc")
	step(t, mc) // SED
	test.ExpectEquality(t, mc.Status.String(), "nvMXDIzc")
	step(t, mc) // CLD
	test.ExpectEquality(t, mc.Status.String(), "nvMXdIzc")
	step(t, mc) // CLV
	test.ExpectEquality(t, mc.Status.String(), "nvMXdIzc")

	// PHP; SEC; PLP
	mem.putInstructions(mc.PC, 0x08, 0x38, 0x28)
	step(t, mc)
	test.ExpectEquality(t, mc.S.Value(), 0x01ff)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.S.Value(), 0x0100)
	test.ExpectEquality(t, mc.Status.String(), "nvMXdIzc")
}

func TestPushPull(t *testing.T) {
	mc, mem := newCPU(t, 0x8000)

	// LDA #$42; PHA; LDA #$00; PLA
	mem.putInstructions(0x8000, 0xa9, 0x42, 0x48, 0xa9, 0x00, 0x68)
	mc.S.Load(0x01ff)
	step(t, mc)
	s := mc.S.Value()
	step(t, mc)
	test.ExpectEquality(t, mc.S.Value(), s-1)
	step(t, mc)
	test.ExpectEquality(t, mc.Status.Get(registers.Zero), true)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x42)
	test.ExpectEquality(t, mc.S.Value(), s)
	test.ExpectEquality(t, mc.Status.Get(registers.Zero), false)

	// 16bit accumulator
	native(t, mc, mem)

	// LDA #$8234; PHA; LDA #$0000; PLA
	mem.putInstructions(mc.PC, 0xa9, 0x34, 0x82, 0x48, 0xa9, 0x00, 0x00, 0x68)
	step(t, mc)
	s = mc.S.Value()
	step(t, mc)
	test.ExpectEquality(t, mc.S.Value(), s-2)

	// the high byte is pushed first and so is at the higher address
	test.ExpectEquality(t, mem.get(0, s), 0x82)
	test.ExpectEquality(t, mem.get(0, s-1), 0x34)

	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x8234)
	test.ExpectEquality(t, mc.S.Value(), s)
	test.ExpectEquality(t, mc.Status.Get(registers.Negative), true)
}

func TestEmulationStackWrap(t *testing.T) {
	mc, mem := newCPU(t, 0x8000)

	// the stack pointer starts at 0x0100 so the first push wraps to 0x01ff
	// LDX #$12; PHX; PLY
	mem.putInstructions(0x8000, 0xa2, 0x12, 0xda, 0x7a)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.S.Value(), 0x01ff)
	test.ExpectEquality(t, mem.get(0, 0x0100), 0x12)
	step(t, mc)
	test.ExpectEquality(t, mc.S.Value(), 0x0100)
	test.ExpectEquality(t, mc.Y.Value(), 0x12)
}

func TestStackPage(t *testing.T) {
	mc, mem := newCPU(t, 0x8000)

	// PHA
	mem.putInstructions(0x8000, 0x48)
	mc.S.Load(0x0200)
	_, err := mc.Step()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cpu.StackPage))
}

func TestSubroutine(t *testing.T) {
	mc, mem := newCPU(t, 0x8000)

	// JSR $9000; NOP
	mem.putInstructions(0x8000, 0x20, 0x00, 0x90, 0xea)

	// RTS
	mem.putInstructions(0x9000, 0x60)

	step(t, mc)
	test.ExpectEquality(t, mc.PC, 0x9000)

	// the address pushed is the last byte of the JSR instruction
	test.ExpectEquality(t, mem.get(0, 0x0100), 0x80)
	test.ExpectEquality(t, mem.get(0, 0x01ff), 0x02)

	step(t, mc)
	test.ExpectEquality(t, mc.PC, 0x8003)
	test.ExpectEquality(t, mc.S.Value(), 0x0100)

	// RTL
	mem.Write(0x01, 0x9000, 0x6b)

	// JSL $019000
	native(t, mc, mem)
	origin := mc.PC
	mem.putInstructions(origin, 0x22, 0x00, 0x90, 0x01)
	step(t, mc)
	test.ExpectEquality(t, mc.PBR, 0x01)
	test.ExpectEquality(t, mc.PC, 0x9000)
	step(t, mc)
	test.ExpectEquality(t, mc.PBR, 0x00)
	test.ExpectEquality(t, mc.PC, origin+4)
}

func TestBranch(t *testing.T) {
	mc, mem := newCPU(t, 0x8000)

	// LDA #$00; BEQ +2; LDA #$01; BNE -4
	mem.putInstructions(0x8000, 0xa9, 0x00, 0xf0, 0x02, 0xa9, 0x01, 0xd0, 0xfc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.PC, 0x8006)
	test.ExpectEquality(t, mc.LastResult.String(), "00:8002 BEQ $8006")

	// branch not taken
	step(t, mc)
	test.ExpectEquality(t, mc.PC, 0x8008)

	// BRL backwards
	mem.putInstructions(0x8008, 0x82, 0xf6, 0xff)
	step(t, mc)
	test.ExpectEquality(t, mc.PC, 0x8001)
}

func TestJump(t *testing.T) {
	mc, mem := newCPU(t, 0x8000)

	// JMP $9000
	mem.putInstructions(0x8000, 0x4c, 0x00, 0x90)

	// JMP ($0010)
	mem.putInstructions(0x9000, 0x6c, 0x10, 0x00)
	mem.putInstructions(0x0010, 0x00, 0xa0)

	// JML $02c000
	mem.putInstructions(0xa000, 0x5c, 0x00, 0xc0, 0x02)

	step(t, mc)
	test.ExpectEquality(t, mc.PC, 0x9000)
	step(t, mc)
	test.ExpectEquality(t, mc.PC, 0xa000)
	step(t, mc)
	test.ExpectEquality(t, mc.PBR, 0x02)
	test.ExpectEquality(t, mc.PC, 0xc000)
}

func TestArithmetic(t *testing.T) {
	mc, mem := newCPU(t, 0x8000)

	// LDA #1; ADC #10; SEC; SBC #8
	mem.putInstructions(0x8000, 0xa9, 0x01, 0x69, 0x0a, 0x38, 0xe9, 0x08)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 11)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 3)
	test.ExpectEquality(t, mc.Status.Get(registers.Carry), true)

	// LDA #$7f; CLC; ADC #$01
	mem.putInstructions(mc.PC, 0xa9, 0x7f, 0x18, 0x69, 0x01)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x80)
	test.ExpectEquality(t, mc.Status.String(), "NVMXdIzc")
}

func TestDecimalMode(t *testing.T) {
	mc, mem := newCPU(t, 0x8000)

	// SED; SEC; LDA #$00; SBC #$01
	mem.putInstructions(0x8000, 0xf8, 0x38, 0xa9, 0x00, 0xe9, 0x01)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x99)
	test.ExpectEquality(t, mc.Status.Get(registers.Carry), false)

	// CLC; ADC #$01
	mem.putInstructions(mc.PC, 0x18, 0x69, 0x01)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x00)
	test.ExpectEquality(t, mc.Status.Get(registers.Carry), true)
	test.ExpectEquality(t, mc.Status.Get(registers.Zero), true)
}

func TestLogic(t *testing.T) {
	mc, mem := newCPU(t, 0x8000)

	// ORA #$FF; EOR #$F0; AND #$01
	mem.putInstructions(0x8000, 0x09, 0xff, 0x49, 0xf0, 0x29, 0x01)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0xff)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x0f)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x01)

	// BIT $10 with memory value 0xc0
	mem.Write(0, 0x0010, 0xc0)
	mem.putInstructions(mc.PC, 0x24, 0x10)
	step(t, mc)
	test.ExpectEquality(t, mc.Status.String(), "NVMXdIZc")

	// TSB $10; TRB $10
	mem.putInstructions(mc.PC, 0x04, 0x10, 0x14, 0x10)
	step(t, mc)
	test.ExpectEquality(t, mem.get(0, 0x0010), 0xc1)
	step(t, mc)
	test.ExpectEquality(t, mem.get(0, 0x0010), 0xc0)
}

func TestCompare(t *testing.T) {
	mc, mem := newCPU(t, 0x8000)

	// LDA #$10; CMP #$10; CMP #$20; LDX #$05; CPX #$01
	mem.putInstructions(0x8000, 0xa9, 0x10, 0xc9, 0x10, 0xc9, 0x20, 0xa2, 0x05, 0xe0, 0x01)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.Status.Get(registers.Zero), true)
	test.ExpectEquality(t, mc.Status.Get(registers.Carry), true)
	step(t, mc)
	test.ExpectEquality(t, mc.Status.Get(registers.Zero), false)
	test.ExpectEquality(t, mc.Status.Get(registers.Carry), false)
	test.ExpectEquality(t, mc.Status.Get(registers.Negative), true)
	test.ExpectEquality(t, mc.A.Value(), 0x10)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.Status.Get(registers.Carry), true)
	test.ExpectEquality(t, mc.X.Value(), 0x05)
}

func TestModify(t *testing.T) {
	mc, mem := newCPU(t, 0x8000)

	// LDA #$81; ASL A; INC $20; DEC $20; DEC $20; ROR $20
	mem.putInstructions(0x8000, 0xa9, 0x81, 0x0a, 0xe6, 0x20, 0xc6, 0x20, 0xc6, 0x20, 0x66, 0x20)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x02)
	test.ExpectEquality(t, mc.Status.Get(registers.Carry), true)
	step(t, mc)
	test.ExpectEquality(t, mem.get(0, 0x20), 0x01)
	step(t, mc)
	test.ExpectEquality(t, mem.get(0, 0x20), 0x00)
	test.ExpectEquality(t, mc.Status.Get(registers.Zero), true)
	step(t, mc)
	test.ExpectEquality(t, mem.get(0, 0x20), 0xff)
	test.ExpectEquality(t, mc.Status.Get(registers.Negative), true)

	// carry is still set from the ASL
	step(t, mc)
	test.ExpectEquality(t, mem.get(0, 0x20), 0xff)
	test.ExpectEquality(t, mc.Status.Get(registers.Carry), true)

	// INX wraps in 8bit mode
	mc.X.Load(0xff)
	mem.putInstructions(mc.PC, 0xe8)
	step(t, mc)
	test.ExpectEquality(t, mc.X.Value(), 0x00)
	test.ExpectEquality(t, mc.Status.Get(registers.Zero), true)
}

func TestExchangeEmulation(t *testing.T) {
	mc, mem := newCPU(t, 0x8000)
	native(t, mc, mem)
	test.ExpectEquality(t, mc.Status.Get(registers.Carry), true)

	// LDX #$1234; LDY #$5678; TXS; SEC; XCE
	mem.putInstructions(mc.PC, 0xa2, 0x34, 0x12, 0xa0, 0x78, 0x56, 0x9a, 0x38, 0xfb)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.S.Value(), 0x1234)
	step(t, mc)
	step(t, mc)

	test.ExpectEquality(t, mc.E, true)
	test.ExpectEquality(t, mc.Status.Get(registers.Carry), false)
	test.ExpectEquality(t, mc.X.Value(), 0x34)
	test.ExpectEquality(t, mc.Y.Value(), 0x78)
	test.ExpectEquality(t, mc.S.Value(), 0x0134)
	test.ExpectEquality(t, mc.Status.Get(registers.SmallAccumulator), true)
	test.ExpectEquality(t, mc.Status.Get(registers.SmallIndex), true)

	// REP cannot clear M and X in emulation mode
	mem.putInstructions(mc.PC, 0xc2, 0x30)
	step(t, mc)
	test.ExpectEquality(t, mc.Status.Get(registers.SmallAccumulator), true)
	test.ExpectEquality(t, mc.Status.Get(registers.SmallIndex), true)
}

func TestIndexTruncation(t *testing.T) {
	mc, mem := newCPU(t, 0x8000)
	native(t, mc, mem)

	// LDX #$1234; LDY #$abcd; SEP #$10
	mem.putInstructions(mc.PC, 0xa2, 0x34, 0x12, 0xa0, 0xcd, 0xab, 0xe2, 0x10)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.X.Value(), 0x1234)
	step(t, mc)
	test.ExpectEquality(t, mc.X.Value(), 0x0034)
	test.ExpectEquality(t, mc.Y.Value(), 0x00cd)

	// PLP can also set the X flag. REP #$10; LDX #$1234; PHP with X set is
	// simulated by pushing the value directly
	mem.putInstructions(mc.PC, 0xc2, 0x10, 0xa2, 0x34, 0x12, 0xf4, 0x10, 0x00, 0x28)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.X.Value(), 0x1234)
	step(t, mc) // PEA $0010
	step(t, mc) // PLP
	test.ExpectEquality(t, mc.X.Value(), 0x0034)
	test.ExpectEquality(t, mc.Status.Value(), 0x10)
}

func TestAccumulatorWidth(t *testing.T) {
	mc, mem := newCPU(t, 0x8000)
	native(t, mc, mem)

	// LDA #$1234; SEP #$20; LDA #$ff
	mem.putInstructions(mc.PC, 0xa9, 0x34, 0x12, 0xe2, 0x20, 0xa9, 0xff)
	step(t, mc)
	step(t, mc)

	// entering 8bit accumulator mode does not truncate A
	test.ExpectEquality(t, mc.A.Value(), 0x1234)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x12ff)

	// TAX with 16bit index registers transfers all of A
	mem.putInstructions(mc.PC, 0xaa)
	step(t, mc)
	test.ExpectEquality(t, mc.X.Value(), 0x12ff)

	// XBA sets the flags from the new low byte
	mem.putInstructions(mc.PC, 0xeb)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0xff12)
	test.ExpectEquality(t, mc.Status.Get(registers.Negative), false)
	test.ExpectEquality(t, mc.Status.Get(registers.Zero), false)
}

func TestTransfers(t *testing.T) {
	mc, mem := newCPU(t, 0x8000)
	native(t, mc, mem)

	// LDA #$8000; TCD; TDC; TSC
	mem.putInstructions(mc.PC, 0xa9, 0x00, 0x80, 0x5b, 0x7b, 0x3b)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.D.Value(), 0x8000)
	test.ExpectEquality(t, mc.Status.Get(registers.Negative), true)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x8000)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), mc.S.Value())

	// SEP #$20; LDX #$1234; TXA preserves the high byte of A
	mc.A.Load(0xab00)
	mem.putInstructions(mc.PC, 0xe2, 0x20, 0xa2, 0x34, 0x12, 0x8a)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0xab34)
}

func TestAbsoluteIndexed(t *testing.T) {
	mc, mem := newCPU(t, 0x8000)
	mc.DBR = 0x01
	mc.X.Load(0x0010)
	mem.Write(0x01, 0x2010, 0x99)

	// LDA $2000,X
	mem.putInstructions(0x8000, 0xbd, 0x00, 0x20)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x99)
	test.ExpectEquality(t, mc.LastResult.String(), "00:8000 LDA $2000,X")
}

func TestBankBoundary(t *testing.T) {
	mc, mem := newCPU(t, 0x8000)
	native(t, mc, mem)

	// LDA #$beef; STA $ffff; LDA $ffff
	mem.putInstructions(mc.PC, 0xa9, 0xef, 0xbe, 0x8d, 0xff, 0xff, 0xad, 0xff, 0xff)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mem.get(0x00, 0xffff), 0xef)
	test.ExpectEquality(t, mem.get(0x01, 0x0000), 0xbe)

	_, err := mc.Step()
	test.ExpectSuccess(t, curated.Is(err, cpu.BankBoundary))
}

func TestUnimplementedOpcode(t *testing.T) {
	mc, mem := newCPU(t, 0x8000)

	// BRK
	mem.putInstructions(0x8000, 0x00)
	_, err := mc.Step()
	test.ExpectSuccess(t, curated.Is(err, cpu.UnimplementedOpcode))
	test.ExpectEquality(t, err.Error(), "cpu: unimplemented opcode 00 at 00:8000")
}

func TestBlockMove(t *testing.T) {
	mc, mem := newCPU(t, 0x8000)

	// MVN $01,$02
	mem.putInstructions(0x8000, 0x54, 0x02, 0x01)
	_, err := mc.Step()
	test.ExpectSuccess(t, curated.Is(err, cpu.UnsupportedAddressingMode))
}

func TestBusError(t *testing.T) {
	mc, mem := newCPU(t, 0x8000)

	// LDA $fe0000
	mem.putInstructions(0x8000, 0xaf, 0x00, 0x00, 0xfe)
	_, err := mc.Step()
	test.ExpectSuccess(t, curated.Is(err, bus.Unmapped))
}
