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

package cpu

import (
	"fmt"

	"github.com/emu816/emu816/curated"
	"github.com/emu816/emu816/hardware/cpu/execution"
	"github.com/emu816/emu816/hardware/cpu/instructions"
	"github.com/emu816/emu816/hardware/cpu/registers"
	"github.com/emu816/emu816/hardware/memory/bus"
)

// ResetVector is the address in bank zero of the little-endian reset vector.
const ResetVector = uint16(0xfffc)

// the value of the stack pointer after a reset
const stackReset = uint16(0x0100)

// CPU implements the W65C816. Register logic is implemented by the Register
// and StatusRegister types in the registers sub-package.
type CPU struct {
	A registers.Register
	X registers.Register
	Y registers.Register

	// in emulation mode the high byte of the stack pointer is always 0x01
	S registers.Register

	// direct page register
	D registers.Register

	// data bank and program bank registers
	DBR uint8
	PBR uint8

	PC uint16

	// emulation mode flag. this is not part of the status register and can
	// only be changed with the XCE instruction
	E bool

	Status registers.StatusRegister

	RunStatus RunStatus

	// the result of the last (or current) instruction. if accessed from the
	// cycle callback then the result will not be finalised
	LastResult execution.Result

	mem          bus.CPUBus
	instructions [256]*instructions.Definition

	// called after every bus access
	cycleCallback func() error
}

// NewCPU is the preferred method of initialisation for the CPU type. The
// program counter is loaded from the reset vector so the bus must already
// contain the firmware.
func NewCPU(mem bus.CPUBus) (*CPU, error) {
	defns, err := instructions.GetDefinitions()
	if err != nil {
		return nil, err
	}

	mc := &CPU{
		A:            registers.NewRegister(0, "A"),
		X:            registers.NewRegister(0, "X"),
		Y:            registers.NewRegister(0, "Y"),
		S:            registers.NewRegister(stackReset, "S"),
		D:            registers.NewRegister(0, "D"),
		Status:       registers.NewStatusRegister(),
		mem:          mem,
		instructions: defns,
	}

	err = mc.Reset()
	if err != nil {
		return nil, err
	}

	return mc, nil
}

func (mc *CPU) String() string {
	e := 0
	if mc.E {
		e = 1
	}
	return fmt.Sprintf("PC=%02x:%04x %s %s %s %s %s DBR=%02x E=%d %s=%s",
		mc.PBR, mc.PC, mc.A, mc.X, mc.Y, mc.S, mc.D, mc.DBR, e,
		mc.Status.Label(), mc.Status)
}

// Reset reinitialises all registers and loads the program counter from the
// reset vector. The CPU is returned to the Running state.
func (mc *CPU) Reset() error {
	mc.LastResult.Reset()
	mc.cycleCallback = nil

	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.S.Load(stackReset)
	mc.D.Load(0)
	mc.DBR = 0
	mc.PBR = 0
	mc.E = true
	mc.Status.Reset()
	mc.RunStatus = Running

	lo, err := mc.mem.Read(0, ResetVector)
	if err != nil {
		return err
	}
	hi, err := mc.mem.Read(0, ResetVector+1)
	if err != nil {
		return err
	}
	mc.PC = uint16(hi)<<8 | uint16(lo)

	return nil
}

// Step executes the next instruction if the CPU is running. The run status
// after the instruction is returned. Step() is a no-op if the CPU is waiting
// or stopped.
func (mc *CPU) Step() (RunStatus, error) {
	err := mc.ExecuteInstruction(nil)
	return mc.RunStatus, err
}

// ExecuteInstruction steps the CPU forward one instruction. The cycle callback
// is called after every bus access and may be nil. An error returned by the
// callback stops the instruction.
//
// Does nothing if the CPU is not in the Running state.
func (mc *CPU) ExecuteInstruction(cycleCallback func() error) error {
	if mc.RunStatus != Running {
		return nil
	}

	mc.cycleCallback = cycleCallback

	mc.LastResult.Reset()
	mc.LastResult.Bank = mc.PBR
	mc.LastResult.Address = mc.PC
	mc.LastResult.SmallAcc = mc.Status.Get(registers.SmallAccumulator)
	mc.LastResult.SmallIdx = mc.Status.Get(registers.SmallIndex)

	opcode, err := mc.fetch()
	if err != nil {
		return err
	}

	defn := mc.instructions[opcode]
	if defn == nil {
		return curated.Errorf(UnimplementedOpcode, opcode, mc.LastResult.Bank, mc.LastResult.Address)
	}
	mc.LastResult.Defn = defn

	op, err := mc.resolve(defn)
	if err != nil {
		return err
	}

	err = mc.execute(defn, op)
	if err != nil {
		return err
	}

	mc.LastResult.Final = true

	return nil
}

// setStatus loads the status register, honouring the constraints of
// emulation mode and truncating the index registers if the index width has
// changed from 16bit to 8bit.
func (mc *CPU) setStatus(v uint8) {
	if mc.E {
		v |= uint8(registers.SmallAccumulator | registers.SmallIndex)
	}

	wasSmall := mc.Status.Get(registers.SmallIndex)
	mc.Status.Load(v)
	if !wasSmall && mc.Status.Get(registers.SmallIndex) {
		mc.X.Truncate()
		mc.Y.Truncate()
	}
}

// setEmulation changes the emulation flag. Entering emulation mode forces
// 8bit registers and moves the stack to page one.
func (mc *CPU) setEmulation(e bool) {
	if e && !mc.E {
		mc.Status.Set(registers.SmallAccumulator, true)
		mc.Status.Set(registers.SmallIndex, true)
		mc.X.Truncate()
		mc.Y.Truncate()
		mc.S.LoadHigh(0x01)
	}
	mc.E = e
}
