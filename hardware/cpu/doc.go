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

// Package cpu emulates the W65C816 microprocessor. The processor executes
// instructions according to the opcode read from the address pointed to by
// the program bank register and program counter. The opcode is looked up in
// the instruction table and the definition for that opcode is used to decode
// the operand and move execution of the program forward.
//
// The CPU type requires an implementation of bus.CPUBus as the sole argument.
// The reset vector is read from the bus during construction.
//
//	mc, err := cpu.NewCPU(mem)
//	if err != nil {
//		return err
//	}
//
//	for {
//		status, err := mc.Step()
//		if err != nil {
//			return err
//		}
//		if status != cpu.Running {
//			break
//		}
//	}
//
// Step() is a convenience wrapper around ExecuteInstruction(). The sole
// argument to ExecuteInstruction() is a callback function that is called
// after every bus access made by the instruction. The Machine type in the
// hardware package uses this to tick the peripherals once per bus cycle.
//
// The behaviour of most instructions depends on three pieces of state that
// can change from one instruction to the next. The M and X bits of the status
// register decide the width of the accumulator and of the index registers;
// the E flag decides whether the processor is in emulation or native mode.
// Transitions of these flags happen in the instruction that makes them and
// never lazily. For example, setting the X bit truncates the X and Y
// registers immediately.
//
// All error conditions are fatal to the emulation. After an error the state
// of the CPU is undefined until Reset() is called.
package cpu
