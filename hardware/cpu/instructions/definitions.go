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

package instructions

import "fmt"

// ImmediateWidth says how the size of an immediate operand is decided.
type ImmediateWidth int

// List of valid ImmediateWidth values.
const (
	// the instruction does not take an immediate operand
	NoImmediate ImmediateWidth = iota

	// the size is decided by the M flag of the status register
	AccumulatorWidth

	// the size is decided by the X flag of the status register
	IndexWidth

	// the operand is always a single byte (REP, SEP and WDM)
	ByteWidth
)

func (w ImmediateWidth) String() string {
	switch w {
	case AccumulatorWidth:
		return "accumulator"
	case IndexWidth:
		return "index"
	case ByteWidth:
		return "byte"
	}
	return "none"
}

// Definition defines each instruction in the instruction set.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	AddressingMode AddressingMode
	Immediate      ImmediateWidth
	Effect         Category
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s [mode=%s effect=%s]", defn.OpCode, defn.Operator, defn.AddressingMode, defn.Effect)
}

// IsBranch returns true if instruction is a branch instruction. BRL is
// considered a branch instruction.
func (defn Definition) IsBranch() bool {
	return (defn.AddressingMode == Relative || defn.AddressingMode == RelativeLong) && defn.Effect == Flow
}

// Bytes returns the number of bytes in the instruction, including the opcode.
// The size of an immediate operand is decided by the smallAcc and smallIdx
// arguments, which should be the M and X flags of the status register.
func (defn Definition) Bytes(smallAcc bool, smallIdx bool) int {
	if defn.AddressingMode != Immediate {
		return 1 + defn.AddressingMode.OperandBytes()
	}

	switch defn.Immediate {
	case AccumulatorWidth:
		if smallAcc {
			return 2
		}
		return 3
	case IndexWidth:
		if smallIdx {
			return 2
		}
		return 3
	}
	return 2
}
