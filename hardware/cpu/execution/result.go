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

package execution

import (
	"fmt"
	"strings"

	"github.com/emu816/emu816/hardware/cpu/instructions"
)

// Result records the state/result of each instruction executed on the CPU.
// Including the address it was read from, a reference to the instruction
// definition, and other execution details.
type Result struct {
	// the bank and address at which the instruction began
	Bank    uint8
	Address uint16

	// a reference to the instruction definition
	Defn *instructions.Definition

	// the M and X flags at the moment the instruction was decoded. these
	// decide the size of an immediate operand
	SmallAcc bool
	SmallIdx bool

	// the number of bytes read during instruction decode. the opcode is
	// included
	ByteCount int

	// the operand data of the instruction, little-endian. in the case of a
	// branch instruction this is the offset value
	InstructionData uint32

	// the number of bus accesses made by the instruction. including the
	// reading of the instruction itself
	Cycles int

	// whether this data has been finalised. some of the fields in this
	// struct will be undefined if Final is false
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

// Target returns the destination of a branch instruction, or the address
// pushed by PER. Returns false if the instruction has no relative operand.
func (r Result) Target() (uint16, bool) {
	if r.Defn == nil {
		return 0, false
	}

	next := r.Address + uint16(r.ByteCount)
	switch r.Defn.AddressingMode {
	case instructions.Relative:
		return next + uint16(int8(r.InstructionData)), true
	case instructions.RelativeLong:
		return next + uint16(int16(r.InstructionData)), true
	}
	return 0, false
}

// String returns the instruction in the form of a trace line. For example:
//
//	00:8000 LDA #$42
func (r Result) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%02x:%04x ", r.Bank, r.Address))

	if r.Defn == nil {
		s.WriteString("???")
		return s.String()
	}

	s.WriteString(r.Defn.Operator.String())

	var operand string
	if target, ok := r.Target(); ok {
		operand = fmt.Sprintf("$%04x", target)
	} else {
		operand = r.Defn.AddressingMode.Format(r.InstructionData, r.ByteCount-1)
	}

	if operand != "" {
		s.WriteRune(' ')
		s.WriteString(operand)
	}

	if !r.Final {
		s.WriteString(" (unfinished)")
	}

	return s.String()
}
