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

// AddressingMode describes the method data for the instruction should be
// received.
type AddressingMode int

// List of supported addressing modes.
const (
	Implied AddressingMode = iota
	Accumulator
	Immediate

	Relative     // branch instructions
	RelativeLong // BRL and PER

	Direct                    // dp
	DirectIndexedX            // dp,X
	DirectIndexedY            // dp,Y
	DirectIndirect            // (dp)
	DirectIndexedIndirect     // (dp,X)
	DirectIndirectIndexed     // (dp),Y
	DirectIndirectLong        // [dp]
	DirectIndirectLongIndexed // [dp],Y

	Absolute                // abs
	AbsoluteIndexedX        // abs,X
	AbsoluteIndexedY        // abs,Y
	AbsoluteLong            // long
	AbsoluteLongIndexedX    // long,X
	AbsoluteIndirect        // (abs)
	AbsoluteIndexedIndirect // (abs,X)
	AbsoluteIndirectLong    // [abs]

	StackRelative                // sr,S
	StackRelativeIndirectIndexed // (sr,S),Y

	BlockMove // MVN and MVP
)

var addressingModeNames = map[AddressingMode]string{
	Implied:                      "Implied",
	Accumulator:                  "Accumulator",
	Immediate:                    "Immediate",
	Relative:                     "Relative",
	RelativeLong:                 "RelativeLong",
	Direct:                       "Direct",
	DirectIndexedX:               "DirectIndexedX",
	DirectIndexedY:               "DirectIndexedY",
	DirectIndirect:               "DirectIndirect",
	DirectIndexedIndirect:        "DirectIndexedIndirect",
	DirectIndirectIndexed:        "DirectIndirectIndexed",
	DirectIndirectLong:           "DirectIndirectLong",
	DirectIndirectLongIndexed:    "DirectIndirectLongIndexed",
	Absolute:                     "Absolute",
	AbsoluteIndexedX:             "AbsoluteIndexedX",
	AbsoluteIndexedY:             "AbsoluteIndexedY",
	AbsoluteLong:                 "AbsoluteLong",
	AbsoluteLongIndexedX:         "AbsoluteLongIndexedX",
	AbsoluteIndirect:             "AbsoluteIndirect",
	AbsoluteIndexedIndirect:      "AbsoluteIndexedIndirect",
	AbsoluteIndirectLong:         "AbsoluteIndirectLong",
	StackRelative:                "StackRelative",
	StackRelativeIndirectIndexed: "StackRelativeIndirectIndexed",
	BlockMove:                    "BlockMove",
}

func (m AddressingMode) String() string {
	if s, ok := addressingModeNames[m]; ok {
		return s
	}
	return "unknown addressing mode"
}

// OperandBytes returns the number of bytes that follow the opcode for the
// addressing mode. The size of an immediate operand depends on the status
// register and so is not returned by this function.
func (m AddressingMode) OperandBytes() int {
	switch m {
	case Implied, Accumulator:
		return 0
	case Immediate:
		return -1
	case Relative:
		return 1
	case Direct, DirectIndexedX, DirectIndexedY, DirectIndirect,
		DirectIndexedIndirect, DirectIndirectIndexed, DirectIndirectLong,
		DirectIndirectLongIndexed, StackRelative, StackRelativeIndirectIndexed:
		return 1
	case RelativeLong, Absolute, AbsoluteIndexedX, AbsoluteIndexedY,
		AbsoluteIndirect, AbsoluteIndexedIndirect, AbsoluteIndirectLong,
		BlockMove:
		return 2
	case AbsoluteLong, AbsoluteLongIndexedX:
		return 3
	}
	return 0
}

// Format operand data according to the addressing mode in the style of a
// 65C816 assembler. The size argument is the number of operand bytes.
func (m AddressingMode) Format(data uint32, size int) string {
	var v string
	switch size {
	case 1:
		v = fmt.Sprintf("$%02x", data&0xff)
	case 2:
		v = fmt.Sprintf("$%04x", data&0xffff)
	default:
		v = fmt.Sprintf("$%06x", data&0xffffff)
	}

	switch m {
	case Implied:
		return ""
	case Accumulator:
		return "A"
	case Immediate:
		return "#" + v
	case DirectIndexedX, AbsoluteIndexedX, AbsoluteLongIndexedX:
		return v + ",X"
	case DirectIndexedY, AbsoluteIndexedY:
		return v + ",Y"
	case DirectIndirect, AbsoluteIndirect:
		return "(" + v + ")"
	case DirectIndexedIndirect, AbsoluteIndexedIndirect:
		return "(" + v + ",X)"
	case DirectIndirectIndexed:
		return "(" + v + "),Y"
	case DirectIndirectLong, AbsoluteIndirectLong:
		return "[" + v + "]"
	case DirectIndirectLongIndexed:
		return "[" + v + "],Y"
	case StackRelative:
		return v + ",S"
	case StackRelativeIndirectIndexed:
		return "(" + v + ",S),Y"
	case BlockMove:
		// destination bank is the first operand byte
		return fmt.Sprintf("$%02x,$%02x", (data>>8)&0xff, data&0xff)
	}
	return v
}
