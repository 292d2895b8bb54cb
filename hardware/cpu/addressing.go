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
	"github.com/emu816/emu816/curated"
	"github.com/emu816/emu816/hardware/cpu/instructions"
	"github.com/emu816/emu816/hardware/cpu/registers"
)

// operand is the decoded operand of an instruction. It is either an
// immediate value or an effective bank:address.
//
// Resolution reads the D, DBR, S, X and Y registers at the moment of decoding
// so an operand should be used once and then discarded.
type operand struct {
	mode instructions.AddressingMode

	// immediate operands never touch the bus. wide is true if the immediate
	// value is 16bit
	immediate bool
	wide      bool
	value     uint16

	bank    uint8
	address uint16
}

// indexLong adds the index to bank:address as a 24bit sum. a sum past the end
// of the address space is an error.
func indexLong(bank uint8, address uint16, index uint16) (uint8, uint16, error) {
	sum := (uint32(bank)<<16 | uint32(address)) + uint32(index)
	if sum > 0xffffff {
		return 0, 0, curated.Errorf(AddressRange, bank, address, index)
	}
	return uint8(sum >> 16), uint16(sum), nil
}

// direct fetches a direct page offset and returns the address in bank zero,
// including the index. the sum wraps at the end of the bank.
func (mc *CPU) direct(index uint16) (uint16, error) {
	off, err := mc.fetch()
	if err != nil {
		return 0, err
	}
	return mc.D.Value() + uint16(off) + index, nil
}

// stackRelative fetches an offset and returns the address in bank zero
// relative to the stack pointer.
func (mc *CPU) stackRelative() (uint16, error) {
	off, err := mc.fetch()
	if err != nil {
		return 0, err
	}
	return mc.S.Value() + uint16(off), nil
}

// resolve decodes the operand of the instruction, fetching any operand bytes
// from the program bank and reading pointers as required by the addressing
// mode.
func (mc *CPU) resolve(defn *instructions.Definition) (operand, error) {
	op := operand{mode: defn.AddressingMode}

	x := mc.X.Read(mc.Status.IndexWidth())
	y := mc.Y.Read(mc.Status.IndexWidth())

	var err error

	switch defn.AddressingMode {
	case instructions.Implied, instructions.Accumulator:

	case instructions.Immediate:
		op.immediate = true
		switch defn.Immediate {
		case instructions.AccumulatorWidth:
			op.wide = !mc.Status.Get(registers.SmallAccumulator)
		case instructions.IndexWidth:
			op.wide = !mc.Status.Get(registers.SmallIndex)
		}

		if op.wide {
			op.value, err = mc.fetchWord()
		} else {
			var v uint8
			v, err = mc.fetch()
			op.value = uint16(v)
		}

	case instructions.Relative:
		var off uint8
		off, err = mc.fetch()

		// the program counter has already been advanced past the operand
		op.bank = mc.PBR
		op.address = mc.PC + uint16(int8(off))

	case instructions.RelativeLong:
		var off uint16
		off, err = mc.fetchWord()
		op.bank = mc.PBR
		op.address = mc.PC + off

	case instructions.Direct:
		op.address, err = mc.direct(0)

	case instructions.DirectIndexedX:
		op.address, err = mc.direct(x)

	case instructions.DirectIndexedY:
		op.address, err = mc.direct(y)

	case instructions.DirectIndirect:
		var dp uint16
		dp, err = mc.direct(0)
		if err != nil {
			break
		}
		op.bank = mc.DBR
		op.address, err = mc.readPointer(0, dp)

	case instructions.DirectIndexedIndirect:
		var dp uint16
		dp, err = mc.direct(x)
		if err != nil {
			break
		}
		op.bank = mc.DBR
		op.address, err = mc.readPointer(0, dp)

	case instructions.DirectIndirectIndexed:
		var dp, ptr uint16
		dp, err = mc.direct(0)
		if err != nil {
			break
		}
		ptr, err = mc.readPointer(0, dp)
		if err != nil {
			break
		}
		op.bank, op.address, err = indexLong(mc.DBR, ptr, y)

	case instructions.DirectIndirectLong:
		var dp uint16
		dp, err = mc.direct(0)
		if err != nil {
			break
		}
		op.bank, op.address, err = mc.readLongPointer(0, dp)

	case instructions.DirectIndirectLongIndexed:
		var dp, ptr uint16
		var bank uint8
		dp, err = mc.direct(0)
		if err != nil {
			break
		}
		bank, ptr, err = mc.readLongPointer(0, dp)
		if err != nil {
			break
		}
		op.bank, op.address, err = indexLong(bank, ptr, y)

	case instructions.Absolute:
		op.bank = mc.DBR
		op.address, err = mc.fetchWord()

	case instructions.AbsoluteIndexedX:
		// the sum wraps within the data bank
		op.bank = mc.DBR
		op.address, err = mc.fetchWord()
		op.address += x

	case instructions.AbsoluteIndexedY:
		op.bank = mc.DBR
		op.address, err = mc.fetchWord()
		op.address += y

	case instructions.AbsoluteLong:
		op.bank, op.address, err = mc.fetchLong()

	case instructions.AbsoluteLongIndexedX:
		var bank uint8
		var address uint16
		bank, address, err = mc.fetchLong()
		if err != nil {
			break
		}
		op.bank, op.address, err = indexLong(bank, address, x)

	case instructions.AbsoluteIndirect:
		var address uint16
		address, err = mc.fetchWord()
		if err != nil {
			break
		}
		op.bank = mc.PBR
		op.address, err = mc.readPointer(0, address)

	case instructions.AbsoluteIndexedIndirect:
		var address uint16
		address, err = mc.fetchWord()
		if err != nil {
			break
		}
		op.bank = mc.PBR
		op.address, err = mc.readPointer(mc.PBR, address+x)

	case instructions.AbsoluteIndirectLong:
		var address uint16
		address, err = mc.fetchWord()
		if err != nil {
			break
		}
		op.bank, op.address, err = mc.readLongPointer(0, address)

	case instructions.StackRelative:
		op.address, err = mc.stackRelative()

	case instructions.StackRelativeIndirectIndexed:
		var sr, ptr uint16
		sr, err = mc.stackRelative()
		if err != nil {
			break
		}
		ptr, err = mc.readPointer(0, sr)
		if err != nil {
			break
		}
		op.bank, op.address, err = indexLong(mc.DBR, ptr, y)

	default:
		err = curated.Errorf(UnsupportedAddressingMode, defn.AddressingMode, mc.LastResult.Bank, mc.LastResult.Address)
	}

	return op, err
}
