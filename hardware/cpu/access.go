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

func (mc *CPU) endCycle() error {
	mc.LastResult.Cycles++
	if mc.cycleCallback == nil {
		return nil
	}
	return mc.cycleCallback()
}

func (mc *CPU) read(bank uint8, address uint16) (uint8, error) {
	v, err := mc.mem.Read(bank, address)
	if err != nil {
		return 0, err
	}
	return v, mc.endCycle()
}

func (mc *CPU) write(bank uint8, address uint16, data uint8) error {
	err := mc.mem.Write(bank, address, data)
	if err != nil {
		return err
	}
	return mc.endCycle()
}

// fetch reads the byte at PBR:PC and advances the program counter. the
// program counter wraps at the end of the bank and the program bank is never
// changed.
func (mc *CPU) fetch() (uint8, error) {
	v, err := mc.read(mc.PBR, mc.PC)
	if err != nil {
		return 0, err
	}
	mc.PC++

	// the first byte is the opcode and is not part of the instruction data
	if mc.LastResult.ByteCount > 0 {
		mc.LastResult.InstructionData |= uint32(v) << (8 * (mc.LastResult.ByteCount - 1))
	}
	mc.LastResult.ByteCount++

	return v, nil
}

func (mc *CPU) fetchWord() (uint16, error) {
	lo, err := mc.fetch()
	if err != nil {
		return 0, err
	}
	hi, err := mc.fetch()
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

func (mc *CPU) fetchLong() (uint8, uint16, error) {
	address, err := mc.fetchWord()
	if err != nil {
		return 0, 0, err
	}
	bank, err := mc.fetch()
	if err != nil {
		return 0, 0, err
	}
	return bank, address, nil
}

// readPointer reads a little-endian word. the address of the high byte wraps
// within the bank.
func (mc *CPU) readPointer(bank uint8, address uint16) (uint16, error) {
	lo, err := mc.read(bank, address)
	if err != nil {
		return 0, err
	}
	hi, err := mc.read(bank, address+1)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// readLongPointer reads a three byte pointer in the order low, high, bank.
func (mc *CPU) readLongPointer(bank uint8, address uint16) (uint8, uint16, error) {
	ptr, err := mc.readPointer(bank, address)
	if err != nil {
		return 0, 0, err
	}
	b, err := mc.read(bank, address+2)
	if err != nil {
		return 0, 0, err
	}
	return b, ptr, nil
}

// loadByte returns the byte value of the operand. immediate operands do not
// touch the bus.
func (mc *CPU) loadByte(op operand) (uint8, error) {
	if op.immediate {
		if op.wide {
			return 0, curated.Errorf(WidthMismatch, registers.Byte, registers.Word)
		}
		return uint8(op.value), nil
	}
	return mc.read(op.bank, op.address)
}

// loadWord returns the word value of the operand. a word cannot be loaded
// from the last address of a bank.
func (mc *CPU) loadWord(op operand) (uint16, error) {
	if op.immediate {
		if !op.wide {
			return 0, curated.Errorf(WidthMismatch, registers.Word, registers.Byte)
		}
		return op.value, nil
	}

	if op.address == 0xffff {
		return 0, curated.Errorf(BankBoundary, op.bank, op.address)
	}

	lo, err := mc.read(op.bank, op.address)
	if err != nil {
		return 0, err
	}
	hi, err := mc.read(op.bank, op.address+1)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

func (mc *CPU) load(w registers.Width, op operand) (uint16, error) {
	if w == registers.Byte {
		v, err := mc.loadByte(op)
		return uint16(v), err
	}
	return mc.loadWord(op)
}

func (mc *CPU) storeByte(op operand, v uint8) error {
	if op.immediate {
		return curated.Errorf(UnsupportedAddressingMode, instructions.Immediate, mc.LastResult.Bank, mc.LastResult.Address)
	}
	return mc.write(op.bank, op.address, v)
}

// storeWord writes the word value to the operand. unlike loadWord(), a store
// to the last address of a bank carries the high byte into the next bank.
func (mc *CPU) storeWord(op operand, v uint16) error {
	if op.immediate {
		return curated.Errorf(UnsupportedAddressingMode, instructions.Immediate, mc.LastResult.Bank, mc.LastResult.Address)
	}

	bank, address, err := indexLong(op.bank, op.address, 1)
	if err != nil {
		return err
	}

	err = mc.write(op.bank, op.address, uint8(v))
	if err != nil {
		return err
	}
	return mc.write(bank, address, uint8(v>>8))
}

func (mc *CPU) store(w registers.Width, op operand, v uint16) error {
	if w == registers.Byte {
		return mc.storeByte(op, uint8(v))
	}
	return mc.storeWord(op, v)
}

// the stack is always in bank zero. in emulation mode the stack pointer must
// be in page one and wraps within that page
func (mc *CPU) checkStack() error {
	if mc.E && mc.S.High() != 0x01 {
		return curated.Errorf(StackPage, mc.S.Value())
	}
	return nil
}

func (mc *CPU) push(v uint8) error {
	err := mc.checkStack()
	if err != nil {
		return err
	}

	err = mc.write(0, mc.S.Value(), v)
	if err != nil {
		return err
	}

	if mc.E {
		mc.S.LoadLow(mc.S.Low() - 1)
	} else {
		mc.S.Load(mc.S.Value() - 1)
	}

	return nil
}

func (mc *CPU) pop() (uint8, error) {
	err := mc.checkStack()
	if err != nil {
		return 0, err
	}

	if mc.E {
		mc.S.LoadLow(mc.S.Low() + 1)
	} else {
		mc.S.Load(mc.S.Value() + 1)
	}

	return mc.read(0, mc.S.Value())
}

// pushWord pushes the high byte first so that the low byte is at the lower
// address.
func (mc *CPU) pushWord(v uint16) error {
	err := mc.push(uint8(v >> 8))
	if err != nil {
		return err
	}
	return mc.push(uint8(v))
}

func (mc *CPU) popWord() (uint16, error) {
	lo, err := mc.pop()
	if err != nil {
		return 0, err
	}
	hi, err := mc.pop()
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

func (mc *CPU) pushWidth(w registers.Width, v uint16) error {
	if w == registers.Byte {
		return mc.push(uint8(v))
	}
	return mc.pushWord(v)
}

func (mc *CPU) popWidth(w registers.Width) (uint16, error) {
	if w == registers.Byte {
		v, err := mc.pop()
		return uint16(v), err
	}
	return mc.popWord()
}
