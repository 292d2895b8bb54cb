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

// execute the instruction body with the resolved operand.
func (mc *CPU) execute(defn *instructions.Definition, op operand) error {
	// the width of the accumulator and the index registers is decided once at
	// the start of the instruction
	aw := mc.Status.AccumulatorWidth()
	iw := mc.Status.IndexWidth()

	switch defn.Operator {
	case instructions.Nop, instructions.Wdm:

	// load and store
	case instructions.Lda:
		return mc.loadRegister(&mc.A, aw, op)
	case instructions.Ldx:
		return mc.loadRegister(&mc.X, iw, op)
	case instructions.Ldy:
		return mc.loadRegister(&mc.Y, iw, op)
	case instructions.Sta:
		return mc.store(aw, op, mc.A.Read(aw))
	case instructions.Stx:
		return mc.store(iw, op, mc.X.Read(iw))
	case instructions.Sty:
		return mc.store(iw, op, mc.Y.Read(iw))
	case instructions.Stz:
		return mc.store(aw, op, 0)

	// arithmetic
	case instructions.Adc:
		v, err := mc.load(aw, op)
		if err != nil {
			return err
		}

		var carry, overflow bool
		if mc.Status.Get(registers.Decimal) {
			carry, overflow = mc.A.AddDecimal(aw, v, mc.Status.Get(registers.Carry))
		} else {
			carry, overflow = mc.A.Add(aw, v, mc.Status.Get(registers.Carry))
		}
		mc.Status.Set(registers.Carry, carry)
		mc.Status.Set(registers.Overflow, overflow)
		mc.Status.SetNZWidth(aw, mc.A.Read(aw))

	case instructions.Sbc:
		v, err := mc.load(aw, op)
		if err != nil {
			return err
		}

		var carry, overflow bool
		if mc.Status.Get(registers.Decimal) {
			carry, overflow = mc.A.SubtractDecimal(aw, v, mc.Status.Get(registers.Carry))
		} else {
			carry, overflow = mc.A.Subtract(aw, v, mc.Status.Get(registers.Carry))
		}
		mc.Status.Set(registers.Carry, carry)
		mc.Status.Set(registers.Overflow, overflow)
		mc.Status.SetNZWidth(aw, mc.A.Read(aw))

	// logic
	case instructions.And:
		v, err := mc.load(aw, op)
		if err != nil {
			return err
		}
		mc.A.AND(aw, v)
		mc.Status.SetNZWidth(aw, mc.A.Read(aw))

	case instructions.Ora:
		v, err := mc.load(aw, op)
		if err != nil {
			return err
		}
		mc.A.ORA(aw, v)
		mc.Status.SetNZWidth(aw, mc.A.Read(aw))

	case instructions.Eor:
		v, err := mc.load(aw, op)
		if err != nil {
			return err
		}
		mc.A.EOR(aw, v)
		mc.Status.SetNZWidth(aw, mc.A.Read(aw))

	case instructions.Bit:
		v, err := mc.load(aw, op)
		if err != nil {
			return err
		}
		mc.Status.Set(registers.Zero, mc.A.Read(aw)&v == 0)

		// the immediate form only affects the zero flag
		if !op.immediate {
			mc.Status.Set(registers.Negative, v&aw.Sign() != 0)
			mc.Status.Set(registers.Overflow, v&(aw.Sign()>>1) != 0)
		}

	case instructions.Tsb:
		v, err := mc.load(aw, op)
		if err != nil {
			return err
		}
		mc.Status.Set(registers.Zero, mc.A.Read(aw)&v == 0)
		return mc.store(aw, op, v|mc.A.Read(aw))

	case instructions.Trb:
		v, err := mc.load(aw, op)
		if err != nil {
			return err
		}
		mc.Status.Set(registers.Zero, mc.A.Read(aw)&v == 0)
		return mc.store(aw, op, v&^mc.A.Read(aw))

	// compare
	case instructions.Cmp:
		return mc.compare(mc.A, aw, op)
	case instructions.Cpx:
		return mc.compare(mc.X, iw, op)
	case instructions.Cpy:
		return mc.compare(mc.Y, iw, op)

	// increment, decrement and shifts. these operate on the accumulator or
	// on memory depending on the addressing mode
	case instructions.Inc:
		return mc.modify(aw, op, func(r *registers.Register) {
			r.Add(aw, 1, false)
		})
	case instructions.Dec:
		return mc.modify(aw, op, func(r *registers.Register) {
			r.Subtract(aw, 1, true)
		})
	case instructions.Asl:
		return mc.modify(aw, op, func(r *registers.Register) {
			mc.Status.Set(registers.Carry, r.ASL(aw))
		})
	case instructions.Lsr:
		return mc.modify(aw, op, func(r *registers.Register) {
			mc.Status.Set(registers.Carry, r.LSR(aw))
		})
	case instructions.Rol:
		return mc.modify(aw, op, func(r *registers.Register) {
			mc.Status.Set(registers.Carry, r.ROL(aw, mc.Status.Get(registers.Carry)))
		})
	case instructions.Ror:
		return mc.modify(aw, op, func(r *registers.Register) {
			mc.Status.Set(registers.Carry, r.ROR(aw, mc.Status.Get(registers.Carry)))
		})

	case instructions.Inx:
		mc.X.Add(iw, 1, false)
		mc.Status.SetNZWidth(iw, mc.X.Read(iw))
	case instructions.Iny:
		mc.Y.Add(iw, 1, false)
		mc.Status.SetNZWidth(iw, mc.Y.Read(iw))
	case instructions.Dex:
		mc.X.Subtract(iw, 1, true)
		mc.Status.SetNZWidth(iw, mc.X.Read(iw))
	case instructions.Dey:
		mc.Y.Subtract(iw, 1, true)
		mc.Status.SetNZWidth(iw, mc.Y.Read(iw))

	// branches
	case instructions.Bcc:
		mc.branch(op, !mc.Status.Get(registers.Carry))
	case instructions.Bcs:
		mc.branch(op, mc.Status.Get(registers.Carry))
	case instructions.Beq:
		mc.branch(op, mc.Status.Get(registers.Zero))
	case instructions.Bne:
		mc.branch(op, !mc.Status.Get(registers.Zero))
	case instructions.Bmi:
		mc.branch(op, mc.Status.Get(registers.Negative))
	case instructions.Bpl:
		mc.branch(op, !mc.Status.Get(registers.Negative))
	case instructions.Bvc:
		mc.branch(op, !mc.Status.Get(registers.Overflow))
	case instructions.Bvs:
		mc.branch(op, mc.Status.Get(registers.Overflow))
	case instructions.Bra, instructions.Brl:
		mc.branch(op, true)

	// jumps and subroutines. the bank of the operand is ignored by the
	// short forms, which always stay in the program bank
	case instructions.Jmp:
		mc.PC = op.address

	case instructions.Jml:
		mc.PBR = op.bank
		mc.PC = op.address

	case instructions.Jsr:
		// the return address is the last byte of the JSR instruction
		err := mc.pushWord(mc.PC - 1)
		if err != nil {
			return err
		}
		mc.PC = op.address

	case instructions.Jsl:
		err := mc.push(mc.PBR)
		if err != nil {
			return err
		}
		err = mc.pushWord(mc.PC - 1)
		if err != nil {
			return err
		}
		mc.PBR = op.bank
		mc.PC = op.address

	case instructions.Rts:
		pc, err := mc.popWord()
		if err != nil {
			return err
		}
		mc.PC = pc + 1

	case instructions.Rtl:
		pc, err := mc.popWord()
		if err != nil {
			return err
		}
		mc.PBR, err = mc.pop()
		if err != nil {
			return err
		}
		mc.PC = pc + 1

	// stack
	case instructions.Pha:
		return mc.pushWidth(aw, mc.A.Read(aw))
	case instructions.Phx:
		return mc.pushWidth(iw, mc.X.Read(iw))
	case instructions.Phy:
		return mc.pushWidth(iw, mc.Y.Read(iw))
	case instructions.Pla:
		return mc.pullRegister(&mc.A, aw)
	case instructions.Plx:
		return mc.pullRegister(&mc.X, iw)
	case instructions.Ply:
		return mc.pullRegister(&mc.Y, iw)

	case instructions.Php:
		return mc.push(mc.Status.Value())
	case instructions.Plp:
		v, err := mc.pop()
		if err != nil {
			return err
		}
		mc.setStatus(v)

	case instructions.Phb:
		return mc.push(mc.DBR)
	case instructions.Plb:
		v, err := mc.pop()
		if err != nil {
			return err
		}
		mc.DBR = mc.Status.SetNZ8(v)

	case instructions.Phd:
		return mc.pushWord(mc.D.Value())
	case instructions.Pld:
		v, err := mc.popWord()
		if err != nil {
			return err
		}
		mc.D.Load(mc.Status.SetNZ(v))

	case instructions.Phk:
		return mc.push(mc.PBR)

	case instructions.Pea:
		// the operand is pushed as a value and not as an address
		return mc.pushWord(op.address)

	case instructions.Pei:
		v, err := mc.readPointer(0, op.address)
		if err != nil {
			return err
		}
		return mc.pushWord(v)

	case instructions.Per:
		return mc.pushWord(op.address)

	// transfers
	case instructions.Tax:
		mc.transfer(&mc.X, mc.A, iw)
	case instructions.Tay:
		mc.transfer(&mc.Y, mc.A, iw)
	case instructions.Txy:
		mc.transfer(&mc.Y, mc.X, iw)
	case instructions.Tyx:
		mc.transfer(&mc.X, mc.Y, iw)
	case instructions.Tsx:
		mc.transfer(&mc.X, mc.S, iw)
	case instructions.Txa:
		mc.transfer(&mc.A, mc.X, aw)
	case instructions.Tya:
		mc.transfer(&mc.A, mc.Y, aw)

	case instructions.Txs:
		mc.loadStack(mc.X.Value())
	case instructions.Tcs:
		mc.loadStack(mc.A.Value())

	case instructions.Tcd:
		mc.D.Load(mc.Status.SetNZ(mc.A.Value()))
	case instructions.Tdc:
		mc.A.Load(mc.Status.SetNZ(mc.D.Value()))
	case instructions.Tsc:
		mc.A.Load(mc.Status.SetNZ(mc.S.Value()))

	case instructions.Xba:
		mc.A.Swap()
		mc.Status.SetNZ8(mc.A.Low())

	// flags and processor control
	case instructions.Clc:
		mc.Status.Set(registers.Carry, false)
	case instructions.Sec:
		mc.Status.Set(registers.Carry, true)
	case instructions.Cli:
		mc.Status.Set(registers.IRQDisable, false)
	case instructions.Sei:
		mc.Status.Set(registers.IRQDisable, true)
	case instructions.Cld:
		mc.Status.Set(registers.Decimal, false)
	case instructions.Sed:
		mc.Status.Set(registers.Decimal, true)
	case instructions.Clv:
		mc.Status.Set(registers.Overflow, false)

	case instructions.Rep:
		v, err := mc.loadByte(op)
		if err != nil {
			return err
		}
		mc.setStatus(mc.Status.Value() &^ v)

	case instructions.Sep:
		v, err := mc.loadByte(op)
		if err != nil {
			return err
		}
		mc.setStatus(mc.Status.Value() | v)

	case instructions.Xce:
		c := mc.Status.Get(registers.Carry)
		mc.Status.Set(registers.Carry, mc.E)
		mc.setEmulation(c)

	case instructions.Stp:
		mc.RunStatus = Stopped
	case instructions.Wai:
		mc.RunStatus = Waiting

	default:
		return curated.Errorf(UnimplementedOpcode, defn.OpCode, mc.LastResult.Bank, mc.LastResult.Address)
	}

	return nil
}

func (mc *CPU) loadRegister(r *registers.Register, w registers.Width, op operand) error {
	v, err := mc.load(w, op)
	if err != nil {
		return err
	}
	r.Write(w, mc.Status.SetNZWidth(w, v))
	return nil
}

func (mc *CPU) pullRegister(r *registers.Register, w registers.Width) error {
	v, err := mc.popWidth(w)
	if err != nil {
		return err
	}
	r.Write(w, mc.Status.SetNZWidth(w, v))
	return nil
}

func (mc *CPU) compare(r registers.Register, w registers.Width, op operand) error {
	v, err := mc.load(w, op)
	if err != nil {
		return err
	}
	res, carry := r.Compare(w, v)
	mc.Status.Set(registers.Carry, carry)
	mc.Status.SetNZWidth(w, res)
	return nil
}

// modify applies the function to the accumulator or to the memory location
// of the operand. the zero and negative flags are set from the result.
func (mc *CPU) modify(w registers.Width, op operand, f func(r *registers.Register)) error {
	if op.mode == instructions.Accumulator {
		f(&mc.A)
		mc.Status.SetNZWidth(w, mc.A.Read(w))
		return nil
	}

	v, err := mc.load(w, op)
	if err != nil {
		return err
	}

	r := registers.NewRegister(v, "M")
	f(&r)
	mc.Status.SetNZWidth(w, r.Read(w))

	return mc.store(w, op, r.Read(w))
}

func (mc *CPU) branch(op operand, condition bool) {
	if condition {
		mc.PC = op.address
	}
}

// transfer copies the source register to the destination for the width of
// the destination. a byte transfer preserves the high byte of the destination.
func (mc *CPU) transfer(dest *registers.Register, src registers.Register, w registers.Width) {
	dest.Write(w, mc.Status.SetNZWidth(w, src.Read(w)))
}

// loadStack sets the stack pointer without affecting the flags. the high byte
// is forced to 0x01 in emulation mode.
func (mc *CPU) loadStack(v uint16) {
	if mc.E {
		v = 0x0100 | v&0x00ff
	}
	mc.S.Load(v)
}
