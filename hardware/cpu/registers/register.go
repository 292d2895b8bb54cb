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

package registers

import "fmt"

// Register is a 16-bit register that can be operated on as a byte or a word.
type Register struct {
	label string
	value uint16
}

// NewRegister is the preferred method of initialisation for Register.
func NewRegister(val uint16, label string) Register {
	return Register{
		value: val,
		label: label,
	}
}

func (r Register) String() string {
	return fmt.Sprintf("%s=%04x", r.label, r.value)
}

// Label returns the name of the register.
func (r Register) Label() string {
	return r.label
}

// Value returns the full 16-bit value of the register.
func (r Register) Value() uint16 {
	return r.value
}

// Low returns the low byte of the register.
func (r Register) Low() uint8 {
	return uint8(r.value)
}

// High returns the high byte of the register.
func (r Register) High() uint8 {
	return uint8(r.value >> 8)
}

// Load the full 16-bit value into the register.
func (r *Register) Load(val uint16) {
	r.value = val
}

// LoadLow loads a byte into the register, preserving the high byte.
func (r *Register) LoadLow(val uint8) {
	r.value = (r.value & 0xff00) | uint16(val)
}

// LoadHigh loads a byte into the high byte of the register, preserving the low
// byte.
func (r *Register) LoadHigh(val uint8) {
	r.value = (r.value & 0x00ff) | uint16(val)<<8
}

// Truncate clears the high byte of the register.
func (r *Register) Truncate() {
	r.value &= 0x00ff
}

// Swap exchanges the high and low bytes of the register.
func (r *Register) Swap() {
	r.value = r.value<<8 | r.value>>8
}

// Read returns the value of the register for the width. A byte read returns
// only the low byte.
func (r Register) Read(w Width) uint16 {
	return r.value & w.Mask()
}

// Write the value to the register for the width. A byte write preserves the
// high byte of the register.
func (r *Register) Write(w Width, val uint16) {
	if w == Byte {
		r.LoadLow(uint8(val))
	} else {
		r.Load(val)
	}
}

// IsNegative returns true if the sign bit for the width is set.
func (r Register) IsNegative(w Width) bool {
	return r.value&w.Sign() == w.Sign()
}

// Add val and carry to the register. Returns the carry and overflow results of
// the addition.
func (r *Register) Add(w Width, val uint16, carry bool) (rcarry bool, overflow bool) {
	a := uint32(r.Read(w))
	b := uint32(val & w.Mask())

	s := a + b
	if carry {
		s++
	}
	res := uint16(s) & w.Mask()

	// two's complement overflow. both operands have the same sign and the
	// sign of the result differs
	overflow = (uint16(a)^res)&(uint16(b)^res)&w.Sign() != 0
	rcarry = s > uint32(w.Mask())

	r.Write(w, res)
	return rcarry, overflow
}

// Subtract val from the register. The carry flag is an inverted borrow, as
// is normal for the 65xx family. Returns the carry and overflow results.
func (r *Register) Subtract(w Width, val uint16, carry bool) (rcarry bool, overflow bool) {
	return r.Add(w, ^val, carry)
}

// Compare the register with val. The register is not changed. Returns the
// result of the subtraction, for setting the zero and negative flags, and the
// carry.
func (r Register) Compare(w Width, val uint16) (uint16, bool) {
	rcarry, _ := r.Subtract(w, val, true)
	return r.Read(w), rcarry
}

// AND the register with val.
func (r *Register) AND(w Width, val uint16) {
	r.Write(w, r.Read(w)&val)
}

// ORA the register with val.
func (r *Register) ORA(w Width, val uint16) {
	r.Write(w, r.Read(w)|val)
}

// EOR the register with val.
func (r *Register) EOR(w Width, val uint16) {
	r.Write(w, r.Read(w)^val)
}

// ASL shifts the register left by one bit. Returns the bit shifted out.
func (r *Register) ASL(w Width) bool {
	carry := r.IsNegative(w)
	r.Write(w, r.Read(w)<<1)
	return carry
}

// LSR shifts the register right by one bit. Returns the bit shifted out.
func (r *Register) LSR(w Width) bool {
	carry := r.value&0x01 == 0x01
	r.Write(w, r.Read(w)>>1)
	return carry
}

// ROL rotates the register left by one bit through the carry.
func (r *Register) ROL(w Width, carry bool) bool {
	rcarry := r.IsNegative(w)
	v := r.Read(w) << 1
	if carry {
		v |= 0x01
	}
	r.Write(w, v)
	return rcarry
}

// ROR rotates the register right by one bit through the carry.
func (r *Register) ROR(w Width, carry bool) bool {
	rcarry := r.value&0x01 == 0x01
	v := r.Read(w) >> 1
	if carry {
		v |= w.Sign()
	}
	r.Write(w, v)
	return rcarry
}
