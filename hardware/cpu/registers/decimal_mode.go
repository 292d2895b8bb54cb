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

// AddDecimal adds val and carry to the register using binary coded decimal
// arithmetic. Returns the carry and overflow results.
//
// Each nibble is corrected by adding six if the digit exceeds nine, in which
// case a carry is propagated to the next nibble. The overflow result is the
// same as that of the binary addition.
func (r *Register) AddDecimal(w Width, val uint16, carry bool) (rcarry bool, overflow bool) {
	a := r.Read(w)
	b := val & w.Mask()

	// overflow is taken from the binary addition
	bin := NewRegister(a, "")
	_, overflow = bin.Add(w, b, carry)

	var res uint16
	c := 0
	if carry {
		c = 1
	}

	for n := 0; n < w.Nibbles(); n++ {
		shift := uint(n * 4)
		d := int((a>>shift)&0x0f) + int((b>>shift)&0x0f) + c
		if d > 9 {
			d += 6
			c = 1
		} else {
			c = 0
		}
		res |= uint16(d&0x0f) << shift
	}

	r.Write(w, res)
	return c == 1, overflow
}

// SubtractDecimal subtracts val from the register using binary coded decimal
// arithmetic. The carry flag is an inverted borrow. Returns the carry and
// overflow results.
//
// Each nibble is corrected by subtracting six if the digit falls below zero,
// in which case a borrow is propagated to the next nibble. The overflow result
// is the same as that of the binary subtraction.
func (r *Register) SubtractDecimal(w Width, val uint16, carry bool) (rcarry bool, overflow bool) {
	a := r.Read(w)
	b := val & w.Mask()

	bin := NewRegister(a, "")
	_, overflow = bin.Subtract(w, b, carry)

	var res uint16
	borrow := 1
	if carry {
		borrow = 0
	}

	for n := 0; n < w.Nibbles(); n++ {
		shift := uint(n * 4)
		d := int((a>>shift)&0x0f) - int((b>>shift)&0x0f) - borrow
		if d < 0 {
			d -= 6
			borrow = 1
		} else {
			borrow = 0
		}
		res |= uint16(d&0x0f) << shift
	}

	r.Write(w, res)
	return borrow == 0, overflow
}
