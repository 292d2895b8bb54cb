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

import "strings"

// Flag selects a bit in the status register.
type Flag uint8

// List of valid Flag values.
const (
	Carry            Flag = 0x01
	Zero             Flag = 0x02
	IRQDisable       Flag = 0x04
	Decimal          Flag = 0x08
	SmallIndex       Flag = 0x10
	SmallAccumulator Flag = 0x20
	Overflow         Flag = 0x40
	Negative         Flag = 0x80
)

// the value of the status register on reset
const resetValue = uint8(SmallIndex | SmallAccumulator | IRQDisable)

// StatusRegister is the processor status register.
type StatusRegister struct {
	value uint8
}

// NewStatusRegister is the preferred method of initialisation for the status
// register. The register is in its reset state.
func NewStatusRegister() StatusRegister {
	return StatusRegister{value: resetValue}
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "P"
}

var flagLabels = [8]struct {
	flag Flag
	set  rune
}{
	{Negative, 'N'},
	{Overflow, 'V'},
	{SmallAccumulator, 'M'},
	{SmallIndex, 'X'},
	{Decimal, 'D'},
	{IRQDisable, 'I'},
	{Zero, 'Z'},
	{Carry, 'C'},
}

// String returns the flags, from the highest bit to the lowest, as upper case
// letters if set and lower case if clear.
func (sr StatusRegister) String() string {
	s := strings.Builder{}
	for _, l := range flagLabels {
		if sr.Get(l.flag) {
			s.WriteRune(l.set)
		} else {
			s.WriteRune(l.set + ('a' - 'A'))
		}
	}
	return s.String()
}

// Reset the status register to its power-on value.
func (sr *StatusRegister) Reset() {
	sr.value = resetValue
}

// Get returns true if the flag is set.
func (sr StatusRegister) Get(f Flag) bool {
	return sr.value&uint8(f) == uint8(f)
}

// Set or clear the flag.
func (sr *StatusRegister) Set(f Flag, v bool) {
	if v {
		sr.value |= uint8(f)
	} else {
		sr.value &^= uint8(f)
	}
}

// Value returns the status register as a byte, suitable for pushing onto the
// stack.
func (sr StatusRegister) Value() uint8 {
	return sr.value
}

// Load the status register from a byte.
func (sr *StatusRegister) Load(v uint8) {
	sr.value = v
}

// SetNZ8 sets the zero and negative flags according to the byte value. The
// value is returned unchanged.
func (sr *StatusRegister) SetNZ8(v uint8) uint8 {
	sr.Set(Zero, v == 0)
	sr.Set(Negative, v&0x80 == 0x80)
	return v
}

// SetNZ sets the zero and negative flags according to the word value. The
// value is returned unchanged.
func (sr *StatusRegister) SetNZ(v uint16) uint16 {
	sr.Set(Zero, v == 0)
	sr.Set(Negative, v&0x8000 == 0x8000)
	return v
}

// SetNZWidth sets the zero and negative flags according to the width of the
// value.
func (sr *StatusRegister) SetNZWidth(w Width, v uint16) uint16 {
	if w == Byte {
		return uint16(sr.SetNZ8(uint8(v)))
	}
	return sr.SetNZ(v)
}

// AccumulatorWidth returns the width selected by the M flag.
func (sr StatusRegister) AccumulatorWidth() Width {
	return WidthFromFlag(sr.Get(SmallAccumulator))
}

// IndexWidth returns the width selected by the X flag.
func (sr StatusRegister) IndexWidth() Width {
	return WidthFromFlag(sr.Get(SmallIndex))
}
