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

// Width of a register operation.
type Width int

// List of valid Width values.
const (
	Byte Width = iota
	Word
)

func (w Width) String() string {
	if w == Word {
		return "16bit"
	}
	return "8bit"
}

// Mask returns the bits used by an operation of this width.
func (w Width) Mask() uint16 {
	if w == Word {
		return 0xffff
	}
	return 0x00ff
}

// Sign returns the sign bit for an operation of this width.
func (w Width) Sign() uint16 {
	if w == Word {
		return 0x8000
	}
	return 0x0080
}

// Nibbles returns the number of decimal digits in an operation of this width.
func (w Width) Nibbles() int {
	if w == Word {
		return 4
	}
	return 2
}

// Bytes returns the number of bytes in an operation of this width.
func (w Width) Bytes() int {
	if w == Word {
		return 2
	}
	return 1
}

// WidthFromFlag returns Byte if small is true and Word otherwise. Useful when
// interpreting the M and X flags of the status register.
func WidthFromFlag(small bool) Width {
	if small {
		return Byte
	}
	return Word
}
