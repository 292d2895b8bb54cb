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

// Package registers implements the register file primitives of the 65C816.
//
// Register is a 16-bit register that can be operated on as a byte or as a
// word. The width of an operation is given by the Width argument of each
// method. When operating as a byte the high byte of the register is preserved.
// This matches the behaviour of the accumulator in the 65C816, where the high
// byte (sometimes called the B accumulator) survives 8-bit operations and can
// be brought into the low byte with the XBA instruction.
//
// The arithmetic methods return the carry and overflow results rather than
// writing to the status register directly. The CPU decides what to do with
// them.
//
// Decimal mode arithmetic works nibble by nibble, from the lowest to the
// highest, for as many nibbles as the width of the operation. The overflow
// flag in decimal mode is computed from the binary result of the same
// operands.
//
// StatusRegister is the processor status (the P register). Flags are selected
// with the Flag type.
package registers
