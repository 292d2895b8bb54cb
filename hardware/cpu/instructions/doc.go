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

// Package instructions defines the opcode table of the 65C816.
//
// The table is described by the instructions.csv file, which is embedded in
// the package and parsed by GetDefinitions(). Each record of the file gives
// the opcode, the operator, the addressing mode and, optionally, the effect
// category of the instruction. Opcodes not listed in the file have no
// definition and the CPU treats them as unimplemented.
//
// The number of bytes taken by an instruction is not fixed for the 65C816. An
// immediate operand is either one or two bytes depending on the M and X flags
// of the status register at the time of decoding. The ImmediateWidth field of
// the Definition says which flag, if any, decides the size.
package instructions
