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

// Sentinal error patterns for the cpu package. Errors from the bus are
// returned unchanged.
const (
	UnimplementedOpcode       = "cpu: unimplemented opcode %02x at %02x:%04x"
	UnsupportedAddressingMode = "cpu: unsupported addressing mode %s at %02x:%04x"
	AddressRange              = "cpu: effective address out of range (%02x:%04x + %04x)"
	StackPage                 = "cpu: stack pointer %04x outside of page one in emulation mode"
	WidthMismatch             = "cpu: %s access of %s immediate"
	BankBoundary              = "cpu: word load crosses bank boundary at %02x:%04x"
)
