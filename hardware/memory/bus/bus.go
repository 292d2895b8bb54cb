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

package bus

// Sentinal error patterns for bus implementations.
const (
	Unmapped = "bus: unmapped address %02x:%04x"
	ReadOnly = "bus: write to read-only address %02x:%04x"
)

// CPUBus defines the operations for the memory system when accessed from
// the CPU.
type CPUBus interface {
	Read(bank uint8, address uint16) (uint8, error)
	Write(bank uint8, address uint16, data uint8) error
}

// DebuggerBus defines the meta-operations for all memory areas. Think of
// these functions as "debugging" functions, that is operations outside of the
// normal operation of the machine.
type DebuggerBus interface {
	Peek(bank uint8, address uint16) (uint8, error)
	Poke(bank uint8, address uint16, value uint8) error
}

// PeripheralBus defines the operations for devices mapped into the IO page.
type PeripheralBus interface {
	Read(port uint8) (uint8, error)
	Write(port uint8, data uint8) error

	// Peek returns the value of the port without side effects
	Peek(port uint8) (uint8, error)

	// Tick is called once per CPU bus cycle
	Tick()
}
