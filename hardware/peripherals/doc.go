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

// Package peripherals implements the devices attached to the IO page of the
// memory map. The IO type satisfies the bus.PeripheralBus interface.
//
// The IO page is 256 ports:
//
//	$00-$0f  debug port. writes are logged with the "io" tag
//	$10-$18  UART. the register is selected by the low three bits of the port
//
// All other ports are unmapped. Reading from the debug port is also an error.
package peripherals
