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

// Package bus defines the interfaces that are used to access the emulated
// memory space.
//
// CPUBus is the view of memory used by the CPU. Every address is a bank and
// a 16-bit address within that bank. Errors returned by a CPUBus are fatal to
// the emulation session; the CPU never retries an access.
//
// DebuggerBus is used by tests and other tools to inspect and change memory
// without side effects. In particular, a Peek() of the IO page does not
// consume data from a peripheral FIFO.
//
// PeripheralBus is the interface implemented by the devices attached to the
// IO page. The Tick() function is called once for every CPU bus cycle.
package bus
