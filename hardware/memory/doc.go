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

// Package memory implements the memory of the single board computer. The
// Memory type satisfies the bus.CPUBus and bus.DebuggerBus interfaces.
//
// See the memorymap package for the layout of the address space.
//
// Accesses to the IO page are passed to the bus.PeripheralBus given to
// NewMemory(). Accesses to unimplemented areas, and writes to flash, return a
// curated error with one of the patterns in the bus package.
package memory
