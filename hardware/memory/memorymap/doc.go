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

// Package memorymap describes the memory map of the single board computer.
//
//	banks $00-$0f
//	    $0000-$7eff  low RAM (512KiB over the 16 banks)
//	    $7f00-$7fff  IO page
//	    $8000-$ffff  flash (512KiB over the 16 banks, read-only)
//	banks $10-$1f   large MMIO (not implemented)
//	banks $20-$3f   high RAM (2MiB)
//	banks $40-$ff   not implemented
//
// MapAddress() returns the area and the index into that area for any bank and
// address.
package memorymap
