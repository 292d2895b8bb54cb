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

package memorymap

// Area represents the different areas of memory.
type Area int

// List of valid Area values.
const (
	Unmapped Area = iota
	LowRAM
	IO
	Flash
	LargeMMIO
	HighRAM
)

func (a Area) String() string {
	switch a {
	case LowRAM:
		return "Low RAM"
	case IO:
		return "IO"
	case Flash:
		return "Flash"
	case LargeMMIO:
		return "Large MMIO"
	case HighRAM:
		return "High RAM"
	}
	return "unmapped"
}

// Sizes of the memory areas in bytes.
const (
	LowRAMSize  = 512 * 1024
	FlashSize   = 512 * 1024
	HighRAMSize = 2048 * 1024
)

// Boundaries of the memory areas.
const (
	MemtopLowBanks  = uint8(0x0f)
	OriginLargeMMIO = uint8(0x10)
	MemtopLargeMMIO = uint8(0x1f)
	OriginHighRAM   = uint8(0x20)
	MemtopHighRAM   = uint8(0x3f)

	OriginIO    = uint16(0x7f00)
	MemtopIO    = uint16(0x7fff)
	OriginFlash = uint16(0x8000)

	// the stride of low RAM and flash. each of the low banks contributes
	// 32KiB to each area
	lowBankStride = 0x8000
)

// MapAddress translates a bank and address to an area and an index into that
// area. The index for the IO area is the port number.
func MapAddress(bank uint8, address uint16) (Area, int) {
	switch {
	case bank <= MemtopLowBanks:
		switch {
		case address < OriginIO:
			return LowRAM, int(bank)*lowBankStride + int(address)
		case address <= MemtopIO:
			return IO, int(address & 0xff)
		default:
			return Flash, int(bank)*lowBankStride + int(address&0x7fff)
		}
	case bank <= MemtopLargeMMIO:
		return LargeMMIO, 0
	case bank <= MemtopHighRAM:
		return HighRAM, int(bank-OriginHighRAM)<<16 | int(address)
	}
	return Unmapped, 0
}
