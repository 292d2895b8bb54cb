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

package uart

// FIFOSize is the depth of the transmit and receive FIFOs.
const FIFOSize = 16

type fifo struct {
	data  [FIFOSize]uint8
	head  int
	count int
}

func (f *fifo) push(v uint8) bool {
	if f.count == FIFOSize {
		return false
	}
	f.data[(f.head+f.count)%FIFOSize] = v
	f.count++
	return true
}

func (f *fifo) pop() (uint8, bool) {
	if f.count == 0 {
		return 0, false
	}
	v := f.data[f.head]
	f.head = (f.head + 1) % FIFOSize
	f.count--
	return v, true
}

func (f *fifo) peek() uint8 {
	if f.count == 0 {
		return 0
	}
	return f.data[f.head]
}

func (f *fifo) clear() {
	f.head = 0
	f.count = 0
}
