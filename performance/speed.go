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

package performance

// CalcSpeed takes the number of bus cycles, the number of instructions and
// the duration (in seconds) and returns the effective clock speed in MHz and
// the number of instructions per second in millions. The accuracy is the
// clock speed as a percentage of the target speed in MHz.
func CalcSpeed(cycles uint64, instructions uint64, duration float64, target float64) (mhz float64, mips float64, accuracy float64) {
	if duration <= 0 {
		return 0, 0, 0
	}
	mhz = float64(cycles) / duration / 1000000
	mips = float64(instructions) / duration / 1000000
	if target > 0 {
		accuracy = 100 * mhz / target
	}
	return mhz, mips, accuracy
}
