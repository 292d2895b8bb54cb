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

package registers_test

import (
	"testing"

	"github.com/emu816/emu816/hardware/cpu/registers"
	"github.com/emu816/emu816/test"
)

func TestStatusRegister(t *testing.T) {
	sr := registers.NewStatusRegister()
	test.ExpectEquality(t, sr.Value(), 0x34)
	test.ExpectEquality(t, sr.String(), "nvMXdIzc")
	test.ExpectEquality(t, sr.AccumulatorWidth(), registers.Byte)
	test.ExpectEquality(t, sr.IndexWidth(), registers.Byte)

	sr.Set(registers.Carry, true)
	sr.Set(registers.SmallAccumulator, false)
	test.ExpectEquality(t, sr.String(), "nvmXdIzC")
	test.ExpectSuccess(t, sr.Get(registers.Carry))
	test.ExpectEquality(t, sr.AccumulatorWidth(), registers.Word)

	sr.Load(0xff)
	test.ExpectEquality(t, sr.String(), "NVMXDIZC")

	sr.Reset()
	test.ExpectEquality(t, sr.Value(), 0x34)
}

func TestSetNZ(t *testing.T) {
	sr := registers.NewStatusRegister()

	for v := 0; v < 256; v++ {
		r := sr.SetNZ8(uint8(v))
		test.ExpectEquality(t, r, uint8(v))
		test.ExpectEquality(t, sr.Get(registers.Zero), v == 0)
		test.ExpectEquality(t, sr.Get(registers.Negative), v&0x80 == 0x80)
	}

	for _, v := range []uint16{0x0000, 0x0001, 0x0080, 0x7fff, 0x8000, 0xffff} {
		r := sr.SetNZ(v)
		test.ExpectEquality(t, r, v)
		test.ExpectEquality(t, sr.Get(registers.Zero), v == 0)
		test.ExpectEquality(t, sr.Get(registers.Negative), v&0x8000 == 0x8000)
	}

	// byte width ignores the high byte
	sr.SetNZWidth(registers.Byte, 0xff00)
	test.ExpectSuccess(t, sr.Get(registers.Zero))
	test.ExpectFailure(t, sr.Get(registers.Negative))
}
