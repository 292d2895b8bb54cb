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

package execution_test

import (
	"testing"

	"github.com/emu816/emu816/curated"
	"github.com/emu816/emu816/hardware/cpu/execution"
	"github.com/emu816/emu816/hardware/cpu/instructions"
	"github.com/emu816/emu816/test"
)

func TestResultString(t *testing.T) {
	table, err := instructions.GetDefinitions()
	test.DemandSuccess(t, err)

	r := execution.Result{
		Bank:            0x00,
		Address:         0x8000,
		Defn:            table[0xa9],
		SmallAcc:        true,
		SmallIdx:        true,
		ByteCount:       2,
		InstructionData: 0x42,
		Cycles:          2,
		Final:           true,
	}
	test.ExpectEquality(t, r.String(), "00:8000 LDA #$42")
	test.ExpectSuccess(t, r.IsValid())

	// branch instructions show the target address
	r = execution.Result{
		Bank:            0x01,
		Address:         0x8010,
		Defn:            table[0xd0],
		ByteCount:       2,
		InstructionData: 0xfc,
		Cycles:          2,
		Final:           true,
	}
	test.ExpectEquality(t, r.String(), "01:8010 BNE $800e")

	r.Reset()
	test.ExpectEquality(t, r.String(), "00:0000 ???")
}

func TestResultValidity(t *testing.T) {
	table, err := instructions.GetDefinitions()
	test.DemandSuccess(t, err)

	r := execution.Result{
		Defn:      table[0xa9],
		SmallAcc:  false,
		ByteCount: 2,
		Cycles:    3,
	}
	test.ExpectSuccess(t, curated.Is(r.IsValid(), execution.NotFinalised))

	// a 16bit accumulator means a three byte LDA immediate
	r.Final = true
	test.ExpectSuccess(t, curated.Is(r.IsValid(), execution.BadByteCount))

	r.ByteCount = 3
	test.ExpectSuccess(t, r.IsValid())
}
