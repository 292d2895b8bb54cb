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

package execution

import (
	"github.com/emu816/emu816/curated"
)

// Sentinal error patterns returned by IsValid().
const (
	NotFinalised = "execution: not finalised (bad opcode?)"
	BadByteCount = "execution: unexpected number of bytes read during decode (%d instead of %d)"
	NoCycles     = "execution: %s took no cycles"
)

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final || r.Defn == nil {
		return curated.Errorf(NotFinalised)
	}

	expected := r.Defn.Bytes(r.SmallAcc, r.SmallIdx)
	if r.ByteCount != expected {
		return curated.Errorf(BadByteCount, r.ByteCount, expected)
	}

	// every instruction reads at least its own opcode
	if r.Cycles < r.ByteCount {
		return curated.Errorf(NoCycles, r.Defn.Operator)
	}

	return nil
}
