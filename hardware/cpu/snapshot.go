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

package cpu

import (
	"github.com/emu816/emu816/hardware/cpu/execution"
	"github.com/emu816/emu816/hardware/cpu/registers"
)

// Snapshot is a copy of the programmer visible state of the CPU. It has no
// reference to the bus and can be kept or inspected after the CPU has moved
// on.
type Snapshot struct {
	A registers.Register
	X registers.Register
	Y registers.Register
	S registers.Register
	D registers.Register

	DBR uint8
	PBR uint8
	PC  uint16
	E   bool

	Status    registers.StatusRegister
	RunStatus RunStatus

	LastResult execution.Result
}

// Snapshot returns a copy of the current CPU state.
func (mc *CPU) Snapshot() Snapshot {
	return Snapshot{
		A:          mc.A,
		X:          mc.X,
		Y:          mc.Y,
		S:          mc.S,
		D:          mc.D,
		DBR:        mc.DBR,
		PBR:        mc.PBR,
		PC:         mc.PC,
		E:          mc.E,
		Status:     mc.Status,
		RunStatus:  mc.RunStatus,
		LastResult: mc.LastResult,
	}
}
