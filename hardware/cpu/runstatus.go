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

// RunStatus is the externally visible execution state of the CPU.
type RunStatus int

// List of valid RunStatus values. Waiting and Stopped are terminal because
// interrupts are not emulated. Only Reset() returns the CPU to Running.
const (
	Running RunStatus = iota
	Waiting
	Stopped
)

func (s RunStatus) String() string {
	switch s {
	case Running:
		return "running"
	case Waiting:
		return "waiting"
	case Stopped:
		return "stopped"
	}
	return "unknown run status"
}
