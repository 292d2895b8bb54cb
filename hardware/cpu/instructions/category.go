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

package instructions

// Category categorises an instruction by the effect it has.
type Category int

// List of valid Category values.
const (
	Read Category = iota
	Write
	Modify

	// the following have a variable effect on the program counter, depending
	// on the instruction's precise operand. branch instructions can be
	// distinguished from Flow instructions by the AddressingMode
	Flow
	Subroutine

	Stack
	Control
)

var categoryNames = []string{"Read", "Write", "Modify", "Flow", "Subroutine", "Stack", "Control"}

func (e Category) String() string {
	if int(e) < len(categoryNames) {
		return categoryNames[e]
	}
	return "unknown effect"
}
