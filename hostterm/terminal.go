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

package hostterm

import (
	"os"

	"golang.org/x/term"
)

// Terminal is the host terminal used for UART input.
type Terminal struct {
	input *os.File

	// whether the input is a real terminal. if it is not then the terminal
	// mode is never changed
	realInput bool

	// platform specific state used to restore the terminal
	state restorer
}

// IsTerminal returns true if the input is a real terminal.
func (t *Terminal) IsTerminal() bool {
	return t.realInput
}

// Initialise the terminal. If the input is a real terminal it is put into
// a mode where bytes are available without waiting for a newline and without
// being echoed.
func (t *Terminal) Initialise(input *os.File) error {
	t.input = input
	t.realInput = term.IsTerminal(int(input.Fd()))
	if !t.realInput {
		return nil
	}

	var err error
	t.state, err = makeInputMode(input)
	return err
}

// CleanUp restores the terminal to the mode it was in before Initialise().
func (t *Terminal) CleanUp() error {
	if t.state == nil {
		return nil
	}
	err := t.state.restore()
	t.state = nil
	return err
}

// Read implements the io.Reader interface.
func (t *Terminal) Read(p []byte) (int, error) {
	return t.input.Read(p)
}
