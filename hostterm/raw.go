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

//go:build !linux

package hostterm

import (
	"os"

	"github.com/emu816/emu816/curated"
	"golang.org/x/term"
)

type restorer interface {
	restore() error
}

type rawState struct {
	fd    int
	state *term.State
}

func (st *rawState) restore() error {
	err := term.Restore(st.fd, st.state)
	if err != nil {
		return curated.Errorf(TerminalError, err)
	}
	return nil
}

// makeInputMode puts the terminal into raw mode. used where termios cbreak
// mode is not available
func makeInputMode(input *os.File) (restorer, error) {
	st := &rawState{fd: int(input.Fd())}

	var err error
	st.state, err = term.MakeRaw(st.fd)
	if err != nil {
		return nil, curated.Errorf(TerminalError, err)
	}

	return st, nil
}
