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

	"github.com/emu816/emu816/curated"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

type restorer interface {
	restore() error
}

// posix terminal state
type posixState struct {
	fd      uintptr
	canAttr unix.Termios
}

func (st *posixState) restore() error {
	err := termios.Tcsetattr(st.fd, termios.TCSANOW, &st.canAttr)
	if err != nil {
		return curated.Errorf(TerminalError, err)
	}
	return nil
}

// makeInputMode puts the terminal into cbreak mode with echo off. output
// processing is left untouched so that line feeds from the UART still
// produce a carriage return
func makeInputMode(input *os.File) (restorer, error) {
	st := &posixState{fd: input.Fd()}

	attr, err := unix.IoctlGetTermios(int(st.fd), unix.TCGETS)
	if err != nil {
		return nil, curated.Errorf(TerminalError, err)
	}
	st.canAttr = *attr

	cbreakAttr := st.canAttr
	termios.Cfmakecbreak(&cbreakAttr)
	cbreakAttr.Lflag &^= unix.ECHO

	err = termios.Tcsetattr(st.fd, termios.TCSANOW, &cbreakAttr)
	if err != nil {
		return nil, curated.Errorf(TerminalError, err)
	}

	return st, nil
}
