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

// Package hostterm connects the terminal of the host to the UART of the
// emulated machine.
//
// On linux the input terminal is put into cbreak mode with echo turned off,
// using "github.com/pkg/term/termios". On other systems the terminal is put
// into raw mode with "golang.org/x/term". In both cases CleanUp()
// restores the terminal to the state it was in when Initialise() was called.
//
// The Pump() function reads bytes from the input and forwards them, after
// translation, to a receive function. Carriage returns are translated to
// line feeds and DEL is translated to backspace.
package hostterm
