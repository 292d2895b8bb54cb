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

// Package modalflag wraps the flag package from the standard library to
// support a command line of the form:
//
//	emu816 [mode] [flags] [arguments]
//
// Modes are declared with AddSubModes(). The first mode added is the default
// and is selected if the first argument does not name a mode. Flags are added
// to the current mode with the AddBool(), AddString() etc. functions, which
// mirror those of flag.FlagSet.
//
// A mode can itself have modes. After a successful Parse() call NewMode() to
// start a new set of flags and sub-modes for the remaining arguments. Path()
// returns the chain of modes selected so far, separated by "/".
//
// Requesting help (-help or -h) prints the flags of the current mode along with
// the list of sub-modes and any text given to AdditionalHelp().
package modalflag
