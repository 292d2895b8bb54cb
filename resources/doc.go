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

// Package resources contains functions to prepare paths for emulator
// resources, such as the preferences file.
//
// If a directory named ".emu816" exists in the current working directory
// then resources are kept there. This is the "portable" mode and is useful
// for development and for running the emulator from removable media.
// Otherwise resources are kept in the "emu816" directory of the user's
// configuration directory, as returned by os.UserConfigDir().
package resources
