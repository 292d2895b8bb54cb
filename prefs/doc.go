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

// Package prefs holds the typed preference values used to configure the
// emulator. Values are stored atomically so that they can be read by the
// emulation goroutine while being changed from another goroutine.
//
// Each type supports a pre and post hook. The pre hook can reject a new value
// by returning an error. The post hook is useful for propagating a change, for
// example to the performance limiter.
//
// Preferences can also be given on the command line as a single string of
// "key::value" pairs separated by semi-colons:
//
//	cpu.clock::2.0; uart.echo::true
//
// The string is pushed onto the command line stack with
// PushCommandLineStack(). Consumers of the preferences take values from the
// top of the stack with GetCommandLinePref(). Any values that were not taken
// are returned by PopCommandLineStack(), which the caller can use to warn about
// unknown keys.
package prefs
