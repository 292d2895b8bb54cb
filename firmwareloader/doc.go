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

// Package firmwareloader is used to specify the firmware image that is to be
// loaded into the flash memory of the emulated machine.
//
// When the firmware is ready to be loaded into the emulator, the Load()
// function should be used. The Load() function handles loading of data from
// different sources. Currently local-files and data over HTTP are supported.
//
// The simplest instance of the Loader type:
//
//	fl := firmwareloader.Loader{
//		Filename: "firmware/monitor.bin",
//	}
//
// An expected SHA1 hash can be specified, in which case the loaded data must
// match it.
package firmwareloader
