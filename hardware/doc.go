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

// Package hardware is the base package for the single board computer
// emulation. It and its sub-packages contain everything required for a
// headless emulation.
//
// The Machine type is the root of the emulation and contains external
// references to all the machine's sub-systems. From here, the emulation can
// either be started to run continuously (with optional callback to check for
// continuation) with Run() or RunPaced(); or it can be stepped instruction by
// instruction with Step().
//
// The CPU calls back into the Machine after every bus access. The Machine
// uses this to tick the peripherals of the IO page once per bus cycle, which
// is what paces the transmission of bytes by the UART.
package hardware
