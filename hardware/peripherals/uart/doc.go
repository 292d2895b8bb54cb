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

// Package uart emulates a 16C550 style serial port.
//
// The registers are selected by a three bit port number:
//
//	0  RHR (read) / THR (write)    BRG low when DLAB is set
//	1  IER                         BRG high when DLAB is set
//	2  ISR (read) / FCR (write)
//	3  LCR                         bit 7 is DLAB
//	4  MCR
//	5  LSR
//	6  MSR
//	7  SPR
//
// The transmit and receive FIFOs are 16 bytes deep. Bytes written to THR are
// sent to the host io.Writer at a rate decided by the baud rate divisor. One
// byte is sent every bitCycles*10 ticks, where bitCycles is sixteen times the
// divisor (or sixteen if the divisor is zero). The Tick() function should be
// called once per CPU bus cycle.
//
// Bytes from the host are given to the UART with Receive(). This is safe to
// call from a goroutine other than the one running the emulation.
//
// Interrupts are not emulated. The ISR always reports that no interrupt is
// pending.
package uart
