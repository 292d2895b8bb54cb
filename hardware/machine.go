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

package hardware

import (
	"fmt"
	"io"

	"github.com/emu816/emu816/hardware/cpu"
	"github.com/emu816/emu816/hardware/memory"
	"github.com/emu816/emu816/hardware/peripherals"
	"github.com/emu816/emu816/hardware/peripherals/uart"
	"github.com/emu816/emu816/hardware/preferences"
	"github.com/emu816/emu816/logger"
)

// Machine is the main container for the emulated components of the single
// board computer.
type Machine struct {
	Prefs *preferences.Preferences

	CPU  *cpu.CPU
	Mem  *memory.Memory
	IO   *peripherals.IO
	UART *uart.UART

	// the number of bus cycles since the last reset
	Cycles uint64

	// if not nil every instruction is written to the trace writer
	trace io.Writer

	// the cycle callback given to the CPU. stored to prevent a new method
	// value being created for every instruction
	cycleCallback func() error
}

// NewMachine creates a new Machine and everything associated with the
// hardware. The firmware is loaded into flash before the CPU reads the reset
// vector. Bytes transmitted by the UART are written to host.
func NewMachine(prefs *preferences.Preferences, firmware []uint8, host io.Writer) (*Machine, error) {
	var err error

	m := &Machine{Prefs: prefs}
	m.cycleCallback = m.cycle

	m.UART = uart.NewUART(host)
	m.UART.Echo = prefs.EchoPermission()

	m.IO = peripherals.NewIO(m.UART)
	m.IO.Debug = prefs.DebugPermission()

	m.Mem = memory.NewMemory(m.IO)
	err = m.Mem.LoadFlash(firmware)
	if err != nil {
		return nil, err
	}

	m.CPU, err = cpu.NewCPU(m.Mem)
	if err != nil {
		return nil, err
	}

	logger.Logf(logger.Allow, "machine", "reset vector %04x", m.CPU.PC)

	return m, nil
}

func (m *Machine) String() string {
	return fmt.Sprintf("%s cycles=%d", m.CPU, m.Cycles)
}

// Reset the CPU and the peripherals. Memory is not cleared.
func (m *Machine) Reset() error {
	m.IO.Reset()
	m.Cycles = 0
	return m.CPU.Reset()
}

// SetTrace sets the writer to which every executed instruction is written. A
// nil writer turns tracing off.
func (m *Machine) SetTrace(w io.Writer) {
	m.trace = w
}

// called by the CPU after every bus access
func (m *Machine) cycle() error {
	m.IO.Tick()
	m.Cycles++
	return nil
}

// Step the machine forward one CPU instruction. The peripherals are ticked
// once for every bus cycle of the instruction.
func (m *Machine) Step() (cpu.RunStatus, error) {
	// a waiting or stopped CPU executes nothing so there is nothing to trace
	running := m.CPU.RunStatus == cpu.Running

	err := m.CPU.ExecuteInstruction(m.cycleCallback)
	if err != nil {
		return m.CPU.RunStatus, err
	}

	if running && m.trace != nil && m.CPU.LastResult.Final {
		fmt.Fprintf(m.trace, "%-24s %s\n", m.CPU.LastResult.String(), m.CPU)
	}

	return m.CPU.RunStatus, nil
}

// Drain ticks the peripherals until the UART has transmitted everything in
// its transmit FIFO. Useful after the CPU has stopped.
func (m *Machine) Drain() {
	for m.UART.Peek(uart.LSR)&uart.LSRTxEmpty == 0 {
		m.IO.Tick()
	}
}
