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

package peripherals

import (
	"github.com/emu816/emu816/curated"
	"github.com/emu816/emu816/hardware/peripherals/uart"
	"github.com/emu816/emu816/logger"
)

// Sentinal error patterns for the peripherals package.
const (
	UnmappedPort = "peripherals: unmapped port %02x"
	WriteOnly    = "peripherals: port %02x is write-only"
)

// Port ranges of the IO page.
const (
	OriginDebug = uint8(0x00)
	MemtopDebug = uint8(0x0f)
	OriginUART  = uint8(0x10)
	MemtopUART  = uint8(0x18)
)

// IO is the collection of devices on the IO page.
type IO struct {
	UART *uart.UART

	// Debug decides whether writes to the debug port are logged
	Debug logger.Permission
}

// NewIO is the preferred method of initialisation for the IO type.
func NewIO(u *uart.UART) *IO {
	return &IO{
		UART:  u,
		Debug: logger.Allow,
	}
}

// Read implements the bus.PeripheralBus interface.
func (io *IO) Read(port uint8) (uint8, error) {
	switch {
	case port <= MemtopDebug:
		return 0, curated.Errorf(WriteOnly, port)
	case port <= MemtopUART:
		return io.UART.Read(uart.Register(port & 0x07)), nil
	}
	return 0, curated.Errorf(UnmappedPort, port)
}

// Peek implements the bus.PeripheralBus interface.
func (io *IO) Peek(port uint8) (uint8, error) {
	if port >= OriginUART && port <= MemtopUART {
		return io.UART.Peek(uart.Register(port & 0x07)), nil
	}
	return io.Read(port)
}

// Write implements the bus.PeripheralBus interface.
func (io *IO) Write(port uint8, data uint8) error {
	switch {
	case port <= MemtopDebug:
		logger.Logf(io.Debug, "io", "%02x: %02x", port, data)
		return nil
	case port <= MemtopUART:
		io.UART.Write(uart.Register(port&0x07), data)
		return nil
	}
	return curated.Errorf(UnmappedPort, port)
}

// Tick implements the bus.PeripheralBus interface.
func (io *IO) Tick() {
	io.UART.Tick()
}

// Reset all devices.
func (io *IO) Reset() {
	io.UART.Reset()
}
