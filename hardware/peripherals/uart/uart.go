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

package uart

import (
	"fmt"
	"io"
	"sync"

	"github.com/emu816/emu816/logger"
)

// Register selects a UART register.
type Register uint8

// List of UART registers. Some registers share a port number and are
// distinguished by the direction of the access or by the DLAB bit.
const (
	RHR Register = 0
	THR Register = 0
	IER Register = 1
	ISR Register = 2
	FCR Register = 2
	LCR Register = 3
	MCR Register = 4
	LSR Register = 5
	MSR Register = 6
	SPR Register = 7
)

// Bits of the LSR register.
const (
	LSRDataReady   = 0x01
	LSROverrun     = 0x02
	LSRTHREmpty    = 0x20
	LSRTxEmpty     = 0x40
	lcrDLAB        = 0x80
	fcrEnable      = 0x01
	fcrClearRx     = 0x02
	fcrClearTx     = 0x04
	isrNoInterrupt = 0x01
	isrFIFOEnabled = 0xc0
)

// UART is a 16C550 style serial port.
type UART struct {
	crit sync.Mutex

	host io.Writer

	// Echo decides whether transmitted bytes are also written to the log
	Echo logger.Permission

	ier uint8
	fcr uint8
	lcr uint8
	mcr uint8
	msr uint8
	spr uint8
	brg uint16

	overrun bool

	tx fifo
	rx fifo

	// number of ticks since the last byte was transmitted
	cycles int
}

// NewUART is the preferred method of initialisation for the UART type.
// Transmitted bytes are written to host.
func NewUART(host io.Writer) *UART {
	u := &UART{
		host: host,
		Echo: logger.Deny,
	}
	u.Reset()
	return u
}

func (u *UART) String() string {
	u.crit.Lock()
	defer u.crit.Unlock()
	return fmt.Sprintf("LCR=%02x LSR=%02x BRG=%04x tx=%d rx=%d", u.lcr, u.lsr(), u.brg, u.tx.count, u.rx.count)
}

// Reset the UART to its power-on state.
func (u *UART) Reset() {
	u.crit.Lock()
	defer u.crit.Unlock()

	u.ier = 0x00
	u.fcr = 0x00
	u.lcr = 0x00
	u.mcr = 0x00
	u.msr = 0x00
	u.spr = 0xff
	u.brg = 0x0000
	u.overrun = false
	u.tx.clear()
	u.rx.clear()
	u.cycles = 0
}

// lsr returns the line status register. the crit lock must be held
func (u *UART) lsr() uint8 {
	var v uint8
	if u.rx.count > 0 {
		v |= LSRDataReady
	}
	if u.overrun {
		v |= LSROverrun
	}
	if u.tx.count == 0 {
		v |= LSRTHREmpty | LSRTxEmpty
	}
	return v
}

// bitCycles is the number of ticks taken to transmit one bit
func (u *UART) bitCycles() int {
	return max(1, int(u.brg)) * 16
}

// ByteCycles returns the number of ticks taken to transmit one byte. Ten bits
// are sent for each byte.
func (u *UART) ByteCycles() int {
	u.crit.Lock()
	defer u.crit.Unlock()
	return u.bitCycles() * 10
}

// Read the UART register. Reading RHR removes the byte from the receive FIFO.
func (u *UART) Read(reg Register) uint8 {
	u.crit.Lock()
	defer u.crit.Unlock()
	return u.read(reg, true)
}

// Peek returns the value of the register without side effects.
func (u *UART) Peek(reg Register) uint8 {
	u.crit.Lock()
	defer u.crit.Unlock()
	return u.read(reg, false)
}

func (u *UART) read(reg Register, consume bool) uint8 {
	dlab := u.lcr&lcrDLAB == lcrDLAB

	switch reg & 0x07 {
	case RHR:
		if dlab {
			return uint8(u.brg)
		}
		if consume {
			v, _ := u.rx.pop()
			return v
		}
		return u.rx.peek()
	case IER:
		if dlab {
			return uint8(u.brg >> 8)
		}
		return u.ier
	case ISR:
		if u.fcr&fcrEnable == fcrEnable {
			return isrNoInterrupt | isrFIFOEnabled
		}
		return isrNoInterrupt
	case LCR:
		return u.lcr
	case MCR:
		return u.mcr
	case LSR:
		v := u.lsr()
		if consume {
			u.overrun = false
		}
		return v
	case MSR:
		return u.msr
	}
	return u.spr
}

// Write to the UART register. Writing to THR when the transmit FIFO is full
// loses the byte.
func (u *UART) Write(reg Register, data uint8) {
	u.crit.Lock()
	defer u.crit.Unlock()

	dlab := u.lcr&lcrDLAB == lcrDLAB

	switch reg & 0x07 {
	case THR:
		if dlab {
			u.brg = (u.brg & 0xff00) | uint16(data)
			return
		}
		if !u.tx.push(data) {
			logger.Logf(logger.Allow, "uart", "transmit FIFO full. lost %02x", data)
		}
	case IER:
		if dlab {
			u.brg = (u.brg & 0x00ff) | uint16(data)<<8
			return
		}
		u.ier = data
	case FCR:
		u.fcr = data
		if data&fcrClearRx == fcrClearRx {
			u.rx.clear()
		}
		if data&fcrClearTx == fcrClearTx {
			u.tx.clear()
			u.cycles = 0
		}
	case LCR:
		u.lcr = data
	case MCR:
		u.mcr = data
	case LSR:
		// line status register is read-only
	case MSR:
		u.msr = data
	case SPR:
		u.spr = data
	}
}

// Tick advances the UART by one cycle. When enough cycles have passed a byte
// is taken from the transmit FIFO and written to the host.
func (u *UART) Tick() {
	u.crit.Lock()
	defer u.crit.Unlock()

	if u.tx.count == 0 {
		u.cycles = 0
		return
	}

	u.cycles++
	if u.cycles < u.bitCycles()*10 {
		return
	}
	u.cycles = 0

	v, _ := u.tx.pop()
	if _, err := u.host.Write([]uint8{v}); err != nil {
		logger.Log(logger.Allow, "uart", err)
	}
	logger.Logf(u.Echo, "uart", "tx %02x", v)
}

// Receive a byte from the host. Returns false if the receive FIFO is full, in
// which case the byte is lost and the overrun bit of the LSR is set.
func (u *UART) Receive(v uint8) bool {
	u.crit.Lock()
	defer u.crit.Unlock()

	if !u.rx.push(v) {
		u.overrun = true
		return false
	}
	return true
}

// TryReceive is like Receive but a full receive FIFO does not cause an
// overrun. The byte is not taken and the caller should try again later.
func (u *UART) TryReceive(v uint8) bool {
	u.crit.Lock()
	defer u.crit.Unlock()
	return u.rx.push(v)
}
