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

package hostterm

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/emu816/emu816/curated"
	"github.com/emu816/emu816/logger"
)

// Sentinal error patterns for the hostterm package.
const (
	TerminalError = "hostterm: %v"
)

// Translate a byte from the host terminal to the byte expected by the
// firmware.
func Translate(v uint8) uint8 {
	switch v {
	case '\r':
		return '\n'
	case 0x7f:
		return 0x08
	}
	return v
}

// the time between attempts to deliver a byte that the receive function has
// refused
const retryPeriod = time.Millisecond

// Pump reads from input and sends every byte, after translation, to the
// receive function. If receive returns false the byte has not been accepted
// and delivery is retried until it is, or until the context is cancelled.
//
// Pump returns nil when the context is cancelled or the input reaches EOF.
// Note that a read that is in progress when the context is cancelled will
// not return until the input produces some data or is closed.
func Pump(ctx context.Context, input io.Reader, receive func(uint8) bool) error {
	buffer := make([]uint8, 64)

	for {
		n, err := input.Read(buffer)

		select {
		case <-ctx.Done():
			return nil
		default:
		}

		for _, v := range buffer[:n] {
			if !deliver(ctx, Translate(v), receive) {
				return nil
			}
		}

		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, os.ErrClosed) {
				return nil
			}
			return curated.Errorf(TerminalError, err)
		}
	}
}

// deliver returns false if the context was cancelled before the byte was
// accepted.
func deliver(ctx context.Context, v uint8, receive func(uint8) bool) bool {
	if receive(v) {
		return true
	}

	logger.Logf(logger.Allow, "hostterm", "receive full. holding %02x", v)

	t := time.NewTicker(retryPeriod)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return false
		case <-t.C:
			if receive(v) {
				return true
			}
		}
	}
}
