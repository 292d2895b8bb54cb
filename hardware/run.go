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
	"context"

	"github.com/emu816/emu816/curated"
	"github.com/emu816/emu816/hardware/cpu"
	"github.com/emu816/emu816/hardware/govern"
	"github.com/emu816/emu816/logger"
	"github.com/emu816/emu816/performance/limiter"
)

// Sentinal error patterns for the Run() functions.
const (
	UnsupportedState = "machine: unsupported emulation state (%s) in run loop"
)

// halted is called when the CPU leaves the Running state. any bytes still in
// the UART are transmitted
func (m *Machine) halted(status cpu.RunStatus) {
	logger.Logf(logger.Allow, "machine", "cpu %s at %02x:%04x after %d cycles", status, m.CPU.PBR, m.CPU.PC, m.Cycles)
	m.Drain()
}

// Run sets the emulation running as quickly as possible. The continueCheck
// function is called after every instruction and can be nil.
//
// Run returns when the CPU stops or waits, when the continue check returns
// Ending or Initialising, or on error.
func (m *Machine) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running

	for state != govern.Ending && state != govern.Initialising {
		switch state {
		case govern.Running:
			status, err := m.Step()
			if err != nil {
				return err
			}
			if status != cpu.Running {
				m.halted(status)
				return nil
			}
		case govern.Paused:
		default:
			return curated.Errorf(UnsupportedState, state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunPaced runs the emulation at the clock speed given by the ClockSpeed
// preference. Instructions are executed in batches of BatchSize bus cycles
// and the continueCheck function is called after every batch. Changes to
// the preferences take effect from the next batch.
//
// Cancelling the context, or reaching its deadline, ends the emulation
// without error.
func (m *Machine) RunPaced(ctx context.Context, continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	batchSize := m.Prefs.BatchSize.Get().(int)
	batchRate := func() float64 {
		return float64(m.Prefs.CyclesPerSecond()) / float64(batchSize)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lim := limiter.NewLimiter(ctx, batchRate())

	var err error

	state := govern.Running

	for state != govern.Ending && state != govern.Initialising {
		// the only error from Wait() is from the context
		if lim.Wait(ctx) != nil {
			return nil
		}

		switch state {
		case govern.Running:
			target := m.Cycles + uint64(batchSize)
			for m.Cycles < target {
				status, err := m.Step()
				if err != nil {
					return err
				}
				if status != cpu.Running {
					m.halted(status)
					return nil
				}
			}
		case govern.Paused:
		default:
			return curated.Errorf(UnsupportedState, state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}

		batchSize = m.Prefs.BatchSize.Get().(int)
		lim.SetLimit(batchRate())
	}

	return nil
}
