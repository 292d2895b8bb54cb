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

package performance

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/emu816/emu816/curated"
	"github.com/emu816/emu816/hardware"
	"github.com/emu816/emu816/hardware/govern"
)

// returned by the continue check when the duration has elapsed
var timedOut = errors.New("performance timed out")

// the number of instructions between checks of the timer when running
// uncapped. checking the timer channel for every instruction is expensive
const performanceBrake = 1000

// Check the performance of the emulator using the supplied machine, which
// should already have firmware loaded.
//
// Emulation will run for the specified duration and will create a cpu, memory
// profile, a trace (or a combination of those) as defined by the Profile
// argument. If uncapped is false the machine runs at the clock speed given
// by its preferences.
func Check(output io.Writer, profile Profile, m *hardware.Machine, uncapped bool, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf(ProfileError, err)
	}

	var instructions uint64
	var elapsed time.Duration

	startCycles := m.Cycles

	runner := func() error {
		start := time.Now()
		defer func() {
			elapsed = time.Since(start)
		}()

		if uncapped {
			timesUp := time.After(dur)
			brake := 0

			return m.Run(func() (govern.State, error) {
				instructions++
				brake++
				if brake < performanceBrake {
					return govern.Running, nil
				}
				brake = 0

				select {
				case <-timesUp:
					return govern.Ending, timedOut
				default:
				}
				return govern.Running, nil
			})
		}

		ctx, cancel := context.WithTimeout(context.Background(), dur)
		defer cancel()

		return m.RunPaced(ctx, nil)
	}

	// launch runner directly or through the profiler, depending on supplied
	// arguments
	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return curated.Errorf(ProfileError, err)
	}

	cycles := m.Cycles - startCycles

	mhz, mips, accuracy := CalcSpeed(cycles, instructions, elapsed.Seconds(), m.Prefs.ClockSpeed.Get().(float64))
	if uncapped {
		fmt.Fprintf(output, "%.2f MHz %.2f MIPS (%d cycles in %.2f seconds) %.1f%%\n", mhz, mips, cycles, elapsed.Seconds(), accuracy)
	} else {
		fmt.Fprintf(output, "%.2f MHz (%d cycles in %.2f seconds) %.1f%%\n", mhz, cycles, elapsed.Seconds(), accuracy)
	}

	return nil
}
