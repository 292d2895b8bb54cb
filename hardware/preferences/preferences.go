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

package preferences

import (
	"github.com/emu816/emu816/curated"
	"github.com/emu816/emu816/logger"
	"github.com/emu816/emu816/prefs"
)

// Sentinal error patterns for the preferences package.
const (
	OutOfRange = "preferences: %s out of range (%v)"
)

// Default values for the hardware preferences.
const (
	DefaultClockSpeed = 4.0
	DefaultBatchSize  = 1000
)

// Preferences defines and collates all the preference values used by the
// hardware.
type Preferences struct {
	dsk *prefs.Disk

	// whether the preferences are backed by a file
	onDisk bool

	// the speed of the CPU clock in MHz. the clock speed is the number of bus
	// cycles per second
	ClockSpeed prefs.Float

	// the number of bus cycles between checks of the pacing limiter and the
	// continue check function
	BatchSize prefs.Int

	// log bytes transmitted by the UART
	UARTEcho prefs.Bool

	// log writes to the debug port of the IO page
	DebugPort prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. The path is the preferences file. An empty path means
// that the preferences are never loaded or saved.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{
		onDisk: path != "",
	}

	// defaults must be set before the values are added to the disk instance
	p.ClockSpeed.Set(DefaultClockSpeed)
	p.BatchSize.Set(DefaultBatchSize)
	p.UARTEcho.Set(false)
	p.DebugPort.Set(true)

	p.ClockSpeed.SetHookPre(func(v prefs.Value) error {
		if v.(float64) <= 0 {
			return curated.Errorf(OutOfRange, "cpu.clock", v)
		}
		return nil
	})
	p.BatchSize.SetHookPre(func(v prefs.Value) error {
		if v.(int) <= 0 {
			return curated.Errorf(OutOfRange, "machine.batch", v)
		}
		return nil
	})

	var err error

	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("cpu.clock", &p.ClockSpeed)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("machine.batch", &p.BatchSize)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("uart.echo", &p.UARTEcho)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("io.debug", &p.DebugPort)
	if err != nil {
		return nil, err
	}

	err = p.Load()
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// Reset all hardware preferences to the default values.
func (p *Preferences) Reset() error {
	return p.dsk.Reset()
}

// Load current hardware preferences from disk.
func (p *Preferences) Load() error {
	if !p.onDisk {
		return nil
	}
	return p.dsk.Load(true)
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	if !p.onDisk {
		return nil
	}
	return p.dsk.Save()
}

// CyclesPerSecond returns the clock speed as bus cycles per second.
func (p *Preferences) CyclesPerSecond() int {
	return int(p.ClockSpeed.Get().(float64) * 1000000)
}

// permission adapts a Bool preference to the logger.Permission interface.
type permission struct {
	b *prefs.Bool
}

func (l permission) AllowLogging() bool {
	return l.b.Get().(bool)
}

// EchoPermission returns a logger.Permission that allows logging if the
// UARTEcho preference is true.
func (p *Preferences) EchoPermission() logger.Permission {
	return permission{b: &p.UARTEcho}
}

// DebugPermission returns a logger.Permission that allows logging if the
// DebugPort preference is true.
func (p *Preferences) DebugPermission() logger.Permission {
	return permission{b: &p.DebugPort}
}
