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

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new Limiter is created with the number of events per second and a context
// that stops the internal ticker:
//
//	lim := limiter.NewLimiter(ctx, 4000)
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		if err := lim.Wait(ctx); err != nil {
//			return err
//		}
//		runBatch()
//	}
package limiter

import (
	"context"
	"sync/atomic"
	"time"
)

// the rough rate is only any good if the base performance of the machine is
// well above the required rate.

// Limiter will trigger at the given number of events per second.
type Limiter struct {
	// the duration between events. stored atomically because SetLimit() can
	// be called while the ticker is running
	period atomic.Int64

	tick chan bool
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
// The ticker stops when the context is cancelled.
func NewLimiter(ctx context.Context, eventsPerSecond float64) *Limiter {
	lim := &Limiter{
		tick: make(chan bool),
	}
	lim.SetLimit(eventsPerSecond)

	// run ticker concurrently
	go func() {
		period := time.Duration(lim.period.Load())
		adjusted := period
		t := time.Now()
		for {
			select {
			case lim.tick <- true:
			case <-ctx.Done():
				return
			}

			if adjusted > 0 {
				time.Sleep(adjusted)
			}

			// correct the sleep duration for any drift in the previous period.
			// a change of limit resets the correction
			nt := time.Now()
			if p := time.Duration(lim.period.Load()); p != period {
				period = p
				adjusted = p
			} else {
				adjusted -= nt.Sub(t) - period
			}
			t = nt
		}
	}()

	return lim
}

// SetLimit changes the rate at which the Limiter triggers.
func (lim *Limiter) SetLimit(eventsPerSecond float64) {
	if eventsPerSecond <= 0 {
		lim.period.Store(0)
		return
	}
	lim.period.Store(int64(float64(time.Second) / eventsPerSecond))
}

// Wait will block until the next trigger or until the context is cancelled.
func (lim *Limiter) Wait(ctx context.Context) error {
	select {
	case <-lim.tick:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
