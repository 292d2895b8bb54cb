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

// Package curated is a helper package for the plain Go error type. Curated
// errors are created with Errorf(), which takes a formatting pattern and
// placeholder values like fmt.Errorf(). The pattern is remembered and is what
// distinguishes one kind of curated error from another.
//
// Packages that produce errors export their patterns as constants. The
// embedder can then ask what kind of error it has been handed without parsing
// error strings:
//
//	status, err := mc.Step()
//	if err != nil {
//		if curated.Is(err, cpu.UnimplementedOpcode) {
//			...
//		}
//	}
//
// Is() compares only the outermost pattern. Has() searches the values of the
// error for a curated error with the pattern, so it will find an error that has
// been wrapped by another call to Errorf():
//
//	e := curated.Errorf(bus.Unmapped, 0x40, 0x1000)
//	f := curated.Errorf("machine: %v", e)
//
//	curated.Is(f, bus.Unmapped)  // false
//	curated.Has(f, bus.Unmapped) // true
//
// Error chains are thought of as parts separated by ": ". The Error() function
// removes a duplicated leading part so that wrapping an error with the same
// prefix more than once does not produce "cpu: cpu: ..." messages.
//
// Curated errors also implement Unwrap() so that errors.Is() and errors.As()
// from the standard library reach any error value passed to Errorf().
package curated
