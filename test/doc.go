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

// Package test contains helper functions to remove common boilerplate from
// the test files of the emulator packages.
//
// The Expect functions report a failure with t.Errorf() and let the test
// continue. The Demand functions report with t.Fatalf() and should be used when
// later checks depend on the value being correct. For example, demanding that
// CPU construction succeeded before stepping it.
//
// Success and failure are interpreted according to type:
//
//	bool  -> true is success
//	error -> nil is success
//	nil   -> success
//
// The nil case is worth noting. Because of how errors usually work (nil to
// indicate no error) an untyped nil is considered a success.
//
// The Writer type implements io.Writer and is useful for capturing output, for
// example from the logger or from the UART, and comparing it with an expected
// string.
package test
