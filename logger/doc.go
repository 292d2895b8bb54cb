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

// Package logger is the central log repository for the emulator. Log entries
// are recorded with a tag (usually the name of the component, "cpu" or "uart"
// for example) and a detail string.
//
// Consecutive entries with the same tag and detail are folded into one entry
// with a repeat count. This keeps a misbehaving program that hammers the debug
// port from flooding the log.
//
// Logging can be gated by a Permission. The Allow value is always permitted.
// Components that want to control their own logging, for example the IO page
// when running in a test harness, can implement the Permission interface.
//
// The log can be echoed to an io.Writer as entries are added with SetEcho().
package logger
