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

package version

import (
	"runtime/debug"
	"testing"

	"github.com/emu816/emu816/test"
)

func TestBuildInfo(t *testing.T) {
	defer readBuildInfo(debug.ReadBuildInfo())

	readBuildInfo(nil, false)
	v, r, release := Version()
	test.ExpectEquality(t, v, "local")
	test.ExpectEquality(t, r, "no revision information")
	test.ExpectEquality(t, release, false)
	test.ExpectEquality(t, String(), "emu816 local (no revision information)")

	readBuildInfo(&debug.BuildInfo{
		Settings: []debug.BuildSetting{
			{Key: "vcs", Value: "git"},
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.modified", Value: "true"},
		},
	}, true)
	v, r, _ = Version()
	test.ExpectEquality(t, v, "unreleased")
	test.ExpectEquality(t, r, "abc123+dirty")
}

func TestReleaseNumber(t *testing.T) {
	defer func(n string) {
		number = n
		readBuildInfo(debug.ReadBuildInfo())
	}(number)

	number = "v1.0.0"
	readBuildInfo(nil, false)
	v, _, release := Version()
	test.ExpectEquality(t, v, "v1.0.0")
	test.ExpectEquality(t, release, true)
	test.ExpectEquality(t, String(), "emu816 v1.0.0")
}
