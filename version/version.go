// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

// Package version reports the name and version of the application. Version
// information is taken from the build information embedded in the binary by
// the go toolchain, unless a version number has been set with the linker.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Gopher8"

// if number is empty then the project was not built with a version number
// set by the linker. for example:
//
//	go build -ldflags "-X github.com/jetsetilly/gopher8/version.number=v0.1.0"
var number string

// the vcs revision. if the source has been modified but has not been committed
// then the revision string will be suffixed with "+dirty"
var revision string

// the current version number of the project
//
// if the version string is "unreleased" then it means that the project has
// been built without a version number
//
// if the version string is "local" then it means that there is no version
// number and no vcs information. this can happen when running with "go run ."
var version string

// Version returns the version string, the revision string and whether this is a
// numbered "release" version. if release is true then the revision information
// should be used sparingly.
func Version() (string, string, bool) {
	return version, revision, version == number
}

// Title returns the application name and the version. Suitable for window
// titles and log banners.
func Title() string {
	v, r, release := Version()
	if release {
		return fmt.Sprintf("%s %s", ApplicationName, v)
	}
	if len(r) > 8 {
		r = r[:8]
	}
	return fmt.Sprintf("%s (%s %s)", ApplicationName, v, r)
}

func init() {
	version, revision = fromBuildInfo(debug.ReadBuildInfo())
}

func fromBuildInfo(info *debug.BuildInfo, ok bool) (string, string) {
	var vcs bool
	var vcsRevision string
	var vcsModified bool

	if ok {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				vcsRevision = v.Value
			case "vcs.modified":
				vcsModified = v.Value == "true"
			}
		}
	}

	var r string
	if vcsRevision == "" {
		r = "no revision information"
	} else {
		r = vcsRevision
		if vcsModified {
			r = fmt.Sprintf("%s+dirty", r)
		}
	}

	if number != "" {
		return number, r
	}
	if vcs {
		return "unreleased", r
	}
	return "local", r
}
