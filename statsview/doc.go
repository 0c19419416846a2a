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

// Package statsview offers an optional HTTP server running locally that
// serves runtime statistics for the running emulation. The server is only
// available when the statsview build constraint is present:
//
//	go build -tags statsview .
//
// Underlying functionality is provided by "github.com/go-echarts/statsview".
// After launch, graphical statistics will be viewable at:
//
//	localhost:12608/debug/statsview
//
// And standard Go pprof statistics are available at:
//
//	localhost:12608/debug/pprof/
//
// Without the build constraint Available() returns false and Launch() does
// nothing other than say so.
package statsview

// Address of the statistics server.
const Address = "localhost:12608"

const url = "/debug/statsview"
