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

package random

import (
	"math/rand"
	"time"
)

// Coords is the position of the emulation.
type Coords struct {
	Frame       int
	Instruction int
}

// CoordsSource is implemented by types that can report the position of the
// emulation.
type CoordsSource interface {
	GetCoords() Coords
}

// Random is a random number generator that is sensitive to time within the
// emulation.
type Random struct {
	coords CoordsSource

	// added to the seed of every number. chosen when the Random instance is
	// created
	base int64

	rng *rand.Rand

	// use zero seed rather than the random base seed. this is only really
	// useful for normalised instances where random numbers must be predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(coords CoordsSource) *Random {
	return &Random{
		coords: coords,
		base:   time.Now().UnixNano(),
		rng:    rand.New(rand.NewSource(0)),
	}
}

// the seed for the current position in the emulation. the frame number
// occupies the upper half of the value and the instruction count the lower
// half
func (rnd *Random) seed() int64 {
	c := rnd.coords.GetCoords()
	s := int64(c.Frame)<<32 | int64(uint32(c.Instruction))
	if rnd.ZeroSeed {
		return s
	}
	return rnd.base + s
}

// Intn returns a random number in the range 0 to n-1. The number is the same
// for every call made at the same position in the emulation.
func (rnd *Random) Intn(n int) int {
	rnd.rng.Seed(rnd.seed())
	return rnd.rng.Intn(n)
}

// Byte returns a random number in the range 0 to 255. As with Intn() the
// number is the same for every call made at the same position.
func (rnd *Random) Byte() uint8 {
	return uint8(rnd.Intn(256))
}
