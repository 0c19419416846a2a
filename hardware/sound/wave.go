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

package sound

import (
	"encoding/binary"
	"math"
)

// SampleRate is the number of samples per second generated by SquareWave.
const SampleRate = 44100

// SamplesPerFrame is the number of samples required for a single 60Hz frame.
const SamplesPerFrame = SampleRate / 60

// SquareWave generates the samples of the tone. The zero value is silent
// because the Volume field is zero.
type SquareWave struct {
	// frequency of the tone in Hz
	Frequency float64

	// volume in the range 0.0 to 1.0
	Volume float64

	// number of samples since the wave became active
	n int64
}

// Generate fills dst with samples. If active is false the samples are silent
// and the wave restarts at the beginning of a cycle the next time it is
// active.
func (sq *SquareWave) Generate(dst []int16, active bool) {
	if !active {
		for i := range dst {
			dst[i] = 0
		}
		sq.n = 0
		return
	}

	amp := int16(sq.Volume * math.MaxInt16)

	for i := range dst {
		// phase is derived from the sample count and is never accumulated
		p := float64(sq.n) * sq.Frequency / SampleRate
		if p-math.Floor(p) < 0.5 {
			dst[i] = amp
		} else {
			dst[i] = -amp
		}
		sq.n++
	}
}

// EncodeS16LE writes the samples in src to dst as signed 16bit little-endian
// values. The dst slice should be twice the length of src.
func EncodeS16LE(dst []byte, src []int16) {
	for i, v := range src {
		if i*2+2 > len(dst) {
			return
		}
		binary.LittleEndian.PutUint16(dst[i*2:], uint16(v))
	}
}
