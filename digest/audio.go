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

package digest

import (
	"crypto/sha1"
	"fmt"
)

// the number of frames collected before the digest is updated. the head of
// the buffer is reserved for the previous digest
const audioBufferLength = sha1.Size + 60

// Audio is an implementation of the sound.AudioMixer interface with an
// embedded sha1 digest. The tone state of every frame is recorded and hashed
// in batches.
type Audio struct {
	digest   [sha1.Size]byte
	buffer   []uint8
	bufferCt int
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	dig := &Audio{}
	dig.buffer = make([]uint8, audioBufferLength)
	dig.bufferCt = sha1.Size
	return dig
}

// Hash implements the digest.Digest interface. Frames that have not yet been
// included in the digest are flushed first.
func (dig *Audio) Hash() string {
	if dig.bufferCt > sha1.Size {
		dig.flush()
	}
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the digest.Digest interface.
func (dig *Audio) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
	dig.bufferCt = sha1.Size
}

// SetAudio implements the sound.AudioMixer interface.
func (dig *Audio) SetAudio(active bool) error {
	if active {
		dig.buffer[dig.bufferCt] = 1
	} else {
		dig.buffer[dig.bufferCt] = 0
	}

	dig.bufferCt++

	if dig.bufferCt >= audioBufferLength {
		dig.flush()
	}

	return nil
}

func (dig *Audio) flush() {
	// chain fingerprints by copying the value of the last fingerprint
	// to the head of the buffer
	copy(dig.buffer, dig.digest[:])
	dig.digest = sha1.Sum(dig.buffer[:dig.bufferCt])
	dig.bufferCt = sha1.Size
}

// EndMixing implements the sound.AudioMixer interface.
func (dig *Audio) EndMixing() error {
	return nil
}
