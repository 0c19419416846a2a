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

	"github.com/jetsetilly/gopher8/hardware/display"
)

// Video is an implementation of the display.PixelRenderer interface with an
// embedded sha1 digest. Each frame is hashed along with the digest of the
// previous frame.
type Video struct {
	digest [sha1.Size]byte

	// the head of the array is reserved for the previous digest
	pixels []byte

	frameNum int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{
		pixels: make([]byte, sha1.Size+display.Width*display.Height),
	}
}

// Hash implements the digest.Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the digest.Digest interface.
func (dig *Video) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
	dig.frameNum = 0
}

// FrameNum returns the number of frames included in the digest.
func (dig *Video) FrameNum() int {
	return dig.frameNum
}

// Render implements the display.PixelRenderer interface.
func (dig *Video) Render(fb *display.FrameBuffer) error {
	// chain fingerprints by copying the value of the last fingerprint
	// to the head of the video data
	copy(dig.pixels, dig.digest[:])

	i := sha1.Size
	for y := 0; y < display.Height; y++ {
		for x := 0; x < display.Width; x++ {
			if fb.Pixel(x, y) {
				dig.pixels[i] = 1
			} else {
				dig.pixels[i] = 0
			}
			i++
		}
	}

	dig.digest = sha1.Sum(dig.pixels)
	dig.frameNum++

	return nil
}

// EndRendering implements the display.PixelRenderer interface.
func (dig *Video) EndRendering() error {
	return nil
}
