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

package digest_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/digest"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/test"
)

// draws a random glyph at a random position and sounds the tone, forever
var noisy = []uint8{
	0xc0, 0xff, // V0 = random
	0xf0, 0x29, // I = glyph address of V0
	0xd0, 0x05, // draw at V0, V0
	0x61, 0x05, // V1 = 5
	0xf1, 0x18, // ST = V1
	0x12, 0x00, // jump to start
}

// does nothing, forever
var quiet = []uint8{
	0x12, 0x00,
}

func runDigests(t *testing.T, rom []uint8, frames int) (*digest.Video, *digest.Audio) {
	t.Helper()

	c8 := hardware.NewChip8(nil)
	c8.SetFrameCap(false)
	c8.Random.ZeroSeed = true

	vid := digest.NewVideo()
	aud := digest.NewAudio()
	c8.Display.AddPixelRenderer(vid)
	c8.Sound.AddAudioMixer(aud)

	test.DemandSuccess(t, c8.Load(rom))
	test.DemandSuccess(t, c8.RunForFrameCount(frames, nil, nil))
	test.DemandSuccess(t, c8.End())

	return vid, aud
}

func TestDigestRepeatable(t *testing.T) {
	vidA, audA := runDigests(t, noisy, 100)
	vidB, audB := runDigests(t, noisy, 100)

	test.ExpectEquality(t, vidA.FrameNum(), 100)
	test.ExpectEquality(t, vidA.Hash(), vidB.Hash())
	test.ExpectEquality(t, audA.Hash(), audB.Hash())
}

func TestDigestDiffers(t *testing.T) {
	vidA, audA := runDigests(t, noisy, 100)
	vidB, audB := runDigests(t, quiet, 100)

	test.ExpectInequality(t, vidA.Hash(), vidB.Hash())
	test.ExpectInequality(t, audA.Hash(), audB.Hash())

	// a different number of frames produces a different digest
	vidC, _ := runDigests(t, noisy, 101)
	test.ExpectInequality(t, vidA.Hash(), vidC.Hash())
}

func TestResetDigest(t *testing.T) {
	zero := strings.Repeat("0", 40)

	vid, aud := runDigests(t, noisy, 10)
	test.ExpectInequality(t, vid.Hash(), zero)
	test.ExpectInequality(t, aud.Hash(), zero)

	vid.ResetDigest()
	aud.ResetDigest()
	test.ExpectEquality(t, vid.Hash(), zero)
	test.ExpectEquality(t, vid.FrameNum(), 0)
	test.ExpectEquality(t, aud.Hash(), zero)
}
