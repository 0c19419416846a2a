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

package sdlplay

import (
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/sound"
	"github.com/jetsetilly/gopher8/logger"

	"github.com/veandco/go-sdl2/sdl"
)

// the maximum number of frames of audio allowed to build up in the SDL queue.
// if the emulation runs faster than real time then the queue is cleared rather
// than allowing the sound to lag behind the picture
const maxQueuedFrames = 4

// Beeper outputs the tone using SDL. The tone is a square wave.
type Beeper struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	wave    sound.SquareWave
	samples []int16
	buffer  []uint8
}

// NewBeeper is the preferred method of initialisation for the Beeper type.
// The tone is in Hz and the volume is in the range 0.0 to 1.0.
//
// SDL must have been initialised with the audio subsystem, NewSdlPlay() does
// this.
func NewBeeper(tone float64, volume float64) (*Beeper, error) {
	bpr := &Beeper{
		wave: sound.SquareWave{
			Frequency: tone,
			Volume:    volume,
		},
		samples: make([]int16, sound.SamplesPerFrame),
		buffer:  make([]uint8, sound.SamplesPerFrame*2),
	}

	spec := &sdl.AudioSpec{
		Freq:     sound.SampleRate,
		Format:   sdl.AUDIO_S16LSB,
		Channels: 1,
		Samples:  uint16(1024),
	}

	var err error

	// no changes to the audio format are allowed. SDL will convert the
	// samples if the device requires it
	bpr.id, err = sdl.OpenAudioDevice("", false, spec, &bpr.spec, 0)
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	sdl.PauseAudioDevice(bpr.id, false)

	logger.Logf(logger.Allow, "sdlplay", "audio opened (%.0fHz tone)", tone)

	return bpr, nil
}

// SetAudio implements the sound.AudioMixer interface.
func (bpr *Beeper) SetAudio(active bool) error {
	if sdl.GetQueuedAudioSize(bpr.id) > uint32(len(bpr.buffer)*maxQueuedFrames) {
		sdl.ClearQueuedAudio(bpr.id)
	}

	bpr.wave.Generate(bpr.samples, active)
	sound.EncodeS16LE(bpr.buffer, bpr.samples)

	err := sdl.QueueAudio(bpr.id, bpr.buffer)
	if err != nil {
		return curated.Errorf(SDLError, err)
	}

	return nil
}

// EndMixing implements the sound.AudioMixer interface.
func (bpr *Beeper) EndMixing() error {
	sdl.ClearQueuedAudio(bpr.id)
	sdl.CloseAudioDevice(bpr.id)
	return nil
}
