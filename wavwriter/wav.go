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

// Package wavwriter allows writing of the tone to disk as a WAV file. The
// WavWriter type implements the sound.AudioMixer interface and should be
// attached to the Sound type of the emulation with AddAudioMixer().
//
// Audio is written as 16 bit mono PCM at sound.SampleRate. Each frame of the
// emulation results in sound.SamplesPerFrame samples, whether the tone is
// active or not. The length of the WAV file is therefore the same as the
// length of the emulation.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/sound"
	"github.com/jetsetilly/gopher8/logger"
)

// Sentinal error patterns.
const (
	WavWriterError = "wavwriter: %v"
)

const bitDepth = 16

// WAVE_FORMAT_PCM
const formatPCM = 1

// WavWriter implements the sound.AudioMixer interface.
type WavWriter struct {
	filename string
	f        *os.File
	enc      *wav.Encoder

	wave    sound.SquareWave
	samples []int16
	buf     *audio.IntBuffer

	frames int
}

// New is the preferred method of initialisation for the WavWriter type. The
// file is created immediately and will be completed by EndMixing().
func New(filename string, tone float64, volume float64) (*WavWriter, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, curated.Errorf(WavWriterError, err)
	}

	aw := &WavWriter{
		filename: filename,
		f:        f,
		enc:      wav.NewEncoder(f, sound.SampleRate, bitDepth, 1, formatPCM),
		wave: sound.SquareWave{
			Frequency: tone,
			Volume:    volume,
		},
		samples: make([]int16, sound.SamplesPerFrame),
		buf: &audio.IntBuffer{
			Format: &audio.Format{
				NumChannels: 1,
				SampleRate:  sound.SampleRate,
			},
			Data:           make([]int, sound.SamplesPerFrame),
			SourceBitDepth: bitDepth,
		},
	}

	return aw, nil
}

// SetAudio implements the sound.AudioMixer interface.
func (aw *WavWriter) SetAudio(active bool) error {
	aw.wave.Generate(aw.samples, active)
	for i, s := range aw.samples {
		aw.buf.Data[i] = int(s)
	}

	if err := aw.enc.Write(aw.buf); err != nil {
		return curated.Errorf(WavWriterError, err)
	}
	aw.frames++

	return nil
}

// EndMixing implements the sound.AudioMixer interface.
func (aw *WavWriter) EndMixing() (rerr error) {
	defer func() {
		if err := aw.f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf(WavWriterError, err)
		}
	}()

	if err := aw.enc.Close(); err != nil {
		return curated.Errorf(WavWriterError, err)
	}

	logger.Logf(logger.Allow, "wavwriter", "wrote %d frames of audio to %s", aw.frames, aw.filename)

	return nil
}
