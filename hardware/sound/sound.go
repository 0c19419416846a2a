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

// Package sound implements the tone generator. The Sound type satisfies the
// peripherals.Sound interface and so can be given to the CPU.
//
// The tone generator produces a single tone which is either on or off. The
// Sound type does not produce any audio itself. Instead, once per frame, the
// state of the tone is sent to every AudioMixer attached with AddAudioMixer().
//
// The CPU can turn the tone on and off several times in a single frame. A
// mixer is told that the tone was active for the frame if the tone was on at
// any point during the frame.
package sound

import (
	"github.com/jetsetilly/gopher8/logger"
)

// AudioMixer implementations work with the tone; most probably playing it. An
// example of an AudioMixer that does not play sound but otherwise works with
// it is the wavwriter.WavWriter type.
type AudioMixer interface {
	// SetAudio is called once per frame. The active argument is true if the
	// tone was on at any point in the frame.
	SetAudio(active bool) error

	// some mixers may need to conclude and/or dispose of resources gently.
	// for simplicity, the AudioMixer should be considered unusable after
	// EndMixing() has been called
	EndMixing() error
}

// Sound implements the peripherals.Sound and peripherals.FrameEnder
// interfaces.
type Sound struct {
	// the current state of the tone
	on bool

	// whether the tone has been on at any point since the last call to
	// EndFrame()
	active bool

	mixers []AudioMixer
}

// NewSound is the preferred method of initialisation for the Sound type.
func NewSound() *Sound {
	return &Sound{}
}

// AddAudioMixer registers an implementation of AudioMixer. Multiple
// implementations can be added.
func (snd *Sound) AddAudioMixer(m AudioMixer) {
	for i := range snd.mixers {
		if snd.mixers[i] == m {
			return
		}
	}
	snd.mixers = append(snd.mixers, m)
	logger.Logf(logger.Allow, "sound", "added mixer %T", m)
}

// TurnOn implements the peripherals.Sound interface.
func (snd *Sound) TurnOn() error {
	snd.on = true
	snd.active = true
	return nil
}

// TurnOff implements the peripherals.Sound interface.
func (snd *Sound) TurnOff() error {
	snd.on = false
	return nil
}

// Reset silences the tone without informing the mixers.
func (snd *Sound) Reset() {
	snd.on = false
	snd.active = false
}

// IsOn returns the current state of the tone.
func (snd *Sound) IsOn() bool {
	return snd.on
}

// EndFrame implements the peripherals.FrameEnder interface.
func (snd *Sound) EndFrame() error {
	for _, m := range snd.mixers {
		if err := m.SetAudio(snd.active); err != nil {
			return err
		}
	}
	snd.active = snd.on
	return nil
}

// End the sound and all attached mixers.
func (snd *Sound) End() error {
	var err error
	for _, m := range snd.mixers {
		if e := m.EndMixing(); e != nil && err == nil {
			err = e
		}
	}
	snd.mixers = snd.mixers[:0]
	return err
}
