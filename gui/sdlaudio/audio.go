// This file is part of Gophernes.
//
// Gophernes is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gophernes is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gophernes.  If not, see <https://www.gnu.org/licenses/>.

// Package sdlaudio plays the console's sound through an SDL audio device.
package sdlaudio

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/gophernes/hardware/television"
	"github.com/jetsetilly/gophernes/logger"
)

// if the queue grows past this many bytes the oldest data is dropped. the
// console delivers a frame of samples at a time so the queue level moves in
// frame-sized steps; four frames is enough slack to ride out an uneven host
// without the lag becoming noticeable.
const maxQueuedBytes = 4 * television.SamplesPerFrame * 2

// Audio outputs sound using SDL. It implements the television.AudioMixer
// interface.
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	// conversion buffer, reused between SetAudio calls
	bytes []byte
}

// NewAudio is the preferred method of initialisation for the Audio type.
// The SDL audio subsystem must have been initialised.
func NewAudio() (*Audio, error) {
	aud := &Audio{}

	spec := &sdl.AudioSpec{
		Freq:     television.SampleRate,
		Format:   sdl.AUDIO_S16LSB,
		Channels: 1,
		Samples:  uint16(television.SamplesPerFrame),
	}

	var err error
	var actualSpec sdl.AudioSpec

	aud.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, fmt.Errorf("sdlaudio: %w", err)
	}
	aud.spec = actualSpec

	logger.Logf(logger.Allow, "sdl", "audio device opened (%dHz)", aud.spec.Freq)

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// SetAudio implements the television.AudioMixer interface.
func (aud *Audio) SetAudio(samples []int16) error {
	l := len(samples) * 2
	if cap(aud.bytes) < l {
		aud.bytes = make([]byte, l)
	}
	aud.bytes = aud.bytes[:l]

	for i, s := range samples {
		aud.bytes[i*2] = byte(s)
		aud.bytes[i*2+1] = byte(s >> 8)
	}

	// if the emulation has run ahead of the device, start afresh rather
	// than letting the lag accumulate
	if sdl.GetQueuedAudioSize(aud.id) > maxQueuedBytes {
		sdl.ClearQueuedAudio(aud.id)
	}

	if err := sdl.QueueAudio(aud.id, aud.bytes); err != nil {
		return fmt.Errorf("sdlaudio: %w", err)
	}

	return nil
}

// EndMixing implements the television.AudioMixer interface.
func (aud *Audio) EndMixing() error {
	sdl.CloseAudioDevice(aud.id)
	return nil
}
